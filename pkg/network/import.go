package network

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/tikznet/pkg/errors"
)

// Import reads a network file, choosing the decoder by extension:
// .json for [ReadJSON], .dot and .gv for [ReadDOT].
func Import(path string) (*Graph, error) {
	var read func(f *os.File) (*Graph, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		read = func(f *os.File) (*Graph, error) { return ReadJSON(f) }
	case ".dot", ".gv":
		read = func(f *os.File) (*Graph, error) { return ReadDOT(f) }
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported network format %q (use .json, .dot or .gv)", filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return read(f)
}
