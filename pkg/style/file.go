package style

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/tikznet/pkg/errors"
)

// LoadFile reads keywords from a style file. The format is chosen by
// extension: .toml, .yaml/.yml or .json.
func LoadFile(path string) (Keywords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "style file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}

	var kw Keywords
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		kw, err = ReadTOML(data)
	case ".yaml", ".yml":
		kw, err = ReadYAML(data)
	case ".json":
		kw, err = ReadJSON(bytes.NewReader(data))
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported style file %q (use .toml, .yaml or .json)", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return kw, nil
}

// ReadTOML decodes top-level keys in the order they are defined.
func ReadTOML(data []byte) (Keywords, error) {
	var doc map[string]any
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFormat, err, "decode toml")
	}
	var kw Keywords
	for _, key := range md.Keys() {
		if len(key) != 1 {
			continue
		}
		kw = append(kw, Keyword{Key: key[0], Value: normalizeValue(doc[key[0]])})
	}
	return kw, nil
}

// ReadYAML decodes a top-level mapping in document order.
func ReadYAML(data []byte) (Keywords, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(errors.ErrCodeFormat, err, "decode yaml")
	}
	if len(root.Content) == 0 {
		return nil, nil
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, errors.Format("style document must be a mapping")
	}
	kw := make(Keywords, 0, len(doc.Content)/2)
	for i := 0; i+1 < len(doc.Content); i += 2 {
		var v any
		if err := doc.Content[i+1].Decode(&v); err != nil {
			return nil, errors.Wrap(errors.ErrCodeFormat, err, "decode %s", doc.Content[i].Value)
		}
		kw = append(kw, Keyword{Key: doc.Content[i].Value, Value: normalizeValue(v)})
	}
	return kw, nil
}

// ReadJSON decodes a top-level object in document order.
func ReadJSON(r io.Reader) (Keywords, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFormat, err, "decode json")
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.Format("style document must be an object")
	}

	var kw Keywords
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFormat, err, "decode json")
		}
		key, _ := tok.(string)
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, errors.Wrap(errors.ErrCodeFormat, err, "decode %s", key)
		}
		kw = append(kw, Keyword{Key: key, Value: normalizeValue(jsonNumbers(v))})
	}
	return kw, nil
}

// jsonNumbers turns json.Number into int64 where exact, else float64.
func jsonNumbers(v any) any {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		f, _ := x.Float64()
		return f
	case []any:
		for i := range x {
			x[i] = jsonNumbers(x[i])
		}
	case map[string]any:
		for k := range x {
			x[k] = jsonNumbers(x[k])
		}
	}
	return v
}
