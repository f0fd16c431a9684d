package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// maxIDLength bounds node and edge identifiers.
const maxIDLength = 256

// markupReserved lists characters that would break a TikZ option list or
// node reference when used inside an identifier.
const markupReserved = "{}[](),\\%"

// ValidateEntityID validates a node or edge identifier before it is emitted
// into markup or a delimited table.
//
// The validation rules:
//   - No empty identifiers
//   - No control characters (including newlines)
//   - None of the TikZ-reserved characters {}[](),\%
//   - Maximum length of 256 characters
func ValidateEntityID(kind, id string) error {
	if id == "" {
		return New(ErrCodeFormat, "%s id cannot be empty", kind)
	}

	if len(id) > maxIDLength {
		return New(ErrCodeFormat, "%s id too long (max %d characters)", kind, maxIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeFormat, "%s id %q contains control characters", kind, id)
		}
	}

	if i := strings.IndexAny(id, markupReserved); i >= 0 {
		return New(ErrCodeFormat, "%s id %q contains reserved character %q", kind, id, id[i])
	}

	return nil
}

// keywordRegex matches style keyword names.
var keywordRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// ValidateKeyword validates a style keyword name such as "node_size".
func ValidateKeyword(key string) error {
	if key == "" {
		return New(ErrCodeInvalidInput, "style keyword cannot be empty")
	}
	if !keywordRegex.MatchString(key) {
		return New(ErrCodeInvalidInput, "invalid style keyword: %q", key)
	}
	return nil
}

// ValidateOutputPath validates an output file path given on the command line.
// It rejects empty paths, control characters and directory-only paths.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidInput, "output path %q names a directory", path)
	}

	return nil
}
