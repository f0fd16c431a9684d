package style

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/tikznet/pkg/errors"
)

// RGB is a color given by red, green and blue components. As a fixed-size
// array it broadcasts like any other scalar.
type RGB [3]float64

// String formats the color the way tikz-network expects RGB values.
func (c RGB) String() string {
	return fmt.Sprintf("{%s,%s,%s}", formatFloat(c[0]), formatFloat(c[1]), formatFloat(c[2]))
}

var rgbPattern = regexp.MustCompile(`^\s*rgb\s*\(\s*([^,]+),\s*([^,]+),\s*([^,)]+)\)\s*$`)

// ParseColor reads "rgb(r,g,b)". It reports false for anything else.
func ParseColor(s string) (RGB, bool) {
	m := rgbPattern.FindStringSubmatch(s)
	if m == nil {
		return RGB{}, false
	}
	var c RGB
	for i := range c {
		f, err := strconv.ParseFloat(strings.TrimSpace(m[i+1]), 64)
		if err != nil {
			return RGB{}, false
		}
		c[i] = f
	}
	return c, true
}

// ParseValue reads a command-line value. It is parsed as a YAML flow
// value, so numbers, booleans, [lists] and {maps} are typed, and then
// normalized like file values.
func ParseValue(s string) (any, error) {
	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse value %q", s)
	}
	return normalizeValue(v), nil
}

// ParseAssignment splits "key=value" and parses the value.
func ParseAssignment(s string) (Keyword, error) {
	key, raw, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return Keyword{}, errors.New(errors.ErrCodeInvalidInput, "expected key=value, got %q", s)
	}
	if err := errors.ValidateKeyword(key); err != nil {
		return Keyword{}, err
	}
	v, err := ParseValue(raw)
	if err != nil {
		return Keyword{}, err
	}
	return Keyword{Key: key, Value: v}, nil
}

// normalizeValue converts decoded document values into the shapes Resolve
// understands: rgb() strings become RGB and map keys become strings.
func normalizeValue(v any) any {
	switch x := v.(type) {
	case string:
		if c, ok := ParseColor(x); ok {
			return c
		}
		return x
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = normalizeValue(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = normalizeValue(e)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[fmt.Sprint(k)] = normalizeValue(e)
		}
		return out
	}
	return v
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
