package units

import (
	"github.com/matzehuels/tikznet/pkg/errors"
)

// DefaultSetting is the unit setting used when no "units" keyword is given:
// sizes in centimeters and line widths in points.
var DefaultSetting = Setting{Size: Centimeter, Width: Point}

// Setting names the input unit for sizes and for line widths.
type Setting struct {
	Size  Unit
	Width Unit
}

// ParseSetting reads the value of the "units" keyword.
//
// A single unit name applies to both sizes and widths. A pair (a Go array
// or slice of two strings) sets sizes from the first entry and widths from
// the second. nil yields [DefaultSetting].
func ParseSetting(value any) (Setting, error) {
	switch v := value.(type) {
	case nil:
		return DefaultSetting, nil
	case string:
		u, err := Parse(v)
		if err != nil {
			return Setting{}, err
		}
		return Setting{Size: u, Width: u}, nil
	case Unit:
		return ParseSetting(string(v))
	case [2]string:
		return parsePair(v[0], v[1])
	case []string:
		if len(v) != 2 {
			return Setting{}, errors.Config("units: expected 2 entries, got %d", len(v))
		}
		return parsePair(v[0], v[1])
	case []any:
		if len(v) != 2 {
			return Setting{}, errors.Config("units: expected 2 entries, got %d", len(v))
		}
		a, aok := v[0].(string)
		b, bok := v[1].(string)
		if !aok || !bok {
			return Setting{}, errors.Config("units: entries must be unit names, got %v", v)
		}
		return parsePair(a, b)
	default:
		return Setting{}, errors.Config("units: unsupported value %v (%T)", value, value)
	}
}

func parsePair(size, width string) (Setting, error) {
	s, err := Parse(size)
	if err != nil {
		return Setting{}, err
	}
	w, err := Parse(width)
	if err != nil {
		return Setting{}, err
	}
	return Setting{Size: s, Width: w}, nil
}

// ToCM returns the converter for size values.
func (s Setting) ToCM() Converter {
	return Converter{From: s.Size, To: Centimeter, factor: cmPer[s.Size]}
}

// ToPT returns the converter for line widths and font sizes.
func (s Setting) ToPT() Converter {
	return Converter{From: s.Width, To: Point, factor: cmPer[s.Width] / cmPer[Point]}
}
