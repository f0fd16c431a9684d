package tikz

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/matzehuels/tikznet/pkg/style"
	"github.com/matzehuels/tikznet/pkg/units"
)

// Mode selects how colors are written.
type Mode int

const (
	// ModeTeX writes RGB colors as color={r,g,b} plus the RGB flag.
	ModeTeX Mode = iota
	// ModeList splits RGB colors into R, G and B columns when the rgb flag
	// is set and drops them otherwise.
	ModeList
)

// Prepare returns a copy of one entity's attributes with colors and, for
// directed edges in TeX mode, arrow sizes folded into the tikz-network
// options. attrs is not modified.
func Prepare(d style.Domain, attrs map[string]any, mode Mode) map[string]any {
	out := make(map[string]any, len(attrs)+3)
	for k, v := range attrs {
		out[k] = v
	}
	prefix := d.String() + "_"
	if d == style.DomainEdge && mode == ModeTeX {
		arrowStyle(out)
	}
	checkColor(out, prefix, mode)
	return out
}

func checkColor(attrs map[string]any, prefix string, mode Mode) {
	colorKey, rgbKey := prefix+"color", prefix+"rgb"
	c, isTuple := rgb(attrs[colorKey])
	rgbSet := attrs[rgbKey] == true

	switch {
	case isTuple && mode == ModeTeX:
		attrs[colorKey] = c.String()
		attrs[rgbKey] = true
	case isTuple && rgbSet:
		attrs[colorKey] = nil
		for i, ch := range []string{"r", "g", "b"} {
			attrs[prefix+ch] = component(c[i])
		}
	case rgbSet && mode == ModeList:
		for _, ch := range []string{"r", "g", "b"} {
			if attrs[prefix+ch] == nil {
				attrs[prefix+ch] = 0
			}
		}
	case isTuple:
		attrs[colorKey] = nil
	}
}

// rgb reads a style.RGB or any three-element numeric array.
func rgb(v any) (style.RGB, bool) {
	if c, ok := v.(style.RGB); ok {
		return c, true
	}
	if v == nil {
		return style.RGB{}, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Array || rv.Len() != 3 {
		return style.RGB{}, false
	}
	var c style.RGB
	for i := range c {
		f, ok := units.Float(rv.Index(i).Interface())
		if !ok {
			return style.RGB{}, false
		}
		c[i] = f
	}
	return c, true
}

// component keeps integral channel values integral so 255 stays "255".
func component(f float64) any {
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return int64(f)
	}
	return f
}

// arrowStyle rewrites edge_style of a directed edge with an explicit arrow
// size or width into a Latex arrow tip.
func arrowStyle(attrs map[string]any) {
	if attrs[style.KeyEdgeDirected] != true {
		return
	}
	size, hasSize := units.Float(attrs[style.KeyEdgeArrowSize])
	width, hasWidth := units.Float(attrs[style.KeyEdgeArrowWidth])
	if !hasSize && !hasWidth {
		return
	}
	var length, w string
	if hasSize {
		length = "length=" + Format(15*size) + "cm,"
	}
	if hasWidth {
		w = "width=" + Format(10*width) + "cm"
	}
	base := ""
	if s := attrs[style.KeyEdgeStyle]; s != nil {
		base = Format(s)
	}
	attrs[style.KeyEdgeStyle] = fmt.Sprintf("{-{Latex[%s%s]}, %s }", length, w, base)
}

// Format writes a value as tikz-network expects it. Floats keep one
// decimal when integral (1.0), booleans are lowercase.
func Format(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return formatFloat(x)
	case float32:
		return formatFloat(float64(x))
	case fmt.Stringer:
		return x.String()
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Float32 || rv.Kind() == reflect.Float64 {
		return formatFloat(rv.Float())
	}
	return fmt.Sprint(v)
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if f == math.Trunc(f) && !math.IsInf(f, 0) && math.Abs(f) < 1e16 {
		s += ".0"
	}
	return s
}

// Coordinate formats a layout coordinate with three decimals.
func Coordinate(f float64) string {
	return strconv.FormatFloat(f, 'f', style.Digits, 64)
}
