// Package canvas defines the drawable rectangle of a figure and fits
// layouts into it.
//
// A canvas is Width x Height centimeters with four margins. The area inside
// the margins is the drawable rectangle; [Canvas.Fit] maps any layout onto
// it, either preserving the layout's aspect ratio (scaled uniformly and
// centered) or stretching each axis to fill the rectangle.
package canvas

import (
	"math"
	"sort"
	"strings"

	"github.com/matzehuels/tikznet/pkg/errors"
	"github.com/matzehuels/tikznet/pkg/units"
)

// Default canvas geometry in centimeters.
const (
	DefaultWidth  = 6.0
	DefaultHeight = 6.0
	// DefaultMargin is the automatic margin when no node size is known.
	DefaultMargin = 0.35
)

// Margins is the empty space between the canvas border and the drawable
// rectangle.
type Margins struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Bottom float64 `json:"bottom"`
	Right  float64 `json:"right"`
}

// Uniform returns margins of m on all four sides.
func Uniform(m float64) Margins {
	return Margins{Top: m, Left: m, Bottom: m, Right: m}
}

// Canvas is the figure rectangle.
type Canvas struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Margins Margins `json:"margins"`

	nodeSizes []float64
}

// New builds a canvas. Zero width or height selects the 6 x 6 default.
// margins accepts the shapes documented on [Canvas.ResolveMargins];
// nodeSizes feed the automatic margin.
func New(width, height float64, margins any, nodeSizes []float64) (*Canvas, error) {
	if width == 0 {
		width = DefaultWidth
	}
	if height == 0 {
		height = DefaultHeight
	}
	if width < 0 || height < 0 || !finite(width) || !finite(height) {
		return nil, errors.Config("canvas size must be positive, got %v x %v", width, height)
	}

	c := &Canvas{Width: width, Height: height, nodeSizes: nodeSizes}
	m, err := c.ResolveMargins(margins)
	if err != nil {
		return nil, err
	}
	c.Margins = m
	if c.DrawableWidth() <= 0 || c.DrawableHeight() <= 0 {
		return nil, errors.Config("margins %+v leave no drawable area on a %v x %v canvas", m, width, height)
	}
	return c, nil
}

// Size reads the value of the "canvas" keyword: nil or a pair of numbers.
func Size(value any) (width, height float64, err error) {
	if value == nil {
		return 0, 0, nil
	}
	w, h, ok := units.Pair(value)
	if !ok {
		return 0, 0, errors.Config("canvas must be a (width, height) pair, got %v", value)
	}
	return w, h, nil
}

// ResolveMargins normalizes a margins value:
//
//   - nil: half the largest node size, or [DefaultMargin] without sizes
//   - a number: the same margin on all four sides
//   - a mapping with keys top, left, bottom, right (map[string]any,
//     map[string]float64 or [Margins]): missing sides are 0
//
// Anything else, and negative values, are CONFIG errors.
func (c *Canvas) ResolveMargins(value any) (Margins, error) {
	switch v := value.(type) {
	case nil:
		return Uniform(c.autoMargin()), nil
	case Margins:
		return v, checkMargins(v)
	case *Margins:
		if v == nil {
			return Uniform(c.autoMargin()), nil
		}
		return *v, checkMargins(*v)
	case map[string]float64:
		generic := make(map[string]any, len(v))
		for k, f := range v {
			generic[k] = f
		}
		return mapMargins(generic)
	case map[string]any:
		return mapMargins(v)
	}
	if f, ok := units.Float(value); ok {
		m := Uniform(f)
		return m, checkMargins(m)
	}
	return Margins{}, errors.Config("margins must be a number or a mapping of sides, got %T", value)
}

func (c *Canvas) autoMargin() float64 {
	largest := math.Inf(-1)
	for _, s := range c.nodeSizes {
		largest = math.Max(largest, s)
	}
	if math.IsInf(largest, -1) {
		return DefaultMargin
	}
	return largest / 2
}

func mapMargins(sides map[string]any) (Margins, error) {
	var m Margins
	keys := make([]string, 0, len(sides))
	for k := range sides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		f, ok := units.Float(sides[k])
		if !ok {
			return Margins{}, errors.Config("margin %q must be a number, got %v", k, sides[k])
		}
		switch strings.ToLower(k) {
		case "top":
			m.Top = f
		case "left":
			m.Left = f
		case "bottom":
			m.Bottom = f
		case "right":
			m.Right = f
		default:
			return Margins{}, errors.Config("unknown margin side %q (use top, left, bottom, right)", k)
		}
	}
	return m, checkMargins(m)
}

func checkMargins(m Margins) error {
	for _, v := range []float64{m.Top, m.Left, m.Bottom, m.Right} {
		if v < 0 || !finite(v) {
			return errors.Config("margins must be non-negative, got %+v", m)
		}
	}
	return nil
}

// DrawableWidth is the width inside the left and right margins.
func (c *Canvas) DrawableWidth() float64 { return c.Width - c.Margins.Left - c.Margins.Right }

// DrawableHeight is the height inside the top and bottom margins.
func (c *Canvas) DrawableHeight() float64 { return c.Height - c.Margins.Top - c.Margins.Bottom }

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
