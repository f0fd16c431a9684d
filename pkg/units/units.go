// Package units converts physical lengths between the units accepted in
// style keywords: pixels, points, millimeters and centimeters.
//
// Conversions go through centimeters:
//
//	c, err := units.New("mm", "cm")
//	c.Convert(10) // 1
//
// A [Converter] is immutable and can be reused for any number of values.
package units

import (
	"fmt"
	"strings"

	"github.com/matzehuels/tikznet/pkg/errors"
)

// Unit is a physical length unit.
type Unit string

// Supported units.
const (
	Pixel      Unit = "px"
	Point      Unit = "pt"
	Millimeter Unit = "mm"
	Centimeter Unit = "cm"
)

// cmPer holds the length of one unit in centimeters.
// Pixels follow the CSS reference of 96 per inch, points 72 per inch.
var cmPer = map[Unit]float64{
	Pixel:      2.54 / 96,
	Point:      2.54 / 72,
	Millimeter: 0.1,
	Centimeter: 1,
}

// All lists the supported units in a stable order.
var All = []Unit{Pixel, Point, Millimeter, Centimeter}

// Parse returns the Unit named by s.
func Parse(s string) (Unit, error) {
	u := Unit(strings.TrimSpace(s))
	if _, ok := cmPer[u]; !ok {
		return "", errors.Config("unknown unit %q (must be one of: px, pt, mm, cm)", s)
	}
	return u, nil
}

// Converter scales values from one unit to another.
type Converter struct {
	From   Unit
	To     Unit
	factor float64
}

// New creates a converter from unit from to unit to.
// Unknown unit names fail with a CONFIG error.
func New(from, to string) (Converter, error) {
	f, err := Parse(from)
	if err != nil {
		return Converter{}, err
	}
	t, err := Parse(to)
	if err != nil {
		return Converter{}, err
	}
	return Converter{From: f, To: t, factor: cmPer[f] / cmPer[t]}, nil
}

// MustNew is like New but panics on unknown units.
// Intended for package-level converters built from constants.
func MustNew(from, to string) Converter {
	c, err := New(from, to)
	if err != nil {
		panic(err)
	}
	return c
}

// Convert returns v expressed in the target unit.
func (c Converter) Convert(v float64) float64 {
	return v * c.factor
}

// String implements fmt.Stringer.
func (c Converter) String() string {
	return fmt.Sprintf("%s->%s", c.From, c.To)
}
