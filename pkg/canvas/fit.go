package canvas

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/matzehuels/tikznet/pkg/errors"
	"github.com/matzehuels/tikznet/pkg/layout"
)

// Fit maps l into the drawable rectangle and returns a new layout.
//
// With keepAspectRatio, both axes are scaled by the smaller of the two
// axis ratios and the result is centered in the rectangle. Without it, each
// axis is stretched to fill the rectangle exactly. An axis on which all
// nodes share one coordinate is not scaled; its nodes land on the center
// line of the rectangle.
func (c *Canvas) Fit(l layout.Layout, keepAspectRatio bool) (layout.Layout, error) {
	out := make(layout.Layout, len(l))
	if len(l) == 0 {
		return out, nil
	}
	for id, p := range l {
		if !finite(p.X) || !finite(p.Y) {
			return nil, errors.Layout("position of node %q is not finite", id)
		}
	}

	lo, hi := l.Bounds()
	ext := r2.Sub(hi, lo)
	dw, dh := c.DrawableWidth(), c.DrawableHeight()

	sx, sy := 1.0, 1.0
	flatX, flatY := ext.X == 0, ext.Y == 0
	if !flatX {
		sx = dw / ext.X
	}
	if !flatY {
		sy = dh / ext.Y
	}
	if keepAspectRatio {
		s := 1.0
		switch {
		case !flatX && !flatY:
			s = math.Min(sx, sy)
		case !flatX:
			s = sx
		case !flatY:
			s = sy
		}
		sx, sy = s, s
	}

	ox, oy := c.Margins.Left, c.Margins.Bottom
	if keepAspectRatio {
		ox += (dw - ext.X*sx) / 2
		oy += (dh - ext.Y*sy) / 2
	}
	cx, cy := c.Margins.Left+dw/2, c.Margins.Bottom+dh/2

	for id, p := range l {
		q := r2.Vec{X: cx, Y: cy}
		if !flatX {
			q.X = (p.X-lo.X)*sx + ox
		}
		if !flatY {
			q.Y = (p.Y-lo.Y)*sy + oy
		}
		out[id] = q
	}
	return out, nil
}
