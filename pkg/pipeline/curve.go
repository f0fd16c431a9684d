package pipeline

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/matzehuels/tikznet/pkg/errors"
	"github.com/matzehuels/tikznet/pkg/network"
	"github.com/matzehuels/tikznet/pkg/style"
	"github.com/matzehuels/tikznet/pkg/units"
)

// BendAngle converts a curvature factor into the bend angle of a curved
// edge, in degrees rounded to three decimals.
//
// The angle is measured on a reference edge from (0,0) to (1,1): the
// control point sits at one third of the edge, pushed sideways by c/2.
// The result has the sign of c, and a factor of 0 gives exactly 0.
func BendAngle(c float64) float64 {
	if c == 0 {
		return 0
	}
	from, to := r2.Vec{}, r2.Vec{X: 1, Y: 1}
	edge := r2.Sub(to, from)
	control := r2.Vec{
		X: (2*from.X+to.X)/3 - c*0.5*edge.Y,
		Y: (2*from.Y+to.Y)/3 + c*0.5*edge.X,
	}
	arm := r2.Sub(control, from)

	cos := r2.Dot(edge, arm) / (r2.Norm(edge) * r2.Norm(arm))
	angle := math.Acos(math.Max(-1, math.Min(1, cos))) * 180 / math.Pi
	if c < 0 {
		angle = -angle
	}
	return style.Round(angle)
}

// curvature maps edge_curved factors to bend angles. It returns nil when
// no edge_curved keyword was given.
func curvature(m style.AttrMap[network.EdgeID]) (style.AttrMap[network.EdgeID], error) {
	if m == nil {
		return nil, nil
	}
	out := make(style.AttrMap[network.EdgeID], len(m))
	for id, v := range m {
		if v == nil {
			out[id] = nil
			continue
		}
		c, ok := units.Float(v)
		if !ok {
			return nil, errors.Format("%s: edge %q: curvature must be a number, got %v", style.KeyEdgeCurved, id, v)
		}
		out[id] = BendAngle(c)
	}
	return out, nil
}
