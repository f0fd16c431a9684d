package style

import (
	"math"
	"strconv"

	"github.com/matzehuels/tikznet/pkg/errors"
	"github.com/matzehuels/tikznet/pkg/network"
	"github.com/matzehuels/tikznet/pkg/units"
)

// Digits is the number of decimals kept for derived values such as font
// scales, bend angles and emitted coordinates.
const Digits = 3

// Round rounds v to [Digits] decimals.
func Round(v float64) float64 {
	p := math.Pow(10, Digits)
	return math.Round(v*p) / p
}

// ApplyUnits converts every attribute with a unit family, reading the unit
// setting from the "units" keyword. Only numeric values are converted.
// It returns a new Resolved; r is not modified.
func ApplyUnits(r *Resolved) (*Resolved, error) {
	setting, err := units.ParseSetting(r.General[KeyUnits])
	if err != nil {
		return nil, err
	}
	toCM, toPT := setting.ToCM(), setting.ToPT()

	out := r.clone()
	for name, m := range r.Nodes {
		a, ok := Lookup(name)
		if !ok || a.Unit == UnitNone {
			continue
		}
		out.Nodes[name] = convertMap(m, a.Unit, toCM, toPT)
	}
	for name, m := range r.Edges {
		a, ok := Lookup(name)
		if !ok || a.Unit == UnitNone {
			continue
		}
		out.Edges[name] = convertMap(m, a.Unit, toCM, toPT)
	}

	for name, v := range r.General {
		a, ok := Lookup(name)
		if !ok || v == nil {
			continue
		}
		switch a.Unit {
		case UnitCanvas:
			w, h, ok := units.Pair(v)
			if !ok {
				return nil, errors.Config("canvas must be a (width, height) pair, got %v", v)
			}
			out.General[name] = [2]float64{toCM.Convert(w), toCM.Convert(h)}
		case UnitMargins:
			m, err := convertMargins(v, toCM)
			if err != nil {
				return nil, err
			}
			out.General[name] = m
		case UnitLengthString:
			if f, ok := units.Float(v); ok {
				out.General[name] = lengthString(toCM.Convert(f))
			}
		}
	}
	return out, nil
}

func convertMap[K comparable](m AttrMap[K], family UnitFamily, toCM, toPT units.Converter) AttrMap[K] {
	out := make(AttrMap[K], len(m))
	for id, v := range m {
		f, ok := units.Float(v)
		if !ok {
			out[id] = v
			continue
		}
		switch family {
		case UnitLength:
			out[id] = toCM.Convert(f)
		case UnitLineWidth:
			out[id] = toPT.Convert(f)
		case UnitFontScale:
			out[id] = Round(toPT.Convert(f) / 7)
		case UnitLengthString:
			out[id] = lengthString(toCM.Convert(f))
		default:
			out[id] = v
		}
	}
	return out
}

// convertMargins converts a uniform margin or a side mapping. Mappings come
// back as map[string]any with all four sides, missing ones 0. Other shapes
// pass through unchanged for the canvas to reject.
func convertMargins(v any, toCM units.Converter) (any, error) {
	if f, ok := units.Float(v); ok {
		return toCM.Convert(f), nil
	}
	sides, ok := v.(map[string]any)
	if !ok {
		if fm, isFloat := v.(map[string]float64); isFloat {
			sides = make(map[string]any, len(fm))
			for k, f := range fm {
				sides[k] = f
			}
		} else {
			return v, nil
		}
	}
	out := map[string]any{"top": 0.0, "left": 0.0, "bottom": 0.0, "right": 0.0}
	for k, raw := range sides {
		f, ok := units.Float(raw)
		if !ok {
			return nil, errors.Config("margin %q must be a number, got %v", k, raw)
		}
		out[k] = toCM.Convert(f)
	}
	return out, nil
}

func lengthString(cm float64) string {
	return strconv.FormatFloat(cm, 'f', -1, 64) + "cm"
}

// NodeSizes returns the numeric node_size values in node order.
func (r *Resolved) NodeSizes(nodes []network.NodeID) []float64 {
	m, ok := r.Nodes[KeyNodeSize]
	if !ok {
		return nil
	}
	var sizes []float64
	for _, id := range nodes {
		if f, ok := units.Float(m[id]); ok {
			sizes = append(sizes, f)
		}
	}
	return sizes
}
