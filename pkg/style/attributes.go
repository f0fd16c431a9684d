package style

import "strings"

// Domain is the bucket a keyword is sorted into.
type Domain int

const (
	DomainGeneral Domain = iota
	DomainNode
	DomainEdge
)

func (d Domain) String() string {
	switch d {
	case DomainNode:
		return "node"
	case DomainEdge:
		return "edge"
	default:
		return "general"
	}
}

// Kind tells emitters how to write a value.
type Kind int

const (
	// KindValue is written as key=value.
	KindValue Kind = iota
	// KindFlag is a boolean written as a bare option when true.
	KindFlag
	// KindColor accepts a color name or an RGB tuple.
	KindColor
)

// UnitFamily selects the conversion [ApplyUnits] performs.
type UnitFamily int

const (
	UnitNone UnitFamily = iota
	// UnitLength converts to centimeters.
	UnitLength
	// UnitFontScale converts to points and divides by 7.
	UnitFontScale
	// UnitLineWidth converts to points.
	UnitLineWidth
	// UnitLengthString converts to centimeters and appends "cm".
	UnitLengthString
	// UnitCanvas converts a (width, height) pair to centimeters.
	UnitCanvas
	// UnitMargins converts a margin number or side mapping to centimeters.
	UnitMargins
)

// Attribute describes a canonical keyword.
type Attribute struct {
	Name   string
	Domain Domain
	Kind   Kind
	Unit   UnitFamily

	// Option is the tikz-network option name, empty for attributes that
	// are not written as an option.
	Option string
}

// Canonical keyword names that the pipeline reads.
const (
	KeyLayout           = "layout"
	KeyLayoutForce      = "layout_force"
	KeyLayoutPositions  = "layout_positions"
	KeyLayoutFixed      = "layout_fixed"
	KeyLayoutIterations = "layout_iterations"
	KeyLayoutThreshold  = "layout_threshold"
	KeyLayoutWeight     = "layout_weight"
	KeyLayoutDimension  = "layout_dimension"
	KeyLayoutSeed       = "layout_seed"
	KeyLayoutSolver     = "layout_solver"
	KeyCanvas           = "canvas"
	KeyMargins          = "margins"
	KeyUnits            = "units"
	KeyKeepAspectRatio  = "keep_aspect_ratio"
	KeyStandalone       = "standalone"
	KeyNodeSize         = "node_size"
	KeyEdgeDirected     = "edge_directed"
	KeyEdgeCurved       = "edge_curved"
	KeyEdgeStyle        = "edge_style"
	KeyEdgeArrowSize    = "edge_arrow_size"
	KeyEdgeArrowWidth   = "edge_arrow_width"
	KeyXShift           = "xshift"
	KeyYShift           = "yshift"
)

var attributes = []Attribute{
	{"node_size", DomainNode, KindValue, UnitLength, "size"},
	{"node_color", DomainNode, KindColor, UnitNone, "color"},
	{"node_r", DomainNode, KindValue, UnitNone, "R"},
	{"node_g", DomainNode, KindValue, UnitNone, "G"},
	{"node_b", DomainNode, KindValue, UnitNone, "B"},
	{"node_opacity", DomainNode, KindValue, UnitNone, "opacity"},
	{"node_label", DomainNode, KindValue, UnitNone, "label"},
	{"node_label_position", DomainNode, KindValue, UnitNone, "position"},
	{"node_label_distance", DomainNode, KindValue, UnitLength, "distance"},
	{"node_label_color", DomainNode, KindValue, UnitNone, "fontcolor"},
	{"node_label_size", DomainNode, KindValue, UnitFontScale, "fontscale"},
	{"node_shape", DomainNode, KindValue, UnitNone, "shape"},
	{"node_style", DomainNode, KindValue, UnitNone, "style"},
	{"node_layer", DomainNode, KindValue, UnitNone, "layer"},
	{"node_label_off", DomainNode, KindFlag, UnitNone, "NoLabel"},
	{"node_label_as_id", DomainNode, KindFlag, UnitNone, "IdAsLabel"},
	{"node_math_mode", DomainNode, KindFlag, UnitNone, "Math"},
	{"node_rgb", DomainNode, KindFlag, UnitNone, "RGB"},
	{"node_pseudo", DomainNode, KindFlag, UnitNone, "Pseudo"},

	{"edge_width", DomainEdge, KindValue, UnitLineWidth, "lw"},
	{"edge_color", DomainEdge, KindColor, UnitNone, "color"},
	{"edge_r", DomainEdge, KindValue, UnitNone, "R"},
	{"edge_g", DomainEdge, KindValue, UnitNone, "G"},
	{"edge_b", DomainEdge, KindValue, UnitNone, "B"},
	{"edge_opacity", DomainEdge, KindValue, UnitNone, "opacity"},
	{"edge_curved", DomainEdge, KindValue, UnitNone, "bend"},
	{"edge_label", DomainEdge, KindValue, UnitNone, "label"},
	{"edge_label_position", DomainEdge, KindValue, UnitNone, "position"},
	{"edge_label_distance", DomainEdge, KindValue, UnitNone, "distance"},
	{"edge_label_color", DomainEdge, KindValue, UnitNone, "fontcolor"},
	{"edge_label_size", DomainEdge, KindValue, UnitFontScale, "fontscale"},
	{"edge_style", DomainEdge, KindValue, UnitNone, "style"},
	{"edge_arrow_size", DomainEdge, KindValue, UnitLength, ""},
	{"edge_arrow_width", DomainEdge, KindValue, UnitLength, ""},
	{"edge_loop_size", DomainEdge, KindValue, UnitLengthString, "loopsize"},
	{"edge_loop_position", DomainEdge, KindValue, UnitNone, "loopposition"},
	{"edge_loop_shape", DomainEdge, KindValue, UnitNone, "loopshape"},
	{"edge_directed", DomainEdge, KindFlag, UnitNone, "Direct"},
	{"edge_math_mode", DomainEdge, KindFlag, UnitNone, "Math"},
	{"edge_rgb", DomainEdge, KindFlag, UnitNone, "RGB"},
	{"edge_not_in_bg", DomainEdge, KindFlag, UnitNone, "NotInBG"},

	{KeyLayout, DomainGeneral, KindValue, UnitNone, ""},
	{KeyLayoutForce, DomainGeneral, KindValue, UnitNone, ""},
	{KeyLayoutPositions, DomainGeneral, KindValue, UnitNone, ""},
	{KeyLayoutFixed, DomainGeneral, KindValue, UnitNone, ""},
	{KeyLayoutIterations, DomainGeneral, KindValue, UnitNone, ""},
	{KeyLayoutThreshold, DomainGeneral, KindValue, UnitNone, ""},
	{KeyLayoutWeight, DomainGeneral, KindValue, UnitNone, ""},
	{KeyLayoutDimension, DomainGeneral, KindValue, UnitNone, ""},
	{KeyLayoutSeed, DomainGeneral, KindValue, UnitNone, ""},
	{KeyLayoutSolver, DomainGeneral, KindValue, UnitNone, ""},
	{KeyCanvas, DomainGeneral, KindValue, UnitCanvas, ""},
	{KeyMargins, DomainGeneral, KindValue, UnitMargins, ""},
	{KeyUnits, DomainGeneral, KindValue, UnitNone, ""},
	{KeyKeepAspectRatio, DomainGeneral, KindFlag, UnitNone, ""},
	{KeyStandalone, DomainGeneral, KindFlag, UnitNone, ""},
	{KeyXShift, DomainGeneral, KindValue, UnitLengthString, ""},
	{KeyYShift, DomainGeneral, KindValue, UnitLengthString, ""},
}

var byName = func() map[string]Attribute {
	m := make(map[string]Attribute, len(attributes))
	for _, a := range attributes {
		m[a.Name] = a
	}
	return m
}()

// keyAliases rename whole keys and are consulted before prefix aliases, so
// n_positions becomes layout_positions rather than node_positions.
var keyAliases = map[string]string{
	"margin":            KeyMargins,
	"bbox":              KeyCanvas,
	"figure_size":       KeyCanvas,
	"unit":              KeyUnits,
	"fixed":             KeyLayoutFixed,
	"fixed_nodes":       KeyLayoutFixed,
	"fixed_vertices":    KeyLayoutFixed,
	"fixed_n":           KeyLayoutFixed,
	"fixed_v":           KeyLayoutFixed,
	"positions":         KeyLayoutPositions,
	"initial_positions": KeyLayoutPositions,
	"node_positions":    KeyLayoutPositions,
	"vertex_positions":  KeyLayoutPositions,
	"n_positions":       KeyLayoutPositions,
	"v_positions":       KeyLayoutPositions,
	"force":             KeyLayoutForce,
	"iterations":        KeyLayoutIterations,
	"threshold":         KeyLayoutThreshold,
	"weight":            KeyLayoutWeight,
	"dimension":         KeyLayoutDimension,
	"seed":              KeyLayoutSeed,
	"solver":            KeyLayoutSolver,
}

// prefixAliases are tried in order; longer prefixes come first.
var prefixAliases = []struct{ from, to string }{
	{"vertex_", "node_"},
	{"link_", "edge_"},
	{"v_", "node_"},
	{"n_", "node_"},
	{"l_", "edge_"},
	{"e_", "edge_"},
}

// Canonical returns the canonical name of a keyword.
func Canonical(key string) string {
	if to, ok := keyAliases[key]; ok {
		return to
	}
	for _, p := range prefixAliases {
		if strings.HasPrefix(key, p.from) {
			renamed := p.to + strings.TrimPrefix(key, p.from)
			if to, ok := keyAliases[renamed]; ok {
				return to
			}
			return renamed
		}
	}
	return key
}

// Lookup returns the table entry for a canonical name.
func Lookup(name string) (Attribute, bool) {
	a, ok := byName[name]
	return a, ok
}

// DomainOf returns the bucket for a canonical name. Names outside the table
// are bucketed by their node_ or edge_ prefix.
func DomainOf(name string) Domain {
	if a, ok := byName[name]; ok {
		return a.Domain
	}
	switch {
	case strings.HasPrefix(name, "node_"):
		return DomainNode
	case strings.HasPrefix(name, "edge_"):
		return DomainEdge
	}
	return DomainGeneral
}

// IsFlag reports whether name is a boolean option.
func IsFlag(name string) bool {
	return byName[name].Kind == KindFlag
}

// Attributes returns the canonical table for a domain in declaration order.
func Attributes(d Domain) []Attribute {
	var out []Attribute
	for _, a := range attributes {
		if a.Domain == d {
			out = append(out, a)
		}
	}
	return out
}
