// Package style turns style keywords into per-entity attribute maps.
//
// A plot is configured by an ordered list of [Keywords]. Each key is first
// canonicalized through the alias table (v_size and vertex_size both become
// node_size, margin becomes margins, iterations becomes layout_iterations),
// then sorted into one of three buckets by prefix: node attributes, edge
// attributes, and general settings.
//
// # Value Shapes
//
// Node and edge attribute values are expanded with [Resolve]:
//
//   - scalars (strings, numbers, booleans, arrays such as [RGB], structs)
//     apply to every entity
//   - slices are positional; entities beyond the end get nil
//   - maps are looked up by id; missing ids get nil
//
// Any other value is a FORMAT error naming the keyword.
//
// # Units
//
// [ApplyUnits] converts numeric values to the units the emitters expect:
// lengths to centimeters, line widths to points and label sizes to
// tikz-network font scales. Non-numeric values pass through unchanged.
//
// # Style Files
//
// [LoadFile] reads keywords from TOML, YAML or JSON, keeping the order the
// keys appear in the file so later keys override earlier aliases.
package style
