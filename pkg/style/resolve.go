package style

import (
	"reflect"

	"github.com/matzehuels/tikznet/pkg/errors"
)

// AttrMap holds one attribute value per entity. Every entity has an entry;
// the value may be nil.
type AttrMap[K comparable] map[K]any

// Resolve expands value into one entry per id.
//
// Scalars broadcast, slices are positional and maps are looked up by id;
// see the package documentation. key is only used in error messages.
func Resolve[K comparable](key string, value any, ids []K) (AttrMap[K], error) {
	out := make(AttrMap[K], len(ids))
	if value == nil {
		for _, id := range ids {
			out[id] = nil
		}
		return out, nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Array, reflect.Struct:
		for _, id := range ids {
			out[id] = value
		}
		return out, nil

	case reflect.Slice:
		for i, id := range ids {
			if i < rv.Len() {
				out[id] = rv.Index(i).Interface()
			} else {
				out[id] = nil
			}
		}
		return out, nil

	case reflect.Map:
		keyType := rv.Type().Key()
		idType := reflect.TypeFor[K]()
		if !idType.ConvertibleTo(keyType) {
			return nil, errors.Format("%s: map keys of type %s cannot hold %s ids", key, keyType, idType)
		}
		for _, id := range ids {
			out[id] = lookup(rv, reflect.ValueOf(id), keyType)
		}
		return out, nil
	}

	return nil, errors.Format("%s: unsupported value of type %T", key, value)
}

// lookup finds id in m. For interface-keyed maps the id is also tried as
// its underlying string, since decoded documents key maps by plain strings.
func lookup(m, id reflect.Value, keyType reflect.Type) any {
	if v := m.MapIndex(id.Convert(keyType)); v.IsValid() {
		return v.Interface()
	}
	if keyType.Kind() == reflect.Interface && id.Kind() == reflect.String {
		plain := reflect.ValueOf(id.String())
		if plain.Type().ConvertibleTo(keyType) {
			if v := m.MapIndex(plain.Convert(keyType)); v.IsValid() {
				return v.Interface()
			}
		}
	}
	return nil
}
