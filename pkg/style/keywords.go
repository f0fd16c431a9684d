package style

import (
	"sort"
)

// Keyword is a single style setting.
type Keyword struct {
	Key   string
	Value any
}

// Keywords is an ordered list of style settings. When two keywords resolve
// to the same attribute, the later one wins.
type Keywords []Keyword

// FromMap converts a map into keywords sorted by key.
func FromMap(m map[string]any) Keywords {
	kw := make(Keywords, 0, len(m))
	for k, v := range m {
		kw = append(kw, Keyword{Key: k, Value: v})
	}
	sort.Slice(kw, func(i, j int) bool { return kw[i].Key < kw[j].Key })
	return kw
}

// With returns a copy of kw with key set to value at the end.
func (kw Keywords) With(key string, value any) Keywords {
	out := make(Keywords, len(kw), len(kw)+1)
	copy(out, kw)
	return append(out, Keyword{Key: key, Value: value})
}

// Merge returns kw followed by other.
func (kw Keywords) Merge(other Keywords) Keywords {
	out := make(Keywords, 0, len(kw)+len(other))
	out = append(out, kw...)
	return append(out, other...)
}

// Lookup returns the last value whose key canonicalizes to name.
func (kw Keywords) Lookup(name string) (any, bool) {
	for i := len(kw) - 1; i >= 0; i-- {
		if Canonical(kw[i].Key) == name {
			return kw[i].Value, true
		}
	}
	return nil, false
}
