package ordered

import "slices"

// FromMap builds a Map from a Go map with keys in sorted order.
func FromMap[V any](src map[string]V) *Map[V] {
	keys := make([]string, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := New[V]()
	for _, k := range keys {
		out.Set(k, src[k])
	}
	return out
}

// Plain converts a value tree containing *Map[any] into one built from
// map[string]any and []any, losing key order. It is used where a consumer
// needs ordinary Go maps, such as equality checks and schema loaders.
func Plain(v any) any {
	switch val := v.(type) {
	case *Map[any]:
		out := make(map[string]any, val.Len())
		for k, item := range val.All() {
			out[k] = Plain(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = Plain(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Plain(item)
		}
		return out
	default:
		return v
	}
}
