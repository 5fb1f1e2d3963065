// Package ordered provides an insertion-ordered string-keyed map whose JSON
// and YAML encodings preserve declaration order.
//
// Documents built from declarations are trees of *Map[any], []any and
// scalars. Go maps would sort keys on output; Map keeps the order in which
// keys were first set, so a document reads the way it was declared.
package ordered

import (
	"bytes"
	"iter"
	"slices"

	"github.com/goccy/go-json"
)

// Map is a string-keyed map that remembers insertion order.
// The zero value is ready to use.
type Map[V any] struct {
	keys   []string
	values map[string]V
}

// New creates an empty Map.
func New[V any]() *Map[V] {
	return &Map[V]{}
}

// Set assigns v to k. A key that already exists keeps its original position.
func (m *Map[V]) Set(k string, v V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, ok := m.values[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.values[k] = v
}

// Get returns the value stored at k.
func (m *Map[V]) Get(k string) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	v, ok := m.values[k]
	return v, ok
}

// Has reports whether k is present.
func (m *Map[V]) Has(k string) bool {
	_, ok := m.Get(k)
	return ok
}

// Delete removes k.
func (m *Map[V]) Delete(k string) {
	if m == nil {
		return
	}
	if _, ok := m.values[k]; !ok {
		return
	}
	delete(m.values, k)
	m.keys = slices.DeleteFunc(m.keys, func(s string) bool { return s == k })
}

// Len returns the number of keys.
func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns a copy of the keys in insertion order.
func (m *Map[V]) Keys() []string {
	if m == nil {
		return nil
	}
	return slices.Clone(m.keys)
}

// All iterates over the entries in insertion order.
func (m *Map[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Clone returns a shallow copy of m.
func (m *Map[V]) Clone() *Map[V] {
	out := New[V]()
	for k, v := range m.All() {
		out.Set(k, v)
	}
	return out
}

// MarshalJSON encodes the map as a JSON object in insertion order.
func (m *Map[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')

		valJSON, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(valJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
