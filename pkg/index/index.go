// Package index provides the ordered map that holds desktop entries
// between parsing and selection.
package index

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// OrderedMap maps unique keys to values and always traverses them in
// ascending key order, independent of insertion order.
type OrderedMap[K cmp.Ordered, V any] struct {
	items map[K]V
}

// New returns an empty OrderedMap.
func New[K cmp.Ordered, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{items: make(map[K]V)}
}

// Insert stores value under key. An existing key is overwritten.
func (m *OrderedMap[K, V]) Insert(key K, value V) {
	m.items[key] = value
}

// Find returns the value stored under key.
func (m *OrderedMap[K, V]) Find(key K) (V, bool) {
	value, ok := m.items[key]
	return value, ok
}

// Len returns the number of keys.
func (m *OrderedMap[K, V]) Len() int {
	return len(m.items)
}

// Keys returns all keys sorted ascending.
func (m *OrderedMap[K, V]) Keys() []K {
	return slices.Sorted(maps.Keys(m.items))
}

// Traverse calls visit for every entry in ascending key order.
// Keys are snapshotted before the first call.
func (m *OrderedMap[K, V]) Traverse(visit func(key K, value V)) {
	for key, value := range m.All() {
		visit(key, value)
	}
}

// All returns an iterator over the entries in ascending key order.
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, key := range m.Keys() {
			if !yield(key, m.items[key]) {
				return
			}
		}
	}
}
