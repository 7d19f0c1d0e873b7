// Package dictionary provides an insertion-ordered dictionary: a map from
// unique keys to values that iterates in the order keys were first inserted.
package dictionary

import (
	"maps"
	"slices"
)

const defaultCapacity = 8

type Pair[K comparable, V any] struct {
	Key   K `json:"key" toml:"key"`
	Value V `json:"value" toml:"value"`
}

// Dictionary keeps its entries in a slice and maps each key to its position
// in that slice. Updating an existing key keeps its position. Removing a key
// shifts the following entries down, so relative order is never disturbed.
//
// The zero value is an empty dictionary ready to use. A Dictionary is not
// safe for concurrent use; see SyncDictionary.
type Dictionary[K comparable, V any] struct {
	entries []Pair[K, V]
	index   map[K]int
	version uint64
}

func New[K comparable, V any]() *Dictionary[K, V] {
	return &Dictionary[K, V]{
		entries: make([]Pair[K, V], 0, defaultCapacity),
		index:   make(map[K]int, defaultCapacity),
	}
}

// WithCapacity panics if capacity is not positive.
func WithCapacity[K comparable, V any](capacity int) *Dictionary[K, V] {
	if capacity <= 0 {
		fault("WithCapacity", ErrZeroCapacity)
	}

	return &Dictionary[K, V]{
		entries: make([]Pair[K, V], 0, capacity),
		index:   make(map[K]int, capacity),
	}
}

// FromSlices pairs keys[i] with values[i], inserting in slice order.
// It panics if the slices differ in length or are both empty.
func FromSlices[K comparable, V any](keys []K, values []V) *Dictionary[K, V] {
	if len(keys) != len(values) {
		fault("FromSlices", ErrLengthMismatch)
	}

	if len(keys) == 0 {
		fault("FromSlices", ErrEmptyInput)
	}

	d := WithCapacity[K, V](len(keys))

	for i, key := range keys {
		d.Insert(key, values[i])
	}

	return d
}

// FromPairs panics on an empty slice. Use CollectPairs when empty input is
// acceptable.
func FromPairs[K comparable, V any](pairs []Pair[K, V]) *Dictionary[K, V] {
	if len(pairs) == 0 {
		fault("FromPairs", ErrEmptyInput)
	}

	d := WithCapacity[K, V](len(pairs))

	for _, p := range pairs {
		d.Insert(p.Key, p.Value)
	}

	return d
}

func (d *Dictionary[K, V]) Get(key K) (V, bool) {
	if i, ok := d.index[key]; ok {
		return d.entries[i].Value, true
	}

	var zero V
	return zero, false
}

// GetFull returns the position of key along with the stored key and value.
func (d *Dictionary[K, V]) GetFull(key K) (int, K, V, bool) {
	if i, ok := d.index[key]; ok {
		e := d.entries[i]
		return i, e.Key, e.Value, true
	}

	var (
		zeroK K
		zeroV V
	)
	return -1, zeroK, zeroV, false
}

func (d *Dictionary[K, V]) GetIndexOf(key K) (int, bool) {
	if i, ok := d.index[key]; ok {
		return i, true
	}

	return -1, false
}

func (d *Dictionary[K, V]) GetKeyValue(key K) (K, V, bool) {
	_, k, v, ok := d.GetFull(key)
	return k, v, ok
}

// GetIndex returns the entry at position i in iteration order.
func (d *Dictionary[K, V]) GetIndex(i int) (K, V, bool) {
	if i < 0 || i >= len(d.entries) {
		var (
			zeroK K
			zeroV V
		)
		return zeroK, zeroV, false
	}

	e := d.entries[i]
	return e.Key, e.Value, true
}

func (d *Dictionary[K, V]) ContainsKey(key K) bool {
	_, ok := d.index[key]
	return ok
}

// Insert adds key with value, or replaces the value of an existing key in
// place. When replacing, the previous value is returned with true.
func (d *Dictionary[K, V]) Insert(key K, value V) (V, bool) {
	d.version++

	if d.index == nil {
		d.index = make(map[K]int, defaultCapacity)
	}

	if i, ok := d.index[key]; ok {
		prev := d.entries[i].Value
		d.entries[i].Value = value
		return prev, true
	}

	d.index[key] = len(d.entries)
	d.entries = append(d.entries, Pair[K, V]{Key: key, Value: value})

	var zero V
	return zero, false
}

// Remove deletes key and returns its value. Entries after it move down one
// position. Removing an absent key does nothing.
func (d *Dictionary[K, V]) Remove(key K) (V, bool) {
	_, v, ok := d.RemoveEntry(key)
	return v, ok
}

func (d *Dictionary[K, V]) RemoveEntry(key K) (K, V, bool) {
	i, ok := d.index[key]
	if !ok {
		var (
			zeroK K
			zeroV V
		)
		return zeroK, zeroV, false
	}

	d.version++

	e := d.entries[i]
	delete(d.index, key)
	d.entries = slices.Delete(d.entries, i, i+1)

	for j := i; j < len(d.entries); j++ {
		d.index[d.entries[j].Key] = j
	}

	return e.Key, e.Value, true
}

// Clear removes all entries but keeps the allocated capacity.
func (d *Dictionary[K, V]) Clear() {
	d.version++

	clear(d.index)
	clear(d.entries)
	d.entries = d.entries[:0]
}

func (d *Dictionary[K, V]) Len() int {
	return len(d.entries)
}

func (d *Dictionary[K, V]) IsEmpty() bool {
	return len(d.entries) == 0
}

func (d *Dictionary[K, V]) Cap() int {
	return cap(d.entries)
}

func (d *Dictionary[K, V]) Keys() []K {
	keys := make([]K, 0, len(d.entries))

	for _, e := range d.entries {
		keys = append(keys, e.Key)
	}

	return keys
}

func (d *Dictionary[K, V]) Values() []V {
	values := make([]V, 0, len(d.entries))

	for _, e := range d.entries {
		values = append(values, e.Value)
	}

	return values
}

// Clone returns an independent copy with the same order. Values are copied
// shallowly.
func (d *Dictionary[K, V]) Clone() *Dictionary[K, V] {
	return &Dictionary[K, V]{
		entries: slices.Clone(d.entries),
		index:   maps.Clone(d.index),
	}
}
