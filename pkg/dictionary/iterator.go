package dictionary

import (
	"io"
	"iter"
)

var ErrFinished = io.EOF

// All returns an iterator over the entries in insertion order. The
// dictionary must not be modified while the loop runs; doing so panics with
// ErrModified.
func (d *Dictionary[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		version := d.version

		for i := 0; i < len(d.entries); i++ {
			e := d.entries[i]

			if !yield(e.Key, e.Value) {
				return
			}

			if d.version != version {
				fault("All", ErrModified)
			}
		}
	}
}

// Iterator walks a dictionary one entry at a time.
type Iterator[K comparable, V any] struct {
	d       *Dictionary[K, V]
	pos     int
	version uint64
}

func (d *Dictionary[K, V]) Iter() *Iterator[K, V] {
	return &Iterator[K, V]{d: d, version: d.version}
}

// Next returns the next entry, ErrFinished once every entry has been seen, or
// a *UsageError wrapping ErrModified if the dictionary changed since the
// iterator was created.
func (it *Iterator[K, V]) Next() (p Pair[K, V], err error) {
	if it.d.version != it.version {
		err = &UsageError{Op: "Next", Err: ErrModified}
		return
	}

	if it.pos >= len(it.d.entries) {
		err = ErrFinished
		return
	}

	p = it.d.entries[it.pos]
	it.pos++
	return
}

// Reset rewinds the iterator to the first entry and accepts the current
// state of the dictionary.
func (it *Iterator[K, V]) Reset() {
	it.pos = 0
	it.version = it.d.version
}
