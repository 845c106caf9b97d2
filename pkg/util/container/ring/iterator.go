// Copyright 2025 The DSA Authors.
//
// Use of this software is governed by the MIT License included in the
// /LICENSE file.

package ring

import (
	"github.com/DanielBrMz/DSA/pkg/util/container"
	"github.com/cockroachdb/errors"
)

// Iterator is a cursor over the logical window of a Ring. It is a view: it
// owns no storage and is invalidated by any push, pop, rotate, or clear on
// the Ring, since those may change the logical position of wrapped
// elements. A stale Iterator stops yielding and reports the condition
// through Err.
type Iterator[T any] struct {
	r   *Ring[T]
	pos int // logical position in [0, size]; size is the end position
	gen uint64
}

// Iter returns a cursor positioned before the front of the window.
func (r *Ring[T]) Iter() *Iterator[T] {
	return &Iterator[T]{r: r, gen: r.gen}
}

// Next returns the element under the cursor and advances, or ok == false at
// the end of the window or once the Ring has been structurally mutated.
func (it *Iterator[T]) Next() (T, bool) {
	var zero T
	if !it.Valid() || it.pos >= it.r.size {
		return zero, false
	}
	value := it.r.buf[it.r.normalize(it.r.head+it.pos)]
	it.pos++
	return value, true
}

// Valid reports whether the Ring is unmodified since the cursor was taken.
func (it *Iterator[T]) Valid() bool {
	return it.r != nil && it.gen == it.r.gen
}

// Err returns ErrInvalidIterator once the cursor has been invalidated by a
// structural mutation, and nil otherwise.
func (it *Iterator[T]) Err() error {
	if !it.Valid() {
		return errors.Wrap(container.ErrInvalidIterator, "ring mutated during iteration")
	}
	return nil
}
