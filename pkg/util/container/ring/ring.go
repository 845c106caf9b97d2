// Copyright 2025 The DSA Authors.
//
// Use of this software is governed by the MIT License included in the
// /LICENSE file.

// Package ring implements a fixed-capacity double-ended queue over a
// circular buffer.
//
// Note: it is backed by a slice and, unlike a growable deque, it never
// reallocates; pushing onto a full Ring is an error.
package ring

import (
	"github.com/DanielBrMz/DSA/pkg/util/container"
	"github.com/cockroachdb/errors"
)

// Ring holds a logical window [head, head+size) modulo capacity over a
// single buffer allocated at construction. All four end operations are O(1).
// Construct with New, FromSlice, or Repeat.
type Ring[T any] struct {
	alloc container.Allocator[T]
	buf   []T
	head  int // index of the front of the window
	size  int
	gen   uint64 // bumped on every structural mutation; stales cursors
}

// Option configures a Ring under construction.
type Option[T any] func(*config[T])

type config[T any] struct {
	alloc container.Allocator[T]
}

// WithAllocator routes the buffer allocation through a.
func WithAllocator[T any](a container.Allocator[T]) Option[T] {
	return func(cfg *config[T]) { cfg.alloc = a }
}

// New returns an empty Ring with the given fixed capacity.
func New[T any](capacity int, opts ...Option[T]) (*Ring[T], error) {
	cfg := config[T]{alloc: container.NewDefaultAllocator[T]()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if capacity <= 0 {
		return nil, errors.Newf("ring: capacity must be positive, got %d", capacity)
	}
	buf, err := cfg.alloc.Alloc(capacity)
	if err != nil {
		return nil, err
	}
	return &Ring[T]{alloc: cfg.alloc, buf: buf}, nil
}

// FromSlice returns a Ring of the given capacity pre-filled with a copy of
// src. capacity must fit len(src).
func FromSlice[T any](capacity int, src []T, opts ...Option[T]) (*Ring[T], error) {
	if capacity < len(src) {
		return nil, errors.Newf("ring: capacity %d cannot hold %d elements", capacity, len(src))
	}
	r, err := New[T](capacity, opts...)
	if err != nil {
		return nil, err
	}
	r.size = copy(r.buf, src)
	return r, nil
}

// Repeat returns a full Ring of count copies of value; the count becomes
// both size and capacity.
func Repeat[T any](count int, value T, opts ...Option[T]) (*Ring[T], error) {
	r, err := New[T](count, opts...)
	if err != nil {
		return nil, err
	}
	for i := range r.buf {
		r.buf[i] = value
	}
	r.size = count
	return r, nil
}

// Len returns the number of elements in the window.
func (r *Ring[T]) Len() int { return r.size }

// Cap returns the fixed capacity.
func (r *Ring[T]) Cap() int { return len(r.buf) }

// Empty reports whether the Ring holds no elements.
func (r *Ring[T]) Empty() bool { return r.size == 0 }

// Full reports whether size has reached capacity. Pushing onto a full Ring
// fails; it never grows.
func (r *Ring[T]) Full() bool { return r.size == len(r.buf) }

// normalize maps a signed buffer offset into [0, capacity).
func (r *Ring[T]) normalize(i int) int {
	n := len(r.buf)
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// tail is the next-write slot: (head+size) mod capacity.
func (r *Ring[T]) tail() int { return r.normalize(r.head + r.size) }

// At returns the element at logical position i (zero-based from the front).
func (r *Ring[T]) At(i int) (T, error) {
	if i < 0 || i >= r.size {
		var zero T
		return zero, errors.Wrapf(container.ErrIndexOutOfRange, "index %d, length %d", i, r.size)
	}
	return r.buf[r.normalize(r.head+i)], nil
}

// Front returns the element at the front of the window.
func (r *Ring[T]) Front() (T, error) {
	if r.size == 0 {
		var zero T
		return zero, errors.Wrap(container.ErrUnderflow, "front of empty ring")
	}
	return r.buf[r.head], nil
}

// Back returns the element at the back of the window.
func (r *Ring[T]) Back() (T, error) {
	if r.size == 0 {
		var zero T
		return zero, errors.Wrap(container.ErrUnderflow, "back of empty ring")
	}
	return r.buf[r.normalize(r.head+r.size-1)], nil
}

// PushFront decrements head with wraparound and writes there. Fails with
// ErrCapacityExceeded when full.
func (r *Ring[T]) PushFront(value T) error {
	if r.Full() {
		return errors.Wrapf(container.ErrCapacityExceeded, "ring is full (capacity %d)", len(r.buf))
	}
	r.head = r.normalize(r.head - 1)
	r.buf[r.head] = value
	r.size++
	r.gen++
	return nil
}

// PushBack writes at tail then advances it. Fails with ErrCapacityExceeded
// when full.
func (r *Ring[T]) PushBack(value T) error {
	if r.Full() {
		return errors.Wrapf(container.ErrCapacityExceeded, "ring is full (capacity %d)", len(r.buf))
	}
	r.buf[r.tail()] = value
	r.size++
	r.gen++
	return nil
}

// PopFront removes and returns the front element. Fails with ErrUnderflow
// when empty.
func (r *Ring[T]) PopFront() (T, error) {
	var zero T
	if r.size == 0 {
		return zero, errors.Wrap(container.ErrUnderflow, "pop from empty ring")
	}
	value := r.buf[r.head]
	r.buf[r.head] = zero // release the reference
	r.head = r.normalize(r.head + 1)
	r.size--
	r.gen++
	return value, nil
}

// PopBack removes and returns the back element. Fails with ErrUnderflow
// when empty.
func (r *Ring[T]) PopBack() (T, error) {
	var zero T
	if r.size == 0 {
		return zero, errors.Wrap(container.ErrUnderflow, "pop from empty ring")
	}
	last := r.normalize(r.head + r.size - 1)
	value := r.buf[last]
	r.buf[last] = zero
	r.size--
	r.gen++
	return value, nil
}

// Rotate shifts the window by n positions in O(1) by adjusting head only;
// no element moves. Positive n rotates toward the back, negative toward the
// front; n is normalized modulo the current size. On a Ring that is not
// full the window slides over vacated slots, which read as zero values, so
// rotation is meaningful primarily on a full Ring.
func (r *Ring[T]) Rotate(n int) {
	if r.size == 0 {
		return
	}
	n %= r.size
	if n < 0 {
		n += r.size
	}
	if n == 0 {
		return
	}
	r.head = r.normalize(r.head + n)
	r.gen++
}

// Clear removes all elements, retaining the buffer.
func (r *Ring[T]) Clear() {
	var zero T
	for i := 0; i < r.size; i++ {
		r.buf[r.normalize(r.head+i)] = zero
	}
	r.head = 0
	r.size = 0
	r.gen++
}

// Clone returns a deep copy with the same capacity. The copy's window
// starts at slot 0.
func (r *Ring[T]) Clone() (*Ring[T], error) {
	buf, err := r.alloc.Alloc(len(r.buf))
	if err != nil {
		return nil, err
	}
	clone := &Ring[T]{alloc: r.alloc, buf: buf, size: r.size}
	for i := 0; i < r.size; i++ {
		buf[i] = r.buf[r.normalize(r.head+i)]
	}
	return clone, nil
}

// Take returns a Ring that assumes ownership of r's buffer, leaving r with
// a fresh empty buffer of the same capacity (allocated eagerly so r stays
// usable; the allocation cannot fail under the default strategy).
func (r *Ring[T]) Take() (*Ring[T], error) {
	buf, err := r.alloc.Alloc(len(r.buf))
	if err != nil {
		return nil, err
	}
	moved := &Ring[T]{alloc: r.alloc, buf: r.buf, head: r.head, size: r.size}
	r.buf = buf
	r.head = 0
	r.size = 0
	r.gen++
	return moved, nil
}

// ToSlice returns a copy of the window in logical order.
func (r *Ring[T]) ToSlice() []T {
	out := make([]T, r.size)
	for i := 0; i < r.size; i++ {
		out[i] = r.buf[r.normalize(r.head+i)]
	}
	return out
}

// ForEach calls fn on each element in logical order until fn returns false.
func (r *Ring[T]) ForEach(fn func(T) bool) {
	for i := 0; i < r.size; i++ {
		if !fn(r.buf[r.normalize(r.head+i)]) {
			return
		}
	}
}

// Equal reports whether a and b hold the same sequence. Capacity and window
// placement do not participate.
func Equal[T comparable](a, b *Ring[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T any](a, b *Ring[T], eq func(T, T) bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if !eq(a.buf[a.normalize(a.head+i)], b.buf[b.normalize(b.head+i)]) {
			return false
		}
	}
	return true
}
