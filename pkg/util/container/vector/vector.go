// Copyright 2025 The DSA Authors.
//
// Use of this software is governed by the MIT License included in the
// /LICENSE file.

// Package vector implements a generic dynamic array over a single
// contiguous buffer that grows by a factor of 1.5.
package vector

import (
	"github.com/DanielBrMz/DSA/pkg/util/container"
	"github.com/cockroachdb/errors"
)

// initialCapacity is the smallest capacity a growth step will produce.
const initialCapacity = 16

// Vector is a contiguous growable buffer. Elements occupy indices
// [0, Len()); the buffer is exclusively owned and reallocated wholesale on
// growth. The zero value is not usable; construct with New, FromSlice, or
// Repeat.
type Vector[T any] struct {
	alloc container.Allocator[T]
	buf   []T // len(buf) is the capacity; elements live in buf[:size]
	size  int
}

// Option configures a Vector under construction.
type Option[T any] func(*config[T])

type config[T any] struct {
	capacity int
	alloc    container.Allocator[T]
}

// WithCapacity pre-allocates space for n elements.
func WithCapacity[T any](n int) Option[T] {
	return func(cfg *config[T]) { cfg.capacity = n }
}

// WithAllocator routes all buffer allocation through a.
func WithAllocator[T any](a container.Allocator[T]) Option[T] {
	return func(cfg *config[T]) { cfg.alloc = a }
}

// New returns an empty Vector. Without WithCapacity no buffer is allocated
// until the first insert.
func New[T any](opts ...Option[T]) (*Vector[T], error) {
	cfg := config[T]{alloc: container.NewDefaultAllocator[T]()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.capacity < 0 {
		return nil, errors.Newf("vector: negative capacity %d", cfg.capacity)
	}
	v := &Vector[T]{alloc: cfg.alloc}
	if cfg.capacity > 0 {
		buf, err := cfg.alloc.Alloc(cfg.capacity)
		if err != nil {
			return nil, err
		}
		v.buf = buf
	}
	return v, nil
}

// FromSlice returns a Vector holding a copy of src. The returned Vector does
// not share memory with src.
func FromSlice[T any](src []T, opts ...Option[T]) (*Vector[T], error) {
	v, err := New[T](opts...)
	if err != nil {
		return nil, err
	}
	if err := v.Reserve(len(src)); err != nil {
		return nil, err
	}
	v.size = copy(v.buf, src)
	return v, nil
}

// Repeat returns a Vector of count copies of value.
func Repeat[T any](count int, value T, opts ...Option[T]) (*Vector[T], error) {
	if count < 0 {
		return nil, errors.Newf("vector: negative count %d", count)
	}
	v, err := New[T](opts...)
	if err != nil {
		return nil, err
	}
	if err := v.Reserve(count); err != nil {
		return nil, err
	}
	for i := 0; i < count; i++ {
		v.buf[i] = value
	}
	v.size = count
	return v, nil
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the current capacity.
func (v *Vector[T]) Cap() int { return len(v.buf) }

// Empty reports whether the Vector holds no elements.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// At returns the element at position i, or ErrIndexOutOfRange.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, errors.Wrapf(container.ErrIndexOutOfRange, "index %d, length %d", i, v.size)
	}
	return v.buf[i], nil
}

// GetUnsafe returns the element at position i without bounds checking.
// Out-of-range indices panic or read stale slots.
func (v *Vector[T]) GetUnsafe(i int) T { return v.buf[i] }

// Set replaces the element at position i, or returns ErrIndexOutOfRange.
func (v *Vector[T]) Set(i int, value T) error {
	if i < 0 || i >= v.size {
		return errors.Wrapf(container.ErrIndexOutOfRange, "index %d, length %d", i, v.size)
	}
	v.buf[i] = value
	return nil
}

// SetUnsafe replaces the element at position i without bounds checking.
func (v *Vector[T]) SetUnsafe(i int, value T) { v.buf[i] = value }

// Front returns the first element, or ErrUnderflow when empty.
func (v *Vector[T]) Front() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, errors.Wrap(container.ErrUnderflow, "front of empty vector")
	}
	return v.buf[0], nil
}

// Back returns the last element, or ErrUnderflow when empty.
func (v *Vector[T]) Back() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, errors.Wrap(container.ErrUnderflow, "back of empty vector")
	}
	return v.buf[v.size-1], nil
}

// growthTarget computes the capacity for a growth step that must fit need
// elements: max(cap*1.5, max(initialCapacity, need)). The 1.5 factor bounds
// wasted memory to 50% while keeping reallocation frequency logarithmic.
func (v *Vector[T]) growthTarget(need int) int {
	target := len(v.buf) + len(v.buf)/2
	if target < initialCapacity {
		target = initialCapacity
	}
	if target < need {
		target = need
	}
	return target
}

// reallocate replaces the buffer with one of newCap elements, newCap >= size.
// On allocation failure the Vector is left untouched.
func (v *Vector[T]) reallocate(newCap int) error {
	newBuf, err := v.alloc.Alloc(newCap)
	if err != nil {
		return err
	}
	copy(newBuf, v.buf[:v.size])
	old := v.buf
	v.buf = newBuf
	if old != nil {
		v.alloc.Free(old)
	}
	return nil
}

// PushBack appends value in amortized O(1). The only possible failure is
// allocation during growth, which leaves the Vector unchanged.
func (v *Vector[T]) PushBack(value T) error {
	if v.size == len(v.buf) {
		if err := v.reallocate(v.growthTarget(v.size + 1)); err != nil {
			return err
		}
	}
	v.buf[v.size] = value
	v.size++
	return nil
}

// PopBack removes and returns the last element. On an empty Vector it is a
// guarded no-op reporting ok == false.
func (v *Vector[T]) PopBack() (T, bool) {
	var zero T
	if v.size == 0 {
		return zero, false
	}
	v.size--
	value := v.buf[v.size]
	v.buf[v.size] = zero // release the reference
	return value, true
}

// Insert places value at position i, shifting the tail right. i == Len()
// appends.
func (v *Vector[T]) Insert(i int, value T) error {
	if i < 0 || i > v.size {
		return errors.Wrapf(container.ErrIndexOutOfRange, "insert at %d, length %d", i, v.size)
	}
	if v.size == len(v.buf) {
		if err := v.reallocate(v.growthTarget(v.size + 1)); err != nil {
			return err
		}
	}
	copy(v.buf[i+1:v.size+1], v.buf[i:v.size])
	v.buf[i] = value
	v.size++
	return nil
}

// Remove deletes and returns the element at position i, shifting the tail
// left.
func (v *Vector[T]) Remove(i int) (T, error) {
	var zero T
	if i < 0 || i >= v.size {
		return zero, errors.Wrapf(container.ErrIndexOutOfRange, "remove at %d, length %d", i, v.size)
	}
	value := v.buf[i]
	copy(v.buf[i:], v.buf[i+1:v.size])
	v.size--
	v.buf[v.size] = zero
	return value, nil
}

// Reserve grows the capacity to at least n without changing the length. It
// never shrinks.
func (v *Vector[T]) Reserve(n int) error {
	if n < 0 {
		return errors.Newf("vector: negative capacity %d", n)
	}
	if n > len(v.buf) {
		return v.reallocate(n)
	}
	return nil
}

// ShrinkToFit reallocates so that capacity equals length.
func (v *Vector[T]) ShrinkToFit() error {
	if v.size == len(v.buf) {
		return nil
	}
	if v.size == 0 {
		if v.buf != nil {
			v.alloc.Free(v.buf)
			v.buf = nil
		}
		return nil
	}
	return v.reallocate(v.size)
}

// Resize sets the length to n, appending copies of fill when growing and
// dropping the tail when shrinking. Shrinking retains capacity.
func (v *Vector[T]) Resize(n int, fill T) error {
	if n < 0 {
		return errors.Newf("vector: negative length %d", n)
	}
	if n > v.size {
		if err := v.Reserve(n); err != nil {
			return err
		}
		for i := v.size; i < n; i++ {
			v.buf[i] = fill
		}
	} else {
		var zero T
		for i := n; i < v.size; i++ {
			v.buf[i] = zero
		}
	}
	v.size = n
	return nil
}

// Clear removes all elements, retaining capacity.
func (v *Vector[T]) Clear() {
	var zero T
	for i := 0; i < v.size; i++ {
		v.buf[i] = zero
	}
	v.size = 0
}

// Clone returns a deep copy sharing no memory with v. The copy's capacity is
// exactly v.Len().
func (v *Vector[T]) Clone() (*Vector[T], error) {
	clone := &Vector[T]{alloc: v.alloc}
	if v.size > 0 {
		buf, err := v.alloc.Alloc(v.size)
		if err != nil {
			return nil, err
		}
		copy(buf, v.buf[:v.size])
		clone.buf = buf
		clone.size = v.size
	}
	return clone, nil
}

// Take returns a Vector that assumes ownership of v's storage, leaving v
// valid and empty with no buffer.
func (v *Vector[T]) Take() *Vector[T] {
	moved := &Vector[T]{alloc: v.alloc, buf: v.buf, size: v.size}
	v.buf = nil
	v.size = 0
	return moved
}

// ToSlice returns a copy of the elements in order.
func (v *Vector[T]) ToSlice() []T {
	out := make([]T, v.size)
	copy(out, v.buf[:v.size])
	return out
}

// ForEach calls fn on each element in order until fn returns false.
func (v *Vector[T]) ForEach(fn func(T) bool) {
	for i := 0; i < v.size; i++ {
		if !fn(v.buf[i]) {
			return
		}
	}
}

// Equal reports whether a and b have the same length and pairwise-equal
// elements. It is not a method so that Vector stays unconstrained.
func Equal[T comparable](a, b *Vector[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if !eq(a.buf[i], b.buf[i]) {
			return false
		}
	}
	return true
}
