// Copyright 2025 The DSA Authors.
//
// Use of this software is governed by the MIT License included in the
// /LICENSE file.

package container

import (
	"unsafe"

	"github.com/cockroachdb/errors"
)

// Allocator is the pluggable allocation strategy used by all containers.
// Array-backed containers allocate whole buffers through it; the linked
// lists allocate one node at a time via Alloc(1).
//
// Implementations are not required to be safe for concurrent use.
type Allocator[T any] interface {
	// Alloc returns a zeroed slice of exactly n elements, or an error
	// classified as ErrOutOfMemory when the strategy cannot satisfy it.
	Alloc(n int) ([]T, error)
	// Free releases a slice previously returned by Alloc. Under the default
	// strategy this is a no-op (the garbage collector reclaims the memory);
	// accounting strategies use it to return budget.
	Free(buf []T)
}

// NewDefaultAllocator returns the general-purpose heap strategy. Its Alloc
// never fails for a non-negative size.
func NewDefaultAllocator[T any]() Allocator[T] {
	return defaultAllocator[T]{}
}

type defaultAllocator[T any] struct{}

func (defaultAllocator[T]) Alloc(n int) ([]T, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrOutOfMemory, "negative allocation size %d", n)
	}
	return make([]T, n), nil
}

func (defaultAllocator[T]) Free([]T) {}

// BudgetAllocator caps the number of live elements and tracks totals. It
// exists so that allocation failure paths (and the strong exception safety
// they promise) can actually be exercised, and so that tests can bound the
// total element traffic of a workload.
type BudgetAllocator[T any] struct {
	budget int
	live   int
	total  int
	allocs int
}

// NewBudgetAllocator returns an allocator that fails with ErrOutOfMemory
// once more than maxElements elements would be live at the same time.
func NewBudgetAllocator[T any](maxElements int) *BudgetAllocator[T] {
	return &BudgetAllocator[T]{budget: maxElements}
}

// Alloc implements Allocator.
func (a *BudgetAllocator[T]) Alloc(n int) ([]T, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrOutOfMemory, "negative allocation size %d", n)
	}
	if a.live+n > a.budget {
		return nil, errors.Wrapf(ErrOutOfMemory,
			"budget of %d elements exhausted (%d live, %d requested)",
			a.budget, a.live, n)
	}
	a.live += n
	a.total += n
	a.allocs++
	return make([]T, n), nil
}

// Free implements Allocator.
func (a *BudgetAllocator[T]) Free(buf []T) {
	a.live -= len(buf)
}

// Live returns the number of elements currently allocated and not freed.
func (a *BudgetAllocator[T]) Live() int { return a.live }

// Total returns the cumulative number of elements ever allocated.
func (a *BudgetAllocator[T]) Total() int { return a.total }

// Allocs returns the number of successful Alloc calls.
func (a *BudgetAllocator[T]) Allocs() int { return a.allocs }

// FreeOne releases a single element previously obtained from Alloc(1). It
// reconstructs the one-element slice around p so that pooling or accounting
// strategies see the same memory they handed out.
func FreeOne[T any](a Allocator[T], p *T) {
	a.Free(unsafe.Slice(p, 1))
}
