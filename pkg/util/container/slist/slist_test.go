// Copyright 2025 The DSA Authors.
//
// Use of this software is governed by the MIT License included in the
// /LICENSE file.

package slist

import (
	"sort"
	"testing"

	"github.com/DanielBrMz/DSA/pkg/util/container"
	"github.com/DanielBrMz/DSA/pkg/util/randutil"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkInvariants[T any](t *testing.T, l *List[T]) {
	t.Helper()
	if l.Empty() {
		require.Nil(t, l.Front())
		require.Nil(t, l.Back())
		require.Equal(t, 0, l.Len())
		return
	}
	require.NotNil(t, l.Front())
	require.NotNil(t, l.Back())
	require.Nil(t, l.Back().Next())
	// Walking from head to nil visits exactly Len() nodes.
	count := 0
	var last *Node[T]
	for n := l.Front(); n != nil; n = n.Next() {
		count++
		last = n
	}
	require.Equal(t, l.Len(), count)
	require.Same(t, l.Back(), last)
}

func TestSListPushPop(t *testing.T) {
	l := New[int]()
	checkInvariants(t, l)

	_, err := l.PushBack(2)
	require.NoError(t, err)
	_, err = l.PushFront(1)
	require.NoError(t, err)
	_, err = l.PushBack(3)
	require.NoError(t, err)
	checkInvariants(t, l)
	require.Equal(t, []int{1, 2, 3}, l.ToSlice())

	first, err := l.First()
	require.NoError(t, err)
	require.Equal(t, 1, first)
	last, err := l.Last()
	require.NoError(t, err)
	require.Equal(t, 3, last)

	got, err := l.PopFront()
	require.NoError(t, err)
	require.Equal(t, 1, got)
	checkInvariants(t, l)

	got, err = l.PopFront()
	require.NoError(t, err)
	require.Equal(t, 2, got)
	got, err = l.PopFront()
	require.NoError(t, err)
	require.Equal(t, 3, got)
	checkInvariants(t, l)

	_, err = l.PopFront()
	require.True(t, errors.Is(err, container.ErrUnderflow))
	_, err = l.First()
	require.True(t, errors.Is(err, container.ErrUnderflow))
}

func TestSListInsertRemove(t *testing.T) {
	l, err := Of(1, 3)
	require.NoError(t, err)

	n, err := l.InsertAfter(l.Front(), 2)
	require.NoError(t, err)
	require.Equal(t, 2, n.Value)
	require.Equal(t, []int{1, 2, 3}, l.ToSlice())

	// Inserting after the tail moves the tail.
	_, err = l.InsertAfter(l.Back(), 4)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4}, l.ToSlice())
	checkInvariants(t, l)

	_, err = l.InsertAfter(nil, 9)
	require.True(t, errors.Is(err, container.ErrInvalidIterator))

	// A node from another list is rejected.
	other, err := Of(7)
	require.NoError(t, err)
	_, err = l.InsertAfter(other.Front(), 9)
	require.True(t, errors.Is(err, container.ErrInvalidIterator))
	_, err = l.Remove(other.Front())
	require.True(t, errors.Is(err, container.ErrInvalidIterator))

	got, err := l.Remove(n)
	require.NoError(t, err)
	require.Equal(t, 2, got)
	require.Equal(t, []int{1, 3, 4}, l.ToSlice())
	checkInvariants(t, l)

	// Removing the tail re-points it.
	got, err = l.Remove(l.Back())
	require.NoError(t, err)
	require.Equal(t, 4, got)
	require.Equal(t, 3, l.Back().Value)
	checkInvariants(t, l)

	// Erase-then-continue: Remove returns the value; the successor is
	// reachable by walking from the front again.
	got, err = l.Remove(l.Front())
	require.NoError(t, err)
	require.Equal(t, 1, got)
	require.Equal(t, []int{3}, l.ToSlice())
}

func TestSListReverse(t *testing.T) {
	l, err := Of(1, 2, 3, 4, 5)
	require.NoError(t, err)

	l.Reverse()
	require.Equal(t, []int{5, 4, 3, 2, 1}, l.ToSlice())
	checkInvariants(t, l)

	// reverse(reverse(L)) == L.
	l.Reverse()
	require.Equal(t, []int{1, 2, 3, 4, 5}, l.ToSlice())

	single, err := Of(1)
	require.NoError(t, err)
	single.Reverse()
	require.Equal(t, []int{1}, single.ToSlice())

	empty := New[int]()
	empty.Reverse()
	checkInvariants(t, empty)
}

func TestSListRemoveValueAndFunc(t *testing.T) {
	l, err := Of(1, 2, 1, 3, 1)
	require.NoError(t, err)

	require.Equal(t, 3, RemoveValue(l, 1))
	require.Equal(t, []int{2, 3}, l.ToSlice())
	checkInvariants(t, l)

	// Removing the last node updates the tail.
	require.Equal(t, 1, RemoveValue(l, 3))
	require.Equal(t, 2, l.Back().Value)
	checkInvariants(t, l)

	l, err = Of(1, 2, 3, 4, 5, 6)
	require.NoError(t, err)
	require.Equal(t, 3, l.RemoveFunc(func(x int) bool { return x%2 == 0 }))
	require.Equal(t, []int{1, 3, 5}, l.ToSlice())
	checkInvariants(t, l)

	// Removing everything leaves a valid empty list.
	require.Equal(t, 3, l.RemoveFunc(func(int) bool { return true }))
	checkInvariants(t, l)
}

func TestSListUnique(t *testing.T) {
	l, err := Of(1, 1, 2, 2, 2, 3, 1, 1)
	require.NoError(t, err)

	// Consecutive duplicates only; the trailing 1s collapse to one but the
	// earlier 1 run is distinct.
	require.Equal(t, 4, Unique(l))
	require.Equal(t, []int{1, 2, 3, 1}, l.ToSlice())
	checkInvariants(t, l)

	require.Equal(t, 0, Unique(l))
}

func TestSListConcat(t *testing.T) {
	a, err := Of(1, 2)
	require.NoError(t, err)
	b, err := Of(3, 4)
	require.NoError(t, err)

	a.Concat(b)
	require.Equal(t, []int{1, 2, 3, 4}, a.ToSlice())
	require.True(t, b.Empty())
	checkInvariants(t, a)
	checkInvariants(t, b)

	// The emptied source remains usable.
	_, err = b.PushBack(9)
	require.NoError(t, err)
	require.Equal(t, []int{9}, b.ToSlice())

	// Concat into an empty list adopts the chain.
	c := New[int]()
	c.Concat(a)
	require.Equal(t, []int{1, 2, 3, 4}, c.ToSlice())
	require.True(t, a.Empty())

	// Self-concat is a no-op.
	c.Concat(c)
	require.Equal(t, []int{1, 2, 3, 4}, c.ToSlice())
}

func TestSListMergeSorted(t *testing.T) {
	less := func(a, b int) bool { return a < b }

	a, err := Of(1, 3, 5)
	require.NoError(t, err)
	b, err := Of(2, 4, 6)
	require.NoError(t, err)

	a.MergeSorted(b, less)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, a.ToSlice())
	require.True(t, b.Empty())
	checkInvariants(t, a)

	empty := New[int]()
	empty.MergeSorted(a, less)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, empty.ToSlice())
	require.True(t, a.Empty())
}

func TestSListSort(t *testing.T) {
	l, err := Of(5, 2, 4, 1, 3)
	require.NoError(t, err)

	l.Sort(func(a, b int) bool { return a < b })
	require.Equal(t, []int{1, 2, 3, 4, 5}, l.ToSlice())
	checkInvariants(t, l)

	// Already sorted and reverse sorted inputs.
	l.Sort(func(a, b int) bool { return a < b })
	require.Equal(t, []int{1, 2, 3, 4, 5}, l.ToSlice())
	l.Sort(func(a, b int) bool { return a > b })
	require.Equal(t, []int{5, 4, 3, 2, 1}, l.ToSlice())
	checkInvariants(t, l)
}

type keyed struct {
	key int
	tag string
}

func TestSListSortStability(t *testing.T) {
	l, err := Of(
		keyed{2, "a"}, keyed{1, "a"}, keyed{2, "b"},
		keyed{1, "b"}, keyed{2, "c"}, keyed{1, "c"},
	)
	require.NoError(t, err)

	l.Sort(func(a, b keyed) bool { return a.key < b.key })
	require.Equal(t, []keyed{
		{1, "a"}, {1, "b"}, {1, "c"},
		{2, "a"}, {2, "b"}, {2, "c"},
	}, l.ToSlice())
}

func TestSListSortRandom(t *testing.T) {
	rng, seed := randutil.NewTestRand()
	t.Logf("random seed: %d", seed)

	for _, n := range []int{0, 1, 2, 3, 17, 256, 1000} {
		l := New[int]()
		ref := make([]int, n)
		for i := range ref {
			x := rng.Intn(100)
			ref[i] = x
			_, err := l.PushBack(x)
			require.NoError(t, err)
		}
		l.Sort(func(a, b int) bool { return a < b })
		sort.Ints(ref)
		require.Equal(t, ref, append(make([]int, 0, n), l.ToSlice()...))
		checkInvariants(t, l)
	}
}

func TestSListCopyAndMoveSemantics(t *testing.T) {
	a, err := Of(1, 2, 3)
	require.NoError(t, err)

	b, err := a.Clone()
	require.NoError(t, err)
	require.True(t, Equal(a, b))

	_, err = b.PopFront()
	require.NoError(t, err)
	require.False(t, Equal(a, b))
	require.Equal(t, []int{1, 2, 3}, a.ToSlice())

	moved := a.Take()
	require.Equal(t, []int{1, 2, 3}, moved.ToSlice())
	require.True(t, a.Empty())
	checkInvariants(t, a)
	_, err = a.PushBack(7)
	require.NoError(t, err)
	require.Equal(t, []int{7}, a.ToSlice())
}

func TestSListAllocatorFailure(t *testing.T) {
	alloc := container.NewBudgetAllocator[Node[int]](2)
	l := New[int](WithAllocator[int](alloc))

	_, err := l.PushBack(1)
	require.NoError(t, err)
	_, err = l.PushBack(2)
	require.NoError(t, err)

	// A failed node allocation leaves the list untouched.
	_, err = l.PushBack(3)
	require.True(t, errors.Is(err, container.ErrOutOfMemory))
	require.Equal(t, []int{1, 2}, l.ToSlice())
	checkInvariants(t, l)

	// Freeing a node returns budget.
	_, err = l.PopFront()
	require.NoError(t, err)
	_, err = l.PushBack(3)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, l.ToSlice())
	require.Equal(t, 2, alloc.Live())
}

func TestSListRandomOps(t *testing.T) {
	rng, seed := randutil.NewTestRand()
	t.Logf("random seed: %d", seed)

	l := New[int]()
	ref := []int{}

	for i := 0; i < 2000; i++ {
		switch rng.Intn(5) {
		case 0, 1:
			x := rng.Intn(1000)
			_, err := l.PushBack(x)
			require.NoError(t, err)
			ref = append(ref, x)
		case 2:
			x := rng.Intn(1000)
			_, err := l.PushFront(x)
			require.NoError(t, err)
			ref = append([]int{x}, ref...)
		case 3:
			got, err := l.PopFront()
			if len(ref) == 0 {
				assert.True(t, errors.Is(err, container.ErrUnderflow))
			} else {
				require.NoError(t, err)
				assert.Equal(t, ref[0], got)
				ref = ref[1:]
			}
		case 4:
			if len(ref) > 0 {
				v := ref[rng.Intn(len(ref))]
				removedRef := 0
				kept := ref[:0]
				for _, x := range ref {
					if x == v {
						removedRef++
					} else {
						kept = append(kept, x)
					}
				}
				ref = kept
				require.Equal(t, removedRef, RemoveValue(l, v))
			}
		}
		require.Equal(t, len(ref), l.Len())
	}
	checkInvariants(t, l)
	require.Equal(t, append([]int{}, ref...), l.ToSlice())
}

func TestSListOrderedHelpers(t *testing.T) {
	l, err := Of(3, 1, 2)
	require.NoError(t, err)
	SortOrdered(l)
	require.Equal(t, []int{1, 2, 3}, l.ToSlice())

	other, err := Of(0, 2, 4)
	require.NoError(t, err)
	MergeSortedOrdered(l, other)
	require.Equal(t, []int{0, 1, 2, 2, 3, 4}, l.ToSlice())
	require.True(t, other.Empty())
	checkInvariants(t, l)
}
