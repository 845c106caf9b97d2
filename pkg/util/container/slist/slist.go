// Copyright 2025 The DSA Authors.
//
// Use of this software is governed by the MIT License included in the
// /LICENSE file.

// Package slist implements a generic singly linked list with a tracked
// tail, giving O(1) pushes at both ends and forward-only traversal through
// node handles.
package slist

import (
	"github.com/DanielBrMz/DSA/pkg/util/container"
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Node is an element of a List. The list exclusively owns every reachable
// node; the next chain defines ownership and destruction order. Handles
// returned by list operations stay valid until the node is removed.
type Node[T any] struct {
	Value T
	next  *Node[T]
}

// Next returns the next node, or nil at the end of the list. A removed
// node's Next is nil.
func (n *Node[T]) Next() *Node[T] { return n.next }

// List is a forward-only node chain. The zero value is not usable;
// construct with New, Of, or Repeat. Invariants: head == nil iff tail ==
// nil iff Len() == 0; walking next from head visits exactly Len() nodes.
type List[T any] struct {
	alloc container.Allocator[Node[T]]
	head  *Node[T]
	tail  *Node[T]
	size  int
}

// Option configures a List under construction.
type Option[T any] func(*List[T])

// WithAllocator routes node allocation through a. Lists that exchange nodes
// via Concat or MergeSorted must share an allocation strategy.
func WithAllocator[T any](a container.Allocator[Node[T]]) Option[T] {
	return func(l *List[T]) { l.alloc = a }
}

// New returns an empty List.
func New[T any](opts ...Option[T]) *List[T] {
	l := &List[T]{alloc: container.NewDefaultAllocator[Node[T]]()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Of returns a List of the given values in order.
func Of[T any](values ...T) (*List[T], error) {
	l := New[T]()
	for _, v := range values {
		if _, err := l.PushBack(v); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Repeat returns a List of count copies of value.
func Repeat[T any](count int, value T, opts ...Option[T]) (*List[T], error) {
	if count < 0 {
		return nil, errors.Newf("slist: negative count %d", count)
	}
	l := New[T](opts...)
	for i := 0; i < count; i++ {
		if _, err := l.PushBack(value); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Len returns the number of nodes.
func (l *List[T]) Len() int { return l.size }

// Empty reports whether the List holds no nodes.
func (l *List[T]) Empty() bool { return l.size == 0 }

// Front returns the first node, or nil when empty.
func (l *List[T]) Front() *Node[T] { return l.head }

// Back returns the last node, or nil when empty.
func (l *List[T]) Back() *Node[T] { return l.tail }

// First returns the first value, or ErrUnderflow when empty.
func (l *List[T]) First() (T, error) {
	if l.head == nil {
		var zero T
		return zero, errors.Wrap(container.ErrUnderflow, "front of empty list")
	}
	return l.head.Value, nil
}

// Last returns the last value, or ErrUnderflow when empty.
func (l *List[T]) Last() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, errors.Wrap(container.ErrUnderflow, "back of empty list")
	}
	return l.tail.Value, nil
}

func (l *List[T]) newNode(v T) (*Node[T], error) {
	buf, err := l.alloc.Alloc(1)
	if err != nil {
		return nil, err
	}
	n := &buf[0]
	n.Value = v
	return n, nil
}

// freeNode zeroes the node before releasing it so stale handles cannot
// reach into the list.
func (l *List[T]) freeNode(n *Node[T]) {
	*n = Node[T]{}
	container.FreeOne[Node[T]](l.alloc, n)
}

// PushFront inserts a node with value v at the front in O(1).
func (l *List[T]) PushFront(v T) (*Node[T], error) {
	n, err := l.newNode(v)
	if err != nil {
		return nil, err
	}
	n.next = l.head
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.size++
	return n, nil
}

// PushBack inserts a node with value v at the back in O(1) via the tracked
// tail.
func (l *List[T]) PushBack(v T) (*Node[T], error) {
	n, err := l.newNode(v)
	if err != nil {
		return nil, err
	}
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.size++
	return n, nil
}

// PopFront removes and returns the first value, or ErrUnderflow when empty.
func (l *List[T]) PopFront() (T, error) {
	var zero T
	if l.head == nil {
		return zero, errors.Wrap(container.ErrUnderflow, "pop from empty list")
	}
	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	}
	l.size--
	v := n.Value
	l.freeNode(n)
	return v, nil
}

// findPrev walks the chain looking for target, returning its predecessor
// (nil when target is the head) and whether it was found at all.
func (l *List[T]) findPrev(target *Node[T]) (*Node[T], bool) {
	if target == l.head {
		return nil, l.head != nil
	}
	for prev := l.head; prev != nil; prev = prev.next {
		if prev.next == target {
			return prev, true
		}
	}
	return nil, false
}

// InsertAfter inserts a node with value v after at. Reaching the position
// is the caller's O(n); validating membership costs another walk; the
// splice itself is O(1). A nil or foreign node yields ErrInvalidIterator.
func (l *List[T]) InsertAfter(at *Node[T], v T) (*Node[T], error) {
	if at == nil || !l.contains(at) {
		return nil, errors.Wrap(container.ErrInvalidIterator, "insert position")
	}
	n, err := l.newNode(v)
	if err != nil {
		return nil, err
	}
	n.next = at.next
	at.next = n
	if l.tail == at {
		l.tail = n
	}
	l.size++
	return n, nil
}

func (l *List[T]) contains(target *Node[T]) bool {
	for n := l.head; n != nil; n = n.next {
		if n == target {
			return true
		}
	}
	return false
}

// Remove unlinks target and returns its value. The predecessor walk makes
// this O(n); a foreign or stale node yields ErrInvalidIterator.
func (l *List[T]) Remove(target *Node[T]) (T, error) {
	var zero T
	if target == nil {
		return zero, errors.Wrap(container.ErrInvalidIterator, "remove target")
	}
	prev, ok := l.findPrev(target)
	if !ok {
		return zero, errors.Wrap(container.ErrInvalidIterator, "remove target")
	}
	if prev == nil {
		l.head = target.next
	} else {
		prev.next = target.next
	}
	if l.tail == target {
		l.tail = prev
	}
	l.size--
	v := target.Value
	l.freeNode(target)
	return v, nil
}

// Clear removes and frees every node.
func (l *List[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		l.freeNode(n)
		n = next
	}
	l.head = nil
	l.tail = nil
	l.size = 0
}

// Reverse relinks each node's forward pointer to its predecessor in one
// pass, swapping head and tail. O(n) time, O(1) extra space.
func (l *List[T]) Reverse() {
	if l.size <= 1 {
		return
	}
	var prev *Node[T]
	cur := l.head
	l.tail = l.head
	for cur != nil {
		next := cur.next
		cur.next = prev
		prev = cur
		cur = next
	}
	l.head = prev
}

// RemoveFunc unlinks and frees every node whose value satisfies pred,
// returning the number removed. It walks the chain once with a trailing
// predecessor cursor and uses only non-failing primitives, so a bulk
// removal cannot stop partway.
func (l *List[T]) RemoveFunc(pred func(T) bool) int {
	removed := 0
	var prev *Node[T]
	cur := l.head
	for cur != nil {
		next := cur.next
		if pred(cur.Value) {
			if prev == nil {
				l.head = next
			} else {
				prev.next = next
			}
			if l.tail == cur {
				l.tail = prev
			}
			l.size--
			l.freeNode(cur)
			removed++
		} else {
			prev = cur
		}
		cur = next
	}
	return removed
}

// RemoveValue unlinks every node equal to v, returning the number removed.
func RemoveValue[T comparable](l *List[T], v T) int {
	return l.RemoveFunc(func(x T) bool { return x == v })
}

// UniqueFunc removes consecutive duplicates (not global duplicates) in one
// pass, returning the number removed. Sort first for full deduplication.
func (l *List[T]) UniqueFunc(eq func(a, b T) bool) int {
	removed := 0
	cur := l.head
	for cur != nil && cur.next != nil {
		if eq(cur.Value, cur.next.Value) {
			dup := cur.next
			cur.next = dup.next
			if l.tail == dup {
				l.tail = cur
			}
			l.size--
			l.freeNode(dup)
			removed++
		} else {
			cur = cur.next
		}
	}
	return removed
}

// Unique is UniqueFunc with ==.
func Unique[T comparable](l *List[T]) int {
	return l.UniqueFunc(func(a, b T) bool { return a == b })
}

// Concat appends all of other's nodes onto l's tail in O(1) and leaves
// other valid and empty. Ownership of every node transfers to l.
func (l *List[T]) Concat(other *List[T]) {
	if other == nil || other == l || other.head == nil {
		return
	}
	if l.head == nil {
		l.head = other.head
		l.tail = other.tail
	} else {
		l.tail.next = other.head
		l.tail = other.tail
	}
	l.size += other.size
	other.head = nil
	other.tail = nil
	other.size = 0
}

// MergeSorted merges other, assumed sorted under less, into l, also assumed
// sorted, producing a single sorted list and leaving other empty. The merge
// is stable: on ties l's element comes first. No nodes are allocated.
func (l *List[T]) MergeSorted(other *List[T], less func(a, b T) bool) {
	if other == nil || other == l || other.head == nil {
		return
	}
	if l.head == nil {
		l.head = other.head
		l.tail = other.tail
		l.size = other.size
	} else {
		l.head = mergeChains(l.head, other.head, less)
		tail := l.head
		for tail.next != nil {
			tail = tail.next
		}
		l.tail = tail
		l.size += other.size
	}
	other.head = nil
	other.tail = nil
	other.size = 0
}

// Sort reorders the chain into non-decreasing order under less using an
// in-place merge sort: slow/fast midpoint split, recursive halves, relink
// merge. Stable, O(n log n) time, O(log n) stack, no node allocation.
func (l *List[T]) Sort(less func(a, b T) bool) {
	if l.size <= 1 {
		return
	}
	l.head = mergeSort(l.head, less)
	tail := l.head
	for tail.next != nil {
		tail = tail.next
	}
	l.tail = tail
}

func mergeSort[T any](head *Node[T], less func(a, b T) bool) *Node[T] {
	if head == nil || head.next == nil {
		return head
	}
	// Slow/fast midpoint split.
	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	right := slow.next
	slow.next = nil
	return mergeChains(mergeSort(head, less), mergeSort(right, less), less)
}

// mergeChains splices two sorted chains into one by comparing heads. The
// left chain wins ties, which keeps the sort stable.
func mergeChains[T any](left, right *Node[T], less func(a, b T) bool) *Node[T] {
	var head, tail *Node[T]
	for left != nil && right != nil {
		var next *Node[T]
		if less(right.Value, left.Value) {
			next = right
			right = right.next
		} else {
			next = left
			left = left.next
		}
		if head == nil {
			head = next
		} else {
			tail.next = next
		}
		tail = next
	}
	rest := left
	if rest == nil {
		rest = right
	}
	if head == nil {
		return rest
	}
	tail.next = rest
	return head
}

// Clone returns a deep copy with independently allocated nodes.
func (l *List[T]) Clone() (*List[T], error) {
	clone := &List[T]{alloc: l.alloc}
	for n := l.head; n != nil; n = n.next {
		if _, err := clone.PushBack(n.Value); err != nil {
			clone.Clear()
			return nil, err
		}
	}
	return clone, nil
}

// Take returns a List that assumes ownership of l's chain, leaving l valid
// and empty.
func (l *List[T]) Take() *List[T] {
	moved := &List[T]{alloc: l.alloc, head: l.head, tail: l.tail, size: l.size}
	l.head = nil
	l.tail = nil
	l.size = 0
	return moved
}

// ToSlice returns the values in traversal order.
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.Value)
	}
	return out
}

// ForEach calls fn on each value in order until fn returns false.
func (l *List[T]) ForEach(fn func(T) bool) {
	for n := l.head; n != nil; n = n.next {
		if !fn(n.Value) {
			return
		}
	}
}

// Equal reports whether a and b have the same length and pairwise-equal
// values in traversal order.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied comparison.
func EqualFunc[T any](a, b *List[T], eq func(T, T) bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.size != b.size {
		return false
	}
	x, y := a.head, b.head
	for x != nil {
		if !eq(x.Value, y.Value) {
			return false
		}
		x = x.next
		y = y.next
	}
	return true
}

// SortOrdered sorts a list of an ordered type into non-decreasing order.
func SortOrdered[T constraints.Ordered](l *List[T]) {
	l.Sort(func(a, b T) bool { return a < b })
}

// MergeSortedOrdered merges two sorted lists of an ordered type.
func MergeSortedOrdered[T constraints.Ordered](l, other *List[T]) {
	l.MergeSorted(other, func(a, b T) bool { return a < b })
}
