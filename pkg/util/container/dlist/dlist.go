// Copyright 2025 The DSA Authors.
//
// Use of this software is governed by the MIT License included in the
// /LICENSE file.

// Package dlist implements a generic doubly linked list with O(1)
// operations at both ends, node-handle traversal in both directions, and
// splicing of sub-ranges between lists without copying values.
package dlist

import (
	"github.com/DanielBrMz/DSA/pkg/util/container"
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Node is an element of a List. Ownership follows the next chain; prev is a
// non-owning back-reference used for traversal and O(1) removal. Each node
// carries its owning list so that foreign or stale handles are rejected
// instead of corrupting the chain.
type Node[T any] struct {
	Value T
	prev  *Node[T]
	next  *Node[T]
	list  *List[T]
}

// Next returns the next node, or nil at the end of the list. A removed
// node's Next is nil.
func (n *Node[T]) Next() *Node[T] {
	if n.list == nil {
		return nil
	}
	return n.next
}

// Prev returns the previous node, or nil at the front of the list.
func (n *Node[T]) Prev() *Node[T] {
	if n.list == nil {
		return nil
	}
	return n.prev
}

// List is a bidirectional node chain. The zero value is not usable;
// construct with New, Of, or Repeat. Invariants: head == nil iff tail ==
// nil iff Len() == 0; head.prev and tail.next are always nil; walking next
// from head visits exactly Len() nodes.
type List[T any] struct {
	alloc container.Allocator[Node[T]]
	head  *Node[T]
	tail  *Node[T]
	size  int
}

// Option configures a List under construction.
type Option[T any] func(*List[T])

// WithAllocator routes node allocation through a. Lists that exchange nodes
// via Concat, MergeSorted, or Splice must share an allocation strategy.
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
		return nil, errors.Newf("dlist: negative count %d", count)
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
	n.list = l
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
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.size++
	return n, nil
}

// PushBack inserts a node with value v at the back in O(1).
func (l *List[T]) PushBack(v T) (*Node[T], error) {
	n, err := l.newNode(v)
	if err != nil {
		return nil, err
	}
	n.prev = l.tail
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
	l.unlink(n)
	v := n.Value
	l.freeNode(n)
	return v, nil
}

// PopBack removes and returns the last value in O(1) via the prev
// back-reference, or ErrUnderflow when empty.
func (l *List[T]) PopBack() (T, error) {
	var zero T
	if l.tail == nil {
		return zero, errors.Wrap(container.ErrUnderflow, "pop from empty list")
	}
	n := l.tail
	l.unlink(n)
	v := n.Value
	l.freeNode(n)
	return v, nil
}

// unlink detaches n from the chain and fixes head/tail/size. n must belong
// to l.
func (l *List[T]) unlink(n *Node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	l.size--
}

// InsertBefore inserts a node with value v before at. A nil at means the
// end of the list (append). Foreign nodes yield ErrInvalidIterator.
func (l *List[T]) InsertBefore(at *Node[T], v T) (*Node[T], error) {
	if at == nil {
		return l.PushBack(v)
	}
	if at.list != l {
		return nil, errors.Wrap(container.ErrInvalidIterator, "insert position")
	}
	n, err := l.newNode(v)
	if err != nil {
		return nil, err
	}
	n.next = at
	n.prev = at.prev
	if at.prev != nil {
		at.prev.next = n
	} else {
		l.head = n
	}
	at.prev = n
	l.size++
	return n, nil
}

// InsertAfter inserts a node with value v after at.
func (l *List[T]) InsertAfter(at *Node[T], v T) (*Node[T], error) {
	if at == nil || at.list != l {
		return nil, errors.Wrap(container.ErrInvalidIterator, "insert position")
	}
	return l.InsertBefore(at.next, v)
}

// Remove unlinks target in O(1) and returns its value. The successor stays
// reachable via handles held by the caller; foreign or stale nodes yield
// ErrInvalidIterator.
func (l *List[T]) Remove(target *Node[T]) (T, error) {
	var zero T
	if target == nil || target.list != l {
		return zero, errors.Wrap(container.ErrInvalidIterator, "remove target")
	}
	l.unlink(target)
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

// Reverse swaps prev and next on every node, then swaps head and tail.
// O(n) time, O(1) space.
func (l *List[T]) Reverse() {
	if l.size <= 1 {
		return
	}
	for cur := l.head; cur != nil; {
		cur.prev, cur.next = cur.next, cur.prev
		cur = cur.prev // the original next
	}
	l.head, l.tail = l.tail, l.head
}

// RemoveFunc unlinks and frees every node whose value satisfies pred,
// returning the number removed. Only non-failing primitives are used, so a
// bulk removal cannot stop partway.
func (l *List[T]) RemoveFunc(pred func(T) bool) int {
	removed := 0
	for cur := l.head; cur != nil; {
		next := cur.next
		if pred(cur.Value) {
			l.unlink(cur)
			l.freeNode(cur)
			removed++
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
			l.unlink(dup)
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

// retag stamps l as the owner of every node from first through last
// inclusive.
func (l *List[T]) retag(first, last *Node[T]) {
	for n := first; ; n = n.next {
		n.list = l
		if n == last {
			return
		}
	}
}

// Concat appends all of other's nodes onto l's tail and leaves other valid
// and empty. The relinking is O(1); re-stamping node ownership costs one
// walk over the moved nodes.
func (l *List[T]) Concat(other *List[T]) {
	if other == nil || other == l || other.head == nil {
		return
	}
	l.retag(other.head, other.tail)
	if l.head == nil {
		l.head = other.head
		l.tail = other.tail
	} else {
		l.tail.next = other.head
		other.head.prev = l.tail
		l.tail = other.tail
	}
	l.size += other.size
	other.head = nil
	other.tail = nil
	other.size = 0
}

// MergeSorted merges other, assumed sorted under less, into l, also assumed
// sorted, producing a single sorted list and leaving other empty. Stable:
// on ties l's element comes first. No nodes are allocated; prev links are
// repaired in a final walk.
func (l *List[T]) MergeSorted(other *List[T], less func(a, b T) bool) {
	if other == nil || other == l || other.head == nil {
		return
	}
	l.retag(other.head, other.tail)
	if l.head == nil {
		l.head = other.head
		l.tail = other.tail
		l.size = other.size
	} else {
		l.head = mergeChains(l.head, other.head, less)
		l.size += other.size
		l.repairBackLinks()
	}
	other.head = nil
	other.tail = nil
	other.size = 0
}

// Sort reorders the chain into non-decreasing order under less. The merge
// sort works purely on forward links (slow/fast midpoint split, recursive
// halves, relink merge); a final O(n) walk re-establishes every prev
// pointer and the tail. Stable, O(n log n) time, O(log n) stack, no node
// allocation.
func (l *List[T]) Sort(less func(a, b T) bool) {
	if l.size <= 1 {
		return
	}
	l.head = mergeSort(l.head, less)
	l.repairBackLinks()
}

// repairBackLinks rebuilds prev pointers and the tail from the forward
// chain starting at head.
func (l *List[T]) repairBackLinks() {
	l.head.prev = nil
	cur := l.head
	for cur.next != nil {
		cur.next.prev = cur
		cur = cur.next
	}
	l.tail = cur
}

func mergeSort[T any](head *Node[T], less func(a, b T) bool) *Node[T] {
	if head == nil || head.next == nil {
		return head
	}
	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	right := slow.next
	slow.next = nil
	return mergeChains(mergeSort(head, less), mergeSort(right, less), less)
}

// mergeChains splices two sorted forward chains into one by comparing
// heads, taking from the left chain on ties. prev links are left stale;
// callers repair them afterwards.
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
// and empty. The node owner tags move with the chain.
func (l *List[T]) Take() *List[T] {
	moved := &List[T]{alloc: l.alloc, head: l.head, tail: l.tail, size: l.size}
	if moved.head != nil {
		moved.retag(moved.head, moved.tail)
	}
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
