// Copyright 2025 The DSA Authors.
//
// Use of this software is governed by the MIT License included in the
// /LICENSE file.

package dlist

import (
	"github.com/DanielBrMz/DSA/pkg/util/container"
	"github.com/cockroachdb/errors"
)

// Splice moves the sub-range [first, last) out of other and links it into l
// before pos, without copying values or allocating nodes. A nil pos means
// the end of l; a nil last means the end of other; other may be l itself.
//
// The relinking is O(1). One walk from first to last pays for the size
// bookkeeping, ownership re-stamping, and validation: the walk counts the
// range, confirms last is reachable from first, and rejects a same-list
// splice whose destination lies inside the moved range (which would
// otherwise detach part of the chain). All validation happens before any
// mutation, so a failed Splice changes nothing.
func (l *List[T]) Splice(pos *Node[T], other *List[T], first, last *Node[T]) error {
	if other == nil {
		return errors.Wrap(container.ErrInvalidIterator, "splice source list")
	}
	if pos != nil && pos.list != l {
		return errors.Wrap(container.ErrInvalidIterator, "splice position")
	}
	if first == nil {
		if last == nil {
			// The empty range [end, end).
			return nil
		}
		return errors.Wrap(container.ErrInvalidIterator, "splice range start")
	}
	if first.list != other {
		return errors.Wrap(container.ErrInvalidIterator, "splice range start")
	}
	if last != nil && last.list != other {
		return errors.Wrap(container.ErrInvalidIterator, "splice range end")
	}
	if first == last {
		return nil
	}

	// Validation walk: count the range, find its final node, confirm last
	// is reachable, and catch a destination inside the range.
	count := 0
	var rangeTail *Node[T]
	for n := first; n != last; n = n.next {
		if n == nil {
			return errors.Wrap(container.ErrInvalidIterator, "splice range end not reachable from start")
		}
		if other == l && n == pos {
			return errors.Wrap(container.ErrInvalidIterator, "splice destination inside the moved range")
		}
		count++
		rangeTail = n
	}

	// Unlink [first, rangeTail] from other.
	if first.prev != nil {
		first.prev.next = last
	} else {
		other.head = last
	}
	if last != nil {
		last.prev = first.prev
	} else {
		other.tail = first.prev
	}
	other.size -= count

	// Link the range into l before pos.
	var before *Node[T]
	if pos != nil {
		before = pos.prev
	} else {
		before = l.tail
	}
	first.prev = before
	if before != nil {
		before.next = first
	} else {
		l.head = first
	}
	rangeTail.next = pos
	if pos != nil {
		pos.prev = rangeTail
	} else {
		l.tail = rangeTail
	}
	l.size += count

	l.retag(first, rangeTail)
	return nil
}

// SpliceAll moves every node of other before pos, leaving other empty.
func (l *List[T]) SpliceAll(pos *Node[T], other *List[T]) error {
	if other == nil {
		return errors.Wrap(container.ErrInvalidIterator, "splice source list")
	}
	return l.Splice(pos, other, other.head, nil)
}

// SpliceNode moves the single node n from other before pos.
func (l *List[T]) SpliceNode(pos *Node[T], other *List[T], n *Node[T]) error {
	if n == nil {
		return errors.Wrap(container.ErrInvalidIterator, "splice node")
	}
	return l.Splice(pos, other, n, n.next)
}
