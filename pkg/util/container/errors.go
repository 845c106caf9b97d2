// Copyright 2025 The DSA Authors.
//
// Use of this software is governed by the MIT License included in the
// /LICENSE file.

package container

import "github.com/cockroachdb/errors"

// The containers surface every failure as one of the sentinels below,
// wrapped with call-site context. Classify with errors.Is.
var (
	// ErrIndexOutOfRange is returned by bounds-checked access beyond
	// [0, length).
	ErrIndexOutOfRange = errors.New("container: index out of range")

	// ErrUnderflow is returned when popping or reading an end of an empty
	// container. Callers that check Empty first never see it.
	ErrUnderflow = errors.New("container: container is empty")

	// ErrCapacityExceeded is returned when pushing onto a full fixed-capacity
	// container. Only the ring returns it; the vector grows instead.
	ErrCapacityExceeded = errors.New("container: capacity exceeded")

	// ErrOutOfMemory is returned when the allocation strategy refuses an
	// allocation. The failed operation leaves the container in its prior
	// valid state.
	ErrOutOfMemory = errors.New("container: allocation failed")

	// ErrInvalidIterator is returned when an operation is handed a node,
	// cursor, or range that does not belong to the container it targets.
	ErrInvalidIterator = errors.New("container: iterator does not belong to container")
)
