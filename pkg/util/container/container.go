// Copyright 2025 The DSA Authors.
//
// Use of this software is governed by the MIT License included in the
// /LICENSE file.

// Package container holds the pieces shared by the linear containers in its
// subdirectories: the error taxonomy and the pluggable allocation strategy.
// The containers themselves (vector, ring, slist, dlist) are independent of
// one another.
//
// None of the containers are safe for concurrent mutation. Concurrent
// read-only access is fine; anything else must be serialized by the caller.
package container
