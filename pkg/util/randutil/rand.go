// Copyright 2025 The DSA Authors.
//
// Use of this software is governed by the MIT License included in the
// /LICENSE file.

// Package randutil provides seeded random number generators for tests.
package randutil

import (
	"math/rand"
	"time"
)

// NewTestRand returns a pseudo-random generator and the seed it was created
// from. Tests should log the seed so that a failure can be replayed with
// NewTestRandWithSeed.
func NewTestRand() (*rand.Rand, int64) {
	seed := time.Now().UnixNano()
	return rand.New(rand.NewSource(seed)), seed
}

// NewTestRandWithSeed returns a pseudo-random generator for a known seed.
func NewTestRandWithSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
