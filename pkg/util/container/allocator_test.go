// Copyright 2025 The DSA Authors.
//
// Use of this software is governed by the MIT License included in the
// /LICENSE file.

package container

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestDefaultAllocator(t *testing.T) {
	a := NewDefaultAllocator[int]()

	buf, err := a.Alloc(8)
	require.NoError(t, err)
	require.Len(t, buf, 8)
	a.Free(buf)

	buf, err = a.Alloc(0)
	require.NoError(t, err)
	require.Len(t, buf, 0)

	_, err = a.Alloc(-1)
	require.True(t, errors.Is(err, ErrOutOfMemory))
}

func TestBudgetAllocator(t *testing.T) {
	a := NewBudgetAllocator[int](10)

	first, err := a.Alloc(6)
	require.NoError(t, err)
	require.Equal(t, 6, a.Live())

	_, err = a.Alloc(5)
	require.True(t, errors.Is(err, ErrOutOfMemory))
	require.Equal(t, 6, a.Live())

	second, err := a.Alloc(4)
	require.NoError(t, err)
	require.Equal(t, 10, a.Live())
	require.Equal(t, 10, a.Total())
	require.Equal(t, 2, a.Allocs())

	a.Free(first)
	require.Equal(t, 4, a.Live())
	a.Free(second)
	require.Equal(t, 0, a.Live())
	// Totals are cumulative and unaffected by Free.
	require.Equal(t, 10, a.Total())
}

func TestFreeOne(t *testing.T) {
	a := NewBudgetAllocator[int](2)
	buf, err := a.Alloc(1)
	require.NoError(t, err)
	require.Equal(t, 1, a.Live())

	FreeOne[int](a, &buf[0])
	require.Equal(t, 0, a.Live())
}
