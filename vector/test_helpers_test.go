// SPDX-License-Identifier: MIT
// Package vector_test contains test helpers.
//
// Purpose:
//   • Small, deterministic fixtures shared across the vector tests.

package vector_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/euclid/vector"
	"github.com/stretchr/testify/require"
)

// MustFilled ALLOCATES an n-dimensional vector filled with x or fails the test.
func MustFilled(tb testing.TB, n int, x float64) *vector.Vector {
	tb.Helper()
	v, err := vector.NewFilled(n, x)
	require.NoError(tb, err)

	return v
}

// RequireElements asserts v holds exactly want, checked through At, and that
// At(len(want)) is out of range.
func RequireElements(tb testing.TB, v *vector.Vector, want ...float64) {
	tb.Helper()
	require.Equal(tb, len(want), v.Dimensions())
	for i, w := range want {
		got, err := v.At(i)
		require.NoError(tb, err)
		require.Equal(tb, w, got, "element %d", i)
	}
	_, err := v.At(len(want))
	require.ErrorIs(tb, err, vector.ErrOutOfRange)
}

// RequireStale asserts the norm cache is Stale.
func RequireStale(tb testing.TB, v *vector.Vector) {
	tb.Helper()
	_, valid := vector.NormCache_TestOnly(v)
	require.False(tb, valid, "norm cache must be stale")
}

// RandVector builds an n-dimensional vector with a fixed seed.
func RandVector(tb testing.TB, n int, seed int64) *vector.Vector {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = rng.Float64()*2 - 1
	}

	return vector.Of(xs...)
}
