// SPDX-License-Identifier: MIT

package vector_test

import (
	"testing"

	"github.com/katalvlaran/euclid/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAtOutOfRange ensures At/Ref/Set return *IndexError carrying the index.
func TestAtOutOfRange(t *testing.T) {
	v := vector.Of(1, 2)
	for _, i := range []int{-1, 2, 100} {
		_, err := v.At(i)
		require.ErrorIs(t, err, vector.ErrOutOfRange)
		var ie *vector.IndexError
		require.ErrorAs(t, err, &ie)
		assert.Equal(t, i, ie.Index)
		assert.Equal(t, 2, ie.Dimension)

		_, err = v.Ref(i)
		require.ErrorIs(t, err, vector.ErrOutOfRange)
		require.ErrorIs(t, v.Set(i, 5), vector.ErrOutOfRange)
	}
	RequireElements(t, v, 1, 2)

	_, err := vector.Of().At(0)
	require.EqualError(t, err, "vector: index 0 is not valid for a vector of dimension 0")
}

// TestCheckedWriteInvalidatesOnlyOnSuccess checks a failed bounds check keeps the cache.
func TestCheckedWriteInvalidatesOnlyOnSuccess(t *testing.T) {
	v := vector.Of(3, 4)
	require.Equal(t, 5.0, vector.EuclideanNorm(v))

	_, err := v.Ref(2)
	require.Error(t, err)
	_, valid := vector.NormCache_TestOnly(v)
	require.True(t, valid)

	require.NoError(t, v.Set(1, 0))
	RequireStale(t, v)
	require.Equal(t, 3.0, vector.EuclideanNorm(v))
}

// TestRefWritesThrough checks the checked writable reference aliases the element.
func TestRefWritesThrough(t *testing.T) {
	v := vector.Of(1, 2, 3)
	p, err := v.Ref(1)
	require.NoError(t, err)
	*p = 20
	RequireElements(t, v, 1, 20, 3)
}

// TestUncheckedAccess covers Get/Ptr and the conservative invalidation policy.
func TestUncheckedAccess(t *testing.T) {
	v := vector.Of(6, 8)
	require.Equal(t, 8.0, v.Get(1))
	require.Equal(t, 10.0, vector.EuclideanNorm(v))

	// Reading keeps the cache.
	_ = v.Get(0)
	_, valid := vector.NormCache_TestOnly(v)
	require.True(t, valid)

	// Taking a writable reference invalidates even if unused.
	_ = v.Ptr(0)
	RequireStale(t, v)

	*v.Ptr(0) = 0
	require.Equal(t, 8.0, vector.EuclideanNorm(v))
}

// TestUncheckedOutOfRangePanics documents that Get/Ptr leave bounds to the runtime.
func TestUncheckedOutOfRangePanics(t *testing.T) {
	v := vector.Of(1)
	require.Panics(t, func() { _ = v.Get(1) })
	require.Panics(t, func() { _ = v.Ptr(-1) })
}
