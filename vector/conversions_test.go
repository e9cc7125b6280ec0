// SPDX-License-Identifier: MIT

package vector_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/euclid/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestString checks the canonical six-decimal rendering.
func TestString(t *testing.T) {
	tests := []struct {
		v    *vector.Vector
		want string
	}{
		{MustFilled(t, 0, 0), "[]"},
		{MustFilled(t, 1, 1.6), "[1.600000]"},
		{vector.Of(1.1, 2.234, 3.3003), "[1.100000 2.234000 3.300300]"},
		{vector.Of(-0.5, 1e6), "[-0.500000 1000000.000000]"},
		{vector.New(), "[0.000000]"},
		{vector.Of(math.NaN(), math.Inf(1), math.Inf(-1), 2), "[nan inf -inf 2.000000]"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.v.String())
		assert.Equal(t, tc.want, fmt.Sprint(tc.v))
	}
}

// TestToSlice checks the array-backed snapshot is independent.
func TestToSlice(t *testing.T) {
	v := vector.Of(1, 2, 3)
	s := v.ToSlice()
	require.Equal(t, []float64{1, 2, 3}, s)

	s[0] = 10
	RequireElements(t, v, 1, 2, 3)
	require.NoError(t, v.Set(1, 20))
	require.Equal(t, []float64{10, 2, 3}, s)

	require.Empty(t, vector.Of().ToSlice())
}

// TestToList checks the node-linked snapshot is independent and ordered.
func TestToList(t *testing.T) {
	v := vector.Of(1, 2, 3)
	l := v.ToList()
	require.Equal(t, 3, l.Len())

	var got []float64
	for e := l.Front(); e != nil; e = e.Next() {
		got = append(got, e.Value.(float64))
	}
	require.Equal(t, []float64{1, 2, 3}, got)

	l.Front().Value = 100.0
	RequireElements(t, v, 1, 2, 3)

	require.Equal(t, 0, vector.Of().ToList().Len())
}

// TestYAMLRoundTrip covers encoding inside a document and decoding back.
func TestYAMLRoundTrip(t *testing.T) {
	type doc struct {
		Force *vector.Vector `yaml:"force"`
	}
	in := doc{Force: vector.Of(3, -4.5, 0.125)}
	out, err := yaml.Marshal(in)
	require.NoError(t, err)

	var back doc
	require.NoError(t, yaml.Unmarshal(out, &back))
	require.True(t, vector.Equal(in.Force, back.Force))
	RequireStale(t, back.Force)
}

// TestYAMLDecodeFlow decodes a flow sequence and rejects non-numeric input.
func TestYAMLDecodeFlow(t *testing.T) {
	var v vector.Vector
	require.NoError(t, yaml.Unmarshal([]byte("[3, 4, 12]"), &v))
	RequireElements(t, &v, 3, 4, 12)

	err := yaml.Unmarshal([]byte("[3, x]"), &v)
	require.Error(t, err)
	RequireElements(t, &v, 3, 4, 12)

	require.NoError(t, yaml.Unmarshal([]byte("[]"), &v))
	require.Equal(t, 0, v.Dimensions())
}
