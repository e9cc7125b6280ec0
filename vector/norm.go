// SPDX-License-Identifier: MIT

// Package vector - norm cache and derived operations.
//
// EuclideanNorm is logically a read but writes the hidden cache (memoization).
// Callers may rely on value-level immutability only; two goroutines calling
// EuclideanNorm or Unit on the same *Vector race. Take a Clone per goroutine
// instead.

package vector

import "math"

// EuclideanNorm returns sqrt(Σ e²), reusing the cached value when no
// mutation happened since the last computation.
// Complexity: O(1) on a cache hit, O(n) otherwise.
func EuclideanNorm(v *Vector) float64 {
	if v.norm.valid {
		return v.norm.value
	}
	var sum float64
	for x := range v.Values() {
		sum += x * x
	}
	v.norm = normCache{valid: true, value: math.Sqrt(sum)}

	return v.norm.value
}

// Unit returns v scaled to norm 1.
// Errors (both match ErrInvalidOperation):
//   - ReasonZeroDimension when v has no elements;
//   - ReasonZeroNorm when every element is zero.
func Unit(v *Vector) (*Vector, error) {
	if v.Dimensions() == 0 {
		return nil, &InvalidOperationError{Reason: ReasonZeroDimension}
	}
	n := EuclideanNorm(v)
	if n == 0 {
		return nil, &InvalidOperationError{Reason: ReasonZeroNorm}
	}

	out := v.Clone()
	for it, end := out.Begin(), out.End(); !it.Equal(end); it = it.Next() {
		it.Set(it.Value() / n)
	}

	return out, nil
}

// Dot returns Σ xᵢ·yᵢ. Two 0-dimension vectors yield 0.
// Errors: *DimensionMismatchError (ErrDimensionMismatch) with LHS=x, RHS=y.
func Dot(x, y *Vector) (float64, error) {
	if err := ValidateSameDimension(x, y); err != nil {
		return 0, err
	}
	var sum float64
	for l, r, end := x.Begin(), y.Begin(), x.End(); !l.Equal(end); l, r = l.Next(), r.Next() {
		sum += l.Value() * r.Value()
	}

	return sum, nil
}
