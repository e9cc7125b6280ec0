// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Single source of truth for the guards every mutating or binary operation runs.
//   - Validation ALWAYS precedes mutation: callers invoke these before touching data,
//     which is what gives the compound operators their no-partial-write guarantee.
//
// Determinism & Performance:
//   - All checks are O(1), pure and allocate only on the failure path.

package vector

// ValidateDimension ensures a requested dimension is non-negative.
// Returns ErrInvalidDimension (unwrapped) so call sites can tag it.
func ValidateDimension(n int) error {
	if n < 0 {
		return ErrInvalidDimension
	}

	return nil
}

// ValidateIndex ensures 0 ≤ i < v.Dimensions().
// Returns *IndexError (matches ErrOutOfRange).
// Complexity: O(1).
func ValidateIndex(v *Vector, i int) error {
	if i < 0 || i >= len(v.data) {
		return &IndexError{Index: i, Dimension: len(v.data)}
	}

	return nil
}

// ValidateSameDimension ensures a and b have equal dimensions.
// Returns *DimensionMismatchError (matches ErrDimensionMismatch) with a as LHS.
// Complexity: O(1).
func ValidateSameDimension(a, b *Vector) error {
	if len(a.data) != len(b.data) {
		return &DimensionMismatchError{LHS: len(a.data), RHS: len(b.data)}
	}

	return nil
}

// ValidateDivisor rejects an exactly-zero divisor.
// Negative zero is also rejected (-0 == 0 under IEEE 754).
func ValidateDivisor(s float64) error {
	if s == 0 {
		return &InvalidOperationError{Reason: ReasonDivisionByZero}
	}

	return nil
}
