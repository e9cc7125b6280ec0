// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Compound-assignment operators (+=, -=, *=, /=) mutating the receiver in place.
//   - These are the ONLY element-wise kernels; the free operators in operators.go
//     clone their left operand and delegate here.
//
// Guarantees:
//   - Validation precedes mutation: on error the receiver is bit-for-bit unchanged.
//   - Aliasing is safe: v.AddAssign(v) doubles v, v.SubAssign(v) zeroes it.
//   - Every successful call leaves the norm cache Stale.
//
// Determinism & Performance:
//   - Fixed 0..n-1 loop order; no allocations.

package vector

// AddAssign adds o element-wise into v (v += o).
// Errors: *DimensionMismatchError (ErrDimensionMismatch) with LHS=v, RHS=o.
// Complexity: O(n).
func (v *Vector) AddAssign(o *Vector) error {
	if err := ValidateSameDimension(v, o); err != nil {
		return err
	}
	// Walk both buffers in lock-step; reading r before writing l keeps v+=v correct.
	for l, r, end := v.Begin(), o.Begin(), v.End(); !l.Equal(end); l, r = l.Next(), r.Next() {
		l.Set(l.Value() + r.Value())
	}
	v.invalidate()

	return nil
}

// SubAssign subtracts o element-wise from v (v -= o).
// Errors: *DimensionMismatchError (ErrDimensionMismatch).
// Complexity: O(n).
func (v *Vector) SubAssign(o *Vector) error {
	if err := ValidateSameDimension(v, o); err != nil {
		return err
	}
	for l, r, end := v.Begin(), o.Begin(), v.End(); !l.Equal(end); l, r = l.Next(), r.Next() {
		l.Set(l.Value() - r.Value())
	}
	v.invalidate()

	return nil
}

// MulAssign scales every element by s (v *= s) and returns v.
// Never fails.
func (v *Vector) MulAssign(s float64) *Vector {
	for it, end := v.Begin(), v.End(); !it.Equal(end); it = it.Next() {
		it.Set(it.Value() * s)
	}
	v.invalidate()

	return v
}

// DivAssign divides every element by s (v /= s), implemented as v *= 1/s.
// Errors: *InvalidOperationError (ErrInvalidOperation, ReasonDivisionByZero)
// when s == 0; v is unchanged.
func (v *Vector) DivAssign(s float64) error {
	if err := ValidateDivisor(s); err != nil {
		return err
	}
	v.MulAssign(1.0 / s)

	return nil
}
