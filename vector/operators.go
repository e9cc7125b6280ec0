// SPDX-License-Identifier: MIT

// Package vector - free operators and equality.
// Each binary operator copies its left operand and applies the matching
// compound assignment, so operands are never modified and failures propagate
// unchanged.
package vector

// Pos returns an independent copy of v (unary +).
func Pos(v *Vector) *Vector {
	return v.Clone()
}

// Neg returns a copy of v scaled by -1 (unary -).
func Neg(v *Vector) *Vector {
	return v.Clone().MulAssign(-1)
}

// Add returns a + b.
// Errors: *DimensionMismatchError (ErrDimensionMismatch).
func Add(a, b *Vector) (*Vector, error) {
	out := a.Clone()
	if err := out.AddAssign(b); err != nil {
		return nil, err
	}

	return out, nil
}

// Sub returns a - b.
// Errors: *DimensionMismatchError (ErrDimensionMismatch).
func Sub(a, b *Vector) (*Vector, error) {
	out := a.Clone()
	if err := out.SubAssign(b); err != nil {
		return nil, err
	}

	return out, nil
}

// Mul returns v * s.
func Mul(v *Vector, s float64) *Vector {
	return v.Clone().MulAssign(s)
}

// Div returns v / s.
// Errors: *InvalidOperationError (ErrInvalidOperation) when s == 0.
func Div(v *Vector, s float64) (*Vector, error) {
	out := v.Clone()
	if err := out.DivAssign(s); err != nil {
		return nil, err
	}

	return out, nil
}

// Equal reports structural equality: same dimension and every element
// compares equal (IEEE 754 ==, so NaN never equals NaN).
// The norm cache never participates.
// Complexity: O(n), short-circuits on the first difference.
func Equal(a, b *Vector) bool {
	if a.Dimensions() != b.Dimensions() {
		return false
	}
	for l, r, end := a.Begin(), b.Begin(), a.End(); !l.Equal(end); l, r = l.Next(), r.Next() {
		if l.Value() != r.Value() {
			return false
		}
	}

	return true
}

// NotEqual is !Equal(a, b).
func NotEqual(a, b *Vector) bool {
	return !Equal(a, b)
}

// Equal reports whether v and o are structurally equal. See Equal.
func (v *Vector) Equal(o *Vector) bool {
	return Equal(v, o)
}
