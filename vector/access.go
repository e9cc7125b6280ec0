// SPDX-License-Identifier: MIT

// Package vector - element access.
//
// Two families:
//   - Checked (At, Ref, Set): validate 0 ≤ i < Dimensions() and return
//     *IndexError instead of panicking. Recommended default.
//   - Unchecked (Get, Ptr): the caller guarantees the index is in range.
//     A violation is a programming error; the Go runtime panics.
//
// Cache policy:
//   - Any writable access marks the norm cache Stale, even when the returned
//     pointer is never written through. Write intent is not observable once
//     a *float64 has escaped.
//   - Checked writable access marks Stale only after the bounds check passes.

package vector

// Dimensions returns the number of elements. O(1), never fails.
func (v *Vector) Dimensions() int {
	return len(v.data)
}

// Get returns element i without bounds validation.
func (v *Vector) Get(i int) float64 {
	return v.data[i]
}

// Ptr returns a writable reference to element i without bounds validation
// and marks the norm cache Stale.
func (v *Vector) Ptr(i int) *float64 {
	p := &v.data[i] // panics before invalidation on a bad index
	v.invalidate()

	return p
}

// At returns element i.
// Errors: *IndexError (ErrOutOfRange) when i is outside [0, Dimensions()).
// Complexity: O(1).
func (v *Vector) At(i int) (float64, error) {
	if err := ValidateIndex(v, i); err != nil {
		return 0, err
	}

	return v.data[i], nil
}

// Ref returns a writable reference to element i.
// The cache is marked Stale only when the index is valid.
// Errors: *IndexError (ErrOutOfRange).
func (v *Vector) Ref(i int) (*float64, error) {
	if err := ValidateIndex(v, i); err != nil {
		return nil, err
	}
	v.invalidate()

	return &v.data[i], nil
}

// Set assigns x to element i.
// Errors: *IndexError (ErrOutOfRange); v is unchanged on failure.
func (v *Vector) Set(i int, x float64) error {
	p, err := v.Ref(i)
	if err != nil {
		return err
	}
	*p = x

	return nil
}
