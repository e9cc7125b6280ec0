// SPDX-License-Identifier: MIT

// Package vector - construction, ownership transfer & assignment.
//
// Purpose:
//   - Provide every construction variant: default, by dimension, by dimension
//     and fill value, from an iterator range, from a literal list, from a sequence.
//   - Implement the two transfer protocols: deep copy (Clone/Assign) and
//     move-and-empty (Move/MoveAssign).
//
// Ownership rules:
//   - Two live vectors never share a buffer. Clone and Assign always allocate.
//   - Move hands the buffer to the destination and leaves the source as a
//     valid 0-dimension vector with its own fresh empty buffer.
//
// Complexity quicksheet:
//   - New/NewDim/NewFilled/Of/FromRange/Clone/Assign: O(n); Move/MoveAssign: O(1).

package vector

import "iter"

// DefaultDimension is the dimension produced by New.
const DefaultDimension = 1

// New returns the default vector: dimension 1, element value 0.
// Complexity: O(1).
func New() *Vector {
	return &Vector{data: make([]float64, DefaultDimension)}
}

// NewDim returns an n-dimensional zero vector.
// Errors: ErrInvalidDimension when n < 0.
// Complexity: O(n).
func NewDim(n int) (*Vector, error) {
	return NewFilled(n, 0)
}

// NewFilled returns an n-dimensional vector whose every element equals fill.
// Implementation:
//   - Stage 1: validate n ≥ 0.
//   - Stage 2: allocate and fill through the cursor API.
//
// Errors: ErrInvalidDimension when n < 0.
// Complexity: O(n).
func NewFilled(n int, fill float64) (*Vector, error) {
	if err := ValidateDimension(n); err != nil {
		return nil, vectorErrorf("NewFilled", err)
	}
	v := &Vector{data: make([]float64, n)}
	if fill != 0 { // make() already zero-fills
		for it, end := v.Begin(), v.End(); !it.Equal(end); it = it.Next() {
			it.Set(fill)
		}
	}

	return v, nil
}

// FromRange copies the half-open cursor range [first, last) into a new vector.
// The source range is only read; its owner's norm cache is left untouched.
// Both cursors must belong to the same vector (caller's responsibility).
//
// Errors: ErrInvalidDimension when last precedes first.
// Complexity: O(distance).
func FromRange(first, last Iterator) (*Vector, error) {
	n := last.Distance(first)
	if err := ValidateDimension(n); err != nil {
		return nil, vectorErrorf("FromRange", err)
	}
	v := &Vector{data: make([]float64, n)}
	dst := v.Begin()
	for src := first; !src.Equal(last); src = src.Next() {
		dst.Set(src.Value())
		dst = dst.Next()
	}

	return v, nil
}

// Of returns a vector holding a copy of xs, in order.
// The caller keeps ownership of xs; later writes to it do not affect the result.
// Of() yields a 0-dimension vector.
func Of(xs ...float64) *Vector {
	data := make([]float64, len(xs))
	copy(data, xs)

	return &Vector{data: data}
}

// FromSeq drains seq into a new vector.
func FromSeq(seq iter.Seq[float64]) *Vector {
	data := make([]float64, 0)
	for x := range seq {
		data = append(data, x)
	}

	return &Vector{data: data}
}

// Clone returns a deep copy with a freshly allocated buffer.
// The norm cache is copied as well; that only saves a recomputation.
// Complexity: O(n).
func (v *Vector) Clone() *Vector {
	data := make([]float64, len(v.data))
	copy(data, v.data)

	return &Vector{data: data, norm: v.norm}
}

// Move transfers v's buffer into a new Vector and leaves v empty.
// After the call v.Dimensions() == 0 and v remains fully usable.
// No element is copied.
func (v *Vector) Move() *Vector {
	dst := &Vector{data: v.data, norm: v.norm}
	v.data = make([]float64, 0)
	v.invalidate()

	return dst
}

// Assign replaces v's contents with a deep copy of src and returns v.
// Copy-then-swap: a fresh buffer is built first, so v.Assign(v) is a no-op
// in value terms and never observes a half-written state.
func (v *Vector) Assign(src *Vector) *Vector {
	tmp := src.Clone()
	v.data, tmp.data = tmp.data, v.data
	v.norm = tmp.norm

	return v
}

// MoveAssign transfers src's buffer into v, leaves src empty and returns v.
// v.MoveAssign(v) leaves v unchanged.
func (v *Vector) MoveAssign(src *Vector) *Vector {
	if v == src {
		return v
	}
	v.data, v.norm = src.data, src.norm
	src.data = make([]float64, 0)
	src.invalidate()

	return v
}
