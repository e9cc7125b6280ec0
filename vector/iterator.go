// SPDX-License-Identifier: MIT

// Package vector - random-access cursor and range-over-func views.
//
// Iterator mirrors a pointer into the owned buffer: it steps, offsets,
// dereferences and measures distance, and it carries no bounds metadata of
// its own. Dereferencing outside [Begin, End) is a caller bug (the Go runtime
// panics), as is comparing cursors obtained from different vectors.
//
// A cursor refers to its vector, not to a snapshot of the buffer, so writes
// through it invalidate that vector's norm cache. Moving the vector
// (Move/MoveAssign) invalidates all of its cursors.
//
// For ordinary traversal prefer All/Values: they are read-only and cannot
// run off the end.

package vector

import "iter"

// Iterator is a random-access cursor over a Vector's elements.
// The zero Iterator is not usable.
type Iterator struct {
	owner *Vector // vector whose buffer is traversed
	pos   int     // element offset; End() is pos == Dimensions()
}

// Begin returns a cursor at the first element.
func (v *Vector) Begin() Iterator {
	return Iterator{owner: v, pos: 0}
}

// End returns the one-past-the-last cursor.
func (v *Vector) End() Iterator {
	return Iterator{owner: v, pos: len(v.data)}
}

// Next returns the cursor one element forward.
func (it Iterator) Next() Iterator {
	it.pos++
	return it
}

// Prev returns the cursor one element back.
func (it Iterator) Prev() Iterator {
	it.pos--
	return it
}

// Offset returns the cursor moved by n elements (n may be negative).
func (it Iterator) Offset(n int) Iterator {
	it.pos += n
	return it
}

// Distance returns it - other in elements.
func (it Iterator) Distance(other Iterator) int {
	return it.pos - other.pos
}

// Pos returns the element offset of the cursor.
func (it Iterator) Pos() int {
	return it.pos
}

// Value dereferences the cursor.
func (it Iterator) Value() float64 {
	return it.owner.data[it.pos]
}

// At dereferences the element n positions away, like it[n].
func (it Iterator) At(n int) float64 {
	return it.owner.data[it.pos+n]
}

// Ptr returns a writable reference to the current element and marks the
// owner's norm cache Stale.
func (it Iterator) Ptr() *float64 {
	return it.owner.Ptr(it.pos)
}

// Set writes x at the cursor.
func (it Iterator) Set(x float64) {
	*it.Ptr() = x
}

// Equal reports whether both cursors point at the same element.
func (it Iterator) Equal(other Iterator) bool {
	return it.owner == other.owner && it.pos == other.pos
}

// Less reports whether it precedes other.
func (it Iterator) Less(other Iterator) bool {
	return it.pos < other.pos
}

// All yields (index, value) pairs in order.
// The vector must not be resized (moved) while ranging.
func (v *Vector) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i, x := range v.data {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Values yields the elements in order.
func (v *Vector) Values() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, x := range v.data {
			if !yield(x) {
				return
			}
		}
	}
}
