// SPDX-License-Identifier: MIT

// Package vector provides Vector, a dense, dynamically sized float64 vector
// with value semantics.
//
// What & Why:
//
//	Vector is a building block for numeric code (physics, geometry, feature
//	vectors). It owns its buffer exclusively: Clone deep-copies, Move hands the
//	buffer over and leaves the source as an empty but valid vector. The
//	Euclidean norm is memoized and invalidated by every write access.
//
// API at a glance:
//
//	Construction: New, NewDim, NewFilled, FromRange, Of, FromSeq, Clone, Move
//	Assignment:   Assign (copy), MoveAssign (move); both self-assignment safe
//	Access:       Dimensions; At/Ref/Set (checked); Get/Ptr (unchecked)
//	Compound:     AddAssign, SubAssign, MulAssign, DivAssign
//	Operators:    Pos, Neg, Add, Sub, Mul, Div, Equal, NotEqual
//	Derived:      EuclideanNorm, Unit, Dot
//	Traversal:    Begin/End (random-access Iterator), All, Values
//	Conversion:   ToSlice, ToList, String, MarshalYAML/UnmarshalYAML
//
// Errors:
//
//	ErrDimensionMismatch (*DimensionMismatchError), ErrOutOfRange (*IndexError),
//	ErrInvalidOperation (*InvalidOperationError), ErrInvalidDimension.
//	Match with errors.Is; extract payloads with errors.As. Mutating operations
//	validate first, so a failed call leaves the receiver unchanged.
//
// Concurrency:
//
//	Not safe for concurrent use. Even EuclideanNorm and Unit write the norm
//	cache. Distinct vectors share nothing and may be used from different
//	goroutines freely.
package vector
