// SPDX-License-Identifier: MIT

// Package vector: domain types.
// This file contains ONLY the Vector value type and its norm cache. Errors,
// validators and operations live in dedicated files.
package vector

// normCache memoizes the Euclidean norm of the owning Vector.
//   - valid=false is the Stale state; value is meaningless.
//   - valid=true is Valid(value).
//
// The cache is derived state: it never participates in equality and is
// updated by nominally read-only calls (EuclideanNorm, Unit). It is NOT
// safe for concurrent use; see the package doc.
type normCache struct {
	valid bool    // Valid(value) when true, Stale otherwise
	value float64 // last computed norm, meaningful only when valid
}

// Vector is a dense, fixed-dimension vector of float64 values.
//   - data is the exclusively owned buffer; its length IS the dimension.
//   - norm is the memoized Euclidean norm, invalidated by every write access.
//
// A Vector is a single-owner value: Clone always allocates a fresh buffer,
// and Move is the only way a buffer changes owner. The zero value is a
// valid 0-dimension vector.
type Vector struct {
	data []float64 // owned storage, len(data) == dimension
	norm normCache // Stale after construction and after any mutation
}

// invalidate marks the norm cache Stale.
// Called on every write path, including taking a writable element reference.
func (v *Vector) invalidate() {
	v.norm = normCache{}
}
