// Package euclid is a small numeric toolkit built around a dense Euclidean
// vector value type.
//
// What is inside:
//
//	vector/   — Vector: construction, copy/move ownership, checked and unchecked
//	            access, random-access iteration, compound and free arithmetic,
//	            memoized Euclidean norm, unit vector, dot product, conversions
//	cmd/evec/ — command-line calculator over the vector package
//
// Vectors are single-owner values: copies never share storage, and moving a
// vector leaves the source empty but usable. None of the types are safe for
// concurrent mutation; clone per goroutine instead.
//
// Quick example:
//
//	v := vector.Of(3, 4, 12)
//	u, _ := vector.Unit(v)   // [0.230769 0.307692 0.923077]
//	n := vector.EuclideanNorm(v) // 13
//
//	go get github.com/katalvlaran/euclid
package euclid
