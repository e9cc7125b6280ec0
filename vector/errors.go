// SPDX-License-Identifier: MIT
// Package vector: sentinel error set and typed error payloads.
// Every failure surfaced by this package matches exactly one sentinel via
// errors.Is. Where a caller needs the offending values (dimensions, index,
// reason) the concrete typed error is reachable via errors.As.
// No exported function panics on a user-triggered condition; the unchecked
// accessors (Get, Ptr, Iterator.Value) are the documented exception.

package vector

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "vector: ..." for easy grepping. Typed
// errors unwrap to their sentinel, so errors.Is keeps working even when a
// caller wraps them again with fmt.Errorf("ctx: %w", err).

var (
	// ErrDimensionMismatch indicates that two operands have different dimensions
	// (Add/Sub, AddAssign/SubAssign, Dot).
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrOutOfRange indicates that an index is outside [0, Dimensions()).
	// The checked accessors (At/Ref/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrInvalidOperation indicates a mathematically undefined request,
	// e.g. division by zero or the unit vector of a zero-norm vector.
	ErrInvalidOperation = errors.New("vector: invalid operation")

	// ErrInvalidDimension is returned when a requested dimension is negative.
	ErrInvalidDimension = errors.New("vector: dimension must be >= 0")
)

// Reasons reported by InvalidOperationError.
const (
	ReasonDivisionByZero = "division by zero"
	ReasonZeroDimension  = "zero-dimension vector has no unit vector"
	ReasonZeroNorm       = "zero-norm vector has no unit vector"
)

// DimensionMismatchError reports both operand dimensions.
type DimensionMismatchError struct {
	LHS int // dimension of the left operand (receiver for compound forms)
	RHS int // dimension of the right operand
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("vector: dimensions of LHS(%d) and RHS(%d) do not match", e.LHS, e.RHS)
}

func (e *DimensionMismatchError) Unwrap() error { return ErrDimensionMismatch }

// IndexError reports the offending index of a checked access.
type IndexError struct {
	Index     int
	Dimension int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("vector: index %d is not valid for a vector of dimension %d", e.Index, e.Dimension)
}

func (e *IndexError) Unwrap() error { return ErrOutOfRange }

// InvalidOperationError reports why an operation is undefined for its input.
type InvalidOperationError struct {
	Reason string
}

func (e *InvalidOperationError) Error() string {
	return "vector: invalid operation: " + e.Reason
}

func (e *InvalidOperationError) Unwrap() error { return ErrInvalidOperation }

// vectorErrorf wraps an error with a uniform call-site tag.
// Used for errors that do not already carry their own context (e.g. ErrInvalidDimension).
func vectorErrorf(method string, err error) error {
	return fmt.Errorf("vector.%s: %w", method, err)
}
