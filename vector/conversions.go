// SPDX-License-Identifier: MIT

// Package vector - one-way snapshots, canonical text form and YAML codec.
//
// Snapshots (ToSlice, ToList) always copy: the result shares no storage with
// the vector and later mutations on either side are invisible to the other.

package vector

import (
	"container/list"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = " "
)

// Compile-time assertions for fmt/yaml conformance.
var (
	_ fmt.Stringer     = (*Vector)(nil)
	_ yaml.Marshaler   = (*Vector)(nil)
	_ yaml.Unmarshaler = (*Vector)(nil)
)

// ToSlice returns a copy of the elements as an array-backed sequence.
func (v *Vector) ToSlice() []float64 {
	out := make([]float64, 0, v.Dimensions())
	for x := range v.Values() {
		out = append(out, x)
	}

	return out
}

// ToList returns a copy of the elements as a node-linked sequence.
// Every list element's Value is a float64.
func (v *Vector) ToList() *list.List {
	l := list.New()
	for x := range v.Values() {
		l.PushBack(x)
	}

	return l
}

// String renders the canonical form: "[" + elements in fixed-point with six
// decimals separated by one space + "]". A 0-dimension vector renders "[]".
// Non-finite elements render as "nan", "inf" and "-inf".
//
//	Of(1.1, 2.234).String() == "[1.100000 2.234000]"
func (v *Vector) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for i, x := range v.All() {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		sb.WriteString(formatElement(x))
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}

// formatElement renders one element in the canonical fixed-point form.
func formatElement(x float64) string {
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}

	return strconv.FormatFloat(x, 'f', 6, 64)
}

// MarshalYAML encodes v as a YAML sequence of floats.
func (v *Vector) MarshalYAML() (interface{}, error) {
	return v.ToSlice(), nil
}

// UnmarshalYAML replaces v's buffer with the decoded sequence.
// v is left unchanged when decoding fails.
func (v *Vector) UnmarshalYAML(value *yaml.Node) error {
	var xs []float64
	if err := value.Decode(&xs); err != nil {
		return fmt.Errorf("vector.UnmarshalYAML: %w", err)
	}
	v.MoveAssign(Of(xs...))

	return nil
}
