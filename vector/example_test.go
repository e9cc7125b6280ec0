// SPDX-License-Identifier: MIT

package vector_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/euclid/vector"
)

// ExampleUnit normalizes the 3-4-12 vector.
func ExampleUnit() {
	v := vector.Of(3, 4, 12)
	fmt.Println(vector.EuclideanNorm(v))

	u, err := vector.Unit(v)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(u)
	// Output:
	// 13
	// [0.230769 0.307692 0.923077]
}

// ExampleAdd shows the dimension check on free operators.
func ExampleAdd() {
	a, _ := vector.NewFilled(2, 1.5)
	b, _ := vector.NewFilled(2, 1.75)
	sum, _ := vector.Add(a, b)
	fmt.Println(sum)

	_, err := vector.Add(a, vector.Of(1, 2, 3))
	fmt.Println(errors.Is(err, vector.ErrDimensionMismatch))
	fmt.Println(err)
	// Output:
	// [3.250000 3.250000]
	// true
	// vector: dimensions of LHS(2) and RHS(3) do not match
}

// ExampleVector_Move shows the source is left empty but usable.
func ExampleVector_Move() {
	src := vector.Of(1, 2)
	dst := src.Move()
	fmt.Println(dst, src, src.Dimensions())
	// Output:
	// [1.000000 2.000000] [] 0
}

// ExampleVector_DivAssign shows the receiver is untouched on failure.
func ExampleVector_DivAssign() {
	v := vector.Of(3, 4)
	err := v.DivAssign(0)
	fmt.Println(err)
	fmt.Println(v)
	// Output:
	// vector: invalid operation: division by zero
	// [3.000000 4.000000]
}
