package array_test

import (
	"fmt"

	"github.com/katalvlaran/decmath/array"
	"github.com/katalvlaran/decmath/coerce"
	"github.com/katalvlaran/decmath/num"
)

// ExampleArray1 walks the everyday flow: build from loose inputs, combine
// elementwise, reduce.
func ExampleArray1() {
	ctx := num.DefaultContext()

	a, _ := array.New1(ctx, []any{1, 2, 3}, coerce.AsInt())
	b, _ := array.New1(ctx, []any{4, 5, 6}, coerce.AsInt())

	sum, err := a.Add(array.Arr1(b))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(sum.ToList())

	dot, _ := a.Dot(b)
	fmt.Println(dot)

	// Output:
	// [5 7 9]
	// 32
}

// ExampleArray2 shows a scalar broadcast and the flattened mean.
func ExampleArray2() {
	ctx := num.DefaultContext()

	m, _ := array.New2(ctx, [][]any{{1, 2}, {3, 4}}, coerce.AsInt())

	scaled, err := m.Mul(array.Scalar(num.Int(10)))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(scaled.ToList())

	mean, _ := m.Mean()
	fmt.Println(mean)

	// Output:
	// [[10 20] [30 40]]
	// 2.5
}
