package bignum_test

import (
	"fmt"

	"github.com/idlemath/bignum"
)

// This example simulates the resource loop of an incremental game:
// production accrues over ticks, and once the counter reaches the
// upgrade cost, production is multiplied a thousandfold.
func Example_productionLoop() {
	resources := bignum.Zero
	production := bignum.MustNew(2.5, 8)
	cost := bignum.MustNew(1, 9)

	for tick := 0; tick < 4; tick++ {
		resources = resources.MustAdd(production)
	}
	if resources.Cmp(cost) >= 0 {
		production = production.MustMul(bignum.MustNew(1, 3))
	}

	fmt.Println(resources)
	fmt.Println(production)
	// Output:
	// 1.000e9
	// 2.500e11
}

func ExampleNew() {
	fmt.Println(bignum.New(2.5, 10))
	fmt.Println(bignum.New(25, 9))
	fmt.Println(bignum.New(0.25, 11))
	fmt.Println(bignum.New(0, 999))
	// Output:
	// 2.500e10 <nil>
	// 2.500e10 <nil>
	// 2.500e10 <nil>
	// 0.000e0 <nil>
}

func ExampleNewFromFloat64() {
	fmt.Println(bignum.NewFromFloat64(6.02e23))
	fmt.Println(bignum.NewFromFloat64(-0.5))
	// Output:
	// 6.020e23 <nil>
	// -5.000e-1 <nil>
}

func ExampleParse() {
	fmt.Println(bignum.Parse("2.500e10"))
	fmt.Println(bignum.Parse("-1.234E-5"))
	fmt.Println(bignum.Parse("42"))
	// Output:
	// 2.500e10 <nil>
	// -1.234e-5 <nil>
	// 4.200e1 <nil>
}

func ExampleMustParse() {
	n := bignum.MustParse("9.900e99")
	fmt.Println(n)
	// Output: 9.900e99
}

func ExampleZero() {
	fmt.Println(bignum.Zero)
	fmt.Println(bignum.Zero.IsZero())
	// Output:
	// 0.000e0
	// true
}

func ExampleNumber_Add() {
	a := bignum.MustNew(2, 3)
	b := bignum.MustNew(5, 2)
	fmt.Println(a.Add(b))

	// An operand more than 15 decimal orders of magnitude smaller
	// is negligible.
	tiny := bignum.MustNew(3, -20)
	fmt.Println(a.Add(tiny))
	// Output:
	// 2.500e3 <nil>
	// 2.000e3 <nil>
}

func ExampleNumber_Sub() {
	a := bignum.MustNew(5, 10)
	b := bignum.MustNew(3, 10)
	fmt.Println(a.Sub(b))
	// Output: 2.000e10 <nil>
}

func ExampleNumber_Mul() {
	a := bignum.MustNew(5, 3)
	b := bignum.MustNew(4, 2)
	fmt.Println(a.Mul(b))
	// Output: 2.000e6 <nil>
}

func ExampleNumber_Quo() {
	a := bignum.MustNew(6, 10)
	b := bignum.MustNew(2, 5)
	fmt.Println(a.Quo(b))
	fmt.Println(a.Quo(bignum.Zero))
	// Output:
	// 3.000e5 <nil>
	// 0.000e0 division by zero
}

func ExampleNumber_Cmp() {
	a := bignum.MustNew(2.5, 10)
	b := bignum.MustNew(9.9, 5)
	fmt.Println(a.Cmp(b))
	fmt.Println(a.Cmp(a))
	fmt.Println(b.Cmp(a))
	// Output:
	// 1
	// 0
	// -1
}

func ExampleNumber_String() {
	n := bignum.MustNew(2.5, 10)
	fmt.Println(n.String())
	fmt.Println(bignum.Zero.String())
	// Output:
	// 2.500e10
	// 0.000e0
}

func ExampleNumber_Text() {
	n := bignum.MustNew(2.5, 10)
	fmt.Println(n.Text(0))
	fmt.Println(n.Text(1))
	fmt.Println(n.Text(5))
	// Output:
	// 2e10
	// 2.5e10
	// 2.50000e10
}

func ExampleNumber_Float64() {
	n := bignum.MustNew(2.5, 1)
	fmt.Println(n.Float64())
	fmt.Println(bignum.MustNew(1, 400).Float64())
	// Output:
	// 25 true
	// +Inf false
}
