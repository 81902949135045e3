package token_test

import (
	"fmt"

	"github.com/govalues/decimal"
	"github.com/umbra-ledger/token"
)

// This example parses a denominated amount and shows its precise, lossy,
// and canonical renderings.
func ExampleParseDenominatedAmount() {
	d, err := token.ParseDenominatedAmount("123.450")
	if err != nil {
		panic(err)
	}
	fmt.Println(d.StringPrecise())
	fmt.Println(d.String())
	fmt.Println(d.Canonical().StringPrecise())
	// Output:
	// 123.450
	// 123.45
	// 123.45
}

// Comparison is numeric across denominations, while equality remains
// structural.
func ExampleDenominatedAmount_Cmp() {
	a := token.MustParseDenominatedAmount("1.5")
	b := token.MustParseDenominatedAmount("1.500")

	fmt.Println(a.Cmp(b))
	fmt.Println(a == b)
	// Output:
	// 0
	// false
}

func ExampleAmount_MulCeil() {
	rate := decimal.MustParse("0.34")
	a := token.AmountFromUint64(3)

	fmt.Println(a.MulCeil(rate))
	// Output:
	// 2
}

// A balance stored in native micro units is spent from and rendered at the
// native denomination.
func ExampleAmount_Spend() {
	balance := token.NativeWhole(5)

	withdrawal, err := token.ParseAmount("1.5", token.NativeMaxDecimalPlaces)
	if err != nil {
		panic(err)
	}
	balance.Spend(withdrawal)

	fmt.Println(balance.StringNative())
	// Output:
	// 3.500000
}

// Key segments round-trip and sort in magnitude order.
func ExampleAmount_KeySegment() {
	a := token.AmountFromUint64(1234560000)

	seg := a.KeySegment()
	back, err := token.ParseKeySegment(seg)
	if err != nil {
		panic(err)
	}
	fmt.Println(back == a)
	fmt.Println(back.Cmp(a))
	// Output:
	// true
	// 0
}
