package token

import (
	"fmt"

	"github.com/holiman/uint256"
)

// Change is a signed 256-bit delta of an [Amount], stored in two's
// complement. A valid change has a magnitude of at most 2^255 - 1, the
// ceiling [Amount.Change] enforces on conversion.
// Its zero value is a zero change.
type Change struct {
	raw uint256.Int
}

// Change converts the amount to a signed delta.
//
// It panics when the magnitude exceeds the signed ceiling of 2^255 - 1; such
// amounts have no signed representation, and reaching here means an upstream
// bound check is missing.
func (a Amount) Change() Change {
	ms := MaxSignedAmount()
	if a.raw.Cmp(&ms.raw) > 0 {
		panic(fmt.Sprintf("amount %v exceeds the signed ceiling", a))
	}
	return Change{raw: a.raw}
}

// AmountFromChange returns the absolute value of the change. The sign is
// lost, and distinct changes map to the same amount; callers that need the
// sign must track it out of band.
func AmountFromChange(c Change) Amount {
	var a Amount
	a.raw.Abs(&c.raw)
	return a
}

// Abs returns the absolute value of the change as an unsigned amount.
func (c Change) Abs() Amount {
	return AmountFromChange(c)
}

// Neg returns the change with the opposite sign.
func (c Change) Neg() Change {
	var n Change
	n.raw.Neg(&c.raw)
	return n
}

// Sign returns:
//
//	-1 if c < 0
//	 0 if c = 0
//	+1 if c > 0
func (c Change) Sign() int {
	return c.raw.Sign()
}

// IsNegative returns true if the change is below zero.
func (c Change) IsNegative() bool {
	return c.raw.Sign() < 0
}

// CheckedAdd returns the sum c + other, or false when the sum's magnitude
// leaves the signed ceiling of 2^255 - 1.
func (c Change) CheckedAdd(other Change) (Change, bool) {
	var s Change
	s.raw.Add(&c.raw, &other.raw)
	if c.Sign() > 0 && other.Sign() > 0 && s.Sign() < 0 {
		return Change{}, false
	}
	if c.Sign() < 0 && other.Sign() < 0 && s.Sign() >= 0 {
		return Change{}, false
	}
	if !withinSignedCeiling(&s.raw) {
		return Change{}, false
	}
	return s, true
}

// CheckedSub returns the difference c - other, or false when the result's
// magnitude leaves the signed ceiling of 2^255 - 1.
func (c Change) CheckedSub(other Change) (Change, bool) {
	var s Change
	s.raw.Sub(&c.raw, &other.raw)
	if c.Sign() > 0 && other.Sign() < 0 && s.Sign() < 0 {
		return Change{}, false
	}
	if c.Sign() < 0 && other.Sign() > 0 && s.Sign() >= 0 {
		return Change{}, false
	}
	if !withinSignedCeiling(&s.raw) {
		return Change{}, false
	}
	return s, true
}

// withinSignedCeiling reports whether the two's-complement value has a
// magnitude of at most 2^255 - 1. The only violation is -2^255, whose
// absolute value wraps back onto itself.
func withinSignedCeiling(raw *uint256.Int) bool {
	var abs uint256.Int
	abs.Abs(raw)
	ms := MaxSignedAmount()
	return abs.Cmp(&ms.raw) <= 0
}

// String implements the [fmt.Stringer] interface and returns the signed
// decimal magnitude.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Change) String() string {
	if c.IsNegative() {
		return "-" + c.Abs().String()
	}
	return c.raw.Dec()
}
