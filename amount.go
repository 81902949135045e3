package token

import (
	"fmt"
	"math/big"

	"github.com/govalues/decimal"
	"github.com/holiman/uint256"
)

const (
	// NativeMaxDecimalPlaces is the denomination of the native token.
	// Non-native tokens carry their own denomination in storage.
	NativeMaxDecimalPlaces Denomination = 6

	// NativeScale is the number of micro-units in one whole native token,
	// 10^NativeMaxDecimalPlaces.
	NativeScale uint64 = 1_000_000
)

// Amount represents a quantity of tokens as an unsigned 256-bit count of
// micro-units, the smallest indivisible unit.
// An Amount carries no scale of its own; pair it with a [Denomination] to
// interpret it at a decimal precision.
// Its zero value is a usable zero amount.
type Amount struct {
	raw uint256.Int
}

// AmountFromUint64 treats x as a count of micro-units.
func AmountFromUint64(x uint64) Amount {
	var a Amount
	a.raw.SetUint64(x)
	return a
}

// AmountFromUint scales value up by 10^denom, converting a count of
// 10^-denom units to micro-units.
//
// AmountFromUint returns [ErrScaleOverflow] if the scaled value does not fit
// into 256 bits.
func AmountFromUint(value *uint256.Int, denom Denomination) (Amount, error) {
	var a Amount
	if denom == 0 {
		a.raw.Set(value)
		return a, nil
	}
	scaling, ok := exp10(int(denom))
	if ok {
		_, overflow := a.raw.MulOverflow(scaling, value)
		ok = !overflow
	}
	if !ok {
		return Amount{}, fmt.Errorf("scaling %v by 10^%v: %w", value, denom, ErrScaleOverflow)
	}
	return a, nil
}

// NativeWhole returns an amount of whole native tokens.
func NativeWhole(tokens uint64) Amount {
	var a Amount
	a.raw.Mul(uint256.NewInt(tokens), uint256.NewInt(NativeScale))
	return a
}

// AmountFromDec converts a non-negative fixed-point rate to a count of
// micro-units, truncating any fractional part left after dividing out the
// rate's scale.
//
// AmountFromDec panics when the rate is negative; a negative rate here is a
// logic bug upstream, not recoverable input.
func AmountFromDec(d decimal.Decimal) Amount {
	if d.IsNeg() {
		panic(fmt.Sprintf("converting negative rate %v to an amount", d))
	}
	scaling, _ := exp10(d.Scale())
	var a Amount
	a.raw.Div(uint256.NewInt(d.Coef()), scaling)
	return a
}

// ParseAmount converts a decimal string to a micro-unit amount at the given
// denomination. It parses s with [ParseDenominatedAmount] and scales the
// result to a whole number of 10^-denom units.
func ParseAmount(s string, denom Denomination) (Amount, error) {
	d, err := ParseDenominatedAmount(s)
	if err != nil {
		return Amount{}, err
	}
	return d.ScaleTo(denom)
}

// MustParseAmount is like [ParseAmount] but panics if the string cannot be
// parsed. It simplifies safe initialization of global variables holding
// amounts.
func MustParseAmount(s string, denom Denomination) Amount {
	a, err := ParseAmount(s, denom)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q, %v) failed: %v", s, denom, err))
	}
	return a
}

// ParseAmountPrecise converts a decimal string to an amount under the
// assumption that the string already encodes all necessary decimal places:
// the parsed mantissa becomes the magnitude.
func ParseAmountPrecise(s string) (Amount, error) {
	d, err := ParseDenominatedAmount(s)
	if err != nil {
		return Amount{}, err
	}
	return d.Amount(), nil
}

// MaxAmount returns the largest representable amount, 2^256 - 1 micro-units.
func MaxAmount() Amount {
	var a Amount
	a.raw.SetAllOne()
	return a
}

// MaxSignedAmount returns the largest amount that remains representable as a
// [Change], 2^255 - 1 micro-units.
func MaxSignedAmount() Amount {
	a := MaxAmount()
	a.raw.Rsh(&a.raw, 1)
	return a
}

// IsZero returns true if the amount is zero.
func (a Amount) IsZero() bool {
	return a.raw.IsZero()
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
func (a Amount) Cmp(b Amount) int {
	return a.raw.Cmp(&b.raw)
}

// CheckedAdd returns the sum a + b, or false if the sum overflows 256 bits.
func (a Amount) CheckedAdd(b Amount) (Amount, bool) {
	var c Amount
	if _, overflow := c.raw.AddOverflow(&a.raw, &b.raw); overflow {
		return Amount{}, false
	}
	return c, true
}

// CheckedSignedAdd returns the sum a + b, or false if the sum exceeds the
// signed ceiling of 2^255 - 1. It is the stricter variant of
// [Amount.CheckedAdd] for results that must later convert to a [Change].
func (a Amount) CheckedSignedAdd(b Amount) (Amount, bool) {
	c, ok := a.CheckedAdd(b)
	if !ok {
		return Amount{}, false
	}
	ms := MaxSignedAmount()
	if c.raw.Cmp(&ms.raw) > 0 {
		return Amount{}, false
	}
	return c, true
}

// CheckedSub returns the difference a - b, or false on underflow.
func (a Amount) CheckedSub(b Amount) (Amount, bool) {
	var c Amount
	if _, underflow := c.raw.SubOverflow(&a.raw, &b.raw); underflow {
		return Amount{}, false
	}
	return c, true
}

// CheckedMul returns the product a * b, or false if the product overflows
// 256 bits.
func (a Amount) CheckedMul(b Amount) (Amount, bool) {
	var c Amount
	if _, overflow := c.raw.MulOverflow(&a.raw, &b.raw); overflow {
		return Amount{}, false
	}
	return c, true
}

// CheckedDiv returns the quotient a / b truncated toward zero, or false if b
// is zero.
func (a Amount) CheckedDiv(b Amount) (Amount, bool) {
	if b.raw.IsZero() {
		return Amount{}, false
	}
	var c Amount
	c.raw.Div(&a.raw, &b.raw)
	return c, true
}

// CanSpend reports whether the balance covers amount.
func (a Amount) CanSpend(amount Amount) bool {
	return a.raw.Cmp(&amount.raw) >= 0
}

// Spend subtracts amount from the balance in place.
//
// Spend panics when amount exceeds the balance; callers must check with
// [Amount.CanSpend] first.
func (a *Amount) Spend(amount Amount) {
	c, ok := a.CheckedSub(amount)
	if !ok {
		panic(fmt.Sprintf("spending %v from balance %v", amount, a))
	}
	*a = c
}

// Receive adds amount to the balance in place.
//
// Receive panics when the sum overflows 256 bits.
func (a *Amount) Receive(amount Amount) {
	c, ok := a.CheckedAdd(amount)
	if !ok {
		panic(fmt.Sprintf("receiving %v into balance %v: overflow", amount, a))
	}
	*a = c
}

// MulCeil multiplies the amount by a non-negative fixed-point rate and rounds
// the product up to the nearest whole micro-unit whenever there is a non-zero
// remainder.
//
// MulCeil panics when the rate is negative or when the intermediate product
// overflows 256 bits; both indicate a bug in the caller.
func (a Amount) MulCeil(rate decimal.Decimal) Amount {
	if rate.IsNeg() {
		panic(fmt.Sprintf("multiplying %v by negative rate %v", a, rate))
	}
	var tot uint256.Int
	if _, overflow := tot.MulOverflow(&a.raw, uint256.NewInt(rate.Coef())); overflow {
		panic(fmt.Sprintf("multiplying %v by rate %v: overflow", a, rate))
	}
	scaling, _ := exp10(rate.Scale())
	var q, r uint256.Int
	q.DivMod(&tot, scaling, &r)
	if !r.IsZero() {
		q.Add(&q, uint256.NewInt(1))
	}
	return Amount{raw: q}
}

// Uint returns a copy of the raw 256-bit magnitude in micro-units.
func (a Amount) Uint() *uint256.Int {
	u := a.raw
	return &u
}

// Words returns the four 64-bit words of the magnitude, least significant
// first. The word layout is shared bit-for-bit with external 256-bit integer
// types.
func (a Amount) Words() [4]uint64 {
	return [4]uint64(a.raw)
}

// Big returns the magnitude as a big integer for handing to external
// big-integer representations. The conversion is lossless.
func (a Amount) Big() *big.Int {
	return a.raw.ToBig()
}

// Uint64 returns the magnitude as a uint64, or false if it does not fit.
func (a Amount) Uint64() (uint64, bool) {
	if !a.raw.IsUint64() {
		return 0, false
	}
	return a.raw.Uint64(), true
}

// Uint128 returns the magnitude as a pair of 64-bit words, the low word
// first. It returns [ErrInvalidRange] when either of the two highest words of
// the magnitude is non-zero.
func (a Amount) Uint128() (lo, hi uint64, err error) {
	if a.raw[2] != 0 || a.raw[3] != 0 {
		return 0, 0, fmt.Errorf("converting %v to uint128: %w", a, ErrInvalidRange)
	}
	return a.raw[0], a.raw[1], nil
}

// NativeDenominated tags the amount with the native token's denomination.
func (a Amount) NativeDenominated() DenominatedAmount {
	return DenominatedAmount{amount: a, denom: NativeMaxDecimalPlaces}
}

// StringNative returns the precise decimal form of a native token amount,
// with [NativeMaxDecimalPlaces] digits after the decimal point.
func (a Amount) StringNative() string {
	return a.NativeDenominated().StringPrecise()
}

// String implements the [fmt.Stringer] interface and returns the plain
// decimal magnitude with no decimal point. The string is only meaningful
// together with a denomination.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return a.raw.Dec()
}

// exp10 returns 10^n, or false if the power does not fit into 256 bits.
func exp10(n int) (*uint256.Int, bool) {
	if n < 0 || n > MaxParseDigits {
		return nil, false
	}
	return new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(uint64(n))), true
}
