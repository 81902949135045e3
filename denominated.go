package token

import (
	"fmt"
	"math"
	"strings"

	"github.com/holiman/uint256"
)

// MaxParseDigits is the maximum number of decimal digits accepted by the
// amount parser. A 78-digit number no longer fits into 256 bits.
const MaxParseDigits = 77

// DenominatedAmount pairs a raw magnitude with the denomination it is
// expressed at, representing the rational value amount * 10^-denom.
//
// Equality via == is structural: both the magnitude and the denomination must
// match. Ordering via [DenominatedAmount.Cmp] is numeric: 15 at denomination 1
// and 1500 at denomination 3 compare equal yet are distinct values. The
// asymmetry is deliberate, it keeps numerically equal values at different
// precisions distinguishable, and downstream code depends on it.
type DenominatedAmount struct {
	amount Amount
	denom  Denomination
}

// NewDenominatedAmount returns an amount read at the given denomination.
func NewDenominatedAmount(amount Amount, denom Denomination) DenominatedAmount {
	return DenominatedAmount{amount: amount, denom: denom}
}

// ParseDenominatedAmount converts a decimal string to an amount whose
// denomination is the number of digits after the decimal point. At most one
// decimal point is accepted, and every other character must be a digit.
//
// ParseDenominatedAmount returns an error wrapping:
//   - [ErrNotNumeric] when the string contains anything but digits and a
//     single decimal point;
//   - [ErrTooManyDigits] when the string has more than [MaxParseDigits]
//     digits;
//   - [ErrInvalidRange] when the digits do not fit into 256 bits.
func ParseDenominatedAmount(s string) (DenominatedAmount, error) {
	mant := s
	frac := 0
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		mant = s[:dot] + s[dot+1:]
		frac = len(s) - dot - 1
	}
	for i := 0; i < len(mant); i++ {
		if mant[i] < '0' || mant[i] > '9' {
			return DenominatedAmount{}, fmt.Errorf("parsing amount %q: %w", s, ErrNotNumeric)
		}
	}
	if len(mant) > MaxParseDigits {
		return DenominatedAmount{}, fmt.Errorf("parsing amount %q: %d digits, maximum %d: %w",
			s, len(mant), MaxParseDigits, ErrTooManyDigits)
	}
	var amount Amount
	if len(mant) > 0 {
		if err := amount.raw.SetFromDecimal(mant); err != nil {
			return DenominatedAmount{}, fmt.Errorf("parsing amount %q: %w", s, ErrInvalidRange)
		}
	}
	return DenominatedAmount{amount: amount, denom: Denomination(frac)}, nil
}

// MustParseDenominatedAmount is like [ParseDenominatedAmount] but panics if
// the string cannot be parsed. It simplifies safe initialization of global
// variables holding amounts.
func MustParseDenominatedAmount(s string) DenominatedAmount {
	d, err := ParseDenominatedAmount(s)
	if err != nil {
		panic(fmt.Sprintf("ParseDenominatedAmount(%q) failed: %v", s, err))
	}
	return d
}

// Amount returns the mantissa.
func (d DenominatedAmount) Amount() Amount {
	return d.amount
}

// Denom returns the denomination.
func (d DenominatedAmount) Denom() Denomination {
	return d.denom
}

// IsZero returns true if the mantissa is zero.
func (d DenominatedAmount) IsZero() bool {
	return d.amount.IsZero()
}

// StringPrecise returns the exact decimal form with exactly denom digits
// after the decimal point, left-padding with a leading "0." when the
// magnitude has fewer digits than the denomination. A denomination of zero
// yields no decimal point at all. The denomination is recoverable from this
// string, unlike from the [DenominatedAmount.String] display form.
func (d DenominatedAmount) StringPrecise() string {
	s := d.amount.raw.Dec()
	decimals := int(d.denom)
	if decimals == 0 {
		return s
	}
	if len(s) > decimals {
		return s[:len(s)-decimals] + "." + s[len(s)-decimals:]
	}
	return "0." + strings.Repeat("0", decimals-len(s)) + s
}

// String implements the [fmt.Stringer] interface and returns a human display
// form: the precise string with trailing fractional zeros and a dangling
// decimal point stripped. This form is lossy, the denomination cannot be
// recovered from it; use [DenominatedAmount.StringPrecise] for round trips.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d DenominatedAmount) String() string {
	s := d.StringPrecise()
	if d.denom > 0 {
		s = strings.TrimRight(s, "0")
	}
	return strings.TrimRight(s, ".")
}

// Canonical returns the value at the minimal denomination that represents it
// exactly, dividing trailing zero digits out of the magnitude. Canonical is
// idempotent and never yields a magnitude ending in a zero digit while the
// denomination is still positive.
func (d DenominatedAmount) Canonical() DenominatedAmount {
	value := d.amount.raw
	ten := uint256.NewInt(10)
	denom := d.denom
	for denom > 0 {
		var q, r uint256.Int
		q.DivMod(&value, ten, &r)
		if !r.IsZero() {
			break
		}
		value = q
		denom--
	}
	return DenominatedAmount{amount: Amount{raw: value}, denom: denom}
}

// Normalized returns the magnitude of the canonical form, for handing to
// external amount representations that carry no denomination of their own.
// Trailing fractional zeros are discarded first, so numerically equal values
// at different precisions normalize to the same magnitude.
func (d DenominatedAmount) Normalized() Amount {
	return d.Canonical().amount
}

// IncreasePrecision rescales the value to a higher denomination, multiplying
// the magnitude by the corresponding power of ten.
//
// IncreasePrecision returns an error wrapping [ErrPrecisionDecrease] if denom
// is lower than the current denomination, or [ErrPrecisionOverflow] if the
// scaled magnitude no longer fits into 256 bits.
func (d DenominatedAmount) IncreasePrecision(denom Denomination) (DenominatedAmount, error) {
	if denom < d.denom {
		return DenominatedAmount{}, fmt.Errorf("rescaling %v from denomination %v to %v: %w",
			d, d.denom, denom, ErrPrecisionDecrease)
	}
	scaling, ok := exp10(int(denom - d.denom))
	var amount Amount
	if ok {
		_, overflow := amount.raw.MulOverflow(&d.amount.raw, scaling)
		ok = !overflow
	}
	if !ok {
		return DenominatedAmount{}, fmt.Errorf("rescaling %v to denomination %v: %w",
			d, denom, ErrPrecisionOverflow)
	}
	return DenominatedAmount{amount: amount, denom: denom}, nil
}

// ScaleTo multiplies the value out to a whole number of 10^-denom units and
// returns the resulting integer magnitude.
// It fails the way [DenominatedAmount.IncreasePrecision] fails.
func (d DenominatedAmount) ScaleTo(denom Denomination) (Amount, error) {
	p, err := d.IncreasePrecision(denom)
	if err != nil {
		return Amount{}, err
	}
	return p.amount, nil
}

// Cmp compares the numeric values of two denominated amounts and returns:
//
//	-1 if d < other
//	 0 if d = other
//	+1 if d > other
//
// Amounts at different denominations compare as real numbers. The side with
// the higher denomination is aligned down by ceiling division, so no
// magnitude is ever scaled beyond 256 bits; the division's remainder breaks
// ceiling ties, counting them as equal only when it is exactly zero.
//
// Cmp returning 0 does not imply ==, which also requires the denominations
// to match.
func (d DenominatedAmount) Cmp(other DenominatedAmount) int {
	if d.denom == other.denom {
		return d.amount.Cmp(other.amount)
	}
	if d.denom < other.denom {
		div, exact := ceilDivPow10(other.amount, int(other.denom)-int(d.denom))
		ord := d.amount.raw.Cmp(div)
		if ord == 0 && !exact {
			return 1
		}
		return ord
	}
	div, exact := ceilDivPow10(d.amount, int(d.denom)-int(other.denom))
	ord := div.Cmp(&other.amount.raw)
	if ord == 0 && !exact {
		return -1
	}
	return ord
}

// ceilDivPow10 divides the magnitude by 10^diff rounding toward positive
// infinity, reporting whether the dropped digits were all zero.
func ceilDivPow10(a Amount, diff int) (div *uint256.Int, exact bool) {
	scaling, ok := exp10(diff)
	if !ok {
		// Any 256-bit magnitude is below 10^78, so the quotient is zero
		// and rounds up to one unless the magnitude itself is zero.
		if a.raw.IsZero() {
			return new(uint256.Int), true
		}
		return uint256.NewInt(1), false
	}
	var q, r uint256.Int
	q.DivMod(&a.raw, scaling, &r)
	exact = r.IsZero()
	if !exact {
		q.Add(&q, uint256.NewInt(1))
	}
	return &q, exact
}

// CheckedAdd returns the sum of the two amounts at the higher of the two
// denominations, or false when raising the lower-precision operand or the
// addition itself overflows 256 bits.
func (d DenominatedAmount) CheckedAdd(other DenominatedAmount) (DenominatedAmount, bool) {
	lhs, rhs, ok := alignPrecision(d, other)
	if !ok {
		return DenominatedAmount{}, false
	}
	amount, ok := lhs.amount.CheckedAdd(rhs.amount)
	if !ok {
		return DenominatedAmount{}, false
	}
	return DenominatedAmount{amount: amount, denom: lhs.denom}, true
}

// CheckedSub returns the difference of the two amounts at the higher of the
// two denominations, or false when raising the lower-precision operand
// overflows 256 bits or the subtraction underflows.
func (d DenominatedAmount) CheckedSub(other DenominatedAmount) (DenominatedAmount, bool) {
	lhs, rhs, ok := alignPrecision(d, other)
	if !ok {
		return DenominatedAmount{}, false
	}
	amount, ok := lhs.amount.CheckedSub(rhs.amount)
	if !ok {
		return DenominatedAmount{}, false
	}
	return DenominatedAmount{amount: amount, denom: lhs.denom}, true
}

// CheckedMul returns the product of the two amounts. The magnitudes multiply
// and the denominations add: 10^-d1 * 10^-d2 = 10^-(d1+d2). It returns false
// when the magnitude product overflows 256 bits or the denomination sum
// exceeds the byte range.
func (d DenominatedAmount) CheckedMul(other DenominatedAmount) (DenominatedAmount, bool) {
	amount, ok := d.amount.CheckedMul(other.amount)
	if !ok {
		return DenominatedAmount{}, false
	}
	denom := int(d.denom) + int(other.denom)
	if denom > math.MaxUint8 {
		return DenominatedAmount{}, false
	}
	return DenominatedAmount{amount: amount, denom: Denomination(denom)}, true
}

// alignPrecision raises the lower-precision operand to the higher operand's
// denomination.
func alignPrecision(lhs, rhs DenominatedAmount) (DenominatedAmount, DenominatedAmount, bool) {
	var err error
	if lhs.denom < rhs.denom {
		lhs, err = lhs.IncreasePrecision(rhs.denom)
	} else {
		rhs, err = rhs.IncreasePrecision(lhs.denom)
	}
	if err != nil {
		return DenominatedAmount{}, DenominatedAmount{}, false
	}
	return lhs, rhs, true
}
