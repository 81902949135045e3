package token

import "fmt"

// DigitPos indexes one of the four 64-bit words of an amount's 256-bit
// magnitude, counting from the least significant word. Shielded-pool notes
// cannot hold a 256-bit value directly, so an amount is embedded as four
// per-position 64-bit words; summing [AmountFromDigit] over all four
// positions reconstructs the original magnitude bit for bit.
type DigitPos uint8

// The four digit positions, least significant first.
const (
	DigitPos0 DigitPos = iota
	DigitPos1
	DigitPos2
	DigitPos3
)

const numDigitPos = 4

// DigitPosOf converts an index to a digit position.
//
// It panics when the index is not in [0, 3]; slot indexes come from the
// note scheme's fixed layout, so anything else is a bug.
func DigitPosOf(i uint8) DigitPos {
	if i >= numDigitPos {
		panic(fmt.Sprintf("digit position %d out of range", i))
	}
	return DigitPos(i)
}

// DigitPositions lists the four digit positions in ascending order.
func DigitPositions() [numDigitPos]DigitPos {
	return [...]DigitPos{DigitPos0, DigitPos1, DigitPos2, DigitPos3}
}

// Denominate extracts the 64-bit word at position p from the amount.
func (p DigitPos) Denominate(a Amount) uint64 {
	return a.raw[p]
}

// DenominateSigned extracts the 64-bit word at position p from the absolute
// value of the change, together with the change's sign.
func (p DigitPos) DenominateSigned(c Change) (word uint64, negative bool) {
	abs := c.Abs()
	return abs.raw[p], c.IsNegative()
}

// AmountFromDigit places word into the 64-bit slot at pos, leaving all other
// slots zero.
func AmountFromDigit(word uint64, pos DigitPos) Amount {
	var a Amount
	a.raw[pos] = word
	return a
}

// AmountFromDigitUint128 splits a 128-bit value, given as a pair of 64-bit
// words, across the slots at pos and pos+1. It returns false when the high
// word is non-zero and pos+1 would fall outside the four slots.
func AmountFromDigitUint128(lo, hi uint64, pos DigitPos) (Amount, bool) {
	var a Amount
	a.raw[pos] = lo
	if hi != 0 {
		if pos+1 >= numDigitPos {
			return Amount{}, false
		}
		a.raw[pos+1] = hi
	}
	return a, true
}
