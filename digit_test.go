package token

import "testing"

func TestDigitDecomposition(t *testing.T) {
	// Build an amount with a distinct word in every slot, pull each word
	// back out, and reconstruct the magnitude from the words alone.
	words := [4]uint64{15, 16, 17, 18}
	original := Amount{}
	for i, pos := range DigitPositions() {
		original.Receive(AmountFromDigit(words[i], pos))
	}
	if got := original.Words(); got != words {
		t.Fatalf("Words() = %v, want %v", got, words)
	}

	recomposed := Amount{}
	for _, pos := range DigitPositions() {
		word := pos.Denominate(original)
		if want := words[pos]; word != want {
			t.Errorf("Denominate(%v) = %v, want %v", pos, word, want)
		}
		recomposed.Receive(AmountFromDigit(word, pos))
	}
	if recomposed != original {
		t.Errorf("recomposed amount = %q, want %q", recomposed, original)
	}
}

func TestAmountFromDigit(t *testing.T) {
	got := AmountFromDigit(7, DigitPos2)
	if want := ([4]uint64{0, 0, 7, 0}); got.Words() != want {
		t.Errorf("AmountFromDigit(7, 2).Words() = %v, want %v", got.Words(), want)
	}
}

func TestAmountFromDigitUint128(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			lo, hi uint64
			pos    DigitPos
			want   [4]uint64
		}{
			{1, 2, DigitPos0, [4]uint64{1, 2, 0, 0}},
			{1, 2, DigitPos2, [4]uint64{0, 0, 1, 2}},
			{5, 0, DigitPos3, [4]uint64{0, 0, 0, 5}},
		}
		for _, tt := range tests {
			got, ok := AmountFromDigitUint128(tt.lo, tt.hi, tt.pos)
			if !ok || got.Words() != tt.want {
				t.Errorf("AmountFromDigitUint128(%v, %v, %v) = (%v, %v), want (%v, true)",
					tt.lo, tt.hi, tt.pos, got.Words(), ok, tt.want)
			}
		}
	})

	t.Run("high word past the last slot", func(t *testing.T) {
		if got, ok := AmountFromDigitUint128(1, 2, DigitPos3); ok {
			t.Errorf("AmountFromDigitUint128(1, 2, 3) = (%v, %v), want failure", got, ok)
		}
	})
}

func TestDigitPosOf(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		for i := uint8(0); i < 4; i++ {
			if got := DigitPosOf(i); got != DigitPos(i) {
				t.Errorf("DigitPosOf(%v) = %v, want %v", i, got, DigitPos(i))
			}
		}
	})

	t.Run("out of range panics", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("DigitPosOf(4) did not panic")
			}
		}()
		DigitPosOf(4)
	})
}

func TestDigitPosDenominateSigned(t *testing.T) {
	a, ok := AmountFromDigitUint128(5, 1, DigitPos0)
	if !ok {
		t.Fatalf("AmountFromDigitUint128(5, 1, 0) failed")
	}
	c := a.Change().Neg()

	word, negative := DigitPos0.DenominateSigned(c)
	if word != 5 || !negative {
		t.Errorf("DenominateSigned(pos 0) = (%v, %v), want (5, true)", word, negative)
	}
	word, negative = DigitPos1.DenominateSigned(c)
	if word != 1 || !negative {
		t.Errorf("DenominateSigned(pos 1) = (%v, %v), want (1, true)", word, negative)
	}
	word, negative = DigitPos0.DenominateSigned(c.Neg())
	if word != 5 || negative {
		t.Errorf("DenominateSigned of the negation = (%v, %v), want (5, false)", word, negative)
	}
}
