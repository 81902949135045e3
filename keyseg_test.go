package token

import (
	"errors"
	"math"
	"testing"
)

func TestAmountKeySegment_RoundTrip(t *testing.T) {
	samples := []Amount{
		{},
		AmountFromUint64(1),
		AmountFromUint64(1234560000),
		AmountFromUint64(math.MaxUint64),
		AmountFromDigit(1, DigitPos3),
		MaxSignedAmount(),
		MaxAmount(),
	}
	for _, want := range samples {
		seg := want.KeySegment()
		got, err := ParseKeySegment(seg)
		if err != nil {
			t.Errorf("ParseKeySegment(%q) failed: %v", seg, err)
			continue
		}
		if got != want {
			t.Errorf("ParseKeySegment(%q) = %q, want %q", seg, got, want)
		}
	}
}

func TestAmountKeySegment_OrderPreserving(t *testing.T) {
	// The encoded fragments must sort exactly like the magnitudes, so an
	// ordered-key store iterates amounts numerically.
	sorted := []Amount{
		{},
		AmountFromUint64(1),
		AmountFromUint64(9),
		AmountFromUint64(10),
		AmountFromUint64(255),
		AmountFromUint64(256),
		AmountFromUint64(math.MaxUint64),
		AmountFromDigit(1, DigitPos1),
		AmountFromDigit(1, DigitPos3),
		MaxAmount(),
	}
	for i, a := range sorted {
		if got := len(a.KeySegment()); got != 52 {
			t.Errorf("len(KeySegment(%q)) = %v, want 52", a, got)
		}
		for _, b := range sorted[i+1:] {
			if a.Cmp(b) >= 0 {
				t.Fatalf("test fixture out of order: %q >= %q", a, b)
			}
			if a.KeySegment() >= b.KeySegment() {
				t.Errorf("KeySegment(%q) = %q not below KeySegment(%q) = %q",
					a, a.KeySegment(), b, b.KeySegment())
			}
		}
	}
}

func TestParseKeySegment_Malformed(t *testing.T) {
	tests := map[string]string{
		"invalid alphabet": "!!!!",
		"truncated":        AmountFromUint64(1).KeySegment()[:10],
		"empty":            "",
	}
	for name, seg := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseKeySegment(seg)
			if err == nil {
				t.Fatalf("ParseKeySegment(%q) did not fail", seg)
			}
			var segErr *KeySegmentError
			if !errors.As(err, &segErr) {
				t.Fatalf("ParseKeySegment(%q) = %T, want *KeySegmentError", seg, err)
			}
			if segErr.Segment != seg {
				t.Errorf("KeySegmentError.Segment = %q, want %q", segErr.Segment, seg)
			}
			if segErr.Err == nil {
				t.Errorf("KeySegmentError.Err is nil, want the underlying cause")
			}
		})
	}
}
