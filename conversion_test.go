package token

import (
	"testing"

	"github.com/govalues/decimal"
)

func TestNewConversionState(t *testing.T) {
	s := NewConversionState()
	if s.NormedInflation != nil {
		t.Errorf("NormedInflation = %v, want nil before the first conversion epoch", s.NormedInflation)
	}
	if s.Tokens == nil || s.Assets == nil {
		t.Errorf("NewConversionState() left maps nil")
	}

	// The maps must be usable directly.
	s.Tokens["nam"] = Address("tnam1native")
	s.Assets[AssetType{1}] = AssetEntry{
		Token: "tnam1native",
		Denom: NativeMaxDecimalPlaces,
		Pos:   DigitPos0,
		Epoch: 7,
	}
	if len(s.Tokens) != 1 || len(s.Assets) != 1 {
		t.Errorf("state holds %d tokens and %d assets, want 1 and 1", len(s.Tokens), len(s.Assets))
	}
}

func TestDefaultShieldedParams(t *testing.T) {
	p := DefaultShieldedParams()
	tests := []struct {
		name string
		got  decimal.Decimal
		want string
	}{
		{"MaxRewardRate", p.MaxRewardRate, "0.1"},
		{"KPGainNom", p.KPGainNom, "0.25"},
		{"KDGainNom", p.KDGainNom, "0.25"},
	}
	for _, tt := range tests {
		if got := tt.got.String(); got != tt.want {
			t.Errorf("%s = %s, want %s", tt.name, got, tt.want)
		}
	}
	if p.LockedAmountTarget != 10_000 {
		t.Errorf("LockedAmountTarget = %d, want 10000", p.LockedAmountTarget)
	}
}
