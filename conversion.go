package token

import "github.com/govalues/decimal"

// Epoch counts ledger epochs.
type Epoch uint64

// AssetType identifies a shielded-pool asset: one token at one denomination
// digit in one epoch. The derivation of the identifier belongs to the
// shielded-pool machinery.
type AssetType [32]byte

// AssetEntry locates one asset inside the conversion state.
type AssetEntry struct {
	// Token is the address of the underlying token.
	Token Address `json:"token"`
	// Denom is the denomination the asset's notes are expressed at.
	Denom Denomination `json:"denom"`
	// Pos is the 64-bit digit slot the asset occupies in the note scheme.
	Pos DigitPos `json:"position"`
	// Epoch the asset was created in.
	Epoch Epoch `json:"epoch"`
	// Conversion is the factor applied when converting notes of this
	// asset forward to the current epoch.
	Conversion decimal.Decimal `json:"conversion"`
	// TreePos is the asset's leaf position in the conversion commitment
	// tree maintained by the shielded-pool collaborator.
	TreePos int `json:"tree_position"`
}

// ConversionState is the ledger's view of shielded-pool asset conversions.
// The commitment tree itself lives with the shielded-pool machinery; this
// state only keys it by asset.
type ConversionState struct {
	// NormedInflation is the last normed inflation of the native token,
	// unset until the first conversion epoch.
	NormedInflation *Amount `json:"normed_inflation,omitempty"`
	// Tokens maps token aliases to their addresses.
	Tokens map[string]Address `json:"tokens"`
	// Assets maps each asset to its conversion entry.
	Assets map[AssetType]AssetEntry `json:"assets"`
}

// NewConversionState returns an empty conversion state with initialized
// maps.
func NewConversionState() *ConversionState {
	return &ConversionState{
		Tokens: make(map[string]Address),
		Assets: make(map[AssetType]AssetEntry),
	}
}

// ShieldedParams are the shielded-pool controller parameters for one token.
type ShieldedParams struct {
	// MaxRewardRate caps the token's reward rate.
	MaxRewardRate decimal.Decimal `json:"max_reward_rate"`
	// KDGainNom is the controller's nominal derivative gain.
	KDGainNom decimal.Decimal `json:"kd_gain_nom"`
	// KPGainNom is the controller's nominal proportional gain.
	KPGainNom decimal.Decimal `json:"kp_gain_nom"`
	// LockedAmountTarget is the target amount of the token locked in the
	// pool, in whole tokens.
	LockedAmountTarget uint64 `json:"locked_amount_target"`
}

// DefaultShieldedParams returns the default controller parameters.
func DefaultShieldedParams() ShieldedParams {
	return ShieldedParams{
		MaxRewardRate:      decimal.MustParse("0.1"),
		KPGainNom:          decimal.MustParse("0.25"),
		KDGainNom:          decimal.MustParse("0.25"),
		LockedAmountTarget: 10_000,
	}
}
