package token

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// Address is an opaque account or token identifier. The package never
// inspects it beyond checking that it is present; encoding and validation
// belong to the address layer.
type Address string

// Hash is an opaque 32-byte reference to a shielded transaction section.
type Hash [32]byte

// String returns the hexadecimal form of the hash.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// MarshalText implements the [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (h *Hash) UnmarshalText(text []byte) error {
	b, err := hex.DecodeString(string(text))
	if err != nil {
		return fmt.Errorf("decoding hash %q: %w", text, err)
	}
	if len(b) != len(h) {
		return fmt.Errorf("decoding hash %q: got %d bytes, want %d", text, len(b), len(h))
	}
	copy(h[:], b)
	return nil
}

// Transfer is a simple bilateral token transfer. It is pure data: the amount
// is unsigned, so a transfer can never move a negative quantity.
type Transfer struct {
	// Source spends the tokens.
	Source Address `json:"source" cbor:"source"`
	// Target receives the tokens.
	Target Address `json:"target" cbor:"target"`
	// Token identifies the transferred token.
	Token Address `json:"token" cbor:"token"`
	// Amount of tokens with its denomination.
	Amount DenominatedAmount `json:"amount" cbor:"amount"`
	// Key optionally names the storage location at which to place the
	// transaction id.
	Key string `json:"key,omitempty" cbor:"key,omitempty"`
	// Shielded optionally references the shielded transaction section.
	Shielded *Hash `json:"shielded,omitempty" cbor:"shielded,omitempty"`
}

// Transfer validation errors.
var (
	// ErrNoToken reports a transfer without a token.
	ErrNoToken = errors.New("no token is specified")

	// ErrInvalidAddress reports a missing or malformed transfer address.
	ErrInvalidAddress = errors.New("invalid address is specified")
)

// Validate reports the first structural problem with the transfer.
func (t Transfer) Validate() error {
	if t.Source == "" {
		return fmt.Errorf("transfer source: %w", ErrInvalidAddress)
	}
	if t.Target == "" {
		return fmt.Errorf("transfer target: %w", ErrInvalidAddress)
	}
	if t.Token == "" {
		return ErrNoToken
	}
	return nil
}
