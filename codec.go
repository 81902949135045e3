package token

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// The wire forms mirror the string forms: an Amount travels as its plain
// decimal magnitude with the denomination out of band, a DenominatedAmount
// as its precise string with the denomination recoverable from the digit
// count after the decimal point. Both the human-readable (text, JSON) and
// the binary (CBOR) tiers decode through [ParseDenominatedAmount], so they
// reject exactly the same malformed input.

// MarshalText implements the [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface. The
// input must satisfy the [ParseDenominatedAmount] format rules; the parsed
// mantissa becomes the magnitude.
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (a *Amount) UnmarshalText(text []byte) error {
	d, err := ParseDenominatedAmount(string(text))
	if err != nil {
		return err
	}
	*a = d.Amount()
	return nil
}

// MarshalCBOR implements the [cbor.Marshaler] interface using the same
// decimal string as the text form.
//
// [cbor.Marshaler]: https://pkg.go.dev/github.com/fxamacker/cbor/v2#Marshaler
func (a Amount) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(a.String())
}

// UnmarshalCBOR implements the [cbor.Unmarshaler] interface.
//
// [cbor.Unmarshaler]: https://pkg.go.dev/github.com/fxamacker/cbor/v2#Unmarshaler
func (a *Amount) UnmarshalCBOR(data []byte) error {
	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decoding amount: %w", err)
	}
	return a.UnmarshalText([]byte(s))
}

// MarshalText implements the [encoding.TextMarshaler] interface using the
// precise string form.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d DenominatedAmount) MarshalText() ([]byte, error) {
	return []byte(d.StringPrecise()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *DenominatedAmount) UnmarshalText(text []byte) error {
	parsed, err := ParseDenominatedAmount(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalCBOR implements the [cbor.Marshaler] interface using the same
// precise string as the text form.
//
// [cbor.Marshaler]: https://pkg.go.dev/github.com/fxamacker/cbor/v2#Marshaler
func (d DenominatedAmount) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(d.StringPrecise())
}

// UnmarshalCBOR implements the [cbor.Unmarshaler] interface.
//
// [cbor.Unmarshaler]: https://pkg.go.dev/github.com/fxamacker/cbor/v2#Unmarshaler
func (d *DenominatedAmount) UnmarshalCBOR(data []byte) error {
	var s string
	if err := cbor.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decoding denominated amount: %w", err)
	}
	return d.UnmarshalText([]byte(s))
}
