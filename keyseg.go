package token

import (
	"encoding/base32"
	"fmt"
)

// keySegEncoding is unpadded base32 with the extended hex alphabet, the one
// base-32 alphabet whose character order matches byte order. That is what
// keeps encoded segments sorted the same way as the raw magnitudes.
var keySegEncoding = base32.HexEncoding.WithPadding(base32.NoPadding)

// KeySegment encodes the amount as an order-preserving storage key fragment:
// the 32-byte big-endian magnitude in unpadded base32hex. For any two amounts
// a < b, a.KeySegment() < b.KeySegment() under plain string ordering, so
// ordered-key storage layouts iterate amounts numerically.
func (a Amount) KeySegment() string {
	buf := a.raw.Bytes32()
	return keySegEncoding.EncodeToString(buf[:])
}

// ParseKeySegment decodes a storage key fragment produced by
// [Amount.KeySegment]. A malformed fragment yields a *[KeySegmentError].
func ParseKeySegment(s string) (Amount, error) {
	b, err := keySegEncoding.DecodeString(s)
	if err != nil {
		return Amount{}, &KeySegmentError{Segment: s, Err: err}
	}
	if len(b) != 32 {
		return Amount{}, &KeySegmentError{
			Segment: s,
			Err:     fmt.Errorf("decoded to %d bytes, want 32", len(b)),
		}
	}
	var a Amount
	a.raw.SetBytes(b)
	return a, nil
}

// KeySegmentError reports a storage key fragment that could not be decoded
// back into an amount.
type KeySegmentError struct {
	Segment string // the offending fragment
	Err     error  // the underlying decode failure
}

func (e *KeySegmentError) Error() string {
	return fmt.Sprintf("parsing key segment %q: %v", e.Segment, e.Err)
}

func (e *KeySegmentError) Unwrap() error {
	return e.Err
}
