package token

import (
	"errors"
	"fmt"
	"strconv"
)

// Denomination is the decimal-place count at which a magnitude is read: an
// amount tagged with denomination d counts units of 10^-d whole tokens.
// Denominations are totally ordered bytes; the zero value reads a magnitude
// as whole units.
type Denomination uint8

// ParseDenomination converts a base-10 string to a denomination.
//
// ParseDenomination returns [ErrNotNumeric] if the string is not an unsigned
// integer, or [ErrInvalidRange] if the value does not fit into a byte.
func ParseDenomination(s string) (Denomination, error) {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("parsing denomination %q: %w", s, ErrInvalidRange)
		}
		return 0, fmt.Errorf("parsing denomination %q: %w", s, ErrNotNumeric)
	}
	return Denomination(n), nil
}

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Denomination) String() string {
	return strconv.Itoa(int(d))
}
