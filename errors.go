package token

import "errors"

// Recoverable parse and range errors. Contract violations, such as
// overspending a balance or passing a negative rate to [Amount.MulCeil],
// panic instead and are documented on the operations that raise them.
var (
	// ErrNotNumeric reports a string that is not a correctly formatted
	// decimal number.
	ErrNotNumeric = errors.New("not a correctly formatted number")

	// ErrTooManyDigits reports a decimal string with more digits than a
	// 256-bit magnitude can hold.
	ErrTooManyDigits = errors.New("too many decimal digits")

	// ErrInvalidRange reports a value outside the representable range.
	ErrInvalidRange = errors.New("value out of representable range")

	// ErrScaleOverflow reports that scaling a value up to an integer
	// magnitude overflowed 256 bits.
	ErrScaleOverflow = errors.New("scaling to integer overflows 256 bits")

	// ErrPrecisionOverflow reports a magnitude that cannot hold the
	// requested precision in 256 bits.
	ErrPrecisionOverflow = errors.New("precision not representable in 256 bits")

	// ErrPrecisionDecrease reports a rescale request below the current
	// denomination. Precision can only be reduced losslessly, with
	// [DenominatedAmount.Canonical].
	ErrPrecisionDecrease = errors.New("more precision given than requested")
)
