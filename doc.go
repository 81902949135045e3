/*
Package token implements the fixed-point monetary amounts a ledger uses to
account for fungible token balances, transfers, and shielded-pool note values.

# Representation

The package is built around three value types. An [Amount] is an unsigned
256-bit magnitude counting micro-units, the smallest indivisible unit of a
token; it carries no scale of its own. A [Denomination] is a decimal-place
count that says how a magnitude maps to a human-scale value. A
[DenominatedAmount] pairs the two and represents the rational value
amount * 10^-denom.

All three are immutable value types and safe for concurrent reads. The only
mutating operations, [Amount.Spend] and [Amount.Receive], require exclusive
access to their receiver.

# Arithmetic

Every arithmetic operation is checked: the CheckedAdd, CheckedSub, CheckedMul,
and CheckedDiv families report failure instead of silently wrapping, and
[Amount.CheckedSignedAdd] additionally enforces the 2^255 - 1 ceiling that
keeps a result convertible to a signed [Change]. Operations whose failure can
only be a bug in the caller, such as spending more than a balance holds or
multiplying by a negative rate, panic instead of returning an error.

# Parsing and formatting

[ParseDenominatedAmount] accepts decimal strings of up to 77 digits, deriving
the denomination from the digit count after the decimal point.
[DenominatedAmount.StringPrecise] is the exact inverse, while the String
method produces a lossy human display form with trailing fractional zeros
stripped. [DenominatedAmount.Canonical] reduces a value to the minimal
denomination that represents it exactly.

# Ordering

Denominated amounts at different denominations compare numerically via
[DenominatedAmount.Cmp] without ever scaling a magnitude beyond 256 bits,
using ceiling division to align the lower-precision side. Equality via == is
deliberately stricter: it also requires the denominations to match, so two
numerically equal values at different precisions remain distinguishable.

# Errors

Parse and range failures are returned as errors wrapping the package's
exported sentinel errors, so callers can discriminate malformed input from
out-of-range input with errors.Is. Contract violations panic.
*/
package token
