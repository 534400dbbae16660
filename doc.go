/*
Package bignum implements immutable numbers in normalized decimal
scientific notation.
It is specifically designed for incremental simulations and idle games,
where counters routinely outgrow the range of float64.

# Representation

[Number] is a struct with two fields:

  - Mantissa: a float64 coefficient.
    After normalization it is either exactly 0 or within [1, 10)
    in magnitude.
  - Exponent: an int32 indicating the power of ten that scales the
    mantissa.

The numerical value of a number is calculated as:

	mantissa * 10^exponent

Normalization makes representations unique.
Every value has exactly one (mantissa, exponent) pair, zero is always
(0, 0), and therefore == on [Number] is exact value equality.
The zero value of the type is the numeric value of 0.

Special values such as [NaN], [Infinity], or [negative zeros] are not
supported.
This ensures that arithmetic operations always produce either valid
numbers or errors.

# Precision

The mantissa is a native float64 and carries its native precision of
roughly 15 reliable decimal digits.
When the exponents of two operands of [Number.Add] or [Number.Sub]
differ by more than 15, the smaller operand cannot change even the
last reliable digit of the larger one, so the larger operand is
returned unchanged.

# Operations

The package provides the four basic arithmetic operations:
[Number.Add], [Number.Sub], [Number.Mul], [Number.Quo].
Every operation returns a newly normalized number and never mutates
its operands, so values are safe for concurrent use by multiple
goroutines without synchronization.

[Number.Cmp] defines a total ordering consistent with the represented
real values: it compares sign first, then exponent, then mantissa,
which is only valid because every value is normalized.
[Number.Min] and [Number.Max] are built on top of it.

# Conversions

The package provides methods for converting numbers:

  - from/to string:
    [Parse], [Number.String], [Number.Text], [Number.Format].
  - from/to float64:
    [NewFromFloat64], [Number.Float64].

The display format is a fixed contract: the mantissa with a fixed
number of digits after the decimal point, the letter 'e', and the
exponent in plain decimal with a '-' for negative exponents and no
'+' or zero padding.
For example, "2.500e10", "-1.000e-3", and "0.000e0" for zero.

# Errors

All methods are panic-free and pure.
Errors are returned in the following cases:

  - Division by Zero.
    Unlike the standard library, [Number.Quo] does not return an
    infinity when dividing by 0.
    Instead, it returns an error.

  - Exponent Overflow.
    Exponents live in int32.
    There is no "wrap around" or saturation at the ends of the range.
    For out-of-range exponents, operations return an error.

  - Special Values.
    [New] and [NewFromFloat64] return an error when given a NaN or
    infinite mantissa, so every stored mantissa is finite.

[Infinity]: https://en.wikipedia.org/wiki/Infinity#Computing
[NaN]: https://en.wikipedia.org/wiki/NaN
[negative zeros]: https://en.wikipedia.org/wiki/Signed_zero
*/
package bignum
