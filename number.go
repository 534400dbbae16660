package bignum

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number is a representation of a floating-point number in normalized
// decimal scientific notation.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A number is a struct with two parameters:
//
//   - Mantissa: a float64 coefficient, either exactly 0 or within
//     [1, 10) in magnitude.
//   - Exponent: an int32 power of ten scaling the mantissa.
//
// The represented value is mantissa * 10^exponent.
// Normalization makes representations unique: every value has exactly
// one (mantissa, exponent) pair, zero is always (0, 0), and therefore
// == on Number is exact value equality.
//
// One important aspect of the number is that it does not support
// special values such as NaN, Infinity, or signed zeros.
type Number struct {
	mant float64 // the coefficient, 0 or within [1, 10) in magnitude
	exp  int32   // the power of ten
}

const (
	// maxDigits is the number of decimal digits a float64 mantissa
	// reliably carries.
	// Operands of a sum whose exponents differ by more than maxDigits
	// cannot affect each other.
	maxDigits = 15

	// maxDecimals is the largest number of digits after the decimal
	// point that [Number.Text] renders.
	maxDecimals = 17

	// expSlack is wider than any exponent shift normalization can
	// produce, since |log10| of a finite nonzero float64 is below 325.
	expSlack = 512
)

var (
	errDivisionByZero = errors.New("division by zero")
	errExponentRange  = errors.New("exponent out of range")
	errSpecialValues  = errors.New("special value")
	errInvalidNumber  = errors.New("invalid number")
)

// Zero and One are the canonical numbers 0 and 1.
// The zero value of [Number] is equal to Zero.
var (
	Zero = Number{}
	One  = Number{mant: 1}
)

// pow10 holds the powers of ten used for mantissa alignment,
// up to the precision cutoff.
var pow10 = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7,
	1e8, 1e9, 1e10, 1e11, 1e12, 1e13, 1e14, 1e15,
}

// newFromParts normalizes mantissa * 10^exponent and enforces the
// invariant that a stored mantissa is 0 or within [1, 10) in magnitude.
func newFromParts(mant float64, exp int64) (Number, error) {
	if math.IsNaN(mant) || math.IsInf(mant, 0) {
		return Number{}, errSpecialValues
	}
	if mant == 0 {
		return Number{}, nil
	}
	if exp > math.MaxInt32+expSlack || exp < math.MinInt32-expSlack {
		return Number{}, errExponentRange
	}

	// Scaling by a power of ten is not exact, so the boundaries are
	// checked on every step rather than computed once from log10.
	for abs := math.Abs(mant); abs >= 10 || abs < 1; abs = math.Abs(mant) {
		switch {
		case abs >= 1e16:
			mant /= 1e16
			exp += 16
		case abs >= 10:
			mant /= 10
			exp++
		case abs < 1e-16:
			mant *= 1e16
			exp -= 16
		default:
			mant *= 10
			exp--
		}
	}

	if exp > math.MaxInt32 || exp < math.MinInt32 {
		return Number{}, errExponentRange
	}
	return Number{mant: mant, exp: int32(exp)}, nil
}

// New returns a number equal to mantissa * 10^exponent.
// The mantissa does not need to be normalized:
// New(2.5, 10), New(25, 9), and New(0.25, 11) all return 2.500e10.
// A zero mantissa always returns the canonical zero, regardless of
// the exponent.
//
// New returns an error:
//   - if the mantissa is NaN or an infinity;
//   - if the normalized exponent does not fit into int32.
func New(mantissa float64, exponent int) (Number, error) {
	return newFromParts(mantissa, int64(exponent))
}

// MustNew is like [New] but panics if the number cannot be constructed.
// It simplifies safe initialization of global variables holding numbers.
func MustNew(mantissa float64, exponent int) Number {
	n, err := New(mantissa, exponent)
	if err != nil {
		panic(fmt.Sprintf("New(%v, %v) failed: %v", mantissa, exponent, err))
	}
	return n
}

// NewFromFloat64 converts a float64 to a number.
//
// NewFromFloat64 returns an error if f is NaN or an infinity.
func NewFromFloat64(f float64) (Number, error) {
	return newFromParts(f, 0)
}

// Parse converts a string to a number.
// The input string must be in one of the following formats:
//
//	2.500e10
//	-1.234E-5
//	0.0025
//	42
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
//	exponent       ::= ('e' | 'E') [sign] digits
//	numeric-string ::= [sign] significand [exponent]
//
// Parse returns an error:
//   - if the string does not represent a valid number;
//   - if the significand does not fit into a float64;
//   - if the normalized exponent does not fit into int32.
func Parse(s string) (Number, error) {
	mpart, epart := s, ""
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mpart, epart = s[:i], s[i+1:]
	}
	if !validSignificand(mpart) {
		return Number{}, fmt.Errorf("parsing significand %q: %w", mpart, errInvalidNumber)
	}
	mant, err := strconv.ParseFloat(mpart, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Number{}, fmt.Errorf("parsing significand %q: %w", mpart, errExponentRange)
		}
		return Number{}, fmt.Errorf("parsing significand %q: %w", mpart, errInvalidNumber)
	}
	var exp int64
	if epart != "" || mpart != s {
		exp, err = strconv.ParseInt(epart, 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return Number{}, fmt.Errorf("parsing exponent %q: %w", epart, errExponentRange)
			}
			return Number{}, fmt.Errorf("parsing exponent %q: %w", epart, errInvalidNumber)
		}
	}
	return newFromParts(mant, exp)
}

// validSignificand reports whether s matches the significand grammar
// of [Parse].
// [strconv.ParseFloat] alone is too permissive: it also accepts hex
// floats, "inf", and "NaN".
func validSignificand(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	digits, points := 0, 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			points++
		default:
			return false
		}
	}
	return digits > 0 && points <= 1
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding numbers.
func MustParse(s string) Number {
	n, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return n
}

// Mantissa returns the normalized mantissa of n.
// It is 0 if n is zero, otherwise within [1, 10) in magnitude.
func (n Number) Mantissa() float64 {
	return n.mant
}

// Exponent returns the power of ten of n.
func (n Number) Exponent() int {
	return int(n.exp)
}

// Float64 returns the nearest float64 to n.
// ok is false if n is outside the range of float64.
func (n Number) Float64() (f float64, ok bool) {
	if n.mant == 0 {
		return 0, true
	}
	f = n.mant * math.Pow(10, float64(n.exp))
	if math.IsInf(f, 0) || f == 0 {
		return f, false
	}
	return f, true
}

// Sign returns:
//
//	-1 if n < 0
//	 0 if n == 0
//	+1 if n > 0
func (n Number) Sign() int {
	switch {
	case n.mant < 0:
		return -1
	case n.mant > 0:
		return 1
	}
	return 0
}

// IsPos returns true if n > 0.
func (n Number) IsPos() bool {
	return n.mant > 0
}

// IsNeg returns true if n < 0.
func (n Number) IsNeg() bool {
	return n.mant < 0
}

// IsZero returns true if n == 0.
func (n Number) IsZero() bool {
	return n.mant == 0
}

// Neg returns a number with the opposite sign.
func (n Number) Neg() Number {
	if n.mant == 0 {
		return Number{}
	}
	return Number{mant: -n.mant, exp: n.exp}
}

// Abs returns the absolute value of n.
func (n Number) Abs() Number {
	if n.mant < 0 {
		return Number{mant: -n.mant, exp: n.exp}
	}
	return n
}

// CopySign returns n with the same sign as e.
// If e is zero, the sign of the result remains unchanged.
func (n Number) CopySign(e Number) Number {
	switch {
	case e.IsZero():
		return n
	case n.IsNeg() != e.IsNeg():
		return n.Neg()
	}
	return n
}

// Add returns the sum of n and e.
//
// When the operands' exponents differ by more than 15, the smaller
// operand cannot change even the last reliable digit of the larger
// one's float64 mantissa, so the larger operand is returned unchanged.
//
// Add returns an error if the exponent of the sum does not fit
// into int32.
func (n Number) Add(e Number) (Number, error) {
	// Special case: zero operands
	switch {
	case n.mant == 0:
		return e, nil
	case e.mant == 0:
		return n, nil
	}

	// Alignment at the larger exponent
	d := int64(n.exp) - int64(e.exp)
	switch {
	case d > maxDigits:
		return n, nil
	case d < -maxDigits:
		return e, nil
	case d > 0:
		return newFromParts(n.mant+e.mant/pow10[d], int64(n.exp))
	case d < 0:
		return newFromParts(n.mant/pow10[-d]+e.mant, int64(e.exp))
	}
	return newFromParts(n.mant+e.mant, int64(n.exp))
}

// Sub returns the difference of n and e, computed as n.Add(e.Neg()).
//
// Sub returns an error if the exponent of the difference does not fit
// into int32.
func (n Number) Sub(e Number) (Number, error) {
	return n.Add(e.Neg())
}

// Mul returns the product of n and e.
// If either operand is zero, the result is the canonical zero and no
// exponent arithmetic is performed.
//
// Mul returns an error if the exponent of the product does not fit
// into int32.
func (n Number) Mul(e Number) (Number, error) {
	// Special case: zero operands
	if n.mant == 0 || e.mant == 0 {
		return Number{}, nil
	}
	return newFromParts(n.mant*e.mant, int64(n.exp)+int64(e.exp))
}

// Quo returns the quotient of n and e.
//
// Quo returns an error if:
//   - e is zero;
//   - the exponent of the quotient does not fit into int32.
func (n Number) Quo(e Number) (Number, error) {
	// Special case: zero divisor
	if e.mant == 0 {
		return Number{}, errDivisionByZero
	}

	// Special case: zero dividend
	if n.mant == 0 {
		return Number{}, nil
	}
	return newFromParts(n.mant/e.mant, int64(n.exp)-int64(e.exp))
}

// Cmp compares n and e numerically and returns:
//
//	-1 if n < e
//	 0 if n == e
//	+1 if n > e
//
// The comparison inspects sign, then exponent, then mantissa, which is
// sufficient because both operands are normalized.
func (n Number) Cmp(e Number) int {
	// Special case: different signs
	switch {
	case e.Sign() < n.Sign():
		return 1
	case n.Sign() < e.Sign():
		return -1
	}

	// General case: equal signs, so for negative operands the larger
	// magnitude is the smaller value
	sign := n.Sign()
	switch {
	case n.exp > e.exp:
		return sign
	case n.exp < e.exp:
		return -sign
	case n.mant > e.mant:
		return 1
	case n.mant < e.mant:
		return -1
	}
	return 0
}

// Max returns the larger number.
func (n Number) Max(e Number) Number {
	if n.Cmp(e) >= 0 {
		return n
	}
	return e
}

// Min returns the smaller number.
func (n Number) Min(e Number) Number {
	if n.Cmp(e) <= 0 {
		return n
	}
	return e
}

// String implements the [fmt.Stringer] interface.
// The number is rendered as the mantissa with exactly three digits
// after the decimal point, the letter 'e', and the exponent in plain
// decimal with a '-' for negative exponents and no '+' or zero padding.
// The formal EBNF grammar of the output is as follows:
//
//	sign           ::= '-'
//	digit          ::= '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9'
//	significand    ::= [sign] digit '.' digit digit digit
//	numeric-string ::= significand 'e' [sign] { digit }
//
// Zero is always rendered as "0.000e0".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (n Number) String() string {
	return n.Text(3)
}

// Text is like [Number.String] but renders the given number of digits
// after the decimal point.
// decimals is clamped to [0, 17]; past 17 digits a float64 mantissa
// renders only representation noise.
func (n Number) Text(decimals int) string {
	switch {
	case decimals < 0:
		decimals = 0
	case decimals > maxDecimals:
		decimals = maxDecimals
	}

	buf := make([]byte, 0, 8+maxDecimals)
	buf = strconv.AppendFloat(buf, n.mant, 'f', decimals, 64)

	// Display rounding can carry the mantissa over the upper
	// normalization boundary, e.g. 9.9999 rendering as "10.000".
	// A normalized mantissa has a single digit before the decimal
	// point, so two leading digits always mean a carry happened.
	exp := int64(n.exp)
	i := 0
	if buf[0] == '-' {
		i = 1
	}
	if i+1 < len(buf) && buf[i] == '1' && buf[i+1] == '0' {
		buf = strconv.AppendFloat(buf[:0], n.mant/10, 'f', decimals, 64)
		exp++
	}

	buf = append(buf, 'e')
	buf = strconv.AppendInt(buf, exp, 10)
	return string(buf)
}

// Format implements the [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v: 2.500e10
//	%q:    "2.500e10"
//
// The '-' format flag left-justifies within the given width.
// Precision selects the number of digits after the decimal point of
// the mantissa, the default is 3.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (n Number) Format(state fmt.State, verb rune) {
	switch verb {
	case 's', 'S', 'v', 'V', 'q', 'Q':
		decimals := 3
		if p, ok := state.Precision(); ok {
			decimals = p
		}
		text := n.Text(decimals)
		if verb == 'q' || verb == 'Q' {
			text = strconv.Quote(text)
		}
		if w, ok := state.Width(); ok && w > len(text) {
			pad := strings.Repeat(" ", w-len(text))
			if state.Flag('-') {
				text += pad
			} else {
				text = pad + text
			}
		}
		state.Write([]byte(text))
	default:
		fmt.Fprintf(state, "%%!%c(bignum.Number=%s)", verb, n.String())
	}
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (n *Number) UnmarshalText(text []byte) error {
	var err error
	*n, err = Parse(string(text))
	return err
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [Number.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (n Number) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}
