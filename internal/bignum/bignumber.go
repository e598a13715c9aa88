// Package bignum implements arbitrary-precision signed decimal integers.
//
// A BigNumber is an immutable value. Every operation returns a new number and
// no method mutates its receiver, so values can be shared freely between
// goroutines. The magnitude is stored as a canonical string of ASCII digits,
// most significant first; splitting a number into limbs is therefore a
// substring operation that never copies digits.
package bignum

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// ErrInvalidNumberFormat is returned when a string is not an optionally
// negative sequence of decimal digits.
var ErrInvalidNumberFormat = errors.New("invalid number format")

// BigNumber is an arbitrary-precision signed decimal integer.
// The zero value is the number zero.
type BigNumber struct {
	neg bool
	// digits is empty for zero, otherwise it has no leading zeros.
	digits string
}

var (
	// Zero is the canonical zero.
	Zero = BigNumber{}
	// One is the multiplicative identity.
	One = BigNumber{digits: "1"}
)

// Parse builds a BigNumber from its decimal representation. The accepted
// grammar is an optional leading '-' followed by one or more ASCII digits.
// Leading zeros are stripped and "-0" is the canonical zero.
//
// Parameters:
//   - s: The decimal string to parse.
//
// Returns:
//   - BigNumber: The parsed value.
//   - error: An error wrapping ErrInvalidNumberFormat if s is malformed.
func Parse(s string) (BigNumber, error) {
	digits := s
	neg := false
	if strings.HasPrefix(digits, "-") {
		neg = true
		digits = digits[1:]
	}
	if digits == "" {
		return Zero, fmt.Errorf("%w: %q has no digits", ErrInvalidNumberFormat, s)
	}
	for i := 0; i < len(digits); i++ {
		if c := digits[i]; c < '0' || c > '9' {
			offset := i + len(s) - len(digits)
			return Zero, fmt.Errorf("%w: unexpected %q at offset %d in %q", ErrInvalidNumberFormat, c, offset, s)
		}
	}
	return newNumber(neg, digits), nil
}

// MustParse is like Parse but panics on malformed input. It is intended for
// constants and tests.
func MustParse(s string) BigNumber {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// FromInt64 converts a machine integer.
func FromInt64(v int64) BigNumber {
	return MustParse(strconv.FormatInt(v, 10))
}

// FromBigInt converts a math/big integer. A nil pointer is zero.
func FromBigInt(x *big.Int) BigNumber {
	if x == nil {
		return Zero
	}
	return MustParse(x.String())
}

// BigInt returns the value as a newly allocated math/big integer.
func (b BigNumber) BigInt() *big.Int {
	x, _ := new(big.Int).SetString(b.String(), 10)
	return x
}

// newNumber canonicalises a digit string into a BigNumber.
func newNumber(neg bool, digits string) BigNumber {
	digits = StripLeadingZeros(digits)
	if digits == "0" {
		return Zero
	}
	return BigNumber{neg: neg, digits: digits}
}

// StripLeadingZeros returns the canonical form of a digit string: leading
// zeros are removed and an empty or all-zero string becomes "0".
func StripLeadingZeros(digits string) string {
	i := 0
	for i < len(digits)-1 && digits[i] == '0' {
		i++
	}
	if i == len(digits) {
		return "0"
	}
	return digits[i:]
}

func (b BigNumber) mag() string {
	if b.digits == "" {
		return "0"
	}
	return b.digits
}

// String renders the canonical decimal representation.
func (b BigNumber) String() string {
	if b.neg {
		return "-" + b.digits
	}
	return b.mag()
}

// Magnitude returns the canonical digits of |b|.
func (b BigNumber) Magnitude() string { return b.mag() }

// Len returns the number of digits of the magnitude. Zero has one digit.
func (b BigNumber) Len() int { return len(b.mag()) }

// Digit returns the i-th digit counted from the least significant end.
// Positions past the most significant digit read as zero.
func (b BigNumber) Digit(i int) uint8 {
	mag := b.mag()
	if i < 0 || i >= len(mag) {
		return 0
	}
	return mag[len(mag)-1-i] - '0'
}

// IsZero reports whether b == 0.
func (b BigNumber) IsZero() bool { return b.digits == "" }

// IsNegative reports whether b < 0.
func (b BigNumber) IsNegative() bool { return b.neg }

// Sign returns -1, 0 or +1.
func (b BigNumber) Sign() int {
	switch {
	case b.IsZero():
		return 0
	case b.neg:
		return -1
	}
	return 1
}

// Neg returns -b.
func (b BigNumber) Neg() BigNumber {
	if b.IsZero() {
		return Zero
	}
	return BigNumber{neg: !b.neg, digits: b.digits}
}

// Abs returns |b|.
func (b BigNumber) Abs() BigNumber {
	return BigNumber{digits: b.digits}
}

// withSign returns |b| carrying the requested sign; zero stays unsigned.
func (b BigNumber) withSign(neg bool) BigNumber {
	if b.IsZero() {
		return Zero
	}
	return BigNumber{neg: neg, digits: b.digits}
}

// Equal reports whether a and b denote the same integer.
func (b BigNumber) Equal(o BigNumber) bool { return b == o }

// cmpMagnitudes compares canonical digit strings: length first, then
// lexicographically.
func cmpMagnitudes(x, y string) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	return strings.Compare(x, y)
}

// CmpAbs compares |b| and |o| and returns -1, 0 or +1.
func (b BigNumber) CmpAbs(o BigNumber) int {
	return cmpMagnitudes(b.mag(), o.mag())
}

// MagnitudeGreaterThan reports whether |b| > |o|.
func (b BigNumber) MagnitudeGreaterThan(o BigNumber) bool {
	return b.CmpAbs(o) > 0
}

// Cmp compares b and o and returns -1, 0 or +1.
func (b BigNumber) Cmp(o BigNumber) int {
	bs, os := b.Sign(), o.Sign()
	if bs != os {
		if bs < os {
			return -1
		}
		return 1
	}
	c := b.CmpAbs(o)
	if b.neg {
		return -c
	}
	return c
}

// MarshalText implements encoding.TextMarshaler.
func (b BigNumber) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *BigNumber) UnmarshalText(text []byte) error {
	n, err := Parse(string(text))
	if err != nil {
		return err
	}
	*b = n
	return nil
}
