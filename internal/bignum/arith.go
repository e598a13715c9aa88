package bignum

import (
	"fmt"
	"strings"
)

// Add returns a + b.
//
// Operands of the same sign have their magnitudes summed; otherwise the
// smaller magnitude is subtracted from the larger one and the result takes
// the sign of the operand with the larger magnitude.
func (b BigNumber) Add(o BigNumber) BigNumber {
	if b.neg == o.neg {
		return newNumber(b.neg, addMagnitudes(b.mag(), o.mag()))
	}
	switch cmpMagnitudes(b.mag(), o.mag()) {
	case 0:
		return Zero
	case 1:
		return newNumber(b.neg, subMagnitudes(b.mag(), o.mag()))
	default:
		return newNumber(o.neg, subMagnitudes(o.mag(), b.mag()))
	}
}

// Sub returns a - b.
//
// Operands of different signs have their magnitudes summed under the sign of
// the minuend; otherwise the smaller magnitude is subtracted from the larger
// one and the sign flips when the subtrahend was larger.
func (b BigNumber) Sub(o BigNumber) BigNumber {
	if b.neg != o.neg {
		return newNumber(b.neg, addMagnitudes(b.mag(), o.mag()))
	}
	switch cmpMagnitudes(b.mag(), o.mag()) {
	case 0:
		return Zero
	case 1:
		return newNumber(b.neg, subMagnitudes(b.mag(), o.mag()))
	default:
		return newNumber(!b.neg, subMagnitudes(o.mag(), b.mag()))
	}
}

// addMagnitudes sums two digit strings. The result may carry a leading zero.
func addMagnitudes(x, y string) string {
	if len(x) < len(y) {
		x, y = y, x
	}
	out := make([]byte, len(x)+1)
	var carry byte
	j := len(y) - 1
	for i := len(x) - 1; i >= 0; i-- {
		s := x[i] - '0' + carry
		if j >= 0 {
			s += y[j] - '0'
			j--
		}
		carry = s / 10
		out[i+1] = s%10 + '0'
	}
	out[0] = carry + '0'
	return string(out)
}

// subMagnitudes computes x - y for digit strings with x >= y. The result may
// carry leading zeros.
func subMagnitudes(x, y string) string {
	out := make([]byte, len(x))
	borrow := 0
	j := len(y) - 1
	for i := len(x) - 1; i >= 0; i-- {
		d := int(x[i]-'0') - borrow
		if j >= 0 {
			d -= int(y[j] - '0')
			j--
		}
		if d < 0 {
			d += 10
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = byte(d) + '0'
	}
	return string(out)
}

// ScaleByPowerOfTen returns b * 10^k. It panics if k is negative.
func (b BigNumber) ScaleByPowerOfTen(k int) BigNumber {
	if k < 0 {
		panic(fmt.Sprintf("bignum: negative scale %d", k))
	}
	if k == 0 || b.IsZero() {
		return b
	}
	return BigNumber{neg: b.neg, digits: b.digits + strings.Repeat("0", k)}
}

// SplitIntoLimbs decomposes |b| into r limbs of m digits each, ordered from
// the least significant limb (index 0) to the most significant one. The last
// limb absorbs every remaining leading digit and limbs past the end of the
// number are zero. It panics if r or m is not positive.
func (b BigNumber) SplitIntoLimbs(r, m int) []BigNumber {
	if r < 1 || m < 1 {
		panic(fmt.Sprintf("bignum: invalid limb layout r=%d m=%d", r, m))
	}
	mag := b.mag()
	limbs := make([]BigNumber, r)
	end := len(mag)
	for i := 0; i < r && end > 0; i++ {
		start := end - m
		if i == r-1 || start < 0 {
			start = 0
		}
		limbs[i] = newNumber(false, mag[start:end])
		end = start
	}
	return limbs
}

// MulDigit multiplies b by a single decimal digit. It panics if d > 9.
func (b BigNumber) MulDigit(d uint8) BigNumber {
	if d > 9 {
		panic(fmt.Sprintf("bignum: %d is not a decimal digit", d))
	}
	if d == 0 || b.IsZero() {
		return Zero
	}
	mag := b.mag()
	out := make([]byte, len(mag)+1)
	carry := 0
	for i := len(mag) - 1; i >= 0; i-- {
		p := int(mag[i]-'0')*int(d) + carry
		out[i+1] = byte(p%10) + '0'
		carry = p / 10
	}
	out[0] = byte(carry) + '0'
	return newNumber(b.neg, string(out))
}

// Mul is the base-case product. When either magnitude is a single digit the
// other operand is multiplied digit by digit with carry; otherwise the
// product falls back to schoolbook long multiplication.
func (b BigNumber) Mul(o BigNumber) BigNumber {
	neg := b.neg != o.neg
	var p BigNumber
	switch {
	case o.Len() == 1:
		p = b.MulDigit(o.Digit(0))
	case b.Len() == 1:
		p = o.MulDigit(b.Digit(0))
	default:
		p = newNumber(false, longMultiply(b.mag(), o.mag()))
	}
	return p.withSign(neg)
}

// longMultiply is the O(n*m) product of two digit strings.
func longMultiply(x, y string) string {
	acc := make([]int, len(x)+len(y))
	for i := len(x) - 1; i >= 0; i-- {
		dx := int(x[i] - '0')
		if dx == 0 {
			continue
		}
		for j := len(y) - 1; j >= 0; j-- {
			acc[i+j+1] += dx * int(y[j]-'0')
		}
	}
	out := make([]byte, len(acc))
	carry := 0
	for k := len(acc) - 1; k >= 0; k-- {
		v := acc[k] + carry
		out[k] = byte(v%10) + '0'
		carry = v / 10
	}
	return string(out)
}
