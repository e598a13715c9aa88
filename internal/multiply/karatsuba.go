// Package multiply provides exact multiplication strategies for decimal
// BigNumbers: schoolbook, Karatsuba, Toom-Cook-3 and an FFT convolution.
//
// Karatsuba is the exactness baseline. Toom-Cook-3 and the FFT multiplier
// pass through float64 and are exact only up to a documented operand size,
// exposed through the Bounded interface.
package multiply

import "github.com/agbru/decmul/internal/bignum"

// Karatsuba returns a * b using Karatsuba's divide-and-conquer scheme.
//
// Both magnitudes are split at m = ceil(n/2) digits, where n is the longer
// operand's length, and the product is rebuilt from three recursive products:
//
//	a*b = z2*10^(2m) + (z1 - z2 - z0)*10^m + z0
//
// The recursion bottoms out at the single-digit base case of bignum. All
// combination steps use exact decimal addition and subtraction.
func Karatsuba(a, b bignum.BigNumber) bignum.BigNumber {
	p := karatsuba(a.Abs(), b.Abs())
	if a.IsNegative() != b.IsNegative() {
		return p.Neg()
	}
	return p
}

// karatsuba multiplies two non-negative numbers.
func karatsuba(x, y bignum.BigNumber) bignum.BigNumber {
	if x.Len() <= 1 || y.Len() <= 1 {
		return x.Mul(y)
	}
	m := (max(x.Len(), y.Len()) + 1) / 2
	xs := x.SplitIntoLimbs(2, m)
	ys := y.SplitIntoLimbs(2, m)
	x0, x1 := xs[0], xs[1]
	y0, y1 := ys[0], ys[1]

	z2 := karatsuba(x1, y1)
	z0 := karatsuba(x0, y0)
	z1 := karatsuba(x1.Add(x0), y1.Add(y0))

	middle := z1.Sub(z2).Sub(z0)
	return z2.ScaleByPowerOfTen(2 * m).
		Add(middle.ScaleByPowerOfTen(m)).
		Add(z0)
}
