package multiply

import (
	"fmt"
	"math"

	"github.com/agbru/decmul/internal/bignum"
	"github.com/agbru/decmul/internal/fft"
)

// MaxSafeFFTDigits is the largest combined operand length, in digits, for
// which FFT is exact with float64 samples. Convolution sums stay below
// 81 * MaxSafeFFTDigits/2 and the accumulated transform error stays well
// under 1/2 at this size.
const MaxSafeFFTDigits = 1 << 22

// FFT returns a * b computed as the convolution of the operands' digit
// sequences through a complex Fourier transform.
//
// Digit i, counted from the least significant end, becomes sample i of a
// vector whose length is the smallest power of two able to hold the
// len(a)+len(b)-1 digits of the product. The convolution samples are rounded
// to the nearest integer and carried into base 10.
func FFT(a, b bignum.BigNumber) bignum.BigNumber {
	x, y := a.Abs(), b.Abs()
	if x.IsZero() || y.IsZero() {
		return bignum.Zero
	}
	la, lb := x.Len(), y.Len()
	size := 1
	for size < la+lb-1 {
		size <<= 1
	}

	xs := make([]complex128, size)
	ys := make([]complex128, size)
	for i := 0; i < la; i++ {
		xs[i] = complex(float64(x.Digit(i)), 0)
	}
	for i := 0; i < lb; i++ {
		ys[i] = complex(float64(y.Digit(i)), 0)
	}
	conv, err := fft.Convolve(xs, ys)
	if err != nil {
		// size is always a power of two.
		panic(fmt.Sprintf("multiply: %v", err))
	}

	p := bignum.MustParse(carryDigits(conv))
	if a.IsNegative() != b.IsNegative() {
		return p.Neg()
	}
	return p
}

// carryDigits rounds every sample to an integer, propagates carries from the
// least significant sample upwards and renders the digits most significant
// first. The result may have leading zeros.
func carryDigits(samples []complex128) string {
	digits := make([]byte, 0, len(samples)+8)
	var carry int64
	for _, s := range samples {
		v := int64(math.Round(real(s))) + carry
		carry = v / 10
		digits = append(digits, byte(v%10))
	}
	for carry > 0 {
		digits = append(digits, byte(carry%10))
		carry /= 10
	}

	out := make([]byte, len(digits))
	for i, d := range digits {
		out[len(digits)-1-i] = d + '0'
	}
	return string(out)
}
