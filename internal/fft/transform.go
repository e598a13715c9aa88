// Package fft implements an iterative radix-2 Cooley-Tukey discrete Fourier
// transform over complex128 samples.
//
// The forward transform uses the roots of unity e^(2*pi*i*k/n). The inverse
// is obtained from a second forward transform: the samples are divided by n,
// their order is reversed and then rotated right by one position.
package fft

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"sync"
)

// ErrLength is returned for inputs whose length is not a positive power of two.
var ErrLength = errors.New("fft: length must be a positive power of two")

// rootsCache memoizes the roots of unity per transform size.
var rootsCache sync.Map // map[int][]complex128

// Roots returns the n roots of unity e^(2*pi*i*k/n) for k = 0..n-1.
// The returned slice is shared and must not be modified.
func Roots(n int) []complex128 {
	if cached, ok := rootsCache.Load(n); ok {
		return cached.([]complex128)
	}
	roots := make([]complex128, n)
	for k := range roots {
		angle := 2 * math.Pi * float64(k) / float64(n)
		roots[k] = complex(math.Cos(angle), math.Sin(angle))
	}
	actual, _ := rootsCache.LoadOrStore(n, roots)
	return actual.([]complex128)
}

// BitReversal returns the permutation that maps each index of 0..n-1 to the
// index with its log2(n) low bits reversed. n must be a power of two.
func BitReversal(n int) []int {
	rev := make([]int, n)
	if n <= 1 {
		return rev
	}
	shift := bits.UintSize - bits.Len(uint(n-1))
	for i := range rev {
		rev[i] = int(bits.Reverse(uint(i)) >> shift)
	}
	return rev
}

func checkLength(n int) error {
	if n <= 0 || n&(n-1) != 0 {
		return fmt.Errorf("%w: got %d", ErrLength, n)
	}
	return nil
}

// Forward returns the discrete Fourier transform of x. The input is left
// untouched.
func Forward(x []complex128) ([]complex128, error) {
	if err := checkLength(len(x)); err != nil {
		return nil, err
	}
	out := make([]complex128, len(x))
	transform(out, x)
	return out, nil
}

// Inverse returns the inverse discrete Fourier transform of x, so that
// Inverse(Forward(x)) == x up to rounding. The input is left untouched.
func Inverse(x []complex128) ([]complex128, error) {
	if err := checkLength(len(x)); err != nil {
		return nil, err
	}
	n := len(x)
	buf := acquireBuffer(n)
	defer releaseBuffer(buf)
	transform(buf, x)

	scale := complex(1/float64(n), 0)
	out := make([]complex128, n)
	out[0] = buf[0] * scale
	for j := 1; j < n; j++ {
		out[j] = buf[n-j] * scale
	}
	return out, nil
}

// transform writes the forward transform of src into dst. Both slices have
// the same power-of-two length.
func transform(dst, src []complex128) {
	n := len(src)
	for i, r := range BitReversal(n) {
		dst[i] = src[r]
	}
	roots := Roots(n)
	for length := 1; length < n; length <<= 1 {
		step := n / (2 * length)
		for i := 0; i < n; i += 2 * length {
			for j := 0; j < length; j++ {
				u := dst[i+j]
				v := dst[i+j+length] * roots[j*step]
				dst[i+j] = u + v
				dst[i+j+length] = u - v
			}
		}
	}
}
