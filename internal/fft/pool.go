package fft

import (
	"math/bits"
	"sync"
)

// bufferPools holds one sync.Pool of sample buffers per power-of-two size
// class, indexed by log2 of the capacity.
var bufferPools [bits.UintSize]sync.Pool

// acquireBuffer returns a zeroed buffer of exactly n samples. n must be a
// power of two. Release it with releaseBuffer, preferably with defer:
//
//	buf := acquireBuffer(n)
//	defer releaseBuffer(buf)
func acquireBuffer(n int) []complex128 {
	class := bits.TrailingZeros(uint(n))
	if v := bufferPools[class].Get(); v != nil {
		buf := *(v.(*[]complex128))
		clear(buf)
		return buf
	}
	return make([]complex128, n)
}

// releaseBuffer returns a buffer obtained from acquireBuffer to its pool.
func releaseBuffer(buf []complex128) {
	if len(buf) == 0 {
		return
	}
	class := bits.TrailingZeros(uint(len(buf)))
	bufferPools[class].Put(&buf)
}

// Convolve returns the cyclic convolution of x and y computed through the
// transform: Inverse(Forward(x) * Forward(y)). Both inputs must have the same
// power-of-two length; pass zero-padded inputs to obtain the acyclic
// convolution.
func Convolve(x, y []complex128) ([]complex128, error) {
	if err := checkLength(len(x)); err != nil {
		return nil, err
	}
	if len(y) != len(x) {
		return nil, ErrLength
	}
	n := len(x)
	fx := acquireBuffer(n)
	defer releaseBuffer(fx)
	fy := acquireBuffer(n)
	defer releaseBuffer(fy)

	transform(fx, x)
	transform(fy, y)
	for i := range fx {
		fx[i] *= fy[i]
	}
	return Inverse(fx)
}
