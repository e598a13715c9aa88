// Package testutil provides shared testing utilities used across the project.
package testutil

import (
	"math/rand/v2"
	"regexp"
	"strings"
)

// ansiRegex matches CSI escape sequences (ESC [ ... letter).
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// StripAnsiCodes removes ANSI escape codes from a string so CLI output can be
// asserted without color codes in the way.
func StripAnsiCodes(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// NewRand returns a deterministic generator so failures are reproducible.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomDigits returns a decimal string of exactly n digits without a
// leading zero.
func RandomDigits(r *rand.Rand, n int) string {
	if n <= 0 {
		return "0"
	}
	var b strings.Builder
	b.Grow(n)
	b.WriteByte(byte('1' + r.IntN(9)))
	for i := 1; i < n; i++ {
		b.WriteByte(byte('0' + r.IntN(10)))
	}
	return b.String()
}

// RandomOperand returns an n-digit decimal string that is negative with
// probability one half.
func RandomOperand(r *rand.Rand, n int) string {
	s := RandomDigits(r, n)
	if s != "0" && r.IntN(2) == 0 {
		return "-" + s
	}
	return s
}

// Nines returns the n-digit number made only of nines, the worst case for
// carry propagation and for floating-point interpolation error.
func Nines(n int) string {
	return strings.Repeat("9", n)
}
