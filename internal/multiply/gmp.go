//go:build gmp

// The GMP strategy is compiled only with the "gmp" build tag:
//
//	go build -tags=gmp ./...
//
// It requires libgmp (libgmp-dev on Debian/Ubuntu, `brew install gmp` on
// macOS) and serves as a fast exact reference next to the decimal
// strategies.

package multiply

import (
	"fmt"

	"github.com/agbru/decmul/internal/bignum"
	"github.com/ncw/gmp"
)

// KeyGMP is the registry key of the GMP strategy.
const KeyGMP = "gmp"

func init() {
	RegisterMultiplier(KeyGMP, func(Options) coreMultiplier { return gmpCore{} })
}

// gmpCore multiplies through the GMP library.
type gmpCore struct{}

func (gmpCore) Name() string { return "GMP" }

func (gmpCore) MultiplyCore(a, b bignum.BigNumber) (bignum.BigNumber, error) {
	x, ok := gmp.NewInt(0).SetString(a.String(), 10)
	if !ok {
		return bignum.Zero, fmt.Errorf("gmp: cannot load %q", a)
	}
	y, ok := gmp.NewInt(0).SetString(b.String(), 10)
	if !ok {
		return bignum.Zero, fmt.Errorf("gmp: cannot load %q", b)
	}
	return bignum.Parse(gmp.NewInt(0).Mul(x, y).String())
}
