package multiply

//go:generate mockgen -source=strategy.go -destination=mocks/mock_strategy.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/agbru/decmul/internal/bignum"
	"github.com/agbru/decmul/internal/linalg"
)

// Multiplier is the public interface of a multiplication strategy. It is the
// abstraction used by the orchestration layer and the HTTP service.
type Multiplier interface {
	// Multiply returns a * b, or ctx.Err() once ctx is done. A running
	// product is never interrupted; the caller just stops waiting for it.
	//
	// Parameters:
	//   - ctx: The context for cancellation and tracing.
	//   - a: The first operand.
	//   - b: The second operand.
	//
	// Returns:
	//   - bignum.BigNumber: The exact product, within the strategy's bound.
	//   - error: An error if the context was done or the strategy failed.
	Multiply(ctx context.Context, a, b bignum.BigNumber) (bignum.BigNumber, error)

	// Name returns the display name of the algorithm (e.g. "Karatsuba").
	Name() string
}

// Bounded is implemented by strategies that are exact only up to a given
// operand length.
type Bounded interface {
	// MaxSafeDigits returns the length of the longest operand for which
	// every product is exact. Zero means unbounded.
	MaxSafeDigits() int
}

// coreMultiplier is a bare algorithm, without instrumentation.
type coreMultiplier interface {
	MultiplyCore(a, b bignum.BigNumber) (bignum.BigNumber, error)
	Name() string
}

// Inverter names accepted by InverterByName.
const (
	InverterExact = "exact"
	InverterLU    = "lu"
)

// Options configures the strategies created by a registry.
type Options struct {
	// Inverter is used by the Toom-Cook-3 strategy. Nil selects
	// linalg.ExactInverter.
	Inverter linalg.Inverter
}

// InverterByName resolves an inverter name. The empty name selects the exact
// inverter.
func InverterByName(name string) (linalg.Inverter, error) {
	switch name {
	case "", InverterExact:
		return linalg.ExactInverter{}, nil
	case InverterLU:
		return linalg.LUInverter{}, nil
	default:
		return nil, fmt.Errorf("unknown inverter %q (want %s or %s)", name, InverterExact, InverterLU)
	}
}

// WithinBound reports whether both operands are inside m's exact range.
// Strategies that do not implement Bounded are always within bound.
func WithinBound(m any, a, b bignum.BigNumber) bool {
	bounded, ok := m.(Bounded)
	if !ok {
		return true
	}
	limit := bounded.MaxSafeDigits()
	return limit == 0 || max(a.Len(), b.Len()) <= limit
}

// schoolbookCore is the O(n*m) base-case product.
type schoolbookCore struct{}

func (schoolbookCore) Name() string { return "Schoolbook" }

func (schoolbookCore) MultiplyCore(a, b bignum.BigNumber) (bignum.BigNumber, error) {
	return a.Mul(b), nil
}

type karatsubaCore struct{}

func (karatsubaCore) Name() string { return "Karatsuba" }

func (karatsubaCore) MultiplyCore(a, b bignum.BigNumber) (bignum.BigNumber, error) {
	return Karatsuba(a, b), nil
}

type toomCookCore struct {
	tc ToomCook
}

func (toomCookCore) Name() string { return "Toom-Cook-3" }

func (c toomCookCore) MultiplyCore(a, b bignum.BigNumber) (bignum.BigNumber, error) {
	return c.tc.Multiply(a, b)
}

func (toomCookCore) MaxSafeDigits() int { return MaxSafeToomCookDigits }

type fftCore struct{}

func (fftCore) Name() string { return "FFT" }

func (fftCore) MultiplyCore(a, b bignum.BigNumber) (bignum.BigNumber, error) {
	return FFT(a, b), nil
}

// MaxSafeDigits returns the per-operand share of MaxSafeFFTDigits.
func (fftCore) MaxSafeDigits() int { return MaxSafeFFTDigits / 2 }
