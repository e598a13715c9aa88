package multiply

import (
	"errors"
	"fmt"

	"github.com/agbru/decmul/internal/bignum"
	"github.com/agbru/decmul/internal/linalg"
	"github.com/cockroachdb/apd/v3"
)

const (
	// MaxSafeToomCookDigits is the longest operand, in digits, for which
	// ToomCook3 is exact for every input. Past it the float64 inverse entries
	// 1/3 and 1/6 are scaled by point values large enough for the rounding
	// error to reach 1/2.
	MaxSafeToomCookDigits = 21

	// interpolationScale is the number of fractional digits kept while
	// accumulating an interpolated coefficient.
	interpolationScale = 4

	// productDegree is the degree of the product of two degree-2 polynomials.
	productDegree = 4
)

// ErrSingularInterpolationMatrix is returned when the interpolation matrix
// cannot be inverted. With the fixed point set this indicates a defect in
// the inverter.
var ErrSingularInterpolationMatrix = errors.New("toom-cook interpolation matrix is singular")

// ToomCook is the Toom-Cook-3 multiplier. The zero value uses
// linalg.ExactInverter.
type ToomCook struct {
	// Inverter inverts the 5x5 interpolation matrix.
	Inverter linalg.Inverter
}

// ToomCook3 returns a * b using ToomCook with the default inverter.
func ToomCook3(a, b bignum.BigNumber) (bignum.BigNumber, error) {
	return ToomCook{}.Multiply(a, b)
}

func (t ToomCook) inverter() linalg.Inverter {
	if t.Inverter == nil {
		return linalg.ExactInverter{}
	}
	return t.Inverter
}

// Multiply returns a * b.
//
// Each magnitude is split into three limbs of m = ceil(n/3) digits, read as
// the coefficients of a degree-2 polynomial evaluated at 10^m. Both
// polynomials are evaluated at ToomCook3Points, multiplied pointwise with
// Karatsuba, interpolated back into the five coefficients of the product
// polynomial and recombined at 10^m.
func (t ToomCook) Multiply(a, b bignum.BigNumber) (bignum.BigNumber, error) {
	u, v := a.Abs(), b.Abs()
	n := max(u.Len(), v.Len())
	m := (n + 2) / 3

	pu := evaluateAll(u.SplitIntoLimbs(3, m))
	pv := evaluateAll(v.SplitIntoLimbs(3, m))
	products := make(PointValues, len(ToomCook3Points))
	for _, p := range ToomCook3Points {
		products[p] = Karatsuba(pu[p], pv[p])
	}

	coeffs, err := t.interpolate(products, m)
	if err != nil {
		return bignum.Zero, err
	}

	acc := bignum.Zero
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = acc.ScaleByPowerOfTen(m).Add(coeffs[i])
	}
	if a.IsNegative() != b.IsNegative() {
		acc = acc.Neg()
	}
	return acc, nil
}

// InterpolationMatrix returns the evaluation matrix of ToomCook3Points for a
// degree-4 polynomial, one row per point.
func InterpolationMatrix() [][]float64 {
	matrix := make([][]float64, len(ToomCook3Points))
	for i, p := range ToomCook3Points {
		matrix[i] = p.Row(productDegree)
	}
	return matrix
}

// interpolate recovers the coefficients, constant term first, of the
// polynomial taking the given values at ToomCook3Points.
//
// Each coefficient is the dot product of a row of the inverse matrix with the
// point values, accumulated in decimal: the partial sum is quantized to
// interpolationScale fractional digits after every term and the final sum to
// an integer, both rounding half down.
func (t ToomCook) interpolate(values PointValues, m int) ([]bignum.BigNumber, error) {
	inv, err := t.inverter().Invert(InterpolationMatrix())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSingularInterpolationMatrix, err)
	}
	size := len(ToomCook3Points)
	if len(inv) != size {
		return nil, fmt.Errorf("%w: inverse has %d rows", ErrSingularInterpolationMatrix, len(inv))
	}

	decimals := make([]*apd.Decimal, size)
	for j, p := range ToomCook3Points {
		d, _, err := apd.NewFromString(values[p].String())
		if err != nil {
			return nil, fmt.Errorf("toom-cook point value at %s: %w", p, err)
		}
		decimals[j] = d
	}

	// Point values have at most 2m+2 digits and inverse entries at most 17
	// significant digits, so this precision keeps every product exact.
	ctx := apd.BaseContext.WithPrecision(uint32(2*m + 64))
	ctx.Rounding = apd.RoundHalfDown

	coeffs := make([]bignum.BigNumber, size)
	weight := new(apd.Decimal)
	term := new(apd.Decimal)
	for i, row := range inv {
		if len(row) != size {
			return nil, fmt.Errorf("%w: inverse row %d has %d columns", ErrSingularInterpolationMatrix, i, len(row))
		}
		acc := new(apd.Decimal)
		for j, w := range row {
			if _, err := weight.SetFloat64(w); err != nil {
				return nil, fmt.Errorf("toom-cook inverse entry (%d,%d): %w", i, j, err)
			}
			if _, err := ctx.Mul(term, weight, decimals[j]); err != nil {
				return nil, err
			}
			if _, err := ctx.Add(acc, acc, term); err != nil {
				return nil, err
			}
			if _, err := ctx.Quantize(acc, acc, -interpolationScale); err != nil {
				return nil, err
			}
		}
		if _, err := ctx.Quantize(acc, acc, 0); err != nil {
			return nil, err
		}
		c, err := bignum.Parse(acc.Text('f'))
		if err != nil {
			return nil, fmt.Errorf("toom-cook coefficient %d: %w", i, err)
		}
		coeffs[i] = c
	}
	return coeffs, nil
}
