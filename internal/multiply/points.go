package multiply

import (
	"strconv"

	"github.com/agbru/decmul/internal/bignum"
)

// EvalPoint identifies a Toom-Cook evaluation point. It is either a finite
// integer x or the point at infinity, which stands for "the leading
// coefficient" and is never substituted numerically.
//
// EvalPoint is comparable and can be used as a map key.
type EvalPoint struct {
	x        int64
	infinite bool
}

// Finite returns the evaluation point x.
func Finite(x int64) EvalPoint { return EvalPoint{x: x} }

// Infinity returns the leading-coefficient sentinel.
func Infinity() EvalPoint { return EvalPoint{infinite: true} }

// IsInfinity reports whether p is the leading-coefficient sentinel.
func (p EvalPoint) IsInfinity() bool { return p.infinite }

// Value returns the numeric value of a finite point. ok is false for the
// sentinel.
func (p EvalPoint) Value() (x int64, ok bool) {
	if p.infinite {
		return 0, false
	}
	return p.x, true
}

func (p EvalPoint) String() string {
	if p.infinite {
		return "inf"
	}
	return strconv.FormatInt(p.x, 10)
}

// Row returns the interpolation matrix row of p for a polynomial of the
// given degree: [1 x x^2 ... x^degree] for a finite point and
// [0 ... 0 1] for the sentinel.
func (p EvalPoint) Row(degree int) []float64 {
	row := make([]float64, degree+1)
	if p.infinite {
		row[degree] = 1
		return row
	}
	power := 1.0
	for i := range row {
		row[i] = power
		power *= float64(p.x)
	}
	return row
}

// Evaluate returns the polynomial whose coefficients are limbs (constant term
// first) at p. Finite points use Horner's rule with Karatsuba products; the
// sentinel returns the top limb unchanged.
func (p EvalPoint) Evaluate(limbs []bignum.BigNumber) bignum.BigNumber {
	if len(limbs) == 0 {
		return bignum.Zero
	}
	top := len(limbs) - 1
	if p.infinite {
		return limbs[top]
	}
	x := bignum.FromInt64(p.x)
	acc := limbs[top]
	for i := top - 1; i >= 0; i-- {
		acc = Karatsuba(acc, x).Add(limbs[i])
	}
	return acc
}

// PointValues maps evaluation points to the value of a polynomial there.
type PointValues map[EvalPoint]bignum.BigNumber

// ToomCook3Points is the fixed point set {0, 1, -1, -2, inf}. Its order
// defines the row order of the interpolation matrix.
var ToomCook3Points = [5]EvalPoint{
	Finite(0),
	Finite(1),
	Finite(-1),
	Finite(-2),
	Infinity(),
}

// evaluateAll evaluates the polynomial given by limbs at every Toom-Cook-3
// point.
func evaluateAll(limbs []bignum.BigNumber) PointValues {
	values := make(PointValues, len(ToomCook3Points))
	for _, p := range ToomCook3Points {
		values[p] = p.Evaluate(limbs)
	}
	return values
}
