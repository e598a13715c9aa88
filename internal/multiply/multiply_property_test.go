package multiply

import (
	"strings"
	"testing"

	"github.com/agbru/decmul/internal/bignum"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// operand builds a signed number from a generated digit string, keeping at
// most maxLen digits. Empty strings read as zero.
func operand(digits string, neg bool, maxLen int) bignum.BigNumber {
	if len(digits) > maxLen {
		digits = digits[:maxLen]
	}
	if digits == "" {
		digits = "0"
	}
	if neg {
		digits = "-" + digits
	}
	return bignum.MustParse(digits)
}

func newProperties() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	return gopter.NewProperties(parameters)
}

func TestStrategyEquivalence_PropertyBased(t *testing.T) {
	properties := newProperties()

	properties.Property("all strategies agree inside the Toom-Cook bound", prop.ForAll(
		func(da string, na bool, db string, nb bool) bool {
			a := operand(da, na, MaxSafeToomCookDigits)
			b := operand(db, nb, MaxSafeToomCookDigits)
			want := Karatsuba(a, b)
			toom, err := ToomCook3(a, b)
			if err != nil {
				return false
			}
			return toom.Equal(want) && FFT(a, b).Equal(want) && a.Mul(b).Equal(want) && want.Equal(oracle(a, b))
		},
		gen.NumString(), gen.Bool(), gen.NumString(), gen.Bool(),
	))

	properties.Property("Karatsuba and FFT agree on longer operands", prop.ForAll(
		func(da string, na bool, db string, nb bool) bool {
			a := operand(strings.Repeat(da, 3), na, 300)
			b := operand(strings.Repeat(db, 2), nb, 300)
			return Karatsuba(a, b).Equal(FFT(a, b))
		},
		gen.NumString(), gen.Bool(), gen.NumString(), gen.Bool(),
	))

	properties.TestingRun(t)
}

func TestAlgebraicLaws_PropertyBased(t *testing.T) {
	properties := newProperties()

	strategies := map[string]func(a, b bignum.BigNumber) bignum.BigNumber{
		"Karatsuba": Karatsuba,
		"FFT":       FFT,
		"ToomCook3": func(a, b bignum.BigNumber) bignum.BigNumber {
			p, err := ToomCook3(a, b)
			if err != nil {
				panic(err)
			}
			return p
		},
	}

	for name, mul := range strategies {
		properties.Property(name+" is commutative", prop.ForAll(
			func(da string, na bool, db string, nb bool) bool {
				a := operand(da, na, MaxSafeToomCookDigits)
				b := operand(db, nb, MaxSafeToomCookDigits)
				return mul(a, b).Equal(mul(b, a))
			},
			gen.NumString(), gen.Bool(), gen.NumString(), gen.Bool(),
		))

		properties.Property(name+" has zero and identity", prop.ForAll(
			func(da string, na bool) bool {
				a := operand(da, na, MaxSafeToomCookDigits)
				return mul(a, bignum.Zero).Equal(bignum.Zero) &&
					mul(bignum.Zero, a).Equal(bignum.Zero) &&
					mul(a, bignum.One).Equal(a) &&
					mul(bignum.One, a).Equal(a)
			},
			gen.NumString(), gen.Bool(),
		))

		properties.Property(name+" follows the sign laws", prop.ForAll(
			func(da string, na bool, db string, nb bool) bool {
				a := operand(da, na, MaxSafeToomCookDigits)
				b := operand(db, nb, MaxSafeToomCookDigits)
				p := mul(a, b)
				if p.IsZero() {
					return a.IsZero() || b.IsZero()
				}
				return p.IsNegative() == (a.IsNegative() != b.IsNegative()) &&
					p.Abs().Equal(mul(a.Abs(), b.Abs()))
			},
			gen.NumString(), gen.Bool(), gen.NumString(), gen.Bool(),
		))
	}

	properties.Property("Karatsuba is associative", prop.ForAll(
		func(da, db, dc string, na, nb, nc bool) bool {
			a := operand(da, na, 60)
			b := operand(db, nb, 60)
			c := operand(dc, nc, 60)
			return Karatsuba(Karatsuba(a, b), c).Equal(Karatsuba(a, Karatsuba(b, c)))
		},
		gen.NumString(), gen.NumString(), gen.NumString(), gen.Bool(), gen.Bool(), gen.Bool(),
	))

	properties.Property("rendering round-trips and strips leading zeros", prop.ForAll(
		func(da string, na bool) bool {
			a := operand("000"+da, na, 200)
			again, err := bignum.Parse(a.String())
			return err == nil && again.Equal(a) && (a.IsZero() || a.Magnitude()[0] != '0')
		},
		gen.NumString(), gen.Bool(),
	))

	properties.TestingRun(t)
}
