package multiply

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/agbru/decmul/internal/bignum"
	"github.com/agbru/decmul/internal/linalg"
	"github.com/agbru/decmul/internal/testutil"
)

// product is the common shape of the three multiplication entry points.
type product func(a, b bignum.BigNumber) (bignum.BigNumber, error)

func infallible(f func(a, b bignum.BigNumber) bignum.BigNumber) product {
	return func(a, b bignum.BigNumber) (bignum.BigNumber, error) { return f(a, b), nil }
}

// entryPoints returns every strategy with the longest operand it is
// expected to multiply exactly (0 for unbounded).
func entryPoints() map[string]struct {
	mul   product
	limit int
} {
	return map[string]struct {
		mul   product
		limit int
	}{
		"Karatsuba":     {infallible(Karatsuba), 0},
		"ToomCook3":     {ToomCook3, MaxSafeToomCookDigits},
		"ToomCook3(LU)": {ToomCook{Inverter: linalg.LUInverter{}}.Multiply, MaxSafeToomCookDigits},
		"FFT":           {infallible(FFT), 0},
		"Schoolbook":    {infallible(bignum.BigNumber.Mul), 0},
	}
}

func oracle(a, b bignum.BigNumber) bignum.BigNumber {
	return bignum.FromBigInt(new(big.Int).Mul(a.BigInt(), b.BigInt()))
}

func TestReferenceScenarios(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a, b string
		want string
	}{
		{"MixedSigns", "-21988766", "11199987", "-246273893346042"},
		{"TwentyTwoDigits", "1234567890123456789012", "987654321987654321098", "1219326312467611632493760095208585886175176"},
	}
	for name, ep := range entryPoints() {
		for _, tt := range tests {
			t.Run(name+"/"+tt.name, func(t *testing.T) {
				t.Parallel()
				if name == "ToomCook3(LU)" && tt.name == "TwentyTwoDigits" {
					t.Skip("past the Toom-Cook bound the LU inverse is not accurate enough")
				}
				got, err := ep.mul(bignum.MustParse(tt.a), bignum.MustParse(tt.b))
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got.String() != tt.want {
					t.Errorf("%s(%s, %s) = %s, want %s", name, tt.a, tt.b, got, tt.want)
				}
			})
		}
	}
}

func TestSmallProducts(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, b, want string
	}{
		{"0", "0", "0"},
		{"0", "-5", "0"},
		{"-7", "0", "0"},
		{"1", "-1", "-1"},
		{"-1", "-1", "1"},
		{"9", "9", "81"},
		{"10", "10", "100"},
		{"12", "34", "408"},
		{"99", "99", "9801"},
		{"-123", "456", "-56088"},
		{"1000000", "7", "7000000"},
		{"999", "1", "999"},
		{"31415926", "-27182818", "-853973398759468"},
		{"100000000000", "100000000000", "10000000000000000000000"},
	}
	for name, ep := range entryPoints() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			for _, tt := range tests {
				got, err := ep.mul(bignum.MustParse(tt.a), bignum.MustParse(tt.b))
				if err != nil {
					t.Fatalf("(%s, %s): unexpected error: %v", tt.a, tt.b, err)
				}
				if got.String() != tt.want {
					t.Errorf("(%s, %s) = %s, want %s", tt.a, tt.b, got, tt.want)
				}
			}
		})
	}
}

func TestProductsMatchMathBig(t *testing.T) {
	t.Parallel()
	for name, ep := range entryPoints() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			r := testutil.NewRand(42)
			maxDigits := 300
			if ep.limit > 0 {
				maxDigits = ep.limit
			}
			trials := 200
			if testing.Short() {
				trials = 40
			}
			for i := 0; i < trials; i++ {
				a := bignum.MustParse(testutil.RandomOperand(r, 1+r.IntN(maxDigits)))
				b := bignum.MustParse(testutil.RandomOperand(r, 1+r.IntN(maxDigits)))
				got, err := ep.mul(a, b)
				if err != nil {
					t.Fatalf("(%s, %s): unexpected error: %v", a, b, err)
				}
				if want := oracle(a, b); !got.Equal(want) {
					t.Fatalf("(%s, %s) = %s, want %s", a, b, got, want)
				}
			}
		})
	}
}

func TestWorstCaseOperandsWithinBound(t *testing.T) {
	t.Parallel()
	for name, ep := range entryPoints() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			limit := ep.limit
			if limit == 0 {
				limit = 200
			}
			for n := 1; n <= limit; n++ {
				x := bignum.MustParse(testutil.Nines(n))
				got, err := ep.mul(x, x.Neg())
				if err != nil {
					t.Fatalf("n=%d: unexpected error: %v", n, err)
				}
				if want := oracle(x, x.Neg()); !got.Equal(want) {
					t.Fatalf("n=%d: got %s, want %s", n, got, want)
				}
			}
		})
	}
}

func TestKaratsubaLargeOperands(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large operands in short mode")
	}
	t.Parallel()
	r := testutil.NewRand(7)
	for _, n := range []int{1000, 2500} {
		t.Run(fmt.Sprintf("%d digits", n), func(t *testing.T) {
			a := bignum.MustParse(testutil.RandomOperand(r, n))
			b := bignum.MustParse(testutil.RandomOperand(r, n-13))
			if got, want := Karatsuba(a, b), oracle(a, b); !got.Equal(want) {
				t.Errorf("Karatsuba mismatch at %d digits", n)
			}
		})
	}
}
