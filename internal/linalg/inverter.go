// Package linalg provides square matrix inversion for float64 matrices.
//
// Two inverters are available. ExactInverter eliminates over rational numbers
// and rounds each entry of the inverse once, to the nearest float64.
// LUInverter performs a Doolittle LU decomposition without pivoting in
// float64 and is suited to matrices whose leading principal minors are all
// non-zero.
package linalg

//go:generate mockgen -source=inverter.go -destination=mocks/mock_inverter.go -package=mocks

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

var (
	// ErrSingular is returned when the matrix has no inverse.
	ErrSingular = errors.New("linalg: matrix is singular")
	// ErrNotSquare is returned for empty, ragged or non-square input.
	ErrNotSquare = errors.New("linalg: matrix is not square")
	// ErrNotFinite is returned when an entry is NaN or infinite.
	ErrNotFinite = errors.New("linalg: matrix entry is not finite")
)

// Inverter inverts square matrices of float64.
type Inverter interface {
	// Invert returns the inverse of m, or an error wrapping ErrSingular
	// when m is not invertible. m is not modified.
	Invert(m [][]float64) ([][]float64, error)
}

// order validates m and returns its dimension.
func order(m [][]float64) (int, error) {
	n := len(m)
	if n == 0 {
		return 0, ErrNotSquare
	}
	for i, row := range m {
		if len(row) != n {
			return 0, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNotSquare, i, len(row), n)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, fmt.Errorf("%w: (%d,%d) = %v", ErrNotFinite, i, j, v)
			}
		}
	}
	return n, nil
}

func newMatrix(n int) [][]float64 {
	backing := make([]float64, n*n)
	m := make([][]float64, n)
	for i := range m {
		m[i] = backing[i*n : (i+1)*n]
	}
	return m
}

// ExactInverter computes the inverse by Gauss-Jordan elimination over
// math/big.Rat. Every float64 is a dyadic rational, so the elimination itself
// is exact and each entry of the result is the float64 nearest to the true
// inverse entry.
type ExactInverter struct{}

// Invert implements Inverter.
func (ExactInverter) Invert(m [][]float64) ([][]float64, error) {
	n, err := order(m)
	if err != nil {
		return nil, err
	}

	// Augmented matrix [m | I].
	aug := make([][]*big.Rat, n)
	for i := range aug {
		aug[i] = make([]*big.Rat, 2*n)
		for j := 0; j < n; j++ {
			aug[i][j] = new(big.Rat).SetFloat64(m[i][j])
			aug[i][n+j] = new(big.Rat)
		}
		aug[i][n+i].SetInt64(1)
	}

	tmp := new(big.Rat)
	for col := 0; col < n; col++ {
		pivot := -1
		for r := col; r < n; r++ {
			if aug[r][col].Sign() != 0 {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			return nil, fmt.Errorf("%w: no pivot in column %d", ErrSingular, col)
		}
		aug[col], aug[pivot] = aug[pivot], aug[col]

		inv := new(big.Rat).Inv(aug[col][col])
		for k := col; k < 2*n; k++ {
			aug[col][k].Mul(aug[col][k], inv)
		}
		for r := 0; r < n; r++ {
			if r == col || aug[r][col].Sign() == 0 {
				continue
			}
			factor := new(big.Rat).Set(aug[r][col])
			for k := col; k < 2*n; k++ {
				tmp.Mul(factor, aug[col][k])
				aug[r][k].Sub(aug[r][k], tmp)
			}
		}
	}

	out := newMatrix(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i][j], _ = aug[i][n+j].Float64()
		}
	}
	return out, nil
}

// pivotEpsilon is the magnitude under which an LU pivot counts as zero.
const pivotEpsilon = 1e-12

// LUInverter computes the inverse from a Doolittle decomposition m = L*U
// (L unit lower triangular, U upper triangular) without row exchanges, then
// solves L*U*x = e_c for every column of the identity.
type LUInverter struct{}

// Invert implements Inverter. A zero pivot is reported as ErrSingular even
// when a row exchange would have made the matrix invertible.
func (LUInverter) Invert(m [][]float64) ([][]float64, error) {
	n, err := order(m)
	if err != nil {
		return nil, err
	}
	l, u := newMatrix(n), newMatrix(n)
	for i := 0; i < n; i++ {
		for k := i; k < n; k++ {
			sum := 0.0
			for j := 0; j < i; j++ {
				sum += l[i][j] * u[j][k]
			}
			u[i][k] = m[i][k] - sum
		}
		if math.Abs(u[i][i]) < pivotEpsilon {
			return nil, fmt.Errorf("%w: zero pivot at row %d", ErrSingular, i)
		}
		l[i][i] = 1
		for k := i + 1; k < n; k++ {
			sum := 0.0
			for j := 0; j < i; j++ {
				sum += l[k][j] * u[j][i]
			}
			l[k][i] = (m[k][i] - sum) / u[i][i]
		}
	}

	inv := newMatrix(n)
	y := make([]float64, n)
	for c := 0; c < n; c++ {
		// Forward substitution: L*y = e_c.
		for i := 0; i < n; i++ {
			sum := 0.0
			if i == c {
				sum = 1
			}
			for j := 0; j < i; j++ {
				sum -= l[i][j] * y[j]
			}
			y[i] = sum
		}
		// Back substitution: U*x = y.
		for i := n - 1; i >= 0; i-- {
			sum := y[i]
			for j := i + 1; j < n; j++ {
				sum -= u[i][j] * inv[j][c]
			}
			inv[i][c] = sum / u[i][i]
		}
	}
	return inv, nil
}
