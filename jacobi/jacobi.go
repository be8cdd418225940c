// Package jacobi evaluates the Jacobi polynomial families P_n^{(alpha,beta)}
// that underlie the collapsed-coordinate simplex expansions, batched over
// point sets via the standard three-term recurrence.
package jacobi

import (
	"github.com/notargets/gosimplex/utils"
)

// JRC returns the three-term recurrence coefficients (a, b, c) such that
//
//	P_{n+1}^{(alpha,beta)}(x) = (a*x + b) * P_n^{(alpha,beta)}(x) - c * P_{n-1}^{(alpha,beta)}(x)
//
// for the unnormalized family with P_0 = 1, P_1 = (alpha-beta+(alpha+beta+2)x)/2.
// Requires n >= 1 when alpha+beta = 0; the denominators are nonzero otherwise.
func JRC(alpha, beta float64, n int) (a, b, c float64) {
	var (
		fn = float64(n)
		ab = alpha + beta
	)
	a = (2*fn + 1 + ab) * (2*fn + 2 + ab) /
		(2 * (fn + 1) * (fn + 1 + ab))
	b = (alpha*alpha - beta*beta) * (2*fn + 1 + ab) /
		(2 * (fn + 1) * (2*fn + ab) * (fn + 1 + ab))
	c = (fn + alpha) * (fn + beta) * (2*fn + 2 + ab) /
		((fn + 1) * (fn + 1 + ab) * (2*fn + ab))
	return
}

// EvalBatch evaluates P_0..P_n^{(alpha,beta)} at the points in x, returning a
// matrix R[k][j] = P_k(x_j). The family is unnormalized: P_0 = 1.
// x must be non-empty and n non-negative.
func EvalBatch(alpha, beta float64, n int, x utils.Vector) (R utils.Matrix) {
	var (
		nc = x.Len()
		xd = x.DataP
	)
	R = utils.NewMatrix(n+1, nc)
	R.SetRow(0, utils.ConstArray(1, nc))
	if n == 0 {
		return
	}

	row := make([]float64, nc)
	for j, xj := range xd {
		row[j] = 0.5 * (alpha - beta + (alpha+beta+2)*xj)
	}
	R.SetRow(1, row)

	for k := 1; k < n; k++ {
		a, b, c := JRC(alpha, beta, k)
		pk := R.M.RawRowView(k)
		pkm1 := R.M.RawRowView(k - 1)
		next := make([]float64, nc)
		for j, xj := range xd {
			next[j] = (a*xj+b)*pk[j] - c*pkm1[j]
		}
		R.SetRow(k+1, next)
	}
	return
}

// EvalDerivBatch evaluates d/dx P_0..P_n^{(alpha,beta)} at the points in x via
// the identity
//
//	d/dx P_n^{(alpha,beta)} = (n+alpha+beta+1)/2 * P_{n-1}^{(alpha+1,beta+1)}
//
// returning R[k][j] = P_k'(x_j). Row 0 is identically zero.
func EvalDerivBatch(alpha, beta float64, n int, x utils.Vector) (R utils.Matrix) {
	var (
		nc = x.Len()
	)
	R = utils.NewMatrix(n+1, nc)
	if n == 0 {
		return
	}
	shifted := EvalBatch(alpha+1, beta+1, n-1, x)
	for k := 1; k <= n; k++ {
		fac := 0.5 * (float64(k) + alpha + beta + 1)
		src := shifted.M.RawRowView(k - 1)
		row := make([]float64, nc)
		for j, val := range src {
			row[j] = fac * val
		}
		R.SetRow(k, row)
	}
	return
}
