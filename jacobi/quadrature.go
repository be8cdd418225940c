package jacobi

import (
	"math"

	"github.com/notargets/gosimplex/utils"
	"gonum.org/v1/gonum/mat"
)

// GaussQuadrature computes the n+1 point Gauss-Jacobi rule for the weight
// (1-x)^alpha (1+x)^beta on [-1,1] from the eigen-decomposition of the
// symmetric tridiagonal Jacobi matrix. The rule integrates polynomials up to
// degree 2n+1 exactly.
func GaussQuadrature(alpha, beta float64, n int) (X, W utils.Vector) {
	if n == 0 {
		X = utils.NewVector(1, []float64{-(alpha - beta) / (alpha + beta + 2)})
		W = utils.NewVector(1, []float64{totalWeight(alpha, beta)})
		return
	}

	var (
		np = n + 1
		h1 = make([]float64, np)
	)
	for i := 0; i < np; i++ {
		h1[i] = 2*float64(i) + alpha + beta
	}

	JJ := mat.NewSymDense(np, nil)

	// main diagonal: -(alpha^2-beta^2) / ((h1+2) h1) / 2
	fac := -0.5 * (alpha*alpha - beta*beta)
	for i := 0; i < np; i++ {
		val := h1[i]
		JJ.SetSym(i, i, fac/(val*(val+2)))
	}
	// 0/0 in the first entry when alpha+beta = 0
	if math.Abs(alpha+beta) < 1e-14 {
		JJ.SetSym(0, 0, 0)
	}

	// first superdiagonal
	for i := 0; i < n; i++ {
		ip1 := float64(i + 1)
		val := h1[i]
		d := 2 / (val + 2) *
			math.Sqrt(ip1*(ip1+alpha+beta)*(ip1+alpha)*(ip1+beta)/((val+1)*(val+3)))
		JJ.SetSym(i, i+1, d)
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(JJ, true); !ok {
		panic("eigenvalue decomposition failed")
	}
	X = utils.NewVector(np, eig.Values(nil))

	VV := mat.NewDense(np, np, nil)
	eig.VectorsTo(VV)
	w := make([]float64, np)
	g0 := totalWeight(alpha, beta)
	for i, val := range VV.RawRowView(0) {
		w[i] = val * val * g0
	}
	W = utils.NewVector(np, w)
	return
}

// totalWeight is the zeroth moment of the Jacobi weight,
// int_{-1}^{1} (1-x)^alpha (1+x)^beta dx.
func totalWeight(alpha, beta float64) float64 {
	ab1 := alpha + beta + 1
	return math.Pow(2, ab1) / ab1 *
		math.Gamma(alpha+1) * math.Gamma(beta+1) / math.Gamma(ab1)
}
