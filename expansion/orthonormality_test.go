package expansion

import (
	"math"
	"testing"

	"github.com/notargets/gosimplex/jacobi"
	"github.com/notargets/gosimplex/reference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Duffy product rules over the canonical cells, built from Gauss-Jacobi
// rules whose weights absorb the collapse Jacobian. Quadrature construction
// is test support only; the expansion code itself never leaves (x,y,z).

func lineQuadrature(N int) (pts [][]float64, w []float64) {
	X, W := jacobi.GaussQuadrature(0, 0, N)
	for i, x := range X.DataP {
		pts = append(pts, []float64{x})
		w = append(w, W.DataP[i])
	}
	return
}

func triangleQuadrature(N int) (pts [][]float64, w []float64) {
	A, WA := jacobi.GaussQuadrature(0, 0, N)
	B, WB := jacobi.GaussQuadrature(1, 0, N)
	for i, a := range A.DataP {
		for j, b := range B.DataP {
			x := 0.5*(1+a)*(1-b) - 1
			pts = append(pts, []float64{x, b})
			w = append(w, 0.5*WA.DataP[i]*WB.DataP[j])
		}
	}
	return
}

func tetQuadrature(N int) (pts [][]float64, w []float64) {
	A, WA := jacobi.GaussQuadrature(0, 0, N)
	B, WB := jacobi.GaussQuadrature(1, 0, N)
	C, WC := jacobi.GaussQuadrature(2, 0, N)
	for i, a := range A.DataP {
		for j, b := range B.DataP {
			for k, c := range C.DataP {
				x := 0.25*(1+a)*(1-b)*(1-c) - 1
				y := 0.5*(1+b)*(1-c) - 1
				pts = append(pts, []float64{x, y, c})
				w = append(w, 0.125*WA.DataP[i]*WB.DataP[j]*WC.DataP[k])
			}
		}
	}
	return
}

func TestQuadratureVolumes(t *testing.T) {
	const tol = 1e-12
	sum := func(w []float64) (s float64) {
		for _, wi := range w {
			s += wi
		}
		return
	}
	_, w := lineQuadrature(4)
	assert.InDelta(t, 2.0, sum(w), tol)
	_, w = triangleQuadrature(4)
	assert.InDelta(t, 2.0, sum(w), tol)
	_, w = tetQuadrature(4)
	assert.InDelta(t, 4.0/3.0, sum(w), tol)
}

func TestOrthonormality(t *testing.T) {
	const (
		nmax = 8
		tol  = 1e-10
	)
	cases := []struct {
		cell *reference.Cell
		quad func(int) ([][]float64, []float64)
	}{
		{reference.DefaultLine(), lineQuadrature},
		{reference.DefaultTriangle(), triangleQuadrature},
		{reference.DefaultTetrahedron(), tetQuadrature},
	}
	for _, c := range cases {
		es, err := GetExpansionSet(c.cell)
		require.NoError(t, err)
		pts, w := c.quad(nmax + 2)

		for n := 0; n <= nmax; n++ {
			tab, err := es.Tabulate(n, pts)
			require.NoError(t, err)
			vals := tab[MultiIndex{}]
			nb := es.GetNumMembers(n)
			require.Len(t, vals, nb)

			for i := 0; i < nb; i++ {
				for j := i; j < nb; j++ {
					var g float64
					for k := range pts {
						g += w[k] * vals[i][k] * vals[j][k]
					}
					want := 0.0
					if i == j {
						want = 1
					}
					assert.InDeltaf(t, want, g, tol,
						"%v n=%d Gram[%d][%d]", c.cell.Shape(), n, i, j)
				}
			}
		}
	}
}

func TestOrthonormalityShapeIndependent(t *testing.T) {
	// Only the affine map changes with the physical cell, not the
	// orthonormal scaling: pulling the quadrature back onto the physical
	// cell recovers the identity Gram matrix up to the volume ratio.
	const (
		n   = 4
		tol = 1e-10
	)
	cell, err := reference.NewCell(reference.Triangle,
		[][]float64{{0.2, -0.1}, {1.7, 0.3}, {0.4, 2.1}})
	require.NoError(t, err)

	es, err := GetExpansionSet(cell)
	require.NoError(t, err)

	// map canonical quadrature points onto the physical cell
	toPhys, err := reference.MakeAffineMapping(reference.DefaultTriangle(), cell)
	require.NoError(t, err)
	canonPts, w := triangleQuadrature(n + 2)
	pts := make([][]float64, len(canonPts))
	for i, pt := range canonPts {
		pts[i] = toPhys.Apply(pt)
	}
	volRatio := toPhys.Scale * toPhys.Scale

	tab, err := es.Tabulate(n, pts)
	require.NoError(t, err)
	vals := tab[MultiIndex{}]
	nb := es.GetNumMembers(n)

	for i := 0; i < nb; i++ {
		for j := i; j < nb; j++ {
			var g float64
			for k := range pts {
				g += w[k] * volRatio * vals[i][k] * vals[j][k]
			}
			want := 0.0
			if i == j {
				want = volRatio
			}
			assert.InDeltaf(t, want, g, tol*volRatio, "Gram[%d][%d]", i, j)
		}
	}
}

func TestGoldenDubinerDegree1(t *testing.T) {
	// Closed-form Dubiner values at the canonical triangle vertex (-1,-1):
	// phi_00 = sqrt(1/2), phi_10 = sqrt(3) f1 with f1(-1,-1) = -1,
	// phi_01 = (1+3y)/2 = -1.
	const tol = 1e-14
	es, err := GetExpansionSet(reference.DefaultTriangle())
	require.NoError(t, err)

	tab, err := es.Tabulate(1, [][]float64{{-1, -1}})
	require.NoError(t, err)
	vals := tab[MultiIndex{}]
	require.Len(t, vals, 3)

	assert.InDelta(t, math.Sqrt(0.5), vals[TriIndex(0, 0)][0], tol)
	assert.InDelta(t, -math.Sqrt(3), vals[TriIndex(1, 0)][0], tol)
	assert.InDelta(t, -1.0, vals[TriIndex(0, 1)][0], tol)
}
