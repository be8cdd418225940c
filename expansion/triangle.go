package expansion

import (
	"fmt"
	"math"

	"github.com/notargets/gosimplex/jacobi"
	"github.com/notargets/gosimplex/reference"
)

// TriangleExpansionSet evaluates the orthonormal Dubiner basis on a
// triangular cell. The collapsed-coordinate recurrence is kept in its
// algebraically rewritten form over the canonical (x,y) directly, which never
// touches the apex singularity of the literal hypercube transform.
type TriangleExpansionSet struct {
	cell *reference.Cell
	mp   *reference.AffineMap
}

func NewTriangleExpansionSet(cell *reference.Cell) (*TriangleExpansionSet, error) {
	if cell.Shape() != reference.Triangle {
		return nil, fmt.Errorf("triangle expansion set requires a triangle cell, got %v",
			cell.Shape())
	}
	mp, err := reference.MakeAffineMapping(cell, reference.DefaultTriangle())
	if err != nil {
		return nil, err
	}
	return &TriangleExpansionSet{cell: cell, mp: mp}, nil
}

func (e *TriangleExpansionSet) Cell() *reference.Cell { return e.cell }

func (e *TriangleExpansionSet) GetNumMembers(n int) int {
	if n < 0 {
		return 0
	}
	return (n + 1) * (n + 2) / 2
}

func (e *TriangleExpansionSet) Tabulate(n int, pts [][]float64) (DerivTable, error) {
	if err := checkPoints(pts, 2); err != nil {
		return nil, err
	}
	return tabulateValues(e.mp, 2, e.GetNumMembers(n), pts,
		func(ar arith[float64], x []float64) []float64 {
			return triangleSweep[float64](ar, n, x[0], x[1])
		}), nil
}

func (e *TriangleExpansionSet) TabulateDerivatives(n int, pts [][]float64) ([][]ValueGradient, error) {
	jets, err := e.TabulateJet(n, pts, 1)
	if err != nil {
		return nil, err
	}
	return derivativePairs(2, e.GetNumMembers(n), pts, jets), nil
}

func (e *TriangleExpansionSet) TabulateJet(n int, pts [][]float64, order int) ([]DerivTable, error) {
	if err := checkPoints(pts, 2); err != nil {
		return nil, err
	}
	return tabulateJets(e.mp, 2, e.GetNumMembers(n), pts, order,
		func(ar arith[*Jet], x []*Jet) []*Jet {
			return triangleSweep[*Jet](ar, n, x[0], x[1])
		})
}

// triangleSweep generates the degree-graded Dubiner basis at one canonical
// point. The q=0 column runs a three-term recurrence in p over the blending
// factors f1 = (1+2x+y)/2 and f3 = ((1-y)/2)^2, the q=1 row is seeded by a
// linear blend of y, and higher q advance by the Jacobi recurrence with
// jrc(2p+1, 0, q) coefficients.
func triangleSweep[T any](ar arith[T], n int, x, y T) []T {
	res := make([]T, (n+1)*(n+2)/2)
	res[0] = ar.Const(1)
	if n > 0 {
		f1 := ar.Scale(0.5, ar.Add(ar.Const(1), ar.Add(ar.Scale(2, x), y)))
		f2 := ar.Scale(0.5, ar.Sub(ar.Const(1), y))
		f3 := ar.Mul(f2, f2)

		res[TriIndex(1, 0)] = f1
		for p := 1; p < n; p++ {
			a := (2*float64(p) + 1) / (float64(p) + 1)
			b := float64(p) / (float64(p) + 1)
			res[TriIndex(p+1, 0)] = ar.Sub(
				ar.Scale(a, ar.Mul(f1, res[TriIndex(p, 0)])),
				ar.Scale(b, ar.Mul(f3, res[TriIndex(p-1, 0)])))
		}

		for p := 0; p < n; p++ {
			// (1 + 2p + (3+2p) y) / 2
			g := ar.Scale(0.5, ar.Add(
				ar.Const(float64(1+2*p)),
				ar.Scale(float64(3+2*p), y)))
			res[TriIndex(p, 1)] = ar.Mul(g, res[TriIndex(p, 0)])
		}

		for p := 0; p < n-1; p++ {
			for q := 1; q < n-p; q++ {
				a1, a2, a3 := jacobi.JRC(float64(2*p+1), 0, q)
				res[TriIndex(p, q+1)] = ar.Sub(
					ar.Mul(ar.Add(ar.Scale(a1, y), ar.Const(a2)), res[TriIndex(p, q)]),
					ar.Scale(a3, res[TriIndex(p, q-1)]))
			}
		}
	}

	for p := 0; p <= n; p++ {
		for q := 0; q <= n-p; q++ {
			norm := math.Sqrt((float64(p) + 0.5) * float64(p+q+1))
			res[TriIndex(p, q)] = ar.Scale(norm, res[TriIndex(p, q)])
		}
	}
	return res
}
