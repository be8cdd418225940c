package expansion

import (
	"fmt"
	"math"

	"github.com/notargets/gosimplex/jacobi"
	"github.com/notargets/gosimplex/reference"
)

// TetrahedronExpansionSet evaluates the collapsed orthonormal expansion on a
// tetrahedral cell, structurally the triangle case with a third nested sweep.
type TetrahedronExpansionSet struct {
	cell *reference.Cell
	mp   *reference.AffineMap
}

func NewTetrahedronExpansionSet(cell *reference.Cell) (*TetrahedronExpansionSet, error) {
	if cell.Shape() != reference.Tetrahedron {
		return nil, fmt.Errorf("tetrahedron expansion set requires a tetrahedron cell, got %v",
			cell.Shape())
	}
	mp, err := reference.MakeAffineMapping(cell, reference.DefaultTetrahedron())
	if err != nil {
		return nil, err
	}
	return &TetrahedronExpansionSet{cell: cell, mp: mp}, nil
}

func (e *TetrahedronExpansionSet) Cell() *reference.Cell { return e.cell }

func (e *TetrahedronExpansionSet) GetNumMembers(n int) int {
	if n < 0 {
		return 0
	}
	return (n + 1) * (n + 2) * (n + 3) / 6
}

func (e *TetrahedronExpansionSet) Tabulate(n int, pts [][]float64) (DerivTable, error) {
	if err := checkPoints(pts, 3); err != nil {
		return nil, err
	}
	return tabulateValues(e.mp, 3, e.GetNumMembers(n), pts,
		func(ar arith[float64], x []float64) []float64 {
			return tetSweep[float64](ar, n, x[0], x[1], x[2])
		}), nil
}

func (e *TetrahedronExpansionSet) TabulateDerivatives(n int, pts [][]float64) ([][]ValueGradient, error) {
	jets, err := e.TabulateJet(n, pts, 1)
	if err != nil {
		return nil, err
	}
	return derivativePairs(3, e.GetNumMembers(n), pts, jets), nil
}

func (e *TetrahedronExpansionSet) TabulateJet(n int, pts [][]float64, order int) ([]DerivTable, error) {
	if err := checkPoints(pts, 3); err != nil {
		return nil, err
	}
	return tabulateJets(e.mp, 3, e.GetNumMembers(n), pts, order,
		func(ar arith[*Jet], x []*Jet) []*Jet {
			return tetSweep[*Jet](ar, n, x[0], x[1], x[2])
		})
}

// tetSweep generates the degree-graded tetrahedral basis at one canonical
// point: a p-direction recurrence over f1 = (2+2x+y+z)/2 and
// f2 = ((y+z)/2)^2, a q-direction recurrence conditioned on p over
// f3 = (1+2y+z)/2, f4 = (1-z)/2, f5 = f4^2, and an r-direction recurrence
// conditioned on (p,q), each seeded by a fixed linear blend.
func tetSweep[T any](ar arith[T], n int, x, y, z T) []T {
	res := make([]T, (n+1)*(n+2)*(n+3)/6)
	res[0] = ar.Const(1)
	if n > 0 {
		f1 := ar.Scale(0.5, ar.Add(ar.Const(2), ar.Add(ar.Scale(2, x), ar.Add(y, z))))
		yz := ar.Scale(0.5, ar.Add(y, z))
		f2 := ar.Mul(yz, yz)
		f3 := ar.Scale(0.5, ar.Add(ar.Const(1), ar.Add(ar.Scale(2, y), z)))
		f4 := ar.Scale(0.5, ar.Sub(ar.Const(1), z))
		f5 := ar.Mul(f4, f4)

		res[TetIndex(1, 0, 0)] = f1
		for p := 1; p < n; p++ {
			a1 := (2*float64(p) + 1) / (float64(p) + 1)
			a2 := float64(p) / (float64(p) + 1)
			res[TetIndex(p+1, 0, 0)] = ar.Sub(
				ar.Scale(a1, ar.Mul(f1, res[TetIndex(p, 0, 0)])),
				ar.Scale(a2, ar.Mul(f2, res[TetIndex(p-1, 0, 0)])))
		}

		for p := 0; p < n; p++ {
			// p(1+y) + (2+3y+z)/2
			g := ar.Add(
				ar.Scale(float64(p), ar.Add(ar.Const(1), y)),
				ar.Scale(0.5, ar.Add(ar.Const(2), ar.Add(ar.Scale(3, y), z))))
			res[TetIndex(p, 1, 0)] = ar.Mul(g, res[TetIndex(p, 0, 0)])
		}

		for p := 0; p < n-1; p++ {
			for q := 1; q < n-p; q++ {
				aq, bq, cq := jacobi.JRC(float64(2*p+1), 0, q)
				qm := ar.Add(ar.Scale(aq, f3), ar.Scale(bq, f4))
				res[TetIndex(p, q+1, 0)] = ar.Sub(
					ar.Mul(qm, res[TetIndex(p, q, 0)]),
					ar.Scale(cq, ar.Mul(f5, res[TetIndex(p, q-1, 0)])))
			}
		}

		for p := 0; p < n; p++ {
			for q := 0; q < n-p; q++ {
				// 1+p+q + (2+q+p) z
				g := ar.Add(ar.Const(float64(1+p+q)), ar.Scale(float64(2+q+p), z))
				res[TetIndex(p, q, 1)] = ar.Mul(g, res[TetIndex(p, q, 0)])
			}
		}

		for p := 0; p < n-1; p++ {
			for q := 0; q < n-p-1; q++ {
				for r := 1; r < n-p-q; r++ {
					as, bs, cs := jacobi.JRC(float64(2*p+2*q+2), 0, r)
					res[TetIndex(p, q, r+1)] = ar.Sub(
						ar.Mul(ar.Add(ar.Scale(as, z), ar.Const(bs)), res[TetIndex(p, q, r)]),
						ar.Scale(cs, res[TetIndex(p, q, r-1)]))
				}
			}
		}
	}

	for p := 0; p <= n; p++ {
		for q := 0; q <= n-p; q++ {
			for r := 0; r <= n-p-q; r++ {
				norm := math.Sqrt((float64(p) + 0.5) * float64(p+q+1) * (float64(p+q+r) + 1.5))
				res[TetIndex(p, q, r)] = ar.Scale(norm, res[TetIndex(p, q, r)])
			}
		}
	}
	return res
}
