package expansion

import (
	"fmt"
	"math"

	"github.com/notargets/gosimplex/jacobi"
	"github.com/notargets/gosimplex/reference"
	"github.com/notargets/gosimplex/utils"
)

// LineExpansionSet evaluates the orthonormal Legendre basis on an interval
// cell.
type LineExpansionSet struct {
	cell *reference.Cell
	mp   *reference.AffineMap
}

func NewLineExpansionSet(cell *reference.Cell) (*LineExpansionSet, error) {
	if cell.Shape() != reference.Line {
		return nil, fmt.Errorf("line expansion set requires a line cell, got %v", cell.Shape())
	}
	mp, err := reference.MakeAffineMapping(cell, reference.DefaultLine())
	if err != nil {
		return nil, err
	}
	return &LineExpansionSet{cell: cell, mp: mp}, nil
}

func (e *LineExpansionSet) Cell() *reference.Cell { return e.cell }

func (e *LineExpansionSet) GetNumMembers(n int) int {
	if n < 0 {
		return 0
	}
	return n + 1
}

// Tabulate evaluates Legendre polynomials of degree 0..n at the mapped
// points through the batched Jacobi recurrence, scaling degree k by
// sqrt(k+1/2) for orthonormality on the canonical interval.
func (e *LineExpansionSet) Tabulate(n int, pts [][]float64) (DerivTable, error) {
	if err := checkPoints(pts, 1); err != nil {
		return nil, err
	}
	nb := e.GetNumMembers(n)
	vals := make([][]float64, nb)
	for i := range vals {
		vals[i] = make([]float64, len(pts))
	}
	if nb > 0 && len(pts) > 0 {
		ref := make([]float64, len(pts))
		for j, pt := range pts {
			ref[j] = e.mp.Apply(pt)[0]
		}
		P := jacobi.EvalBatch(0, 0, n, utils.NewVector(len(ref), ref))
		for k := 0; k <= n; k++ {
			scale := math.Sqrt(float64(k) + 0.5)
			for j, v := range P.Row(k).DataP {
				vals[k][j] = scale * v
			}
		}
	}
	return DerivTable{MultiIndex{}: vals}, nil
}

func (e *LineExpansionSet) TabulateDerivatives(n int, pts [][]float64) ([][]ValueGradient, error) {
	jets, err := e.TabulateJet(n, pts, 1)
	if err != nil {
		return nil, err
	}
	return derivativePairs(1, e.GetNumMembers(n), pts, jets), nil
}

func (e *LineExpansionSet) TabulateJet(n int, pts [][]float64, order int) ([]DerivTable, error) {
	if err := checkPoints(pts, 1); err != nil {
		return nil, err
	}
	return tabulateJets(e.mp, 1, e.GetNumMembers(n), pts, order,
		func(ar arith[*Jet], x []*Jet) []*Jet {
			return lineSweep[*Jet](ar, n, x[0])
		})
}

// lineSweep is the Legendre three-term recurrence expressed over the sweep
// arithmetic, so jets propagate through the identical code path as plain
// values.
func lineSweep[T any](ar arith[T], n int, x T) []T {
	res := make([]T, n+1)
	res[0] = ar.Const(1)
	if n >= 1 {
		res[1] = x
	}
	for k := 1; k < n; k++ {
		a, b, c := jacobi.JRC(0, 0, k)
		res[k+1] = ar.Sub(
			ar.Mul(ar.Add(ar.Scale(a, x), ar.Const(b)), res[k]),
			ar.Scale(c, res[k-1]))
	}
	for k := 0; k <= n; k++ {
		res[k] = ar.Scale(math.Sqrt(float64(k)+0.5), res[k])
	}
	return res
}
