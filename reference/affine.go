package reference

import (
	"fmt"
	"math"

	"github.com/notargets/gosimplex/utils"
)

// DegenerateCellError reports an affinely dependent vertex set: the edge
// vectors are singular and no affine map onto the canonical cell exists.
type DegenerateCellError struct {
	Shape Shape
	Err   error
}

func (e *DegenerateCellError) Error() string {
	return fmt.Sprintf("degenerate %v cell: %v", e.Shape, e.Err)
}

func (e *DegenerateCellError) Unwrap() error { return e.Err }

// AffineMap is the unique affine transform x -> A x + B taking one simplex's
// vertices onto another's. Scale is sqrt(|det A|), the Jacobian factor used
// for volume normalization.
type AffineMap struct {
	A     utils.Matrix
	B     []float64
	Scale float64
}

// MakeAffineMapping solves to_i = A from_i + B for all vertices. The first
// vertex pair fixes B, the d edge vectors fix A through a dense linear solve.
func MakeAffineMapping(from, to *Cell) (*AffineMap, error) {
	var (
		d  = from.SpatialDimension()
		v1 = from.Vertices()
		v2 = to.Vertices()
	)
	if to.SpatialDimension() != d {
		return nil, fmt.Errorf("affine mapping between %v and %v cells of unequal dimension",
			from.Shape(), to.Shape())
	}

	// Edge vector matrices, edges as columns: A E1 = E2, so solve
	// E1^T A^T = E2^T.
	E1t := utils.NewMatrix(d, d)
	E2t := utils.NewMatrix(d, d)
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			E1t.Set(i, j, v1[i+1][j]-v1[0][j])
			E2t.Set(i, j, v2[i+1][j]-v2[0][j])
		}
	}
	At, err := E1t.Solve(E2t)
	if err != nil {
		return nil, &DegenerateCellError{Shape: from.Shape(), Err: err}
	}
	A := At.Transpose()

	b := make([]float64, d)
	for i := 0; i < d; i++ {
		b[i] = v2[0][i]
		for j := 0; j < d; j++ {
			b[i] -= A.At(i, j) * v1[0][j]
		}
	}
	return &AffineMap{
		A:     A,
		B:     b,
		Scale: math.Sqrt(math.Abs(A.Det())),
	}, nil
}

// Apply maps a point through the affine transform.
func (m *AffineMap) Apply(pt []float64) []float64 {
	d := len(m.B)
	out := make([]float64, d)
	for i := 0; i < d; i++ {
		out[i] = m.B[i]
		for j := 0; j < d; j++ {
			out[i] += m.A.At(i, j) * pt[j]
		}
	}
	return out
}
