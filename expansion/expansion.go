// Package expansion tabulates the orthonormal polynomial expansion bases of
// Karniadakis and Sherwin on simplicial reference cells, together with their
// derivatives and jets. The collapsed-coordinate recurrences are evaluated in
// their algebraically rewritten form directly on the canonical cell
// coordinates, which keeps them clear of the hypercube-map singularity at the
// simplex apex.
package expansion

import (
	"fmt"

	"github.com/notargets/gosimplex/reference"
)

// MaxJetOrder bounds the derivative order the jet machinery supports. Higher
// orders would tabulate, but downstream element construction never consumes
// beyond fourth derivatives and the truncated Taylor tables grow
// combinatorially.
const MaxJetOrder = 4

// MultiIndex is a derivative multi-index, one non-negative entry per spatial
// dimension. Components past the cell's dimension stay zero; the zero index
// denotes the undifferentiated value.
type MultiIndex [3]int

// Order is the total derivative order of the multi-index.
func (m MultiIndex) Order() int { return m[0] + m[1] + m[2] }

// DerivTable maps a derivative multi-index to the dense tabulation
// T[basis_function][point] of that derivative over a point set.
type DerivTable map[MultiIndex][][]float64

// ValueGradient pairs a basis function's value at a point with its gradient
// there.
type ValueGradient struct {
	Value    float64
	Gradient []float64
}

// ExpansionSet evaluates a degree-graded orthonormal basis on one reference
// cell. Construction derives the affine map onto the canonical cell once; all
// tabulation calls afterwards are pure and safe to run concurrently.
type ExpansionSet interface {
	// Cell returns the reference cell the set was built on.
	Cell() *reference.Cell
	// GetNumMembers returns the size of the degree-n basis, 0 for negative n.
	GetNumMembers(n int) int
	// Tabulate evaluates the degree-n basis at the given points, returning
	// the values under the zero multi-index.
	Tabulate(n int, pts [][]float64) (DerivTable, error)
	// TabulateDerivatives returns per-basis-function, per-point value and
	// gradient pairs.
	TabulateDerivatives(n int, pts [][]float64) ([][]ValueGradient, error)
	// TabulateJet returns one DerivTable per derivative order 0..order, each
	// holding every partial of that total order.
	TabulateJet(n int, pts [][]float64, order int) ([]DerivTable, error)
}

// UnsupportedShapeError reports a reference cell that is not a simplex of
// dimension 1-3.
type UnsupportedShapeError struct {
	Shape reference.Shape
}

func (e *UnsupportedShapeError) Error() string {
	return fmt.Sprintf("no expansion set for cell shape %v, "+
		"only simplices of dimension <= 3 are supported", e.Shape)
}

// InvalidOrderError reports a derivative order outside [0, MaxJetOrder].
type InvalidOrderError struct {
	Order int
}

func (e *InvalidOrderError) Error() string {
	return fmt.Sprintf("derivative order %d outside the supported range [0, %d]",
		e.Order, MaxJetOrder)
}

// GetExpansionSet selects the expansion set variant for the cell's shape.
func GetExpansionSet(cell *reference.Cell) (ExpansionSet, error) {
	switch cell.Shape() {
	case reference.Line:
		return NewLineExpansionSet(cell)
	case reference.Triangle:
		return NewTriangleExpansionSet(cell)
	case reference.Tetrahedron:
		return NewTetrahedronExpansionSet(cell)
	}
	return nil, &UnsupportedShapeError{Shape: cell.Shape()}
}

// PolynomialDimension returns the dimension of the space of polynomials of
// degree at most degree on the cell. Negative degrees denote the empty space
// and yield 0.
func PolynomialDimension(cell *reference.Cell, degree int) (int, error) {
	if degree < 0 {
		return 0, nil
	}
	switch cell.Shape() {
	case reference.Line:
		return degree + 1, nil
	case reference.Triangle:
		return (degree + 1) * (degree + 2) / 2, nil
	case reference.Tetrahedron:
		return (degree + 1) * (degree + 2) * (degree + 3) / 6, nil
	}
	return 0, &UnsupportedShapeError{Shape: cell.Shape()}
}

// TriIndex is the degree-graded linear position of the triangle basis
// multi-index (p,q). Downstream degree-of-freedom numbering depends on this
// enumeration exactly.
func TriIndex(p, q int) int {
	return (p+q)*(p+q+1)/2 + q
}

// TetIndex is the degree-graded linear position of the tetrahedron basis
// multi-index (p,q,r).
func TetIndex(p, q, r int) int {
	return (p+q+r)*(p+q+r+1)*(p+q+r+2)/6 + (q+r)*(q+r+1)/2 + r
}

func checkPoints(pts [][]float64, dim int) error {
	for i, pt := range pts {
		if len(pt) != dim {
			return fmt.Errorf("point %d has %d coordinates, cell has dimension %d",
				i, len(pt), dim)
		}
	}
	return nil
}
