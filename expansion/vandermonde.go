package expansion

import (
	"fmt"

	"github.com/notargets/gosimplex/utils"
)

// Vandermonde assembles the generalized Vandermonde matrix
// V[i][j] = phi_j(pt_i) for the degree-n basis, the form downstream element
// construction inverts against nodal values.
func Vandermonde(es ExpansionSet, n int, pts [][]float64) (V utils.Matrix, err error) {
	if n < 0 || len(pts) == 0 {
		err = fmt.Errorf("vandermonde matrix needs a non-negative degree and points, got n=%d, %d points",
			n, len(pts))
		return
	}
	tab, err := es.Tabulate(n, pts)
	if err != nil {
		return
	}
	vals := tab[MultiIndex{}]
	V = utils.NewMatrix(len(pts), es.GetNumMembers(n))
	for j, row := range vals {
		for i, v := range row {
			V.Set(i, j, v)
		}
	}
	return
}
