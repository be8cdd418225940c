package expansion

import (
	"testing"

	"github.com/notargets/gosimplex/reference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVandermondeInvertible(t *testing.T) {
	// The degree-3 basis against the order-3 lattice of the canonical
	// triangle is the standard nodal construction; the resulting 10x10
	// matrix must be well conditioned enough to invert cleanly.
	const tol = 1e-10
	cell := reference.DefaultTriangle()
	es, err := GetExpansionSet(cell)
	require.NoError(t, err)

	pts := cell.MakeLattice(3)
	require.Len(t, pts, 10)

	V, err := Vandermonde(es, 3, pts)
	require.NoError(t, err)
	nr, nc := V.Dims()
	require.Equal(t, 10, nr)
	require.Equal(t, 10, nc)

	Vinv, err := V.Inverse()
	require.NoError(t, err)
	I := V.Mul(Vinv)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			assert.InDelta(t, want, I.At(i, j), tol)
		}
	}
}

func TestVandermondeFirstColumnConstant(t *testing.T) {
	// phi_0 is the constant sqrt(1/area) mode, so the first column is the
	// same at every lattice point.
	cell := reference.DefaultTetrahedron()
	es, err := GetExpansionSet(cell)
	require.NoError(t, err)

	pts := cell.MakeLattice(2)
	V, err := Vandermonde(es, 2, pts)
	require.NoError(t, err)
	nr, _ := V.Dims()
	for i := 1; i < nr; i++ {
		assert.InDelta(t, V.At(0, 0), V.At(i, 0), 1e-14)
	}
}

func TestVandermondeRejectsBadInput(t *testing.T) {
	es, err := GetExpansionSet(reference.DefaultLine())
	require.NoError(t, err)
	_, err = Vandermonde(es, -1, [][]float64{{0}})
	assert.Error(t, err)
	_, err = Vandermonde(es, 2, nil)
	assert.Error(t, err)
}
