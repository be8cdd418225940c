package expansion

import (
	"errors"
	"testing"

	"github.com/notargets/gosimplex/reference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExpansionSetDispatch(t *testing.T) {
	es, err := GetExpansionSet(reference.DefaultLine())
	require.NoError(t, err)
	assert.IsType(t, &LineExpansionSet{}, es)

	es, err = GetExpansionSet(reference.DefaultTriangle())
	require.NoError(t, err)
	assert.IsType(t, &TriangleExpansionSet{}, es)

	es, err = GetExpansionSet(reference.DefaultTetrahedron())
	require.NoError(t, err)
	assert.IsType(t, &TetrahedronExpansionSet{}, es)

	_, err = GetExpansionSet(&reference.Cell{})
	require.Error(t, err)
	var unsup *UnsupportedShapeError
	assert.True(t, errors.As(err, &unsup))
}

func TestPolynomialDimension(t *testing.T) {
	cases := []struct {
		cell   *reference.Cell
		degree int
		want   int
	}{
		{reference.DefaultLine(), 0, 1},
		{reference.DefaultLine(), 4, 5},
		{reference.DefaultLine(), -1, 0},
		{reference.DefaultTriangle(), 0, 1},
		{reference.DefaultTriangle(), 2, 6},
		{reference.DefaultTriangle(), 8, 45},
		{reference.DefaultTriangle(), -3, 0},
		{reference.DefaultTetrahedron(), 0, 1},
		{reference.DefaultTetrahedron(), 2, 10},
		{reference.DefaultTetrahedron(), 8, 165},
		{reference.DefaultTetrahedron(), -1, 0},
	}
	for _, c := range cases {
		got, err := PolynomialDimension(c.cell, c.degree)
		require.NoError(t, err)
		assert.Equalf(t, c.want, got, "%v degree %d", c.cell.Shape(), c.degree)

		es, err := GetExpansionSet(c.cell)
		require.NoError(t, err)
		assert.Equal(t, c.want, es.GetNumMembers(c.degree))

		tab, err := es.Tabulate(c.degree, c.cell.MakeLattice(2))
		require.NoError(t, err)
		assert.Len(t, tab[MultiIndex{}], c.want)
	}
}

func TestGradedOrdering(t *testing.T) {
	// the triangle enumeration at n=2, fixed for downstream dof numbering
	assert.Equal(t, 0, TriIndex(0, 0))
	assert.Equal(t, 1, TriIndex(1, 0))
	assert.Equal(t, 2, TriIndex(0, 1))
	assert.Equal(t, 3, TriIndex(2, 0))
	assert.Equal(t, 4, TriIndex(1, 1))
	assert.Equal(t, 5, TriIndex(0, 2))

	assert.Equal(t, 0, TetIndex(0, 0, 0))
	assert.Equal(t, 1, TetIndex(1, 0, 0))
	assert.Equal(t, 2, TetIndex(0, 1, 0))
	assert.Equal(t, 3, TetIndex(0, 0, 1))
	assert.Equal(t, 4, TetIndex(2, 0, 0))
	assert.Equal(t, 5, TetIndex(1, 1, 0))
	assert.Equal(t, 6, TetIndex(1, 0, 1))
	assert.Equal(t, 7, TetIndex(0, 2, 0))
	assert.Equal(t, 8, TetIndex(0, 1, 1))
	assert.Equal(t, 9, TetIndex(0, 0, 2))
}

func TestEmptyPointSet(t *testing.T) {
	for _, cell := range []*reference.Cell{
		reference.DefaultLine(), reference.DefaultTriangle(), reference.DefaultTetrahedron(),
	} {
		es, err := GetExpansionSet(cell)
		require.NoError(t, err)
		for n := 0; n <= 3; n++ {
			tab, err := es.Tabulate(n, nil)
			require.NoError(t, err)
			vals := tab[MultiIndex{}]
			assert.Len(t, vals, es.GetNumMembers(n))
			for _, row := range vals {
				assert.Empty(t, row)
			}

			jets, err := es.TabulateJet(n, nil, 1)
			require.NoError(t, err)
			assert.Len(t, jets, 2)

			pairs, err := es.TabulateDerivatives(n, nil)
			require.NoError(t, err)
			assert.Len(t, pairs, es.GetNumMembers(n))
		}
	}
}

func TestNegativeDegree(t *testing.T) {
	for _, cell := range []*reference.Cell{
		reference.DefaultLine(), reference.DefaultTriangle(), reference.DefaultTetrahedron(),
	} {
		es, err := GetExpansionSet(cell)
		require.NoError(t, err)
		assert.Equal(t, 0, es.GetNumMembers(-1))

		tab, err := es.Tabulate(-1, cell.MakeLattice(1))
		require.NoError(t, err)
		assert.Empty(t, tab[MultiIndex{}])

		jets, err := es.TabulateJet(-2, cell.MakeLattice(1), 1)
		require.NoError(t, err)
		assert.Empty(t, jets[0][MultiIndex{}])
	}
}

func TestInvalidOrder(t *testing.T) {
	es, err := GetExpansionSet(reference.DefaultTriangle())
	require.NoError(t, err)
	pts := reference.DefaultTriangle().MakeLattice(1)

	for _, order := range []int{-1, MaxJetOrder + 1} {
		_, err := es.TabulateJet(2, pts, order)
		require.Error(t, err)
		var inv *InvalidOrderError
		assert.True(t, errors.As(err, &inv))
		assert.Equal(t, order, inv.Order)
	}
}

func TestConstructorShapeMismatch(t *testing.T) {
	_, err := NewLineExpansionSet(reference.DefaultTriangle())
	assert.Error(t, err)
	_, err = NewTriangleExpansionSet(reference.DefaultTetrahedron())
	assert.Error(t, err)
	_, err = NewTetrahedronExpansionSet(reference.DefaultLine())
	assert.Error(t, err)
}

func TestDegenerateCellConstruction(t *testing.T) {
	cell, err := reference.NewCell(reference.Triangle,
		[][]float64{{0, 0}, {1, 2}, {2, 4}})
	require.NoError(t, err)

	_, err = GetExpansionSet(cell)
	require.Error(t, err)
	var degen *reference.DegenerateCellError
	assert.True(t, errors.As(err, &degen))
}
