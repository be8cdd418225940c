// Package reference defines the simplicial reference cells the expansion
// bases are tabulated on, together with the affine mapping onto the canonical
// bi-unit domains that anchors orthonormality.
package reference

import (
	"fmt"
)

type Shape int

const (
	Line Shape = iota + 1
	Triangle
	Tetrahedron
)

func (s Shape) String() string {
	switch s {
	case Line:
		return "line"
	case Triangle:
		return "triangle"
	case Tetrahedron:
		return "tetrahedron"
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

// SpatialDimension returns the dimension of the simplex, or 0 for an
// unsupported shape.
func (s Shape) SpatialDimension() int {
	switch s {
	case Line:
		return 1
	case Triangle:
		return 2
	case Tetrahedron:
		return 3
	}
	return 0
}

// Cell is an immutable geometric simplex of dimension 1-3. Vertices are held
// in a fixed order; the first vertex anchors the affine map onto the
// canonical cell.
type Cell struct {
	shape    Shape
	vertices [][]float64
}

// NewCell builds a simplex from dim+1 vertices of dim coordinates each.
func NewCell(shape Shape, vertices [][]float64) (*Cell, error) {
	d := shape.SpatialDimension()
	if d == 0 {
		return nil, fmt.Errorf("unsupported cell shape %v", shape)
	}
	if len(vertices) != d+1 {
		return nil, fmt.Errorf("%v cell needs %d vertices, got %d", shape, d+1, len(vertices))
	}
	vc := make([][]float64, len(vertices))
	for i, v := range vertices {
		if len(v) != d {
			return nil, fmt.Errorf("%v cell vertex %d has %d coordinates, want %d",
				shape, i, len(v), d)
		}
		vc[i] = append([]float64(nil), v...)
	}
	return &Cell{shape: shape, vertices: vc}, nil
}

// DefaultLine is the canonical bi-unit interval [-1,1].
func DefaultLine() *Cell {
	return &Cell{shape: Line, vertices: [][]float64{{-1}, {1}}}
}

// DefaultTriangle is the canonical bi-unit triangle with vertices
// (-1,-1), (1,-1), (-1,1).
func DefaultTriangle() *Cell {
	return &Cell{shape: Triangle, vertices: [][]float64{{-1, -1}, {1, -1}, {-1, 1}}}
}

// DefaultTetrahedron is the canonical bi-unit tetrahedron with vertices
// (-1,-1,-1), (1,-1,-1), (-1,1,-1), (-1,-1,1).
func DefaultTetrahedron() *Cell {
	return &Cell{shape: Tetrahedron, vertices: [][]float64{
		{-1, -1, -1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1}}}
}

// DefaultCell returns the canonical cell for the given shape.
func DefaultCell(shape Shape) *Cell {
	switch shape {
	case Line:
		return DefaultLine()
	case Triangle:
		return DefaultTriangle()
	case Tetrahedron:
		return DefaultTetrahedron()
	}
	return nil
}

func (c *Cell) Shape() Shape          { return c.shape }
func (c *Cell) SpatialDimension() int { return c.shape.SpatialDimension() }

// Vertices returns a copy of the vertex coordinates.
func (c *Cell) Vertices() [][]float64 {
	out := make([][]float64, len(c.vertices))
	for i, v := range c.vertices {
		out[i] = append([]float64(nil), v...)
	}
	return out
}

// MakeLattice returns the closed equispaced lattice of order n on the cell:
// the points v0 + sum_k (i_k/n)(v_k - v0) over multi-indices with
// sum i_k <= n, including the vertices. n = 0 yields the centroid.
func (c *Cell) MakeLattice(n int) [][]float64 {
	var (
		d   = c.SpatialDimension()
		v0  = c.vertices[0]
		pts [][]float64
	)
	if n <= 0 {
		centroid := make([]float64, d)
		for _, v := range c.vertices {
			for k := 0; k < d; k++ {
				centroid[k] += v[k] / float64(d+1)
			}
		}
		return [][]float64{centroid}
	}
	emit := func(bary []int) {
		pt := make([]float64, d)
		copy(pt, v0)
		for k, ik := range bary {
			t := float64(ik) / float64(n)
			for m := 0; m < d; m++ {
				pt[m] += t * (c.vertices[k+1][m] - v0[m])
			}
		}
		pts = append(pts, pt)
	}
	switch d {
	case 1:
		for i := 0; i <= n; i++ {
			emit([]int{i})
		}
	case 2:
		for j := 0; j <= n; j++ {
			for i := 0; i <= n-j; i++ {
				emit([]int{i, j})
			}
		}
	case 3:
		for k := 0; k <= n; k++ {
			for j := 0; j <= n-k; j++ {
				for i := 0; i <= n-j-k; i++ {
					emit([]int{i, j, k})
				}
			}
		}
	}
	return pts
}
