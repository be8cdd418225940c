package utils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix wraps a gonum dense matrix with the chainable helpers the expansion
// tabulation code uses. Methods that produce a new matrix never modify the
// receiver.
type Matrix struct {
	M *mat.Dense
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v",
				nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{m}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)    { return m.M.Dims() }
func (m Matrix) At(i, j int) float64 { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix       { return m.M.T() }

func (m Matrix) Set(i, j int, val float64) { m.M.Set(i, j, val) }

func (m Matrix) SetCol(j int, data []float64) Matrix {
	m.M.SetCol(j, data)
	return m
}

func (m Matrix) SetRow(i int, data []float64) Matrix {
	m.M.SetRow(i, data)
	return m
}

func (m Matrix) Row(i int) Vector {
	var (
		_, nc = m.Dims()
		data  = make([]float64, nc)
	)
	for j := range data {
		data[j] = m.M.At(i, j)
	}
	return NewVector(nc, data)
}

func (m Matrix) Col(j int) Vector {
	var (
		nr, _ = m.Dims()
		data  = make([]float64, nr)
	)
	for i := range data {
		data[i] = m.M.At(i, j)
	}
	return NewVector(nr, data)
}

func (m Matrix) Copy() (R Matrix) {
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nr, nc)
	R.M.CloneFrom(m.M)
	return
}

func (m Matrix) Transpose() (R Matrix) {
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nc, nr)
	for j := 0; j < nc; j++ {
		for i := 0; i < nr; i++ {
			R.M.Set(j, i, m.M.At(i, j))
		}
	}
	return
}

func (m Matrix) Scale(a float64) Matrix {
	m.M.Scale(a, m.M)
	return m
}

func (m Matrix) Mul(A Matrix) (R Matrix) {
	var (
		nrM, _ = m.Dims()
		_, ncA = A.Dims()
	)
	R = NewMatrix(nrM, ncA)
	R.M.Mul(m.M, A.M)
	return
}

func (m Matrix) Inverse() (R Matrix, err error) {
	var (
		nr, nc = m.Dims()
	)
	if nr != nc {
		err = fmt.Errorf("cannot invert a %dx%d non-square matrix", nr, nc)
		return
	}
	R = NewMatrix(nr, nc)
	if err = R.M.Inverse(m.M); err != nil {
		err = fmt.Errorf("unable to invert, matrix is singular: %w", err)
	}
	return
}

// Solve returns X satisfying m * X = B.
func (m Matrix) Solve(B Matrix) (X Matrix, err error) {
	var (
		_, nc  = m.Dims()
		_, ncB = B.Dims()
	)
	X = NewMatrix(nc, ncB)
	if err = X.M.Solve(m.M, B.M); err != nil {
		err = fmt.Errorf("unable to solve, matrix is singular: %w", err)
	}
	return
}

func (m Matrix) Det() float64 {
	return mat.Det(m.M)
}
