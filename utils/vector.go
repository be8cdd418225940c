package utils

import (
	"gonum.org/v1/gonum/mat"
)

// Vector wraps a gonum column vector. DataP aliases the backing store for
// fast-path loops, mirroring the raw access pattern used throughout the
// tabulation code.
type Vector struct {
	V     *mat.VecDense
	DataP []float64
}

func NewVector(n int, dataO ...[]float64) (R Vector) {
	var data []float64
	if len(dataO) != 0 {
		data = dataO[0]
	} else {
		data = make([]float64, n)
	}
	R = Vector{
		V:     mat.NewVecDense(n, data),
		DataP: data,
	}
	return
}

func (v Vector) Len() int             { return v.V.Len() }
func (v Vector) AtVec(i int) float64  { return v.V.AtVec(i) }
func (v Vector) RawVector() []float64 { return v.DataP }

func (v Vector) Copy() Vector {
	data := make([]float64, v.Len())
	copy(data, v.DataP)
	return NewVector(v.Len(), data)
}

// Chainable methods, modifying the receiver in place.
func (v Vector) Scale(a float64) Vector {
	for i, val := range v.DataP {
		v.DataP[i] = val * a
	}
	return v
}

func (v Vector) Set(a float64) Vector {
	for i := range v.DataP {
		v.DataP[i] = a
	}
	return v
}

func (v Vector) Apply(f func(float64) float64) Vector {
	for i, val := range v.DataP {
		v.DataP[i] = f(val)
	}
	return v
}
