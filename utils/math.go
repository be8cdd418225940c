package utils

// POW computes an integer power without the cost of math.Pow.
func POW(x float64, pp int) (y float64) {
	y = 1
	for i := 0; i < pp; i++ {
		y *= x
	}
	return
}

func ConstArray(val float64, n int) (v []float64) {
	v = make([]float64, n)
	for i := range v {
		v[i] = val
	}
	return
}
