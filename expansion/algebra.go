package expansion

import (
	"github.com/notargets/gosimplex/reference"
)

// arith abstracts the scalar operations the collapsed-coordinate sweeps
// perform, so the identical recurrence code evaluates plain values and
// propagates jets. Implementations must leave their operands untouched.
type arith[T any] interface {
	Const(c float64) T
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Scale(c float64, a T) T
}

type floatArith struct{}

func (floatArith) Const(c float64) float64            { return c }
func (floatArith) Add(a, b float64) float64           { return a + b }
func (floatArith) Sub(a, b float64) float64           { return a - b }
func (floatArith) Mul(a, b float64) float64           { return a * b }
func (floatArith) Scale(c float64, a float64) float64 { return c * a }

// mapThrough applies the affine map x -> A x + B in the sweep's arithmetic,
// so jet coordinates pick up the map's (exact, linear) derivative structure.
func mapThrough[T any](ar arith[T], m *reference.AffineMap, pt []T) []T {
	d := len(m.B)
	out := make([]T, d)
	for i := 0; i < d; i++ {
		acc := ar.Const(m.B[i])
		for j := 0; j < d; j++ {
			acc = ar.Add(acc, ar.Scale(m.A.At(i, j), pt[j]))
		}
		out[i] = acc
	}
	return out
}
