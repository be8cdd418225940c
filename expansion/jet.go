package expansion

// Jet is a truncated multivariate Taylor expansion: the value of a quantity
// together with all of its partial derivatives through Order, stored as
// Taylor coefficients c_alpha = D^alpha f / alpha! in degree-graded order.
// Propagating jets through the expansion recurrences is forward-mode
// differentiation: no expression tree is built or walked.
type Jet struct {
	Dim   int
	Order int
	Coeff []float64
}

// jetLen is the number of Taylor coefficients in dim variables through the
// given order.
func jetLen(dim, order int) int {
	switch dim {
	case 1:
		return order + 1
	case 2:
		return (order + 1) * (order + 2) / 2
	default:
		return (order + 1) * (order + 2) * (order + 3) / 6
	}
}

// jetIndex is the graded position of a Taylor coefficient, sharing the basis
// enumeration formulas.
func jetIndex(dim int, alpha MultiIndex) int {
	switch dim {
	case 1:
		return alpha[0]
	case 2:
		return TriIndex(alpha[0], alpha[1])
	default:
		return TetIndex(alpha[0], alpha[1], alpha[2])
	}
}

// NewJetConstant builds the jet of a constant: all partials vanish.
func NewJetConstant(dim, order int, c float64) *Jet {
	j := &Jet{Dim: dim, Order: order, Coeff: make([]float64, jetLen(dim, order))}
	j.Coeff[0] = c
	return j
}

// NewJetVariable builds the jet of the coordinate variable with index v
// evaluated at x: value x, unit first partial in direction v.
func NewJetVariable(dim, order int, x float64, v int) *Jet {
	j := NewJetConstant(dim, order, x)
	if order >= 1 {
		var e MultiIndex
		e[v] = 1
		j.Coeff[jetIndex(dim, e)] = 1
	}
	return j
}

// Deriv returns the partial derivative D^alpha of the carried quantity.
func (j *Jet) Deriv(alpha MultiIndex) float64 {
	if alpha.Order() > j.Order {
		return 0
	}
	fac := 1.0
	for _, a := range alpha[:j.Dim] {
		for k := 2; k <= a; k++ {
			fac *= float64(k)
		}
	}
	return fac * j.Coeff[jetIndex(j.Dim, alpha)]
}

// Value returns the order-zero coefficient.
func (j *Jet) Value() float64 { return j.Coeff[0] }

// jetArith implements the sweep arithmetic over jets of a fixed dimension and
// order. Addition and scaling act coefficientwise; multiplication is the
// truncated Cauchy product, which encodes the Leibniz rule.
type jetArith struct {
	dim   int
	order int
}

func (ja jetArith) Const(c float64) *Jet {
	return NewJetConstant(ja.dim, ja.order, c)
}

func (ja jetArith) Add(a, b *Jet) *Jet {
	out := &Jet{Dim: ja.dim, Order: ja.order, Coeff: make([]float64, len(a.Coeff))}
	for i, v := range a.Coeff {
		out.Coeff[i] = v + b.Coeff[i]
	}
	return out
}

func (ja jetArith) Sub(a, b *Jet) *Jet {
	out := &Jet{Dim: ja.dim, Order: ja.order, Coeff: make([]float64, len(a.Coeff))}
	for i, v := range a.Coeff {
		out.Coeff[i] = v - b.Coeff[i]
	}
	return out
}

func (ja jetArith) Scale(c float64, a *Jet) *Jet {
	out := &Jet{Dim: ja.dim, Order: ja.order, Coeff: make([]float64, len(a.Coeff))}
	for i, v := range a.Coeff {
		out.Coeff[i] = c * v
	}
	return out
}

func (ja jetArith) Mul(a, b *Jet) *Jet {
	out := &Jet{Dim: ja.dim, Order: ja.order, Coeff: make([]float64, len(a.Coeff))}
	ja.eachIndex(func(gamma MultiIndex) {
		var sum float64
		for a0 := 0; a0 <= gamma[0]; a0++ {
			for a1 := 0; a1 <= gamma[1]; a1++ {
				for a2 := 0; a2 <= gamma[2]; a2++ {
					alpha := MultiIndex{a0, a1, a2}
					rest := MultiIndex{gamma[0] - a0, gamma[1] - a1, gamma[2] - a2}
					sum += a.Coeff[jetIndex(ja.dim, alpha)] * b.Coeff[jetIndex(ja.dim, rest)]
				}
			}
		}
		out.Coeff[jetIndex(ja.dim, gamma)] = sum
	})
	return out
}

// eachIndex visits every multi-index with total order <= ja.order in the
// jet's dimension.
func (ja jetArith) eachIndex(f func(MultiIndex)) {
	for g0 := 0; g0 <= ja.order; g0++ {
		maxG1 := 0
		if ja.dim >= 2 {
			maxG1 = ja.order - g0
		}
		for g1 := 0; g1 <= maxG1; g1++ {
			maxG2 := 0
			if ja.dim >= 3 {
				maxG2 = ja.order - g0 - g1
			}
			for g2 := 0; g2 <= maxG2; g2++ {
				f(MultiIndex{g0, g1, g2})
			}
		}
	}
}
