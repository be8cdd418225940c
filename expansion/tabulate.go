package expansion

import (
	"github.com/notargets/gosimplex/reference"
)

// tabulateValues runs the float instantiation of a sweep over a point set and
// packs the result under the zero multi-index. nb = 0 (negative degree) or an
// empty point set yields empty arrays without invoking the sweep.
func tabulateValues(mp *reference.AffineMap, dim, nb int, pts [][]float64,
	sweep func(ar arith[float64], x []float64) []float64) DerivTable {
	vals := make([][]float64, nb)
	for i := range vals {
		vals[i] = make([]float64, len(pts))
	}
	if nb > 0 {
		fa := floatArith{}
		for j, pt := range pts {
			phi := sweep(fa, mapThrough[float64](fa, mp, pt))
			for i, v := range phi {
				vals[i][j] = v
			}
		}
	}
	return DerivTable{MultiIndex{}: vals}
}

// tabulateJets seeds each point's coordinates as jet variables, runs the jet
// instantiation of the sweep once, and unpacks every partial through the
// requested order into per-order tables.
func tabulateJets(mp *reference.AffineMap, dim, nb int, pts [][]float64, order int,
	sweep func(ar arith[*Jet], x []*Jet) []*Jet) ([]DerivTable, error) {
	if order < 0 || order > MaxJetOrder {
		return nil, &InvalidOrderError{Order: order}
	}
	ja := jetArith{dim: dim, order: order}
	out := make([]DerivTable, order+1)
	for r := range out {
		out[r] = DerivTable{}
	}
	ja.eachIndex(func(alpha MultiIndex) {
		t := make([][]float64, nb)
		for i := range t {
			t[i] = make([]float64, len(pts))
		}
		out[alpha.Order()][alpha] = t
	})
	if nb > 0 {
		for j, pt := range pts {
			seed := make([]*Jet, dim)
			for v := 0; v < dim; v++ {
				seed[v] = NewJetVariable(dim, order, pt[v], v)
			}
			phi := sweep(ja, mapThrough[*Jet](ja, mp, seed))
			for i, f := range phi {
				ja.eachIndex(func(alpha MultiIndex) {
					out[alpha.Order()][alpha][i][j] = f.Deriv(alpha)
				})
			}
		}
	}
	return out, nil
}

// derivativePairs repacks an order-1 jet tabulation into per-basis, per-point
// value and gradient pairs.
func derivativePairs(dim, nb int, pts [][]float64, jets []DerivTable) [][]ValueGradient {
	vals := jets[0][MultiIndex{}]
	data := make([][]ValueGradient, nb)
	for i := 0; i < nb; i++ {
		data[i] = make([]ValueGradient, len(pts))
		for j := range pts {
			g := make([]float64, dim)
			for v := 0; v < dim; v++ {
				var e MultiIndex
				e[v] = 1
				g[v] = jets[1][e][i][j]
			}
			data[i][j] = ValueGradient{Value: vals[i][j], Gradient: g}
		}
	}
	return data
}
