package genmodel

import (
	"gonum.org/v1/gonum/mat"
)

// designMatrix encodes an intercept, four main-effect terms and four
// two-way interaction terms over the 3x3 genotype grid, one row per
// genotype-pair state in row-major order.
var designMatrix = mat.NewDense(NumStates, NumStates, []float64{
	1, 0, 0, 0, 0, 0, 0, 0, 0,
	1, 1, 0, 0, 0, 0, 0, 0, 0,
	1, 0, 1, 0, 0, 0, 0, 0, 0,
	1, 0, 0, 1, 0, 0, 0, 0, 0,
	1, 1, 0, 1, 0, 1, 0, 0, 0,
	1, 0, 1, 1, 0, 0, 1, 0, 0,
	1, 0, 0, 0, 1, 0, 0, 0, 0,
	1, 1, 0, 0, 1, 0, 0, 1, 0,
	1, 0, 1, 0, 1, 0, 0, 0, 1,
})

// MeanValues expands a nine-coefficient regression vector into the nine
// link-transformed per-state means.
func MeanValues(beta []float64, link LinkFunc) []float64 {
	var eta mat.VecDense
	eta.MulVec(designMatrix, mat.NewVecDense(NumStates, beta))

	mu := make([]float64, NumStates)
	for i := range mu {
		mu[i] = link(eta.AtVec(i))
	}
	return mu
}
