package genmodel

import (
	"github.com/hhcho/episim/rng"
)

// PhenoGenerator samples a phenotype forward from a genotype pair through a
// mean map (prospective design). The second return is false when the mean
// map is undefined for the input.
type PhenoGenerator interface {
	GeneratePheno(variants []int, r *rng.Random) (float64, bool)
}

// BinomialPhenoGenerator draws a case/control label with the mapped mean as
// the case probability.
type BinomialPhenoGenerator struct {
	MuMap MeanMap
}

func (g *BinomialPhenoGenerator) GeneratePheno(variants []int, r *rng.Random) (float64, bool) {
	mu, ok := g.MuMap.Mean(variants)
	if !ok {
		return 0, false
	}
	if r.Float64() <= mu {
		return 1, true
	}
	return 0, true
}

// NormalPhenoGenerator draws around the mapped mean with a fixed dispersion.
type NormalPhenoGenerator struct {
	MuMap      MeanMap
	Dispersion float64
}

func (g *NormalPhenoGenerator) GeneratePheno(variants []int, r *rng.Random) (float64, bool) {
	mu, ok := g.MuMap.Mean(variants)
	if !ok {
		return 0, false
	}
	return r.Normal(mu, g.Dispersion), true
}
