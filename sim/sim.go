package sim

import (
	"time"

	"go.dedis.ch/onet/v3/log"

	"github.com/hhcho/episim/genmodel"
	"github.com/hhcho/episim/rng"
)

// PairResult holds one simulated interaction pair: the per-locus dose
// sequences and the phenotype vector, one entry per individual.
type PairResult struct {
	Snp1  []int
	Snp2  []int
	Pheno []float64
}

// GeneratePairs simulates NumPairs independent interaction pairs
// retrospectively: the phenotype vector is assigned first, then genotypes
// are sampled conditioned on it. Results are in-memory only; serialization
// is up to the caller.
func GeneratePairs(config *Config, r *rng.Random) ([]PairResult, error) {
	model, err := config.SelectModel()
	if err != nil {
		return nil, err
	}
	ds := config.DatasetParams()

	start := time.Now()
	out := make([]PairResult, config.NumPairs)
	for i := range out {
		pheno := model.GeneratePhenotype(ds, r)
		snp1, snp2 := model.GenerateGenotype(ds, pheno, r)
		out[i] = PairResult{Snp1: snp1, Snp2: snp2, Pheno: pheno}
	}
	log.LLvl1(time.Now().Format(time.StampMilli), "generated", config.NumPairs, "pairs in", time.Since(start).String())
	return out, nil
}

// GenerateProspective samples one phenotype per genotype row through the
// given generator. The mask marks rows whose mean map was defined; callers
// must filter the rest.
func GenerateProspective(gen genmodel.PhenoGenerator, variants [][]int, r *rng.Random) ([]float64, []bool) {
	pheno := make([]float64, len(variants))
	defined := make([]bool, len(variants))
	for i, v := range variants {
		pheno[i], defined[i] = gen.GeneratePheno(v, r)
	}
	return pheno, defined
}
