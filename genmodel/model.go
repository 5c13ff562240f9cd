package genmodel

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/hhcho/episim/freq"
	"github.com/hhcho/episim/rng"
)

// NumStates is the number of joint genotype-pair states for two biallelic
// loci.
const NumStates = 9

// Model is a retrospective generative model: phenotypes are assigned first,
// then genotype pairs are sampled from the Bayes posterior conditioned on
// each individual's phenotype.
type Model interface {
	// GeneratePhenotype returns one phenotype value per individual. Binary
	// models use the labels 0 and 1.
	GeneratePhenotype(ds *DatasetParams, r *rng.Random) []float64

	// GenerateGenotype samples a genotype-pair state per individual
	// conditioned on that individual's phenotype and returns the per-locus
	// dose sequences.
	GenerateGenotype(ds *DatasetParams, phenotype []float64, r *rng.Random) (snp1, snp2 []int)

	IsBinary() bool
}

// BinomialParams wraps the penetrance matrix P(case | genotype pair),
// row-major over the 3x3 genotype grid.
type BinomialParams struct {
	Penetrance []float64
}

// NormalParams wraps the per-state phenotype means and standard deviations.
type NormalParams struct {
	Mu  []float64
	Std []float64
}

// BinomialModel is the case/control model: a fixed-ascertainment phenotype
// vector and posterior genotype sampling driven by a penetrance matrix.
type BinomialModel struct {
	Params BinomialParams
}

func NewBinomialModel(penetrance []float64) *BinomialModel {
	return &BinomialModel{Params: BinomialParams{Penetrance: penetrance}}
}

// GeneratePhenotype returns numCases ones followed by numControls zeros. The
// case/control split is fixed by ascertainment, not drawn.
func (m *BinomialModel) GeneratePhenotype(ds *DatasetParams, _ *rng.Random) []float64 {
	pheno := make([]float64, ds.NumSamples())
	for i := 0; i < ds.NumCases(); i++ {
		pheno[i] = 1
	}
	return pheno
}

// JointProb returns the posterior P(genotype pair | label) over the nine
// states: the joint frequencies weighted by penetrance (label 1) or its
// complement (label 0), normalized to sum to 1. An all-zero product is not
// guarded and yields NaN entries.
func (m *BinomialModel) JointProb(jf *freq.Table, penetrance []float64, label int) []float64 {
	post := make([]float64, NumStates)
	sum := 0.0
	for i, f := range jf.Flat() {
		p := penetrance[i]
		if label == 0 {
			p = 1 - p
		}
		post[i] = p * f
		sum += post[i]
	}
	for i := range post {
		post[i] /= sum
	}
	return post
}

// GenerateGenotype computes the case and control posteriors once from the
// current joint-frequency table, then draws one state per individual from
// the posterior matching its label.
func (m *BinomialModel) GenerateGenotype(ds *DatasetParams, phenotype []float64, r *rng.Random) ([]int, []int) {
	jf := ds.JointFreq(r)
	drawCase := r.CategoricalSampler(m.JointProb(jf, m.Params.Penetrance, 1))
	drawCtrl := r.CategoricalSampler(m.JointProb(jf, m.Params.Penetrance, 0))

	snp1 := make([]int, len(phenotype))
	snp2 := make([]int, len(phenotype))
	for i, ph := range phenotype {
		var state int
		if ph == 1 {
			state = drawCase()
		} else {
			state = drawCtrl()
		}
		snp1[i], snp2[i] = state/3, state%3
	}
	return snp1, snp2
}

func (m *BinomialModel) IsBinary() bool {
	return true
}

// NormalModel is the continuous model: phenotypes are drawn from a Gaussian
// moment-matched to the nine-state mixture, and genotypes from a posterior
// weighted by per-state Gaussian densities.
type NormalModel struct {
	Params NormalParams

	// popFreq is the linkage-equilibrium table used for moment matching.
	popFreq *freq.Table
}

func NewNormalModel(mu, std []float64, maf [2]float64) *NormalModel {
	return &NormalModel{
		Params:  NormalParams{Mu: mu, Std: std},
		popFreq: freq.Joint(maf[0], maf[1]),
	}
}

// GeneratePhenotype draws the cohort from a single Gaussian whose mean and
// variance moment-match the nine-state mixture. The mixture itself is
// deliberately not sampled; detection benchmarks are calibrated against this
// marginal.
func (m *NormalModel) GeneratePhenotype(ds *DatasetParams, r *rng.Random) []float64 {
	var mean, mean2, var2 float64
	for i, f := range m.popFreq.Flat() {
		mean += m.Params.Mu[i] * f
		mean2 += m.Params.Mu[i] * m.Params.Mu[i] * f
		var2 += m.Params.Std[i] * m.Params.Std[i] * f
	}
	total := math.Sqrt(mean2 - mean*mean + var2)

	pheno := make([]float64, ds.NumSamples())
	for i := range pheno {
		pheno[i] = r.Normal(mean, total)
	}
	return pheno
}

// JointProb returns the posterior over the nine states given one continuous
// phenotype value: the joint frequencies weighted by each state's Gaussian
// density at that value, normalized to sum to 1.
func (m *NormalModel) JointProb(mu, std []float64, jf *freq.Table, pheno float64) []float64 {
	post := make([]float64, NumStates)
	sum := 0.0
	for i, f := range jf.Flat() {
		d := distuv.Normal{Mu: mu[i], Sigma: std[i]}
		post[i] = d.Prob(pheno) * f
		sum += post[i]
	}
	for i := range post {
		post[i] /= sum
	}
	return post
}

// GenerateGenotype recomputes the posterior per individual, since the
// density weights depend on that individual's phenotype value.
func (m *NormalModel) GenerateGenotype(ds *DatasetParams, phenotype []float64, r *rng.Random) ([]int, []int) {
	jf := ds.JointFreq(r)
	snp1 := make([]int, len(phenotype))
	snp2 := make([]int, len(phenotype))
	for i, ph := range phenotype {
		state := r.Categorical(m.JointProb(m.Params.Mu, m.Params.Std, jf, ph))
		snp1[i], snp2[i] = state/3, state%3
	}
	return snp1, snp2
}

func (m *NormalModel) IsBinary() bool {
	return false
}
