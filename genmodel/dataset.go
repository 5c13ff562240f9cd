// Package genmodel implements the generative models behind synthetic
// two-locus epistasis datasets: retrospective (case/control) models that
// sample genotypes conditioned on an assigned phenotype, and prospective
// generators that sample a phenotype forward from a genotype pair.
package genmodel

import (
	"github.com/hhcho/episim/freq"
	"github.com/hhcho/episim/rng"
)

// DatasetParams holds the sample-size and allele-frequency configuration for
// one simulated dataset. Set once, read-only afterwards.
type DatasetParams struct {
	mafBounds   [2]float64
	ld          *float64
	numCases    int
	numControls int
	sampleMaf   bool
}

// InitDatasetParams builds the parameter context. With sampleMaf off,
// mafBounds holds the exact marginal frequencies of the two loci; with it
// on, mafBounds is the range marginals are drawn from. ld, when non-nil, is
// the linkage disequilibrium strength (the second marginal is then ignored).
func InitDatasetParams(mafBounds [2]float64, ld *float64, numCases, numControls int, sampleMaf bool) *DatasetParams {
	return &DatasetParams{
		mafBounds:   mafBounds,
		ld:          ld,
		numCases:    numCases,
		numControls: numControls,
		sampleMaf:   sampleMaf,
	}
}

// JointFreq returns the joint genotype-pair frequency table. With MAF
// sampling off the table is fully determined by the configuration and may be
// cached by the caller. With sampling on, two fresh marginals are drawn
// uniformly within the bounds on every call, so callers must re-invoke per
// use and must not cache across individuals.
func (p *DatasetParams) JointFreq(r *rng.Random) *freq.Table {
	if !p.sampleMaf {
		return p.joint(p.mafBounds[0], p.mafBounds[1])
	}
	m1 := r.Uniform(p.mafBounds[0], p.mafBounds[1])
	m2 := r.Uniform(p.mafBounds[0], p.mafBounds[1])
	return p.joint(m1, m2)
}

func (p *DatasetParams) joint(m1, m2 float64) *freq.Table {
	if p.ld != nil {
		return freq.JointLD(m1, *p.ld)
	}
	return freq.Joint(m1, m2)
}

// NumSamples returns the total cohort size.
func (p *DatasetParams) NumSamples() int {
	return p.numCases + p.numControls
}

func (p *DatasetParams) NumCases() int {
	return p.numCases
}

func (p *DatasetParams) NumControls() int {
	return p.numControls
}
