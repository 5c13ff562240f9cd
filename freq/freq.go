// Package freq derives joint genotype-pair frequency tables for two
// biallelic loci from marginal minor allele frequencies, with or without
// linkage disequilibrium.
package freq

import (
	"gonum.org/v1/gonum/mat"
)

// NumStates is the number of genotype states per locus (0, 1 or 2 copies of
// the minor allele).
const NumStates = 3

// Table is a 3x3 joint frequency table over genotype pairs, indexed by
// minor-allele dose at each locus. Entries sum to 1.
type Table struct {
	m *mat.Dense
}

// NewTable builds a table from a row-major 9-entry vector.
func NewTable(flat []float64) *Table {
	if len(flat) != NumStates*NumStates {
		panic("freq: table needs 9 entries")
	}
	data := make([]float64, len(flat))
	copy(data, flat)
	return &Table{m: mat.NewDense(NumStates, NumStates, data)}
}

// At returns the joint frequency of dose s1 at the first locus and s2 at the
// second.
func (t *Table) At(s1, s2 int) float64 {
	return t.m.At(s1, s2)
}

// Flat returns the table as a row-major 9-entry vector.
func (t *Table) Flat() []float64 {
	out := make([]float64, 0, NumStates*NumStates)
	for i := 0; i < NumStates; i++ {
		for j := 0; j < NumStates; j++ {
			out = append(out, t.m.At(i, j))
		}
	}
	return out
}

// Sum returns the total mass of the table, 1 up to rounding.
func (t *Table) Sum() float64 {
	return mat.Sum(t.m)
}

// Marginal returns the genotype distribution of one locus (0 or 1).
func (t *Table) Marginal(locus int) [NumStates]float64 {
	var out [NumStates]float64
	for i := 0; i < NumStates; i++ {
		for j := 0; j < NumStates; j++ {
			if locus == 0 {
				out[i] += t.m.At(i, j)
			} else {
				out[i] += t.m.At(j, i)
			}
		}
	}
	return out
}

// MAF recovers the marginal minor allele frequency of one locus from the
// genotype distribution.
func (t *Table) MAF(locus int) float64 {
	g := t.Marginal(locus)
	return 0.5*g[1] + g[2]
}

// HWE expands a minor allele frequency into the Hardy-Weinberg genotype
// distribution ((1-m)^2, 2m(1-m), m^2).
func HWE(maf float64) [NumStates]float64 {
	p := 1 - maf
	return [NumStates]float64{p * p, 2 * p * maf, maf * maf}
}

// Joint returns the joint table for two loci in linkage equilibrium: the
// outer product of the two Hardy-Weinberg distributions.
func Joint(maf1, maf2 float64) *Table {
	g1 := HWE(maf1)
	g2 := HWE(maf2)
	m := mat.NewDense(NumStates, NumStates, nil)
	m.Outer(1, mat.NewVecDense(NumStates, g1[:]), mat.NewVecDense(NumStates, g2[:]))
	return &Table{m: m}
}

// JointLD returns the joint table for two loci in linkage disequilibrium of
// strength ld in [0, 1], with ld scaling the maximal disequilibrium
// coefficient (D = ld * Dmax). Both loci share the same marginal frequency;
// the second marginal is ignored when LD is requested.
func JointLD(maf, ld float64) *Table {
	p := 1 - maf
	d := ld * maf * p

	// Haplotype frequencies indexed by minor-allele count at each locus.
	h := [2][2]float64{
		{p*p + d, p*maf - d},
		{maf*p - d, maf*maf + d},
	}

	// A genotype pair is the sum of two independent haplotype draws.
	m := mat.NewDense(NumStates, NumStates, nil)
	for a1 := 0; a1 < 2; a1++ {
		for b1 := 0; b1 < 2; b1++ {
			for a2 := 0; a2 < 2; a2++ {
				for b2 := 0; b2 < 2; b2++ {
					s1, s2 := a1+a2, b1+b2
					m.Set(s1, s2, m.At(s1, s2)+h[a1][b1]*h[a2][b2])
				}
			}
		}
	}
	return &Table{m: m}
}
