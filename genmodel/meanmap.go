package genmodel

// MissingGenotype is the dose value marking a missing or invalid call.
const MissingGenotype = 3

// MeanMap maps a genotype pair to an expected phenotype value. The second
// return is false when the mapping is undefined for the input; callers must
// filter such individuals before use, so an undefined mean can never be
// mistaken for a valid zero.
type MeanMap interface {
	Mean(variants []int) (float64, bool)
}

// LookupMeanMap indexes a flat nine-entry mean table by 3*snp1 + snp2.
type LookupMeanMap struct {
	Mu []float64
}

func (m *LookupMeanMap) Mean(variants []int) (float64, bool) {
	if len(variants) != 2 || hasMissing(variants) {
		return 0, false
	}
	return m.Mu[3*variants[0]+variants[1]], true
}

// AdditiveMeanMap applies a link to beta0 + sum(v_i * beta_i). The input
// must have one dose per coefficient.
type AdditiveMeanMap struct {
	Beta0 float64
	Beta  []float64
	Link  LinkFunc
}

func (m *AdditiveMeanMap) Mean(variants []int) (float64, bool) {
	if len(variants) != len(m.Beta) || hasMissing(variants) {
		return 0, false
	}
	eta := m.Beta0
	for i, v := range variants {
		eta += float64(v) * m.Beta[i]
	}
	return m.Link(eta), true
}

func hasMissing(variants []int) bool {
	for _, v := range variants {
		if v == MissingGenotype {
			return true
		}
	}
	return false
}
