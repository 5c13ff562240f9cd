package genmodel

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hhcho/episim/freq"
	"github.com/hhcho/episim/rng"
)

func TestBinomialPhenotypeOrder(t *testing.T) {
	ds := InitDatasetParams([2]float64{0.2, 0.2}, nil, 3, 2, false)
	m := NewBinomialModel(make([]float64, NumStates))

	pheno := m.GeneratePhenotype(ds, rng.New())
	require.Equal(t, []float64{1, 1, 1, 0, 0}, pheno)
}

func TestBinomialJointProbSumsToOne(t *testing.T) {
	pen := []float64{0.1, 0.2, 0.3, 0.2, 0.5, 0.2, 0.3, 0.2, 0.9}
	m := NewBinomialModel(pen)
	jf := freq.Joint(0.2, 0.4)

	for _, label := range []int{0, 1} {
		post := m.JointProb(jf, pen, label)
		sum := 0.0
		for _, p := range post {
			require.GreaterOrEqual(t, p, 0.0)
			sum += p
		}
		require.InDelta(t, 1.0, sum, 1e-12)
	}
}

func TestBinomialPosteriorBayes(t *testing.T) {
	// Uniform joint frequencies and a penetrance of 0.5 for one state and
	// 0.25 for the rest give that state twice the posterior mass of any
	// other among cases.
	flat := make([]float64, NumStates)
	pen := make([]float64, NumStates)
	for i := range flat {
		flat[i] = 1.0 / NumStates
		pen[i] = 0.25
	}
	pen[4] = 0.5

	m := NewBinomialModel(pen)
	post := m.JointProb(freq.NewTable(flat), pen, 1)
	require.InDelta(t, 0.2, post[4], 1e-12)
	require.InDelta(t, 0.1, post[0], 1e-12)
}

func TestBinomialGenotypeConvergesToPosterior(t *testing.T) {
	pen := []float64{0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.01, 0.9}
	maf := [2]float64{0.5, 0.5}
	const n = 40000

	ds := InitDatasetParams(maf, nil, n, 0, false)
	m := NewBinomialModel(pen)
	r := rng.NewSeeded([]byte("bayes-convergence"))

	pheno := m.GeneratePhenotype(ds, r)
	snp1, snp2 := m.GenerateGenotype(ds, pheno, r)
	require.Len(t, snp1, n)
	require.Len(t, snp2, n)

	counts := make([]float64, NumStates)
	for i := range snp1 {
		require.GreaterOrEqual(t, snp1[i], 0)
		require.LessOrEqual(t, snp1[i], 2)
		require.GreaterOrEqual(t, snp2[i], 0)
		require.LessOrEqual(t, snp2[i], 2)
		counts[3*snp1[i]+snp2[i]]++
	}

	want := m.JointProb(freq.Joint(maf[0], maf[1]), pen, 1)
	for i := range want {
		require.InDelta(t, want[i], counts[i]/n, 0.015)
	}
}

func TestNormalJointProbSumsToOne(t *testing.T) {
	mu := make([]float64, NumStates)
	std := make([]float64, NumStates)
	for i := range mu {
		mu[i] = float64(i)
		std[i] = 1
	}
	m := NewNormalModel(mu, std, [2]float64{0.3, 0.3})
	jf := freq.Joint(0.3, 0.3)

	for _, pheno := range []float64{-1, 0, 2.5, 8} {
		post := m.JointProb(mu, std, jf, pheno)
		sum := 0.0
		for _, p := range post {
			require.GreaterOrEqual(t, p, 0.0)
			sum += p
		}
		require.InDelta(t, 1.0, sum, 1e-12)
	}
}

func TestNormalPhenotypeMomentMatch(t *testing.T) {
	// State mean 3*s1+s2 with maf 0.5 gives an analytic mixture mean of 4
	// and variance 6 (per-state variance 1 included).
	mu := make([]float64, NumStates)
	std := make([]float64, NumStates)
	for i := range mu {
		mu[i] = float64(i)
		std[i] = 1
	}
	m := NewNormalModel(mu, std, [2]float64{0.5, 0.5})
	ds := InitDatasetParams([2]float64{0.5, 0.5}, nil, 20000, 0, false)

	pheno := m.GeneratePhenotype(ds, rng.NewSeeded([]byte("moments")))
	require.Len(t, pheno, 20000)

	var sum, sum2 float64
	for _, x := range pheno {
		sum += x
		sum2 += x * x
	}
	n := float64(len(pheno))
	mean := sum / n
	variance := sum2/n - mean*mean

	require.InDelta(t, 4.0, mean, 0.1)
	require.InDelta(t, 6.0, variance, 0.3)
}

func TestNormalGenotypeFollowsPhenotype(t *testing.T) {
	// Widely separated state means make the posterior at a state's own mean
	// effectively degenerate on that state.
	mu := make([]float64, NumStates)
	std := make([]float64, NumStates)
	for i := range mu {
		mu[i] = float64(i) * 50
		std[i] = 1
	}
	m := NewNormalModel(mu, std, [2]float64{0.5, 0.5})
	ds := InitDatasetParams([2]float64{0.5, 0.5}, nil, 200, 0, false)
	r := rng.NewSeeded([]byte("normal-posterior"))

	pheno := make([]float64, 200)
	for i := range pheno {
		pheno[i] = 400 // mean of state (2, 2)
	}
	snp1, snp2 := m.GenerateGenotype(ds, pheno, r)
	for i := range snp1 {
		require.Equal(t, 2, snp1[i])
		require.Equal(t, 2, snp2[i])
	}
}

func TestIsBinary(t *testing.T) {
	require.True(t, NewBinomialModel(make([]float64, NumStates)).IsBinary())
	require.False(t, NewNormalModel(make([]float64, NumStates), make([]float64, NumStates), [2]float64{0.2, 0.2}).IsBinary())
}

func TestSelectModel(t *testing.T) {
	mu := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8}

	m, err := SelectModel("binomial", mu, 0, [2]float64{0.2, 0.2})
	require.NoError(t, err)
	bin, ok := m.(*BinomialModel)
	require.True(t, ok)
	require.Equal(t, mu, bin.Params.Penetrance)

	m, err = SelectModel("normal", mu, 1.5, [2]float64{0.2, 0.2})
	require.NoError(t, err)
	norm, ok := m.(*NormalModel)
	require.True(t, ok)
	require.Len(t, norm.Params.Std, NumStates)
	for _, s := range norm.Params.Std {
		require.Equal(t, 1.5, s)
	}

	_, err = SelectModel("poisson", mu, 0, [2]float64{0.2, 0.2})
	require.ErrorIs(t, err, ErrInvalidModel)
}
