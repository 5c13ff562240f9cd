package rng

import (
	"encoding/binary"

	"github.com/aead/chacha20/chacha"
	"github.com/hhcho/frand"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	bufferSize int = 1024
	rounds     int = 20
)

// Random is an explicit pseudo-random stream handle. Every generative call
// in this module takes one as an argument; there is no package-level shared
// stream. Independent handles give independent streams, so parallel workers
// can each carry their own.
type Random struct {
	prg *frand.RNG
}

// New returns a stream with an all-zero seed. Deterministic, intended for
// debugging and tests.
func New() *Random {
	seed := make([]byte, chacha.KeySize)
	return &Random{prg: frand.NewCustom(seed, bufferSize, rounds)}
}

// NewSeeded returns a stream keyed by seed, copied or zero-padded to
// chacha.KeySize bytes.
func NewSeeded(seed []byte) *Random {
	key := make([]byte, chacha.KeySize)
	copy(key, seed)
	return &Random{prg: frand.NewCustom(key, bufferSize, rounds)}
}

// Source adapts the stream to rand.Source so it can drive gonum
// distributions.
func (r *Random) Source() rand.Source {
	return source{prg: r.prg}
}

func (r *Random) Float64() float64 {
	return r.prg.Float64()
}

func (r *Random) Intn(n int) int {
	return r.prg.Intn(n)
}

// Uniform draws uniformly from [min, max).
func (r *Random) Uniform(min, max float64) float64 {
	return distuv.Uniform{Min: min, Max: max, Src: r.Source()}.Rand()
}

// Normal draws from N(mu, sigma^2).
func (r *Random) Normal(mu, sigma float64) float64 {
	return distuv.Normal{Mu: mu, Sigma: sigma, Src: r.Source()}.Rand()
}

// Categorical draws one outcome index from the given weight vector. Weights
// need not be normalized.
func (r *Random) Categorical(weights []float64) int {
	return int(distuv.NewCategorical(weights, r.Source()).Rand())
}

// CategoricalSampler returns a reusable sampler over a fixed weight vector,
// for loops that draw from the same distribution many times.
func (r *Random) CategoricalSampler(weights []float64) func() int {
	cat := distuv.NewCategorical(weights, r.Source())
	return func() int { return int(cat.Rand()) }
}

// Export serializes the current stream state.
func (r *Random) Export() []byte {
	return r.prg.Marshal()
}

// Restore replaces the stream with a previously exported state.
func (r *Random) Restore(buf []byte) {
	r.prg = frand.Unmarshal(buf, bufferSize)
}

type source struct {
	prg *frand.RNG
}

func (s source) Uint64() uint64 {
	var buf [8]byte
	s.prg.Read(buf[:])
	return binary.LittleEndian.Uint64(buf[:])
}

// Seed is a no-op; streams are keyed at construction.
func (s source) Seed(uint64) {}
