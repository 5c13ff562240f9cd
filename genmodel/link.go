package genmodel

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// LinkFunc is a monotone transform applied to the linear predictor of an
// additive mean map.
type LinkFunc func(float64) float64

var ErrInvalidLink = errors.New("genmodel: invalid link")

// links maps each name to the inverse of the named link, applied to the
// linear predictor (GLM convention: a "log" link means mu = exp(eta)). The
// mapping is kept exactly as-is; model files in circulation depend on it.
var links = map[string]LinkFunc{
	"identity": func(x float64) float64 { return x },
	"log":      math.Exp,
	"exp":      math.Log,
	"logc":     func(x float64) float64 { return 1 - math.Exp(x) },
	"odds":     func(x float64) float64 { return x / (1 + x) },
	"logodds":  func(x float64) float64 { return 1 / (1 + math.Exp(-x)) },
}

// LinkNames returns the supported link names, sorted.
func LinkNames() []string {
	names := make([]string, 0, len(links))
	for name := range links {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetLink resolves a link name, or fails with ErrInvalidLink.
func GetLink(name string) (LinkFunc, error) {
	lf, ok := links[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLink, name)
	}
	return lf, nil
}
