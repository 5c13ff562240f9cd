package genmodel

import (
	"errors"
	"fmt"
)

var ErrInvalidModel = errors.New("genmodel: invalid model")

// ModelNames lists the supported model keys.
func ModelNames() []string {
	return []string{"normal", "binomial"}
}

// SelectModel builds the retrospective model for the given key. For the
// normal model mu holds the nine state means and std the standard deviation
// shared by all states; for the binomial model mu holds the penetrance
// matrix and std and maf are unused.
func SelectModel(name string, mu []float64, std float64, maf [2]float64) (Model, error) {
	switch name {
	case "normal":
		stds := make([]float64, NumStates)
		for i := range stds {
			stds[i] = std
		}
		return NewNormalModel(mu, stds, maf), nil
	case "binomial":
		return NewBinomialModel(mu), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidModel, name)
	}
}

// SelectPhenoGenerator builds the prospective generator for the given key.
// dispersion applies only to the normal generator.
func SelectPhenoGenerator(name string, muMap MeanMap, dispersion float64) (PhenoGenerator, error) {
	switch name {
	case "normal":
		return &NormalPhenoGenerator{MuMap: muMap, Dispersion: dispersion}, nil
	case "binomial":
		return &BinomialPhenoGenerator{MuMap: muMap}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidModel, name)
	}
}
