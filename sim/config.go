package sim

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/hhcho/episim/genmodel"
)

// Config describes one simulation run: the outcome model, its parameters and
// the cohort layout. Mu holds the penetrance matrix for the binomial model
// and the per-state means for the normal model, row-major over the 3x3
// genotype grid either way.
type Config struct {
	Model string `toml:"model"`

	Mu  []float64 `toml:"mu"`
	Std float64   `toml:"std"`

	Maf       []float64 `toml:"maf"`
	SampleMaf bool      `toml:"sample_maf"`
	Ld        float64   `toml:"ld"`
	UseLd     bool      `toml:"use_ld"`

	NumCases    int `toml:"num_cases"`
	NumControls int `toml:"num_controls"`
	NumPairs    int `toml:"num_pairs"`
}

// LoadConfig decodes a TOML configuration file.
func LoadConfig(path string) (*Config, error) {
	config := new(Config)
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the vector shapes the library itself relies on. Range
// checking of individual values is left to the caller.
func (c *Config) Validate() error {
	if len(c.Mu) != genmodel.NumStates {
		return fmt.Errorf("sim: mu needs %d entries, got %d", genmodel.NumStates, len(c.Mu))
	}
	if len(c.Maf) != 2 {
		return fmt.Errorf("sim: maf needs 2 entries, got %d", len(c.Maf))
	}
	if c.NumCases < 0 || c.NumControls < 0 {
		return fmt.Errorf("sim: sample counts must be non-negative")
	}
	return nil
}

// DatasetParams builds the dataset parameter context for this run.
func (c *Config) DatasetParams() *genmodel.DatasetParams {
	var ld *float64
	if c.UseLd {
		v := c.Ld
		ld = &v
	}
	return genmodel.InitDatasetParams(
		[2]float64{c.Maf[0], c.Maf[1]}, ld, c.NumCases, c.NumControls, c.SampleMaf)
}

// SelectModel builds the retrospective model for this run.
func (c *Config) SelectModel() (genmodel.Model, error) {
	return genmodel.SelectModel(c.Model, c.Mu, c.Std, [2]float64{c.Maf[0], c.Maf[1]})
}
