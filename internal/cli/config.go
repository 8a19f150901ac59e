package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/maxwelljohn/topic-sort/optimize"
)

// geneticConfig is the on-disk shape of a genetic optimizer config file:
//
//	[genetic]
//	population_size = 20
//	generations     = 20
//	mutation_rate   = 0.3
//	elite           = 2
//	seed            = 0
//
// Omitted keys fall through to the optimize defaults.
type geneticConfig struct {
	Genetic struct {
		PopulationSize int     `toml:"population_size"`
		Generations    int     `toml:"generations"`
		MutationRate   float64 `toml:"mutation_rate"`
		Elite          int     `toml:"elite"`
		Seed           int64   `toml:"seed"`
	} `toml:"genetic"`
}

// loadGeneticOptions reads opts from the TOML file at path. An empty path
// selects the zero Options value, i.e. the optimize package defaults.
func loadGeneticOptions(path string) (optimize.Options, error) {
	if path == "" {
		return optimize.Options{}, nil
	}

	var cfg geneticConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return optimize.Options{}, fmt.Errorf("load genetic config %s: %w", path, err)
	}

	return optimize.Options{
		PopulationSize: cfg.Genetic.PopulationSize,
		Generations:    cfg.Genetic.Generations,
		MutationRate:   cfg.Genetic.MutationRate,
		Elite:          cfg.Genetic.Elite,
		Seed:           cfg.Genetic.Seed,
	}, nil
}
