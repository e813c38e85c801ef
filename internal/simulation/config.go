package simulation

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config holds the simulation parameters, loadable from an HCL file.
type Config struct {
	Simulation SimulationSettings `hcl:"simulation,block"`
}

// SimulationSettings contains the tunable knobs of a run.
type SimulationSettings struct {
	Players int   `hcl:"players,optional"`
	Trials  int   `hcl:"trials,optional"`
	Workers int   `hcl:"workers,optional"`
	Seed    int64 `hcl:"seed,optional"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Simulation: SimulationSettings{
			Players: 6,
			Trials:  100000,
		},
	}
}

// LoadConfig loads simulation configuration from an HCL file. A missing
// file yields the defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if config.Simulation.Players == 0 {
		config.Simulation.Players = 6
	}
	if config.Simulation.Trials == 0 {
		config.Simulation.Trials = 100000
	}

	return &config, nil
}

// Validate rejects parameter combinations the simulator cannot run.
func (c *Config) Validate() error {
	s := c.Simulation
	if s.Players < 2 || s.Players > MaxPlayers {
		return fmt.Errorf("players must be between 2 and %d, got %d", MaxPlayers, s.Players)
	}
	if s.Trials <= 0 {
		return fmt.Errorf("trials must be positive, got %d", s.Trials)
	}
	if s.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", s.Workers)
	}
	return nil
}
