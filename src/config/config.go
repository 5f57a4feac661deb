// Package config loads and validates the simulation configuration.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"predprey/src/sim"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Duration wraps time.Duration so interval values can be written in the
// usual "500ms" / "1s" form.
type Duration time.Duration

// UnmarshalYAML parses a duration literal.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML renders the duration in its literal form.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Species holds the economy constants for one species.
type Species struct {
	CostOfLiving int `yaml:"cost_of_living"`
	BirthCost    int `yaml:"birth_cost"`
	Nutrition    int `yaml:"nutrition"`
}

// SimConfig converts to the engine's configuration type.
func (s Species) SimConfig() sim.SpeciesConfig {
	return sim.SpeciesConfig{
		CostOfLiving: sim.EnergyFromInt(s.CostOfLiving),
		BirthCost:    sim.EnergyFromInt(s.BirthCost),
		Nutrition:    sim.EnergyFromInt(s.Nutrition),
	}
}

// Config holds all simulation parameters.
type Config struct {
	Width         int      `yaml:"width"`
	Height        int      `yaml:"height"`
	InitialEnergy int      `yaml:"initial_energy"`
	Interval      Duration `yaml:"interval"`
	MaxDays       int      `yaml:"max_days"`
	Fox           Species  `yaml:"fox"`
	Rabbit        Species  `yaml:"rabbit"`
}

// Default returns the embedded default configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		// The defaults ship inside the binary; failing to parse them is a
		// build defect, not a runtime condition.
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load returns the defaults overlaid with the YAML file at path.
// An empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the engine cannot run with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.InitialEnergy <= 0 {
		return fmt.Errorf("initial_energy must be positive, got %d", c.InitialEnergy)
	}
	if c.MaxDays < 0 {
		return fmt.Errorf("max_days must not be negative, got %d", c.MaxDays)
	}
	for _, s := range []struct {
		name string
		sp   Species
	}{{"fox", c.Fox}, {"rabbit", c.Rabbit}} {
		if s.sp.CostOfLiving <= 0 {
			return fmt.Errorf("%s cost_of_living must be positive, got %d", s.name, s.sp.CostOfLiving)
		}
		if s.sp.BirthCost <= 0 {
			return fmt.Errorf("%s birth_cost must be positive, got %d", s.name, s.sp.BirthCost)
		}
		if s.sp.Nutrition <= 0 {
			return fmt.Errorf("%s nutrition must be positive, got %d", s.name, s.sp.Nutrition)
		}
	}
	return nil
}
