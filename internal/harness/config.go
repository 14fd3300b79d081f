package harness

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvConfig      = "KMPBENCH_CONFIG"
	EnvSeed        = "KMPBENCH_SEED"
	EnvRepetitions = "KMPBENCH_REPETITIONS"
)

// Config holds all settings of a benchmark run.
type Config struct {
	// Seed for the input generator. Zero means seed from the clock.
	Seed        int64        `yaml:"seed"`
	Repetitions int          `yaml:"repetitions"`
	Cases       []Case       `yaml:"cases"`
	Experiments []Experiment `yaml:"experiments"`
	Format      string       `yaml:"format"`
}

// DefaultConfig returns the default size table: six sizes from 1 KB to
// 1 MB of text, 20 repetitions, all cases.
func DefaultConfig() *Config {
	return &Config{
		Repetitions: 20,
		Cases:       append([]Case(nil), AllCases...),
		Experiments: []Experiment{
			{TextLen: 1000, PatternLen: 10},
			{TextLen: 10000, PatternLen: 20},
			{TextLen: 50000, PatternLen: 30},
			{TextLen: 100000, PatternLen: 50},
			{TextLen: 500000, PatternLen: 75},
			{TextLen: 1000000, PatternLen: 100},
		},
		Format: "text",
	}
}

// Load builds a Config from defaults, the YAML file at path (or the file
// named by KMPBENCH_CONFIG when path is empty), and the environment.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func loadFromFile(cfg *Config, path string) error {
	// #nosec G304 - the path is supplied by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func loadFromEnv(cfg *Config) error {
	if s := os.Getenv(EnvSeed); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}
	if s := os.Getenv(EnvRepetitions); s != "" {
		reps, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvRepetitions, err)
		}
		cfg.Repetitions = reps
	}
	return nil
}

// Validate checks that the configuration describes a runnable benchmark.
func (c *Config) Validate() error {
	if c.Repetitions < 1 {
		return errors.New("repetitions must be at least 1")
	}
	if len(c.Cases) == 0 {
		return errors.New("at least one case is required")
	}
	if len(c.Experiments) == 0 {
		return errors.New("at least one experiment is required")
	}
	for i, e := range c.Experiments {
		if e.TextLen < 1 || e.PatternLen < 1 {
			return fmt.Errorf("experiments[%d]: text and pattern must be positive", i)
		}
	}
	switch c.Format {
	case "", "text", "yaml":
	default:
		return fmt.Errorf("format must be text or yaml, got %q", c.Format)
	}
	return nil
}
