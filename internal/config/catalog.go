package config

import (
	"fmt"
	"os"

	"github.com/povarna/algo-drills/internal/models"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigPath     = "configs/problems.yaml"
	defaultMaxInputLength = 100_000
)

func LoadCatalogConfig() (*CatalogConfig, error) {
	path := os.Getenv("DRILLS_CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg CatalogConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default enables every known problem with default limits. The CLI falls
// back to it when no config file is around.
func Default() *CatalogConfig {
	cfg := &CatalogConfig{}
	for _, p := range models.Problems {
		cfg.Problems = append(cfg.Problems, ProblemConfig{Name: string(p), Enabled: true})
	}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *CatalogConfig) {
	for i := range cfg.Problems {
		p := &cfg.Problems[i]
		if p.MaxInputLength == 0 {
			p.MaxInputLength = defaultMaxInputLength
		}
		if p.Tokenize == "" {
			p.Tokenize = string(models.TokenizeRune)
		}
	}
}

func (c *CatalogConfig) Validate() error {
	if len(c.Problems) == 0 {
		return fmt.Errorf("no problems configured")
	}

	names := make(map[string]bool)
	for i, p := range c.Problems {
		if p.Name == "" {
			return fmt.Errorf("problem %d: missing name", i)
		}
		if !models.Problem(p.Name).Valid() {
			return fmt.Errorf("problem %d: unknown problem %q", i, p.Name)
		}
		if names[p.Name] {
			return fmt.Errorf("duplicate problem name %q", p.Name)
		}
		names[p.Name] = true

		if p.MaxInputLength < 0 {
			return fmt.Errorf("problem %s: negative max_input_length %d", p.Name, p.MaxInputLength)
		}
		if !models.Tokenize(p.Tokenize).Valid() {
			return fmt.Errorf("problem %s: invalid tokenize mode %q", p.Name, p.Tokenize)
		}
	}

	return nil
}

// Lookup returns the configuration of a problem, if present.
func (c *CatalogConfig) Lookup(name models.Problem) (ProblemConfig, bool) {
	for _, p := range c.Problems {
		if p.Name == string(name) {
			return p, true
		}
	}
	return ProblemConfig{}, false
}
