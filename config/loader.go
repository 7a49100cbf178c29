package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, an optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if DILEMMA_CONFIG is set
//  3. env (prefix DILEMMA_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("DILEMMA_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Map env keys like DILEMMA_MIN_ROUNDS -> min_rounds (flat keys),
	// preserving underscores to match the koanf tags on the struct.
	envProvider := env.Provider("DILEMMA_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "dilemma_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if cfg.Workers < 1 {
		return nil, fmt.Errorf("%w: workers must be at least 1", ErrInvalidConfig)
	}
	if cfg.MinRounds < 1 || cfg.MaxRounds < cfg.MinRounds {
		return nil, fmt.Errorf("%w: rounds range [%d, %d] is not a valid positive range",
			ErrInvalidConfig, cfg.MinRounds, cfg.MaxRounds)
	}
	return &cfg, nil
}
