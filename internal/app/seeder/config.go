package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/lenasun/kebab-api/internal/config"
)

// LoadConfig reads seeding settings for the offline seeder command from a
// YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*config.SeedConfig, error) {
	var cfg config.SeedConfig

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("seeder config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("seeder config: %w", err)
	}

	return &cfg, nil
}
