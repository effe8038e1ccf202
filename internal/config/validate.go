package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.URI) == "" {
		return fmt.Errorf("database.uri is required (MONGO_URI)")
	}
	if strings.TrimSpace(c.Database.Name) == "" {
		return fmt.Errorf("database.name must not be empty")
	}
	if c.Database.MinPoolSize > c.Database.MaxPoolSize && c.Database.MaxPoolSize != 0 {
		return fmt.Errorf("database.min_pool_size (%d) exceeds max_pool_size (%d)", c.Database.MinPoolSize, c.Database.MaxPoolSize)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}

	if err := c.Seed.Validate(); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	return nil
}

func (r *RateLimitConfig) validate() error {
	if r.PerMinute < 0 {
		return fmt.Errorf("per_minute must be >= 0 (got %d)", r.PerMinute)
	}
	if r.PerMinute > 0 && r.Burst <= 0 {
		return fmt.Errorf("burst must be > 0 when limiting is enabled (got %d)", r.Burst)
	}
	return nil
}

// Validate checks the seeding policy values.
func (s *SeedConfig) Validate() error {
	if s.BatchSize < 0 {
		return fmt.Errorf("batch_size must be >= 0 (got %d)", s.BatchSize)
	}

	switch strings.ToLower(strings.TrimSpace(s.OnDatasetError)) {
	case "", DatasetErrorSkip:
		s.OnDatasetError = DatasetErrorSkip
	case DatasetErrorRetry:
		s.OnDatasetError = DatasetErrorRetry
	default:
		return fmt.Errorf("on_dataset_error must be %q or %q (got %q)", DatasetErrorSkip, DatasetErrorRetry, s.OnDatasetError)
	}

	return nil
}
