package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Seed      SeedConfig      `yaml:"seed"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"https://lenasun.me,http://localhost:3001,http://localhost:3000"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds MongoDB connection settings.
type DatabaseConfig struct {
	URI            string        `yaml:"uri"             env:"MONGO_URI"                env-required:"true"`
	Name           string        `yaml:"name"            env:"DB_NAME"                  env-default:"kebabDB"`
	MaxPoolSize    uint64        `yaml:"max_pool_size"   env:"DATABASE_MAX_POOL_SIZE"   env-default:"25"`
	MinPoolSize    uint64        `yaml:"min_pool_size"   env:"DATABASE_MIN_POOL_SIZE"   env-default:"0"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"DATABASE_CONNECT_TIMEOUT" env-default:"10s"`
	MaxConnIdle    time.Duration `yaml:"max_conn_idle"   env:"DATABASE_MAX_CONN_IDLE"   env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request limits. A zero PerMinute disables limiting.
type RateLimitConfig struct {
	PerMinute       int           `yaml:"per_minute"       env:"RATE_LIMIT_PER_MINUTE"       env-default:"120"`
	Burst           int           `yaml:"burst"            env:"RATE_LIMIT_BURST"            env-default:"20"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// Dataset error policies for SeedConfig.OnDatasetError.
const (
	DatasetErrorSkip  = "skip"
	DatasetErrorRetry = "retry"
)

// SeedConfig holds first-run seeding settings.
type SeedConfig struct {
	DatasetPath    string `yaml:"dataset_path"     env:"SEED_DATASET_PATH"     env-default:"track_data_final.csv"`
	BatchSize      int    `yaml:"batch_size"       env:"SEED_BATCH_SIZE"       env-default:"0"`
	OnDatasetError string `yaml:"on_dataset_error" env:"SEED_ON_DATASET_ERROR" env-default:"skip"`
	DryRun         bool   `yaml:"dry_run"          env:"SEED_DRY_RUN"`
}
