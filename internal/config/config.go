package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server     ServerConfig
	TLS        TLSConfig
	Database   DatabaseConfig
	Metrics    MetricsConfig
	Logging    LoggingConfig
	Auth       AuthConfig
	RateLimit  RateLimitConfig
	Pprof      PprofConfig
	Validation ValidationConfig
}

type ServerConfig struct {
	Host           string `env:"SERVER_HOST" envDefault:"localhost"`
	Port           int    `env:"SERVER_PORT" envDefault:"3000"`
	MaxConnections int    `env:"SERVER_MAX_CONNECTIONS" envDefault:"0"`
}

type TLSConfig struct {
	Enabled  bool   `env:"TLS_ENABLED" envDefault:"false"`
	Port     int    `env:"TLS_PORT" envDefault:"3443"`
	CertFile string `env:"TLS_CERT_FILE"`
	KeyFile  string `env:"TLS_KEY_FILE"`
}

// DatabaseConfig selects the backing store. An empty URL keeps everything in memory.
type DatabaseConfig struct {
	URL      string `env:"DATABASE_URL"`
	MaxConns int32  `env:"DATABASE_MAX_CONNS" envDefault:"10"`
}

type MetricsConfig struct {
	Enabled    bool          `env:"METRICS_ENABLED" envDefault:"true"`
	URL        string        `env:"METRICS_URL"`
	APIKey     string        `env:"METRICS_API_KEY"`
	Interval   time.Duration `env:"METRICS_INTERVAL" envDefault:"5s"`
	Timeout    time.Duration `env:"METRICS_TIMEOUT" envDefault:"3s"`
	MaxRetries uint          `env:"METRICS_MAX_RETRIES" envDefault:"0"`
	Prometheus bool          `env:"METRICS_PROMETHEUS_ENABLED" envDefault:"true"`
}

type LoggingConfig struct {
	Enabled    bool          `env:"LOGGING_ENABLED" envDefault:"true"`
	URL        string        `env:"LOGGING_URL"`
	APIKey     string        `env:"LOGGING_API_KEY"`
	Source     string        `env:"LOGGING_SOURCE" envDefault:"jwt-pizza-service"`
	Timeout    time.Duration `env:"LOGGING_TIMEOUT" envDefault:"3s"`
	Workers    int           `env:"LOGGING_WORKERS" envDefault:"2"`
	BufferSize int           `env:"LOGGING_BUFFER_SIZE" envDefault:"1024"`
	Level      string        `env:"LOG_LEVEL" envDefault:"info"` // local stdout logger only
}

type AuthConfig struct {
	SessionTTL           time.Duration `env:"AUTH_SESSION_TTL" envDefault:"24h"`
	SessionCacheSizePow2 int           `env:"AUTH_SESSION_CACHE_SIZE_POW2" envDefault:"20"`
	BcryptCost           int           `env:"AUTH_BCRYPT_COST" envDefault:"10"`
}

type RateLimitConfig struct {
	RPS           float64 `env:"RATE_LIMIT_RPS" envDefault:"50"`
	Burst         int     `env:"RATE_LIMIT_BURST" envDefault:"100"`
	ExpireMinutes int     `env:"RATE_LIMIT_EXPIRE_MINUTES" envDefault:"3"`
	BypassSecret  string  `env:"RATE_LIMIT_BYPASS_SECRET"`
}

type PprofConfig struct {
	Enabled bool   `env:"PPROF_ENABLED" envDefault:"false"`
	Secret  string `env:"PPROF_SECRET"`
}

type ValidationConfig struct {
	MaxRequestBodySize string `env:"MAX_REQUEST_BODY_SIZE" envDefault:"64K"`
	MaxOrderItems      int    `env:"MAX_ORDER_ITEMS" envDefault:"50"`
	MinPasswordLength  int    `env:"MIN_PASSWORD_LENGTH" envDefault:"1"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
