package traffic

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	BaseURL            string        `env:"BASE_URL" envDefault:"http://localhost:3000"`
	Rate               int           `env:"RATE" envDefault:"20"`
	Duration           time.Duration `env:"DURATION" envDefault:"1m"`
	Mode               string        `env:"TRAFFIC_MODE" envDefault:"mixed"`
	Diners             int           `env:"DINERS" envDefault:"20"`
	OrderRatio         float64       `env:"ORDER_RATIO" envDefault:"0.3"`
	LoginRatio         float64       `env:"LOGIN_RATIO" envDefault:"0.2"`
	BadLoginRatio      float64       `env:"BAD_LOGIN_RATIO" envDefault:"0.25"`
	RateLimitBypass    string        `env:"RATE_LIMIT_BYPASS_SECRET"`
	InsecureSkipVerify bool          `env:"INSECURE_SKIP_VERIFY" envDefault:"false"`
	SeedTimeout        time.Duration `env:"SEED_TIMEOUT" envDefault:"30s"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
