package config

import (
	"github.com/caarlos0/env/v10"
)

type Config struct {
	Port          string `env:"REWARDS_SERVICE_PORT" envDefault:"5000"`
	DatabaseURL   string `env:"POSTGRES_URL,required"`
	NatsURL       string `env:"NATS_URL"`
	ServiceSecret string `env:"SERVICE_SECRET,required"`
	RateLimit     int    `env:"RATE_LIMIT" envDefault:"120"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
