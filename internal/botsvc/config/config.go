package config

import (
	"github.com/caarlos0/env/v10"
)

type Config struct {
	BotToken        string `env:"BOT_TOKEN,required"`
	AdminID         int64  `env:"ADMIN_ID,required"`
	AdminUsername   string `env:"ADMIN_USERNAME" envDefault:"@admin"`
	ChannelUsername string `env:"CHANNEL_USERNAME"`
	APIBaseURL      string `env:"API_BASE_URL" envDefault:"http://localhost:5000/api"`
	NatsURL         string `env:"NATS_URL"`
	ServiceSecret   string `env:"SERVICE_SECRET,required"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
