package config

import (
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port int `env:"PORT" envDefault:"8080"`
		// Origin is the public frontend origin; used for CORS and share links.
		Origin string `env:"ORIGIN" envDefault:"http://localhost:3000"`
	}

	Redis struct {
		Host     string `env:"REDIS_HOST" envDefault:"localhost"`
		Port     int    `env:"REDIS_PORT" envDefault:"6379"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	// DocStore is the remote document store holding profiles and projects.
	DocStore struct {
		BaseURL string        `env:"DOCSTORE_URL,required"`
		Timeout time.Duration `env:"DOCSTORE_TIMEOUT" envDefault:"10s"`
	}

	Upload struct {
		URL      string `env:"UPLOAD_URL,required"`
		MaxBytes int64  `env:"UPLOAD_MAX_BYTES" envDefault:"5242880"`
	}

	Auth struct {
		// SessionSecret verifies session tokens issued by the identity provider.
		SessionSecret string `env:"SESSION_JWT_SECRET,required"`
	}

	Cache struct {
		ProfileTTL time.Duration `env:"PROFILE_CACHE_TTL" envDefault:"5m"`
	}
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		// Ignore a missing .env file; in production the variables
		// are set directly in the environment.
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}

	return cfg
}
