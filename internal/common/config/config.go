package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Version is reported by the health endpoint and the swagger doc.
const Version = "2.3.3"

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"8000"`
		Origin string `env:"ORIGIN" envDefault:"*"`
	}

	// Directory the frontend build is served from.
	StaticDir string `env:"STATIC_DIR" envDefault:"./static"`

	Redis struct {
		// Empty addr disables the place-metadata cache entirely.
		Addr     string `env:"REDIS_ADDR" envDefault:""`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`

		// TTL in seconds for cached place metadata.
		PlaceTTL int `env:"REDIS_PLACE_TTL" envDefault:"300"`
	}
}

func Load() *Config {
	// .env is optional; in production the environment is set directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}

	return cfg
}
