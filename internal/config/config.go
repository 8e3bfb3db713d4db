package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config contains server configuration parameters.
type Config struct {
	Port         string        `env:"PORT" envDefault:"3000"`
	MongoURI     string        `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
	DatabaseName string        `env:"DATABASE_NAME" envDefault:"learningDB"`
	JWTSecret    string        `env:"JWT_SECRET" envDefault:"devsecret"`
	TokenTTL     time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	Origins      []string      `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`
	Timeout      time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
}

// Load reads .env if present, then parses configuration from the environment.
func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
