package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all runtime settings, loaded once at startup.
type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=30m"`

	// AuthStrategy selects the identity scheme: "local" keeps password
	// hashes in the employees collection, "delegated" hands verification to
	// the external provider below. Exactly one is wired per deployment.
	AuthStrategy string `env:"AUTH_STRATEGY, default=local"`

	Provider ProviderConfig
	Mongo    MongoConfig
	Redis    RedisConfig
}

type ProviderConfig struct {
	URL    string `env:"AUTH_PROVIDER_URL"`
	APIKey string `env:"AUTH_PROVIDER_KEY"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=realestate_crm"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
