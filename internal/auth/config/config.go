package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config holds all configuration for the auth module.
//
// The admin identity is not a stored entity. It is this credential pair,
// compared by exact match at login.
type Config struct {
	// MongoDB Configuration
	MongoDBURI   string `env:"MONGODB_URI,required"`
	DatabaseName string `env:"DATABASE_NAME" envDefault:"emile_auto"`

	// Admin credentials
	AdminEmail    string `env:"ADMIN_EMAIL,required"`
	AdminPassword string `env:"ADMIN_PASSWORD,required"`

	// JWT Configuration
	JWTSecretKey string        `env:"JWT_SECRET_KEY,required"`
	JWTIssuer    string        `env:"JWT_ISSUER" envDefault:"emile-auto-api"`
	TokenTTL     time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	// When true, mutating car and notification routes require a bearer
	// token. The original deployment issued tokens but never checked them
	// on CRUD requests, so this defaults to off.
	ProtectWrites bool `env:"AUTH_PROTECT_WRITES" envDefault:"false"`
}

// LoadConfig loads configuration from environment variables and applies defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.New("failed to load configuration from environment: " + err.Error() +
			". Please ensure all required environment variables are set.")
	}

	if cfg.TokenTTL <= 0 {
		return nil, errors.New("token_ttl must be positive")
	}

	return cfg, nil
}
