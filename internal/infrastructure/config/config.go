package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds every recognized runtime option. All security material
// (signing secret, CSRF secret, password pepper) is required: a missing
// value is a fatal startup error, never a per-request failure.
type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWT   JWTConfig
	CSRF  CSRFConfig
	Auth  AuthConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type JWTConfig struct {
	Secret           string `env:"JWT_SECRET, required"`
	Issuer           string `env:"JWT_ISSUER, default=portfolio-site.com"`
	Algorithm        string `env:"JWT_ALGORITHM, default=HS256"`
	ExpireMinutes    int    `env:"JWT_EXPIRE_MINUTES,     default=30"`
	NotBeforeSeconds int    `env:"JWT_NOT_BEFORE_SECONDS, default=10"`
}

// Lifetime returns the configured token lifetime.
func (c JWTConfig) Lifetime() time.Duration {
	return time.Duration(c.ExpireMinutes) * time.Minute
}

// Skew returns the configured not-before clock-skew tolerance.
func (c JWTConfig) Skew() time.Duration {
	return time.Duration(c.NotBeforeSeconds) * time.Second
}

type CSRFConfig struct {
	Secret     string `env:"CSRF_SECRET, required"`
	HeaderName string `env:"CSRF_HEADER,     default=X-CSRF-Token"`
	TokenType  string `env:"CSRF_TOKEN_TYPE, default=Csrf"`
}

type AuthConfig struct {
	// Pepper is mixed into every password hash; it is process-wide and
	// distinct from the per-credential salt.
	Pepper string `env:"PASSWORD_PEPPER, required"`
	// BcryptCost is the hashing work factor; 0 selects the bcrypt default.
	BcryptCost int `env:"BCRYPT_COST, default=0"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=portfolio_site"`
}

type RedisConfig struct {
	Addr           string        `env:"REDIS_ADDR, default=localhost:6379"`
	DB             int           `env:"REDIS_DB,   default=0"`
	PublicCacheTTL time.Duration `env:"PUBLIC_CACHE_TTL, default=5m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	return &cfg, nil
}
