package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// minSecretLength is the enforced minimum entropy for the JWT signing key.
// A shorter key is a fatal configuration error: the service refuses to start
// rather than issue weakly-signed tokens.
const minSecretLength = 32

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// AuthStore selects the credential store: "mongo" (default) or
	// "static", an immutable in-memory snapshot built from SeedUsers.
	AuthStore string `env:"AUTH_STORE, default=mongo"`

	// SeedUsers bootstraps the credential store. Format:
	//   username:password:role|role,username:password:role
	// Passwords are hashed before they reach any store.
	SeedUsers string `env:"SEED_USERS"`

	JWT   JWTConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type JWTConfig struct {
	Secret   string        `env:"JWT_SECRET"`
	Issuer   string        `env:"JWT_ISSUER,   default=walks-api"`
	Audience string        `env:"JWT_AUDIENCE, default=walks-api-clients"`
	TTL      time.Duration `env:"JWT_TTL,      default=15m"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=walks"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR,      default=localhost:6379"`
	DB       int           `env:"REDIS_DB,        default=0"`
	CacheTTL time.Duration `env:"REDIS_CACHE_TTL, default=5m"`
	// Disabled turns off the resource cache entirely.
	Disabled bool `env:"REDIS_DISABLED, default=false"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// Validate enforces the startup invariants. Any failure here is fatal; the
// process must not serve traffic with incomplete auth configuration.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("config: JWT_SECRET is required")
	}
	if len(c.JWT.Secret) < minSecretLength {
		return fmt.Errorf("config: JWT_SECRET must be at least %d bytes", minSecretLength)
	}
	if c.JWT.Issuer == "" || c.JWT.Audience == "" {
		return errors.New("config: JWT_ISSUER and JWT_AUDIENCE are required")
	}
	if c.JWT.TTL <= 0 {
		return errors.New("config: JWT_TTL must be positive")
	}
	if c.AuthStore != "mongo" && c.AuthStore != "static" {
		return fmt.Errorf("config: unknown AUTH_STORE %q", c.AuthStore)
	}
	if c.AuthStore == "static" && strings.TrimSpace(c.SeedUsers) == "" {
		return errors.New("config: AUTH_STORE=static requires SEED_USERS")
	}
	return nil
}

// SeedUser is one parsed SEED_USERS entry. Password is still plaintext at
// this point; callers hash it before storing.
type SeedUser struct {
	Username string
	Password string
	Roles    []string
}

// ParseSeedUsers parses the SEED_USERS value. An empty value yields no users.
func (c *Config) ParseSeedUsers() ([]SeedUser, error) {
	raw := strings.TrimSpace(c.SeedUsers)
	if raw == "" {
		return nil, nil
	}

	entries := strings.Split(raw, ",")
	users := make([]SeedUser, 0, len(entries))
	for _, entry := range entries {
		fields := strings.Split(strings.TrimSpace(entry), ":")
		if len(fields) != 3 {
			return nil, fmt.Errorf("config: malformed SEED_USERS entry %q", entry)
		}
		username, password, roleList := fields[0], fields[1], fields[2]
		if username == "" || password == "" {
			return nil, fmt.Errorf("config: SEED_USERS entry %q missing username or password", entry)
		}

		var roles []string
		for _, r := range strings.Split(roleList, "|") {
			if r = strings.TrimSpace(r); r != "" {
				roles = append(roles, r)
			}
		}

		users = append(users, SeedUser{Username: username, Password: password, Roles: roles})
	}
	return users, nil
}
