package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		AuthStore: "mongo",
		JWT: JWTConfig{
			Secret:   strings.Repeat("s", 32),
			Issuer:   "walks-api",
			Audience: "walks-api-clients",
			TTL:      15 * time.Minute,
		},
	}
}

func TestValidate_OK(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidate_MissingSecret(t *testing.T) {
	cfg := validConfig()
	cfg.JWT.Secret = ""
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for missing secret")
	}
}

func TestValidate_WeakSecret(t *testing.T) {
	cfg := validConfig()
	cfg.JWT.Secret = "too-short"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for weak secret")
	}
}

func TestValidate_BadTTL(t *testing.T) {
	cfg := validConfig()
	cfg.JWT.TTL = 0
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for zero TTL")
	}
}

func TestValidate_StaticStoreRequiresSeed(t *testing.T) {
	cfg := validConfig()
	cfg.AuthStore = "static"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for static store without seed users")
	}

	cfg.SeedUsers = "alice:secret:reader"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config with seed users, got %v", err)
	}
}

func TestParseSeedUsers(t *testing.T) {
	cfg := validConfig()
	cfg.SeedUsers = "alice:alicepw:reader|writer, bob:bobpw:reader"

	users, err := cfg.ParseSeedUsers()
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].Username != "alice" || len(users[0].Roles) != 2 {
		t.Fatalf("unexpected first user: %+v", users[0])
	}
	if users[1].Username != "bob" || len(users[1].Roles) != 1 || users[1].Roles[0] != "reader" {
		t.Fatalf("unexpected second user: %+v", users[1])
	}
}

func TestParseSeedUsers_Malformed(t *testing.T) {
	cfg := validConfig()
	cfg.SeedUsers = "alice:missing-roles"
	if _, err := cfg.ParseSeedUsers(); err == nil {
		t.Fatalf("expected error for malformed entry")
	}
}

func TestParseSeedUsers_Empty(t *testing.T) {
	cfg := validConfig()
	users, err := cfg.ParseSeedUsers()
	if err != nil || users != nil {
		t.Fatalf("expected no users and no error, got %v / %v", users, err)
	}
}
