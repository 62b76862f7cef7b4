// Package config resolves all runtime configuration once at process start.
// Components receive the values they need through constructors; nothing in
// the codebase reads the environment at call time.
package config

import (
	"os"
	"strings"
	"time"
)

// SessionStrategy selects how authenticated sessions are anchored. With a
// database present, sign-in state (users, verification tokens) is persisted;
// without one the process runs on an in-memory store and sessions live only
// in the signed JWT.
type SessionStrategy string

const (
	SessionStrategyDatabase SessionStrategy = "database"
	SessionStrategyJWT      SessionStrategy = "jwt"
)

// Config carries every externally configurable value.
type Config struct {
	Port          string
	DatabaseURL   string
	RunMigrations bool

	JWTSecret string
	JWTExpiry time.Duration

	// SignInTokenTTL is how long a mailed sign-in token stays valid.
	SignInTokenTTL time.Duration

	RedisAddr     string
	RedisPassword string

	ResendAPIKey string
	MailFrom     string

	AllowedOrigins []string

	SessionStrategy SessionStrategy
}

// Load reads the environment into a Config. It is called exactly once, from main.
func Load() *Config {
	cfg := &Config{
		Port:           getenv("PORT", "8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RunMigrations:  os.Getenv("RUN_MIGRATIONS") == "true",
		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTExpiry:      getduration("JWT_EXPIRY", 24*time.Hour),
		SignInTokenTTL: getduration("SIGNIN_TOKEN_TTL", 15*time.Minute),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		ResendAPIKey:   os.Getenv("RESEND_API_KEY"),
		MailFrom:       getenv("MAIL_FROM", "DevSnap <signin@devsnap.dev>"),
	}

	if host := os.Getenv("REDIS_HOST"); host != "" {
		cfg.RedisAddr = host + ":" + getenv("REDIS_PORT", "6379")
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	cfg.SessionStrategy = SessionStrategyJWT
	if cfg.DatabaseURL != "" {
		cfg.SessionStrategy = SessionStrategyDatabase
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
