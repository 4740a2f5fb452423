// Package config reads runtime settings from the environment, after loading
// an optional .env file.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting the closet binaries read from the environment.
type Config struct {
	Port        string
	DatabaseURL string
	CatalogFile string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	JWTSecret         string
	AdminUsername     string
	AdminPasswordHash string

	MetricsEnabled bool
}

// Load reads .env files (if present) and then the process environment.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Printf("no .env file loaded, using system environment variables: %v", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function such as os.Getenv.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Port:              withDefault(getenv("APP_PORT"), "8080"),
		DatabaseURL:       getenv("DATABASE_URL"),
		CatalogFile:       getenv("CATALOG_FILE"),
		RedisAddr:         getenv("REDIS_ADDR"),
		RedisPassword:     getenv("REDIS_PASSWORD"),
		JWTSecret:         getenv("JWT_SECRET"),
		AdminUsername:     withDefault(getenv("ADMIN_USERNAME"), "admin"),
		AdminPasswordHash: getenv("ADMIN_PASSWORD_HASH"),
	}

	var err error
	if v := getenv("REDIS_DB"); v != "" {
		if cfg.RedisDB, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("REDIS_DB: %w", err)
		}
	}

	cfg.CacheTTL = time.Minute
	if v := getenv("CACHE_TTL"); v != "" {
		if cfg.CacheTTL, err = time.ParseDuration(v); err != nil {
			return nil, fmt.Errorf("CACHE_TTL: %w", err)
		}
	}

	cfg.MetricsEnabled = true
	if v := getenv("METRICS_ENABLED"); v != "" {
		if cfg.MetricsEnabled, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("METRICS_ENABLED: %w", err)
		}
	}

	return cfg, nil
}

// CatalogSource names where the catalog is read from, for logging.
func (c *Config) CatalogSource() string {
	switch {
	case c.DatabaseURL != "":
		return "postgres"
	case c.CatalogFile != "":
		return c.CatalogFile
	default:
		return "embedded seed"
	}
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
