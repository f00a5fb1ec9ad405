package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const devJWTSecret = "dev-only-secret"

// Config holds all configuration for the application
type Config struct {
	Environment Environment

	// Server configuration
	ServerPort  string
	ServerHost  string
	CORSOrigins []string

	// Database configuration
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBPath     string

	// Redis configuration. Rate limiting is off when neither RedisURL nor
	// RedisHost is set.
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	RateLimitPerMinute int
	LogLevel           string
}

// RedisEnabled reports whether a Redis server has been configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	// A .env file is optional; variables already in the environment win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	env := GetEnvironment()
	cfg := defaults()
	cfg.Environment = env

	var err error
	switch env {
	case CI:
		err = loadCIConfig(cfg)
	case Development, Test:
		err = loadDevConfig(cfg)
	case Production:
		err = loadProdConfig(cfg)
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s configuration: %w", env, err)
	}

	// Development and test fall back to an insecure signing key.
	if cfg.JWTSecret == "" && (env == Development || env == Test) {
		cfg.JWTSecret = devJWTSecret
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		ServerPort:         "8080",
		ServerHost:         "0.0.0.0",
		CORSOrigins:        []string{"http://localhost:3000"},
		DBDriver:           "sqlite",
		DBPort:             "5432",
		DBSSLMode:          "disable",
		DBPath:             "healthtrack.db",
		RedisPort:          "6379",
		RateLimitPerMinute: 60,
		LogLevel:           "info",
	}
}

// loadCIConfig reads everything from environment variables.
func loadCIConfig(cfg *Config) error {
	applyEnv(cfg, os.Getenv)
	return nil
}

// loadDevConfig reads environment variables first and falls back to
// Docker secrets for anything sensitive that is still unset.
func loadDevConfig(cfg *Config) error {
	applyEnv(cfg, os.Getenv)
	fillFromSecrets(cfg)
	return nil
}

// loadProdConfig reads sensitive values ONLY from Docker secrets.
func loadProdConfig(cfg *Config) error {
	applyEnv(cfg, os.Getenv)
	cfg.DBPassword = readSecret("db_password")
	cfg.JWTSecret = readSecret("jwt_secret")
	cfg.RedisPassword = readSecret("redis_password")
	if url := readSecret("redis_url"); url != "" {
		cfg.RedisURL = url
	}
	return nil
}

func applyEnv(cfg *Config, getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}

	set(&cfg.ServerPort, "SERVER_PORT")
	set(&cfg.ServerHost, "SERVER_HOST")
	set(&cfg.DBDriver, "DB_DRIVER")
	set(&cfg.DBHost, "DB_HOST")
	set(&cfg.DBPort, "DB_PORT")
	set(&cfg.DBUser, "DB_USER")
	set(&cfg.DBPassword, "DB_PASSWORD")
	set(&cfg.DBName, "DB_NAME")
	set(&cfg.DBSSLMode, "DB_SSL_MODE")
	set(&cfg.DBPath, "DB_PATH")
	set(&cfg.RedisHost, "REDIS_HOST")
	set(&cfg.RedisPort, "REDIS_PORT")
	set(&cfg.RedisPassword, "REDIS_PASSWORD")
	set(&cfg.RedisURL, "REDIS_URL")
	set(&cfg.JWTSecret, "JWT_SECRET")
	set(&cfg.LogLevel, "LOG_LEVEL")

	if v := getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = splitList(v)
	}
	if v := getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RedisDB = n
		}
	}
	if v := getenv("RATE_LIMIT_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RateLimitPerMinute = n
		} else {
			cfg.RateLimitPerMinute = -1
		}
	}
}

func fillFromSecrets(cfg *Config) {
	fill := func(dst *string, name string) {
		if *dst == "" {
			*dst = readSecret(name)
		}
	}
	fill(&cfg.DBPassword, "db_password")
	fill(&cfg.JWTSecret, "jwt_secret")
	fill(&cfg.RedisPassword, "redis_password")
	fill(&cfg.RedisURL, "redis_url")
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	data, err := os.ReadFile(filepath.Join(secretsDir, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
