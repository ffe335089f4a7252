// Package config loads the daemon's settings from the environment.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP        string        // Host IP for the server
	RESTPort      int           // Port for the REST API
	BaseURL       string        // Prefix for every API route
	GinMode       string        // Mode for the Gin framework (e.g., release, debug, test)
	RedisAddr     string        // host:port of the solution cache; empty disables caching
	RedisPassword string        // Password for the solution cache
	RedisDB       int           // Database index for the solution cache
	CacheTTL      int           // Lifetime of cached solutions, in seconds
	SolveMaxSteps int           // Expansion cap per search; zero or negative means unlimited
	SolveTimeout  time.Duration // Upper bound on one search
	MaxMazeBytes  int64         // Largest accepted request body
}

// Load reads a .env file when present and then the environment.
// Unset variables take their defaults; malformed integers are errors.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	var (
		cfg Config
		err error
	)
	cfg.HostIP = getEnvWithDefault("HOST_IP", "0.0.0.0")
	cfg.BaseURL = getEnvWithDefault("BASE_URL", "/api")
	cfg.GinMode = getEnvWithDefault("GIN_MODE", "release")
	cfg.RedisAddr = getEnvWithDefault("REDIS_ADDR", "")
	cfg.RedisPassword = getEnvWithDefault("REDIS_PASSWORD", "")

	if cfg.RESTPort, err = getEnvAsInt("REST_PORT", 8080); err != nil {
		return Config{}, err
	}
	if cfg.RedisDB, err = getEnvAsInt("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.CacheTTL, err = getEnvAsInt("CACHE_TTL_SECONDS", 3600); err != nil {
		return Config{}, err
	}
	if cfg.SolveMaxSteps, err = getEnvAsInt("SOLVE_MAX_STEPS", -1); err != nil {
		return Config{}, err
	}
	timeoutMS, err := getEnvAsInt("SOLVE_TIMEOUT_MS", 2000)
	if err != nil {
		return Config{}, err
	}
	cfg.SolveTimeout = time.Duration(timeoutMS) * time.Millisecond
	maxBytes, err := getEnvAsInt("MAX_MAZE_BYTES", 4<<20)
	if err != nil {
		return Config{}, err
	}
	cfg.MaxMazeBytes = int64(maxBytes)

	return cfg, nil
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.HostIP, c.RESTPort)
}

// getEnvAsInt retrieves an environment variable as an integer, or def if unset.
func getEnvAsInt(key string, def int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return def, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("config: environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
