package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config captures all runtime configuration derived from environment variables.
type Config struct {
	Port             string
	MoviesFile       string
	RatingsFile      string
	ReadTimeoutSecs  int
	WriteTimeoutSecs int
	IdleTimeoutSecs  int
	TopDefaultN      int
	TopMaxN          int
}

// Load reads configuration from environment variables, applying defaults and validation.
func Load() (Config, error) {
	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		MoviesFile:       getEnv("MOVIES_FILE", "movies.txt"),
		RatingsFile:      getEnv("RATINGS_FILE", "ratings.txt"),
		ReadTimeoutSecs:  getEnvInt("SERVER_READ_TIMEOUT", 15),
		WriteTimeoutSecs: getEnvInt("SERVER_WRITE_TIMEOUT", 15),
		IdleTimeoutSecs:  getEnvInt("SERVER_IDLE_TIMEOUT", 60),
		TopDefaultN:      getEnvInt("TOP_DEFAULT_N", 10),
		TopMaxN:          getEnvInt("TOP_MAX_N", 100),
	}

	if cfg.ReadTimeoutSecs <= 0 {
		return Config{}, fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.WriteTimeoutSecs <= 0 {
		return Config{}, fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.IdleTimeoutSecs <= 0 {
		return Config{}, fmt.Errorf("SERVER_IDLE_TIMEOUT must be positive")
	}
	if cfg.TopDefaultN <= 0 {
		return Config{}, fmt.Errorf("TOP_DEFAULT_N must be positive")
	}
	if cfg.TopMaxN < cfg.TopDefaultN {
		return Config{}, fmt.Errorf("TOP_MAX_N cannot be smaller than TOP_DEFAULT_N")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}
