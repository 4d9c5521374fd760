package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ErrMissingVar marks a required environment variable that was not set.
// Configuration problems are fatal at startup, never retried.
var ErrMissingVar = errors.New("required environment variable not set")

type Config struct {
	HTTPAddr string

	SquareEndpoint       string
	SquareAPIKey         string
	SquareLocationID     string
	SquareItemID         string
	SquareCatalogVersion int64
	SquareSourceName     string

	RedisAddr string

	EmailHost     string
	EmailPort     int
	EmailUser     string
	EmailPassword string
	EmailFrom     string
	EmailTo       string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:         envOrDefault("HTTP_ADDR", ":8080"),
		SquareSourceName: envOrDefault("SQUARE_SOURCE_NAME", "StukeleyHappenings"),
	}

	var err error
	for _, v := range []struct {
		name string
		dst  *string
	}{
		{"SQUARE_ENDPOINT", &cfg.SquareEndpoint},
		{"SQUARE_API_KEY", &cfg.SquareAPIKey},
		{"SQUARE_LOCATION_ID", &cfg.SquareLocationID},
		{"SQUARE_ITEM_ID", &cfg.SquareItemID},
		{"REDIS_ADDR", &cfg.RedisAddr},
		{"EMAIL_HOST", &cfg.EmailHost},
		{"EMAIL_USER", &cfg.EmailUser},
		{"EMAIL_PASSWORD", &cfg.EmailPassword},
		{"EMAIL_FROM", &cfg.EmailFrom},
		{"EMAIL_TO", &cfg.EmailTo},
	} {
		*v.dst, err = require(v.name)
		if err != nil {
			return nil, err
		}
	}

	catalogVersion, err := require("SQUARE_CATALOG_VERSION")
	if err != nil {
		return nil, err
	}
	cfg.SquareCatalogVersion, err = strconv.ParseInt(catalogVersion, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("SQUARE_CATALOG_VERSION must be an integer: %w", err)
	}

	emailPort, err := require("EMAIL_PORT")
	if err != nil {
		return nil, err
	}
	cfg.EmailPort, err = strconv.Atoi(emailPort)
	if err != nil {
		return nil, fmt.Errorf("EMAIL_PORT must be a port number: %w", err)
	}

	return cfg, nil
}

func require(name string) (string, error) {
	value := os.Getenv(name)
	if value == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingVar, name)
	}
	return value, nil
}

func envOrDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}
