// Package config loads service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// DefaultReadingsURL is the public relative humidity endpoint.
const DefaultReadingsURL = "https://api-open.data.gov.sg/v2/real-time/api/relative-humidity"

// ErrInvalidValue is returned for environment values that can't be parsed.
var ErrInvalidValue = errors.New("invalid config value")

// Config contains service settings.
type Config struct {
	Port            string
	Origin          string
	ReadingsURL     string
	SortByGeography bool
	LabelsFile      string
	Locale          language.Tag
	LogLevel        string
	ClockInterval   time.Duration
}

// Load seeds the environment from the given .env files, if they exist,
// and reads the config from it.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		err := godotenv.Load(f)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	return LoadFromEnv()
}

// LoadFromEnv reads the config from environment variables, applying defaults.
func LoadFromEnv() (Config, error) {
	port := envOrDefault("PORT", "8080")
	if _, err := strconv.Atoi(port); err != nil {
		return Config{}, fmt.Errorf("%w: PORT %q", ErrInvalidValue, port)
	}

	sortByGeography, err := strconv.ParseBool(envOrDefault("SORT_BY_GEOGRAPHY", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("%w: SORT_BY_GEOGRAPHY: %v", ErrInvalidValue, err)
	}

	locale, err := language.Parse(envOrDefault("LOCALE", "en-GB"))
	if err != nil {
		return Config{}, fmt.Errorf("%w: LOCALE: %v", ErrInvalidValue, err)
	}

	clockInterval, err := time.ParseDuration(envOrDefault("CLOCK_INTERVAL", "1s"))
	if err != nil {
		return Config{}, fmt.Errorf("%w: CLOCK_INTERVAL: %v", ErrInvalidValue, err)
	}
	if clockInterval <= 0 {
		return Config{}, fmt.Errorf("%w: CLOCK_INTERVAL must be positive", ErrInvalidValue)
	}

	logLevel := strings.ToLower(envOrDefault("LOG_LEVEL", "info"))
	switch logLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return Config{}, fmt.Errorf("%w: LOG_LEVEL %q", ErrInvalidValue, logLevel)
	}

	return Config{
		Port:            port,
		Origin:          strings.TrimSpace(os.Getenv("ORIGIN")),
		ReadingsURL:     envOrDefault("READINGS_URL", DefaultReadingsURL),
		SortByGeography: sortByGeography,
		LabelsFile:      strings.TrimSpace(os.Getenv("LABELS_FILE")),
		Locale:          locale,
		LogLevel:        logLevel,
		ClockInterval:   clockInterval,
	}, nil
}

func envOrDefault(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
