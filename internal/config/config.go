package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// DefaultOrigin is the local frontend dev server allowed when ALLOWED_ORIGINS is unset.
const DefaultOrigin = "http://localhost:5173"

// Config holds the server settings read from the environment.
type Config struct {
	Port           string
	AllowedOrigins []string
	PatternsPath   string
	PatternsDBPath string
	LogLevel       logrus.Level
	LogFormat      string
	GinMode        string
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err == nil {
		logrus.Debug("loaded .env file")
	}
	return FromViper(New())
}

// New returns a viper instance bound to the environment with server defaults.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("port", "8000")
	v.SetDefault("allowed_origins", DefaultOrigin)
	v.SetDefault("patterns_path", "")
	v.SetDefault("patterns_db_path", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("gin_mode", "release")
	v.AutomaticEnv()
	return v
}

// FromViper builds and validates a Config from viper settings.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Port:           strings.TrimSpace(v.GetString("port")),
		AllowedOrigins: ParseOrigins(v.GetString("allowed_origins")),
		PatternsPath:   strings.TrimSpace(v.GetString("patterns_path")),
		PatternsDBPath: strings.TrimSpace(v.GetString("patterns_db_path")),
		LogFormat:      strings.ToLower(strings.TrimSpace(v.GetString("log_format"))),
		GinMode:        strings.ToLower(strings.TrimSpace(v.GetString("gin_mode"))),
	}

	port, err := strconv.Atoi(cfg.Port)
	if err != nil || port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %q", cfg.Port)
	}

	level, err := logrus.ParseLevel(strings.TrimSpace(v.GetString("log_level")))
	if err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return Config{}, fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}

	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return Config{}, fmt.Errorf("invalid GIN_MODE %q", cfg.GinMode)
	}

	if err := ValidateOrigins(cfg.AllowedOrigins); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}

// ParseOrigins splits a comma-separated origin list, dropping blanks.
func ParseOrigins(raw string) []string {
	var origins []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// ValidateOrigins requires at least one origin, each either "*" or an
// http(s) URL.
func ValidateOrigins(origins []string) error {
	if len(origins) == 0 {
		return errors.New("ALLOWED_ORIGINS has no origins")
	}
	for _, origin := range origins {
		if origin == "*" {
			continue
		}
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("invalid origin %q: must start with http:// or https://", origin)
		}
	}
	return nil
}

// AllowsAllOrigins reports whether the wildcard origin is configured.
func AllowsAllOrigins(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}
