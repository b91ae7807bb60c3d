package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const (
	DefaultConfigFile = "config.yaml"
	envPrefix         = "ZETANOM_"
)

type Config struct {
	// Database configuration
	DBDriver   string `yaml:"DB_DRIVER" validate:"oneof=sqlite postgres"`
	DBPath     string `yaml:"DB_PATH" validate:"required_if=DBDriver sqlite"`
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME" validate:"required_if=DBDriver postgres"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST" validate:"required_if=DBDriver postgres"`
	DBLogLevel string `yaml:"DB_LOG_LEVEL" validate:"oneof=silent error warn info"`

	// Server configuration
	Port            int           `yaml:"PORT" validate:"min=1,max=65535"`
	TimeZone        string        `yaml:"TIMEZONE" validate:"time_zone"`
	LogFile         string        `yaml:"LOG_FILE"`
	RateLimitMax    int           `yaml:"RATE_LIMIT_MAX" validate:"min=0"`
	RateLimitWindow time.Duration `yaml:"RATE_LIMIT_WINDOW"`
}

func DefaultConfig() Config {
	return Config{
		DBDriver:        "sqlite",
		DBPath:          "zetanom.db",
		DBPort:          "5432",
		DBLogLevel:      "warn",
		Port:            12001,
		TimeZone:        "Local",
		LogFile:         "./logs/app.log",
		RateLimitMax:    20,
		RateLimitWindow: time.Second,
	}
}

// ConfigPath resolves the file to load: an explicit path wins, then config.yaml in
// the working directory, then ~/.config/zetanom/config.yaml.
func ConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultConfigFile
	}
	return filepath.Join(home, ".config", "zetanom", DefaultConfigFile)
}

// LoadConfig reads the YAML file at path on top of the defaults, then applies a .env
// file and ZETANOM_* environment variables. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if cfg.DBDriver == "sqlite" && cfg.DBPath != ":memory:" {
		abs, err := filepath.Abs(cfg.DBPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to resolve database path %s: %w", cfg.DBPath, err)
		}
		cfg.DBPath = abs
	}

	if err := NewValidator().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	strs := map[string]*string{
		"DB_DRIVER":    &c.DBDriver,
		"DB_PATH":      &c.DBPath,
		"DB_USER":      &c.DBUser,
		"DB_NAME":      &c.DBName,
		"DB_PASSWORD":  &c.DBPassword,
		"DB_PORT":      &c.DBPort,
		"DB_HOST":      &c.DBHost,
		"DB_LOG_LEVEL": &c.DBLogLevel,
		"TIMEZONE":     &c.TimeZone,
		"LOG_FILE":     &c.LogFile,
	}
	for key, dst := range strs {
		if v, ok := os.LookupEnv(envPrefix + key); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"PORT":           &c.Port,
		"RATE_LIMIT_MAX": &c.RateLimitMax,
	}
	for key, dst := range ints {
		v, ok := os.LookupEnv(envPrefix + key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s%s: %w", envPrefix, key, err)
		}
		*dst = n
	}

	if v, ok := os.LookupEnv(envPrefix + "RATE_LIMIT_WINDOW"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %sRATE_LIMIT_WINDOW: %w", envPrefix, err)
		}
		c.RateLimitWindow = d
	}
	return nil
}

// Location returns the configured time zone, falling back to time.Local.
func (c Config) Location() *time.Location {
	if c.TimeZone == "" || c.TimeZone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.Local
	}
	return loc
}
