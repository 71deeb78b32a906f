// Package config handles loading and parsing application configuration.
// It supports three sources (in priority order):
//  1. A command-line flag:      --config=/path/to/config.yaml
//  2. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  3. Neither: every value comes from the environment or its default.
//
// Whatever the source, environment variables override the file, and the
// database credentials are read ONLY from DB_USER and DB_PASSWORD. The
// parsed values are returned as a *Config built once at startup and
// passed down explicitly; no other package reads the environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Supported database drivers.
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite3"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-default:"dev" validate:"oneof=dev staging prod"`

	Database Database `yaml:"database"`
	Window   Window   `yaml:"window"`
}

// Database holds everything needed to reach the students table.
// Nested under database: in the YAML file.
type Database struct {
	// Driver selects the backend: "mysql" or "sqlite3".
	Driver string `yaml:"driver" env:"DB_DRIVER" env-default:"mysql" validate:"oneof=mysql sqlite3"`

	// Host, Port and Name address the MySQL schema.
	Host string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port int    `yaml:"port" env:"DB_PORT" env-default:"3306"`
	Name string `yaml:"name" env:"DB_NAME" env-default:"StudentDB"`

	// Path is the SQLite file used when Driver is "sqlite3".
	Path string `yaml:"path" env:"DB_PATH" env-default:"storage/students.db"`

	// MaxOpenConns bounds the connection pool.
	MaxOpenConns int `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS" env-default:"4" validate:"min=1"`

	// Credentials are never read from the file. Their absence is not an
	// error here: the database rejects the first query instead.
	User     string `yaml:"-" env:"DB_USER"`
	Password string `yaml:"-" env:"DB_PASSWORD"`
}

// Window holds the initial size of the main window.
type Window struct {
	Width  float32 `yaml:"width"  env:"WINDOW_WIDTH"  env-default:"1000" validate:"gt=0"`
	Height float32 `yaml:"height" env:"WINDOW_HEIGHT" env-default:"700"  validate:"gt=0"`
}

// Load reads, validates, and returns the application config.
//
// path usually comes from the --config flag. When it is empty the
// CONFIG_PATH environment variable is consulted; when that is empty too,
// the config is assembled from environment variables and defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read env: %w", err)
		}
	} else {
		// Check the file up front so the user gets a clear message rather
		// than a cryptic "open: no such file" from the YAML parser.
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config.Load: config file does not exist: %s", path)
		}

		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read %s: %w", path, err)
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config.Load: invalid config: %w", err)
	}

	return &cfg, nil
}
