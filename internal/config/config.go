package config

import (
	"ctchen222/titac/internal/validator"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// PathEnv overrides the location of the configuration file.
const PathEnv = "TITAC_CONFIG"

const defaultPath = "config.yml"

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"TITAC_LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	Window    Window    `yaml:"window"`
	Opponent  Opponent  `yaml:"opponent"`
	Telemetry Telemetry `yaml:"telemetry"`
}

type Window struct {
	Width  int    `yaml:"width" env:"TITAC_WINDOW_WIDTH" env-default:"400" validate:"min=90"`
	Height int    `yaml:"height" env:"TITAC_WINDOW_HEIGHT" env-default:"400" validate:"min=90"`
	Title  string `yaml:"title" env:"TITAC_WINDOW_TITLE" env-default:"titac" validate:"required"`
	FPS    int    `yaml:"fps" env:"TITAC_WINDOW_FPS" env-default:"60" validate:"min=1,max=240"`
}

type Opponent struct {
	ThinkDelay time.Duration `yaml:"think-delay" env:"TITAC_THINK_DELAY" env-default:"80ms" validate:"min=0"`
	// Seed fixes the opponent's random sequence; 0 means a fresh seed per run.
	Seed uint64 `yaml:"seed" env:"TITAC_SEED" env-default:"0"`
}

type Telemetry struct {
	Enabled     bool   `yaml:"enabled" env:"TITAC_TELEMETRY_ENABLED" env-default:"false"`
	Endpoint    string `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" validate:"required_if=Enabled true Stdout false"`
	Stdout      bool   `yaml:"stdout" env:"TITAC_TELEMETRY_STDOUT" env-default:"false"`
	ServiceName string `yaml:"service-name" env:"OTEL_SERVICE_NAME" env-default:"titac" validate:"required"`
}

// Load reads the configuration file at path, falling back to the
// environment alone when the file does not exist, and validates it.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err := cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	if err := validator.GetValidator().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// Path returns $TITAC_CONFIG, or ./config.yml when it is unset.
func Path() string {
	if path := os.Getenv(PathEnv); path != "" {
		return path
	}
	return defaultPath
}

// MustLoad loads the configuration from Path and panics on failure.
func MustLoad() *Config {
	config, err := Load(Path())
	if err != nil {
		panic(err)
	}
	return config
}

// SlogLevel converts LogLevel for the logger.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
