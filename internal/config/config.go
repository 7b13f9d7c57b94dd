// Package config loads service settings from the environment, optionally
// seeded from a .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// Config holds all runtime configuration.
type Config struct {
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// ProjectID enables Cloud Trace correlation in request logs.
	ProjectID string `env:"PROJECT_ID"`
	// GoogleCloudProject is the variable Cloud Run sets; used when ProjectID is empty.
	GoogleCloudProject string `env:"GOOGLE_CLOUD_PROJECT"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	MetricsEnabled     bool     `env:"METRICS_ENABLED" envDefault:"true"`

	GRPC    GRPCConfig
	Timeout TimeoutConfig
}

// GRPCConfig controls the gRPC health endpoint.
type GRPCConfig struct {
	Enabled bool `env:"GRPC_ENABLED" envDefault:"true"`
	Port    int  `env:"GRPC_PORT" envDefault:"9090"`
}

// TimeoutConfig holds HTTP server and shutdown timeouts.
type TimeoutConfig struct {
	Read       time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	ReadHeader time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"2s"`
	Write      time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	Idle       time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
	Shutdown   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads a .env file when present, then parses and validates the environment.
// Variables already set in the process environment win over the file.
func Load(dotenvPaths ...string) (*Config, error) {
	if len(dotenvPaths) == 0 {
		dotenvPaths = []string{".env"}
	}
	for _, p := range dotenvPaths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", p, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges that struct tags cannot express.
func (c *Config) Validate() error {
	var errs []error
	if !validPort(c.Port) {
		errs = append(errs, fmt.Errorf("PORT %d out of range", c.Port))
	}
	if c.GRPC.Enabled {
		if !validPort(c.GRPC.Port) {
			errs = append(errs, fmt.Errorf("GRPC_PORT %d out of range", c.GRPC.Port))
		} else if c.GRPC.Port == c.Port {
			errs = append(errs, fmt.Errorf("GRPC_PORT must differ from PORT (%d)", c.Port))
		}
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if len(c.CORSAllowedOrigins) == 0 {
		errs = append(errs, errors.New("CORS_ALLOWED_ORIGINS must not be empty"))
	}
	for _, o := range c.CORSAllowedOrigins {
		if strings.TrimSpace(o) == "" {
			errs = append(errs, errors.New("CORS_ALLOWED_ORIGINS contains an empty origin"))
			break
		}
	}
	if c.Timeout.Shutdown <= 0 {
		errs = append(errs, errors.New("SHUTDOWN_TIMEOUT must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Level parses LogLevel into a zap level.
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return lvl, nil
}

// TraceProjectID returns the project used for trace correlation.
func (c *Config) TraceProjectID() string {
	if c.ProjectID != "" {
		return c.ProjectID
	}
	return c.GoogleCloudProject
}

// HTTPAddr is the listen address for the HTTP server.
func (c *Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// GRPCAddr is the listen address for the gRPC health server.
func (c *Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPC.Port)
}

func validPort(p int) bool {
	return p > 0 && p <= 65535
}
