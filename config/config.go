// Package config loads service configuration from the environment, an
// optional .env file, and command-line flags (highest precedence).
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      struct {
		Port            int      `env:"PORT" envDefault:"4000"`
		ReadTimeout     int      `env:"READ_TIMEOUT" envDefault:"15"`
		WriteTimeout    int      `env:"WRITE_TIMEOUT" envDefault:"15"`
		IdleTimeout     int      `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int      `env:"SHUTDOWN_TIMEOUT" envDefault:"30"`
		AllowedOrigins  []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://localhost:4000"`
		StaticDir       string   `env:"STATIC_DIR" envDefault:"./web/dist"`
		RateLimit       float64  `env:"RATE_LIMIT" envDefault:"20"`
		RateBurst       int      `env:"RATE_BURST" envDefault:"40"`
	} `envPrefix:"SERVER_"`
	Database struct {
		Path string `env:"PATH" envDefault:"payroll.db"`
	} `envPrefix:"DATABASE_"`
	Payroll struct {
		MaxNumberAttempts        int    `env:"MAX_NUMBER_ATTEMPTS" envDefault:"5"`
		RegenerateNumberOnUpdate bool   `env:"REGENERATE_NUMBER_ON_UPDATE" envDefault:"true"`
		SeedScenario             string `env:"SEED_SCENARIO"`
	} `envPrefix:"PAYROLL_"`
}

// Seconds helpers keep the env format integral like the rest of the fleet.
func (c *Config) ReadTimeout() time.Duration  { return time.Duration(c.Server.ReadTimeout) * time.Second }
func (c *Config) WriteTimeout() time.Duration { return time.Duration(c.Server.WriteTimeout) * time.Second }
func (c *Config) IdleTimeout() time.Duration  { return time.Duration(c.Server.IdleTimeout) * time.Second }
func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.Server.ShutdownTimeout) * time.Second
}

// IsDevelopment selects the development logger.
func (c *Config) IsDevelopment() bool { return c.Environment == "development" }

// Load reads .env (if present), then the environment, then args.
func Load(args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}
	return Parse(args, env.Options{})
}

// Parse builds a Config from opts (tests pass Environment) and args.
func Parse(args []string, opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		aggErr := env.AggregateError{}
		if errors.As(err, &aggErr) && len(aggErr.Errors) > 0 {
			// Report only the first error to keep startup logs readable
			return nil, fmt.Errorf("config: %w", aggErr.Errors[0])
		}
		return nil, fmt.Errorf("config: %w", err)
	}

	fs := flag.NewFlagSet("payroll", flag.ContinueOnError)
	fs.IntVar(&cfg.Server.Port, "port", cfg.Server.Port, "HTTP server port")
	fs.StringVar(&cfg.Database.Path, "db", cfg.Database.Path, `SQLite database path (":memory:" for in-memory)`)
	fs.StringVar(&cfg.Payroll.SeedScenario, "seed", cfg.Payroll.SeedScenario, "demo scenario to load on start")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server port %d out of range", c.Server.Port)
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("config: rate limit must not be negative, got %v", c.Server.RateLimit)
	}
	if c.Database.Path == "" {
		return errors.New("config: database path must be set")
	}
	if c.Payroll.MaxNumberAttempts < 1 {
		return fmt.Errorf("config: max number attempts must be at least 1, got %d", c.Payroll.MaxNumberAttempts)
	}
	return nil
}
