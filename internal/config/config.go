package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

var errUnsupportedDriver error = errors.New("unsupported database driver")

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type App struct {
	Port              string        `env:"API_PORT" envDefault:"3000"`
	JWTSecret         string        `env:"JWT_SECRET,required,notEmpty"`
	TokenTTL          time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	DBDriver          string        `env:"DB_DRIVER" envDefault:"sqlite"`
	DBConnectionURL   string        `env:"DB_CONNECTION_URL" envDefault:"hirebox.db"`
	DBLogLevel        string        `env:"DB_LOG_LEVEL" envDefault:"warn"`
	LogLevel          string        `env:"LOG_LEVEL" envDefault:"info"`
	SeedDemoAccounts  bool          `env:"SEED_DEMO_ACCOUNTS" envDefault:"true"`
	SeedPassword      string        `env:"SEED_PASSWORD" envDefault:"password123"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s"`
}

// NewApp reads the configuration from the environment. A missing JWT_SECRET
// is an error; there is no fallback secret.
func NewApp() (App, error) {
	var cfg App
	if err := env.Parse(&cfg); err != nil {
		return App{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))
	if cfg.DBDriver != DriverSQLite && cfg.DBDriver != DriverPostgres {
		return App{}, fmt.Errorf("%w: %q", errUnsupportedDriver, cfg.DBDriver)
	}

	if cfg.TokenTTL <= 0 {
		return App{}, fmt.Errorf("token ttl must be positive, got %s", cfg.TokenTTL)
	}

	return cfg, nil
}
