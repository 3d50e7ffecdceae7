// Package config loads the service configuration from environment variables.
//
// Values are mapped onto Config with koanf, defaults are applied first and the
// result is checked with go-playground/validator. The Config is passed to the
// constructors that need it; nothing here is kept in package-level state.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// Config is the root configuration object.
type Config struct {
	Env      string         `koanf:"env" validate:"required"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Log      LogConfig      `koanf:"log" validate:"required"`
}

type ServerConfig struct {
	Port            string        `koanf:"port" validate:"required"`
	CORSOrigin      string        `koanf:"cors_origin" validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gte=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gte=0"`
	IdleTimeout     time.Duration `koanf:"idle_timeout" validate:"gte=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	// RateLimitRPS is the per-client request rate; 0 disables limiting.
	RateLimitRPS   float64 `koanf:"rate_limit_rps" validate:"gte=0"`
	RateLimitBurst int     `koanf:"rate_limit_burst" validate:"gte=1"`
	SwaggerEnabled bool    `koanf:"swagger_enabled"`
}

// DatabaseConfig describes how to reach the database holding the upload table.
//
// For the pgx driver ConnectString is a "host:port/dbname" descriptor (optionally
// with query parameters) or a full postgres:// URL. For sqlite it is the file DSN.
type DatabaseConfig struct {
	Driver        string `koanf:"driver" validate:"required,oneof=pgx sqlite"`
	User          string `koanf:"user"`
	Password      string `koanf:"password"`
	ConnectString string `koanf:"connect_string" validate:"required"`
	MaxOpenConns  int    `koanf:"max_open_conns" validate:"gte=0"`
	MaxIdleConns  int    `koanf:"max_idle_conns" validate:"gte=0"`
}

type LogConfig struct {
	Level  string `koanf:"level" validate:"required,oneof=trace debug info warn error fatal panic disabled"`
	Format string `koanf:"format" validate:"required,oneof=console json"`
}

// envKeys maps the recognised environment variables onto koanf key paths.
// Anything not listed is ignored.
var envKeys = map[string]string{
	"APP_ENV":              "env",
	"PORT":                 "server.port",
	"CORS_ORIGIN":          "server.cors_origin",
	"SERVER_READ_TIMEOUT":  "server.read_timeout",
	"SERVER_WRITE_TIMEOUT": "server.write_timeout",
	"SERVER_IDLE_TIMEOUT":  "server.idle_timeout",
	"SHUTDOWN_TIMEOUT":     "server.shutdown_timeout",
	"RATE_LIMIT_RPS":       "server.rate_limit_rps",
	"RATE_LIMIT_BURST":     "server.rate_limit_burst",
	"SWAGGER_ENABLED":      "server.swagger_enabled",
	"DB_DRIVER":            "database.driver",
	"DB_USER":              "database.user",
	"DB_PASSWORD":          "database.password",
	"DB_CONNECT_STRING":    "database.connect_string",
	"DB_MAX_OPEN_CONNS":    "database.max_open_conns",
	"DB_MAX_IDLE_CONNS":    "database.max_idle_conns",
	"LOG_LEVEL":            "log.level",
	"LOG_FORMAT":           "log.format",
}

// Default returns the configuration used when no environment variable is set.
func Default() *Config {
	return &Config{
		Env: "local",
		Server: ServerConfig{
			Port:            "3001",
			CORSOrigin:      "http://localhost:3000",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RateLimitBurst:  20,
			SwaggerEnabled:  true,
		},
		Database: DatabaseConfig{
			Driver:        DriverPostgres,
			User:          "system",
			Password:      "manager",
			ConnectString: "localhost:5432/upload?sslmode=disable",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the process environment on top of Default and validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	// 빈 값은 설정되지 않은 것으로 보고 기본값 유지
	err := k.Load(env.ProviderWithValue("", ".", func(key, value string) (string, interface{}) {
		if value == "" {
			return "", nil
		}
		return envKeys[strings.ToUpper(key)], value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	v := validator.New()
	v.RegisterStructValidation(validateDatabase, DatabaseConfig{})
	if err := v.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// validateDatabase rejects an in-memory SQLite database: connections are not
// kept idle, so every request would open a new, empty database.
func validateDatabase(sl validator.StructLevel) {
	db := sl.Current().Interface().(DatabaseConfig)
	if db.Driver == DriverSQLite && isMemoryDSN(db.ConnectString) {
		sl.ReportError(db.ConnectString, "ConnectString", "connect_string", "nomemory", "")
	}
}

func isMemoryDSN(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

// Addr is the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	if strings.Contains(s.Port, ":") {
		return s.Port
	}
	return ":" + s.Port
}
