// Package config resolves the planner settings. Values are layered: built-in defaults, then an
// optional YAML file, then a .env file, then the process environment.
package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
)

const DefaultPath = "planner.yaml"

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
	DriverMemory   = "memory"
)

var ValidDrivers = []string{DriverSQLite, DriverPostgres, DriverPgx, DriverMemory}

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Planner   PlannerConfig   `yaml:"planner"`
	Auth      AuthConfig      `yaml:"auth"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type ServerConfig struct {
	Port            string        `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	DataDir  string `yaml:"data_dir"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN is the Postgres connection URL. It is accepted by both pgx and lib/pq.
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	return u.String()
}

func (d DatabaseConfig) IsPostgres() bool {
	return d.Driver == DriverPostgres || d.Driver == DriverPgx
}

// RedisConfig is optional; an empty host disables the habit cache and the rate limiter.
type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

type PlannerConfig struct {
	SlotLayout string        `yaml:"slot_layout"`
	Timezone   string        `yaml:"timezone"`
	SaveDelay  time.Duration `yaml:"save_delay"`
}

type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"`
	Issuer         string        `yaml:"issuer"`
	TokenTTL       time.Duration `yaml:"token_ttl"`
	PassphraseHash string        `yaml:"passphrase_hash"`
}

type RateLimitConfig struct {
	Requests int           `yaml:"requests"`
	Window   time.Duration `yaml:"window"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Database: DatabaseConfig{
			Driver:  DriverSQLite,
			DataDir: ".",
			Host:    "localhost",
			Port:    "5432",
			SSLMode: "disable",
		},
		Redis: RedisConfig{
			Port: "6379",
		},
		Planner: PlannerConfig{
			SlotLayout: string(domain.DefaultSlotLayout),
			Timezone:   "Local",
			SaveDelay:  300 * time.Millisecond,
		},
		Auth: AuthConfig{
			Issuer:   "kanso-planner",
			TokenTTL: 24 * time.Hour,
		},
		RateLimit: RateLimitConfig{
			Requests: 100,
			Window:   time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load builds the configuration. A missing file at path is not an error; a missing .env is not
// either. The result is validated.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func setDuration(dst *time.Duration, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = d
	return nil
}

func (c *Config) applyEnvOverrides() error {
	setString(&c.Server.Port, "PORT")

	setString(&c.Database.Driver, "DB_DRIVER")
	setString(&c.Database.DataDir, "PLANNER_DATA_DIR")
	setString(&c.Database.Host, "DB_HOST")
	setString(&c.Database.Port, "DB_PORT")
	setString(&c.Database.User, "DB_USER")
	setString(&c.Database.Password, "DB_PASSWORD")
	setString(&c.Database.Name, "DB_NAME")
	setString(&c.Database.SSLMode, "DB_SSLMODE")

	setString(&c.Redis.Host, "REDIS_HOST")
	setString(&c.Redis.Port, "REDIS_PORT")
	setString(&c.Redis.Password, "REDIS_PASSWORD")

	setString(&c.Planner.SlotLayout, "PLANNER_SLOT_LAYOUT")
	setString(&c.Planner.Timezone, "PLANNER_TIMEZONE")

	setString(&c.Auth.JWTSecret, "JWT_SECRET")
	setString(&c.Auth.PassphraseHash, "PLANNER_PASSPHRASE_HASH")

	setString(&c.Logging.Level, "LOG_LEVEL")
	setString(&c.Logging.Format, "LOG_FORMAT")

	return errors.Join(
		setInt(&c.Redis.DB, "REDIS_DB"),
		setInt(&c.RateLimit.Requests, "RATE_LIMIT_REQUESTS"),
		setDuration(&c.Planner.SaveDelay, "PLANNER_SAVE_DELAY"),
		setDuration(&c.Auth.TokenTTL, "JWT_TTL"),
		setDuration(&c.RateLimit.Window, "RATE_LIMIT_WINDOW"),
	)
}

// Validate rejects settings the planner cannot start with.
func (c *Config) Validate() error {
	var errs []error

	validDriver := false
	for _, d := range ValidDrivers {
		if c.Database.Driver == d {
			validDriver = true
			break
		}
	}
	if !validDriver {
		errs = append(errs, fmt.Errorf("invalid database driver: %q (valid: %v)", c.Database.Driver, ValidDrivers))
	}
	if c.Database.IsPostgres() && c.Database.Name == "" {
		errs = append(errs, errors.New("database name is required for postgres (set DB_NAME)"))
	}

	if _, err := domain.ParseSlotLayout(c.Planner.SlotLayout); err != nil {
		errs = append(errs, fmt.Errorf("slot layout %q: %w", c.Planner.SlotLayout, err))
	}
	if _, err := time.LoadLocation(c.Planner.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("invalid timezone %q: %w", c.Planner.Timezone, err))
	}
	if c.Planner.SaveDelay < 0 {
		errs = append(errs, errors.New("save delay cannot be negative"))
	}

	if c.Auth.PassphraseHash != "" && c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required when a passphrase hash is configured"))
	}

	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("invalid log level: %w", err))
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		errs = append(errs, fmt.Errorf("invalid log format: %q (valid: json, console)", c.Logging.Format))
	}

	return errors.Join(errs...)
}

func (c *Config) SlotLayout() domain.SlotLayout {
	l, err := domain.ParseSlotLayout(c.Planner.SlotLayout)
	if err != nil {
		return domain.DefaultSlotLayout
	}
	return l
}

// Location falls back to UTC for a zone that does not load; Validate reports that case.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Planner.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Save writes the configuration as YAML. Secrets are included, so the file is owner-only.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
