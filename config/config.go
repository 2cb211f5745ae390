// Package config loads the sival command configuration from YAML with
// environment-variable overrides.
//
// Precedence, lowest first: Default, the YAML file, SIVAL_* variables.
//
//	environment:
//	  speed_of_sound: 343
//	  density_of_air: 1.204
//	log:
//	  level: info
//	  format: console
//	store:
//	  driver_dir: ./drivers
//	  redis:    {addr: "localhost:6379", prefix: "sival:driver:", ttl: 24h}
//	  postgres: {host: localhost, port: 5432, database: sival, table: driver_records}
//	sweep:
//	  start: 10
//	  stop: 20000
//	  points: 200
//	  scale: log
//	  workers: 4
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/katalvlaran/sival/environment"
	"github.com/katalvlaran/sival/response"
	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full command configuration.
type Config struct {
	Environment EnvironmentConfig `yaml:"environment"`
	Log         LogConfig         `yaml:"log"`
	Store       StoreConfig       `yaml:"store"`
	Sweep       SweepConfig       `yaml:"sweep"`
}

// EnvironmentConfig overrides the physical constants.
type EnvironmentConfig struct {
	SpeedOfSound float64 `yaml:"speed_of_sound"`
	DensityOfAir float64 `yaml:"density_of_air"`
}

// LogConfig selects the logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// StoreConfig lists the driver record sources, tried in field order after
// plain paths.
type StoreConfig struct {
	DriverDir string         `yaml:"driver_dir"`
	Redis     RedisConfig    `yaml:"redis"`
	Postgres  DatabaseConfig `yaml:"postgres"`
	WriteBack bool           `yaml:"write_back"`
}

// RedisConfig configures the Redis driver store. Empty Addr disables it.
type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	Prefix   string        `yaml:"prefix"`
	TTL      time.Duration `yaml:"ttl"`
}

// DatabaseConfig configures the PostgreSQL driver store. Empty Host
// disables it.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"`
	MaxConns int    `yaml:"max_conns"`
	Table    string `yaml:"table"`
}

// SweepConfig describes the default frequency grid.
type SweepConfig struct {
	Start   float64 `yaml:"start"`
	Stop    float64 `yaml:"stop"`
	Points  int     `yaml:"points"`
	Scale   string  `yaml:"scale"`
	Workers int     `yaml:"workers"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Environment: EnvironmentConfig{
			SpeedOfSound: environment.DefaultSpeedOfSound,
			DensityOfAir: environment.DefaultDensityOfAir,
		},
		Log: LogConfig{Level: "info", Format: "console"},
		Store: StoreConfig{
			Redis:    RedisConfig{Prefix: "sival:driver:"},
			Postgres: DatabaseConfig{Port: 5432, SSLMode: "disable", Table: "driver_records"},
		},
		Sweep: SweepConfig{Start: 10, Stop: 20000, Points: 200, Scale: "log"},
	}
}

// Load reads path over Default. An empty path returns Default.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the values that have a restricted domain.
func (c *Config) Validate() error {
	switch {
	case c.Environment.SpeedOfSound <= 0:
		return fmt.Errorf("%w: environment.speed_of_sound %v", ErrInvalid, c.Environment.SpeedOfSound)
	case c.Environment.DensityOfAir <= 0:
		return fmt.Errorf("%w: environment.density_of_air %v", ErrInvalid, c.Environment.DensityOfAir)
	case c.Sweep.Scale != "log" && c.Sweep.Scale != "lin":
		return fmt.Errorf("%w: sweep.scale %q", ErrInvalid, c.Sweep.Scale)
	case c.Sweep.Workers < 0:
		return fmt.Errorf("%w: sweep.workers %d", ErrInvalid, c.Sweep.Workers)
	}
	if _, err := c.Sweep.Grid(); err != nil {
		return fmt.Errorf("%w: sweep: %w", ErrInvalid, err)
	}

	return nil
}

// Apply sets the configured constants on env.
func (c EnvironmentConfig) Apply(env *environment.Environment) {
	if c.SpeedOfSound > 0 {
		env.SetSpeedOfSound(c.SpeedOfSound)
	}
	if c.DensityOfAir > 0 {
		env.SetDensityOfAir(c.DensityOfAir)
	}
}

// Grid builds the configured frequency grid.
func (c SweepConfig) Grid() ([]float64, error) {
	if c.Scale == "lin" {
		return response.LinSpace(c.Start, c.Stop, c.Points)
	}

	return response.LogSpace(c.Start, c.Stop, c.Points)
}

// GetDSN returns the lib/pq connection string.
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}
