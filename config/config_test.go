package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/sival/config"
	"github.com/katalvlaran/sival/environment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 343.0, c.Environment.SpeedOfSound)
	assert.Equal(t, 1.204, c.Environment.DensityOfAir)
	assert.Equal(t, "log", c.Sweep.Scale)

	grid, err := c.Sweep.Grid()
	require.NoError(t, err)
	assert.Len(t, grid, 200)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sival.yaml")
	doc := `
environment:
  speed_of_sound: 340
log:
  level: debug
store:
  driver_dir: ./drivers
  redis:
    addr: localhost:6379
    ttl: 2h
  postgres:
    host: db
    database: sival
sweep:
  start: 20
  stop: 200
  points: 10
  scale: lin
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, c.Validate())
	assert.Equal(t, 340.0, c.Environment.SpeedOfSound)
	assert.Equal(t, 1.204, c.Environment.DensityOfAir, "unset keys keep defaults")
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, 2*time.Hour, c.Store.Redis.TTL)
	assert.Equal(t, "sival:driver:", c.Store.Redis.Prefix)
	assert.Equal(t, 5432, c.Store.Postgres.Port)
	assert.Equal(t, "host=db port=5432 user= password= dbname=sival sslmode=disable", c.Store.Postgres.GetDSN())

	grid, err := c.Sweep.Grid()
	require.NoError(t, err)
	assert.Equal(t, 20.0, grid[0])
	assert.Equal(t, 40.0, grid[1])
}

func TestLoad_Errors(t *testing.T) {
	c, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sweep: [1, 2"), 0o644))
	_, err = config.Load(path)
	assert.Error(t, err)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SIVAL_ENV_DENSITY_OF_AIR", "1.18")
	t.Setenv("SIVAL_REDIS_ADDR", "redis:6379")
	t.Setenv("SIVAL_REDIS_TTL", "30m")
	t.Setenv("SIVAL_DB_PORT", "6543")
	t.Setenv("SIVAL_WRITE_BACK", "true")
	t.Setenv("SIVAL_SWEEP_WORKERS", "8")

	c := config.Default()
	require.NoError(t, c.LoadFromEnv("SIVAL"))
	assert.Equal(t, 1.18, c.Environment.DensityOfAir)
	assert.Equal(t, "redis:6379", c.Store.Redis.Addr)
	assert.Equal(t, 30*time.Minute, c.Store.Redis.TTL)
	assert.Equal(t, 6543, c.Store.Postgres.Port)
	assert.True(t, c.Store.WriteBack)
	assert.Equal(t, 8, c.Sweep.Workers)
}

func TestLoadFromEnv_Invalid(t *testing.T) {
	t.Setenv("SIVAL_SWEEP_POINTS", "many")
	c := config.Default()
	err := c.LoadFromEnv("SIVAL")
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), "SIVAL_SWEEP_POINTS")
}

func TestValidate(t *testing.T) {
	mutate := map[string]func(*config.Config){
		"speed":   func(c *config.Config) { c.Environment.SpeedOfSound = 0 },
		"density": func(c *config.Config) { c.Environment.DensityOfAir = -1 },
		"scale":   func(c *config.Config) { c.Sweep.Scale = "octave" },
		"workers": func(c *config.Config) { c.Sweep.Workers = -2 },
		"grid":    func(c *config.Config) { c.Sweep.Stop = 1 },
	}
	for name, fn := range mutate {
		t.Run(name, func(t *testing.T) {
			c := config.Default()
			fn(c)
			assert.ErrorIs(t, c.Validate(), config.ErrInvalid)
		})
	}
}

func TestApply(t *testing.T) {
	env := environment.New(nil)
	config.EnvironmentConfig{SpeedOfSound: 331.3}.Apply(env)
	assert.Equal(t, 331.3, env.SpeedOfSound())
	assert.Equal(t, environment.DefaultDensityOfAir, env.DensityOfAir())
}
