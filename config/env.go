package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// envReader reads prefixed variables and keeps the first parse error.
type envReader struct {
	prefix string
	err    error
}

func (r *envReader) lookup(name string) (string, bool) {
	v := os.Getenv(r.prefix + "_" + name)

	return v, v != ""
}

func (r *envReader) str(name string, dst *string) {
	if v, ok := r.lookup(name); ok {
		*dst = v
	}
}

func (r *envReader) integer(name string, dst *int) {
	v, ok := r.lookup(name)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.fail(name, v)

		return
	}
	*dst = n
}

func (r *envReader) number(name string, dst *float64) {
	v, ok := r.lookup(name)
	if !ok {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.fail(name, v)

		return
	}
	*dst = f
}

func (r *envReader) flag(name string, dst *bool) {
	v, ok := r.lookup(name)
	if !ok {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.fail(name, v)

		return
	}
	*dst = b
}

func (r *envReader) duration(name string, dst *time.Duration) {
	v, ok := r.lookup(name)
	if !ok {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.fail(name, v)

		return
	}
	*dst = d
}

func (r *envReader) fail(name, value string) {
	if r.err == nil {
		r.err = fmt.Errorf("%w: %s_%s=%q", ErrInvalid, r.prefix, name, value)
	}
}

// LoadFromEnv overrides c from variables named <prefix>_<SECTION>_<KEY>,
// e.g. SIVAL_ENV_SPEED_OF_SOUND, SIVAL_REDIS_ADDR, SIVAL_DB_HOST.
func (c *Config) LoadFromEnv(prefix string) error {
	r := &envReader{prefix: prefix}

	r.number("ENV_SPEED_OF_SOUND", &c.Environment.SpeedOfSound)
	r.number("ENV_DENSITY_OF_AIR", &c.Environment.DensityOfAir)

	r.str("LOG_LEVEL", &c.Log.Level)
	r.str("LOG_FORMAT", &c.Log.Format)

	r.str("DRIVER_DIR", &c.Store.DriverDir)
	r.flag("WRITE_BACK", &c.Store.WriteBack)
	c.Store.Redis.loadFromEnv(r)
	c.Store.Postgres.loadFromEnv(r)

	r.number("SWEEP_START", &c.Sweep.Start)
	r.number("SWEEP_STOP", &c.Sweep.Stop)
	r.integer("SWEEP_POINTS", &c.Sweep.Points)
	r.str("SWEEP_SCALE", &c.Sweep.Scale)
	r.integer("SWEEP_WORKERS", &c.Sweep.Workers)

	return r.err
}

func (c *RedisConfig) loadFromEnv(r *envReader) {
	r.str("REDIS_ADDR", &c.Addr)
	r.str("REDIS_PASSWORD", &c.Password)
	r.integer("REDIS_DB", &c.DB)
	r.str("REDIS_PREFIX", &c.Prefix)
	r.duration("REDIS_TTL", &c.TTL)
}

func (c *DatabaseConfig) loadFromEnv(r *envReader) {
	r.str("DB_HOST", &c.Host)
	r.integer("DB_PORT", &c.Port)
	r.str("DB_USER", &c.User)
	r.str("DB_PASSWORD", &c.Password)
	r.str("DB_DATABASE", &c.Database)
	r.str("DB_SSLMODE", &c.SSLMode)
	r.integer("DB_MAX_CONNS", &c.MaxConns)
	r.str("DB_TABLE", &c.Table)
}
