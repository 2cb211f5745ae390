package main

import (
	"context"
	"database/sql"
	"io"

	"github.com/go-redis/redis/v8"
	"github.com/katalvlaran/sival/config"
	"github.com/katalvlaran/sival/environment"
	"github.com/katalvlaran/sival/internal/logging"
	"github.com/katalvlaran/sival/resolver"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app is the state shared by every subcommand.
type app struct {
	configPath string
	verbose    bool

	cfg     *config.Config
	log     *zap.Logger
	env     *environment.Environment
	closers []io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "sival",
		Short: "Loudspeaker driver derivation and enclosure response tool",
		Long: `sival completes partially specified driver data sheets (Thiele-Small
derivation with unit normalisation) and evaluates closed-box impedance and
SPL responses.

Driver identifiers are tried as file paths first, then as keys in the
configured stores (driver directory, Redis, PostgreSQL).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.Context())
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.close()
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newDeriveCmd(a),
		newResponseCmd(a, impedanceCommand),
		newResponseCmd(a, splCommand),
		newCompareCmd(a),
	)

	return root
}

// init loads configuration, builds the logger and wires the resolver chain.
func (a *app) init(ctx context.Context) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if err := cfg.LoadFromEnv("SIVAL"); err != nil {
		return err
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.log, err = logging.New(cfg.Log.Level, cfg.Log.Format, "sival"); err != nil {
		return err
	}

	chain, err := a.resolverChain(ctx)
	if err != nil {
		a.close()

		return err
	}
	a.env = environment.New(chain)
	cfg.Environment.Apply(a.env)

	return nil
}

func (a *app) resolverChain(ctx context.Context) (*resolver.Chain, error) {
	sc := a.cfg.Store
	opts := []resolver.ChainOption{resolver.WithPathRoot(""), resolver.WithLogger(a.log)}
	if sc.DriverDir != "" {
		opts = append(opts, resolver.WithStore("dir", resolver.NewDirStore(sc.DriverDir)))
	}
	if sc.Redis.Addr != "" {
		rdb, err := resolver.DialRedis(ctx, sc.Redis.Addr, sc.Redis.Password, sc.Redis.DB)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, rdb)
		opts = append(opts, resolver.WithStore("redis", redisStore(rdb, sc.Redis)))
		a.log.Debug("redis store enabled", zap.String("addr", sc.Redis.Addr))
	}
	if sc.Postgres.Host != "" {
		db, err := resolver.OpenPostgres(ctx, sc.Postgres.GetDSN(), sc.Postgres.MaxConns)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db)
		ps, err := postgresStore(db, sc.Postgres.Table)
		if err != nil {
			return nil, err
		}
		opts = append(opts, resolver.WithStore("postgres", ps))
		a.log.Debug("postgres store enabled", zap.String("host", sc.Postgres.Host))
	}
	if sc.WriteBack {
		opts = append(opts, resolver.WithWriteBack())
	}

	return resolver.NewChain(opts...), nil
}

func redisStore(rdb *redis.Client, rc config.RedisConfig) *resolver.RedisStore {
	opts := []resolver.RedisOption{resolver.WithTTL(rc.TTL)}
	if rc.Prefix != "" {
		opts = append(opts, resolver.WithPrefix(rc.Prefix))
	}

	return resolver.NewRedisStore(rdb, opts...)
}

func postgresStore(db *sql.DB, table string) (*resolver.PostgresStore, error) {
	if table == "" {
		return resolver.NewPostgresStore(db), nil
	}

	return resolver.NewPostgresStoreTable(db, table)
}

func (a *app) close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil && a.log != nil {
			a.log.Warn("close failed", zap.Error(err))
		}
	}
	a.closers = nil
	if a.log != nil {
		_ = a.log.Sync()
	}
}
