package resolver

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	"github.com/lib/pq"
)

// DefaultTable holds driver records in PostgresStore.
const DefaultTable = "driver_records"

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// PostgresStore keeps one row per key:
//
//	CREATE TABLE driver_records (key TEXT PRIMARY KEY, record BYTEA NOT NULL);
type PostgresStore struct {
	db     *sql.DB
	get    string
	upsert string
}

// NewPostgresStore uses DefaultTable.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	s, _ := NewPostgresStoreTable(db, DefaultTable)

	return s
}

// NewPostgresStoreTable uses the given table, which must be a plain
// identifier.
func NewPostgresStoreTable(db *sql.DB, table string) (*PostgresStore, error) {
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTable, table)
	}
	t := pq.QuoteIdentifier(table)

	return &PostgresStore{
		db:  db,
		get: "SELECT record FROM " + t + " WHERE key = $1",
		upsert: "INSERT INTO " + t + " (key, record) VALUES ($1, $2) " +
			"ON CONFLICT (key) DO UPDATE SET record = EXCLUDED.record",
	}, nil
}

// OpenPostgres opens a lib/pq connection pool and pings it.
func OpenPostgres(ctx context.Context, dsn string, maxConns int) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if maxConns > 0 {
		db.SetMaxOpenConns(maxConns)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}

// Get implements Store.
func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, s.get, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("postgres get %s: %w", key, err)
	}

	return data, nil
}

// Put implements Store.
func (s *PostgresStore) Put(ctx context.Context, key string, data []byte) error {
	if _, err := s.db.ExecContext(ctx, s.upsert, key, data); err != nil {
		return fmt.Errorf("postgres put %s: %w", key, err)
	}

	return nil
}
