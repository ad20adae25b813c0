package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	SSLMode  string
}

type DB struct {
	Pool *pgxpool.Pool
}

const schema = `
CREATE TABLE IF NOT EXISTS solve_results (
	id          TEXT PRIMARY KEY,
	problem     TEXT NOT NULL,
	answer      JSONB,
	window_json JSONB,
	error       TEXT NOT NULL DEFAULT '',
	duration_ns BIGINT NOT NULL,
	solved_at   TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS solve_results_problem_solved_at_idx
	ON solve_results (problem, solved_at DESC);
`

func New(ctx context.Context, config Config) (*DB, error) {
	connString := config.ConnectionString()
	pgPool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &DB{
		Pool: pgPool,
	}, nil
}

// NewWithBackoff connects and pings, retrying with exponential backoff.
// It always makes at least one attempt.
func NewWithBackoff(ctx context.Context, config Config, maxRetries int) (*DB, error) {
	if maxRetries < 1 {
		maxRetries = 1
	}

	db, err := New(ctx, config)
	if err != nil {
		return nil, err
	}

	for i := range maxRetries {
		if i > 0 {
			backoff := time.Duration(1<<uint(i)) * time.Second
			log.Info().Dur("backoff", backoff).Msg("Waiting before database retry")

			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				db.Close()
				return nil, ctx.Err()
			}
		}

		if err = db.Ping(ctx); err == nil {
			log.Info().Int("attempts_needed", i+1).Str("host", config.Host).Msg("Database connected")
			return db, nil
		}

		log.Warn().Err(err).Int("attempt", i+1).Msg("Database ping failed")
	}

	db.Close()
	return nil, fmt.Errorf("failed to reach database after %d attempts: %w", maxRetries, err)
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s", c.User, c.Password, c.Host, c.Port, c.Database, c.SSLMode)
}

func (db *DB) Ping(ctx context.Context) error {
	if err := db.Pool.Ping(ctx); err != nil {
		return err
	}

	return nil
}

// EnsureSchema creates the history table when it does not exist yet.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.Pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (db *DB) Close() {
	db.Pool.Close()
}
