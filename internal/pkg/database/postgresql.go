package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DB struct {
	*pgxpool.Pool
}

type poolSettings struct {
	maxConns    int32
	minConns    int32
	connectWait time.Duration
}

// Option tunes the connection pool.
type Option func(*poolSettings)

// WithPoolSize bounds the pool. Zero keeps the default for that bound.
func WithPoolSize(maxConns, minConns int32) Option {
	return func(s *poolSettings) {
		if maxConns > 0 {
			s.maxConns = maxConns
		}
		if minConns > 0 {
			s.minConns = minConns
		}
	}
}

// WithConnectTimeout bounds the initial ping.
func WithConnectTimeout(d time.Duration) Option {
	return func(s *poolSettings) {
		s.connectWait = d
	}
}

func NewPostgreSQLDB(dsn string, opts ...Option) (*DB, error) {
	settings := poolSettings{
		maxConns:    25,
		minConns:    5,
		connectWait: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(&settings)
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid database dsn: %w", err)
	}

	// Connection pool settings
	config.MaxConns = settings.maxConns
	config.MinConns = min(settings.minConns, settings.maxConns)

	ctx, cancel := context.WithTimeout(context.Background(), settings.connectWait)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{Pool: pool}, nil
}

func (db *DB) BeginTx(ctx context.Context) (pgx.Tx, error) {
	return db.Pool.Begin(ctx)
}

// Querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, arguments ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}
