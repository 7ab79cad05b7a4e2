package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vovakirdan/mazechase/internal/auth"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS credentials (
    username TEXT PRIMARY KEY,
    digest TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// PostgresCredentials implements auth.RecordStore using PostgreSQL.
type PostgresCredentials struct {
	pool *pgxpool.Pool
}

var _ auth.RecordStore = (*PostgresCredentials)(nil)

// NewPostgresCredentials connects to PostgreSQL and initializes the schema.
func NewPostgresCredentials(ctx context.Context, databaseURL string) (*PostgresCredentials, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open postgres pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("storage: cannot connect to postgres: %w", err)
	}

	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("storage: postgres migration failed: %w", err)
	}

	return &PostgresCredentials{pool: pool}, nil
}

// Lookup returns the digest for username.
func (p *PostgresCredentials) Lookup(ctx context.Context, username string) (string, error) {
	var digest string
	err := p.pool.QueryRow(ctx,
		`SELECT digest FROM credentials WHERE username = $1`, username,
	).Scan(&digest)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", auth.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("storage: cannot query credentials: %w", err)
	}
	return digest, nil
}

// Insert adds a record unless the username is taken.
func (p *PostgresCredentials) Insert(ctx context.Context, username, digest string) error {
	tag, err := p.pool.Exec(ctx,
		`INSERT INTO credentials (username, digest) VALUES ($1, $2)
		 ON CONFLICT (username) DO NOTHING`,
		username, digest,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot insert credentials: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrAlreadyExists
	}
	return nil
}

// Close releases database resources.
func (p *PostgresCredentials) Close() error {
	p.pool.Close()
	return nil
}
