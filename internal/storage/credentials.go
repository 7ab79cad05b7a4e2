package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vovakirdan/mazechase/internal/auth"
)

// Credentials returns an auth.RecordStore backed by the credentials table.
// The returned store does not own the connection; close the Store instead.
func (s *Store) Credentials() auth.RecordStore {
	return sqliteCredentials{db: s.db}
}

type sqliteCredentials struct {
	db *sql.DB
}

func (c sqliteCredentials) Lookup(ctx context.Context, username string) (string, error) {
	var digest string
	err := c.db.QueryRowContext(ctx,
		"SELECT digest FROM credentials WHERE username = ?", username,
	).Scan(&digest)
	if errors.Is(err, sql.ErrNoRows) {
		return "", auth.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("storage: cannot query credentials: %w", err)
	}
	return digest, nil
}

func (c sqliteCredentials) Insert(ctx context.Context, username, digest string) error {
	res, err := c.db.ExecContext(ctx,
		"INSERT INTO credentials (username, digest) VALUES (?, ?) ON CONFLICT(username) DO NOTHING",
		username, digest,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot insert credentials: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot read rows affected: %w", err)
	}
	if n == 0 {
		return auth.ErrAlreadyExists
	}
	return nil
}

func (c sqliteCredentials) Close() error { return nil }
