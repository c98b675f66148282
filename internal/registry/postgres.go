package registry

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps the used-token set in PostgreSQL, making the replay
// guarantee hold across replicas. The primary key constraint provides the
// atomic insert-if-absent.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a store on top of an existing pool
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the used_tokens table if it does not exist
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS used_tokens (
			token_id TEXT PRIMARY KEY,
			used_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	if _, err := s.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create used_tokens table: %w", err)
	}
	return nil
}

// Add inserts the id, reporting false when it was already present
func (s *PostgresStore) Add(ctx context.Context, tokenID string) (bool, error) {
	query := `INSERT INTO used_tokens (token_id) VALUES ($1) ON CONFLICT (token_id) DO NOTHING`
	tag, err := s.db.Exec(ctx, query, tokenID)
	if err != nil {
		return false, fmt.Errorf("failed to mark token used: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Contains reports whether the id has been recorded
func (s *PostgresStore) Contains(ctx context.Context, tokenID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM used_tokens WHERE token_id = $1)`
	var exists bool
	if err := s.db.QueryRow(ctx, query, tokenID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check token: %w", err)
	}
	return exists, nil
}

// Remove forgets the id
func (s *PostgresStore) Remove(ctx context.Context, tokenID string) error {
	query := `DELETE FROM used_tokens WHERE token_id = $1`
	if _, err := s.db.Exec(ctx, query, tokenID); err != nil {
		return fmt.Errorf("failed to remove token: %w", err)
	}
	return nil
}
