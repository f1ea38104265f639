package localstate

import (
	"context"
	"database/sql"
)

// Store is a small key/value layer over the state database. It holds the
// handful of values that survive restarts, such as the selected project id.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Get returns the stored value for key. The second return value is false
// when the key has never been written.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	query := "SELECT value FROM client_state WHERE key = ?"
	row := s.db.QueryRowContext(ctx, query, key)
	var value string
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO client_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`
	_, err := s.db.ExecContext(ctx, query, key, value)
	return err
}

func (s *Store) Delete(ctx context.Context, key string) error {
	query := "DELETE FROM client_state WHERE key = ?"
	_, err := s.db.ExecContext(ctx, query, key)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}
