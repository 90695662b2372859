package vocabstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"seqtext/internal/vocab"
)

// ErrNotFound reports a vocabulary name with no stored entry.
var ErrNotFound = errors.New("vocabulary not found")

// Store manages vocabulary persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Summary describes one stored vocabulary.
type Summary struct {
	Name      string    `json:"name"`
	Tokens    int       `json:"tokens"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Open initializes or connects to the vocabulary database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save replaces the tokens stored under name with v.
func (s *Store) Save(ctx context.Context, name string, v vocab.Vocabulary) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("save vocabulary: name is required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	var vocabID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO vocabularies (name, updated_at) VALUES (?, ?)
         ON CONFLICT(name) DO UPDATE SET updated_at = excluded.updated_at
         RETURNING id`,
		name, now,
	).Scan(&vocabID)
	if err != nil {
		return fmt.Errorf("upsert vocabulary %q: %w", name, err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM tokens WHERE vocabulary_id = ?", vocabID); err != nil {
		return fmt.Errorf("clear tokens for %q: %w", name, err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO tokens (vocabulary_id, token, token_id) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare token insert: %w", err)
	}
	defer stmt.Close()

	for token, id := range v {
		if _, err := stmt.ExecContext(ctx, vocabID, token, id); err != nil {
			return fmt.Errorf("insert token %q: %w", token, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit vocabulary %q: %w", name, err)
	}
	return nil
}

// Load returns the vocabulary stored under name.
func (s *Store) Load(ctx context.Context, name string) (vocab.Vocabulary, error) {
	var vocabID int64
	err := s.db.QueryRowContext(ctx, "SELECT id FROM vocabularies WHERE name = ?", name).Scan(&vocabID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("load vocabulary %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load vocabulary %q: %w", name, err)
	}

	rows, err := s.db.QueryContext(ctx, "SELECT token, token_id FROM tokens WHERE vocabulary_id = ?", vocabID)
	if err != nil {
		return nil, fmt.Errorf("query tokens for %q: %w", name, err)
	}
	defer rows.Close()

	v := make(vocab.Vocabulary)
	for rows.Next() {
		var (
			token string
			id    int
		)
		if err := rows.Scan(&token, &id); err != nil {
			return nil, fmt.Errorf("scan token: %w", err)
		}
		v[token] = id
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tokens for %q: %w", name, err)
	}
	return v, nil
}

// List returns every stored vocabulary ordered by name.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT v.name, v.updated_at, COUNT(t.token)
         FROM vocabularies v
         LEFT JOIN tokens t ON t.vocabulary_id = v.id
         GROUP BY v.id
         ORDER BY v.name`)
	if err != nil {
		return nil, fmt.Errorf("list vocabularies: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var (
			summary    Summary
			updatedRaw string
		)
		if err := rows.Scan(&summary.Name, &updatedRaw, &summary.Tokens); err != nil {
			return nil, fmt.Errorf("scan vocabulary summary: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339Nano, updatedRaw); err == nil {
			summary.UpdatedAt = ts
		}
		out = append(out, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vocabularies: %w", err)
	}
	return out, nil
}

// Delete removes the vocabulary stored under name.
func (s *Store) Delete(ctx context.Context, name string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM tokens WHERE vocabulary_id = (SELECT id FROM vocabularies WHERE name = ?)", name,
	); err != nil {
		return fmt.Errorf("delete tokens for %q: %w", name, err)
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM vocabularies WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("delete vocabulary %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete vocabulary %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("delete vocabulary %q: %w", name, ErrNotFound)
	}
	return tx.Commit()
}
