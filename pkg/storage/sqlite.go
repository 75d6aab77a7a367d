package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/trytobebee/gridsnake/pkg/config"
	_ "modernc.org/sqlite"
)

// Store is a small durable key-value table backed by SQLite
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite file at path and its kv table
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps writes serialised on the file
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.createTables(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, query := range queries {
		if _, err := s.db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

// Get returns the value stored under key; ok is false when the key is absent
func (s *Store) Get(ctx context.Context, key string) (value string, ok bool, err error) {
	err = s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value
func (s *Store) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value)
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// BestScore adapts a Store to the game's best-score contract. The score is
// kept as its decimal string under a fixed key.
type BestScore struct {
	Store *Store
	Key   string
}

// NewBestScore uses the default key
func NewBestScore(s *Store) *BestScore {
	return &BestScore{Store: s, Key: config.BestScoreKey}
}

// LoadBest returns 0 when nothing is stored or the stored value is not a number
func (b *BestScore) LoadBest(ctx context.Context) (int, error) {
	v, ok, err := b.Store.Get(ctx, b.Key)
	if err != nil || !ok {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		log.Printf("ignoring invalid best score %q under %q", v, b.Key)
		return 0, nil
	}
	return n, nil
}

func (b *BestScore) SaveBest(ctx context.Context, best int) error {
	return b.Store.Set(ctx, b.Key, strconv.Itoa(best))
}

// Raise stores n only when it beats the stored best. It reports whether it wrote.
func (b *BestScore) Raise(ctx context.Context, n int) (bool, error) {
	current, err := b.LoadBest(ctx)
	if err != nil {
		return false, err
	}
	if n <= current {
		return false, nil
	}
	return true, b.SaveBest(ctx, n)
}
