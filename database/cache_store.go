// backend/database/cache_store.go
package database

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/astrorient/skywatch/backend/models"
)

// CacheStore persists raw source snapshots in the append-only space_cache
// table. fetched_at is assigned by the server at insert time.
type CacheStore struct {
	db *sql.DB
}

func NewCacheStore(db *sql.DB) *CacheStore {
	return &CacheStore{db: db}
}

// Write appends one immutable row for the given source.
func (s *CacheStore) Write(source string, payload json.RawMessage) error {
	_, err := s.db.Exec(
		`INSERT INTO space_cache (source, payload) VALUES (?, ?)`,
		source, []byte(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to write cache entry for source %s: %w", source, err)
	}
	return nil
}

// Latest returns the most recent entry for a source, or nil if the source
// has no rows yet. Entries sharing a fetched_at are tie-broken by id.
func (s *CacheStore) Latest(source string) (*models.CacheEntry, error) {
	row := s.db.QueryRow(`
		SELECT id, source, fetched_at, payload
		FROM space_cache
		WHERE source = ?
		ORDER BY fetched_at DESC, id DESC
		LIMIT 1
	`, source)

	var entry models.CacheEntry
	err := row.Scan(&entry.ID, &entry.Source, &entry.FetchedAt, (*[]byte)(&entry.Payload))
	if err == sql.ErrNoRows {
		return nil, nil // no data yet is not an error
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest cache entry for source %s: %w", source, err)
	}
	return &entry, nil
}

// LastN returns up to n entries for a source, newest first.
func (s *CacheStore) LastN(source string, n int) ([]models.CacheEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, source, fetched_at, payload
		FROM space_cache
		WHERE source = ?
		ORDER BY fetched_at DESC, id DESC
		LIMIT ?
	`, source, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query last %d cache entries for source %s: %w", n, source, err)
	}
	defer rows.Close()

	var entries []models.CacheEntry
	for rows.Next() {
		var entry models.CacheEntry
		if err := rows.Scan(&entry.ID, &entry.Source, &entry.FetchedAt, (*[]byte)(&entry.Payload)); err != nil {
			return nil, fmt.Errorf("failed to scan cache entry row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cache entry rows: %w", err)
	}
	return entries, nil
}
