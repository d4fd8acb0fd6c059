// backend/database/catalog_store.go
package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/astrorient/skywatch/backend/models"
)

// CatalogStore persists deduplicated-by-key catalog items.
type CatalogStore struct {
	db *sql.DB
}

func NewCatalogStore(db *sql.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// Upsert writes one catalog item. With a business key it performs an atomic
// insert-or-update keyed on it (last write wins); without one it inserts a
// fresh row that can never collide with anything.
func (s *CatalogStore) Upsert(businessKey, title, status *string, updatedAt *time.Time, raw json.RawMessage) error {
	sqlTitle := toNullString(title)
	sqlStatus := toNullString(status)
	var sqlUpdatedAt sql.NullTime
	if updatedAt != nil {
		sqlUpdatedAt = sql.NullTime{Time: *updatedAt, Valid: true}
	}

	if businessKey != nil {
		_, err := s.db.Exec(`
			INSERT INTO catalog_items (business_key, title, status, updated_at, raw)
			VALUES (?, ?, ?, ?, ?)
			ON DUPLICATE KEY UPDATE
				title = VALUES(title),
				status = VALUES(status),
				updated_at = VALUES(updated_at),
				raw = VALUES(raw)
		`, *businessKey, sqlTitle, sqlStatus, sqlUpdatedAt, []byte(raw))
		if err != nil {
			return fmt.Errorf("failed to upsert catalog item with key %s: %w", *businessKey, err)
		}
		return nil
	}

	_, err := s.db.Exec(`
		INSERT INTO catalog_items (business_key, title, status, updated_at, raw)
		VALUES (NULL, ?, ?, ?, ?)
	`, sqlTitle, sqlStatus, sqlUpdatedAt, []byte(raw))
	if err != nil {
		return fmt.Errorf("failed to insert keyless catalog item: %w", err)
	}
	return nil
}

// List returns catalog items ordered by insertion time, newest first.
func (s *CatalogStore) List(limit int) ([]models.CatalogItem, error) {
	rows, err := s.db.Query(`
		SELECT id, business_key, title, status, updated_at, inserted_at, raw
		FROM catalog_items
		ORDER BY inserted_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog items: %w", err)
	}
	defer rows.Close()

	var items []models.CatalogItem
	for rows.Next() {
		var item models.CatalogItem
		var key, title, status sql.NullString
		var updatedAt sql.NullTime

		err := rows.Scan(&item.ID, &key, &title, &status, &updatedAt, &item.InsertedAt, (*[]byte)(&item.Raw))
		if err != nil {
			log.Printf("ERROR Database: failed to scan catalog item row: %v", err)
			continue
		}
		if key.Valid {
			item.BusinessKey = &key.String
		}
		if title.Valid {
			item.Title = &title.String
		}
		if status.Valid {
			item.Status = &status.String
		}
		if updatedAt.Valid {
			item.UpdatedAt = &updatedAt.Time
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating catalog item rows: %w", err)
	}
	return items, nil
}

// Count returns the total number of catalog rows.
func (s *CatalogStore) Count() (int64, error) {
	var count int64
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM catalog_items`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count catalog items: %w", err)
	}
	return count, nil
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
