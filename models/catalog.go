// backend/models/catalog.go
package models

import (
	"encoding/json"
	"time"
)

// CatalogItem is one record synced from the collection-shaped catalog
// upstream. BusinessKey, when present, deduplicates the item across syncs
// (last write wins); items without a key are stored as independent rows.
// Raw always carries the upstream document verbatim.
type CatalogItem struct {
	ID          int64           `db:"id" json:"id"`
	BusinessKey *string         `db:"business_key" json:"business_key,omitempty"`
	Title       *string         `db:"title" json:"title,omitempty"`
	Status      *string         `db:"status" json:"status,omitempty"`
	UpdatedAt   *time.Time      `db:"updated_at" json:"updated_at,omitempty"`
	InsertedAt  time.Time       `db:"inserted_at" json:"inserted_at"`
	Raw         json.RawMessage `db:"raw" json:"raw"`
}
