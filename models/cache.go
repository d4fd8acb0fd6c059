// backend/models/cache.go
package models

import (
	"encoding/json"
	"time"
)

// CacheEntry is one immutable, timestamped snapshot of a source's raw
// response. Rows are append-only; they are never mutated or deleted.
type CacheEntry struct {
	ID        int64           `db:"id" json:"id"`
	Source    string          `db:"source" json:"source"`
	FetchedAt time.Time       `db:"fetched_at" json:"fetched_at"`
	Payload   json.RawMessage `db:"payload" json:"payload"`
}
