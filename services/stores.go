// backend/services/stores.go
package services

import (
	"encoding/json"
	"time"

	"github.com/astrorient/skywatch/backend/models"
)

// CacheStore is the persistence contract for raw source snapshots:
// append-only writes and latest-per-source reads. database.CacheStore is the
// production implementation.
type CacheStore interface {
	Write(source string, payload json.RawMessage) error
	Latest(source string) (*models.CacheEntry, error)
	LastN(source string, n int) ([]models.CacheEntry, error)
}

// CatalogStore is the persistence contract for deduplicated catalog items.
// The keyed upsert must be atomic in the persistence layer, not a
// read-then-write. database.CatalogStore is the production implementation.
type CatalogStore interface {
	Upsert(businessKey, title, status *string, updatedAt *time.Time, raw json.RawMessage) error
	List(limit int) ([]models.CatalogItem, error)
	Count() (int64, error)
}

// CollectionSource yields zero or more items per fetch, envelope already
// resolved. fetcher.CatalogSource is the production implementation.
type CollectionSource interface {
	FetchItems() ([]json.RawMessage, error)
}
