// backend/services/catalog_service.go
package services

import (
	"log"

	"github.com/astrorient/skywatch/backend/config"
	"github.com/astrorient/skywatch/backend/models"
	"github.com/astrorient/skywatch/backend/utils"
)

// CatalogService syncs the collection-shaped upstream into the catalog
// store, extracting dedup key, title, status and updated-at through the
// configured candidate lists.
type CatalogService struct {
	store  CatalogStore
	source CollectionSource
	fields config.ExtractionConfig
}

func NewCatalogService(store CatalogStore, source CollectionSource, fields config.ExtractionConfig) *CatalogService {
	return &CatalogService{store: store, source: source, fields: fields}
}

// Sync fetches the upstream collection and upserts every item, storing the
// raw document verbatim alongside the extracted fields. An item that fails
// to persist is skipped; the count of written items is returned.
func (s *CatalogService) Sync() (int, error) {
	items, err := s.source.FetchItems()
	if err != nil {
		return 0, err
	}

	written := 0
	for _, item := range items {
		key := utils.PickString(item, s.fields.KeyFields...)
		title := utils.PickString(item, s.fields.TitleFields...)
		status := utils.PickString(item, s.fields.StatusFields...)
		updatedAt := utils.PickTime(item, s.fields.UpdatedFields...)

		if err := s.store.Upsert(key, title, status, updatedAt, item); err != nil {
			log.Printf("WARN Service: catalog upsert failed, skipping item: %v", err)
			continue
		}
		written++
	}

	log.Printf("Service: catalog sync wrote %d of %d items", written, len(items))
	return written, nil
}

// List returns catalog items, newest insertions first.
func (s *CatalogService) List(limit int) ([]models.CatalogItem, error) {
	return s.store.List(limit)
}

// Count returns the total number of catalog rows.
func (s *CatalogService) Count() (int64, error) {
	return s.store.Count()
}
