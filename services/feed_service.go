// backend/services/feed_service.go
package services

import (
	"fmt"
	"log"

	"github.com/astrorient/skywatch/backend/fetcher"
	"github.com/astrorient/skywatch/backend/models"
)

// FeedService owns the registry of cache sources and assembles the
// cross-source summary. Sources are registered once at startup; the set is
// fixed for the process lifetime.
type FeedService struct {
	cache   CacheStore
	catalog CatalogStore
	sources map[string]fetcher.Source
	order   []string
}

func NewFeedService(cache CacheStore, catalog CatalogStore) *FeedService {
	return &FeedService{
		cache:   cache,
		catalog: catalog,
		sources: make(map[string]fetcher.Source),
	}
}

// RegisterSource adds a source under its tag. Registering a tag twice
// replaces the source but keeps its position in the summary order.
func (s *FeedService) RegisterSource(tag string, source fetcher.Source) {
	if _, exists := s.sources[tag]; !exists {
		s.order = append(s.order, tag)
	}
	s.sources[tag] = source
}

// Tags returns the registered source tags in registration order.
func (s *FeedService) Tags() []string {
	tags := make([]string, len(s.order))
	copy(tags, s.order)
	return tags
}

// FetchSource fetches one source and appends the payload to the cache.
func (s *FeedService) FetchSource(tag string) error {
	source, ok := s.sources[tag]
	if !ok {
		return fmt.Errorf("unknown feed source: %s", tag)
	}
	payload, err := source.Fetch()
	if err != nil {
		return err
	}
	return s.cache.Write(tag, payload)
}

// Latest returns the most recent cache entry for a tag, nil when the tag has
// no data yet.
func (s *FeedService) Latest(tag string) (*models.CacheEntry, error) {
	return s.cache.Latest(tag)
}

// Refresh executes the fetch-and-store path for every requested tag and
// returns the tags that fully succeeded. Unknown tags are silently skipped;
// one source's failure never aborts the batch.
func (s *FeedService) Refresh(tags []string) []string {
	refreshed := []string{}
	for _, tag := range tags {
		if _, ok := s.sources[tag]; !ok {
			continue
		}
		if err := s.FetchSource(tag); err != nil {
			log.Printf("WARN Service: refresh of %s failed: %v", tag, err)
			continue
		}
		refreshed = append(refreshed, tag)
	}
	return refreshed
}

// Summary assembles the latest state of every registered source, the latest
// position sample and the catalog count. Read failures degrade to empty
// placeholders instead of failing the whole call.
func (s *FeedService) Summary() (*models.Summary, error) {
	sources := make(map[string]interface{}, len(s.order))
	for _, tag := range s.order {
		sources[tag] = s.latestOrEmpty(tag)
	}

	var position interface{} = map[string]interface{}{}
	if entry, err := s.cache.Latest(SourcePosition); err == nil && entry != nil {
		position = map[string]interface{}{
			"at":      entry.FetchedAt,
			"payload": entry.Payload,
		}
	}

	count, err := s.catalog.Count()
	if err != nil {
		log.Printf("WARN Service: catalog count unavailable for summary: %v", err)
	}

	return &models.Summary{
		Sources:      sources,
		Position:     position,
		CatalogCount: count,
	}, nil
}

func (s *FeedService) latestOrEmpty(tag string) interface{} {
	entry, err := s.cache.Latest(tag)
	if err != nil || entry == nil {
		return map[string]interface{}{}
	}
	return map[string]interface{}{
		"at":      entry.FetchedAt,
		"payload": entry.Payload,
	}
}
