// backend/services/fakes_test.go
package services_test

import (
	"encoding/json"
	"time"

	"github.com/astrorient/skywatch/backend/models"
)

// fakeCacheStore keeps entries in memory, newest first per source.
type fakeCacheStore struct {
	entries   map[string][]models.CacheEntry
	writeErr  error
	nextID    int64
	clock     time.Time
	clockStep time.Duration
}

func newFakeCacheStore() *fakeCacheStore {
	return &fakeCacheStore{
		entries:   make(map[string][]models.CacheEntry),
		clock:     time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		clockStep: time.Minute,
	}
}

func (f *fakeCacheStore) Write(source string, payload json.RawMessage) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.nextID++
	entry := models.CacheEntry{
		ID:        f.nextID,
		Source:    source,
		FetchedAt: f.clock,
		Payload:   payload,
	}
	f.clock = f.clock.Add(f.clockStep)
	f.entries[source] = append([]models.CacheEntry{entry}, f.entries[source]...)
	return nil
}

func (f *fakeCacheStore) Latest(source string) (*models.CacheEntry, error) {
	rows := f.entries[source]
	if len(rows) == 0 {
		return nil, nil
	}
	entry := rows[0]
	return &entry, nil
}

func (f *fakeCacheStore) LastN(source string, n int) ([]models.CacheEntry, error) {
	rows := f.entries[source]
	if len(rows) > n {
		rows = rows[:n]
	}
	return rows, nil
}

// fakeSource returns a canned payload or error.
type fakeSource struct {
	payload json.RawMessage
	err     error
}

func (f *fakeSource) Fetch() (json.RawMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

type upsertCall struct {
	businessKey *string
	title       *string
	status      *string
	updatedAt   *time.Time
	raw         json.RawMessage
}

// fakeCatalogStore records upserts and serves canned reads.
type fakeCatalogStore struct {
	upserts   []upsertCall
	upsertErr func(call upsertCall) error
	items     []models.CatalogItem
	count     int64
	countErr  error
}

func (f *fakeCatalogStore) Upsert(businessKey, title, status *string, updatedAt *time.Time, raw json.RawMessage) error {
	call := upsertCall{businessKey: businessKey, title: title, status: status, updatedAt: updatedAt, raw: raw}
	if f.upsertErr != nil {
		if err := f.upsertErr(call); err != nil {
			return err
		}
	}
	f.upserts = append(f.upserts, call)
	return nil
}

func (f *fakeCatalogStore) List(limit int) ([]models.CatalogItem, error) {
	if len(f.items) > limit {
		return f.items[:limit], nil
	}
	return f.items, nil
}

func (f *fakeCatalogStore) Count() (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.count, nil
}

// fakeCollectionSource returns canned collection items.
type fakeCollectionSource struct {
	items []json.RawMessage
	err   error
}

func (f *fakeCollectionSource) FetchItems() ([]json.RawMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}
