// backend/database/cache_store_test.go
package database_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/astrorient/skywatch/backend/database"
	"github.com/stretchr/testify/require"
)

func TestCacheStoreWrite(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO space_cache").
		WithArgs("apod", []byte(`{"title":"a"}`)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	store := database.NewCacheStore(db)
	require.NoError(t, store.Write("apod", json.RawMessage(`{"title":"a"}`)))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCacheStoreLatest(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	fetchedAt := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT id, source, fetched_at, payload").
		WithArgs("apod").
		WillReturnRows(sqlmock.NewRows([]string{"id", "source", "fetched_at", "payload"}).
			AddRow(int64(7), "apod", fetchedAt, []byte(`{"title":"a"}`)))

	store := database.NewCacheStore(db)
	entry, err := store.Latest("apod")
	require.NoError(t, err)
	require.NotNil(t, entry)
	require.Equal(t, int64(7), entry.ID)
	require.Equal(t, "apod", entry.Source)
	require.Equal(t, fetchedAt, entry.FetchedAt)
	require.JSONEq(t, `{"title":"a"}`, string(entry.Payload))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCacheStoreLatestNoRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, source, fetched_at, payload").
		WithArgs("neo").
		WillReturnRows(sqlmock.NewRows([]string{"id", "source", "fetched_at", "payload"}))

	store := database.NewCacheStore(db)
	entry, err := store.Latest("neo")
	require.NoError(t, err) // absence is a soft result
	require.Nil(t, entry)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCacheStoreLastN(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	newer := time.Date(2024, 1, 15, 10, 31, 0, 0, time.UTC)
	older := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT id, source, fetched_at, payload").
		WithArgs("position", 2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "source", "fetched_at", "payload"}).
			AddRow(int64(2), "position", newer, []byte(`{"latitude":1}`)).
			AddRow(int64(1), "position", older, []byte(`{"latitude":2}`)))

	store := database.NewCacheStore(db)
	entries, err := store.LastN("position", 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, newer, entries[0].FetchedAt)
	require.Equal(t, older, entries[1].FetchedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}
