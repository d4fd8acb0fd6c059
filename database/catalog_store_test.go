// backend/database/catalog_store_test.go
package database_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/astrorient/skywatch/backend/database"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCatalogStoreUpsertWithKey(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	updatedAt := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	mock.ExpectExec("ON DUPLICATE KEY UPDATE").
		WithArgs("OSD-1", "Study", "active", updatedAt, []byte(`{"dataset_id":"OSD-1"}`)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	store := database.NewCatalogStore(db)
	err = store.Upsert(strPtr("OSD-1"), strPtr("Study"), strPtr("active"), &updatedAt,
		json.RawMessage(`{"dataset_id":"OSD-1"}`))
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogStoreInsertWithoutKey(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// keyless insert takes four args: title, status, updated_at, raw
	mock.ExpectExec("INSERT INTO catalog_items").
		WithArgs("Untitled", nil, nil, []byte(`{"name":"Untitled"}`)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	store := database.NewCatalogStore(db)
	err = store.Upsert(nil, strPtr("Untitled"), nil, nil, json.RawMessage(`{"name":"Untitled"}`))
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogStoreList(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	insertedAt := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT id, business_key, title, status, updated_at, inserted_at, raw").
		WithArgs(20).
		WillReturnRows(sqlmock.NewRows([]string{"id", "business_key", "title", "status", "updated_at", "inserted_at", "raw"}).
			AddRow(int64(2), "OSD-1", "Study", "active", insertedAt, insertedAt, []byte(`{}`)).
			AddRow(int64(1), nil, nil, nil, nil, insertedAt, []byte(`{}`)))

	store := database.NewCatalogStore(db)
	items, err := store.List(20)
	require.NoError(t, err)
	require.Len(t, items, 2)

	require.NotNil(t, items[0].BusinessKey)
	require.Equal(t, "OSD-1", *items[0].BusinessKey)
	require.NotNil(t, items[0].Title)
	require.Equal(t, "Study", *items[0].Title)

	require.Nil(t, items[1].BusinessKey)
	require.Nil(t, items[1].Title)
	require.Nil(t, items[1].Status)
	require.Nil(t, items[1].UpdatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogStoreCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(42)))

	store := database.NewCatalogStore(db)
	count, err := store.Count()
	require.NoError(t, err)
	require.Equal(t, int64(42), count)
	require.NoError(t, mock.ExpectationsWereMet())
}
