// backend/database/schema.go
package database

import (
	"database/sql"
	"fmt"
	"log"
)

// InitSchema creates the cache and catalog tables if they do not exist yet.
// The unique key on catalog_items.business_key covers only non-NULL values
// (MySQL permits repeated NULLs in a unique index), which is what keeps
// keyless rows independent of each other.
func InitSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS space_cache (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			source VARCHAR(64) NOT NULL,
			fetched_at TIMESTAMP(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
			payload JSON NOT NULL,
			INDEX ix_space_cache_source (source, fetched_at)
		)`,
		`CREATE TABLE IF NOT EXISTS catalog_items (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			business_key VARCHAR(191) NULL,
			title TEXT NULL,
			status VARCHAR(128) NULL,
			updated_at DATETIME NULL,
			inserted_at TIMESTAMP(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
			raw JSON NOT NULL,
			UNIQUE KEY ux_catalog_business_key (business_key),
			INDEX ix_catalog_inserted (inserted_at)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}

	log.Println("Database: schema initialized")
	return nil
}
