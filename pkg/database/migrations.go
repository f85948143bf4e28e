package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateJSONIndexes creates PostgreSQL expression indexes over JSON
// payloads that Ent/Atlas cannot express. These must match the indexes
// in the migration files under migrations/.
func CreateJSONIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Webhook callbacks locate crawl jobs by the external crawl id
	// stored inside the details envelope.
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_jobs_firecrawl_id
		ON jobs ((details->'data'->>'firecrawl_id'))`)
	if err != nil {
		return fmt.Errorf("failed to create jobs firecrawl_id index: %w", err)
	}

	return nil
}
