package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable efficient full-text search over classified content.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_classifications_text_gin
		ON classifications USING gin(to_tsvector('english', text))`)
	if err != nil {
		return fmt.Errorf("failed to create text GIN index: %w", err)
	}

	return nil
}
