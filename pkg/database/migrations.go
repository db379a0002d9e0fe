package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable efficient full-text search on mission objectives from the
// admin console.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_missions_objective_gin
		ON missions USING gin(to_tsvector('english', objective))`)
	if err != nil {
		return fmt.Errorf("failed to create objective GIN index: %w", err)
	}

	return nil
}
