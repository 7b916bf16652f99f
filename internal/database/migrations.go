package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds performance-critical indexes to the database
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Membership resolution filters on user_id + status and orders by
		// created_at, so the composite index covers the whole lookup.
		{"memberships", "idx_memberships_user_status_created", "user_id, status, created_at"},
		{"memberships", "idx_memberships_org_id", "org_id"},
	}

	for _, idx := range indexes {
		stmt := fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
