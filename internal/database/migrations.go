package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AddIndexes adds indexes for the hot listing and aggregation paths.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Listing filters to OPEN rows inside the 30-day window; the summary
		// groups the same window by urgency, status and area.
		{"help_requests", "idx_help_requests_status_created_at", "status, created_at"},
		{"help_requests", "idx_help_requests_urgency", "urgency"},
		{"help_requests", "idx_help_requests_approx_area", "approx_area"},

		{"donations", "idx_donations_help_request_id", "help_request_id"},
		{"donations", "idx_donations_donator_id", "donator_id"},

		{"refresh_tokens", "idx_refresh_tokens_user_id", "user_id"},
		{"refresh_tokens", "idx_refresh_tokens_expires_at", "expires_at"},
	}

	for _, idx := range indexes {
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, idx.table, idx.name).Count(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		logrus.WithField("index", idx.name).Info("created index")
	}

	return nil
}
