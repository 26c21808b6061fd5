package migrations

import (
	"gorm.io/gorm"
)

// Migration001AddInboxIndexes adds composite indexes for the admin inbox
// listings and the dashboard counters, which all filter on status and
// order by created_at. AutoMigrate only creates the single-column
// indexes declared in model tags.
func Migration001AddInboxIndexes() Migration {
	return Migration{
		ID:   "001_add_inbox_indexes",
		Name: "Add status/created_at indexes for submission inboxes",
		Up: func(db *gorm.DB) error {
			indexes := []string{
				`CREATE INDEX IF NOT EXISTS idx_contact_submissions_status_created
					ON contact_submissions (status, created_at DESC)`,
				`CREATE INDEX IF NOT EXISTS idx_early_access_requests_status_created
					ON early_access_requests (status, created_at DESC)`,
				`CREATE INDEX IF NOT EXISTS idx_bookings_status_created
					ON bookings (status, created_at DESC)`,
				`CREATE INDEX IF NOT EXISTS idx_reviews_status_created
					ON reviews (status, created_at DESC)`,
				`CREATE INDEX IF NOT EXISTS idx_launch_updates_published_created
					ON launch_updates (is_published, created_at DESC)`,
			}
			for _, idx := range indexes {
				if err := db.Exec(idx).Error; err != nil {
					return err
				}
			}
			return nil
		},
	}
}
