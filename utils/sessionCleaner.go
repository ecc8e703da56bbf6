package utils

import (
	"log"
	"time"

	"porto/database"
	"porto/models"

	"github.com/robfig/cron/v3"
)

// CleanupExpiredSessions hard-deletes session rows that expired or were
// revoked more than a day ago
func CleanupExpiredSessions() {
	cutoff := time.Now().Add(-24 * time.Hour)

	result := database.Database.Db.Unscoped().
		Where("expires_at < ? OR (revoked_at IS NOT NULL AND revoked_at < ?)", cutoff, cutoff).
		Delete(&models.Session{})

	if result.Error != nil {
		log.Printf("[SESSION-CLEANER] Error purging sessions: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("[SESSION-CLEANER] Purged %d stale sessions", result.RowsAffected)
	}
}

// StartSessionCleaner schedules the daily session purge
func StartSessionCleaner() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("@daily", CleanupExpiredSessions); err != nil {
		log.Printf("[SESSION-CLEANER] Failed to schedule: %v", err)
		return c
	}

	c.Start()
	log.Println("[SESSION-CLEANER] Scheduled daily session purge")
	return c
}
