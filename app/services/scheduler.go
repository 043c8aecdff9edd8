package services

import (
	"database/sql"
	"log"
	"time"

	"github.com/CipherCosmos/dsaba-lms-04-sub000/app/database"
)

// StartScheduler starts the background task scheduler
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 00:05 so survey windows close on the day they expire
			if now.Hour() == 0 && now.Minute() == 5 {
				log.Println("Triggering scheduled tasks [00:05]...")

				closed, err := database.CloseExpiredSurveys(db)
				if err != nil {
					log.Printf("Error closing expired surveys: %v", err)
				} else if closed > 0 {
					log.Printf("Closed %d expired surveys", closed)
				}
			}
		}
	}()
}
