// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"fittrack/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.NAPFATest{},
		&models.Badge{},
		&models.ExerciseEntry{},
		&models.SleepEntry{},
		&models.Goal{},
	); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	createIndexes()

	log.Println("✅ All migrations completed successfully")
}

// createIndexes creates indexes the history scans and leaderboards rely on
func createIndexes() {
	db := GetDB()

	// User indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_leaderboard ON users(show_on_leaderboards)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_school ON users(school)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_class ON users(class)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_age_gender ON users(age, gender)")

	// History indexes: latest-attempt lookups walk id DESC within a user
	db.Exec("CREATE INDEX IF NOT EXISTS idx_napfa_tests_user_id ON napfa_tests(user_id, id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_exercise_entries_user_date ON exercise_entries(user_id, date)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_sleep_entries_user_date ON sleep_entries(user_id, date)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_goals_user ON goals(user_id)")

	log.Println("✅ Indexes created successfully")
}
