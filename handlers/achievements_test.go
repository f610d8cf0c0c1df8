package handlers

import (
	"testing"
	"time"

	"fittrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// One connection so every query sees the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.NAPFATest{},
		&models.Badge{},
		&models.ExerciseEntry{},
		&models.SleepEntry{},
		&models.Goal{},
	))
	return db
}

func seedUserWithWorkouts(t *testing.T, db *gorm.DB, n int) models.User {
	t.Helper()

	user := models.User{Username: "ana", Password: "x", Age: 14, Gender: "f"}
	require.NoError(t, db.Create(&user).Error)

	// Spaced out so only workout-count badges trigger, not streaks
	for i := 0; i < n; i++ {
		entry := models.ExerciseEntry{
			UserID:          user.ID,
			Date:            time.Now().AddDate(0, 0, -i*10),
			Name:            "Run",
			DurationMinutes: 30,
		}
		require.NoError(t, db.Create(&entry).Error)
	}
	return user
}

func TestRunAchievementScanCreditsAllPoints(t *testing.T) {
	db := newTestDB(t)
	user := seedUserWithWorkouts(t, db, 10)

	awards, err := runAchievementScan(db, &user)
	require.NoError(t, err)
	require.NotEmpty(t, awards)

	sum := 0
	for _, a := range awards {
		sum += a.Points
	}

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, sum, stored.TotalPoints, "persisted points equal the sum of awarded badge points")
	assert.Equal(t, sum, user.TotalPoints)

	var badges int64
	db.Model(&models.Badge{}).Where("user_id = ?", user.ID).Count(&badges)
	assert.Equal(t, int64(len(awards)), badges)

	// Second scan over unchanged history awards and credits nothing
	again, err := runAchievementScan(db, &user)
	require.NoError(t, err)
	assert.Empty(t, again)
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, sum, stored.TotalPoints)
}

func TestRunAchievementScanAtomic(t *testing.T) {
	db := newTestDB(t)
	user := seedUserWithWorkouts(t, db, 10)

	// Force the points credit to fail after the badge inserts would have
	// succeeded. The whole scan must roll back: a persisted badge whose
	// points were never credited would stay uncredited forever, since
	// later scans skip names already held.
	require.NoError(t, db.Migrator().DropTable(&models.User{}))

	_, err := runAchievementScan(db, &user)
	require.Error(t, err)

	var badges int64
	db.Model(&models.Badge{}).Count(&badges)
	assert.Equal(t, int64(0), badges)
}
