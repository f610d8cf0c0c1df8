// handlers/achievements.go
package handlers

import (
	"log"
	"time"

	"fittrack/database"
	"fittrack/middleware"
	"fittrack/models"
	"fittrack/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// loadSnapshot reads a user's full history in insertion order. Several
// predicates depend on "latest = last element", so ordering matters.
func loadSnapshot(db *gorm.DB, user *models.User) (*services.Snapshot, error) {
	snap := &services.Snapshot{
		LoginStreak: user.LoginStreak,
		Now:         time.Now(),
	}

	if err := db.Where("user_id = ?", user.ID).Order("id").Find(&snap.Tests).Error; err != nil {
		return nil, err
	}
	if err := db.Where("user_id = ?", user.ID).Order("id").Find(&snap.Exercises).Error; err != nil {
		return nil, err
	}
	if err := db.Where("user_id = ?", user.ID).Order("id").Find(&snap.Sleep).Error; err != nil {
		return nil, err
	}
	if err := db.Where("user_id = ?", user.ID).Order("id").Find(&snap.Goals).Error; err != nil {
		return nil, err
	}
	return snap, nil
}

// runAchievementScan evaluates the badge table against the user's history
// and persists anything newly earned. The scan is idempotent, so every
// mutating handler can call it after a write.
func runAchievementScan(db *gorm.DB, user *models.User) ([]services.Award, error) {
	snap, err := loadSnapshot(db, user)
	if err != nil {
		return nil, err
	}

	var held []models.Badge
	if err := db.Where("user_id = ?", user.ID).Find(&held).Error; err != nil {
		return nil, err
	}
	heldNames := make(map[string]bool, len(held))
	for _, b := range held {
		heldNames[b.Name] = true
	}

	awards := services.EvaluateBadges(snap, heldNames)
	if len(awards) == 0 {
		return nil, nil
	}

	earned := 0
	for _, a := range awards {
		earned += a.Points
	}

	// Badge rows and their points credit land together or not at all; a
	// badge without its points would never be re-credited since later scans
	// skip held names. Inside an outer transaction this becomes a savepoint.
	err = db.Transaction(func(tx *gorm.DB) error {
		for _, a := range awards {
			badge := models.Badge{
				UserID:      user.ID,
				Name:        a.Name,
				Description: a.Description,
				Points:      a.Points,
				EarnedAt:    time.Now(),
			}
			if err := tx.Create(&badge).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.User{}).Where("id = ?", user.ID).
			Update("total_points", gorm.Expr("total_points + ?", earned)).Error
	})
	if err != nil {
		return nil, err
	}

	user.TotalPoints += earned
	return awards, nil
}

// GetAchievements returns the user's badges, points, level and the full
// badge catalog with earned flags
func GetAchievements(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	// Re-scan on read as well; harmless because the scan is idempotent,
	// and it picks up badges for histories written before this deploy.
	newBadges, err := runAchievementScan(db, &user)
	if err != nil {
		log.Printf("achievement scan failed for user %d: %v", user.ID, err)
	}

	var badges []models.Badge
	if err := db.Where("user_id = ?", userID).Order("id").Find(&badges).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch badges"})
	}

	earnedNames := make(map[string]time.Time, len(badges))
	for _, b := range badges {
		earnedNames[b.Name] = b.EarnedAt
	}

	catalog := make([]fiber.Map, 0)
	for _, def := range services.BadgeCatalog() {
		entry := fiber.Map{
			"name":        def.Name,
			"description": def.Description,
			"points":      def.Points,
			"earned":      false,
		}
		if earnedAt, ok := earnedNames[def.Name]; ok {
			entry["earned"] = true
			entry["earned_at"] = earnedAt
		}
		catalog = append(catalog, entry)
	}

	level := services.LevelFor(user.TotalPoints)
	return c.JSON(fiber.Map{
		"success":        true,
		"badges":         badges,
		"new_badges":     newBadges,
		"total_points":   user.TotalPoints,
		"level":          level.Name,
		"level_min":      level.Min,
		"level_max":      level.Max,
		"level_progress": services.LevelProgress(user.TotalPoints),
		"login_streak":   user.LoginStreak,
		"catalog":        catalog,
	})
}
