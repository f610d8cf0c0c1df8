// handlers/leaderboard.go
package handlers

import (
	"time"

	"fittrack/database"
	"fittrack/middleware"
	"fittrack/models"
	"fittrack/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// loadParticipants fetches every opted-in user with the histories the
// boards need. Opt-out users never enter a board or a group average.
func loadParticipants(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	err := db.Where("show_on_leaderboards = ?", true).
		Preload("NAPFATests", func(tx *gorm.DB) *gorm.DB { return tx.Order("id") }).
		Preload("Exercises", func(tx *gorm.DB) *gorm.DB { return tx.Order("id") }).
		Order("id").
		Find(&users).Error
	return users, err
}

// GetLeaderboard serves one board selected by the board query param:
// streak (default), weekly, napfa, school or class.
// GET /api/leaderboard?board=napfa&age=14&gender=m
func GetLeaderboard(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	board := c.Query("board", "streak")

	db := database.GetDB()
	participants, err := loadParticipants(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch leaderboard"})
	}

	resp := fiber.Map{
		"success":      true,
		"board":        board,
		"participants": len(participants),
	}

	switch board {
	case "streak":
		resp["rows"] = services.StreakBoard(participants)
	case "weekly":
		resp["rows"] = services.WeeklyBoard(participants, time.Now())
	case "napfa":
		age := c.QueryInt("age")
		gender := c.Query("gender")
		if gender == "" || age == 0 {
			// Default to the caller's own bracket
			var me models.User
			if err := db.First(&me, userID).Error; err == nil {
				if age == 0 {
					age = me.Age
				}
				if gender == "" {
					gender = me.Gender
				}
			}
		}
		resp["age"] = age
		resp["gender"] = gender
		resp["rows"] = services.NAPFABoard(participants, age, gender)
	case "school":
		resp["rows"] = services.GroupBoard(participants, services.SchoolKey)
	case "class":
		resp["rows"] = services.GroupBoard(participants, services.ClassKey)
	default:
		return c.Status(400).JSON(fiber.Map{
			"error":  "Unknown board",
			"boards": []string{"streak", "weekly", "napfa", "school", "class"},
		})
	}

	return c.JSON(resp)
}
