// handlers/users.go - profile and preferences
package handlers

import (
	"fittrack/database"
	"fittrack/middleware"
	"fittrack/models"
	"fittrack/services"

	"github.com/gofiber/fiber/v2"
)

type UpdateProfileRequest struct {
	DisplayName        *string  `json:"display_name"`
	School             *string  `json:"school"`
	Class              *string  `json:"class"`
	Age                *int     `json:"age"`
	HeightCM           *float64 `json:"height_cm"`
	WeightKG           *float64 `json:"weight_kg"`
	ShowOnLeaderboards *bool    `json:"show_on_leaderboards"`
}

// GetCurrentUser returns the authenticated user's profile and level
func GetCurrentUser(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	level := services.LevelFor(user.TotalPoints)
	return c.JSON(fiber.Map{
		"success":              true,
		"user":                 user,
		"level":                level.Name,
		"level_progress":       services.LevelProgress(user.TotalPoints),
		"show_on_leaderboards": user.ShowOnLeaderboards,
	})
}

// UpdateCurrentUser applies partial profile updates. Only fields present in
// the request change; leaderboard visibility stays opt-in until toggled here.
func UpdateCurrentUser(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	db := database.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	if req.DisplayName != nil && *req.DisplayName != "" {
		user.DisplayName = *req.DisplayName
	}
	if req.School != nil {
		user.School = *req.School
	}
	if req.Class != nil {
		user.Class = *req.Class
	}
	if req.Age != nil {
		if !user.IsTeacher() && (*req.Age < 12 || *req.Age > 18) {
			return c.Status(400).JSON(fiber.Map{"error": "Student age must be between 12 and 18"})
		}
		user.Age = *req.Age
	}
	if req.HeightCM != nil {
		if *req.HeightCM < 50 || *req.HeightCM > 250 {
			return c.Status(400).JSON(fiber.Map{"error": "Height must be between 50 and 250 cm"})
		}
		user.HeightCM = *req.HeightCM
	}
	if req.WeightKG != nil {
		if *req.WeightKG < 20 || *req.WeightKG > 300 {
			return c.Status(400).JSON(fiber.Map{"error": "Weight must be between 20 and 300 kg"})
		}
		user.WeightKG = *req.WeightKG
	}
	if req.ShowOnLeaderboards != nil {
		user.ShowOnLeaderboards = *req.ShowOnLeaderboards
	}

	if err := db.Save(&user).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	return c.JSON(fiber.Map{"success": true, "user": user})
}
