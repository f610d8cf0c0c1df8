// handlers/goals.go
package handlers

import (
	"log"
	"time"

	"fittrack/database"
	"fittrack/middleware"
	"fittrack/models"

	"github.com/gofiber/fiber/v2"
)

type CreateGoalRequest struct {
	Type       string `json:"type"`
	Target     string `json:"target"`
	TargetDate string `json:"target_date"` // YYYY-MM-DD
}

type UpdateGoalRequest struct {
	Progress *int `json:"progress"` // percent, 0-100
}

func validGoalType(t string) bool {
	for _, gt := range models.GoalTypes {
		if gt == t {
			return true
		}
	}
	return false
}

// CreateGoal adds a goal with a future target date
func CreateGoal(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req CreateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if !validGoalType(req.Type) {
		return c.Status(400).JSON(fiber.Map{
			"error": "Invalid goal type",
			"types": models.GoalTypes,
		})
	}
	if req.Target == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Target is required"})
	}

	targetDate, err := time.Parse("2006-01-02", req.TargetDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Target date must be YYYY-MM-DD"})
	}
	if !targetDate.After(time.Now()) {
		return c.Status(400).JSON(fiber.Map{"error": "Target date must be in the future"})
	}

	db := database.GetDB()
	goal := models.Goal{
		UserID:     userID,
		Type:       req.Type,
		Target:     req.Target,
		TargetDate: targetDate,
	}
	if err := db.Create(&goal).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create goal"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "goal": goal})
}

// GetGoals lists the user's goals in creation order
func GetGoals(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var goals []models.Goal
	if err := db.Where("user_id = ?", userID).Order("id").Find(&goals).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch goals"})
	}

	completed := 0
	for i := range goals {
		if goals[i].Completed() {
			completed++
		}
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"goals":     goals,
		"count":     len(goals),
		"completed": completed,
	})
}

// UpdateGoalProgress sets a goal's progress percentage and re-runs the
// achievement scan so completion badges land immediately
// PUT /api/goals/:id
func UpdateGoalProgress(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	goalID, err := c.ParamsInt("id")
	if err != nil || goalID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid goal ID"})
	}

	var req UpdateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Progress == nil || *req.Progress < 0 || *req.Progress > 100 {
		return c.Status(400).JSON(fiber.Map{"error": "Progress must be between 0 and 100"})
	}

	db := database.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	var goal models.Goal
	if err := db.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Goal not found"})
	}

	goal.Progress = *req.Progress
	if err := db.Save(&goal).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update goal"})
	}

	newBadges, err := runAchievementScan(db, &user)
	if err != nil {
		log.Printf("achievement scan failed for user %d: %v", user.ID, err)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"goal":       goal,
		"completed":  goal.Completed(),
		"new_badges": newBadges,
	})
}

// DeleteGoal removes a goal the user owns
// DELETE /api/goals/:id
func DeleteGoal(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	goalID, err := c.ParamsInt("id")
	if err != nil || goalID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid goal ID"})
	}

	db := database.GetDB()
	result := db.Where("id = ? AND user_id = ?", goalID, userID).Delete(&models.Goal{})
	if result.Error != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete goal"})
	}
	if result.RowsAffected == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "Goal not found"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Goal deleted"})
}
