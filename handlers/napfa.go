// handlers/napfa.go
package handlers

import (
	"time"

	"fittrack/database"
	"fittrack/middleware"
	"fittrack/models"
	"fittrack/napfa"

	"github.com/gofiber/fiber/v2"
)

type SubmitTestRequest struct {
	Age           int      `json:"age"`
	Gender        string   `json:"gender"` // m, f
	SitUps        *int     `json:"sit_ups"`
	BroadJumpCM   *int     `json:"broad_jump_cm"`
	SitAndReachCM *int     `json:"sit_and_reach_cm"`
	PullUps       *int     `json:"pull_ups"`
	ShuttleRunSec *float64 `json:"shuttle_run_sec"`
	RunTime       string   `json:"run_time"` // MM:SS
}

// SubmitNAPFATest grades a six-event attempt and appends it to the user's
// history. Validation happens before any state mutation: a malformed run
// time or unsupported age rejects the whole submission.
func SubmitNAPFATest(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req SubmitTestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.SitUps == nil || req.BroadJumpCM == nil || req.SitAndReachCM == nil ||
		req.PullUps == nil || req.ShuttleRunSec == nil || req.RunTime == "" {
		return c.Status(400).JSON(fiber.Map{"error": "All six event scores are required"})
	}

	runMinutes, err := napfa.ParseRunTime(req.RunTime)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	raw := map[napfa.Event]float64{
		napfa.SitUps:      float64(*req.SitUps),
		napfa.BroadJump:   float64(*req.BroadJumpCM),
		napfa.SitAndReach: float64(*req.SitAndReachCM),
		napfa.PullUps:     float64(*req.PullUps),
		napfa.ShuttleRun:  *req.ShuttleRunSec,
		napfa.Run:         runMinutes,
	}

	result, err := napfa.Grade(req.Age, req.Gender, raw)
	if err != nil {
		// Covers unsupported ages and missing scores; nothing is persisted.
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	attempt := models.NAPFATest{
		UserID:        userID,
		Date:          time.Now(),
		Age:           req.Age,
		Gender:        req.Gender,
		SitUps:        *req.SitUps,
		BroadJumpCM:   *req.BroadJumpCM,
		SitAndReachCM: *req.SitAndReachCM,
		PullUps:       *req.PullUps,
		ShuttleRunSec: *req.ShuttleRunSec,
		RunTime:       req.RunTime,
		RunMinutes:    runMinutes,
	}
	attempt.SetGrades(result)

	tx := db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&attempt).Error; err != nil {
		tx.Rollback()
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save test"})
	}

	newBadges, err := runAchievementScan(tx, &user)
	if err != nil {
		tx.Rollback()
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update achievements"})
	}

	if err := tx.Commit().Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to commit transaction"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success":      true,
		"test":         attempt,
		"grades":       result.Grades,
		"total":        result.Total,
		"medal":        result.Medal,
		"new_badges":   newBadges,
		"total_points": user.TotalPoints,
	})
}

// GetNAPFAHistory returns the user's test attempts in submission order
func GetNAPFAHistory(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var tests []models.NAPFATest
	if err := db.Where("user_id = ?", userID).Order("id").Find(&tests).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch test history"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"tests":   tests,
		"count":   len(tests),
	})
}

// GetNAPFAStandards returns the cutoff table for an age and gender
// GET /api/napfa/standards?age=14&gender=m
func GetNAPFAStandards(c *fiber.Ctx) error {
	age := c.QueryInt("age")
	gender := c.Query("gender", "m")

	table, err := napfa.StandardsFor(age, gender)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}

	events := make([]fiber.Map, 0, len(napfa.Events))
	for _, ev := range napfa.Events {
		std := table[ev]
		events = append(events, fiber.Map{
			"event":           ev,
			"name":            napfa.EventNames[ev],
			"cutoffs":         std.Cutoffs,
			"lower_is_better": std.LowerIsBetter,
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"age":     age,
		"gender":  gender,
		"events":  events,
	})
}
