// handlers/activity.go - exercise and sleep logging
package handlers

import (
	"log"
	"time"

	"fittrack/database"
	"fittrack/middleware"
	"fittrack/models"
	"fittrack/services"

	"github.com/gofiber/fiber/v2"
)

type LogExerciseRequest struct {
	Date            string `json:"date"` // YYYY-MM-DD, defaults to today
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
	Intensity       string `json:"intensity"`
	Notes           string `json:"notes"`
}

type LogSleepRequest struct {
	Date       string `json:"date"`        // YYYY-MM-DD, defaults to today
	SleepStart string `json:"sleep_start"` // HH:MM
	SleepEnd   string `json:"sleep_end"`   // HH:MM
}

func parseEntryDate(s string) (time.Time, error) {
	if s == "" {
		return services.Day(time.Now().UTC()), nil
	}
	return time.Parse("2006-01-02", s)
}

// LogExercise appends a workout entry and re-runs the achievement scan
func LogExercise(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req LogExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Exercise name is required"})
	}
	if req.DurationMinutes < 1 || req.DurationMinutes > 300 {
		return c.Status(400).JSON(fiber.Map{"error": "Duration must be between 1 and 300 minutes"})
	}
	switch req.Intensity {
	case models.IntensityLow, models.IntensityMedium, models.IntensityHigh:
	default:
		return c.Status(400).JSON(fiber.Map{"error": "Intensity must be Low, Medium or High"})
	}

	date, err := parseEntryDate(req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Date must be YYYY-MM-DD"})
	}

	db := database.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	entry := models.ExerciseEntry{
		UserID:          userID,
		Date:            date,
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
		Intensity:       req.Intensity,
		Notes:           req.Notes,
	}
	if err := db.Create(&entry).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to log exercise"})
	}

	newBadges, err := runAchievementScan(db, &user)
	if err != nil {
		log.Printf("achievement scan failed for user %d: %v", user.ID, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success":    true,
		"entry":      entry,
		"new_badges": newBadges,
	})
}

// GetExercises returns the workout log in insertion order
func GetExercises(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var entries []models.ExerciseEntry
	if err := db.Where("user_id = ?", userID).Order("id").Find(&entries).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch exercises"})
	}

	dates := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		dates = append(dates, e.Date)
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"entries":        entries,
		"count":          len(entries),
		"current_streak": services.ActivityStreak(dates),
	})
}

// LogSleep derives duration and quality from clock times and appends a
// sleep entry
func LogSleep(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req LogSleepRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	hours, minutes, err := services.SleepDuration(req.SleepStart, req.SleepEnd)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	date, err := parseEntryDate(req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Date must be YYYY-MM-DD"})
	}

	db := database.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	entry := models.SleepEntry{
		UserID:     userID,
		Date:       date,
		SleepStart: req.SleepStart,
		SleepEnd:   req.SleepEnd,
		Hours:      hours,
		Minutes:    minutes,
		Quality:    services.SleepQuality(hours),
	}
	if err := db.Create(&entry).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to log sleep"})
	}

	newBadges, err := runAchievementScan(db, &user)
	if err != nil {
		log.Printf("achievement scan failed for user %d: %v", user.ID, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"success":    true,
		"entry":      entry,
		"new_badges": newBadges,
	})
}

// GetSleepHistory returns the sleep log in insertion order
func GetSleepHistory(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var entries []models.SleepEntry
	if err := db.Where("user_id = ?", userID).Order("id").Find(&entries).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch sleep history"})
	}

	var avgHours float64
	if len(entries) > 0 {
		for _, e := range entries {
			avgHours += e.TotalHours()
		}
		avgHours /= float64(len(entries))
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"entries":   entries,
		"count":     len(entries),
		"avg_hours": avgHours,
	})
}
