// handlers/insights.go - trend forecasts for NAPFA, goals and sleep
package handlers

import (
	"errors"
	"time"

	"fittrack/database"
	"fittrack/middleware"
	"fittrack/models"
	"fittrack/services"

	"github.com/gofiber/fiber/v2"
)

// GetNAPFAInsights projects the user's total score and estimates the date
// they could reach Gold. Fewer than two tests is a soft decline, not an
// error status.
func GetNAPFAInsights(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var tests []models.NAPFATest
	if err := db.Where("user_id = ?", userID).Order("id").Find(&tests).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch test history"})
	}

	points := services.NAPFATrend(tests)
	fc, err := services.ForecastValue(points, 90, 0, 30)
	if err != nil {
		if errors.Is(err, services.ErrInsufficientData) {
			return c.JSON(fiber.Map{
				"success":           true,
				"insufficient_data": true,
				"message":           "Take at least two NAPFA tests to see projections",
				"tests":             len(tests),
			})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute projection"})
	}

	gold, err := services.GoldForecast(tests, time.Now())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute gold outlook"})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"forecast": fc,
		"gold":     gold,
	})
}

// GetGoalInsights classifies each active goal against its target date
func GetGoalInsights(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var goals []models.Goal
	if err := db.Where("user_id = ?", userID).Order("id").Find(&goals).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch goals"})
	}

	now := time.Now()
	rows := make([]fiber.Map, 0, len(goals))
	for _, g := range goals {
		if g.Completed() {
			continue
		}
		rows = append(rows, fiber.Map{
			"goal":    g,
			"outlook": services.GoalForecast(g, now),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"goals":   rows,
		"count":   len(rows),
	})
}

// GetSleepInsights projects average sleep hours from the sleep log
func GetSleepInsights(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var entries []models.SleepEntry
	if err := db.Where("user_id = ?", userID).Order("id").Find(&entries).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch sleep history"})
	}

	points := services.SleepTrend(entries)
	fc, err := services.ForecastValue(points, 30, 0, 24)
	if err != nil {
		if errors.Is(err, services.ErrInsufficientData) {
			return c.JSON(fiber.Map{
				"success":           true,
				"insufficient_data": true,
				"message":           "Log at least two nights of sleep to see trends",
				"entries":           len(entries),
			})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute projection"})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"forecast": fc,
	})
}
