// handlers/stats.go - body metrics derived from the profile
package handlers

import (
	"fittrack/database"
	"fittrack/middleware"
	"fittrack/models"
	"fittrack/services"

	"github.com/gofiber/fiber/v2"
)

// GetBodyStats computes BMI, body type, BMR and TDEE from the stored
// height and weight
// GET /api/stats/body?activity_level=moderate
func GetBodyStats(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}

	if user.HeightCM <= 0 || user.WeightKG <= 0 {
		return c.Status(400).JSON(fiber.Map{
			"error": "Set your height and weight on your profile first",
		})
	}

	heightM := user.HeightCM / 100
	bmi := services.BMI(user.WeightKG, heightM)
	bodyType, bodyDesc := services.BodyType(user.WeightKG, heightM)
	bmr := services.BMR(user.WeightKG, user.HeightCM, user.Age, user.Gender)
	activityLevel := c.Query("activity_level", "moderate")

	return c.JSON(fiber.Map{
		"success":        true,
		"bmi":            bmi,
		"body_type":      bodyType,
		"body_type_desc": bodyDesc,
		"bmr":            bmr,
		"tdee":           services.TDEE(bmr, activityLevel),
		"activity_level": activityLevel,
	})
}

// GetNAPFAStats summarizes the latest test with its approximate percentile
func GetNAPFAStats(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var tests []models.NAPFATest
	if err := db.Where("user_id = ?", userID).Order("id").Find(&tests).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch test history"})
	}

	if len(tests) == 0 {
		return c.JSON(fiber.Map{
			"success": true,
			"tested":  false,
			"message": "No NAPFA tests recorded yet",
		})
	}

	latest := tests[len(tests)-1]
	best := latest.Total
	for _, t := range tests {
		if t.Total > best {
			best = t.Total
		}
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"tested":     true,
		"latest":     latest,
		"best_total": best,
		"percentile": services.NAPFAPercentile(latest.Total),
		"attempts":   len(tests),
	})
}
