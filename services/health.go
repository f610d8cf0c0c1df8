// services/health.go - body metrics and sleep derivation
package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// BMI computes body mass index from weight in kg and height in meters.
func BMI(weightKG, heightM float64) float64 {
	if heightM <= 0 {
		return 0
	}
	return weightKG / (heightM * heightM)
}

// BodyType classifies a simplified somatotype from BMI.
func BodyType(weightKG, heightM float64) (string, string) {
	bmi := BMI(weightKG, heightM)
	switch {
	case bmi < 21.5:
		return "Ectomorph", "Naturally lean, fast metabolism, difficulty gaining weight"
	case bmi < 30:
		return "Mesomorph", "Athletic build, gains muscle easily, responds well to training"
	default:
		return "Endomorph", "Larger bone structure, gains weight easily, slower metabolism"
	}
}

// BMR computes basal metabolic rate (Mifflin-St Jeor) in kcal/day.
// Height is in cm; gender is "m" or "f".
func BMR(weightKG, heightCM float64, age int, gender string) float64 {
	base := 10*weightKG + 6.25*heightCM - 5*float64(age)
	if gender == "m" {
		return base + 5
	}
	return base - 161
}

var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// TDEE scales a BMR by an activity level multiplier. Unknown levels fall
// back to sedentary.
func TDEE(bmr float64, activityLevel string) float64 {
	m, ok := activityMultipliers[activityLevel]
	if !ok {
		m = activityMultipliers["sedentary"]
	}
	return bmr * m
}

// SleepDuration derives hours and minutes slept from HH:MM clock times,
// wrapping across midnight when the end time precedes the start.
func SleepDuration(start, end string) (int, int, error) {
	startMin, err := parseClock(start)
	if err != nil {
		return 0, 0, err
	}
	endMin, err := parseClock(end)
	if err != nil {
		return 0, 0, err
	}
	if endMin < startMin {
		endMin += 24 * 60
	}
	total := endMin - startMin
	return total / 60, total % 60, nil
}

func parseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q, expected HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid clock time %q, expected HH:MM", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock time %q, expected HH:MM", s)
	}
	return h*60 + m, nil
}

// SleepQuality tiers whole hours of sleep.
func SleepQuality(hours int) string {
	switch {
	case hours >= 8:
		return "Excellent"
	case hours >= 7:
		return "Good"
	case hours >= 6:
		return "Fair"
	default:
		return "Poor"
	}
}

// NAPFAPercentile gives the approximate age-group percentile for a total.
func NAPFAPercentile(total int) int {
	switch {
	case total >= 25:
		return 95
	case total >= 21:
		return 75
	case total >= 15:
		return 50
	case total >= 9:
		return 25
	default:
		return 10
	}
}

// Day truncates a timestamp to its calendar date.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
