package services

import (
	"testing"
	"time"

	"fittrack/models"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestActivityStreak(t *testing.T) {
	tests := []struct {
		name  string
		dates []time.Time
		want  int
	}{
		{"empty", nil, 0},
		{"single day", []time.Time{day(2024, 1, 1)}, 1},
		{
			"consecutive days",
			[]time.Time{day(2024, 1, 1), day(2024, 1, 2), day(2024, 1, 3)},
			3,
		},
		{
			// 2-day gaps keep the streak alive (one rest day each)
			"alternate days",
			[]time.Time{day(2024, 1, 1), day(2024, 1, 3), day(2024, 1, 5)},
			3,
		},
		{
			// 3-day gap breaks it
			"broken by long gap",
			[]time.Time{day(2024, 1, 1), day(2024, 1, 4)},
			1,
		},
		{
			"duplicates count once",
			[]time.Time{day(2024, 1, 1), day(2024, 1, 1), day(2024, 1, 2)},
			2,
		},
		{
			"unordered input",
			[]time.Time{day(2024, 1, 5), day(2024, 1, 1), day(2024, 1, 3)},
			3,
		},
		{
			"streak counted from most recent day only",
			[]time.Time{day(2024, 1, 1), day(2024, 1, 2), day(2024, 1, 10), day(2024, 1, 11)},
			2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ActivityStreak(tt.dates))
		})
	}
}

func TestAdvanceLoginStreak(t *testing.T) {
	now := day(2024, 3, 10)

	t.Run("first login", func(t *testing.T) {
		u := &models.User{}
		AdvanceLoginStreak(u, now)
		assert.Equal(t, 1, u.LoginStreak)
		assert.Equal(t, now, *u.LastLogin)
	})

	t.Run("next day extends", func(t *testing.T) {
		yesterday := day(2024, 3, 9)
		u := &models.User{LoginStreak: 3, LastLogin: &yesterday}
		AdvanceLoginStreak(u, now)
		assert.Equal(t, 4, u.LoginStreak)
	})

	t.Run("same day unchanged", func(t *testing.T) {
		earlier := now.Add(2 * time.Hour)
		u := &models.User{LoginStreak: 3, LastLogin: &earlier}
		AdvanceLoginStreak(u, now.Add(5*time.Hour))
		assert.Equal(t, 3, u.LoginStreak)
	})

	t.Run("missed day resets", func(t *testing.T) {
		twoDaysAgo := day(2024, 3, 8)
		u := &models.User{LoginStreak: 9, LastLogin: &twoDaysAgo}
		AdvanceLoginStreak(u, now)
		assert.Equal(t, 1, u.LoginStreak)
	})

	// Streaks count local calendar days, so timestamps near midnight in a
	// non-UTC zone must not collapse into or stretch across the wrong day.
	sgt := time.FixedZone("SGT", 8*3600)

	t.Run("local next day extends across midnight", func(t *testing.T) {
		last := time.Date(2024, 3, 1, 22, 0, 0, 0, sgt)
		u := &models.User{LoginStreak: 4, LastLogin: &last}
		AdvanceLoginStreak(u, time.Date(2024, 3, 2, 7, 0, 0, 0, sgt))
		assert.Equal(t, 5, u.LoginStreak)
	})

	t.Run("two local calendar days apart resets", func(t *testing.T) {
		last := time.Date(2024, 3, 1, 23, 30, 0, 0, sgt)
		u := &models.User{LoginStreak: 4, LastLogin: &last}
		// Under 48 hours elapsed, but a full calendar day was skipped
		AdvanceLoginStreak(u, time.Date(2024, 3, 3, 0, 30, 0, 0, sgt))
		assert.Equal(t, 1, u.LoginStreak)
	})
}

func TestActivityStreakLocalCalendarDays(t *testing.T) {
	sgt := time.FixedZone("SGT", 8*3600)

	// Late-night and early-morning workouts on consecutive local dates are
	// two streak days even though both fall in the same UTC day.
	dates := []time.Time{
		time.Date(2024, 3, 1, 23, 50, 0, 0, sgt),
		time.Date(2024, 3, 2, 0, 10, 0, 0, sgt),
	}
	assert.Equal(t, 2, ActivityStreak(dates))
}
