package services

import (
	"testing"
	"time"

	"fittrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForecastValueInsufficientData(t *testing.T) {
	_, err := ForecastValue(nil, 30, 0, 30)
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, err = ForecastValue([]TrendPoint{{Date: day(2024, 1, 1), Value: 10}}, 30, 0, 30)
	assert.ErrorIs(t, err, ErrInsufficientData)

	// Two samples on the same day have no day delta to divide by
	_, err = ForecastValue([]TrendPoint{
		{Date: day(2024, 1, 1), Value: 10},
		{Date: day(2024, 1, 1), Value: 12},
	}, 30, 0, 30)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestForecastValueRate(t *testing.T) {
	// 10 -> 16 over 30 days: 0.2/day
	points := []TrendPoint{
		{Date: day(2024, 1, 1), Value: 10},
		{Date: day(2024, 1, 31), Value: 16},
	}
	fc, err := ForecastValue(points, 30, 0, 30)
	require.NoError(t, err)

	assert.InDelta(t, 16, fc.Current, 1e-9)
	assert.InDelta(t, 0.2, fc.RatePerDay, 1e-9)
	assert.InDelta(t, 22, fc.Predicted, 1e-9)
	assert.Equal(t, "Low", fc.Confidence)
	assert.Len(t, fc.Series, 7)
	assert.InDelta(t, 16, fc.Series[0].Value, 1e-9)
}

func TestForecastValueClamping(t *testing.T) {
	points := []TrendPoint{
		{Date: day(2024, 1, 1), Value: 20},
		{Date: day(2024, 1, 11), Value: 28},
	}
	// 0.8/day for 90 days would blow past the score ceiling
	fc, err := ForecastValue(points, 90, 0, 30)
	require.NoError(t, err)
	assert.InDelta(t, 30, fc.Predicted, 1e-9)

	// Declining series clamps at the floor
	points = []TrendPoint{
		{Date: day(2024, 1, 1), Value: 8},
		{Date: day(2024, 1, 11), Value: 4},
	}
	fc, err = ForecastValue(points, 90, 0, 30)
	require.NoError(t, err)
	assert.InDelta(t, 0, fc.Predicted, 1e-9)
}

func TestForecastConfidenceTiers(t *testing.T) {
	makePoints := func(n int) []TrendPoint {
		points := make([]TrendPoint, n)
		for i := range points {
			points[i] = TrendPoint{Date: day(2024, 1, 1).AddDate(0, 0, i*7), Value: float64(10 + i)}
		}
		return points
	}

	fc, err := ForecastValue(makePoints(2), 30, 0, 30)
	require.NoError(t, err)
	assert.Equal(t, "Low", fc.Confidence)

	fc, err = ForecastValue(makePoints(3), 30, 0, 30)
	require.NoError(t, err)
	assert.Equal(t, "Medium", fc.Confidence)

	fc, err = ForecastValue(makePoints(4), 30, 0, 30)
	require.NoError(t, err)
	assert.Equal(t, "High", fc.Confidence)
}

func TestGoldForecast(t *testing.T) {
	now := day(2024, 6, 1)

	t.Run("needs two tests", func(t *testing.T) {
		_, err := GoldForecast([]models.NAPFATest{{Total: 15}}, now)
		assert.ErrorIs(t, err, ErrInsufficientData)
	})

	t.Run("improving", func(t *testing.T) {
		tests := []models.NAPFATest{
			{Date: day(2024, 1, 1), Total: 12},
			{Date: day(2024, 3, 1), Total: 18}, // +6 over 60 days, 0.1/day
		}
		outlook, err := GoldForecast(tests, now)
		require.NoError(t, err)
		assert.False(t, outlook.Achieved)
		assert.True(t, outlook.Improving)
		assert.Equal(t, 3, outlook.PointsNeeded)
		assert.Equal(t, 30, outlook.DaysToGold)
		require.NotNil(t, outlook.PredictedDate)
		assert.Equal(t, now.AddDate(0, 0, 30), *outlook.PredictedDate)
	})

	t.Run("declining never predicts a date", func(t *testing.T) {
		tests := []models.NAPFATest{
			{Date: day(2024, 1, 1), Total: 18},
			{Date: day(2024, 3, 1), Total: 12},
		}
		outlook, err := GoldForecast(tests, now)
		require.NoError(t, err)
		assert.False(t, outlook.Improving)
		assert.Nil(t, outlook.PredictedDate)
		assert.Equal(t, 9, outlook.PointsNeeded)
	})

	t.Run("already gold", func(t *testing.T) {
		tests := []models.NAPFATest{
			{Date: day(2024, 1, 1), Total: 20},
			{Date: day(2024, 3, 1), Total: 24},
		}
		outlook, err := GoldForecast(tests, now)
		require.NoError(t, err)
		assert.True(t, outlook.Achieved)
		assert.Equal(t, 0, outlook.PointsNeeded)
	})
}

func TestGoalForecast(t *testing.T) {
	now := day(2024, 6, 1)

	t.Run("on track", func(t *testing.T) {
		goal := models.Goal{
			Progress:   50,
			CreatedAt:  now.AddDate(0, 0, -10), // 5%/day
			TargetDate: now.AddDate(0, 0, 30),
		}
		outlook := GoalForecast(goal, now)
		assert.Equal(t, GoalOnTrack, outlook.Status)
		require.NotNil(t, outlook.CompletionDate)
		assert.Equal(t, now.AddDate(0, 0, 10), *outlook.CompletionDate)
	})

	t.Run("behind schedule", func(t *testing.T) {
		goal := models.Goal{
			Progress:   10,
			CreatedAt:  now.AddDate(0, 0, -30), // 0.33%/day
			TargetDate: now.AddDate(0, 0, 10),
		}
		outlook := GoalForecast(goal, now)
		assert.Equal(t, GoalBehind, outlook.Status)
		assert.InDelta(t, 9.0, outlook.NeededPerDay, 1e-9)
	})

	t.Run("no progress is not improving", func(t *testing.T) {
		goal := models.Goal{
			Progress:   0,
			CreatedAt:  now.AddDate(0, 0, -30),
			TargetDate: now.AddDate(0, 0, 30),
		}
		outlook := GoalForecast(goal, now)
		assert.Equal(t, GoalNotImproving, outlook.Status)
		assert.Nil(t, outlook.CompletionDate)
	})

	t.Run("created today is not improving", func(t *testing.T) {
		goal := models.Goal{
			Progress:   40,
			CreatedAt:  now.Add(-2 * time.Hour),
			TargetDate: now.AddDate(0, 0, 30),
		}
		outlook := GoalForecast(goal, now)
		assert.Equal(t, GoalNotImproving, outlook.Status)
	})
}

func TestTrendConversions(t *testing.T) {
	tests := []models.NAPFATest{
		{Date: day(2024, 1, 1), Total: 12},
		{Date: day(2024, 2, 1), Total: 15},
	}
	points := NAPFATrend(tests)
	require.Len(t, points, 2)
	assert.InDelta(t, 12, points[0].Value, 1e-9)
	assert.InDelta(t, 15, points[1].Value, 1e-9)

	sleep := []models.SleepEntry{{Date: day(2024, 1, 1), Hours: 7, Minutes: 30}}
	sp := SleepTrend(sleep)
	require.Len(t, sp, 1)
	assert.InDelta(t, 7.5, sp[0].Value, 1e-9)
}
