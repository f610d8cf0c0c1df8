// services/projection.go - average-rate trend forecasting
package services

import (
	"errors"
	"math"
	"time"

	"fittrack/models"
)

// ErrInsufficientData signals a forecast request with fewer than two
// samples. Callers surface it as a soft "not enough data" result, never
// as a fabricated value.
var ErrInsufficientData = errors.New("insufficient data for projection")

// TrendPoint is one (date, value) sample in a chronological series.
type TrendPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// Forecast is the output of the average-rate model.
type Forecast struct {
	Current    float64      `json:"current"`
	RatePerDay float64      `json:"rate_per_day"`
	Predicted  float64      `json:"predicted"`
	Confidence string       `json:"confidence"`
	Series     []TrendPoint `json:"series"` // monthly projection for charting
}

func clampValue(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// confidenceFor labels the model by sample count.
func confidenceFor(samples int) string {
	switch {
	case samples >= 4:
		return "High"
	case samples >= 3:
		return "Medium"
	default:
		return "Low"
	}
}

// ForecastValue fits the average rate of change to a chronologically
// ordered series and extrapolates daysAhead days forward, clamped to
// [lo, hi]. The rate is total value delta over total day delta, not a
// least-squares fit. Fewer than two samples returns ErrInsufficientData.
func ForecastValue(points []TrendPoint, daysAhead int, lo, hi float64) (Forecast, error) {
	if len(points) < 2 {
		return Forecast{}, ErrInsufficientData
	}

	var valueDelta, dayDelta float64
	for i := 1; i < len(points); i++ {
		valueDelta += points[i].Value - points[i-1].Value
		dayDelta += points[i].Date.Sub(points[i-1].Date).Hours() / 24
	}
	if dayDelta <= 0 {
		return Forecast{}, ErrInsufficientData
	}

	rate := valueDelta / dayDelta
	last := points[len(points)-1]

	fc := Forecast{
		Current:    last.Value,
		RatePerDay: rate,
		Predicted:  clampValue(last.Value+rate*float64(daysAhead), lo, hi),
		Confidence: confidenceFor(len(points)),
	}

	// Six-month monthly series for charting, clamped like the prediction.
	for month := 0; month <= 6; month++ {
		fc.Series = append(fc.Series, TrendPoint{
			Date:  last.Date.AddDate(0, 0, 30*month),
			Value: clampValue(last.Value+rate*float64(30*month), lo, hi),
		})
	}

	return fc, nil
}

// NAPFATrend converts a test history into trend points on the total score.
func NAPFATrend(tests []models.NAPFATest) []TrendPoint {
	points := make([]TrendPoint, 0, len(tests))
	for _, t := range tests {
		points = append(points, TrendPoint{Date: t.Date, Value: float64(t.Total)})
	}
	return points
}

// GoldOutlook is the forecast for reaching the Gold total threshold (21).
type GoldOutlook struct {
	Current       int        `json:"current"`
	PointsNeeded  int        `json:"points_needed"`
	Achieved      bool       `json:"achieved"`
	Improving     bool       `json:"improving"`
	DaysToGold    int        `json:"days_to_gold,omitempty"`
	PredictedDate *time.Time `json:"predicted_date,omitempty"`
}

const goldTotalThreshold = 21

// GoldForecast estimates when a student's NAPFA total will reach the Gold
// threshold. A non-positive rate reports "not improving" instead of a date;
// it never divides by a zero or negative rate.
func GoldForecast(tests []models.NAPFATest, now time.Time) (GoldOutlook, error) {
	points := NAPFATrend(tests)
	if len(points) < 2 {
		return GoldOutlook{}, ErrInsufficientData
	}

	fc, err := ForecastValue(points, 0, 0, 30)
	if err != nil {
		return GoldOutlook{}, err
	}

	current := int(fc.Current)
	outlook := GoldOutlook{Current: current}
	if current >= goldTotalThreshold {
		outlook.Achieved = true
		return outlook, nil
	}

	outlook.PointsNeeded = goldTotalThreshold - current
	if fc.RatePerDay <= 0 {
		return outlook, nil
	}

	outlook.Improving = true
	outlook.DaysToGold = int(math.Ceil(float64(outlook.PointsNeeded) / fc.RatePerDay))
	predicted := now.AddDate(0, 0, outlook.DaysToGold)
	outlook.PredictedDate = &predicted
	return outlook, nil
}

// Goal forecast statuses.
const (
	GoalOnTrack      = "on_track"
	GoalBehind       = "behind_schedule"
	GoalNotImproving = "not_improving"
)

// GoalOutlook classifies a goal against its target date.
type GoalOutlook struct {
	Status            string     `json:"status"`
	Progress          int        `json:"progress"`
	DaysRemaining     int        `json:"days_remaining"`
	PredictedProgress float64    `json:"predicted_progress"`
	CompletionDate    *time.Time `json:"completion_date,omitempty"`
	NeededPerDay      float64    `json:"needed_per_day,omitempty"`
}

// GoalForecast projects a goal's progress to its target date using the
// average daily progress since creation. With no elapsed days or no
// positive progress rate, the goal is reported as not improving rather
// than fabricating a completion date.
func GoalForecast(goal models.Goal, now time.Time) GoalOutlook {
	daysPassed := int(now.Sub(goal.CreatedAt).Hours() / 24)
	daysRemaining := int(goal.TargetDate.Sub(now).Hours() / 24)

	outlook := GoalOutlook{
		Progress:      goal.Progress,
		DaysRemaining: daysRemaining,
	}

	if daysPassed <= 0 || goal.Progress <= 0 {
		outlook.Status = GoalNotImproving
		outlook.PredictedProgress = float64(goal.Progress)
		return outlook
	}

	rate := float64(goal.Progress) / float64(daysPassed)
	outlook.PredictedProgress = float64(goal.Progress) + rate*float64(daysRemaining)

	daysToComplete := int(math.Ceil((100 - float64(goal.Progress)) / rate))
	completion := now.AddDate(0, 0, daysToComplete)
	outlook.CompletionDate = &completion

	if outlook.PredictedProgress >= 100 && daysToComplete <= daysRemaining {
		outlook.Status = GoalOnTrack
	} else {
		outlook.Status = GoalBehind
		if daysRemaining > 0 {
			outlook.NeededPerDay = (100 - float64(goal.Progress)) / float64(daysRemaining)
		}
	}
	return outlook
}

// SleepTrend converts sleep history into trend points on decimal hours.
func SleepTrend(entries []models.SleepEntry) []TrendPoint {
	points := make([]TrendPoint, 0, len(entries))
	for _, e := range entries {
		points = append(points, TrendPoint{Date: e.Date, Value: e.TotalHours()})
	}
	return points
}
