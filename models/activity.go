// models/activity.go - exercise and sleep logs
package models

import "time"

// Exercise intensities.
const (
	IntensityLow    = "Low"
	IntensityMedium = "Medium"
	IntensityHigh   = "High"
)

type ExerciseEntry struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;index" json:"user_id"`
	User            *User     `json:"-" gorm:"foreignKey:UserID"`
	Date            time.Time `gorm:"not null;index" json:"date"`
	Name            string    `gorm:"not null" json:"name"`
	DurationMinutes int       `json:"duration_minutes"`
	Intensity       string    `gorm:"size:10" json:"intensity"` // Low, Medium, High
	Notes           string    `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
}

func (ExerciseEntry) TableName() string {
	return "exercise_entries"
}

type SleepEntry struct {
	ID     uint      `gorm:"primaryKey" json:"id"`
	UserID uint      `gorm:"not null;index" json:"user_id"`
	User   *User     `json:"-" gorm:"foreignKey:UserID"`
	Date   time.Time `gorm:"not null;index" json:"date"`

	// Clock times as entered; duration and quality are derived, not entered.
	SleepStart string `gorm:"size:8" json:"sleep_start"` // HH:MM
	SleepEnd   string `gorm:"size:8" json:"sleep_end"`   // HH:MM
	Hours      int    `json:"hours"`
	Minutes    int    `json:"minutes"`
	Quality    string `gorm:"size:10" json:"quality"` // Excellent, Good, Fair, Poor

	CreatedAt time.Time `json:"created_at"`
}

// TotalHours returns the entry's duration in decimal hours.
func (s *SleepEntry) TotalHours() float64 {
	return float64(s.Hours) + float64(s.Minutes)/60
}

func (SleepEntry) TableName() string {
	return "sleep_entries"
}
