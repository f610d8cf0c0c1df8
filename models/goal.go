// models/goal.go
package models

import "time"

// Goal types offered by the goal-setting surface.
var GoalTypes = []string{
	"Weight Loss",
	"Muscle Gain",
	"NAPFA Improvement",
	"Endurance",
	"Flexibility",
}

type Goal struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	User       *User     `json:"-" gorm:"foreignKey:UserID"`
	Type       string    `gorm:"not null" json:"type"`
	Target     string    `gorm:"not null" json:"target"`
	TargetDate time.Time `gorm:"not null" json:"target_date"`
	Progress   int       `gorm:"default:0" json:"progress"` // percent, 0-100
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Completed reports whether the goal has reached 100% progress.
func (g *Goal) Completed() bool {
	return g.Progress >= 100
}

func (Goal) TableName() string {
	return "goals"
}
