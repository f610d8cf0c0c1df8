// models/badge.go
package models

import "time"

// Badge is a one-time achievement award. A badge name appears at most once
// per user; the achievement scan only inserts names that are absent.
type Badge struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index:idx_user_badge,unique" json:"user_id"`
	User        *User     `json:"-" gorm:"foreignKey:UserID"`
	Name        string    `gorm:"not null;index:idx_user_badge,unique" json:"name"`
	Description string    `gorm:"not null" json:"description"`
	Points      int       `gorm:"default:0" json:"points"`
	EarnedAt    time.Time `json:"earned_at"`
}

func (Badge) TableName() string {
	return "badges"
}
