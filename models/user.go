// models/user.go
package models

import (
	"time"
)

// Roles stored on User.Role.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
)

type User struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Username    string  `gorm:"uniqueIndex;not null" json:"username"`
	Email       *string `gorm:"uniqueIndex" json:"email,omitempty"`
	Password    string  `gorm:"not null" json:"-"`
	DisplayName string  `json:"display_name"`
	Role        string  `gorm:"default:'student';index" json:"role"` // student, teacher

	// Profile
	Age      int     `json:"age"`
	Gender   string  `gorm:"size:1" json:"gender"` // m, f
	School   string  `json:"school"`
	Class    string  `json:"class"`
	HeightCM float64 `json:"height_cm"`
	WeightKG float64 `json:"weight_kg"`

	// Privacy
	ShowOnLeaderboards bool `gorm:"default:false" json:"show_on_leaderboards"`

	// Achievements
	TotalPoints int        `gorm:"default:0" json:"total_points"`
	LoginStreak int        `gorm:"default:0" json:"login_streak"`
	LastLogin   *time.Time `json:"last_login"`

	// Teacher-only: class code students use to join the roster
	ClassCode string `gorm:"index" json:"class_code,omitempty"`
	// Student-only: back-reference to the teacher whose roster they joined
	TeacherID *uint `gorm:"index" json:"teacher_id,omitempty"`

	// Timestamps
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	LastActivity *time.Time `json:"last_activity,omitempty"`

	// Relationships (history lists, insertion-ordered; latest = last)
	NAPFATests []NAPFATest     `gorm:"foreignKey:UserID" json:"napfa_tests,omitempty"`
	Badges     []Badge         `gorm:"foreignKey:UserID" json:"badges,omitempty"`
	Exercises  []ExerciseEntry `gorm:"foreignKey:UserID" json:"exercises,omitempty"`
	Sleep      []SleepEntry    `gorm:"foreignKey:UserID" json:"sleep,omitempty"`
	Goals      []Goal          `gorm:"foreignKey:UserID" json:"goals,omitempty"`
}

// IsTeacher reports whether the user holds the teacher role.
func (u *User) IsTeacher() bool {
	return u.Role == RoleTeacher
}

// LatestNAPFATest returns the most recently submitted test, or nil.
func (u *User) LatestNAPFATest() *NAPFATest {
	if len(u.NAPFATests) == 0 {
		return nil
	}
	return &u.NAPFATests[len(u.NAPFATests)-1]
}

func (User) TableName() string {
	return "users"
}
