// models/napfa.go
package models

import (
	"time"

	"fittrack/napfa"
)

// NAPFATest is one graded six-event test attempt. Attempts are immutable
// once created and appended to the user's history in submission order.
type NAPFATest struct {
	ID     uint      `gorm:"primaryKey" json:"id"`
	UserID uint      `gorm:"not null;index" json:"user_id"`
	User   *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Date   time.Time `gorm:"not null" json:"date"`
	Age    int       `gorm:"not null" json:"age"`
	Gender string    `gorm:"size:1;not null" json:"gender"`

	// Raw scores
	SitUps        int     `json:"sit_ups"`
	BroadJumpCM   int     `json:"broad_jump_cm"`
	SitAndReachCM int     `json:"sit_and_reach_cm"`
	PullUps       int     `json:"pull_ups"`
	ShuttleRunSec float64 `json:"shuttle_run_sec"`
	RunTime       string  `gorm:"size:10" json:"run_time"` // MM:SS as entered
	RunMinutes    float64 `json:"run_minutes"`             // decimal minutes

	// Grades
	GradeSitUps      int    `json:"grade_su"`
	GradeBroadJump   int    `json:"grade_sbj"`
	GradeSitAndReach int    `json:"grade_sar"`
	GradePullUps     int    `json:"grade_pu"`
	GradeShuttleRun  int    `json:"grade_sr"`
	GradeRun         int    `json:"grade_run"`
	Total            int    `json:"total"`
	Medal            string `gorm:"size:20" json:"medal"`

	CreatedAt time.Time `json:"created_at"`
}

// RawScores returns the attempt's measurements keyed by event code.
func (t *NAPFATest) RawScores() map[napfa.Event]float64 {
	return map[napfa.Event]float64{
		napfa.SitUps:      float64(t.SitUps),
		napfa.BroadJump:   float64(t.BroadJumpCM),
		napfa.SitAndReach: float64(t.SitAndReachCM),
		napfa.PullUps:     float64(t.PullUps),
		napfa.ShuttleRun:  t.ShuttleRunSec,
		napfa.Run:         t.RunMinutes,
	}
}

// Grades returns the attempt's grades keyed by event code.
func (t *NAPFATest) Grades() map[napfa.Event]int {
	return map[napfa.Event]int{
		napfa.SitUps:      t.GradeSitUps,
		napfa.BroadJump:   t.GradeBroadJump,
		napfa.SitAndReach: t.GradeSitAndReach,
		napfa.PullUps:     t.GradePullUps,
		napfa.ShuttleRun:  t.GradeShuttleRun,
		napfa.Run:         t.GradeRun,
	}
}

// SetGrades copies a grading result onto the record.
func (t *NAPFATest) SetGrades(res napfa.Result) {
	t.GradeSitUps = res.Grades[napfa.SitUps]
	t.GradeBroadJump = res.Grades[napfa.BroadJump]
	t.GradeSitAndReach = res.Grades[napfa.SitAndReach]
	t.GradePullUps = res.Grades[napfa.PullUps]
	t.GradeShuttleRun = res.Grades[napfa.ShuttleRun]
	t.GradeRun = res.Grades[napfa.Run]
	t.Total = res.Total
	t.Medal = res.Medal
}

func (NAPFATest) TableName() string {
	return "napfa_tests"
}
