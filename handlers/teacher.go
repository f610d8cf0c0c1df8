// handlers/teacher.go - class roster and teacher dashboard
package handlers

import (
	"errors"
	"sort"
	"strings"
	"time"

	"fittrack/database"
	"fittrack/middleware"
	"fittrack/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// maxClassSize caps a teacher's roster.
const maxClassSize = 30

var (
	errClassNotFound = errors.New("no class found for that code")
	errClassFull     = errors.New("class is full")
	errAlreadyJoined = errors.New("already in a class; leave it first")
)

// joinClassByCode attaches a student to the teacher owning the class code.
// Codes are case-insensitive on input but stored uppercase.
func joinClassByCode(db *gorm.DB, user *models.User, code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return errClassNotFound
	}
	if user.TeacherID != nil {
		return errAlreadyJoined
	}

	var teacher models.User
	if err := db.Where("class_code = ? AND role = ?", code, models.RoleTeacher).
		First(&teacher).Error; err != nil {
		return errClassNotFound
	}

	var rosterSize int64
	if err := db.Model(&models.User{}).Where("teacher_id = ?", teacher.ID).
		Count(&rosterSize).Error; err != nil {
		return err
	}
	if rosterSize >= maxClassSize {
		return errClassFull
	}

	user.TeacherID = &teacher.ID
	return db.Model(&models.User{}).Where("id = ?", user.ID).
		Update("teacher_id", teacher.ID).Error
}

type JoinClassRequest struct {
	ClassCode string `json:"class_code"`
}

// JoinClass lets an authenticated student join a teacher's roster by code
func JoinClass(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req JoinClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	db := database.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}
	if user.IsTeacher() {
		return c.Status(400).JSON(fiber.Map{"error": "Teachers cannot join a class"})
	}

	if err := joinClassByCode(db, &user, req.ClassCode); err != nil {
		status := 400
		if errors.Is(err, errClassNotFound) {
			status = 404
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"message":    "Joined class successfully",
		"teacher_id": user.TeacherID,
	})
}

// LeaveClass removes the student from their current roster
func LeaveClass(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "User not found"})
	}
	if user.TeacherID == nil {
		return c.Status(400).JSON(fiber.Map{"error": "Not currently in a class"})
	}

	if err := db.Model(&models.User{}).Where("id = ?", user.ID).
		Update("teacher_id", nil).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to leave class"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Left class"})
}

// loadRoster returns the teacher's students with the history lists the
// dashboard aggregates need.
func loadRoster(db *gorm.DB, teacherID uint) ([]models.User, error) {
	var students []models.User
	err := db.Where("teacher_id = ?", teacherID).
		Preload("NAPFATests", func(tx *gorm.DB) *gorm.DB { return tx.Order("id") }).
		Preload("Exercises", func(tx *gorm.DB) *gorm.DB { return tx.Order("id") }).
		Order("id").
		Find(&students).Error
	return students, err
}

// GetClassStudents lists the roster with each student's headline numbers
func GetClassStudents(c *fiber.Ctx) error {
	teacherID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	students, err := loadRoster(db, teacherID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	rows := make([]fiber.Map, 0, len(students))
	for _, s := range students {
		row := fiber.Map{
			"id":           s.ID,
			"username":     s.Username,
			"display_name": s.DisplayName,
			"age":          s.Age,
			"gender":       s.Gender,
			"class":        s.Class,
			"workouts":     len(s.Exercises),
			"total_points": s.TotalPoints,
		}
		if latest := s.LatestNAPFATest(); latest != nil {
			row["napfa_total"] = latest.Total
			row["napfa_medal"] = latest.Medal
			row["napfa_date"] = latest.Date
		}
		rows = append(rows, row)
	}

	var teacher models.User
	if err := db.First(&teacher, teacherID).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Teacher not found"})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"class_code": teacher.ClassCode,
		"students":   rows,
		"count":      len(rows),
		"capacity":   maxClassSize,
	})
}

// GetClassOverview aggregates the roster: average NAPFA totals (overall and
// per event), medal distribution, weekly activity and a needs-attention list
func GetClassOverview(c *fiber.Ctx) error {
	teacherID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	students, err := loadRoster(db, teacherID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	medals := map[string]int{}
	eventSums := map[string]int{}
	var totalSum, tested, activeThisWeek, weeklyWorkouts int
	var needsAttention, topPerformers []fiber.Map

	for _, s := range students {
		active := false
		for _, e := range s.Exercises {
			if e.Date.Before(weekAgo) {
				continue
			}
			weeklyWorkouts++
			active = true
		}
		if active {
			activeThisWeek++
		}

		latest := s.LatestNAPFATest()
		if latest != nil {
			tested++
			totalSum += latest.Total
			medals[latest.Medal]++
			eventSums["sit_ups"] += latest.GradeSitUps
			eventSums["broad_jump"] += latest.GradeBroadJump
			eventSums["sit_and_reach"] += latest.GradeSitAndReach
			eventSums["pull_ups"] += latest.GradePullUps
			eventSums["shuttle_run"] += latest.GradeShuttleRun
			eventSums["run"] += latest.GradeRun
		}

		// Flag students with no logged workouts or a sub-bronze latest total.
		var reasons []string
		if len(s.Exercises) == 0 {
			reasons = append(reasons, "no workouts logged")
		}
		if latest != nil && latest.Total < 9 {
			reasons = append(reasons, "below bronze standard")
		}
		if len(reasons) > 0 {
			needsAttention = append(needsAttention, fiber.Map{
				"id":           s.ID,
				"username":     s.Username,
				"display_name": s.DisplayName,
				"reasons":      reasons,
			})
		}
	}

	// Top three tested students by latest total, roster order breaking ties
	ranked := make([]models.User, 0, len(students))
	for _, s := range students {
		if s.LatestNAPFATest() != nil {
			ranked = append(ranked, s)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].LatestNAPFATest().Total > ranked[j].LatestNAPFATest().Total
	})
	for i, s := range ranked {
		if i == 3 {
			break
		}
		latest := s.LatestNAPFATest()
		topPerformers = append(topPerformers, fiber.Map{
			"id":           s.ID,
			"username":     s.Username,
			"display_name": s.DisplayName,
			"total":        latest.Total,
			"medal":        latest.Medal,
		})
	}

	overview := fiber.Map{
		"students":         len(students),
		"tested":           tested,
		"active_this_week": activeThisWeek,
		"weekly_workouts":  weeklyWorkouts,
		"medals":           medals,
	}
	if tested > 0 {
		overview["avg_napfa"] = float64(totalSum) / float64(tested)
		eventAvgs := make(fiber.Map, len(eventSums))
		for ev, sum := range eventSums {
			eventAvgs[ev] = float64(sum) / float64(tested)
		}
		overview["avg_event_grades"] = eventAvgs
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"overview":        overview,
		"top_performers":  topPerformers,
		"needs_attention": needsAttention,
	})
}

// RemoveStudent detaches a student from the teacher's roster
// DELETE /api/teacher/students/:id
func RemoveStudent(c *fiber.Ctx) error {
	teacherID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	studentID, err := c.ParamsInt("id")
	if err != nil || studentID <= 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid student ID"})
	}

	db := database.GetDB()
	var student models.User
	if err := db.Where("id = ? AND teacher_id = ?", studentID, teacherID).
		First(&student).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found in your class"})
	}

	if err := db.Model(&models.User{}).Where("id = ?", student.ID).
		Update("teacher_id", nil).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to remove student"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Student removed from class"})
}
