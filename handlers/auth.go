// handlers/auth.go
package handlers

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"fittrack/database"
	"fittrack/models"
	"fittrack/services"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"` // student (default) or teacher
	Age         int    `json:"age"`
	Gender      string `json:"gender"` // m, f
	School      string `json:"school"`
	Class       string `json:"class"`
	ClassCode   string `json:"class_code,omitempty"` // optional: join a teacher's roster
}

type AuthResponse struct {
	Success bool     `json:"success"`
	Token   string   `json:"token,omitempty"`
	User    UserInfo `json:"user,omitempty"`
	Error   string   `json:"error,omitempty"`
}

type UserInfo struct {
	ID          uint      `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	TotalPoints int       `json:"total_points"`
	Level       string    `json:"level"`
	LoginStreak int       `json:"login_streak"`
	ClassCode   string    `json:"class_code,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// teacherEmailDomain is the school domain teacher accounts must register with.
func teacherEmailDomain() string {
	if domain := os.Getenv("TEACHER_EMAIL_DOMAIN"); domain != "" {
		return domain
	}
	return "@sst.edu.sg"
}

// Register creates a student or teacher account
func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: "Invalid request body"})
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: "Username and password are required"})
	}
	if len(req.Password) < 6 {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: "Password must be at least 6 characters"})
	}

	role := req.Role
	if role == "" {
		role = models.RoleStudent
	}
	if role != models.RoleStudent && role != models.RoleTeacher {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: "Role must be student or teacher"})
	}

	if role == models.RoleTeacher && !strings.HasSuffix(strings.ToLower(req.Email), teacherEmailDomain()) {
		return c.Status(400).JSON(AuthResponse{
			Success: false,
			Error:   fmt.Sprintf("Teachers must use a %s email address", teacherEmailDomain()),
		})
	}

	if role == models.RoleStudent && (req.Age < 12 || req.Age > 18) {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: "Student age must be between 12 and 18"})
	}
	if req.Gender != "m" && req.Gender != "f" {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: "Gender must be m or f"})
	}

	db := database.GetDB()

	var existing models.User
	if err := db.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		return c.Status(409).JSON(AuthResponse{Success: false, Error: "Username already taken"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{Success: false, Error: "Failed to hash password"})
	}

	user := models.User{
		Username:    req.Username,
		Password:    string(hashed),
		DisplayName: req.DisplayName,
		Role:        role,
		Age:         req.Age,
		Gender:      req.Gender,
		School:      req.School,
		Class:       req.Class,
		LoginStreak: 1,
	}
	if req.Email != "" {
		user.Email = &req.Email
	}
	if user.DisplayName == "" {
		user.DisplayName = req.Username
	}
	if role == models.RoleTeacher {
		user.ClassCode = strings.ToUpper(uuid.New().String()[:6])
	}
	now := time.Now()
	user.LastLogin = &now

	if err := db.Create(&user).Error; err != nil {
		return c.Status(500).JSON(AuthResponse{Success: false, Error: "Failed to create account"})
	}

	token, err := generateToken(user)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{Success: false, Error: "Failed to generate token"})
	}

	// Student joining a class at registration
	if role == models.RoleStudent && req.ClassCode != "" {
		if err := joinClassByCode(db, &user, req.ClassCode); err != nil {
			// Account exists either way; report the roster problem separately
			return c.Status(201).JSON(fiber.Map{
				"success":     true,
				"token":       token,
				"user":        userInfo(user),
				"class_error": err.Error(),
			})
		}
	}

	return c.Status(201).JSON(AuthResponse{Success: true, Token: token, User: userInfo(user)})
}

// Login authenticates a user, advances the daily login streak and runs the
// achievement scan so login-driven badges land at write time
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(AuthResponse{Success: false, Error: "Invalid request body"})
	}

	db := database.GetDB()
	var user models.User
	if err := db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		return c.Status(401).JSON(AuthResponse{Success: false, Error: "Invalid username or password"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(401).JSON(AuthResponse{Success: false, Error: "Invalid username or password"})
	}

	services.AdvanceLoginStreak(&user, time.Now())
	if err := db.Save(&user).Error; err != nil {
		return c.Status(500).JSON(AuthResponse{Success: false, Error: "Failed to update login streak"})
	}

	newBadges, err := runAchievementScan(db, &user)
	if err != nil {
		log.Printf("achievement scan failed for user %d: %v", user.ID, err)
	}

	token, err := generateToken(user)
	if err != nil {
		return c.Status(500).JSON(AuthResponse{Success: false, Error: "Failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"token":        token,
		"user":         userInfo(user),
		"new_badges":   newBadges,
		"login_streak": user.LoginStreak,
	})
}

func userInfo(user models.User) UserInfo {
	email := ""
	if user.Email != nil {
		email = *user.Email
	}
	return UserInfo{
		ID:          user.ID,
		Username:    user.Username,
		Email:       email,
		DisplayName: user.DisplayName,
		Role:        user.Role,
		TotalPoints: user.TotalPoints,
		Level:       services.LevelFor(user.TotalPoints).Name,
		LoginStreak: user.LoginStreak,
		ClassCode:   user.ClassCode,
		CreatedAt:   user.CreatedAt,
	}
}

func generateToken(user models.User) (string, error) {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "fittrack-secret-change-in-production"
	}

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}
