// ~/Documents/CODING/fittrack/main.go
package main

import (
	"log"
	"os"
	"time"

	"fittrack/database"
	"fittrack/handlers"
	"fittrack/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	// Validate critical environment variables
	validateEnvironment()

	// Initialize database
	database.InitDB()
	defer database.CloseDB()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    1 * 1024 * 1024, // 1MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	// Apply rate limiting to all routes
	app.Use(middleware.RateLimitMiddleware())

	// API Routes
	api := app.Group("/api")

	// Auth routes with stricter rate limiting
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.AuthRateLimitMiddleware())
	authGroup.Post("/register", handlers.Register)
	authGroup.Post("/login", handlers.Login)

	// NAPFA routes
	napfaGroup := api.Group("/napfa")
	napfaGroup.Get("/standards", handlers.GetNAPFAStandards) // public cutoff table
	napfaGroup.Use(middleware.AuthMiddleware)
	napfaGroup.Post("/tests", handlers.SubmitNAPFATest)
	napfaGroup.Get("/tests", handlers.GetNAPFAHistory)

	// Exercise routes
	exerciseGroup := api.Group("/exercises")
	exerciseGroup.Use(middleware.AuthMiddleware)
	exerciseGroup.Post("/", handlers.LogExercise)
	exerciseGroup.Get("/", handlers.GetExercises)

	// Sleep routes
	sleepGroup := api.Group("/sleep")
	sleepGroup.Use(middleware.AuthMiddleware)
	sleepGroup.Post("/", handlers.LogSleep)
	sleepGroup.Get("/", handlers.GetSleepHistory)

	// Goal routes
	goalGroup := api.Group("/goals")
	goalGroup.Use(middleware.AuthMiddleware)
	goalGroup.Post("/", handlers.CreateGoal)
	goalGroup.Get("/", handlers.GetGoals)
	goalGroup.Put("/:id", handlers.UpdateGoalProgress)
	goalGroup.Delete("/:id", handlers.DeleteGoal)

	// Achievement routes
	achievementGroup := api.Group("/achievements")
	achievementGroup.Use(middleware.AuthMiddleware)
	achievementGroup.Get("/", handlers.GetAchievements)

	// Insight routes
	insightGroup := api.Group("/insights")
	insightGroup.Use(middleware.AuthMiddleware)
	insightGroup.Get("/napfa", handlers.GetNAPFAInsights)
	insightGroup.Get("/goals", handlers.GetGoalInsights)
	insightGroup.Get("/sleep", handlers.GetSleepInsights)

	// Leaderboard routes (opt-in participants only)
	leaderboardGroup := api.Group("/leaderboard")
	leaderboardGroup.Use(middleware.AuthMiddleware)
	leaderboardGroup.Get("/", handlers.GetLeaderboard)

	// User routes
	userGroup := api.Group("/users")
	userGroup.Use(middleware.AuthMiddleware)
	userGroup.Get("/me", handlers.GetCurrentUser)
	userGroup.Put("/me", handlers.UpdateCurrentUser)

	// Body and NAPFA stat routes
	statsGroup := api.Group("/stats")
	statsGroup.Use(middleware.AuthMiddleware)
	statsGroup.Get("/body", handlers.GetBodyStats)
	statsGroup.Get("/napfa", handlers.GetNAPFAStats)

	// Class membership (students)
	classGroup := api.Group("/class")
	classGroup.Use(middleware.AuthMiddleware)
	classGroup.Post("/join", handlers.JoinClass)
	classGroup.Post("/leave", handlers.LeaveClass)

	// Teacher routes
	teacherGroup := api.Group("/teacher")
	teacherGroup.Use(middleware.AuthMiddleware)
	teacherGroup.Use(middleware.TeacherAuthMiddleware)
	teacherGroup.Get("/students", handlers.GetClassStudents)
	teacherGroup.Get("/overview", handlers.GetClassOverview)
	teacherGroup.Delete("/students/:id", handlers.RemoveStudent)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("🚀 HTTP server starting on port %s", port)
	log.Printf("📊 Environment: %s", getEnv("APP_ENV", "development"))
	log.Printf("🔐 JWT Secret configured: %v", os.Getenv("JWT_SECRET") != "")
	log.Printf("🏫 Teacher email domain: %s", getEnv("TEACHER_EMAIL_DOMAIN", "@sst.edu.sg"))

	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

// validateEnvironment checks for required environment variables
func validateEnvironment() {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("FATAL: JWT_SECRET environment variable must be set. Generate one with: openssl rand -base64 64")
	}
	if len(jwtSecret) < 32 {
		log.Fatal("FATAL: JWT_SECRET must be at least 32 characters long")
	}

	appEnv := os.Getenv("APP_ENV")
	if appEnv == "production" {
		corsOrigins := os.Getenv("CORS_ORIGINS")
		if corsOrigins == "" || corsOrigins == "http://localhost:3000" {
			log.Println("WARNING: CORS_ORIGINS not properly configured for production")
		}
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Don't expose internal errors in production
	if os.Getenv("APP_ENV") == "production" && code == 500 {
		message = "An error occurred. Please try again later."
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
