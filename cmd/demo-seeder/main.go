package main

import (
	"fmt"
	"log"
	"time"

	"fittrack/database"
	"fittrack/models"
	"fittrack/napfa"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type demoStudent struct {
	username string
	name     string
	age      int
	gender   string
	class    string
	scores   map[napfa.Event]float64
	runTime  string
	workouts int
}

var demoStudents = []demoStudent{
	{"alex.t", "Alex Tan", 14, "m", "S2-01",
		map[napfa.Event]float64{napfa.SitUps: 40, napfa.BroadJump: 218, napfa.SitAndReach: 41, napfa.PullUps: 10, napfa.ShuttleRun: 10.2}, "9:00", 24},
	{"siti.r", "Siti Rahman", 13, "f", "S2-01",
		map[napfa.Event]float64{napfa.SitUps: 28, napfa.BroadJump: 170, napfa.SitAndReach: 38, napfa.PullUps: 15, napfa.ShuttleRun: 11.8}, "14:30", 12},
	{"wei.lin", "Lin Wei", 14, "m", "S2-02",
		map[napfa.Event]float64{napfa.SitUps: 24, napfa.BroadJump: 186, napfa.SitAndReach: 27, napfa.PullUps: 6, napfa.ShuttleRun: 12.0}, "12:08", 3},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	database.InitDB()
	defer database.CloseDB()
	db := database.GetDB()

	hashed, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash demo password:", err)
	}

	teacher := models.User{
		Username:    "mr.lee",
		Password:    string(hashed),
		DisplayName: "Mr Lee",
		Role:        models.RoleTeacher,
		School:      "SST",
		ClassCode:   "DEMO01",
	}
	if err := db.Where("username = ?", teacher.Username).FirstOrCreate(&teacher).Error; err != nil {
		log.Fatal("Failed to seed teacher:", err)
	}
	fmt.Printf("Teacher %s ready, class code %s\n\n", teacher.Username, teacher.ClassCode)

	for _, s := range demoStudents {
		user := models.User{
			Username:           s.username,
			Password:           string(hashed),
			DisplayName:        s.name,
			Role:               models.RoleStudent,
			Age:                s.age,
			Gender:             s.gender,
			School:             "SST",
			Class:              s.class,
			ShowOnLeaderboards: true,
			TeacherID:          &teacher.ID,
		}
		if err := db.Where("username = ?", user.Username).FirstOrCreate(&user).Error; err != nil {
			log.Printf("Error seeding %s: %v\n", s.username, err)
			continue
		}
		fmt.Printf("Seeding: %s\n", s.name)

		runMinutes, err := napfa.ParseRunTime(s.runTime)
		if err != nil {
			log.Fatal("Bad demo run time:", err)
		}
		raw := make(map[napfa.Event]float64, len(s.scores)+1)
		for ev, v := range s.scores {
			raw[ev] = v
		}
		raw[napfa.Run] = runMinutes

		result, err := napfa.Grade(s.age, s.gender, raw)
		if err != nil {
			log.Fatal("Failed to grade demo scores:", err)
		}

		test := models.NAPFATest{
			UserID:        user.ID,
			Date:          time.Now().AddDate(0, -1, 0),
			Age:           s.age,
			Gender:        s.gender,
			SitUps:        int(s.scores[napfa.SitUps]),
			BroadJumpCM:   int(s.scores[napfa.BroadJump]),
			SitAndReachCM: int(s.scores[napfa.SitAndReach]),
			PullUps:       int(s.scores[napfa.PullUps]),
			ShuttleRunSec: s.scores[napfa.ShuttleRun],
			RunTime:       s.runTime,
			RunMinutes:    runMinutes,
		}
		test.SetGrades(result)
		if err := db.Create(&test).Error; err != nil {
			log.Printf("Error inserting test for %s: %v\n", s.username, err)
			continue
		}

		// A run of daily workouts ending today
		for i := 0; i < s.workouts; i++ {
			entry := models.ExerciseEntry{
				UserID:          user.ID,
				Date:            time.Now().AddDate(0, 0, -i),
				Name:            "Run",
				DurationMinutes: 30,
				Intensity:       models.IntensityMedium,
			}
			if err := db.Create(&entry).Error; err != nil {
				log.Printf("Error inserting workout for %s: %v\n", s.username, err)
				break
			}
		}

		fmt.Printf("  total %d, %s, %d workouts\n", result.Total, result.Medal, s.workouts)
	}

	var users, tests int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.NAPFATest{}).Count(&tests)
	fmt.Println("\n✓ Seed completed successfully!")
	fmt.Printf("✓ Users in database: %d, tests: %d\n", users, tests)
}
