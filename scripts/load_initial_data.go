package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"teampulse-backend/internal/config"
	"teampulse-backend/internal/database"
	"teampulse-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the seed YAML schema
type UserData struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type LogData struct {
	Sentiment string `yaml:"sentiment"`
	Date      string `yaml:"date"`
}

type MemberData struct {
	Name      string    `yaml:"name"`
	Email     string    `yaml:"email"`
	Sentiment string    `yaml:"sentiment"`
	History   []LogData `yaml:"history,omitempty"`
}

type TeamData struct {
	Name    string       `yaml:"name"`
	Members []MemberData `yaml:"members,omitempty"`
}

type SeedData struct {
	Users []UserData `yaml:"users"`
	Teams []TeamData `yaml:"teams"`
}

func main() {
	log.Println("Loading initial data from YAML...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	seedPath := "scripts/data/seed.yaml"
	if len(os.Args) > 1 {
		seedPath = os.Args[1]
	}

	if err := loadSeedFile(db, seedPath); err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	var db *gorm.DB
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err = database.Initialize(dsn, &database.Options{LogLevel: logger.Silent})
		if err == nil {
			return db, nil
		}
		log.Printf("Database not ready (attempt %d/%d): %v", attempt, maxAttempts, err)
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database unreachable after %d attempts: %w", maxAttempts, err)
}

func loadSeedFile(db *gorm.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var seed SeedData
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	for _, userData := range seed.Users {
		created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("create user %s: %w", userData.Email, err)
		}
		if created {
			log.Printf("Created user %s", userData.Email)
		} else {
			log.Printf("User %s already exists, skipping", userData.Email)
		}
	}

	for _, teamData := range seed.Teams {
		team, created, err := createTeam(db, teamData)
		if err != nil {
			return fmt.Errorf("create team %s: %w", teamData.Name, err)
		}
		if !created {
			log.Printf("Team %s already exists, skipping members", teamData.Name)
			continue
		}
		log.Printf("Created team %s", teamData.Name)

		for _, memberData := range teamData.Members {
			if err := createMember(db, team, memberData); err != nil {
				return fmt.Errorf("create member %s: %w", memberData.Name, err)
			}
			log.Printf("Created member %s in team %s", memberData.Name, teamData.Name)
		}
	}

	return nil
}

func createUser(db *gorm.DB, data UserData) (bool, error) {
	var existing models.User
	err := db.Where("email = ?", data.Email).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	user := models.User{
		Email:        data.Email,
		PasswordHash: string(hash),
	}
	if err := db.Create(&user).Error; err != nil {
		return false, err
	}
	return true, nil
}

func createTeam(db *gorm.DB, data TeamData) (*models.Team, bool, error) {
	var existing models.Team
	err := db.Where("name = ?", data.Name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	team := models.Team{Name: data.Name}
	if err := db.Create(&team).Error; err != nil {
		return nil, false, err
	}
	return &team, true, nil
}

func createMember(db *gorm.DB, team *models.Team, data MemberData) error {
	sentiment := models.NormalizeSentiment(data.Sentiment)
	if !sentiment.IsValid() {
		sentiment = models.SentimentNeutral
	}

	return db.Transaction(func(tx *gorm.DB) error {
		member := models.Member{
			TeamID:    team.ID,
			Name:      data.Name,
			Email:     data.Email,
			Sentiment: sentiment,
		}
		if err := tx.Create(&member).Error; err != nil {
			return err
		}

		// Backdated history entries make the trends view non-empty on a
		// fresh install
		for _, logData := range data.History {
			entrySentiment := models.NormalizeSentiment(logData.Sentiment)
			if !entrySentiment.IsValid() {
				continue
			}
			createdAt, err := time.Parse("2006-01-02", logData.Date)
			if err != nil {
				return fmt.Errorf("invalid history date %q: %w", logData.Date, err)
			}
			entry := models.SentimentLog{
				Sentiment: entrySentiment,
				MemberID:  member.ID,
				TeamID:    team.ID,
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.SentimentLog{}).
				Where("id = ?", entry.ID).
				Update("created_at", createdAt).Error; err != nil {
				return err
			}
		}

		current := models.SentimentLog{
			Sentiment: sentiment,
			MemberID:  member.ID,
			TeamID:    team.ID,
		}
		return tx.Create(&current).Error
	})
}
