// File: /database/database.go
package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nousyukukangen-ringo/isibasigeru/models"
)

func Initialize(databasePath string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(databasePath), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Photo{},
		&models.Post{},
		&models.PostLike{},
		&models.Comment{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}

// SeedData populates the database with the demo feed for development.
func SeedData(db *gorm.DB) error {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)

	if userCount > 0 {
		return nil
	}

	users := []models.User{
		{Email: "alice@example.com", Password: "$2a$10$dummy"},
		{Email: "bob@example.com", Password: "$2a$10$dummy"},
	}
	for i := range users {
		if err := db.Create(&users[i]).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", users[i].Email, err)
		}
	}

	tokyoLat, tokyoLng := 35.681236, 139.767125
	osakaLat, osakaLng := 34.687315, 135.526201

	photos := []models.Photo{
		{
			UserID:    users[0].ID,
			Filepath:  "https://via.placeholder.com/400x300/4A76C7/FFFFFF?text=Tokyo+Station",
			Latitude:  &tokyoLat,
			Longitude: &tokyoLng,
			Title:     "Tokyo Station",
		},
		{
			UserID:    users[1].ID,
			Filepath:  "https://via.placeholder.com/400x300/e67e22/FFFFFF?text=Osaka+Castle",
			Latitude:  &osakaLat,
			Longitude: &osakaLng,
			Title:     "Osaka Castle",
		},
	}
	for i := range photos {
		if err := db.Create(&photos[i]).Error; err != nil {
			return fmt.Errorf("failed to seed photo %q: %w", photos[i].Title, err)
		}
	}

	posts := []models.Post{
		{UserID: users[0].ID, PhotoID: photos[0].ID, Caption: "Tokyo Station", LikesCount: 5},
		{UserID: users[1].ID, PhotoID: photos[1].ID, Caption: "Osaka Castle", LikesCount: 10},
	}
	for i := range posts {
		if err := db.Create(&posts[i]).Error; err != nil {
			return fmt.Errorf("failed to seed post %q: %w", posts[i].Caption, err)
		}
	}

	comment := models.Comment{PostID: posts[0].ID, UserID: users[1].ID, Text: "Looks great!"}
	if err := db.Create(&comment).Error; err != nil {
		return fmt.Errorf("failed to seed comment: %w", err)
	}

	return nil
}
