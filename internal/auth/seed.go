package auth

import (
	"errors"
	"log"
	"os"

	"classboard/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the single admin account from ADMIN_USERNAME and
// ADMIN_PASSWORD when it does not exist yet. There is no registration
// endpoint; this is the only way a user comes into being.
func SeedAdmin(db *gorm.DB) error {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Println("ADMIN_USERNAME/ADMIN_PASSWORD not set, skipping admin seeding")
		return nil
	}

	var existing models.User
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := db.Create(&models.User{Username: username, PasswordHash: string(hash)}).Error; err != nil {
		return err
	}
	log.Println("Admin user seeded:", username)
	return nil
}
