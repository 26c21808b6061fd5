package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/cirilocodes/noelles-group/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Bootstraps the first approved super_admin so the approval workflow has
// an approver. Safe to run repeatedly: an existing username is left
// untouched.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is required")
	}

	username := os.Getenv("SEED_ADMIN_USERNAME")
	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if username == "" || email == "" || password == "" {
		log.Fatal("SEED_ADMIN_USERNAME, SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD are required")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.AdminUser{}); err != nil {
		log.Fatalf("Failed to migrate admin_users: %v", err)
	}

	var existing models.AdminUser
	if err := db.Where("username = ?", username).First(&existing).Error; err == nil {
		fmt.Printf("Admin %q already exists (id=%d), nothing to do.\n", username, existing.ID)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	now := time.Now()
	admin := models.AdminUser{
		Username:   username,
		Email:      email,
		Password:   string(hash),
		Role:       models.RoleSuperAdmin,
		IsApproved: true,
		ApprovedAt: &now,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	fmt.Printf("Created approved super_admin %q (id=%d).\n", admin.Username, admin.ID)
}
