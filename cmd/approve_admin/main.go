package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/cirilocodes/noelles-group/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Flips the approval flag for an admin account from the command line, for
// when no approved admin can reach the dashboard.
func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <username>", os.Args[0])
	}
	username := os.Args[1]

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	var user models.AdminUser
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		log.Fatalf("Admin %q not found: %v", username, err)
	}

	if user.IsApproved {
		fmt.Printf("Admin %q is already approved.\n", username)
		return
	}

	now := time.Now()
	if err := db.Model(&user).Updates(map[string]interface{}{
		"is_approved": true,
		"approved_at": now,
	}).Error; err != nil {
		log.Fatalf("Failed to approve %q: %v", username, err)
	}

	fmt.Printf("Approved admin %q (%s).\n", user.Username, user.Email)
}
