package handlers

import (
	"net/http"
	"time"

	"github.com/cirilocodes/noelles-group/internal/database"
	"github.com/cirilocodes/noelles-group/internal/models"
	"github.com/cirilocodes/noelles-group/pkg/logger"
	"github.com/cirilocodes/noelles-group/pkg/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Username string `json:"username" binding:"required,min=3,max=30"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Role     string `json:"role" binding:"omitempty,oneof=admin super_admin"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new admin account. Accounts always start unapproved
// and are invisible to login until an existing approved admin flips the
// flag. The unique constraints on username and email are the
// authoritative duplicate guard; the lookups below only pick a friendlier
// conflict message.
func Register(c *gin.Context) {
	var input RegisterInput
	if !bindJSON(c, &input, "Invalid input data") {
		return
	}

	if !utils.ValidateUsername(input.Username) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input data",
			"details": []gin.H{{
				"field":   "username",
				"message": "Username must be 3-30 characters and contain only letters, numbers, underscores, or hyphens",
			}},
		})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), 12)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to hash password")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	role := models.Role(input.Role)
	if role == "" {
		role = models.RoleAdmin
	}

	user := models.AdminUser{
		Username:   input.Username,
		Email:      input.Email,
		Password:   string(hashedPassword),
		Role:       role,
		IsApproved: false,
	}

	if result := database.DB.Create(&user); result.Error != nil {
		// Differentiate between username and email conflict
		var existing models.AdminUser
		if err := database.DB.Where("username = ?", input.Username).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
			return
		}
		if err := database.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
			return
		}

		logger.Error().Err(result.Error).Str("username", input.Username).Msg("Registration failed")
		c.JSON(http.StatusConflict, gin.H{"error": "Username or email already exists"})
		return
	}

	logger.Info().Uint("user_id", user.ID).Str("username", user.Username).Msg("Admin registration submitted")

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration request submitted. Awaiting approval.",
		"user":    user.Public(),
	})
}

// Login authenticates an approved admin and issues a signed token. The
// pending-approval message is deliberately distinguishable from the
// bad-credentials one so registrants know why they cannot get in.
func Login(c *gin.Context) {
	var input LoginInput
	if !bindJSON(c, &input, "Username and password are required") {
		return
	}

	var user models.AdminUser
	if result := database.DB.Where("username = ?", input.Username).First(&user); result.Error != nil {
		logger.Warn().Str("username", input.Username).Msg("Login failed: user not found")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !user.IsApproved {
		logger.Warn().Str("username", input.Username).Msg("Login rejected: account pending approval")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account pending approval"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		logger.Warn().Str("username", input.Username).Msg("Login failed: invalid password")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to generate token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
		return
	}

	now := time.Now()
	database.DB.Model(&user).Update("last_login_at", now)

	logger.Info().Uint("user_id", user.ID).Msg("Admin logged in")

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user.Public(),
	})
}
