package handlers

import (
	"net/http"

	"github.com/cirilocodes/noelles-group/internal/database"
	"github.com/cirilocodes/noelles-group/internal/models"
	"github.com/cirilocodes/noelles-group/pkg/logger"
	"github.com/gin-gonic/gin"
)

type NewsletterInput struct {
	Email string `json:"email" binding:"required,email,max=100"`
}

// SubscribeNewsletter adds an email to the launch-notification list. A
// duplicate subscribe is a conflict, not a second row: the lookup gives a
// friendly message, the unique index on email is what actually guarantees
// it.
func SubscribeNewsletter(c *gin.Context) {
	var input NewsletterInput
	if !bindJSON(c, &input, "Invalid email format") {
		return
	}

	var existing models.NewsletterSubscriber
	if err := database.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already subscribed to our newsletter"})
		return
	}

	subscriber := models.NewsletterSubscriber{Email: input.Email}
	if err := database.DB.Create(&subscriber).Error; err != nil {
		// Lost the race against a concurrent subscribe with the same email
		if err := database.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already subscribed to our newsletter"})
			return
		}
		logger.Error().Err(err).Str("email", input.Email).Msg("Failed to save newsletter subscriber")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe to newsletter"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Successfully subscribed to newsletter",
		"subscriber": subscriber,
	})
}

func AdminListSubscribers(c *gin.Context) {
	var subscribers []models.NewsletterSubscriber
	if err := database.DB.Order("created_at desc").Find(&subscribers).Error; err != nil {
		logger.Error().Err(err).Msg("Failed to list newsletter subscribers")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subscribers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscribers": subscribers})
}
