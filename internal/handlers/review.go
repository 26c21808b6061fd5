package handlers

import (
	"errors"
	"net/http"

	"github.com/cirilocodes/noelles-group/internal/database"
	"github.com/cirilocodes/noelles-group/internal/models"
	"github.com/cirilocodes/noelles-group/internal/services"
	"github.com/cirilocodes/noelles-group/pkg/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReviewInput struct {
	Name        string `json:"name" binding:"required,min=2,max=50"`
	Email       string `json:"email" binding:"required,email,max=100"`
	Rating      int    `json:"rating" binding:"required,min=1,max=5"`
	Message     string `json:"message" binding:"required,min=10,max=500"`
	ServiceUsed string `json:"serviceUsed" binding:"omitempty,max=100"`
}

func SubmitReview(c *gin.Context) {
	var input ReviewInput
	if !bindJSON(c, &input, "Invalid review data") {
		return
	}

	review := models.Review{
		Name:        input.Name,
		Email:       input.Email,
		Rating:      input.Rating,
		Message:     input.Message,
		ServiceUsed: input.ServiceUsed,
		Status:      models.ReviewPending,
	}

	if err := database.DB.Create(&review).Error; err != nil {
		logger.Error().Err(err).Str("email", input.Email).Msg("Failed to save review")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit review"})
		return
	}

	services.NotifySubmission(services.ReviewNotification(&review))

	c.JSON(http.StatusCreated, gin.H{
		"message": "Thank you for your review! It will appear once approved.",
		"review":  review,
	})
}

// PublicListReviews returns approved reviews only; pending and rejected
// ones never reach the site.
func PublicListReviews(c *gin.Context) {
	var reviews []models.Review
	if err := database.DB.Where("status = ?", models.ReviewApproved).Order("created_at desc").Find(&reviews).Error; err != nil {
		logger.Error().Err(err).Msg("Failed to list approved reviews")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

func AdminListReviews(c *gin.Context) {
	var reviews []models.Review
	if err := database.DB.Order("created_at desc").Find(&reviews).Error; err != nil {
		logger.Error().Err(err).Msg("Failed to list reviews")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

func UpdateReviewStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input StatusInput
	if !bindJSON(c, &input, "Invalid input data") {
		return
	}

	if !models.ValidReviewStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid status",
			"details": []gin.H{{"field": "status", "message": "Must be one of: pending, approved, rejected"}},
		})
		return
	}

	var review models.Review
	if err := database.DB.First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		logger.Error().Err(err).Uint("review_id", id).Msg("Failed to load review")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review status"})
		return
	}

	if err := database.DB.Model(&review).Update("status", input.Status).Error; err != nil {
		logger.Error().Err(err).Uint("review_id", id).Msg("Failed to update review status")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review status"})
		return
	}
	review.Status = models.ReviewStatus(input.Status)

	c.JSON(http.StatusOK, gin.H{
		"message": "Review status updated successfully",
		"review":  review,
	})
}
