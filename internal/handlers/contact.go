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

type ContactInput struct {
	Name    string `json:"name" binding:"required,min=2,max=50"`
	Email   string `json:"email" binding:"required,email,max=100"`
	Company string `json:"company" binding:"omitempty,max=100"`
	Phone   string `json:"phone" binding:"omitempty,min=8,max=20"`
	Subject string `json:"subject" binding:"required,min=3,max=100"`
	Message string `json:"message" binding:"required,min=10,max=1000"`
}

// SubmitContact persists a contact-form entry and fires off the operator
// notification. Persistence alone decides the response; the email is
// best-effort.
func SubmitContact(c *gin.Context) {
	var input ContactInput
	if !bindJSON(c, &input, "Invalid form data") {
		return
	}

	submission := models.ContactSubmission{
		Name:    input.Name,
		Email:   input.Email,
		Company: input.Company,
		Phone:   input.Phone,
		Subject: input.Subject,
		Message: input.Message,
		Status:  models.ContactUnread,
	}

	if err := database.DB.Create(&submission).Error; err != nil {
		logger.Error().Err(err).Str("email", input.Email).Msg("Failed to save contact submission")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit contact form"})
		return
	}

	services.NotifySubmission(services.ContactNotification(&submission))

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Message sent successfully. We'll get back to you soon!",
		"submission": submission,
	})
}

func AdminListContacts(c *gin.Context) {
	var submissions []models.ContactSubmission
	if err := database.DB.Order("created_at desc").Find(&submissions).Error; err != nil {
		logger.Error().Err(err).Msg("Failed to list contact submissions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contact submissions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"submissions": submissions})
}

// UpdateContactStatus overwrites the record's status with any member of
// the contact enum. Transitions are not constrained by the current value.
func UpdateContactStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input StatusInput
	if !bindJSON(c, &input, "Invalid input data") {
		return
	}

	if !models.ValidContactStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid status",
			"details": []gin.H{{"field": "status", "message": "Must be one of: unread, read, responded"}},
		})
		return
	}

	var submission models.ContactSubmission
	if err := database.DB.First(&submission, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
			return
		}
		logger.Error().Err(err).Uint("submission_id", id).Msg("Failed to load contact submission")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update submission status"})
		return
	}

	if err := database.DB.Model(&submission).Update("status", input.Status).Error; err != nil {
		logger.Error().Err(err).Uint("submission_id", id).Msg("Failed to update contact status")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update submission status"})
		return
	}
	submission.Status = models.ContactStatus(input.Status)

	c.JSON(http.StatusOK, gin.H{
		"message":    "Submission status updated successfully",
		"submission": submission,
	})
}
