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

type EarlyAccessInput struct {
	Name    string `json:"name" binding:"required,min=2,max=50"`
	Email   string `json:"email" binding:"required,email,max=100"`
	Company string `json:"company" binding:"omitempty,max=100"`
	Phone   string `json:"phone" binding:"omitempty,min=8,max=20"`
	Message string `json:"message" binding:"omitempty,max=1000"`
}

func SubmitEarlyAccess(c *gin.Context) {
	var input EarlyAccessInput
	if !bindJSON(c, &input, "Invalid form data") {
		return
	}

	request := models.EarlyAccessRequest{
		Name:    input.Name,
		Email:   input.Email,
		Company: input.Company,
		Phone:   input.Phone,
		Message: input.Message,
		Status:  models.EarlyAccessPending,
	}

	if err := database.DB.Create(&request).Error; err != nil {
		logger.Error().Err(err).Str("email", input.Email).Msg("Failed to save early access request")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit early access request"})
		return
	}

	services.NotifySubmission(services.EarlyAccessNotification(&request))

	c.JSON(http.StatusCreated, gin.H{
		"message": "Early access request submitted successfully. We'll be in touch soon!",
		"request": request,
	})
}

func AdminListEarlyAccess(c *gin.Context) {
	var requests []models.EarlyAccessRequest
	if err := database.DB.Order("created_at desc").Find(&requests).Error; err != nil {
		logger.Error().Err(err).Msg("Failed to list early access requests")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch early access requests"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

func UpdateEarlyAccessStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input StatusInput
	if !bindJSON(c, &input, "Invalid input data") {
		return
	}

	if !models.ValidEarlyAccessStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid status",
			"details": []gin.H{{"field": "status", "message": "Must be one of: pending, approved, rejected"}},
		})
		return
	}

	var request models.EarlyAccessRequest
	if err := database.DB.First(&request, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
			return
		}
		logger.Error().Err(err).Uint("request_id", id).Msg("Failed to load early access request")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update request status"})
		return
	}

	if err := database.DB.Model(&request).Update("status", input.Status).Error; err != nil {
		logger.Error().Err(err).Uint("request_id", id).Msg("Failed to update early access status")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update request status"})
		return
	}
	request.Status = models.EarlyAccessStatus(input.Status)

	c.JSON(http.StatusOK, gin.H{
		"message": "Request status updated successfully",
		"request": request,
	})
}
