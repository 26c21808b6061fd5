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

type BookingInput struct {
	Name           string `json:"name" binding:"required,min=2,max=50"`
	Email          string `json:"email" binding:"required,email,max=100"`
	Country        string `json:"country" binding:"required,max=60"`
	Phone          string `json:"phone" binding:"required,min=8,max=20"`
	ServiceType    string `json:"serviceType" binding:"required,max=100"`
	ProjectDetails string `json:"projectDetails" binding:"required,min=10,max=1000"`
}

func SubmitBooking(c *gin.Context) {
	var input BookingInput
	if !bindJSON(c, &input, "Invalid booking data") {
		return
	}

	booking := models.Booking{
		Name:           input.Name,
		Email:          input.Email,
		Country:        input.Country,
		Phone:          input.Phone,
		ServiceType:    input.ServiceType,
		ProjectDetails: input.ProjectDetails,
		Status:         models.BookingPending,
	}

	if err := database.DB.Create(&booking).Error; err != nil {
		logger.Error().Err(err).Str("email", input.Email).Msg("Failed to save booking")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	services.NotifySubmission(services.BookingNotification(&booking))

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking received. We'll reach out to schedule a call!",
		"booking": booking,
	})
}

func AdminListBookings(c *gin.Context) {
	var bookings []models.Booking
	if err := database.DB.Order("created_at desc").Find(&bookings).Error; err != nil {
		logger.Error().Err(err).Msg("Failed to list bookings")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func UpdateBookingStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input StatusInput
	if !bindJSON(c, &input, "Invalid input data") {
		return
	}

	if !models.ValidBookingStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid status",
			"details": []gin.H{{"field": "status", "message": "Must be one of: pending, confirmed, cancelled"}},
		})
		return
	}

	var booking models.Booking
	if err := database.DB.First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		logger.Error().Err(err).Uint("booking_id", id).Msg("Failed to load booking")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking status"})
		return
	}

	if err := database.DB.Model(&booking).Update("status", input.Status).Error; err != nil {
		logger.Error().Err(err).Uint("booking_id", id).Msg("Failed to update booking status")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking status"})
		return
	}
	booking.Status = models.BookingStatus(input.Status)

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking status updated successfully",
		"booking": booking,
	})
}
