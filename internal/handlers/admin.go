package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/cirilocodes/noelles-group/internal/database"
	"github.com/cirilocodes/noelles-group/internal/models"
	"github.com/cirilocodes/noelles-group/pkg/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func currentUser(c *gin.Context) *models.AdminUser {
	val, exists := c.Get("currentUser")
	if !exists {
		return nil
	}
	return val.(*models.AdminUser)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// AdminDashboardStats returns the dashboard counters. Each count is a
// single predicate over one table, computed fresh per call.
func AdminDashboardStats(c *gin.Context) {
	var pendingUsers, totalEarlyAccess, unreadContacts, publishedUpdates int64

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&pendingUsers, database.DB.Model(&models.AdminUser{}).Where("is_approved = ?", false)},
		{&totalEarlyAccess, database.DB.Model(&models.EarlyAccessRequest{})},
		{&unreadContacts, database.DB.Model(&models.ContactSubmission{}).Where("status = ?", models.ContactUnread)},
		{&publishedUpdates, database.DB.Model(&models.LaunchUpdate{}).Where("is_published = ?", true)},
	}

	for _, q := range counts {
		if err := q.query.Count(q.dest).Error; err != nil {
			logger.Error().Err(err).Msg("Failed to compute dashboard stats")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard stats"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"stats": gin.H{
			"pendingUsers":     pendingUsers,
			"totalEarlyAccess": totalEarlyAccess,
			"unreadContacts":   unreadContacts,
			"publishedUpdates": publishedUpdates,
		},
	})
}

func AdminListUsers(c *gin.Context) {
	var users []models.AdminUser
	if err := database.DB.Order("created_at desc").Find(&users).Error; err != nil {
		logger.Error().Err(err).Msg("Failed to list admin users")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	public := make([]models.PublicAdminUser, 0, len(users))
	for i := range users {
		public = append(public, users[i].Public())
	}
	c.JSON(http.StatusOK, gin.H{"users": public})
}

func AdminListPendingUsers(c *gin.Context) {
	var users []models.AdminUser
	if err := database.DB.Where("is_approved = ?", false).Order("created_at desc").Find(&users).Error; err != nil {
		logger.Error().Err(err).Msg("Failed to list pending users")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pending users"})
		return
	}

	public := make([]models.PublicAdminUser, 0, len(users))
	for i := range users {
		public = append(public, users[i].Public())
	}
	c.JSON(http.StatusOK, gin.H{"pendingUsers": public})
}

// AdminApproveUser flips the approval flag. Approving an already-approved
// account is a no-op, not an error; the original approval timestamp is
// kept.
func AdminApproveUser(c *gin.Context) {
	userID, ok := parseID(c)
	if !ok {
		return
	}

	var user models.AdminUser
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logger.Error().Err(err).Uint("user_id", userID).Msg("Failed to load user for approval")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve user"})
		return
	}

	if !user.IsApproved {
		now := time.Now()
		updates := map[string]interface{}{
			"is_approved": true,
			"approved_at": now,
		}
		if err := database.DB.Model(&user).Updates(updates).Error; err != nil {
			logger.Error().Err(err).Uint("user_id", userID).Msg("Failed to approve user")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve user"})
			return
		}
		user.IsApproved = true
		user.ApprovedAt = &now

		admin := currentUser(c)
		logger.Info().
			Uint("user_id", userID).
			Uint("approved_by", admin.ID).
			Msg("Admin account approved")
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User approved successfully",
		"user":    user.Public(),
	})
}

// AdminDeleteUser removes an account. Restricted to super admins, and
// self-deletion is rejected so the last approver cannot lock everyone out
// by accident.
func AdminDeleteUser(c *gin.Context) {
	userID, ok := parseID(c)
	if !ok {
		return
	}

	admin := currentUser(c)
	if admin.ID == userID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete your own account"})
		return
	}

	var user models.AdminUser
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logger.Error().Err(err).Uint("user_id", userID).Msg("Failed to load user for deletion")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	if err := database.DB.Delete(&user).Error; err != nil {
		logger.Error().Err(err).Uint("user_id", userID).Msg("Failed to delete user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	logger.Info().Uint("user_id", userID).Uint("deleted_by", admin.ID).Msg("Admin account deleted")
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
