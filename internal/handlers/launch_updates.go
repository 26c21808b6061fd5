package handlers

import (
	"errors"
	"net/http"

	"github.com/cirilocodes/noelles-group/internal/database"
	"github.com/cirilocodes/noelles-group/internal/models"
	"github.com/cirilocodes/noelles-group/pkg/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LaunchUpdateInput struct {
	Title       string `json:"title" binding:"required,min=3,max=200"`
	Content     string `json:"content" binding:"required,min=10"`
	IsPublished bool   `json:"isPublished"`
}

type LaunchUpdatePatch struct {
	Title       *string `json:"title" binding:"omitempty,min=3,max=200"`
	Content     *string `json:"content" binding:"omitempty,min=10"`
	IsPublished *bool   `json:"isPublished"`
}

// PublicListLaunchUpdates serves the site's announcements feed: published
// updates only, newest first.
func PublicListLaunchUpdates(c *gin.Context) {
	var updates []models.LaunchUpdate
	if err := database.DB.Where("is_published = ?", true).Order("created_at desc").Find(&updates).Error; err != nil {
		logger.Error().Err(err).Msg("Failed to list published launch updates")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch launch updates"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updates": updates})
}

func AdminListLaunchUpdates(c *gin.Context) {
	var updates []models.LaunchUpdate
	if err := database.DB.Preload("Author").Order("created_at desc").Find(&updates).Error; err != nil {
		logger.Error().Err(err).Msg("Failed to list launch updates")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch launch updates"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updates": updates})
}

func AdminCreateLaunchUpdate(c *gin.Context) {
	var input LaunchUpdateInput
	if !bindJSON(c, &input, "Invalid input data") {
		return
	}

	author := currentUser(c)
	update := models.LaunchUpdate{
		Title:       input.Title,
		Content:     input.Content,
		AuthorID:    author.ID,
		IsPublished: input.IsPublished,
	}

	if err := database.DB.Create(&update).Error; err != nil {
		logger.Error().Err(err).Str("title", input.Title).Msg("Failed to create launch update")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create launch update"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Launch update created successfully",
		"update":  update,
	})
}

func AdminUpdateLaunchUpdate(c *gin.Context) {
	updateID, ok := parseID(c)
	if !ok {
		return
	}

	var patch LaunchUpdatePatch
	if !bindJSON(c, &patch, "Invalid input data") {
		return
	}

	var update models.LaunchUpdate
	if err := database.DB.First(&update, "id = ?", updateID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Launch update not found"})
			return
		}
		logger.Error().Err(err).Uint("update_id", updateID).Msg("Failed to load launch update")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update launch update"})
		return
	}

	changes := map[string]interface{}{}
	if patch.Title != nil {
		changes["title"] = *patch.Title
	}
	if patch.Content != nil {
		changes["content"] = *patch.Content
	}
	if patch.IsPublished != nil {
		changes["is_published"] = *patch.IsPublished
	}

	if len(changes) > 0 {
		if err := database.DB.Model(&update).Updates(changes).Error; err != nil {
			logger.Error().Err(err).Uint("update_id", updateID).Msg("Failed to update launch update")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update launch update"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Launch update updated successfully",
		"update":  update,
	})
}

func AdminDeleteLaunchUpdate(c *gin.Context) {
	updateID, ok := parseID(c)
	if !ok {
		return
	}

	result := database.DB.Delete(&models.LaunchUpdate{}, "id = ?", updateID)
	if result.Error != nil {
		logger.Error().Err(result.Error).Uint("update_id", updateID).Msg("Failed to delete launch update")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete launch update"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Launch update not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Launch update deleted successfully"})
}
