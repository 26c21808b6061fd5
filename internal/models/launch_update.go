package models

import "time"

// LaunchUpdate is an announcement post authored from the admin dashboard.
// Only published updates appear on the public site.
type LaunchUpdate struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	AuthorID    uint      `gorm:"index;not null" json:"authorId"`
	Author      AdminUser `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	IsPublished bool      `gorm:"default:false;not null" json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (LaunchUpdate) TableName() string {
	return "launch_updates"
}
