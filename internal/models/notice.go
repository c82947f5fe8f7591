package models

import (
	"time"

	"gorm.io/gorm"
)

type Notice struct {
	gorm.Model
	Title       string    `gorm:"not null" json:"title"`
	Content     string    `gorm:"not null" json:"content"`
	Date        time.Time `json:"date"`
	Type        string    `gorm:"default:announcement" json:"type"` // leave | announcement
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedByID uint      `gorm:"index;not null" json:"createdById"`
	CreatedBy   User      `gorm:"foreignKey:CreatedByID" json:"createdBy"`
}
