package models

import (
	"time"

	"gorm.io/gorm"
)

// Group represents a topical group that posts can be published into.
// Groups are created by admins and are read-only for everyone else.
type Group struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `json:"description"`

	// Relationships
	Posts []Post `gorm:"foreignKey:GroupID" json:"posts,omitempty"`
}
