package models

import (
	"time"

	"gorm.io/gorm"
)

// Post represents a text post published by an author.
// AuthorID is set once at creation and never changes; there is no delete path.
type Post struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Text      string         `gorm:"not null" json:"text"`
	Image     string         `json:"image,omitempty"`
	GroupID   *uint          `gorm:"index" json:"group_id,omitempty"`
	AuthorID  uint           `gorm:"not null;index" json:"author_id"`

	// Relationships
	Author   User      `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Group    *Group    `gorm:"foreignKey:GroupID" json:"group,omitempty"`
	Comments []Comment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
}
