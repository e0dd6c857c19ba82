package models

import "time"

// Follow represents a directed follow edge: UserID follows AuthorID.
// The composite unique index is the backstop against duplicate edges
// under concurrent follow requests. Edges are hard-deleted on unfollow;
// a soft-delete tombstone would collide with the unique index on
// re-follow.
type Follow struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_author" json:"user_id"`
	AuthorID  uint      `gorm:"not null;uniqueIndex:idx_user_author" json:"author_id"`

	// Relationships
	User   User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Author User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}
