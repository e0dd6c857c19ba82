// Package follows maintains the directed follow graph between authors.
package follows

import (
	"errors"

	"github.com/plumehq/plume/pkg/plume/models"
	"gorm.io/gorm"
)

// ErrUserNotFound is returned when a follow target username does not resolve.
var ErrUserNotFound = errors.New("user not found")

// IsFollowing reports whether viewer follows author. Always false for an
// anonymous viewer (id 0) and for viewer == author, regardless of any
// stored edges.
func IsFollowing(db *gorm.DB, viewerID, authorID uint) bool {
	if viewerID == 0 || viewerID == authorID {
		return false
	}
	var count int64
	db.Model(&models.Follow{}).Where("user_id = ? AND author_id = ?", viewerID, authorID).Count(&count)
	return count > 0
}

// FollowUser creates a follow edge from viewer to the named author.
// Self-follows and already-existing edges are silent no-ops, so the call
// is idempotent. Returns ErrUserNotFound if the username does not resolve.
func FollowUser(db *gorm.DB, viewerID uint, viewerUsername, targetUsername string) error {
	if viewerUsername == targetUsername {
		return nil
	}

	var author models.User
	if err := db.Where("username = ?", targetUsername).First(&author).Error; err != nil {
		return ErrUserNotFound
	}

	var existing models.Follow
	if err := db.Where("user_id = ? AND author_id = ?", viewerID, author.ID).First(&existing).Error; err == nil {
		return nil
	}

	follow := models.Follow{
		UserID:   viewerID,
		AuthorID: author.ID,
	}
	return db.Create(&follow).Error
}

// UnfollowUser removes the follow edge from viewer to the named author.
// A missing edge is a no-op. Returns ErrUserNotFound if the username does
// not resolve.
func UnfollowUser(db *gorm.DB, viewerID uint, targetUsername string) error {
	var author models.User
	if err := db.Where("username = ?", targetUsername).First(&author).Error; err != nil {
		return ErrUserNotFound
	}

	return db.Where("user_id = ? AND author_id = ?", viewerID, author.ID).
		Delete(&models.Follow{}).Error
}
