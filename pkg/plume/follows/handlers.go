package follows

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/plumehq/plume/pkg/plume/auth"
	"github.com/plumehq/plume/pkg/plume/metrics"
	"github.com/plumehq/plume/pkg/plume/models"
	"github.com/plumehq/plume/pkg/plume/pagination"
	"github.com/plumehq/plume/pkg/plume/posts"
	"gorm.io/gorm"
)

// Handler handles follow graph requests
type Handler struct {
	db *gorm.DB
}

// NewHandler creates a new follows handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// Follow follows an author
// @Summary Follow an author
// @Description Follow the named author. Self-follows and repeated follows are accepted without creating extra edges.
// @Tags follows
// @Produce json
// @Param username path string true "Author username"
// @Success 200 {object} map[string]string "Following"
// @Failure 404 {object} map[string]string "User not found"
// @Security BearerAuth
// @Router /users/{username}/follow [post]
func (h *Handler) Follow(c *gin.Context) {
	viewerID, _ := auth.GetUserID(c)
	viewerUsername, _ := auth.GetUsername(c)

	if err := FollowUser(h.db, viewerID, viewerUsername, c.Param("username")); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to follow user"})
		return
	}

	metrics.FollowEdges.WithLabelValues("follow").Inc()
	c.JSON(http.StatusOK, gin.H{"message": "Following"})
}

// Unfollow unfollows an author
// @Summary Unfollow an author
// @Description Unfollow the named author. Unfollowing someone not followed is a no-op.
// @Tags follows
// @Produce json
// @Param username path string true "Author username"
// @Success 200 {object} map[string]string "Not following"
// @Failure 404 {object} map[string]string "User not found"
// @Security BearerAuth
// @Router /users/{username}/follow [delete]
func (h *Handler) Unfollow(c *gin.Context) {
	viewerID, _ := auth.GetUserID(c)

	if err := UnfollowUser(h.db, viewerID, c.Param("username")); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unfollow user"})
		return
	}

	metrics.FollowEdges.WithLabelValues("unfollow").Inc()
	c.JSON(http.StatusOK, gin.H{"message": "Not following"})
}

// Feed returns posts from all authors the viewer follows
// @Summary Followed-authors feed
// @Description List posts from every author the viewer follows, merged newest first, 10 per page
// @Tags follows
// @Produce json
// @Param page query int false "Page number (default 1, clamped to valid range)"
// @Success 200 {object} posts.FeedResponse
// @Security BearerAuth
// @Router /feed [get]
func (h *Handler) Feed(c *gin.Context) {
	viewerID, _ := auth.GetUserID(c)

	var followedPosts []models.Post
	if err := h.db.Preload("Author").Preload("Group").
		Joins("JOIN follows ON follows.author_id = posts.author_id AND follows.user_id = ?", viewerID).
		Order("posts.created_at DESC, posts.id DESC").
		Find(&followedPosts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch feed"})
		return
	}

	page, meta := pagination.Paginate(followedPosts, pagination.ParsePage(c.Query("page")))

	c.JSON(http.StatusOK, posts.FeedResponse{
		Posts:      posts.PostsToResponses(page),
		Pagination: meta,
	})
}

// RegisterRoutes registers follow routes; all of them require authentication
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/users/:username/follow", h.Follow)
	rg.DELETE("/users/:username/follow", h.Unfollow)
	rg.GET("/feed", h.Feed)
}
