package profiles

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/plumehq/plume/pkg/plume/auth"
	"github.com/plumehq/plume/pkg/plume/follows"
	"github.com/plumehq/plume/pkg/plume/models"
	"github.com/plumehq/plume/pkg/plume/pagination"
	"github.com/plumehq/plume/pkg/plume/posts"
	"gorm.io/gorm"
)

// Handler handles author profile requests
type Handler struct {
	db *gorm.DB
}

// NewHandler creates a new profiles handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// AuthorFeedResponse represents an author's paginated feed.
// IsFollowing reflects the viewer: always false for anonymous viewers and
// for authors looking at their own profile.
type AuthorFeedResponse struct {
	Author      posts.AuthorResponse `json:"author"`
	IsFollowing bool                 `json:"is_following"`
	Posts       []posts.PostResponse `json:"posts"`
	Pagination  pagination.Meta      `json:"pagination"`
}

// Feed returns an author's posts, newest first
// @Summary Author feed
// @Description List an author's posts, newest first, 10 per page, with the viewer's follow state
// @Tags profiles
// @Produce json
// @Param username path string true "Author username"
// @Param page query int false "Page number (default 1, clamped to valid range)"
// @Success 200 {object} AuthorFeedResponse
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/{username}/posts [get]
func (h *Handler) Feed(c *gin.Context) {
	var author models.User
	if err := h.db.Where("username = ?", c.Param("username")).First(&author).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var authorPosts []models.Post
	if err := h.db.Preload("Author").Preload("Group").
		Where("author_id = ?", author.ID).
		Order("created_at DESC, id DESC").Find(&authorPosts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	// Anonymous viewers get id 0, which IsFollowing treats as "not following"
	viewerID, _ := auth.GetUserID(c)

	page, meta := pagination.Paginate(authorPosts, pagination.ParsePage(c.Query("page")))

	c.JSON(http.StatusOK, AuthorFeedResponse{
		Author:      posts.AuthorToResponse(author),
		IsFollowing: follows.IsFollowing(h.db, viewerID, author.ID),
		Posts:       posts.PostsToResponses(page),
		Pagination:  meta,
	})
}

// RegisterRoutes registers profile routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/users/:username/posts", h.Feed)
}
