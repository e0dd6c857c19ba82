package groups

import (
	"net/http"

	"github.com/gin-gonic/gin"
	goslug "github.com/gosimple/slug"
	"github.com/plumehq/plume/pkg/plume/models"
	"github.com/plumehq/plume/pkg/plume/pagination"
	"github.com/plumehq/plume/pkg/plume/posts"
	"gorm.io/gorm"
)

// Handler handles group-related requests
type Handler struct {
	db *gorm.DB
}

// NewHandler creates a new groups handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// CreateGroupRequest represents the request to create a group
type CreateGroupRequest struct {
	Slug        string `json:"slug" binding:"omitempty,min=1,max=50"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// GroupFeedResponse represents a group's paginated feed
type GroupFeedResponse struct {
	Group      posts.GroupResponse  `json:"group"`
	Posts      []posts.PostResponse `json:"posts"`
	Pagination pagination.Meta      `json:"pagination"`
}

// List returns all groups
// @Summary List groups
// @Description Get all topical groups
// @Tags groups
// @Produce json
// @Success 200 {array} posts.GroupResponse
// @Router /groups [get]
func (h *Handler) List(c *gin.Context) {
	var groups []models.Group
	if err := h.db.Order("title ASC").Find(&groups).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch groups"})
		return
	}

	responses := make([]posts.GroupResponse, len(groups))
	for i, group := range groups {
		responses[i] = posts.GroupToResponse(group)
	}

	c.JSON(http.StatusOK, responses)
}

// Feed returns a group's posts, newest first
// @Summary Group feed
// @Description List a group's posts, newest first, 10 per page
// @Tags groups
// @Produce json
// @Param slug path string true "Group slug"
// @Param page query int false "Page number (default 1, clamped to valid range)"
// @Success 200 {object} GroupFeedResponse
// @Failure 404 {object} map[string]string "Group not found"
// @Router /groups/{slug}/posts [get]
func (h *Handler) Feed(c *gin.Context) {
	var group models.Group
	if err := h.db.Where("slug = ?", c.Param("slug")).First(&group).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return
	}

	var groupPosts []models.Post
	if err := h.db.Preload("Author").Where("group_id = ?", group.ID).
		Order("created_at DESC, id DESC").Find(&groupPosts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	page, meta := pagination.Paginate(groupPosts, pagination.ParsePage(c.Query("page")))

	c.JSON(http.StatusOK, GroupFeedResponse{
		Group:      posts.GroupToResponse(group),
		Posts:      posts.PostsToResponses(page),
		Pagination: meta,
	})
}

// Create creates a new group (admin only)
// @Summary Create a group
// @Description Create a topical group. The slug is derived from the title when omitted.
// @Tags groups
// @Accept json
// @Produce json
// @Param request body CreateGroupRequest true "Group details"
// @Success 201 {object} posts.GroupResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 409 {object} map[string]string "Slug already taken"
// @Security BearerAuth
// @Router /admin/groups [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = goslug.Make(req.Title)
	} else {
		slug = goslug.Make(slug)
	}

	var existing models.Group
	if err := h.db.Where("slug = ?", slug).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Slug already taken"})
		return
	}

	group := models.Group{
		Slug:        slug,
		Title:       req.Title,
		Description: req.Description,
	}

	if err := h.db.Create(&group).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create group"})
		return
	}

	c.JSON(http.StatusCreated, posts.GroupToResponse(group))
}

// RegisterRoutes registers publicly readable group routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/groups", h.List)
	rg.GET("/groups/:slug/posts", h.Feed)
}

// RegisterAdminRoutes registers group management routes
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/groups", h.Create)
}
