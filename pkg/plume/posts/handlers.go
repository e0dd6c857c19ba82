package posts

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/plumehq/plume/pkg/plume/auth"
	"github.com/plumehq/plume/pkg/plume/metrics"
	"github.com/plumehq/plume/pkg/plume/models"
	"github.com/plumehq/plume/pkg/plume/pagination"
	"gorm.io/gorm"
)

// Handler handles post-related requests
type Handler struct {
	db *gorm.DB
}

// NewHandler creates a new posts handler
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// CreatePostRequest represents the request to create a post
type CreatePostRequest struct {
	Text    string `json:"text" binding:"required"`
	Image   string `json:"image"`
	GroupID *uint  `json:"group_id"`
}

// UpdatePostRequest represents the request to edit a post.
// Text, image, and group are replaced wholesale; the author never changes.
type UpdatePostRequest struct {
	Text    string `json:"text" binding:"required"`
	Image   string `json:"image"`
	GroupID *uint  `json:"group_id"`
}

// AuthorResponse represents a post author in API responses
type AuthorResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
}

// GroupResponse represents a group in API responses
type GroupResponse struct {
	ID          uint   `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// PostResponse represents a post in API responses
type PostResponse struct {
	ID        uint           `json:"id"`
	Text      string         `json:"text"`
	Image     string         `json:"image,omitempty"`
	Author    AuthorResponse `json:"author"`
	Group     *GroupResponse `json:"group,omitempty"`
	CreatedAt string         `json:"created_at"`
	UpdatedAt string         `json:"updated_at"`
}

// CommentResponse represents a comment in API responses
type CommentResponse struct {
	ID        uint           `json:"id"`
	Text      string         `json:"text"`
	Author    AuthorResponse `json:"author"`
	PostID    uint           `json:"post_id"`
	CreatedAt string         `json:"created_at"`
}

// FeedResponse represents a paginated post listing
type FeedResponse struct {
	Posts      []PostResponse  `json:"posts"`
	Pagination pagination.Meta `json:"pagination"`
}

// PostDetailResponse represents a post with its comments
type PostDetailResponse struct {
	Post     PostResponse      `json:"post"`
	Comments []CommentResponse `json:"comments"`
}

const timeFormat = "2006-01-02T15:04:05Z"

// AuthorToResponse converts a user model to its API representation
func AuthorToResponse(user models.User) AuthorResponse {
	return AuthorResponse{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
	}
}

// GroupToResponse converts a group model to its API representation
func GroupToResponse(group models.Group) GroupResponse {
	return GroupResponse{
		ID:          group.ID,
		Slug:        group.Slug,
		Title:       group.Title,
		Description: group.Description,
	}
}

// PostToResponse converts a post model to its API representation
func PostToResponse(post models.Post) PostResponse {
	resp := PostResponse{
		ID:        post.ID,
		Text:      post.Text,
		Image:     post.Image,
		Author:    AuthorToResponse(post.Author),
		CreatedAt: post.CreatedAt.Format(timeFormat),
		UpdatedAt: post.UpdatedAt.Format(timeFormat),
	}
	if post.Group != nil {
		group := GroupToResponse(*post.Group)
		resp.Group = &group
	}
	return resp
}

// PostsToResponses converts a slice of post models
func PostsToResponses(posts []models.Post) []PostResponse {
	responses := make([]PostResponse, len(posts))
	for i, post := range posts {
		responses[i] = PostToResponse(post)
	}
	return responses
}

func commentToResponse(comment models.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		Text:      comment.Text,
		Author:    AuthorToResponse(comment.Author),
		PostID:    comment.PostID,
		CreatedAt: comment.CreatedAt.Format(timeFormat),
	}
}

func detailPath(postID uint) string {
	return "/api/posts/" + strconv.FormatUint(uint64(postID), 10)
}

// parsePostID parses the :id path parameter. The raw string must never
// reach a gorm condition: a non-numeric string would be inlined as SQL.
func parsePostID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// ListGlobal returns the global feed, newest first
// @Summary Global feed
// @Description List all posts, newest first, 10 per page
// @Tags posts
// @Produce json
// @Param page query int false "Page number (default 1, clamped to valid range)"
// @Success 200 {object} FeedResponse
// @Router /posts [get]
func (h *Handler) ListGlobal(c *gin.Context) {
	var posts []models.Post
	if err := h.db.Preload("Author").Preload("Group").
		Order("created_at DESC, id DESC").Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	page, meta := pagination.Paginate(posts, pagination.ParsePage(c.Query("page")))

	c.JSON(http.StatusOK, FeedResponse{
		Posts:      PostsToResponses(page),
		Pagination: meta,
	})
}

// GetDetail returns a post with its comments
// @Summary Post detail
// @Description Get a post and its comments in insertion order
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} PostDetailResponse
// @Failure 400 {object} map[string]string "Invalid post ID"
// @Failure 404 {object} map[string]string "Post not found"
// @Router /posts/{id} [get]
func (h *Handler) GetDetail(c *gin.Context) {
	postID, ok := parsePostID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var post models.Post
	if err := h.db.Preload("Author").Preload("Group").
		First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var comments []models.Comment
	if err := h.db.Preload("Author").Where("post_id = ?", post.ID).
		Order("id ASC").Find(&comments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}

	responses := make([]CommentResponse, len(comments))
	for i, comment := range comments {
		responses[i] = commentToResponse(comment)
	}

	c.JSON(http.StatusOK, PostDetailResponse{
		Post:     PostToResponse(post),
		Comments: responses,
	})
}

// Create creates a new post
// @Summary Create a post
// @Description Publish a new post, optionally into a group. The author is always the authenticated caller.
// @Tags posts
// @Accept json
// @Produce json
// @Param request body CreatePostRequest true "Post fields"
// @Success 201 {object} PostResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Security BearerAuth
// @Router /posts [post]
func (h *Handler) Create(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Group association is optional but must resolve when given
	if req.GroupID != nil {
		var group models.Group
		if err := h.db.First(&group, *req.GroupID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown group"})
			return
		}
	}

	post := models.Post{
		Text:     req.Text,
		Image:    req.Image,
		GroupID:  req.GroupID,
		AuthorID: userID,
	}

	if err := h.db.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	if err := h.db.Preload("Author").Preload("Group").First(&post, post.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch post"})
		return
	}

	metrics.PostsCreated.Inc()
	c.JSON(http.StatusCreated, PostToResponse(post))
}

// Update edits a post's text, image, and group
// @Summary Edit a post
// @Description Edit a post. Only the author may edit; anyone else is redirected to the read view unchanged.
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param request body UpdatePostRequest true "Updated post fields"
// @Success 200 {object} PostResponse
// @Failure 303 "Redirect to post detail for non-authors"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Post not found"
// @Security BearerAuth
// @Router /posts/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	postID, ok := parsePostID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var post models.Post
	if err := h.db.First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	// Only the author may edit. Anyone else gets sent to the read view
	// with no indication that an edit was attempted.
	if post.AuthorID != userID {
		c.Redirect(http.StatusSeeOther, detailPath(post.ID))
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.GroupID != nil {
		var group models.Group
		if err := h.db.First(&group, *req.GroupID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown group"})
			return
		}
	}

	post.Text = req.Text
	post.Image = req.Image
	post.GroupID = req.GroupID

	if err := h.db.Save(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}

	if err := h.db.Preload("Author").Preload("Group").First(&post, post.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch post"})
		return
	}

	c.JSON(http.StatusOK, PostToResponse(post))
}

// CommentRequest represents the request to add a comment.
// Any author field in the body is ignored; the author is always the caller.
type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// AddComment adds a comment to a post
// @Summary Add a comment
// @Description Comment on a post. The response is always a redirect to the post detail; a failed validation simply does not persist anything.
// @Tags posts
// @Accept json
// @Param id path int true "Post ID"
// @Param request body CommentRequest true "Comment fields"
// @Success 303 "Redirect to post detail"
// @Failure 400 {object} map[string]string "Invalid post ID"
// @Failure 404 {object} map[string]string "Post not found"
// @Security BearerAuth
// @Router /posts/{id}/comments [post]
func (h *Handler) AddComment(c *gin.Context) {
	userID, _ := auth.GetUserID(c)

	postID, ok := parsePostID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var post models.Post
	if err := h.db.First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Invalid comment forms fall through to the same redirect as
		// success, matching the submit-and-return flow of the UI.
		c.Redirect(http.StatusSeeOther, detailPath(post.ID))
		return
	}

	comment := models.Comment{
		Text:     req.Text,
		PostID:   post.ID,
		AuthorID: userID,
	}

	if err := h.db.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	metrics.CommentsCreated.Inc()
	c.Redirect(http.StatusSeeOther, detailPath(post.ID))
}

// RegisterRoutes registers post routes that are publicly readable.
// feedMiddleware is applied to the global feed route only, so a response
// cache can sit in front of it without touching the other reads.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, feedMiddleware ...gin.HandlerFunc) {
	rg.GET("/posts", append(feedMiddleware, h.ListGlobal)...)
	rg.GET("/posts/:id", h.GetDetail)
}

// RegisterAuthedRoutes registers post routes that require authentication
func (h *Handler) RegisterAuthedRoutes(rg *gin.RouterGroup) {
	rg.POST("/posts", h.Create)
	rg.PUT("/posts/:id", h.Update)
	rg.POST("/posts/:id/comments", h.AddComment)
}
