package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/plumehq/plume/pkg/plume/auth"
	"github.com/plumehq/plume/pkg/plume/follows"
	"github.com/plumehq/plume/pkg/plume/groups"
	"github.com/plumehq/plume/pkg/plume/models"
	"github.com/plumehq/plume/pkg/plume/posts"
	"github.com/plumehq/plume/pkg/plume/profiles"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

// setupFullServer creates a Gin engine with all routes registered
// This mirrors the setup in cmd/plume-server/main.go
func setupFullServer(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		authHandler := auth.NewHandler(db)
		authHandler.RegisterRoutes(api.Group("/auth"))

		public := api.Group("", auth.OptionalAuthMiddleware())

		postsHandler := posts.NewHandler(db)
		postsHandler.RegisterRoutes(public)

		groupsHandler := groups.NewHandler(db)
		groupsHandler.RegisterRoutes(public)

		profilesHandler := profiles.NewHandler(db)
		profilesHandler.RegisterRoutes(public)

		authed := api.Group("", auth.AuthMiddleware())
		postsHandler.RegisterAuthedRoutes(authed)

		followsHandler := follows.NewHandler(db)
		followsHandler.RegisterRoutes(authed)

		adminGroup := api.Group("/admin")
		adminGroup.Use(auth.AuthMiddleware(), auth.RequireAdmin())
		groupsHandler.RegisterAdminRoutes(adminGroup)
	}

	return r
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func register(t *testing.T, r *gin.Engine, username string) string {
	resp := doJSON(r, "POST", "/api/auth/register", "", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "password123",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d: %s", username, resp.Code, resp.Body.String())
	}
	var body struct {
		Token string `json:"token"`
	}
	json.Unmarshal(resp.Body.Bytes(), &body)
	return body.Token
}

func TestHealthEndpoint(t *testing.T) {
	db := setupTestDB(t)
	r := setupFullServer(db)

	resp := doJSON(r, "GET", "/health", "", nil)
	if resp.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", resp.Code)
	}
}

// TestPublishAndFollowFlow walks the whole happy path: two authors
// register, one publishes into a group, the other follows them and reads
// the aggregated feed.
func TestPublishAndFollowFlow(t *testing.T) {
	db := setupTestDB(t)
	r := setupFullServer(db)

	aliceToken := register(t, r, "alice")
	bobToken := register(t, r, "bob")

	// Admin creates the group authors publish into
	admin := models.User{Username: "admin", Email: "admin@example.com", SystemRole: models.SystemRoleAdmin}
	db.Create(&admin)
	adminToken, _ := auth.GenerateToken(admin.ID, admin.Username, string(admin.SystemRole))

	resp := doJSON(r, "POST", "/api/admin/groups", adminToken, map[string]string{
		"slug":  "news",
		"title": "News",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("create group: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var group posts.GroupResponse
	json.Unmarshal(resp.Body.Bytes(), &group)

	// Alice publishes into the group
	resp = doJSON(r, "POST", "/api/posts", aliceToken, map[string]interface{}{
		"text":     "hello from alice",
		"group_id": group.ID,
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("create post: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var post posts.PostResponse
	json.Unmarshal(resp.Body.Bytes(), &post)

	// The group feed carries the post
	resp = doJSON(r, "GET", "/api/groups/news/posts", "", nil)
	var groupFeed groups.GroupFeedResponse
	json.Unmarshal(resp.Body.Bytes(), &groupFeed)
	if len(groupFeed.Posts) != 1 || groupFeed.Posts[0].ID != post.ID {
		t.Fatalf("group feed: expected [%d], got %+v", post.ID, groupFeed.Posts)
	}

	// Bob follows Alice and sees her post in his feed
	resp = doJSON(r, "POST", "/api/users/alice/follow", bobToken, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("follow: expected 200, got %d", resp.Code)
	}

	resp = doJSON(r, "GET", "/api/feed", bobToken, nil)
	var feed posts.FeedResponse
	json.Unmarshal(resp.Body.Bytes(), &feed)
	if len(feed.Posts) != 1 || feed.Posts[0].Text != "hello from alice" {
		t.Fatalf("followed feed: expected alice's post, got %+v", feed.Posts)
	}

	// Alice's profile shows the follow state from Bob's point of view
	resp = doJSON(r, "GET", "/api/users/alice/posts", bobToken, nil)
	var profile profiles.AuthorFeedResponse
	json.Unmarshal(resp.Body.Bytes(), &profile)
	if !profile.IsFollowing {
		t.Error("Expected is_following=true for bob viewing alice")
	}

	// Bob comments on the post; the response is a redirect to the detail view
	resp = doJSON(r, "POST", fmt.Sprintf("/api/posts/%d/comments", post.ID), bobToken, map[string]string{
		"text": "great post",
	})
	if resp.Code != http.StatusSeeOther {
		t.Fatalf("comment: expected 303, got %d", resp.Code)
	}

	resp = doJSON(r, "GET", fmt.Sprintf("/api/posts/%d", post.ID), "", nil)
	var detail posts.PostDetailResponse
	json.Unmarshal(resp.Body.Bytes(), &detail)
	if len(detail.Comments) != 1 || detail.Comments[0].Author.Username != "bob" {
		t.Fatalf("detail: expected bob's comment, got %+v", detail.Comments)
	}

	// Bob unfollows and the feed empties
	resp = doJSON(r, "DELETE", "/api/users/alice/follow", bobToken, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("unfollow: expected 200, got %d", resp.Code)
	}

	resp = doJSON(r, "GET", "/api/feed", bobToken, nil)
	json.Unmarshal(resp.Body.Bytes(), &feed)
	if len(feed.Posts) != 0 {
		t.Fatalf("feed after unfollow: expected empty, got %+v", feed.Posts)
	}
}
