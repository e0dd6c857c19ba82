package follows

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/plumehq/plume/pkg/plume/auth"
	"github.com/plumehq/plume/pkg/plume/models"
	"github.com/plumehq/plume/pkg/plume/posts"
	"gorm.io/gorm"
)

func setupTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewHandler(db)

	api := r.Group("/api")
	api.Use(auth.AuthMiddleware())
	handler.RegisterRoutes(api)

	return r
}

func getAuthHeader(user models.User) string {
	token, _ := auth.GenerateToken(user.ID, user.Username, string(user.SystemRole))
	return "Bearer " + token
}

func createPost(t *testing.T, db *gorm.DB, authorID uint, text string) models.Post {
	post := models.Post{Text: text, AuthorID: authorID}
	if err := db.Create(&post).Error; err != nil {
		t.Fatalf("Failed to create test post: %v", err)
	}
	return post
}

func TestFollowEndpoint(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	req, _ := http.NewRequest("POST", "/api/users/alice/follow", nil)
	req.Header.Set("Authorization", getAuthHeader(bob))
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if !IsFollowing(db, bob.ID, alice.ID) {
		t.Error("Expected bob to be following alice")
	}
}

func TestFollowUnknownUserEndpoint(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	bob := createUser(t, db, "bob")

	req, _ := http.NewRequest("POST", "/api/users/nobody/follow", nil)
	req.Header.Set("Authorization", getAuthHeader(bob))
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", resp.Code)
	}
}

func TestFollowRequiresAuth(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	createUser(t, db, "alice")

	req, _ := http.NewRequest("POST", "/api/users/alice/follow", nil)
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", resp.Code)
	}
}

func TestUnfollowEndpoint(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	db.Create(&models.Follow{UserID: bob.ID, AuthorID: alice.ID})

	req, _ := http.NewRequest("DELETE", "/api/users/alice/follow", nil)
	req.Header.Set("Authorization", getAuthHeader(bob))
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if IsFollowing(db, bob.ID, alice.ID) {
		t.Error("Expected bob to no longer follow alice")
	}
}

func TestFollowedFeedOnlyFollowedAuthors(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	alice := createUser(t, db, "alice")
	carol := createUser(t, db, "carol")
	bob := createUser(t, db, "bob")

	createPost(t, db, alice.ID, "from alice")
	createPost(t, db, carol.ID, "from carol")
	db.Create(&models.Follow{UserID: bob.ID, AuthorID: alice.ID})

	req, _ := http.NewRequest("GET", "/api/feed", nil)
	req.Header.Set("Authorization", getAuthHeader(bob))
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var feed posts.FeedResponse
	json.Unmarshal(resp.Body.Bytes(), &feed)

	if len(feed.Posts) != 1 {
		t.Fatalf("Expected 1 post, got %d", len(feed.Posts))
	}
	if feed.Posts[0].Text != "from alice" {
		t.Errorf("Expected alice's post, got %q", feed.Posts[0].Text)
	}
}

func TestFollowedFeedIsUnionOfAuthorFeeds(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	alice := createUser(t, db, "alice")
	carol := createUser(t, db, "carol")
	dave := createUser(t, db, "dave")
	bob := createUser(t, db, "bob")

	createPost(t, db, alice.ID, "alice 1")
	createPost(t, db, carol.ID, "carol 1")
	createPost(t, db, dave.ID, "dave 1")
	createPost(t, db, alice.ID, "alice 2")

	db.Create(&models.Follow{UserID: bob.ID, AuthorID: alice.ID})
	db.Create(&models.Follow{UserID: bob.ID, AuthorID: carol.ID})

	req, _ := http.NewRequest("GET", "/api/feed", nil)
	req.Header.Set("Authorization", getAuthHeader(bob))
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	var feed posts.FeedResponse
	json.Unmarshal(resp.Body.Bytes(), &feed)

	// Union of alice's and carol's feeds, newest first; dave is excluded
	want := []string{"alice 2", "carol 1", "alice 1"}
	if len(feed.Posts) != len(want) {
		t.Fatalf("Expected %d posts, got %d", len(want), len(feed.Posts))
	}
	for i, text := range want {
		if feed.Posts[i].Text != text {
			t.Errorf("Position %d: expected %q, got %q", i, text, feed.Posts[i].Text)
		}
	}
}

func TestFollowedFeedEmptyWithoutFollows(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	createPost(t, db, alice.ID, "from alice")

	req, _ := http.NewRequest("GET", "/api/feed", nil)
	req.Header.Set("Authorization", getAuthHeader(bob))
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	var feed posts.FeedResponse
	json.Unmarshal(resp.Body.Bytes(), &feed)

	if len(feed.Posts) != 0 {
		t.Errorf("Expected empty feed, got %d posts", len(feed.Posts))
	}
}
