package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sobat-stemanika/portal/backend/internal/middleware"
	"github.com/sobat-stemanika/portal/backend/internal/models"
	"github.com/sobat-stemanika/portal/backend/internal/vote"
)

const testSecret = "vote-handler-test-secret"

func voterToken(t *testing.T, userID int, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

// newVoteRouter wires the vote routes exactly as the server does, backed by
// the in-memory store.
func newVoteRouter(store vote.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewVoteHandler(vote.NewLedger(store), vote.NewAggregator(store))

	r := gin.New()
	api := r.Group("/api")
	api.GET("/vote/results", handler.Results)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	protected.POST("/vote", middleware.RequireRole(models.RoleSiswa), handler.Cast)
	protected.GET("/vote/me", handler.MyVotes)
	protected.GET("/vote", middleware.RequireRole(models.RoleAdmin), handler.ListVotes)

	return r
}

func postVote(r *gin.Engine, token string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", "/api/vote", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCastEndpoint(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	router := newVoteRouter(vote.NewMemoryStore())
	token := voterToken(t, 1, models.RoleSiswa)

	// First cast creates
	w := postVote(router, token, gin.H{"target_id": "K1", "vote_type": 1})
	assert.Equal(t, http.StatusCreated, w.Code)

	var record models.Vote
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.Equal(t, 1, record.UserID)
	assert.Equal(t, "K1", record.TargetID)
	assert.Equal(t, 1, record.VoteType)

	// Re-cast overwrites
	w = postVote(router, token, gin.H{"target_id": "K1", "vote_type": -1})
	assert.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.Equal(t, -1, record.VoteType)
}

func TestCastEndpointRejectsBadInput(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	store := vote.NewMemoryStore()
	router := newVoteRouter(store)
	token := voterToken(t, 1, models.RoleSiswa)

	cases := []gin.H{
		{"target_id": "K1", "vote_type": 0},
		{"target_id": "K1", "vote_type": 2},
		{"target_id": "K1", "vote_type": "up"},
		{"target_id": "", "vote_type": 1},
		{"vote_type": 1},
		{"target_id": "K1"},
	}
	for _, body := range cases {
		w := postVote(router, token, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %v", body)
	}

	rows, err := store.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows, "rejected casts must not be written")
}

func TestCastEndpointAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	router := newVoteRouter(vote.NewMemoryStore())

	// No token
	w := postVote(router, "", gin.H{"target_id": "K1", "vote_type": 1})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Admin role cannot cast; voting is for siswa
	w = postVote(router, voterToken(t, 1, models.RoleAdmin), gin.H{"target_id": "K1", "vote_type": 1})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMyVotesEndpoint(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	router := newVoteRouter(vote.NewMemoryStore())
	token := voterToken(t, 1, models.RoleSiswa)

	postVote(router, token, gin.H{"target_id": "K1", "vote_type": 1})
	postVote(router, token, gin.H{"target_id": "K2", "vote_type": -1})
	postVote(router, voterToken(t, 2, models.RoleSiswa), gin.H{"target_id": "K1", "vote_type": 1})

	req := httptest.NewRequest("GET", "/api/vote/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var votes []models.Vote
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &votes))
	assert.Len(t, votes, 2)
}

func TestResultsEndpoint(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	router := newVoteRouter(vote.NewMemoryStore())

	for user := 1; user <= 3; user++ {
		postVote(router, voterToken(t, user, models.RoleSiswa), gin.H{"target_id": "K1", "vote_type": 1})
	}
	postVote(router, voterToken(t, 4, models.RoleSiswa), gin.H{"target_id": "K1", "vote_type": -1})

	req := httptest.NewRequest("GET", "/api/vote/results?target_id=K1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var summary vote.Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 3, summary.Upvotes)
	assert.Equal(t, 1, summary.Downvotes)
	assert.Equal(t, 2, summary.Score)
	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 75.0, summary.PercentUp)
	assert.Equal(t, 25.0, summary.PercentDown)
}

func TestResultsEndpointMissingParam(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	router := newVoteRouter(vote.NewMemoryStore())

	req := httptest.NewRequest("GET", "/api/vote/results", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResultsEndpointZeroVotes(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	router := newVoteRouter(vote.NewMemoryStore())

	req := httptest.NewRequest("GET", "/api/vote/results?target_id=K1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var summary vote.Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, vote.Summary{TargetID: "K1"}, summary)
}

func TestListVotesEndpointAdminOnly(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	router := newVoteRouter(vote.NewMemoryStore())

	postVote(router, voterToken(t, 1, models.RoleSiswa), gin.H{"target_id": "K1", "vote_type": 1})

	req := httptest.NewRequest("GET", "/api/vote", nil)
	req.Header.Set("Authorization", "Bearer "+voterToken(t, 1, models.RoleSiswa))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest("GET", "/api/vote", nil)
	req.Header.Set("Authorization", "Bearer "+voterToken(t, 99, models.RoleAdmin))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var votes []models.Vote
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &votes))
	assert.Len(t, votes, 1)
}
