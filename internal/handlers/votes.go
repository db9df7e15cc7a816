package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sobat-stemanika/portal/backend/internal/vote"
)

type VoteHandler struct {
	ledger     *vote.Ledger
	aggregator *vote.Aggregator
}

func NewVoteHandler(ledger *vote.Ledger, aggregator *vote.Aggregator) *VoteHandler {
	return &VoteHandler{ledger: ledger, aggregator: aggregator}
}

// Cast handles POST /api/vote (PROTECTED - siswa only).
// Re-casting on the same target overwrites the previous vote.
func (h *VoteHandler) Cast(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input struct {
		TargetID string `json:"target_id" binding:"required"`
		VoteType int    `json:"vote_type" binding:"required,oneof=-1 1"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "target_id dan vote_type (1 atau -1) wajib"})
		return
	}

	record, created, err := h.ledger.Cast(c.Request.Context(), userID.(int), input.TargetID, input.VoteType)
	if err != nil {
		if errors.Is(err, vote.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record vote"})
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, record)
}

// MyVotes handles GET /api/vote/me (PROTECTED).
func (h *VoteHandler) MyVotes(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	votes, err := h.ledger.UserVotes(c.Request.Context(), userID.(int))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch votes"})
		return
	}

	c.JSON(http.StatusOK, votes)
}

// Results handles GET /api/vote/results?target_id= (public).
func (h *VoteHandler) Results(c *gin.Context) {
	targetID := c.Query("target_id")

	summary, err := h.aggregator.Results(c.Request.Context(), targetID)
	if err != nil {
		if errors.Is(err, vote.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "target_id wajib"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute results"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ListVotes handles GET /api/vote (PROTECTED - admin only).
func (h *VoteHandler) ListVotes(c *gin.Context) {
	votes, err := h.ledger.AllVotes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch votes"})
		return
	}

	c.JSON(http.StatusOK, votes)
}
