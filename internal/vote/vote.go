package vote

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/sobat-stemanika/portal/backend/internal/models"
)

// Sentinel errors translated to status codes at the request boundary.
var (
	ErrInvalidInput     = errors.New("invalid vote input")
	ErrStoreUnavailable = errors.New("vote store unavailable")
)

const (
	Upvote   = 1
	Downvote = -1
)

// Store is the persistence contract for votes. Upsert must be atomic on the
// unique (user_id, target_id) pair: concurrent casts for the same pair leave
// exactly one row.
type Store interface {
	Upsert(ctx context.Context, v models.Vote) (models.Vote, bool, error)
	ByUser(ctx context.Context, userID int) ([]models.Vote, error)
	ByTarget(ctx context.Context, targetID string) ([]models.Vote, error)
	All(ctx context.Context) ([]models.Vote, error)
}

// NormalizeVoteType accepts exactly 1 or -1.
func NormalizeVoteType(raw int) (int, bool) {
	if raw == Upvote || raw == Downvote {
		return raw, true
	}
	return 0, false
}

// Ledger is the write path: validate, then record through the store's upsert.
type Ledger struct {
	store Store
}

func NewLedger(store Store) *Ledger {
	return &Ledger{store: store}
}

// Cast records or overwrites the caller's vote on a target. The returned bool
// is true when a new row was created, false when an existing vote was updated.
func (l *Ledger) Cast(ctx context.Context, userID int, targetID string, voteType int) (models.Vote, bool, error) {
	if targetID == "" {
		return models.Vote{}, false, fmt.Errorf("%w: target_id is required", ErrInvalidInput)
	}
	normalized, ok := NormalizeVoteType(voteType)
	if !ok {
		return models.Vote{}, false, fmt.Errorf("%w: vote_type must be 1 or -1", ErrInvalidInput)
	}

	record, created, err := l.store.Upsert(ctx, models.Vote{
		UserID:   userID,
		TargetID: targetID,
		VoteType: normalized,
	})
	if err != nil {
		return models.Vote{}, false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return record, created, nil
}

// UserVotes lists every vote the user has cast.
func (l *Ledger) UserVotes(ctx context.Context, userID int) ([]models.Vote, error) {
	votes, err := l.store.ByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if votes == nil {
		votes = []models.Vote{}
	}
	return votes, nil
}

// AllVotes lists every stored vote, for admin review.
func (l *Ledger) AllVotes(ctx context.Context) ([]models.Vote, error) {
	votes, err := l.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if votes == nil {
		votes = []models.Vote{}
	}
	return votes, nil
}

// Summary is the aggregate tally for one target.
type Summary struct {
	TargetID    string  `json:"target_id"`
	Upvotes     int     `json:"upvotes"`
	Downvotes   int     `json:"downvotes"`
	Score       int     `json:"score"`
	Total       int     `json:"total"`
	PercentUp   float64 `json:"percent_up"`
	PercentDown float64 `json:"percent_down"`
}

// Aggregator is the read path: recompute tallies from stored rows on every call.
type Aggregator struct {
	store Store
}

func NewAggregator(store Store) *Aggregator {
	return &Aggregator{store: store}
}

// Results tallies all votes for a target. With zero votes both percentages are
// 0, never NaN.
func (a *Aggregator) Results(ctx context.Context, targetID string) (Summary, error) {
	if targetID == "" {
		return Summary{}, fmt.Errorf("%w: target_id is required", ErrInvalidInput)
	}

	rows, err := a.store.ByTarget(ctx, targetID)
	if err != nil {
		return Summary{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	summary := Summary{TargetID: targetID}
	for _, row := range rows {
		if row.VoteType == Upvote {
			summary.Upvotes++
		} else {
			summary.Downvotes++
		}
	}
	summary.Total = len(rows)
	summary.Score = summary.Upvotes - summary.Downvotes
	if summary.Total > 0 {
		summary.PercentUp = round2(float64(summary.Upvotes) / float64(summary.Total) * 100)
		summary.PercentDown = round2(float64(summary.Downvotes) / float64(summary.Total) * 100)
	}
	return summary, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
