package vote

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sobat-stemanika/portal/backend/internal/models"
)

// MemoryStore is a mutex-guarded in-memory Store. The lock makes the upsert
// atomic on the (user_id, target_id) key, matching the database's unique
// constraint semantics for tests.
type MemoryStore struct {
	mu     sync.Mutex
	rows   map[string]models.Vote
	nextID int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: make(map[string]models.Vote), nextID: 1}
}

func pairKey(userID int, targetID string) string {
	return fmt.Sprintf("%d|%s", userID, targetID)
}

func (s *MemoryStore) Upsert(ctx context.Context, v models.Vote) (models.Vote, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := pairKey(v.UserID, v.TargetID)
	now := time.Now().UTC()
	if existing, ok := s.rows[key]; ok {
		existing.VoteType = v.VoteType
		existing.UpdatedAt = now
		s.rows[key] = existing
		return existing, false, nil
	}

	v.ID = s.nextID
	s.nextID++
	v.CreatedAt = now
	v.UpdatedAt = now
	s.rows[key] = v
	return v, true, nil
}

func (s *MemoryStore) ByUser(ctx context.Context, userID int) ([]models.Vote, error) {
	return s.collect(func(v models.Vote) bool { return v.UserID == userID }), nil
}

func (s *MemoryStore) ByTarget(ctx context.Context, targetID string) ([]models.Vote, error) {
	return s.collect(func(v models.Vote) bool { return v.TargetID == targetID }), nil
}

func (s *MemoryStore) All(ctx context.Context) ([]models.Vote, error) {
	return s.collect(func(models.Vote) bool { return true }), nil
}

func (s *MemoryStore) collect(match func(models.Vote) bool) []models.Vote {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Vote
	for _, v := range s.rows {
		if match(v) {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
