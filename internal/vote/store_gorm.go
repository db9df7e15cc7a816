package vote

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sobat-stemanika/portal/backend/internal/models"
)

// GormStore persists votes in the relational database.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Upsert writes the vote with a single INSERT ... ON CONFLICT DO UPDATE keyed
// by the unique (user_id, target_id) index. The pre-read only decides whether
// to report the cast as new; the constraint decides the row count, so two
// concurrent casts for the same pair can never both insert.
func (s *GormStore) Upsert(ctx context.Context, v models.Vote) (models.Vote, bool, error) {
	var existing models.Vote
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND target_id = ?", v.UserID, v.TargetID).
		First(&existing).Error
	created := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !created {
		return models.Vote{}, false, err
	}

	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "target_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"vote_type":  v.VoteType,
			"updated_at": time.Now().UTC(),
		}),
	}).Create(&v).Error
	if err != nil {
		return models.Vote{}, false, err
	}

	var out models.Vote
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND target_id = ?", v.UserID, v.TargetID).
		First(&out).Error; err != nil {
		return models.Vote{}, false, err
	}
	return out, created, nil
}

func (s *GormStore) ByUser(ctx context.Context, userID int) ([]models.Vote, error) {
	var votes []models.Vote
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&votes).Error
	return votes, err
}

func (s *GormStore) ByTarget(ctx context.Context, targetID string) ([]models.Vote, error) {
	var votes []models.Vote
	err := s.db.WithContext(ctx).
		Where("target_id = ?", targetID).
		Find(&votes).Error
	return votes, err
}

func (s *GormStore) All(ctx context.Context) ([]models.Vote, error) {
	var votes []models.Vote
	err := s.db.WithContext(ctx).
		Order("created_at desc").
		Find(&votes).Error
	return votes, err
}
