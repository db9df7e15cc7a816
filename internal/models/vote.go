package models

import "time"

// Vote model - one row per (user, target) pair; re-casting updates vote_type in place
type Vote struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	UserID    int       `gorm:"uniqueIndex:idx_votes_user_target" json:"user_id"`
	TargetID  string    `gorm:"uniqueIndex:idx_votes_user_target" json:"target_id"`
	VoteType  int       `json:"vote_type"` // 1 = upvote, -1 = downvote
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
