package models

import (
	"time"

	"github.com/google/uuid"
)

// Like target kinds.
const (
	LikeTargetVideo   = "video"
	LikeTargetComment = "comment"
	LikeTargetTweet   = "tweet"
)

// Like is the actor→target relationship row for all three likeable
// resources. At most one row per (user, target, type) tuple, enforced by
// the composite unique index.
type Like struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_tuple" json:"user_id"`
	TargetID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_tuple;index" json:"target_id"`
	TargetType string    `gorm:"size:20;not null;uniqueIndex:idx_likes_tuple" json:"target_type"`
	CreatedAt  time.Time `json:"created_at"`
}
