package models

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is the subscriber→channel relationship row. The composite
// unique index is what keeps the toggle idempotent under concurrent
// requests: the row either exists or it does not, never twice.
type Subscription struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SubscriberID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_subscriptions_pair" json:"subscriber_id"`
	ChannelID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_subscriptions_pair;index" json:"channel_id"`
	CreatedAt    time.Time `json:"created_at"`
	Subscriber   User      `gorm:"foreignKey:SubscriberID" json:"-"`
	Channel      User      `gorm:"foreignKey:ChannelID" json:"-"`
}
