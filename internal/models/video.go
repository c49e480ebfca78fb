package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Video metadata. The file bytes live in object storage; VideoKey and
// ThumbnailKey reference them.
type Video struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OwnerID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"owner_id"`
	Title        string         `gorm:"size:255;not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	VideoKey     string         `gorm:"size:255;not null" json:"video_key"`
	ThumbnailKey string         `gorm:"size:255" json:"thumbnail_key"`
	Duration     float64        `json:"duration"`
	Views        int64          `gorm:"default:0" json:"views"`
	IsPublished  bool           `gorm:"default:false;index" json:"is_published"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Owner        User           `gorm:"foreignKey:OwnerID" json:"-"`
}
