package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the identity record. RefreshTokenHash mirrors the hash of the
// currently valid refresh token; nil means no active session. It is only
// ever written through login, the rotation CAS, logout and password change.
type User struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username         string         `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Email            string         `gorm:"size:255;not null;uniqueIndex" json:"email"`
	FullName         string         `gorm:"size:100" json:"full_name"`
	Password         string         `gorm:"not null" json:"-"`
	AvatarKey        string         `gorm:"size:255" json:"avatar_key"`
	CoverImageKey    string         `gorm:"size:255" json:"cover_image_key"`
	RefreshTokenHash *string        `gorm:"size:64" json:"-"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
