package dto

import (
	"github.com/google/uuid"

	"github.com/cliptube/cliptube-backend/internal/models"
)

type PublishVideoRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
}

type UpdateVideoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// PublishVideoResponse returns the created row plus presigned PUT URLs for
// the video file and thumbnail.
type PublishVideoResponse struct {
	Video           models.Video `json:"video"`
	VideoUpload     UploadTarget `json:"video_upload"`
	ThumbnailUpload UploadTarget `json:"thumbnail_upload"`
}

// VideoResponse decorates a row with presigned GET URLs.
type VideoResponse struct {
	models.Video
	VideoURL     string `json:"video_url,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

type ChannelStats struct {
	ChannelID   uuid.UUID `json:"channel_id"`
	VideoCount  int64     `json:"video_count"`
	TotalViews  int64     `json:"total_views"`
	Subscribers int64     `json:"subscribers"`
	TotalLikes  int64     `json:"total_likes"`
}
