package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cliptube/cliptube-backend/internal/apperr"
	"github.com/cliptube/cliptube-backend/internal/dto"
	"github.com/cliptube/cliptube-backend/internal/models"
	"github.com/cliptube/cliptube-backend/internal/storage"
	"github.com/cliptube/cliptube-backend/internal/validate"
)

type VideoService struct {
	db        *gorm.DB
	presigner *storage.Presigner
}

func NewVideoService(db *gorm.DB, presigner *storage.Presigner) *VideoService {
	return &VideoService{db: db, presigner: presigner}
}

// Publish creates the metadata row (unpublished) and returns presigned
// PUT URLs for the file and thumbnail. The client flips the publish flag
// once the uploads finish.
func (s *VideoService) Publish(ctx context.Context, ownerID uuid.UUID, req *dto.PublishVideoRequest) (*dto.PublishVideoResponse, error) {
	if err := validate.NonEmpty("title", req.Title); err != nil {
		return nil, err
	}
	if err := validate.MaxLen("title", req.Title, 255); err != nil {
		return nil, err
	}

	videoKey, videoURL, err := s.presigner.UploadURL(ctx, "videos")
	if err != nil {
		return nil, err
	}
	thumbKey, thumbURL, err := s.presigner.UploadURL(ctx, "thumbnails")
	if err != nil {
		return nil, err
	}

	video := models.Video{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Title:        req.Title,
		Description:  req.Description,
		VideoKey:     videoKey,
		ThumbnailKey: thumbKey,
		Duration:     req.Duration,
	}

	if err := s.db.Create(&video).Error; err != nil {
		return nil, fmt.Errorf("failed to create video: %w", err)
	}

	return &dto.PublishVideoResponse{
		Video:           video,
		VideoUpload:     dto.UploadTarget{Key: videoKey, URL: videoURL},
		ThumbnailUpload: dto.UploadTarget{Key: thumbKey, URL: thumbURL},
	}, nil
}

// GetByID returns a video with presigned GET URLs and bumps the view
// counter. Unpublished videos are visible to their owner only.
func (s *VideoService) GetByID(ctx context.Context, videoID, actorID uuid.UUID) (*dto.VideoResponse, error) {
	var video models.Video
	if err := s.db.First(&video, "id = ?", videoID).Error; err != nil {
		return nil, fmt.Errorf("%w: video", apperr.ErrNotFound)
	}

	if !video.IsPublished && video.OwnerID != actorID {
		return nil, fmt.Errorf("%w: video", apperr.ErrNotFound)
	}

	// Best-effort: a lost increment must not fail the read, but it is not
	// swallowed silently either.
	if err := s.db.Model(&video).Update("views", gorm.Expr("views + 1")).Error; err != nil {
		slog.Warn("failed to bump view counter", "video_id", video.ID, "error", err)
	}

	videoURL, err := s.presigner.DownloadURL(ctx, video.VideoKey)
	if err != nil {
		return nil, err
	}
	thumbURL, err := s.presigner.DownloadURL(ctx, video.ThumbnailKey)
	if err != nil {
		return nil, err
	}

	return &dto.VideoResponse{Video: video, VideoURL: videoURL, ThumbnailURL: thumbURL}, nil
}

// List returns videos newest first, optionally filtered by title search
// or owner. Published videos are visible to everyone; the actor
// additionally sees their own unpublished ones.
func (s *VideoService) List(ctx context.Context, query string, ownerID, actorID uuid.UUID, page, limit int) ([]models.Video, int64, error) {
	base := s.db.Model(&models.Video{})
	if actorID == uuid.Nil {
		base = base.Where("is_published = true")
	} else {
		base = base.Where("is_published = true OR owner_id = ?", actorID)
	}
	if query != "" {
		base = base.Where("title ILIKE ?", "%"+query+"%")
	}
	if ownerID != uuid.Nil {
		base = base.Where("owner_id = ?", ownerID)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var videos []models.Video
	err := base.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&videos).Error
	return videos, total, err
}

func (s *VideoService) Update(ctx context.Context, videoID, actorID uuid.UUID, req *dto.UpdateVideoRequest) (*models.Video, error) {
	video, err := s.loadOwned(videoID, actorID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != "" {
		if err := validate.MaxLen("title", req.Title, 255); err != nil {
			return nil, err
		}
		updates["title"] = req.Title
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("%w: nothing to update", apperr.ErrInvalid)
	}

	if err := s.db.Model(video).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update video: %w", err)
	}
	return video, nil
}

func (s *VideoService) Delete(ctx context.Context, videoID, actorID uuid.UUID) error {
	video, err := s.loadOwned(videoID, actorID)
	if err != nil {
		return err
	}
	return s.db.Delete(video).Error
}

// TogglePublish flips the published flag and returns the new value.
func (s *VideoService) TogglePublish(ctx context.Context, videoID, actorID uuid.UUID) (bool, error) {
	video, err := s.loadOwned(videoID, actorID)
	if err != nil {
		return false, err
	}

	next := !video.IsPublished
	if err := s.db.Model(video).Update("is_published", next).Error; err != nil {
		return false, fmt.Errorf("failed to toggle publish status: %w", err)
	}
	return next, nil
}

// loadOwned is the NotFound-then-Forbidden sequence every mutation uses:
// absence and lack of ownership are reported as different things.
func (s *VideoService) loadOwned(videoID, actorID uuid.UUID) (*models.Video, error) {
	var video models.Video
	if err := s.db.First(&video, "id = ?", videoID).Error; err != nil {
		return nil, fmt.Errorf("%w: video", apperr.ErrNotFound)
	}
	if err := requireOwner(video.OwnerID, actorID); err != nil {
		return nil, err
	}
	return &video, nil
}
