package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cliptube/cliptube-backend/internal/apperr"
	"github.com/cliptube/cliptube-backend/internal/models"
	"github.com/cliptube/cliptube-backend/internal/validate"
)

type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

func (s *CommentService) ListByVideo(ctx context.Context, videoID uuid.UUID, page, limit int) ([]models.Comment, int64, error) {
	if err := s.db.First(&models.Video{}, "id = ?", videoID).Error; err != nil {
		return nil, 0, fmt.Errorf("%w: video", apperr.ErrNotFound)
	}

	base := s.db.Model(&models.Comment{}).Where("video_id = ?", videoID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []models.Comment
	err := base.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&comments).Error
	return comments, total, err
}

func (s *CommentService) Add(ctx context.Context, videoID, ownerID uuid.UUID, content string) (*models.Comment, error) {
	if err := validate.NonEmpty("content", content); err != nil {
		return nil, err
	}
	if err := validate.MaxLen("content", content, 1000); err != nil {
		return nil, err
	}

	if err := s.db.First(&models.Video{}, "id = ?", videoID).Error; err != nil {
		return nil, fmt.Errorf("%w: video", apperr.ErrNotFound)
	}

	comment := models.Comment{
		ID:      uuid.New(),
		VideoID: videoID,
		OwnerID: ownerID,
		Content: content,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return &comment, nil
}

func (s *CommentService) Update(ctx context.Context, commentID, actorID uuid.UUID, content string) (*models.Comment, error) {
	if err := validate.NonEmpty("content", content); err != nil {
		return nil, err
	}
	if err := validate.MaxLen("content", content, 1000); err != nil {
		return nil, err
	}

	comment, err := s.loadOwned(commentID, actorID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(comment).Update("content", content).Error; err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	return comment, nil
}

func (s *CommentService) Delete(ctx context.Context, commentID, actorID uuid.UUID) error {
	comment, err := s.loadOwned(commentID, actorID)
	if err != nil {
		return err
	}
	return s.db.Delete(comment).Error
}

func (s *CommentService) loadOwned(commentID, actorID uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.First(&comment, "id = ?", commentID).Error; err != nil {
		return nil, fmt.Errorf("%w: comment", apperr.ErrNotFound)
	}
	if err := requireOwner(comment.OwnerID, actorID); err != nil {
		return nil, err
	}
	return &comment, nil
}
