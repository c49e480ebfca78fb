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

type TweetService struct {
	db *gorm.DB
}

func NewTweetService(db *gorm.DB) *TweetService {
	return &TweetService{db: db}
}

func (s *TweetService) Create(ctx context.Context, ownerID uuid.UUID, content string) (*models.Tweet, error) {
	if err := validate.NonEmpty("content", content); err != nil {
		return nil, err
	}
	if err := validate.MaxLen("content", content, 280); err != nil {
		return nil, err
	}

	tweet := models.Tweet{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Content: content,
	}
	if err := s.db.Create(&tweet).Error; err != nil {
		return nil, fmt.Errorf("failed to create tweet: %w", err)
	}
	return &tweet, nil
}

func (s *TweetService) ListByUser(ctx context.Context, ownerID uuid.UUID, page, limit int) ([]models.Tweet, int64, error) {
	base := s.db.Model(&models.Tweet{}).Where("owner_id = ?", ownerID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tweets []models.Tweet
	err := base.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&tweets).Error
	return tweets, total, err
}

func (s *TweetService) Update(ctx context.Context, tweetID, actorID uuid.UUID, content string) (*models.Tweet, error) {
	if err := validate.NonEmpty("content", content); err != nil {
		return nil, err
	}
	if err := validate.MaxLen("content", content, 280); err != nil {
		return nil, err
	}

	tweet, err := s.loadOwned(tweetID, actorID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(tweet).Update("content", content).Error; err != nil {
		return nil, fmt.Errorf("failed to update tweet: %w", err)
	}
	return tweet, nil
}

func (s *TweetService) Delete(ctx context.Context, tweetID, actorID uuid.UUID) error {
	tweet, err := s.loadOwned(tweetID, actorID)
	if err != nil {
		return err
	}
	return s.db.Delete(tweet).Error
}

func (s *TweetService) loadOwned(tweetID, actorID uuid.UUID) (*models.Tweet, error) {
	var tweet models.Tweet
	if err := s.db.First(&tweet, "id = ?", tweetID).Error; err != nil {
		return nil, fmt.Errorf("%w: tweet", apperr.ErrNotFound)
	}
	if err := requireOwner(tweet.OwnerID, actorID); err != nil {
		return nil, err
	}
	return &tweet, nil
}
