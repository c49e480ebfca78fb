package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cliptube/cliptube-backend/internal/apperr"
	"github.com/cliptube/cliptube-backend/internal/models"
)

// Toggle outcomes: the relationship row is now present or now absent.
const (
	ToggleCreated = "created"
	ToggleDeleted = "deleted"
)

// EngagementService owns the like and subscription relationship rows.
// Both toggles are delete-first writes against a composite unique index;
// there is no lookup-then-write window for two requests to race through.
type EngagementService struct {
	db *gorm.DB
}

func NewEngagementService(db *gorm.DB) *EngagementService {
	return &EngagementService{db: db}
}

// ToggleLike flips the (user, target, type) like row. Concurrent calls on
// the same tuple serialize on the store: the delete and the insert each
// either win or observe the other's outcome, so at most one row ever
// exists and every call returns a well-defined state.
func (s *EngagementService) ToggleLike(ctx context.Context, userID, targetID uuid.UUID, targetType string) (string, error) {
	if err := s.targetExists(targetID, targetType); err != nil {
		return "", err
	}

	res := s.db.Where("user_id = ? AND target_id = ? AND target_type = ?",
		userID, targetID, targetType).Delete(&models.Like{})
	if res.Error != nil {
		return "", fmt.Errorf("failed to remove like: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		return ToggleDeleted, nil
	}

	like := models.Like{
		ID:         uuid.New(),
		UserID:     userID,
		TargetID:   targetID,
		TargetType: targetType,
	}
	if err := s.db.Create(&like).Error; err != nil {
		// A concurrent toggle created the row first; the state the caller
		// asked for is already in place.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ToggleCreated, nil
		}
		return "", fmt.Errorf("failed to create like: %w", err)
	}
	return ToggleCreated, nil
}

// ToggleSubscription flips the subscriber→channel row, same discipline as
// ToggleLike.
func (s *EngagementService) ToggleSubscription(ctx context.Context, subscriberID, channelID uuid.UUID) (string, error) {
	if subscriberID == channelID {
		return "", fmt.Errorf("%w: cannot subscribe to your own channel", apperr.ErrInvalid)
	}

	var channel models.User
	if err := s.db.First(&channel, "id = ?", channelID).Error; err != nil {
		return "", fmt.Errorf("%w: channel", apperr.ErrNotFound)
	}

	res := s.db.Where("subscriber_id = ? AND channel_id = ?",
		subscriberID, channelID).Delete(&models.Subscription{})
	if res.Error != nil {
		return "", fmt.Errorf("failed to unsubscribe: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		return ToggleDeleted, nil
	}

	sub := models.Subscription{
		ID:           uuid.New(),
		SubscriberID: subscriberID,
		ChannelID:    channelID,
	}
	if err := s.db.Create(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ToggleCreated, nil
		}
		return "", fmt.Errorf("failed to subscribe: %w", err)
	}
	return ToggleCreated, nil
}

// GetLikedVideos lists the published videos the user has liked, newest
// like first.
func (s *EngagementService) GetLikedVideos(ctx context.Context, userID uuid.UUID, page, limit int) ([]models.Video, int64, error) {
	base := s.db.Model(&models.Video{}).
		Joins("JOIN likes ON likes.target_id = videos.id AND likes.target_type = ?", models.LikeTargetVideo).
		Where("likes.user_id = ? AND videos.is_published = true", userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var videos []models.Video
	err := base.Order("likes.created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&videos).Error
	return videos, total, err
}

// GetChannelSubscribers lists who subscribed to a channel. Only the
// channel owner may see the list.
func (s *EngagementService) GetChannelSubscribers(ctx context.Context, channelID, actorID uuid.UUID) ([]models.User, int64, error) {
	if err := requireOwner(channelID, actorID); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := s.db.Model(&models.Subscription{}).
		Where("channel_id = ?", channelID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var subscribers []models.User
	err := s.db.Model(&models.User{}).
		Joins("JOIN subscriptions ON subscriptions.subscriber_id = users.id").
		Where("subscriptions.channel_id = ?", channelID).
		Order("subscriptions.created_at DESC").
		Find(&subscribers).Error
	return subscribers, total, err
}

// GetSubscribedChannels lists the channels the user subscribes to.
func (s *EngagementService) GetSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]models.User, error) {
	var channels []models.User
	err := s.db.Model(&models.User{}).
		Joins("JOIN subscriptions ON subscriptions.channel_id = users.id").
		Where("subscriptions.subscriber_id = ?", subscriberID).
		Order("subscriptions.created_at DESC").
		Find(&channels).Error
	return channels, err
}

func (s *EngagementService) targetExists(targetID uuid.UUID, targetType string) error {
	var err error
	switch targetType {
	case models.LikeTargetVideo:
		err = s.db.First(&models.Video{}, "id = ?", targetID).Error
	case models.LikeTargetComment:
		err = s.db.First(&models.Comment{}, "id = ?", targetID).Error
	case models.LikeTargetTweet:
		err = s.db.First(&models.Tweet{}, "id = ?", targetID).Error
	default:
		return fmt.Errorf("%w: unknown like target %q", apperr.ErrInvalid, targetType)
	}
	if err != nil {
		return fmt.Errorf("%w: %s", apperr.ErrNotFound, targetType)
	}
	return nil
}
