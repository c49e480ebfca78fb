package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cliptube/cliptube-backend/internal/dto"
	"github.com/cliptube/cliptube-backend/internal/models"
)

// DashboardService aggregates a channel's numbers for its owner.
type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

func (s *DashboardService) ChannelStats(ctx context.Context, channelID uuid.UUID) (*dto.ChannelStats, error) {
	stats := &dto.ChannelStats{ChannelID: channelID}

	if err := s.db.Model(&models.Video{}).
		Where("owner_id = ?", channelID).
		Count(&stats.VideoCount).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Video{}).
		Where("owner_id = ?", channelID).
		Select("COALESCE(SUM(views), 0)").
		Scan(&stats.TotalViews).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Subscription{}).
		Where("channel_id = ?", channelID).
		Count(&stats.Subscribers).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Like{}).
		Joins("JOIN videos ON videos.id = likes.target_id AND likes.target_type = ?", models.LikeTargetVideo).
		Where("videos.owner_id = ?", channelID).
		Count(&stats.TotalLikes).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

// ChannelVideos lists all of the owner's videos, unpublished included.
func (s *DashboardService) ChannelVideos(ctx context.Context, channelID uuid.UUID, page, limit int) ([]models.Video, int64, error) {
	base := s.db.Model(&models.Video{}).Where("owner_id = ?", channelID)

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
