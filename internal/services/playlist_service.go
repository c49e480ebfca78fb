package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cliptube/cliptube-backend/internal/apperr"
	"github.com/cliptube/cliptube-backend/internal/dto"
	"github.com/cliptube/cliptube-backend/internal/models"
	"github.com/cliptube/cliptube-backend/internal/validate"
)

type PlaylistService struct {
	db *gorm.DB
}

func NewPlaylistService(db *gorm.DB) *PlaylistService {
	return &PlaylistService{db: db}
}

func (s *PlaylistService) Create(ctx context.Context, ownerID uuid.UUID, req *dto.CreatePlaylistRequest) (*models.Playlist, error) {
	if err := validate.NonEmpty("name", req.Name); err != nil {
		return nil, err
	}
	if err := validate.MaxLen("name", req.Name, 100); err != nil {
		return nil, err
	}

	playlist := models.Playlist{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.db.Create(&playlist).Error; err != nil {
		return nil, fmt.Errorf("failed to create playlist: %w", err)
	}
	return &playlist, nil
}

func (s *PlaylistService) ListByUser(ctx context.Context, ownerID uuid.UUID) ([]models.Playlist, error) {
	var playlists []models.Playlist
	err := s.db.Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&playlists).Error
	return playlists, err
}

// Get returns a playlist and its videos in insertion order.
func (s *PlaylistService) Get(ctx context.Context, playlistID uuid.UUID) (*models.Playlist, []models.Video, error) {
	var playlist models.Playlist
	if err := s.db.First(&playlist, "id = ?", playlistID).Error; err != nil {
		return nil, nil, fmt.Errorf("%w: playlist", apperr.ErrNotFound)
	}

	var videos []models.Video
	err := s.db.Model(&models.Video{}).
		Joins("JOIN playlist_videos ON playlist_videos.video_id = videos.id").
		Where("playlist_videos.playlist_id = ?", playlistID).
		Order("playlist_videos.created_at ASC").
		Find(&videos).Error
	if err != nil {
		return nil, nil, err
	}
	return &playlist, videos, nil
}

func (s *PlaylistService) Update(ctx context.Context, playlistID, actorID uuid.UUID, req *dto.UpdatePlaylistRequest) (*models.Playlist, error) {
	playlist, err := s.loadOwned(playlistID, actorID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		if err := validate.MaxLen("name", req.Name, 100); err != nil {
			return nil, err
		}
		updates["name"] = req.Name
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("%w: nothing to update", apperr.ErrInvalid)
	}

	if err := s.db.Model(playlist).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update playlist: %w", err)
	}
	return playlist, nil
}

func (s *PlaylistService) Delete(ctx context.Context, playlistID, actorID uuid.UUID) error {
	playlist, err := s.loadOwned(playlistID, actorID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", playlistID).Delete(&models.PlaylistVideo{}).Error; err != nil {
			return err
		}
		return tx.Delete(playlist).Error
	})
}

// AddVideo appends a video to an owned playlist. A double add surfaces
// the unique-index violation as Conflict.
func (s *PlaylistService) AddVideo(ctx context.Context, playlistID, videoID, actorID uuid.UUID) error {
	if _, err := s.loadOwned(playlistID, actorID); err != nil {
		return err
	}
	if err := s.db.First(&models.Video{}, "id = ?", videoID).Error; err != nil {
		return fmt.Errorf("%w: video", apperr.ErrNotFound)
	}

	entry := models.PlaylistVideo{
		ID:         uuid.New(),
		PlaylistID: playlistID,
		VideoID:    videoID,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: video already in playlist", apperr.ErrConflict)
		}
		return fmt.Errorf("failed to add video to playlist: %w", err)
	}
	return nil
}

func (s *PlaylistService) RemoveVideo(ctx context.Context, playlistID, videoID, actorID uuid.UUID) error {
	if _, err := s.loadOwned(playlistID, actorID); err != nil {
		return err
	}

	res := s.db.Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&models.PlaylistVideo{})
	if res.Error != nil {
		return fmt.Errorf("failed to remove video from playlist: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: video not in playlist", apperr.ErrNotFound)
	}
	return nil
}

func (s *PlaylistService) loadOwned(playlistID, actorID uuid.UUID) (*models.Playlist, error) {
	var playlist models.Playlist
	if err := s.db.First(&playlist, "id = ?", playlistID).Error; err != nil {
		return nil, fmt.Errorf("%w: playlist", apperr.ErrNotFound)
	}
	if err := requireOwner(playlist.OwnerID, actorID); err != nil {
		return nil, err
	}
	return &playlist, nil
}
