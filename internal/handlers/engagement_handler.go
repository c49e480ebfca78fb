package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cliptube/cliptube-backend/internal/dto"
	"github.com/cliptube/cliptube-backend/internal/middleware"
	"github.com/cliptube/cliptube-backend/internal/models"
	"github.com/cliptube/cliptube-backend/internal/services"
	"github.com/cliptube/cliptube-backend/internal/validate"
)

type EngagementHandler struct {
	engagementService *services.EngagementService
}

func NewEngagementHandler(engagementService *services.EngagementService) *EngagementHandler {
	return &EngagementHandler{engagementService: engagementService}
}

func (h *EngagementHandler) ToggleVideoLike(c *fiber.Ctx) error {
	return h.toggleLike(c, models.LikeTargetVideo)
}

func (h *EngagementHandler) ToggleCommentLike(c *fiber.Ctx) error {
	return h.toggleLike(c, models.LikeTargetComment)
}

func (h *EngagementHandler) ToggleTweetLike(c *fiber.Ctx) error {
	return h.toggleLike(c, models.LikeTargetTweet)
}

func (h *EngagementHandler) toggleLike(c *fiber.Ctx, targetType string) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	targetID, err := validate.ID(targetType+" id", c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	status, err := h.engagementService.ToggleLike(c.Context(), userID, targetID, targetType)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToggleResponse{Status: status})
}

func (h *EngagementHandler) ToggleSubscription(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	channelID, err := validate.ID("channel id", c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	status, err := h.engagementService.ToggleSubscription(c.Context(), userID, channelID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToggleResponse{Status: status})
}

func (h *EngagementHandler) GetLikedVideos(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	page, limit := pagination(c)

	videos, total, err := h.engagementService.GetLikedVideos(c.Context(), userID, page, limit)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"videos": videos,
			"pagination": dto.Pagination{
				Page: page, Limit: limit, Total: total, TotalPages: totalPages(total, limit),
			},
		},
	})
}

func (h *EngagementHandler) GetChannelSubscribers(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	channelID, err := validate.ID("channel id", c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	subscribers, total, err := h.engagementService.GetChannelSubscribers(c.Context(), channelID, userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"subscribers": subscribers,
			"total":       total,
		},
	})
}

func (h *EngagementHandler) GetSubscribedChannels(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	channels, err := h.engagementService.GetSubscribedChannels(c.Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{"data": fiber.Map{"channels": channels}})
}
