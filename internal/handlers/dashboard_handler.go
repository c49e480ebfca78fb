package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cliptube/cliptube-backend/internal/dto"
	"github.com/cliptube/cliptube-backend/internal/middleware"
	"github.com/cliptube/cliptube-backend/internal/services"
)

// DashboardHandler serves the authenticated owner's channel view; the
// channel is always the actor's own, so no ownership parameter exists to
// get wrong.
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	stats, err := h.dashboardService.ChannelStats(c.Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(stats)
}

func (h *DashboardHandler) Videos(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	page, limit := pagination(c)

	videos, total, err := h.dashboardService.ChannelVideos(c.Context(), userID, page, limit)
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
