package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/cliptube/cliptube-backend/internal/dto"
	"github.com/cliptube/cliptube-backend/internal/middleware"
	"github.com/cliptube/cliptube-backend/internal/services"
	"github.com/cliptube/cliptube-backend/internal/validate"
)

type VideoHandler struct {
	videoService *services.VideoService
}

func NewVideoHandler(videoService *services.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

func (h *VideoHandler) Publish(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.PublishVideoRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.videoService.Publish(c.Context(), userID, &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *VideoHandler) Get(c *fiber.Ctx) error {
	videoID, err := validate.ID("video id", c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	// Viewer identity is optional here; unpublished videos stay hidden
	// from everyone but their owner.
	actorID := uuid.Nil
	if id, err := middleware.CurrentUserID(c); err == nil {
		actorID = id
	}

	resp, err := h.videoService.GetByID(c.Context(), videoID, actorID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

func (h *VideoHandler) List(c *fiber.Ctx) error {
	page, limit := pagination(c)
	query := c.Query("query")

	ownerID := uuid.Nil
	if raw := c.Query("owner"); raw != "" {
		id, err := validate.ID("owner id", raw)
		if err != nil {
			return writeError(c, err)
		}
		ownerID = id
	}

	actorID := uuid.Nil
	if id, err := middleware.CurrentUserID(c); err == nil {
		actorID = id
	}

	videos, total, err := h.videoService.List(c.Context(), query, ownerID, actorID, page, limit)
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

func (h *VideoHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	videoID, err := validate.ID("video id", c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	var req dto.UpdateVideoRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	video, err := h.videoService.Update(c.Context(), videoID, userID, &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(video)
}

func (h *VideoHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	videoID, err := validate.ID("video id", c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	if err := h.videoService.Delete(c.Context(), videoID, userID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Video deleted"})
}

func (h *VideoHandler) TogglePublish(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	videoID, err := validate.ID("video id", c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	published, err := h.videoService.TogglePublish(c.Context(), videoID, userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"is_published": published})
}
