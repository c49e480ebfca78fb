package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cliptube/cliptube-backend/internal/dto"
	"github.com/cliptube/cliptube-backend/internal/middleware"
	"github.com/cliptube/cliptube-backend/internal/services"
	"github.com/cliptube/cliptube-backend/internal/validate"
)

type PlaylistHandler struct {
	playlistService *services.PlaylistService
}

func NewPlaylistHandler(playlistService *services.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{playlistService: playlistService}
}

func (h *PlaylistHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreatePlaylistRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	playlist, err := h.playlistService.Create(c.Context(), userID, &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(playlist)
}

func (h *PlaylistHandler) ListByUser(c *fiber.Ctx) error {
	ownerID, err := validate.ID("user id", c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	playlists, err := h.playlistService.ListByUser(c.Context(), ownerID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"playlists": playlists}})
}

func (h *PlaylistHandler) Get(c *fiber.Ctx) error {
	playlistID, err := validate.ID("playlist id", c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	playlist, videos, err := h.playlistService.Get(c.Context(), playlistID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"playlist": playlist,
			"videos":   videos,
		},
	})
}

func (h *PlaylistHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	playlistID, err := validate.ID("playlist id", c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	var req dto.UpdatePlaylistRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	playlist, err := h.playlistService.Update(c.Context(), playlistID, userID, &req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(playlist)
}

func (h *PlaylistHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	playlistID, err := validate.ID("playlist id", c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	if err := h.playlistService.Delete(c.Context(), playlistID, userID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Playlist deleted"})
}

func (h *PlaylistHandler) AddVideo(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	playlistID, err := validate.ID("playlist id", c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	videoID, err := validate.ID("video id", c.Params("videoId"))
	if err != nil {
		return writeError(c, err)
	}

	if err := h.playlistService.AddVideo(c.Context(), playlistID, videoID, userID); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Video added to playlist"})
}

func (h *PlaylistHandler) RemoveVideo(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	playlistID, err := validate.ID("playlist id", c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	videoID, err := validate.ID("video id", c.Params("videoId"))
	if err != nil {
		return writeError(c, err)
	}

	if err := h.playlistService.RemoveVideo(c.Context(), playlistID, videoID, userID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Video removed from playlist"})
}
