package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cliptube/cliptube-backend/internal/dto"
	"github.com/cliptube/cliptube-backend/internal/middleware"
	"github.com/cliptube/cliptube-backend/internal/services"
	"github.com/cliptube/cliptube-backend/internal/validate"
)

type TweetHandler struct {
	tweetService *services.TweetService
}

func NewTweetHandler(tweetService *services.TweetService) *TweetHandler {
	return &TweetHandler{tweetService: tweetService}
}

func (h *TweetHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateTweetRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	tweet, err := h.tweetService.Create(c.Context(), userID, req.Content)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tweet)
}

func (h *TweetHandler) ListByUser(c *fiber.Ctx) error {
	ownerID, err := validate.ID("user id", c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	page, limit := pagination(c)

	tweets, total, err := h.tweetService.ListByUser(c.Context(), ownerID, page, limit)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"tweets": tweets,
			"pagination": dto.Pagination{
				Page: page, Limit: limit, Total: total, TotalPages: totalPages(total, limit),
			},
		},
	})
}

func (h *TweetHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	tweetID, err := validate.ID("tweet id", c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	var req dto.UpdateTweetRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	tweet, err := h.tweetService.Update(c.Context(), tweetID, userID, req.Content)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(tweet)
}

func (h *TweetHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	tweetID, err := validate.ID("tweet id", c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	if err := h.tweetService.Delete(c.Context(), tweetID, userID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Tweet deleted"})
}
