package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cliptube/cliptube-backend/internal/dto"
	"github.com/cliptube/cliptube-backend/internal/middleware"
	"github.com/cliptube/cliptube-backend/internal/services"
	"github.com/cliptube/cliptube-backend/internal/validate"
)

type CommentHandler struct {
	commentService *services.CommentService
}

func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) ListByVideo(c *fiber.Ctx) error {
	videoID, err := validate.ID("video id", c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	page, limit := pagination(c)

	comments, total, err := h.commentService.ListByVideo(c.Context(), videoID, page, limit)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"comments": comments,
			"pagination": dto.Pagination{
				Page: page, Limit: limit, Total: total, TotalPages: totalPages(total, limit),
			},
		},
	})
}

func (h *CommentHandler) Add(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	videoID, err := validate.ID("video id", c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	comment, err := h.commentService.Add(c.Context(), videoID, userID, req.Content)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

func (h *CommentHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	commentID, err := validate.ID("comment id", c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	var req dto.UpdateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	comment, err := h.commentService.Update(c.Context(), commentID, userID, req.Content)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(comment)
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	commentID, err := validate.ID("comment id", c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	if err := h.commentService.Delete(c.Context(), commentID, userID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Comment deleted"})
}
