package server

import (
	"scribe/internal/models"
	"scribe/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/posts/:userId
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId", "user ID")
	if err != nil {
		return nil
	}

	var req struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), userID, service.CreatePostInput{
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		// A missing owner answers 400 here, not 404: existing clients depend
		// on this status. The body still carries the NOT_FOUND code.
		if models.HasCode(err, models.CodeNotFound) {
			return models.RespondWithError(c, fiber.StatusBadRequest, err)
		}
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetUserPosts handles GET /api/users/:id/posts
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id", "ID")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 20)

	posts, err := s.postService.ListPostsByUserID(c.Context(), userID, page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(posts)
}
