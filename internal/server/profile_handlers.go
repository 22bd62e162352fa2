package server

import (
	"time"

	"scribe/internal/models"
	"scribe/internal/service"
	"scribe/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type profileRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
}

// CreateProfile handles POST /api/profiles/:userId
func (s *Server) CreateProfile(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId", "user ID")
	if err != nil {
		return nil
	}

	var req profileRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	dob, err := validation.ParseDateOfBirth(req.DateOfBirth)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	user, err := s.profileService.CreateProfile(c.Context(), userID, service.CreateProfileInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: dob,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// GetProfiles handles GET /api/profiles
func (s *Server) GetProfiles(c *fiber.Ctx) error {
	profiles, err := s.profileService.ListProfiles(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(profiles)
}

// GetProfile handles GET /api/profiles/:userId
func (s *Server) GetProfile(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId", "user ID")
	if err != nil {
		return nil
	}

	profile, err := s.profileService.GetProfileByUserID(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(profile)
}

// UpdateProfile handles PATCH /api/profiles/:userId
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId", "user ID")
	if err != nil {
		return nil
	}

	var req profileRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	var dob time.Time
	if req.DateOfBirth != "" {
		parsed, err := validation.ParseDateOfBirth(req.DateOfBirth)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError(err.Error()))
		}
		dob = parsed
	}

	profile, err := s.profileService.UpdateProfileByUserID(c.Context(), userID, service.UpdateProfileInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: dob,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(profile)
}

// DeleteProfile handles DELETE /api/profiles/:userId
func (s *Server) DeleteProfile(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId", "user ID")
	if err != nil {
		return nil
	}

	if err := s.profileService.DeleteProfileByUserID(c.Context(), userID); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{"message": "Profile deleted"})
}
