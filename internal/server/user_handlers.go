package server

import (
	"errors"

	"yarnhog/internal/models"
	"yarnhog/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	user, err := s.userService.GetUserByID(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/users/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Username string `json:"username"`
		Avatar   string `json:"avatar"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	avatarBytes, err := decodeImageField(req.Avatar)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Avatar image could not be read"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:      userID,
		Username:    req.Username,
		AvatarImage: avatarBytes,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	limit := c.QueryInt("projects_limit", 10)
	user, err := s.userService.GetUserWithProjects(c.Context(), id, limit)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(user)
}

// CheckUsernameAvailability handles GET /api/usernames/:username/availability
func (s *Server) CheckUsernameAvailability(c *fiber.Ctx) error {
	username := c.Params("username")

	available, err := s.userService.CheckUsernameAvailability(c.Context(), username)
	if err != nil {
		var appErr *models.AppError
		// A malformed name reports as unavailable with the reason, so the
		// signup form can show it inline instead of a generic failure.
		if errors.As(err, &appErr) && appErr.Code == "VALIDATION_ERROR" {
			return c.JSON(fiber.Map{
				"username":  username,
				"available": false,
				"reason":    appErr.Message,
			})
		}
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"username":  username,
		"available": available,
	})
}
