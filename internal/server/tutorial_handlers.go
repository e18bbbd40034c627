package server

import (
	"yarnhog/internal/models"
	"yarnhog/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetTutorials handles GET /api/tutorials
func (s *Server) GetTutorials(c *fiber.Ctx) error {
	tutorials, err := s.tutorialService.ListTutorials(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(tutorials)
}

// GetTutorial handles GET /api/tutorials/:id
func (s *Server) GetTutorial(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	tutorial, err := s.tutorialService.GetTutorial(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(tutorial)
}

// CreateTutorial handles POST /api/tutorials
func (s *Server) CreateTutorial(c *fiber.Ctx) error {
	var req service.TutorialInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	tutorial, err := s.tutorialService.CreateTutorial(c.Context(), req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tutorial)
}

// UpdateTutorial handles PUT /api/tutorials/:id
func (s *Server) UpdateTutorial(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req service.TutorialInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	tutorial, err := s.tutorialService.UpdateTutorial(c.Context(), id, req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(tutorial)
}

// DeleteTutorial handles DELETE /api/tutorials/:id
func (s *Server) DeleteTutorial(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.tutorialService.DeleteTutorial(c.Context(), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Tutorial deleted"})
}
