package server

import (
	"yarnhog/internal/models"
	"yarnhog/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateMaterial handles POST /api/materials
func (s *Server) CreateMaterial(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req service.MaterialInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	material, err := s.materialService.CreateMaterial(c.Context(), userID, req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(material)
}

// GetMaterial handles GET /api/materials/:id
func (s *Server) GetMaterial(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	material, err := s.materialService.GetMaterial(c.Context(), userID, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(material)
}

// GetMaterials handles GET /api/materials with an optional ?kind= filter.
func (s *Server) GetMaterials(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	p := parsePagination(c, 50)
	kind := c.Query("kind")

	materials, err := s.materialService.ListMaterials(c.Context(), userID, kind, p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(materials)
}

// UpdateMaterial handles PUT /api/materials/:id
func (s *Server) UpdateMaterial(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req service.MaterialInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	material, err := s.materialService.UpdateMaterial(c.Context(), userID, id, req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(material)
}

// DeleteMaterial handles DELETE /api/materials/:id
func (s *Server) DeleteMaterial(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.materialService.DeleteMaterial(c.Context(), userID, id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Material deleted"})
}
