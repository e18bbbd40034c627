package server

import (
	"yarnhog/internal/models"
	"yarnhog/internal/service"

	"github.com/gofiber/fiber/v2"
)

type projectRequest struct {
	Title      *string                `json:"title"`
	IsPublic   *bool                  `json:"is_public"`
	Materials  *string                `json:"materials"`
	CoverImage string                 `json:"cover_image"`
	Sections   []service.SectionInput `json:"sections"`
}

// CreateProject handles POST /api/projects
func (s *Server) CreateProject(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req projectRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	cover, err := decodeImageField(req.CoverImage)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Cover image could not be read"))
	}

	input := service.CreateProjectInput{
		UserID:     userID,
		IsPublic:   req.IsPublic,
		CoverImage: cover,
		Sections:   req.Sections,
	}
	if req.Title != nil {
		input.Title = *req.Title
	}
	if req.Materials != nil {
		input.Materials = *req.Materials
	}

	project, err := s.projectService.CreateProject(c.Context(), input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

// GetProject handles GET /api/projects/:id
func (s *Server) GetProject(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	project, err := s.projectService.GetProject(c.Context(), id, userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(project)
}

// GetMyProjects handles GET /api/projects
func (s *Server) GetMyProjects(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	p := parsePagination(c, 20)

	projects, err := s.projectService.ListUserProjects(c.Context(), userID, p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(projects)
}

// GetPublicProjects handles GET /api/projects/public
func (s *Server) GetPublicProjects(c *fiber.Ctx) error {
	p := parsePagination(c, 20)

	projects, err := s.projectService.ListPublicProjects(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(projects)
}

// UpdateProject handles PUT /api/projects/:id
func (s *Server) UpdateProject(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req projectRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	cover, err := decodeImageField(req.CoverImage)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Cover image could not be read"))
	}

	project, err := s.projectService.UpdateProject(c.Context(), service.UpdateProjectInput{
		UserID:     userID,
		ProjectID:  id,
		Title:      req.Title,
		IsPublic:   req.IsPublic,
		Materials:  req.Materials,
		CoverImage: cover,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(project)
}

// ReplaceProjectSections handles PUT /api/projects/:id/sections.
// Section edits always arrive as the full ordered list.
func (s *Server) ReplaceProjectSections(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Sections []service.SectionInput `json:"sections"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	project, err := s.projectService.ReplaceSections(c.Context(), userID, id, req.Sections)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(project)
}

// DeleteProject handles DELETE /api/projects/:id
func (s *Server) DeleteProject(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.projectService.DeleteProject(c.Context(), userID, id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Project deleted"})
}
