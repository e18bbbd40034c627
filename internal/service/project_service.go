package service

import (
	"context"
	"strings"

	"yarnhog/internal/featureflags"
	"yarnhog/internal/models"
	"yarnhog/internal/repository"
	"yarnhog/internal/validation"
)

const (
	maxProjectTitleLength = 200
	maxSectionsPerProject = 50
)

// EncodeImageFunc turns raw uploaded image bytes into an inline data URI.
type EncodeImageFunc func(data []byte) (string, error)

type ProjectService struct {
	projectRepo repository.ProjectRepository
	flags       *featureflags.Manager
	encodeImage EncodeImageFunc
}

type SectionInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type CreateProjectInput struct {
	UserID     uint
	Title      string
	IsPublic   *bool
	Materials  string
	CoverImage []byte
	Sections   []SectionInput
}

type UpdateProjectInput struct {
	UserID     uint
	ProjectID  uint
	Title      *string
	IsPublic   *bool
	Materials  *string
	CoverImage []byte
}

func NewProjectService(projectRepo repository.ProjectRepository, flags *featureflags.Manager, encodeImage EncodeImageFunc) *ProjectService {
	return &ProjectService{projectRepo: projectRepo, flags: flags, encodeImage: encodeImage}
}

// CreateProject validates and stores a new project. Visibility defaults to
// public when the request omits it, matching what shipped clients expect.
func (s *ProjectService) CreateProject(ctx context.Context, in CreateProjectInput) (*models.Project, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(title) > maxProjectTitleLength {
		return nil, models.NewValidationError("Title is too long")
	}

	sections, err := s.buildSections(in.UserID, in.Sections)
	if err != nil {
		return nil, err
	}

	project := &models.Project{
		Title:     title,
		UserID:    in.UserID,
		IsPublic:  true,
		Materials: in.Materials,
		Sections:  sections,
	}
	if in.IsPublic != nil {
		project.IsPublic = *in.IsPublic
	}

	if len(in.CoverImage) > 0 {
		cover, err := s.encode(in.CoverImage)
		if err != nil {
			return nil, err
		}
		project.CoverImage = cover
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	decorate(project)
	return project, nil
}

// GetProject returns a project, enforcing that private projects are only
// visible to their owner.
func (s *ProjectService) GetProject(ctx context.Context, id, currentUserID uint) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !project.IsPublic && project.UserID != currentUserID {
		return nil, models.NewNotFoundError("Project", id)
	}
	decorate(project)
	return project, nil
}

func (s *ProjectService) ListUserProjects(ctx context.Context, userID uint, limit, offset int) ([]*models.Project, error) {
	projects, err := s.projectRepo.GetByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		decorate(p)
	}
	return projects, nil
}

func (s *ProjectService) ListPublicProjects(ctx context.Context, limit, offset int) ([]*models.Project, error) {
	projects, err := s.projectRepo.ListPublic(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		decorate(p)
	}
	return projects, nil
}

// UpdateProject applies a partial update to a project the caller owns.
func (s *ProjectService) UpdateProject(ctx context.Context, in UpdateProjectInput) (*models.Project, error) {
	project, err := s.ownedProject(ctx, in.ProjectID, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, models.NewValidationError("Title is required")
		}
		if len(title) > maxProjectTitleLength {
			return nil, models.NewValidationError("Title is too long")
		}
		project.Title = title
	}
	if in.IsPublic != nil {
		project.IsPublic = *in.IsPublic
	}
	if in.Materials != nil {
		project.Materials = *in.Materials
	}
	if len(in.CoverImage) > 0 {
		cover, err := s.encode(in.CoverImage)
		if err != nil {
			return nil, err
		}
		project.CoverImage = cover
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	decorate(project)
	return project, nil
}

// ReplaceSections swaps the full ordered section list of an owned project.
func (s *ProjectService) ReplaceSections(ctx context.Context, userID, projectID uint, inputs []SectionInput) (*models.Project, error) {
	if _, err := s.ownedProject(ctx, projectID, userID); err != nil {
		return nil, err
	}

	sections, err := s.buildSections(userID, inputs)
	if err != nil {
		return nil, err
	}

	if err := s.projectRepo.ReplaceSections(ctx, projectID, sections); err != nil {
		return nil, err
	}

	return s.GetProject(ctx, projectID, userID)
}

func (s *ProjectService) DeleteProject(ctx context.Context, userID, projectID uint) error {
	if _, err := s.ownedProject(ctx, projectID, userID); err != nil {
		return err
	}
	return s.projectRepo.Delete(ctx, projectID)
}

func (s *ProjectService) ownedProject(ctx context.Context, projectID, userID uint) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.UserID != userID {
		return nil, models.NewForbiddenError("You do not own this project")
	}
	return project, nil
}

// buildSections validates section inputs against the structured schema.
// While the structured editor is still rolling out, users outside the
// rollout may omit section descriptions.
func (s *ProjectService) buildSections(userID uint, inputs []SectionInput) ([]models.ProjectSection, error) {
	if len(inputs) > maxSectionsPerProject {
		return nil, models.NewValidationError("Too many sections")
	}

	strict := s.flags.Enabled(featureflags.StructuredSections, userID)
	sections := make([]models.ProjectSection, 0, len(inputs))
	for i, in := range inputs {
		name := strings.TrimSpace(in.Name)
		description := strings.TrimSpace(in.Description)
		if name == "" {
			return nil, models.NewValidationError("Every section needs a name")
		}
		if strict && description == "" {
			return nil, models.NewValidationError("Every section needs a description")
		}
		sections = append(sections, models.ProjectSection{
			Position:    i,
			Name:        name,
			Description: description,
			Image:       in.Image,
		})
	}
	return sections, nil
}

func (s *ProjectService) encode(data []byte) (string, error) {
	if s.encodeImage == nil {
		return "", models.NewValidationError("Image uploads are not available")
	}
	uri, err := s.encodeImage(data)
	if err != nil {
		return "", models.NewValidationError("Cover image could not be read")
	}
	return uri, nil
}

// decorate fills presentation-only fields computed from stored columns.
func decorate(p *models.Project) {
	p.MaterialChips = validation.NormalizeMaterials(p.Materials)
}
