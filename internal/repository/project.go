package repository

import (
	"context"
	"errors"

	"yarnhog/internal/cache"
	"yarnhog/internal/models"

	"gorm.io/gorm"
)

// ProjectRepository defines persistence operations for projects and their
// sections.
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id uint) (*models.Project, error)
	GetByUserID(ctx context.Context, userID uint, limit, offset int) ([]*models.Project, error)
	ListPublic(ctx context.Context, limit, offset int) ([]*models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	ReplaceSections(ctx context.Context, projectID uint, sections []models.ProjectSection) error
	Delete(ctx context.Context, id uint) error
}

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository returns a new ProjectRepository implementation.
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *projectRepository) GetByID(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("User").
		First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Project", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &project, nil
}

func (r *projectRepository) GetByUserID(ctx context.Context, userID uint, limit, offset int) ([]*models.Project, error) {
	var projects []*models.Project
	if err := r.db.WithContext(ctx).
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&projects).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return projects, nil
}

func (r *projectRepository) ListPublic(ctx context.Context, limit, offset int) ([]*models.Project, error) {
	var projects []*models.Project
	if err := r.db.WithContext(ctx).
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("User").
		Where("is_public = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&projects).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return projects, nil
}

func (r *projectRepository) Update(ctx context.Context, project *models.Project) error {
	if err := r.db.WithContext(ctx).Omit("Sections").Save(project).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProject(ctx, project.ID)
	return nil
}

// ReplaceSections swaps a project's sections atomically. Section edits
// always arrive as the full ordered list.
func (r *projectRepository) ReplaceSections(ctx context.Context, projectID uint, sections []models.ProjectSection) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&models.ProjectSection{}).Error; err != nil {
			return err
		}
		for i := range sections {
			sections[i].ID = 0
			sections[i].ProjectID = projectID
			sections[i].Position = i
		}
		if len(sections) == 0 {
			return nil
		}
		return tx.Create(&sections).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProject(ctx, projectID)
	return nil
}

func (r *projectRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Project{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProject(ctx, id)
	return nil
}
