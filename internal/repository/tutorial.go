package repository

import (
	"context"
	"errors"

	"yarnhog/internal/cache"
	"yarnhog/internal/models"

	"gorm.io/gorm"
)

// TutorialRepository defines persistence operations for the stitch
// tutorial catalog. The catalog is small and read-heavy; the full list is
// cached as one entry.
type TutorialRepository interface {
	Create(ctx context.Context, tutorial *models.Tutorial) error
	GetByID(ctx context.Context, id uint) (*models.Tutorial, error)
	List(ctx context.Context) ([]*models.Tutorial, error)
	Update(ctx context.Context, tutorial *models.Tutorial) error
	Delete(ctx context.Context, id uint) error
}

type tutorialRepository struct {
	db *gorm.DB
}

// NewTutorialRepository returns a new TutorialRepository implementation.
func NewTutorialRepository(db *gorm.DB) TutorialRepository {
	return &tutorialRepository{db: db}
}

func (r *tutorialRepository) Create(ctx context.Context, tutorial *models.Tutorial) error {
	if err := r.db.WithContext(ctx).Create(tutorial).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateTutorials(ctx)
	return nil
}

func (r *tutorialRepository) GetByID(ctx context.Context, id uint) (*models.Tutorial, error) {
	var tutorial models.Tutorial
	if err := r.db.WithContext(ctx).First(&tutorial, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Tutorial", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &tutorial, nil
}

func (r *tutorialRepository) List(ctx context.Context) ([]*models.Tutorial, error) {
	var tutorials []*models.Tutorial

	err := cache.Aside(ctx, cache.TutorialsKey, &tutorials, cache.TutorialTTL, func() error {
		if err := r.db.WithContext(ctx).Order("name ASC").Find(&tutorials).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tutorials, nil
}

func (r *tutorialRepository) Update(ctx context.Context, tutorial *models.Tutorial) error {
	if err := r.db.WithContext(ctx).Save(tutorial).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateTutorials(ctx)
	return nil
}

func (r *tutorialRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Tutorial{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateTutorials(ctx)
	return nil
}
