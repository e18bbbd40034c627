package repository

import (
	"context"
	"errors"

	"yarnhog/internal/models"

	"gorm.io/gorm"
)

// MaterialRepository defines persistence operations for stash materials.
// Every query is owner-scoped; a material never leaks across accounts.
type MaterialRepository interface {
	Create(ctx context.Context, material *models.Material) error
	GetByID(ctx context.Context, userID, id uint) (*models.Material, error)
	ListByUser(ctx context.Context, userID uint, kind string, limit, offset int) ([]*models.Material, error)
	Update(ctx context.Context, material *models.Material) error
	Delete(ctx context.Context, userID, id uint) error
}

type materialRepository struct {
	db *gorm.DB
}

// NewMaterialRepository returns a new MaterialRepository implementation.
func NewMaterialRepository(db *gorm.DB) MaterialRepository {
	return &materialRepository{db: db}
}

func (r *materialRepository) Create(ctx context.Context, material *models.Material) error {
	if err := r.db.WithContext(ctx).Create(material).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *materialRepository) GetByID(ctx context.Context, userID, id uint) (*models.Material, error) {
	var material models.Material
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&material, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Material", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &material, nil
}

func (r *materialRepository) ListByUser(ctx context.Context, userID uint, kind string, limit, offset int) ([]*models.Material, error) {
	var materials []*models.Material
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&materials).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return materials, nil
}

func (r *materialRepository) Update(ctx context.Context, material *models.Material) error {
	if err := r.db.WithContext(ctx).Save(material).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *materialRepository) Delete(ctx context.Context, userID, id uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Material{}, id)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Material", id)
	}
	return nil
}
