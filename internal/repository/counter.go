package repository

import (
	"context"
	"errors"

	"yarnhog/internal/models"

	"gorm.io/gorm"
)

// CounterRepository defines persistence operations for row counters.
type CounterRepository interface {
	Get(ctx context.Context, userID uint, slot string) (*models.RowCounter, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.RowCounter, error)
	Save(ctx context.Context, counter *models.RowCounter) error
	Delete(ctx context.Context, userID uint, slot string) error
}

type counterRepository struct {
	db *gorm.DB
}

// NewCounterRepository returns a new CounterRepository implementation.
func NewCounterRepository(db *gorm.DB) CounterRepository {
	return &counterRepository{db: db}
}

// Get returns the counter for the slot, creating a zero-valued one on
// first access so clients never see a missing counter.
func (r *counterRepository) Get(ctx context.Context, userID uint, slot string) (*models.RowCounter, error) {
	var counter models.RowCounter
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND slot = ?", userID, slot).
		First(&counter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		counter = models.RowCounter{UserID: userID, Slot: slot, Value: 0}
		if err := r.db.WithContext(ctx).Create(&counter).Error; err != nil {
			return nil, models.NewInternalError(err)
		}
		return &counter, nil
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &counter, nil
}

func (r *counterRepository) ListByUser(ctx context.Context, userID uint) ([]*models.RowCounter, error) {
	var counters []*models.RowCounter
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("slot ASC").
		Find(&counters).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return counters, nil
}

func (r *counterRepository) Save(ctx context.Context, counter *models.RowCounter) error {
	if err := r.db.WithContext(ctx).Save(counter).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *counterRepository) Delete(ctx context.Context, userID uint, slot string) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND slot = ?", userID, slot).
		Delete(&models.RowCounter{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
