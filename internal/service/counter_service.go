package service

import (
	"context"
	"strings"

	"yarnhog/internal/models"
	"yarnhog/internal/repository"
)

const maxCounterSlotLength = 50

type CounterService struct {
	counterRepo repository.CounterRepository
}

func NewCounterService(counterRepo repository.CounterRepository) *CounterService {
	return &CounterService{counterRepo: counterRepo}
}

func (s *CounterService) GetCounter(ctx context.Context, userID uint, slot string) (*models.RowCounter, error) {
	slot, err := normalizeSlot(slot)
	if err != nil {
		return nil, err
	}
	return s.counterRepo.Get(ctx, userID, slot)
}

func (s *CounterService) ListCounters(ctx context.Context, userID uint) ([]*models.RowCounter, error) {
	return s.counterRepo.ListByUser(ctx, userID)
}

// Adjust moves a counter by delta. The value floors at zero; decrementing
// past the bottom is not an error, the counter just stays there.
func (s *CounterService) Adjust(ctx context.Context, userID uint, slot string, delta int) (*models.RowCounter, error) {
	slot, err := normalizeSlot(slot)
	if err != nil {
		return nil, err
	}

	counter, err := s.counterRepo.Get(ctx, userID, slot)
	if err != nil {
		return nil, err
	}

	counter.Value += delta
	if counter.Value < 0 {
		counter.Value = 0
	}

	if err := s.counterRepo.Save(ctx, counter); err != nil {
		return nil, err
	}
	return counter, nil
}

// Reset sets a counter back to zero.
func (s *CounterService) Reset(ctx context.Context, userID uint, slot string) (*models.RowCounter, error) {
	slot, err := normalizeSlot(slot)
	if err != nil {
		return nil, err
	}

	counter, err := s.counterRepo.Get(ctx, userID, slot)
	if err != nil {
		return nil, err
	}

	counter.Value = 0
	if err := s.counterRepo.Save(ctx, counter); err != nil {
		return nil, err
	}
	return counter, nil
}

func (s *CounterService) DeleteCounter(ctx context.Context, userID uint, slot string) error {
	slot, err := normalizeSlot(slot)
	if err != nil {
		return err
	}
	return s.counterRepo.Delete(ctx, userID, slot)
}

func normalizeSlot(slot string) (string, error) {
	slot = strings.TrimSpace(slot)
	if slot == "" {
		slot = "default"
	}
	if len(slot) > maxCounterSlotLength {
		return "", models.NewValidationError("Counter name is too long")
	}
	return slot, nil
}
