package service

import (
	"context"
	"strings"

	"yarnhog/internal/models"
	"yarnhog/internal/repository"
)

type TutorialService struct {
	tutorialRepo repository.TutorialRepository
}

type TutorialInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Shortcut    string `json:"shortcut"`
	VideoURL    string `json:"video_url"`
	Photo       string `json:"photo"`
	Symbol      string `json:"symbol"`
}

func NewTutorialService(tutorialRepo repository.TutorialRepository) *TutorialService {
	return &TutorialService{tutorialRepo: tutorialRepo}
}

func (s *TutorialService) ListTutorials(ctx context.Context) ([]*models.Tutorial, error) {
	return s.tutorialRepo.List(ctx)
}

func (s *TutorialService) GetTutorial(ctx context.Context, id uint) (*models.Tutorial, error) {
	return s.tutorialRepo.GetByID(ctx, id)
}

func (s *TutorialService) CreateTutorial(ctx context.Context, in TutorialInput) (*models.Tutorial, error) {
	tutorial, err := buildTutorial(in)
	if err != nil {
		return nil, err
	}
	if err := s.tutorialRepo.Create(ctx, tutorial); err != nil {
		return nil, err
	}
	return tutorial, nil
}

func (s *TutorialService) UpdateTutorial(ctx context.Context, id uint, in TutorialInput) (*models.Tutorial, error) {
	existing, err := s.tutorialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := buildTutorial(in)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	if err := s.tutorialRepo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *TutorialService) DeleteTutorial(ctx context.Context, id uint) error {
	if _, err := s.tutorialRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.tutorialRepo.Delete(ctx, id)
}

func buildTutorial(in TutorialInput) (*models.Tutorial, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, models.NewValidationError("Name is required")
	}
	return &models.Tutorial{
		Name:        name,
		Description: in.Description,
		Shortcut:    strings.TrimSpace(in.Shortcut),
		VideoURL:    strings.TrimSpace(in.VideoURL),
		Photo:       in.Photo,
		Symbol:      in.Symbol,
	}, nil
}
