package service

import (
	"context"
	"strings"

	"yarnhog/internal/models"
	"yarnhog/internal/repository"
)

const maxMaterialNameLength = 120

type MaterialService struct {
	materialRepo repository.MaterialRepository
}

type MaterialInput struct {
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	WeightGrams string `json:"weight"`
	LengthM     string `json:"length"`
	ThicknessMM string `json:"thickness"`
	Composition string `json:"composition"`
	SizeMM      string `json:"size"`
	Material    string `json:"material"`
	Category    string `json:"category"`
	Quantity    string `json:"quantity"`
	Notes       string `json:"notes"`
}

func NewMaterialService(materialRepo repository.MaterialRepository) *MaterialService {
	return &MaterialService{materialRepo: materialRepo}
}

func (s *MaterialService) CreateMaterial(ctx context.Context, userID uint, in MaterialInput) (*models.Material, error) {
	material, err := buildMaterial(userID, in)
	if err != nil {
		return nil, err
	}
	if err := s.materialRepo.Create(ctx, material); err != nil {
		return nil, err
	}
	return material, nil
}

func (s *MaterialService) GetMaterial(ctx context.Context, userID, id uint) (*models.Material, error) {
	return s.materialRepo.GetByID(ctx, userID, id)
}

func (s *MaterialService) ListMaterials(ctx context.Context, userID uint, kind string, limit, offset int) ([]*models.Material, error) {
	if kind != "" && !validKind(kind) {
		return nil, models.NewValidationError("Unknown material kind")
	}
	return s.materialRepo.ListByUser(ctx, userID, kind, limit, offset)
}

// UpdateMaterial replaces the stored attributes of one stash item. Updates
// arrive as full documents, not patches.
func (s *MaterialService) UpdateMaterial(ctx context.Context, userID, id uint, in MaterialInput) (*models.Material, error) {
	existing, err := s.materialRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	updated, err := buildMaterial(userID, in)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	if err := s.materialRepo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *MaterialService) DeleteMaterial(ctx context.Context, userID, id uint) error {
	return s.materialRepo.Delete(ctx, userID, id)
}

// buildMaterial validates input and keeps only the attributes that belong
// to the item's kind, so a yarn row never carries hook columns.
func buildMaterial(userID uint, in MaterialInput) (*models.Material, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, models.NewValidationError("Name is required")
	}
	if len(name) > maxMaterialNameLength {
		return nil, models.NewValidationError("Name is too long")
	}

	kind := strings.ToLower(strings.TrimSpace(in.Kind))
	if !validKind(kind) {
		return nil, models.NewValidationError("Kind must be yarn, hook, or other")
	}

	material := &models.Material{
		UserID: userID,
		Kind:   kind,
		Name:   name,
		Notes:  in.Notes,
	}

	switch kind {
	case models.MaterialKindYarn:
		material.Color = in.Color
		material.WeightGrams = in.WeightGrams
		material.LengthM = in.LengthM
		material.ThicknessMM = in.ThicknessMM
		material.Composition = in.Composition
	case models.MaterialKindHook:
		material.SizeMM = in.SizeMM
		material.HookMaterial = in.Material
		material.Quantity = in.Quantity
	case models.MaterialKindOther:
		material.Category = in.Category
		material.Quantity = in.Quantity
	}

	return material, nil
}

func validKind(kind string) bool {
	switch kind {
	case models.MaterialKindYarn, models.MaterialKindHook, models.MaterialKindOther:
		return true
	}
	return false
}
