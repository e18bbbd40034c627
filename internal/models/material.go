package models

import (
	"time"

	"gorm.io/gorm"
)

// Material kinds. Each kind carries its own attribute subset; unrelated
// columns stay zero-valued.
const (
	MaterialKindYarn  = "yarn"
	MaterialKindHook  = "hook"
	MaterialKindOther = "other"
)

// Material is an owner-scoped stash item: yarn, a hook, or anything else.
type Material struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"not null;index" json:"user_id"`
	Kind   string `gorm:"not null;index" json:"kind"`
	Name   string `gorm:"not null" json:"name"`

	// yarn attributes
	Color       string `json:"color,omitempty"`
	WeightGrams string `json:"weight,omitempty"`
	LengthM     string `json:"length,omitempty"`
	ThicknessMM string `json:"thickness,omitempty"`
	Composition string `json:"composition,omitempty"`

	// hook attributes
	SizeMM       string `json:"size,omitempty"`
	HookMaterial string `json:"material,omitempty"`

	// other attributes
	Category string `json:"category,omitempty"`

	// shared by hook and other
	Quantity string `json:"quantity,omitempty"`

	Notes     string         `gorm:"type:text" json:"notes"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
