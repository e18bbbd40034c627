package models

import (
	"time"

	"gorm.io/gorm"
)

// Project is a crochet/knitting project. CoverImage holds an inline data
// URI. Materials is the free-text block entered by the user; it is split
// into display chips at read time and never rewritten from the parsed form.
type Project struct {
	ID         uint             `gorm:"primaryKey" json:"id"`
	Title      string           `gorm:"not null" json:"title"`
	UserID     uint             `gorm:"not null;index" json:"user_id"`
	User       User             `gorm:"foreignKey:UserID" json:"user"`
	IsPublic   bool             `gorm:"not null;default:true" json:"is_public"`
	CoverImage string           `gorm:"type:text" json:"cover_image"`
	Materials  string           `gorm:"type:text" json:"materials"`
	Sections   []ProjectSection `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"sections"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
	DeletedAt  gorm.DeletedAt   `gorm:"index" json:"-"`
	// MaterialChips is not persisted; parsed from Materials at query time
	MaterialChips []string `gorm:"-" json:"material_chips"`
}

// ProjectSection is one ordered step of a project under the structured
// schema. Name and Description are required; legacy single-description
// projects are converted by cmd/migrate, not branched on at runtime.
type ProjectSection struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	ProjectID   uint   `gorm:"not null;index" json:"project_id"`
	Position    int    `gorm:"not null" json:"position"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"type:text;not null" json:"description"`
	Image       string `gorm:"type:text" json:"image"`
}
