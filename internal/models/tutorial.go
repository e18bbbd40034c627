package models

import "time"

// Tutorial is a stitch tutorial with a keyboard shortcut label and a video
// link. Photo and Symbol are inline data URIs; legacy records stored a
// single flat image string which cmd/migrate maps into Photo.
type Tutorial struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Shortcut    string    `json:"shortcut"`
	VideoURL    string    `json:"video_url"`
	Photo       string    `gorm:"type:text" json:"photo"`
	Symbol      string    `gorm:"type:text" json:"symbol"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
