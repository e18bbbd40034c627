package models

import "time"

// RowCounter is a per-user named counter used while working a pattern.
// Value never goes below zero. Slot distinguishes multiple counters per
// user ("default", "counter_1", ...).
type RowCounter struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_counter_user_slot" json:"user_id"`
	Slot      string    `gorm:"not null;uniqueIndex:idx_counter_user_slot" json:"slot"`
	Value     int       `gorm:"not null;default:0" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
