package models

import (
	"time"

	"quickbudg/internal/uuid"

	"gorm.io/gorm"
)

// Base contains common columns for all tables. Records are hard-deleted;
// ids are never reused.
type Base struct {
	ID        string    `gorm:"type:text;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}
