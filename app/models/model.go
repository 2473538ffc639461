// Package models holds the persisted domain types.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Model is the shared base for every table. It mirrors gorm.Model but with
// camelCase JSON keys so API payloads stay consistent with the rest of the
// wire format. Soft-delete markers never leave the API.
type Model struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
