package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel provides common fields for all models with UUID primary keys.
// CreatedAt is set once at insert; UpdatedAt is touched by GORM on every
// mutation, which gives every entity the created/last-updated pair the
// collection tracker exposes to clients.
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"last_updated"`
}

// BeforeCreate sets the UUID if not already set. IDs are generated
// application-side so the same models work on sqlite and postgres.
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return nil
}
