package models

import (
	"time"

	"github.com/google/uuid"
)

// PaintingSession is a calendar entry for hobby time. It may reference
// any number of models and optionally a game system.
type PaintingSession struct {
	BaseModel
	Title        string     `json:"title" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	Start        time.Time  `json:"start" gorm:"not null" validate:"required"`
	End          time.Time  `json:"end" gorm:"not null" validate:"required"`
	Notes        string     `json:"notes,omitempty" gorm:"size:2000"`
	GameSystemID *uuid.UUID `json:"game_system_id,omitempty" gorm:"type:uuid;index"`

	GameSystem *GameSystem `json:"game_system,omitempty" gorm:"foreignKey:GameSystemID"`
	Models     []Model     `json:"models,omitempty" gorm:"many2many:session_models"`
}

// TableName returns the table name for PaintingSession
func (PaintingSession) TableName() string {
	return "painting_sessions"
}
