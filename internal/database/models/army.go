package models

import "github.com/google/uuid"

// Army is a faction within exactly one game system. Models reference
// armies many-to-many through the model_armies join table; removing an
// army only detaches it from models, it never deletes them.
type Army struct {
	BaseModel
	Name         string    `json:"name" gorm:"size:100;not null;index" validate:"required,min=1,max=100"`
	GameSystemID uuid.UUID `json:"game_system_id" gorm:"type:uuid;not null;index" validate:"required"`

	GameSystem *GameSystem `json:"game_system,omitempty" gorm:"foreignKey:GameSystemID"`
	Models     []Model     `json:"models,omitempty" gorm:"many2many:model_armies"`
}

// TableName returns the table name for Army
func (Army) TableName() string {
	return "armies"
}
