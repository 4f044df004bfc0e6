package models

import "github.com/google/uuid"

// Model is a single miniature catalog entry. It belongs to one game
// system and any number of armies, carries the painting progression
// status and an optional paint recipe.
type Model struct {
	BaseModel
	Name          string         `json:"name" gorm:"size:200;not null;index" validate:"required,min=1,max=200"`
	GameSystemID  uuid.UUID      `json:"game_system_id" gorm:"type:uuid;not null;index" validate:"required"`
	Description   string         `json:"description" gorm:"size:2000"`
	Quantity      int            `json:"quantity" gorm:"not null;default:1" validate:"required,gt=0"`
	Status        PaintingStatus `json:"status" gorm:"size:20;not null" validate:"required"`
	ImageURL      string         `json:"image_url,omitempty" gorm:"size:500"`
	PaintingNotes string         `json:"painting_notes,omitempty" gorm:"size:2000"`

	GameSystem  *GameSystem        `json:"game_system,omitempty" gorm:"foreignKey:GameSystemID"`
	Armies      []Army             `json:"armies,omitempty" gorm:"many2many:model_armies"`
	PaintRecipe []PaintRecipeEntry `json:"paint_recipe,omitempty" gorm:"foreignKey:ModelID"`
}

// TableName returns the table name for Model
func (Model) TableName() string {
	return "models"
}

// ArmyIDs returns the ids of the loaded armies.
func (m *Model) ArmyIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(m.Armies))
	for i, a := range m.Armies {
		ids[i] = a.ID
	}
	return ids
}

// PaintRecipeEntry records one paint used on a model and what it was used for.
type PaintRecipeEntry struct {
	BaseModel
	ModelID uuid.UUID `json:"model_id" gorm:"type:uuid;not null;index"`
	PaintID uuid.UUID `json:"paint_id" gorm:"type:uuid;not null" validate:"required"`
	Usage   string    `json:"usage" gorm:"size:200"`

	Paint *Paint `json:"paint,omitempty" gorm:"foreignKey:PaintID"`
}

// TableName returns the table name for PaintRecipeEntry
func (PaintRecipeEntry) TableName() string {
	return "paint_recipe_entries"
}
