package models

// GameSystem is a tabletop ruleset/universe. It is the root of the
// catalog: armies and models reference it, and deleting one cascades
// through both (handled in the service layer, not with DB constraints,
// so behavior is identical across dialects).
type GameSystem struct {
	BaseModel
	Name            string `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	PrimaryColor    string `json:"primary_color" gorm:"size:20"`
	SecondaryColor  string `json:"secondary_color" gorm:"size:20"`
	BackgroundColor string `json:"background_color" gorm:"size:20"`

	Armies []Army  `json:"armies,omitempty" gorm:"foreignKey:GameSystemID"`
	Models []Model `json:"models,omitempty" gorm:"foreignKey:GameSystemID"`
}

// TableName returns the table name for GameSystem
func (GameSystem) TableName() string {
	return "game_systems"
}
