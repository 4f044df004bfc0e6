package testutils

import (
	"time"

	"modelforge-backend/internal/database/models"

	"github.com/google/uuid"
)

// GameSystemFactory provides methods to create test GameSystem data
type GameSystemFactory struct{}

// NewGameSystemFactory creates a new GameSystemFactory
func NewGameSystemFactory() *GameSystemFactory {
	return &GameSystemFactory{}
}

// Create creates a test GameSystem with default values
func (f *GameSystemFactory) Create() *models.GameSystem {
	return &models.GameSystem{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:            "Warhammer 40,000",
		PrimaryColor:    "#1a1a2e",
		SecondaryColor:  "#c9a227",
		BackgroundColor: "#0f0f1a",
	}
}

// WithName sets a custom name for the game system
func (f *GameSystemFactory) WithName(name string) *models.GameSystem {
	system := f.Create()
	system.Name = name
	return system
}

// ArmyFactory provides methods to create test Army data
type ArmyFactory struct{}

// NewArmyFactory creates a new ArmyFactory
func NewArmyFactory() *ArmyFactory {
	return &ArmyFactory{}
}

// Create creates a test Army with default values
func (f *ArmyFactory) Create() *models.Army {
	return &models.Army{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "Ultramarines",
		GameSystemID: uuid.New(),
	}
}

// WithGameSystem sets the game system ID for the army
func (f *ArmyFactory) WithGameSystem(gameSystemID uuid.UUID) *models.Army {
	army := f.Create()
	army.GameSystemID = gameSystemID
	return army
}

// WithName sets a custom name for the army
func (f *ArmyFactory) WithName(name string, gameSystemID uuid.UUID) *models.Army {
	army := f.Create()
	army.Name = name
	army.GameSystemID = gameSystemID
	return army
}

// ModelFactory provides methods to create test Model data
type ModelFactory struct{}

// NewModelFactory creates a new ModelFactory
func NewModelFactory() *ModelFactory {
	return &ModelFactory{}
}

// Create creates a test Model with default values
func (f *ModelFactory) Create() *models.Model {
	return &models.Model{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "Intercessor Squad",
		GameSystemID: uuid.New(),
		Quantity:     5,
		Status:       models.StatusAssembled,
	}
}

// WithGameSystem sets the game system ID for the model
func (f *ModelFactory) WithGameSystem(gameSystemID uuid.UUID) *models.Model {
	model := f.Create()
	model.GameSystemID = gameSystemID
	return model
}

// WithName sets a custom name for the model
func (f *ModelFactory) WithName(name string, gameSystemID uuid.UUID) *models.Model {
	model := f.Create()
	model.Name = name
	model.GameSystemID = gameSystemID
	return model
}

// WithStatus sets a custom painting status for the model
func (f *ModelFactory) WithStatus(status models.PaintingStatus, gameSystemID uuid.UUID) *models.Model {
	model := f.Create()
	model.Status = status
	model.GameSystemID = gameSystemID
	return model
}

// PaintFactory provides methods to create test Paint data
type PaintFactory struct{}

// NewPaintFactory creates a new PaintFactory
func NewPaintFactory() *PaintFactory {
	return &PaintFactory{}
}

// Create creates a test Paint with default values
func (f *PaintFactory) Create() *models.Paint {
	return &models.Paint{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "Macragge Blue",
		Manufacturer: "Citadel",
		PaintType:    models.PaintTypeBase,
		ColorScheme:  "Blue",
		RGBCode:      "#0F3D7C",
		Stock:        3,
	}
}

// WithStock sets a custom stock level for the paint
func (f *PaintFactory) WithStock(stock int) *models.Paint {
	paint := f.Create()
	paint.Stock = stock
	return paint
}

// WithName sets a custom name for the paint
func (f *PaintFactory) WithName(name string) *models.Paint {
	paint := f.Create()
	paint.Name = name
	return paint
}

// PaintingSessionFactory provides methods to create test PaintingSession data
type PaintingSessionFactory struct{}

// NewPaintingSessionFactory creates a new PaintingSessionFactory
func NewPaintingSessionFactory() *PaintingSessionFactory {
	return &PaintingSessionFactory{}
}

// Create creates a test PaintingSession with default values
func (f *PaintingSessionFactory) Create() *models.PaintingSession {
	start := time.Now().Truncate(time.Hour)
	return &models.PaintingSession{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title: "Evening batch painting",
		Start: start,
		End:   start.Add(2 * time.Hour),
	}
}

// WithWindow sets the session time window
func (f *PaintingSessionFactory) WithWindow(start, end time.Time) *models.PaintingSession {
	session := f.Create()
	session.Start = start
	session.End = end
	return session
}
