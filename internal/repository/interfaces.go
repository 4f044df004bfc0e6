package repository

import (
	"time"

	"modelforge-backend/internal/database/models"

	"github.com/google/uuid"
)

// GameSystemRepositoryInterface defines the interface for game system repository operations
type GameSystemRepositoryInterface interface {
	Create(system *models.GameSystem) error
	GetByID(id uuid.UUID) (*models.GameSystem, error)
	GetByName(name string) (*models.GameSystem, error)
	GetAll(limit, offset int) ([]models.GameSystem, int64, error)
	Update(system *models.GameSystem) error
	// DeleteCascade removes the system, its armies, and every model
	// that belongs to the system or to one of its armies.
	DeleteCascade(id uuid.UUID) (armiesDeleted int64, modelsDeleted int64, err error)
}

// ArmyRepositoryInterface defines the interface for army repository operations
type ArmyRepositoryInterface interface {
	Create(army *models.Army) error
	GetByID(id uuid.UUID) (*models.Army, error)
	GetByName(gameSystemID uuid.UUID, name string) (*models.Army, error)
	GetAll(limit, offset int) ([]models.Army, int64, error)
	GetByGameSystemID(gameSystemID uuid.UUID, limit, offset int) ([]models.Army, int64, error)
	Update(army *models.Army) error
	// Delete detaches the army from every model, then removes it.
	// Models referencing the army are never deleted.
	Delete(id uuid.UUID) error
}

// ModelRepositoryInterface defines the interface for model repository operations
type ModelRepositoryInterface interface {
	Create(model *models.Model) error
	GetByID(id uuid.UUID) (*models.Model, error)
	GetAll(limit, offset int) ([]models.Model, int64, error)
	GetAllWithArmies() ([]models.Model, error)
	Update(model *models.Model) error
	ReplaceArmies(model *models.Model, armies []models.Army) error
	ReplaceRecipe(model *models.Model, entries []models.PaintRecipeEntry) error
	Delete(id uuid.UUID) error
	BulkCreate(batch []*models.Model) error
	// BulkUpdate applies the same column updates to every id in one
	// transaction. Any unknown id aborts the whole call.
	BulkUpdate(ids []uuid.UUID, updates map[string]interface{}) ([]models.Model, error)
	BulkDelete(ids []uuid.UUID) (int64, error)
}

// PaintRepositoryInterface defines the interface for paint repository operations
type PaintRepositoryInterface interface {
	Create(paint *models.Paint) error
	GetByID(id uuid.UUID) (*models.Paint, error)
	GetByNameAndManufacturer(name, manufacturer string) (*models.Paint, error)
	GetAll(limit, offset int) ([]models.Paint, int64, error)
	GetLowStock(threshold int) ([]models.Paint, error)
	Update(paint *models.Paint) error
	Delete(id uuid.UUID) error
}

// PaintingSessionRepositoryInterface defines the interface for painting session repository operations
type PaintingSessionRepositoryInterface interface {
	Create(session *models.PaintingSession) error
	GetByID(id uuid.UUID) (*models.PaintingSession, error)
	GetAll(limit, offset int) ([]models.PaintingSession, int64, error)
	GetInRange(from, to time.Time) ([]models.PaintingSession, error)
	Update(session *models.PaintingSession) error
	ReplaceModels(session *models.PaintingSession, linked []models.Model) error
	Delete(id uuid.UUID) error
}

// SettingRepositoryInterface defines the interface for settings repository operations
type SettingRepositoryInterface interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// AdminRepositoryInterface defines maintenance operations over the whole store
type AdminRepositoryInterface interface {
	ClearAllData() error
}

// Compile-time checks that the concrete repositories satisfy their interfaces
var (
	_ GameSystemRepositoryInterface      = (*GameSystemRepository)(nil)
	_ ArmyRepositoryInterface            = (*ArmyRepository)(nil)
	_ ModelRepositoryInterface           = (*ModelRepository)(nil)
	_ PaintRepositoryInterface           = (*PaintRepository)(nil)
	_ PaintingSessionRepositoryInterface = (*PaintingSessionRepository)(nil)
	_ SettingRepositoryInterface         = (*SettingRepository)(nil)
	_ AdminRepositoryInterface           = (*AdminRepository)(nil)
)
