package service

import (
	"io"
	"time"

	"github.com/google/uuid"
)

// GameSystemServiceInterface defines the interface for game system service
type GameSystemServiceInterface interface {
	Create(req *CreateGameSystemRequest) (*GameSystemResponse, error)
	GetByID(id uuid.UUID) (*GameSystemResponse, error)
	GetAll(page, pageSize int) (*GameSystemListResponse, error)
	Update(id uuid.UUID, req *UpdateGameSystemRequest) (*GameSystemResponse, error)
	Delete(id uuid.UUID) (*DeleteGameSystemResponse, error)
}

// ArmyServiceInterface defines the interface for army service
type ArmyServiceInterface interface {
	Create(req *CreateArmyRequest) (*ArmyResponse, error)
	GetByID(id uuid.UUID) (*ArmyResponse, error)
	GetAll(page, pageSize int) (*ArmyListResponse, error)
	GetByGameSystem(gameSystemID uuid.UUID, page, pageSize int) (*ArmyListResponse, error)
	Update(id uuid.UUID, req *UpdateArmyRequest) (*ArmyResponse, error)
	Delete(id uuid.UUID) error
}

// ModelServiceInterface defines the interface for model service
type ModelServiceInterface interface {
	Create(req *CreateModelRequest) (*ModelResponse, error)
	GetByID(id uuid.UUID) (*ModelResponse, error)
	GetAll(page, pageSize int) (*ModelListResponse, error)
	Update(id uuid.UUID, req *UpdateModelRequest) (*ModelResponse, error)
	Delete(id uuid.UUID) error
	BulkAdd(req *BulkAddModelsRequest) (*BulkAddModelsResponse, error)
	BulkUpdate(req *BulkUpdateModelsRequest) (*BulkUpdateModelsResponse, error)
	BulkDelete(req *BulkDeleteModelsRequest) (*BulkDeleteModelsResponse, error)
}

// PaintServiceInterface defines the interface for paint service
type PaintServiceInterface interface {
	Create(req *CreatePaintRequest) (*PaintResponse, error)
	GetByID(id uuid.UUID) (*PaintResponse, error)
	GetAll(page, pageSize int) (*PaintListResponse, error)
	GetLowStock() (*LowStockResponse, error)
	Update(id uuid.UUID, req *UpdatePaintRequest) (*PaintResponse, error)
	Delete(id uuid.UUID) error
}

// PaintingSessionServiceInterface defines the interface for painting session service
type PaintingSessionServiceInterface interface {
	Create(req *CreatePaintingSessionRequest) (*PaintingSessionResponse, error)
	GetByID(id uuid.UUID) (*PaintingSessionResponse, error)
	GetAll(page, pageSize int) (*PaintingSessionListResponse, error)
	GetInRange(from, to time.Time) ([]PaintingSessionResponse, error)
	Update(id uuid.UUID, req *UpdatePaintingSessionRequest) (*PaintingSessionResponse, error)
	Delete(id uuid.UUID) error
}

// SettingsServiceInterface defines the interface for settings service
type SettingsServiceInterface interface {
	GetMinStockThreshold() (int, error)
	SetMinStockThreshold(threshold int) error
	ClearAllData() error
}

// ImporterServiceInterface defines the interface for the CSV importer
type ImporterServiceInterface interface {
	Validate(r io.Reader) (*ImportValidation, error)
	Commit(req *ImportCommitRequest) (*ImportSummary, error)
}

// ExporterServiceInterface defines the interface for the CSV exporter
type ExporterServiceInterface interface {
	ExportModels(w io.Writer) error
}

// Compile-time checks that the concrete services satisfy their interfaces
var (
	_ GameSystemServiceInterface      = (*GameSystemService)(nil)
	_ ArmyServiceInterface            = (*ArmyService)(nil)
	_ ModelServiceInterface           = (*ModelService)(nil)
	_ PaintServiceInterface           = (*PaintService)(nil)
	_ PaintingSessionServiceInterface = (*PaintingSessionService)(nil)
	_ SettingsServiceInterface        = (*SettingsService)(nil)
	_ ImporterServiceInterface        = (*ImporterService)(nil)
	_ ExporterServiceInterface        = (*ExporterService)(nil)
)
