package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"modelforge-backend/internal/database/models"
	"modelforge-backend/internal/repository"

	"github.com/google/uuid"
)

// ExporterService writes the model collection as CSV in the same shape
// the importer accepts, so an export can be re-imported as-is.
type ExporterService struct {
	modelRepo      repository.ModelRepositoryInterface
	gameSystemRepo repository.GameSystemRepositoryInterface
}

// NewExporterService creates a new exporter service
func NewExporterService(
	modelRepo repository.ModelRepositoryInterface,
	gameSystemRepo repository.GameSystemRepositoryInterface,
) *ExporterService {
	return &ExporterService{
		modelRepo:      modelRepo,
		gameSystemRepo: gameSystemRepo,
	}
}

var exportHeader = []string{"name", "game system", "army", "quantity", "status"}

// ExportModels streams the full model collection as CSV
func (s *ExporterService) ExportModels(w io.Writer) error {
	list, err := s.modelRepo.GetAllWithArmies()
	if err != nil {
		return fmt.Errorf("failed to load models: %w", err)
	}

	systems, _, err := s.gameSystemRepo.GetAll(lookupLimit, 0)
	if err != nil {
		return fmt.Errorf("failed to load game systems: %w", err)
	}
	systemNames := make(map[uuid.UUID]string, len(systems))
	for _, system := range systems {
		systemNames[system.ID] = system.Name
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i := range list {
		if err := writer.Write(exportRecord(&list[i], systemNames)); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func exportRecord(model *models.Model, systemNames map[uuid.UUID]string) []string {
	armyNames := make([]string, len(model.Armies))
	for i, army := range model.Armies {
		armyNames[i] = army.Name
	}

	return []string{
		model.Name,
		systemNames[model.GameSystemID],
		strings.Join(armyNames, ", "),
		fmt.Sprintf("%d", model.Quantity),
		string(model.Status),
	}
}
