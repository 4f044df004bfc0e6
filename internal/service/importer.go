package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"modelforge-backend/internal/database/models"
	apperrors "modelforge-backend/internal/errors"
	"modelforge-backend/internal/logger"
	"modelforge-backend/internal/repository"

	"github.com/google/uuid"
)

// lookupLimit bounds reference-data loads during import. The catalog
// is small (hundreds of rows), so one page is the whole collection.
const lookupLimit = 10000

// ImporterService turns a CSV upload into validated model-creation
// requests, auto-provisioning missing game systems and armies.
type ImporterService struct {
	modelRepo      repository.ModelRepositoryInterface
	armyRepo       repository.ArmyRepositoryInterface
	gameSystemRepo repository.GameSystemRepositoryInterface
	log            *logger.Logger
}

// NewImporterService creates a new importer service
func NewImporterService(
	modelRepo repository.ModelRepositoryInterface,
	armyRepo repository.ArmyRepositoryInterface,
	gameSystemRepo repository.GameSystemRepositoryInterface,
) *ImporterService {
	return &ImporterService{
		modelRepo:      modelRepo,
		armyRepo:       armyRepo,
		gameSystemRepo: gameSystemRepo,
		log:            logger.WithComponent("importer"),
	}
}

// RowClassification labels an import row after validation
type RowClassification string

const (
	RowNew       RowClassification = "new"
	RowDuplicate RowClassification = "duplicate"
	RowError     RowClassification = "error"
)

// ImportRow is one validated CSV row. Index is the zero-based data row
// in the source file (header excluded) and stays stable through review
// and commit so errors always point at the right source line.
type ImportRow struct {
	Index          int               `json:"index"`
	Name           string            `json:"name"`
	GameSystemName string            `json:"game_system"`
	ArmyNames      []string          `json:"armies"`
	Quantity       int               `json:"quantity"`
	Status         string            `json:"status"`
	PaintingNotes  string            `json:"painting_notes,omitempty"`
	Classification RowClassification `json:"classification"`
	Message        string            `json:"message,omitempty"`
	Import         bool              `json:"import"`
}

// PendingArmy is an army referenced by the CSV that does not exist yet
type PendingArmy struct {
	Name           string `json:"name"`
	GameSystemName string `json:"game_system"`
}

// ImportValidation is the review payload returned after validating a CSV
type ImportValidation struct {
	Rows               []ImportRow   `json:"rows"`
	PendingGameSystems []string      `json:"pending_game_systems"`
	PendingArmies      []PendingArmy `json:"pending_armies"`
	NeedsReview        bool          `json:"needs_review"`
}

// ImportCommitRequest carries the reviewed rows back for finalization.
// The client may have flipped Import flags on duplicates.
type ImportCommitRequest struct {
	Rows []ImportRow `json:"rows"`
}

// ImportErrorRow describes a row that could not be imported
type ImportErrorRow struct {
	Index   int    `json:"index"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// ImportSummary is the result of a finalized import
type ImportSummary struct {
	Imported           int              `json:"imported"`
	SkippedDuplicates  int              `json:"skipped_duplicates"`
	Errors             int              `json:"errors"`
	ErrorRows          []ImportErrorRow `json:"error_rows,omitempty"`
	CreatedGameSystems int              `json:"created_game_systems"`
	CreatedArmies      int              `json:"created_armies"`
}

var requiredHeaders = []string{"name", "game system", "army", "quantity", "status"}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func armyKey(name, system string) string {
	return normalizeKey(name) + "|" + normalizeKey(system)
}

func splitArmyNames(field string) []string {
	parts := strings.Split(field, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}

// referenceIndex caches the current catalog for name resolution.
type referenceIndex struct {
	systemsByName map[string]*models.GameSystem
	armiesByKey   map[string]*models.Army // lower(army name)|lower(system name)
	modelsByName  map[string][]*models.Model
}

func (s *ImporterService) loadReferenceIndex() (*referenceIndex, error) {
	idx := &referenceIndex{
		systemsByName: map[string]*models.GameSystem{},
		armiesByKey:   map[string]*models.Army{},
		modelsByName:  map[string][]*models.Model{},
	}

	systems, _, err := s.gameSystemRepo.GetAll(lookupLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load game systems: %w", err)
	}
	systemsByID := map[uuid.UUID]*models.GameSystem{}
	for i := range systems {
		idx.systemsByName[normalizeKey(systems[i].Name)] = &systems[i]
		systemsByID[systems[i].ID] = &systems[i]
	}

	armies, _, err := s.armyRepo.GetAll(lookupLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load armies: %w", err)
	}
	for i := range armies {
		system, ok := systemsByID[armies[i].GameSystemID]
		if !ok {
			continue
		}
		idx.armiesByKey[armyKey(armies[i].Name, system.Name)] = &armies[i]
	}

	existing, err := s.modelRepo.GetAllWithArmies()
	if err != nil {
		return nil, fmt.Errorf("failed to load models: %w", err)
	}
	for i := range existing {
		key := normalizeKey(existing[i].Name)
		idx.modelsByName[key] = append(idx.modelsByName[key], &existing[i])
	}

	return idx, nil
}

// parseCSV reads the upload into raw row maps keyed by header name.
func parseCSV(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, apperrors.ErrEmptyImport
		}
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	colIndex := map[string]int{}
	for i, col := range header {
		colIndex[normalizeKey(col)] = i
	}
	for _, required := range requiredHeaders {
		if _, ok := colIndex[required]; !ok {
			return nil, fmt.Errorf("%w: %q", apperrors.ErrMissingCSVHeader, required)
		}
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		row := map[string]string{}
		for name, i := range colIndex {
			if i < len(record) {
				row[name] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// Validate parses and classifies a CSV upload without writing anything.
// Unknown game systems and armies are queued for creation instead of
// failing their rows.
func (s *ImporterService) Validate(r io.Reader) (*ImportValidation, error) {
	raw, err := parseCSV(r)
	if err != nil {
		return nil, err
	}

	idx, err := s.loadReferenceIndex()
	if err != nil {
		return nil, err
	}

	pendingSystems := map[string]string{}     // lower name -> original spelling
	pendingArmies := map[string]PendingArmy{} // composite key -> pending entry
	result := &ImportValidation{Rows: []ImportRow{}}

	for i, fields := range raw {
		// Trailing blank lines produce fully-empty records; skip them.
		empty := true
		for _, v := range fields {
			if v != "" {
				empty = false
				break
			}
		}
		if empty {
			continue
		}

		row := ImportRow{
			Index:          i,
			Name:           fields["name"],
			GameSystemName: fields["game system"],
			ArmyNames:      splitArmyNames(fields["army"]),
			Status:         fields["status"],
			PaintingNotes:  fields["painting notes"],
		}

		var missing []string
		if row.Name == "" {
			missing = append(missing, "name")
		}
		if row.GameSystemName == "" {
			missing = append(missing, "game system")
		}
		if len(row.ArmyNames) == 0 {
			missing = append(missing, "army")
		}
		if fields["quantity"] == "" {
			missing = append(missing, "quantity")
		}
		if row.Status == "" {
			missing = append(missing, "status")
		}
		if len(missing) > 0 {
			row.Classification = RowError
			row.Message = "missing required fields: " + strings.Join(missing, ", ")
			result.Rows = append(result.Rows, row)
			continue
		}

		// Resolve the game system; unknown names are queued, not errors.
		systemKey := normalizeKey(row.GameSystemName)
		_, systemExists := idx.systemsByName[systemKey]
		if !systemExists {
			if _, queued := pendingSystems[systemKey]; !queued {
				pendingSystems[systemKey] = strings.TrimSpace(row.GameSystemName)
			}
		}

		// Resolve armies scoped to the (possibly pending) system.
		var resolvedArmyIDs []uuid.UUID
		for _, armyName := range row.ArmyNames {
			key := armyKey(armyName, row.GameSystemName)
			if army, ok := idx.armiesByKey[key]; ok && systemExists {
				resolvedArmyIDs = append(resolvedArmyIDs, army.ID)
				continue
			}
			if _, queued := pendingArmies[key]; !queued {
				pendingArmies[key] = PendingArmy{
					Name:           armyName,
					GameSystemName: strings.TrimSpace(row.GameSystemName),
				}
			}
		}

		var problems []string
		quantity, err := strconv.Atoi(fields["quantity"])
		if err != nil || quantity <= 0 {
			problems = append(problems, fmt.Sprintf("quantity %q must be a positive integer", fields["quantity"]))
		} else {
			row.Quantity = quantity
		}

		status, ok := models.ParsePaintingStatus(row.Status)
		if !ok {
			problems = append(problems, fmt.Sprintf("status %q is not a recognized painting status", row.Status))
		} else {
			row.Status = string(status)
		}

		if len(problems) > 0 {
			row.Classification = RowError
			row.Message = strings.Join(problems, "; ")
			result.Rows = append(result.Rows, row)
			continue
		}

		// Duplicate when an existing model has the same name and shares
		// at least one resolved army.
		row.Classification = RowNew
		for _, existing := range idx.modelsByName[normalizeKey(row.Name)] {
			if sharesArmy(existing, resolvedArmyIDs) {
				row.Classification = RowDuplicate
				row.Message = fmt.Sprintf("a model named %q already exists in one of these armies", strings.TrimSpace(row.Name))
				break
			}
		}

		row.Import = true
		result.Rows = append(result.Rows, row)
	}

	for _, name := range pendingSystems {
		result.PendingGameSystems = append(result.PendingGameSystems, name)
	}
	sort.Strings(result.PendingGameSystems)

	keys := make([]string, 0, len(pendingArmies))
	for key := range pendingArmies {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		result.PendingArmies = append(result.PendingArmies, pendingArmies[key])
	}

	for _, row := range result.Rows {
		if row.Classification != RowNew {
			result.NeedsReview = true
			break
		}
	}
	if len(result.PendingGameSystems) > 0 || len(result.PendingArmies) > 0 {
		result.NeedsReview = true
	}

	return result, nil
}

func sharesArmy(model *models.Model, armyIDs []uuid.UUID) bool {
	for _, army := range model.Armies {
		for _, id := range armyIDs {
			if army.ID == id {
				return true
			}
		}
	}
	return false
}

// Commit finalizes a reviewed import: creates queued game systems and
// armies, re-resolves every selected row against the completed catalog,
// and submits the survivors as one bulk add. Rows that still fail to
// resolve are demoted to errors rather than aborting the batch.
func (s *ImporterService) Commit(req *ImportCommitRequest) (*ImportSummary, error) {
	summary := &ImportSummary{}

	idx, err := s.loadReferenceIndex()
	if err != nil {
		return nil, err
	}

	// Recompute the creation queues from the rows actually selected,
	// so deselecting every row of a new system skips its creation.
	pendingSystems := map[string]string{}
	pendingArmies := map[string]PendingArmy{}
	for _, row := range req.Rows {
		if !row.Import || row.Classification == RowError {
			continue
		}
		systemKey := normalizeKey(row.GameSystemName)
		if _, ok := idx.systemsByName[systemKey]; !ok {
			if _, queued := pendingSystems[systemKey]; !queued {
				pendingSystems[systemKey] = strings.TrimSpace(row.GameSystemName)
			}
		}
		for _, armyName := range row.ArmyNames {
			key := armyKey(armyName, row.GameSystemName)
			if _, ok := idx.armiesByKey[key]; ok {
				continue
			}
			if _, queued := pendingArmies[key]; !queued {
				pendingArmies[key] = PendingArmy{
					Name:           strings.TrimSpace(armyName),
					GameSystemName: strings.TrimSpace(row.GameSystemName),
				}
			}
		}
	}

	// Create queued game systems first, then armies resolved against
	// the now-complete system list. Creation failures surface later as
	// row errors during re-resolution.
	systemKeys := make([]string, 0, len(pendingSystems))
	for key := range pendingSystems {
		systemKeys = append(systemKeys, key)
	}
	sort.Strings(systemKeys)
	for _, key := range systemKeys {
		system := &models.GameSystem{Name: pendingSystems[key]}
		if err := s.gameSystemRepo.Create(system); err != nil {
			s.log.WithError(err).WithField("name", system.Name).Error("failed to create game system during import")
			continue
		}
		idx.systemsByName[key] = system
		summary.CreatedGameSystems++
	}

	armyKeys := make([]string, 0, len(pendingArmies))
	for key := range pendingArmies {
		armyKeys = append(armyKeys, key)
	}
	sort.Strings(armyKeys)
	for _, key := range armyKeys {
		pending := pendingArmies[key]
		system, ok := idx.systemsByName[normalizeKey(pending.GameSystemName)]
		if !ok {
			continue
		}
		army := &models.Army{Name: pending.Name, GameSystemID: system.ID}
		if err := s.armyRepo.Create(army); err != nil {
			s.log.WithError(err).WithField("name", army.Name).Error("failed to create army during import")
			continue
		}
		idx.armiesByKey[key] = army
		summary.CreatedArmies++
	}

	// Assemble payloads, demoting rows that still cannot resolve.
	var batch []*models.Model
	for _, row := range req.Rows {
		if row.Classification == RowError {
			summary.Errors++
			summary.ErrorRows = append(summary.ErrorRows, ImportErrorRow{
				Index:   row.Index,
				Name:    row.Name,
				Message: row.Message,
			})
			continue
		}
		if !row.Import {
			if row.Classification == RowDuplicate {
				summary.SkippedDuplicates++
			}
			continue
		}

		status, ok := models.ParsePaintingStatus(row.Status)
		if !ok || row.Quantity <= 0 {
			summary.Errors++
			summary.ErrorRows = append(summary.ErrorRows, ImportErrorRow{
				Index:   row.Index,
				Name:    row.Name,
				Message: "row failed revalidation",
			})
			continue
		}

		system, ok := idx.systemsByName[normalizeKey(row.GameSystemName)]
		if !ok {
			summary.Errors++
			summary.ErrorRows = append(summary.ErrorRows, ImportErrorRow{
				Index:   row.Index,
				Name:    row.Name,
				Message: fmt.Sprintf("game system %q could not be created or found", row.GameSystemName),
			})
			continue
		}

		var armies []models.Army
		var unresolved []string
		for _, armyName := range row.ArmyNames {
			if army, ok := idx.armiesByKey[armyKey(armyName, row.GameSystemName)]; ok {
				armies = append(armies, *army)
			} else {
				unresolved = append(unresolved, armyName)
			}
		}
		if len(unresolved) > 0 {
			summary.Errors++
			summary.ErrorRows = append(summary.ErrorRows, ImportErrorRow{
				Index:   row.Index,
				Name:    row.Name,
				Message: fmt.Sprintf("armies could not be created or found: %s", strings.Join(unresolved, ", ")),
			})
			continue
		}

		batch = append(batch, &models.Model{
			Name:          strings.TrimSpace(row.Name),
			GameSystemID:  system.ID,
			Quantity:      row.Quantity,
			Status:        status,
			PaintingNotes: row.PaintingNotes,
			Armies:        armies,
		})
	}

	if len(batch) > 0 {
		if err := s.modelRepo.BulkCreate(batch); err != nil {
			// The partial summary still goes back to the caller so the
			// review screen can show what happened.
			s.log.WithError(err).Error("bulk create failed during import commit")
			for _, model := range batch {
				summary.Errors++
				summary.ErrorRows = append(summary.ErrorRows, ImportErrorRow{
					Name:    model.Name,
					Message: "bulk create failed: " + err.Error(),
				})
			}
			return summary, nil
		}
		summary.Imported = len(batch)
	}

	s.log.WithFields(map[string]interface{}{
		"imported":           summary.Imported,
		"skipped_duplicates": summary.SkippedDuplicates,
		"errors":             summary.Errors,
	}).Info("import committed")

	return summary, nil
}
