package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "modelforge-backend/internal/errors"
	"modelforge-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ImportExportHandler handles CSV import and export of the model collection
type ImportExportHandler struct {
	importer service.ImporterServiceInterface
	exporter service.ExporterServiceInterface
}

// NewImportExportHandler creates a new import/export handler
func NewImportExportHandler(importer service.ImporterServiceInterface, exporter service.ExporterServiceInterface) *ImportExportHandler {
	return &ImportExportHandler{importer: importer, exporter: exporter}
}

// ValidateImport handles POST /api/v1/models/import/validate
// @Summary Validate a CSV import
// @Description Parse and classify a CSV file without writing anything. Accepts the file as a multipart "file" field or as the raw request body.
// @Tags import-export
// @Accept mpfd
// @Produce json
// @Param file formData file false "CSV file"
// @Success 200 {object} service.ImportValidation "Classified rows and pending reference entities"
// @Failure 400 {object} map[string]interface{} "Unreadable or structurally invalid CSV"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /models/import/validate [post]
func (h *ImportExportHandler) ValidateImport(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err == nil {
		defer file.Close()
		h.runValidate(c, file)
		return
	}

	if c.Request.Body == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing CSV payload"})
		return
	}
	h.runValidate(c, c.Request.Body)
}

func (h *ImportExportHandler) runValidate(c *gin.Context, r io.Reader) {
	validation, err := h.importer.Validate(r)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrEmptyImport),
			errors.Is(err, apperrors.ErrMissingCSVHeader):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate import", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, validation)
}

// CommitImport handles POST /api/v1/models/import/commit
// @Summary Commit a validated CSV import
// @Description Persist the rows the user confirmed, auto-creating missing game systems and armies first
// @Tags import-export
// @Accept json
// @Produce json
// @Param request body service.ImportCommitRequest true "Validated rows with the user's selection"
// @Success 200 {object} service.ImportSummary "Import summary"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /models/import/commit [post]
func (h *ImportExportHandler) CommitImport(c *gin.Context) {
	var req service.ImportCommitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	summary, err := h.importer.Commit(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit import", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ExportModels handles GET /api/v1/models/export
// @Summary Export the model collection as CSV
// @Tags import-export
// @Produce text/csv
// @Success 200 {string} string "CSV document"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /models/export [get]
func (h *ImportExportHandler) ExportModels(c *gin.Context) {
	filename := fmt.Sprintf("models-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.exporter.ExportModels(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export models", "details": err.Error()})
		return
	}
}
