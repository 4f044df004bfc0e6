package repository

import (
	"time"

	"modelforge-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaintingSessionRepository handles database operations for painting sessions
type PaintingSessionRepository struct {
	db *gorm.DB
}

// NewPaintingSessionRepository creates a new painting session repository
func NewPaintingSessionRepository(db *gorm.DB) *PaintingSessionRepository {
	return &PaintingSessionRepository{db: db}
}

// Create inserts a session with its model links
func (r *PaintingSessionRepository) Create(session *models.PaintingSession) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		linked := session.Models
		session.Models = nil
		if err := tx.Create(session).Error; err != nil {
			return err
		}
		session.Models = linked
		if len(linked) > 0 {
			return tx.Model(session).Association("Models").Append(&linked)
		}
		return nil
	})
}

// GetByID retrieves a session by ID with its models
func (r *PaintingSessionRepository) GetByID(id uuid.UUID) (*models.PaintingSession, error) {
	var session models.PaintingSession
	err := r.db.Preload("Models").First(&session, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// GetAll retrieves all sessions with pagination
func (r *PaintingSessionRepository) GetAll(limit, offset int) ([]models.PaintingSession, int64, error) {
	var sessions []models.PaintingSession
	var total int64

	if err := r.db.Model(&models.PaintingSession{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Models").Limit(limit).Offset(offset).Order("start").Find(&sessions).Error
	if err != nil {
		return nil, 0, err
	}

	return sessions, total, nil
}

// GetInRange retrieves sessions overlapping the [from, to) window, for
// calendar rendering
func (r *PaintingSessionRepository) GetInRange(from, to time.Time) ([]models.PaintingSession, error) {
	var sessions []models.PaintingSession
	err := r.db.Preload("Models").
		Where(`start < ? AND "end" > ?`, to, from).
		Order("start").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// Update saves session fields. Model links are replaced via ReplaceModels.
func (r *PaintingSessionRepository) Update(session *models.PaintingSession) error {
	return r.db.Omit("Models").Save(session).Error
}

// ReplaceModels replaces the session's model links
func (r *PaintingSessionRepository) ReplaceModels(session *models.PaintingSession, linked []models.Model) error {
	if err := r.db.Model(session).Association("Models").Replace(&linked); err != nil {
		return err
	}
	session.Models = linked
	return nil
}

// Delete removes a session and its model links
func (r *PaintingSessionRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var session models.PaintingSession
		if err := tx.First(&session, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM session_models WHERE painting_session_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.PaintingSession{}, "id = ?", id).Error
	})
}
