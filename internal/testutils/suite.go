package testutils

import (
	"testing"

	"modelforge-backend/internal/database/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewTestDB opens a fresh in-memory SQLite database with the full
// schema migrated. Every call returns an isolated store, so tests do
// not share state and need no teardown.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A second pooled connection would see its own empty :memory: DB.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.GameSystem{},
		&models.Army{},
		&models.Model{},
		&models.PaintRecipeEntry{},
		&models.Paint{},
		&models.PaintingSession{},
		&models.Setting{},
	))

	return db
}
