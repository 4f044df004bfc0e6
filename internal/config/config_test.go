package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "7040", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBType)
	assert.Equal(t, "modelforge.db", cfg.SQLitePath)
	assert.False(t, cfg.AuthEnabled())
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadPostgresBuildsURL(t *testing.T) {
	t.Setenv("DB_TYPE", "postgres")
	t.Setenv("DB_NAME", "modelforge_test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.DBType)
	assert.Contains(t, cfg.DatabaseURL, "postgres://")
	assert.Contains(t, cfg.DatabaseURL, "modelforge_test")
}

func TestLoadRejectsUnknownDBType(t *testing.T) {
	t.Setenv("DB_TYPE", "oracle")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database type")
}

func TestLoadRequiresAccessPasswordWithJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ACCESS_PASSWORD")
}

func TestAuthEnabled(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("ACCESS_PASSWORD", "hobby-time")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.AuthEnabled())
}
