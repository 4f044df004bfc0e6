// Package seed loads reference data from a YAML file into an empty
// database. Seeding is skipped when any game system already exists, so
// it is safe to leave SEED_FILE configured across restarts.
package seed

import (
	"fmt"
	"os"

	"modelforge-backend/internal/database/models"
	"modelforge-backend/internal/logger"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// File is the top-level structure of a seed file
type File struct {
	GameSystems []GameSystem `yaml:"game_systems"`
	Paints      []Paint      `yaml:"paints"`
}

// GameSystem is one seeded game system with its armies
type GameSystem struct {
	Name            string   `yaml:"name"`
	PrimaryColor    string   `yaml:"primary_color"`
	SecondaryColor  string   `yaml:"secondary_color"`
	BackgroundColor string   `yaml:"background_color"`
	Armies          []string `yaml:"armies"`
}

// Paint is one seeded paint
type Paint struct {
	Name         string `yaml:"name"`
	Manufacturer string `yaml:"manufacturer"`
	Type         string `yaml:"type"`
	ColorScheme  string `yaml:"color_scheme"`
	RGBCode      string `yaml:"rgb_code"`
	Stock        int    `yaml:"stock"`
}

// LoadFile reads the seed file at path and applies it
func LoadFile(db *gorm.DB, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	return Apply(db, &file)
}

// Apply inserts the seed data unless the database already has content
func Apply(db *gorm.DB, file *File) error {
	log := logger.WithComponent("seed")

	var count int64
	if err := db.Model(&models.GameSystem{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check existing data: %w", err)
	}
	if count > 0 {
		log.Info("database already seeded, skipping")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, seedSystem := range file.GameSystems {
			system := models.GameSystem{
				Name:            seedSystem.Name,
				PrimaryColor:    seedSystem.PrimaryColor,
				SecondaryColor:  seedSystem.SecondaryColor,
				BackgroundColor: seedSystem.BackgroundColor,
			}
			if err := tx.Create(&system).Error; err != nil {
				return fmt.Errorf("failed to seed game system %q: %w", seedSystem.Name, err)
			}

			for _, armyName := range seedSystem.Armies {
				army := models.Army{Name: armyName, GameSystemID: system.ID}
				if err := tx.Create(&army).Error; err != nil {
					return fmt.Errorf("failed to seed army %q: %w", armyName, err)
				}
			}
		}

		for _, seedPaint := range file.Paints {
			paintType := models.PaintType(seedPaint.Type)
			if seedPaint.Type != "" && !paintType.IsValid() {
				return fmt.Errorf("invalid paint type %q for paint %q", seedPaint.Type, seedPaint.Name)
			}
			paint := models.Paint{
				Name:         seedPaint.Name,
				Manufacturer: seedPaint.Manufacturer,
				PaintType:    paintType,
				ColorScheme:  seedPaint.ColorScheme,
				RGBCode:      seedPaint.RGBCode,
				Stock:        seedPaint.Stock,
			}
			if err := tx.Create(&paint).Error; err != nil {
				return fmt.Errorf("failed to seed paint %q: %w", seedPaint.Name, err)
			}
		}

		log.WithField("game_systems", len(file.GameSystems)).
			WithField("paints", len(file.Paints)).
			Info("seed data applied")
		return nil
	})
}
