package models

import "strings"

// PaintingStatus is the ordered progression label for a model's completion stage.
type PaintingStatus string

const (
	StatusPurchased   PaintingStatus = "Purchased"
	StatusPrinted     PaintingStatus = "Printed"
	StatusAssembled   PaintingStatus = "Assembled"
	StatusPrimed      PaintingStatus = "Primed"
	StatusPainted     PaintingStatus = "Painted"
	StatusBased       PaintingStatus = "Based"
	StatusReadyToGame PaintingStatus = "Ready to Game"
)

// AllPaintingStatuses lists the progression in order.
var AllPaintingStatuses = []PaintingStatus{
	StatusPurchased,
	StatusPrinted,
	StatusAssembled,
	StatusPrimed,
	StatusPainted,
	StatusBased,
	StatusReadyToGame,
}

// IsValid checks if the PaintingStatus is valid
func (s PaintingStatus) IsValid() bool {
	for _, status := range AllPaintingStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// ParsePaintingStatus matches a raw value against the enumeration
// case-insensitively, returning the canonical form.
func ParsePaintingStatus(raw string) (PaintingStatus, bool) {
	trimmed := strings.TrimSpace(raw)
	for _, status := range AllPaintingStatuses {
		if strings.EqualFold(trimmed, string(status)) {
			return status, true
		}
	}
	return "", false
}

// PaintType defines the kinds of hobby paint a pot can be.
type PaintType string

const (
	PaintTypeBase      PaintType = "Base"
	PaintTypeLayer     PaintType = "Layer"
	PaintTypeShade     PaintType = "Shade"
	PaintTypeContrast  PaintType = "Contrast"
	PaintTypeTechnical PaintType = "Technical"
	PaintTypeDry       PaintType = "Dry"
	PaintTypeAir       PaintType = "Air"
)

// IsValid checks if the PaintType is valid
func (t PaintType) IsValid() bool {
	switch t {
	case PaintTypeBase, PaintTypeLayer, PaintTypeShade, PaintTypeContrast, PaintTypeTechnical, PaintTypeDry, PaintTypeAir:
		return true
	}
	return false
}
