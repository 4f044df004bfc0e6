package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePaintingStatus(t *testing.T) {
	tests := []struct {
		input string
		want  PaintingStatus
		ok    bool
	}{
		{"Assembled", StatusAssembled, true},
		{"assembled", StatusAssembled, true},
		{"  Primed  ", StatusPrimed, true},
		{"ready to game", StatusReadyToGame, true},
		{"READY TO GAME", StatusReadyToGame, true},
		{"Shiny", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParsePaintingStatus(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		if tt.ok {
			assert.Equal(t, tt.want, got, "input %q", tt.input)
		}
	}
}

func TestPaintingStatusIsValid(t *testing.T) {
	for _, status := range AllPaintingStatuses {
		assert.True(t, status.IsValid(), "status %q", status)
	}
	assert.False(t, PaintingStatus("Shiny").IsValid())
}

func TestPaintTypeIsValid(t *testing.T) {
	assert.True(t, PaintTypeBase.IsValid())
	assert.True(t, PaintTypeContrast.IsValid())
	assert.False(t, PaintType("Glitter").IsValid())
}
