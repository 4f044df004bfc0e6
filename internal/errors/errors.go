package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in game system"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Entity Not Found Errors
var (
	ErrGameSystemNotFound      = &NotFoundError{Entity: "game system"}
	ErrArmyNotFound            = &NotFoundError{Entity: "army"}
	ErrModelNotFound           = &NotFoundError{Entity: "model"}
	ErrPaintNotFound           = &NotFoundError{Entity: "paint"}
	ErrPaintingSessionNotFound = &NotFoundError{Entity: "painting session"}
	ErrSettingNotFound         = &NotFoundError{Entity: "setting"}
)

// Already Exists Errors
var (
	ErrGameSystemExists = &AlreadyExistsError{Entity: "game system", Context: "with this name"}
	ErrArmyExists       = &AlreadyExistsError{Entity: "army", Context: "with this name in the game system"}
	ErrPaintExists      = &AlreadyExistsError{Entity: "paint", Context: "with this name from this manufacturer"}
)

// Business Logic Errors
var (
	ErrInvalidStatus           = errors.New("invalid painting status")
	ErrInvalidPaintType        = errors.New("invalid paint type")
	ErrInvalidQuantity         = errors.New("quantity must be a positive integer")
	ErrInvalidTimeRange        = errors.New("invalid time range")
	ErrInvalidStockThreshold   = errors.New("minimum stock threshold must be zero or greater")
	ErrBulkUpdateIncomplete    = errors.New("bulk update aborted: one or more models not found")
	ErrMissingCSVHeader        = errors.New("CSV is missing one or more required headers")
	ErrEmptyImport             = errors.New("import contains no rows")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)
