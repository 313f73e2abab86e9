package models

import (
	"errors"
	"fmt"
)

// Error taxonomy shared across services and handlers. Handlers map these to
// HTTP statuses with errors.Is; services wrap them with context via %w.
var (
	ErrNotFound        = errors.New("record not found")
	ErrDuplicate       = errors.New("already exists")
	ErrExternalService = errors.New("external service error")
	ErrValidation      = errors.New("validation failed")
)

// ImportRowError is a Phase-1 batch validation failure. Row is 1-based and
// counts only rows that survived the short-row discard.
type ImportRowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

func (e *ImportRowError) Error() string {
	return fmt.Sprintf("row %d: %s %s", e.Row, e.Field, e.Message)
}

func (e *ImportRowError) Unwrap() error {
	return ErrValidation
}
