package models

import (
	"errors"
	"fmt"
)

// ErrInsufficientParticipants is returned when fewer than two located
// participants are supplied; the poll UI disables calculation below that
// threshold and the optimizer enforces it too.
var ErrInsufficientParticipants = errors.New("at least 2 participants with locations are required")

// ErrInvalidPreferences is returned when the required venue type is missing.
var ErrInvalidPreferences = errors.New("venue type is required")

// ProviderError wraps a failure reported by an external mapping provider,
// preserving the originating status for diagnostics.
type ProviderError struct {
	Provider string // "places" or "distance_matrix"
	Status   string // provider status code, if any
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("%s provider error (status %s): %v", e.Provider, e.Status, e.Err)
	}
	return fmt.Sprintf("%s provider error: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError wraps err with the provider name and status.
func NewProviderError(provider, status string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Status: status, Err: err}
}
