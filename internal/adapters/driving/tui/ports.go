// Package tui provides the interactive voice menu for yakdam.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"errors"

	"github.com/yakdam-labs/yakdam-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Assistant answers questions and drives the voice collaborators.
	Assistant driving.AssistantService

	// Settings supplies the configured OCR image path.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return errors.New("ports are required")
	}
	if p.Assistant == nil {
		return errors.New("assistant service is required")
	}
	return nil
}
