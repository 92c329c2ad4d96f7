// Package tui provides an interactive terminal dashboard for cadence.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/cadence-labs/cadence-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Calendar drives the calendar session and meeting fetches.
	Calendar driving.CalendarService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(calendar driving.CalendarService) *Ports {
	return &Ports{
		Calendar: calendar,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Calendar == nil {
		return ErrMissingCalendarService
	}
	return nil
}
