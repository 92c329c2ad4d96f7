package mcp

import (
	"github.com/cadence-labs/cadence-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Calendar exposes the calendar session and meetings.
	Calendar driving.CalendarService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Calendar == nil {
		return ErrMissingCalendarService
	}
	return nil
}
