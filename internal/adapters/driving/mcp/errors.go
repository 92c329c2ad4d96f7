// Package mcp provides an MCP (Model Context Protocol) server adapter for
// Cadence. It enables AI assistants like Claude to read the user's upcoming
// meetings and connection status.
package mcp

import "errors"

// ErrMissingCalendarService is returned when the calendar service is not provided.
var ErrMissingCalendarService = errors.New("mcp: calendar service is required")
