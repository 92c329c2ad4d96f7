package tui

import "errors"

// ErrMissingCalendarService is returned when the calendar service is not provided.
var ErrMissingCalendarService = errors.New("tui: calendar service is required")
