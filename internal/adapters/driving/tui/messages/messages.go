// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/cadence-labs/cadence-cli/internal/core/ports/driving"
)

// StateChanged carries a fresh calendar state snapshot into the model.
// The coordinator publishes these on every transition.
type StateChanged struct {
	State driving.CalendarState
}

// SessionSettled signals that initialisation and session restore finished.
type SessionSettled struct{}

// SignInCompleted signals the interactive consent flow finished.
type SignInCompleted struct {
	Err error
}

// SignOutCompleted signals sign-out finished. Sign-out never fails.
type SignOutCompleted struct{}

// MeetingsFetched signals a meetings fetch finished.
type MeetingsFetched struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
