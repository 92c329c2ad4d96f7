package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotConfigured indicates the Google client ID is missing.
	// Terminal until the user fixes configuration.
	ErrNotConfigured = errors.New("google client ID not configured")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Initialisation errors.

	// ErrInitTimeout indicates provider initialisation exceeded its deadline.
	// No partial provider state survives; the caller may retry.
	ErrInitTimeout = errors.New("provider initialisation timed out")

	// ErrProviderInit indicates the provider handle could not be built.
	ErrProviderInit = errors.New("provider initialisation failed")

	// Authentication errors.

	// ErrNotAuthenticated indicates no usable access token is held.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrConsentDenied indicates the user declined the consent prompt.
	ErrConsentDenied = errors.New("consent denied")

	// ErrSilentSignIn indicates a silent sign-in could not complete
	// without a prompt. Expected steady-state outcome on token expiry,
	// never surfaced to the user.
	ErrSilentSignIn = errors.New("silent sign-in unavailable")

	// ErrBrowserLaunch indicates the consent browser could not be opened.
	// Surfaced with a hint to open the authorisation URL manually.
	ErrBrowserLaunch = errors.New("could not open browser")

	// Fetch errors.

	// ErrProviderRequest indicates a provider API call failed.
	// No automatic retry; retry policy belongs to the caller.
	ErrProviderRequest = errors.New("provider request failed")
)
