// Package services contains the core session logic: provider bootstrap,
// session restore, the auth controller, the event fetcher and the view
// coordinator that composes them into observable state.
package services
