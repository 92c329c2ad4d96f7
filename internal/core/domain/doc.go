// Package domain contains the core business entities for cadence:
// calendar sessions, meeting events and the errors shared across layers.
// It has no dependencies on adapters or external SDKs.
package domain
