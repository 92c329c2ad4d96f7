// Package google adapts the Google Calendar API to the provider ports.
package google
