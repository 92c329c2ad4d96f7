// Package driving defines the inbound ports: the service surface consumed
// by the CLI, TUI and MCP adapters.
package driving
