// Package driven defines the outbound ports: interfaces the core services
// depend on, implemented by adapters (Google SDK wrappers, token storage,
// the local state file). Following the dependency inversion principle, the
// core owns these interfaces and adapters implement them.
package driven
