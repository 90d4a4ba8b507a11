// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers.
// Health ports are implemented by the platform layer and by outbound clients.
package ports
