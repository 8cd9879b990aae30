package ports

import "github.com/AntonioJCosta/svcshell/internal/core/domain/service"

// ServiceDefinitionSource defines where 'parse' reads service records from,
// like a set of definition files.
type ServiceDefinitionSource interface {
	// Load reads all service definitions from the source.
	Load() ([]service.Record, error)

	// Describe returns a short user-facing description of the source.
	Describe() string
}
