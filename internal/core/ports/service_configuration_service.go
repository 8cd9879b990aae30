package ports

import "github.com/AntonioJCosta/svcshell/internal/core/domain/service"

// ServiceConfigurationService defines the contract behind the shell commands.
type ServiceConfigurationService interface {
	// Parse loads the configured definition source into the catalog and returns how many records it put.
	Parse() (int, error)

	// ParseFrom is Parse with an explicit source.
	ParseFrom(source ServiceDefinitionSource) (int, error)

	// Configure runs the interactive edit of one service and returns the record as it was left.
	// Steps completed before a cancellation stay applied.
	Configure() (service.Record, error)

	// Print returns every record's string form joined by ';'.
	Print() string

	// List returns a snapshot of all records in catalog order.
	List() []service.Record

	// Clear empties the catalog and returns how many records were removed.
	Clear() int
}
