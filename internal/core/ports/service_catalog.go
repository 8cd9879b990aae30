package ports

import (
	"iter"

	"github.com/AntonioJCosta/svcshell/internal/core/domain/service"
)

/*
ServiceCatalog defines the contract for the in-memory set of service records
known to the shell. This is a driven port, implemented by a repository.
*/
type ServiceCatalog interface {
	// Put inserts the record or overwrites the one with the same name.
	Put(record service.Record)

	// Get returns the record for name, or an error wrapping service.ErrNotFound.
	Get(name string) (service.Record, error)

	// Names yields every service name in catalog order. The sequence can be ranged over repeatedly.
	Names() iter.Seq[string]

	// All yields every record in catalog order. The sequence can be ranged over repeatedly.
	All() iter.Seq[service.Record]

	// Len reports how many records the catalog holds.
	Len() int

	// Clear removes every record.
	Clear()
}
