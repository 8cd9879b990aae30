package catalog

import (
	"fmt"
	"iter"

	"github.com/AntonioJCosta/svcshell/internal/core/domain/service"
	"github.com/AntonioJCosta/svcshell/internal/core/ports"
)

/*
MemoryCatalog keeps service records in process memory.
It implements the ports.ServiceCatalog interface.

Names are kept in the order they were first put so listings are stable
between commands. It is not safe for concurrent use; the shell runs one
command at a time.
*/
type MemoryCatalog struct {
	order   []string
	records map[string]service.Record
}

// NewMemoryCatalog creates an empty catalog.
func NewMemoryCatalog() ports.ServiceCatalog {
	return &MemoryCatalog{records: make(map[string]service.Record)}
}

// Put inserts or overwrites the record keyed by its name. An overwrite keeps the original position.
func (c *MemoryCatalog) Put(record service.Record) {
	if _, exists := c.records[record.Name]; !exists {
		c.order = append(c.order, record.Name)
	}
	c.records[record.Name] = record.Clone()
}

// Get returns a copy of the record stored under name.
func (c *MemoryCatalog) Get(name string) (service.Record, error) {
	record, ok := c.records[name]
	if !ok {
		return service.Record{}, fmt.Errorf("'%s': %w", name, service.ErrNotFound)
	}
	return record.Clone(), nil
}

// Names implements the ports.ServiceCatalog interface.
func (c *MemoryCatalog) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range c.order {
			if !yield(name) {
				return
			}
		}
	}
}

// All implements the ports.ServiceCatalog interface.
func (c *MemoryCatalog) All() iter.Seq[service.Record] {
	return func(yield func(service.Record) bool) {
		for _, name := range c.order {
			if !yield(c.records[name].Clone()) {
				return
			}
		}
	}
}

// Len returns the number of records held.
func (c *MemoryCatalog) Len() int {
	return len(c.order)
}

// Clear implements the ports.ServiceCatalog interface.
func (c *MemoryCatalog) Clear() {
	c.order = nil
	c.records = make(map[string]service.Record)
}
