/*
Package demosource provides the built-in service definitions used when no
definition file is given.
*/
package demosource

import (
	"github.com/AntonioJCosta/svcshell/internal/core/domain/service"
	"github.com/AntonioJCosta/svcshell/internal/core/ports"
)

// DemoSource implements the ports.ServiceDefinitionSource interface with fixed records.
type DemoSource struct{}

// NewDemoSource creates a new DemoSource.
func NewDemoSource() ports.ServiceDefinitionSource {
	return &DemoSource{}
}

// Load returns service_a (backup enabled) and service_b (backup disabled).
func (s *DemoSource) Load() ([]service.Record, error) {
	return []service.Record{
		service.New("service_a", []string{"logging.level=DEBUG", "profile=int"}, true),
		service.New("service_b", []string{"logging.level=TRACE", "profile=int"}, false),
	}, nil
}

// Describe implements the ports.ServiceDefinitionSource interface.
func (s *DemoSource) Describe() string {
	return "built-in demo definitions"
}
