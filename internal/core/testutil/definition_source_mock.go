package testutil

import (
	"github.com/AntonioJCosta/svcshell/internal/core/domain/service"
	"github.com/AntonioJCosta/svcshell/internal/core/ports"
)

// MockDefinitionSource is a mock implementation of ports.ServiceDefinitionSource.
type MockDefinitionSource struct {
	LoadFunc     func() ([]service.Record, error)
	DescribeFunc func() string
}

func (m *MockDefinitionSource) Load() ([]service.Record, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return nil, nil // Default behavior
}

func (m *MockDefinitionSource) Describe() string {
	if m.DescribeFunc != nil {
		return m.DescribeFunc()
	}
	return "mock source"
}

var _ ports.ServiceDefinitionSource = (*MockDefinitionSource)(nil)
