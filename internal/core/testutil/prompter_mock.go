package testutil

import (
	"errors"

	"github.com/AntonioJCosta/svcshell/internal/core/ports"
)

// MockPrompter is a mock implementation of ports.Prompter.
// Each call is recorded by message so tests can assert which prompts were shown.
type MockPrompter struct {
	SelectOneFunc  func(message string, options []string) (string, error)
	SelectManyFunc func(message string, options []string, defaults []string) ([]string, error)
	InputPathFunc  func(message string) (string, error)

	Calls []string
}

func (m *MockPrompter) SelectOne(message string, options []string) (string, error) {
	m.Calls = append(m.Calls, message)
	if m.SelectOneFunc != nil {
		return m.SelectOneFunc(message, options)
	}
	return "", errors.New("MockPrompter: SelectOneFunc not implemented")
}

func (m *MockPrompter) SelectMany(message string, options []string, defaults []string) ([]string, error) {
	m.Calls = append(m.Calls, message)
	if m.SelectManyFunc != nil {
		return m.SelectManyFunc(message, options, defaults)
	}
	// Keeping the defaults is what pressing Enter does on a real multi-select.
	return defaults, nil
}

func (m *MockPrompter) InputPath(message string) (string, error) {
	m.Calls = append(m.Calls, message)
	if m.InputPathFunc != nil {
		return m.InputPathFunc(message)
	}
	return "", errors.New("MockPrompter: InputPathFunc not implemented")
}

var _ ports.Prompter = (*MockPrompter)(nil)
