package testutil

import "github.com/AntonioJCosta/svcshell/internal/core/ports"

// MockHistoryFileFinder returns Path and Err, or defers to FindFunc when set.
// Calls counts how often Find ran.
type MockHistoryFileFinder struct {
	Path     string
	Err      error
	FindFunc func() (string, error)
	Calls    int
}

func (m *MockHistoryFileFinder) Find() (string, error) {
	m.Calls++
	if m.FindFunc != nil {
		return m.FindFunc()
	}
	return m.Path, m.Err
}

var _ ports.HistoryFileFinder = (*MockHistoryFileFinder)(nil)
