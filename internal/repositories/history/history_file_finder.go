package history

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/svcshell/internal/core/ports"
)

/*
EnvHistoryFileFinder locates the readline history file. EnvVar, when set in
the environment, names the file; relative values are taken from the home
directory like HISTFILE. Otherwise Filename inside the home directory is used.
The file does not need to exist yet, readline creates it on first write.
*/
type EnvHistoryFileFinder struct {
	EnvVar   string
	Filename string
}

// NewDefaultHistoryFileFinder returns a finder reading SVCSHELL_HISTFILE with ~/.svcshell_history as fallback.
func NewDefaultHistoryFileFinder() ports.HistoryFileFinder {
	return &EnvHistoryFileFinder{EnvVar: HistoryFileEnv, Filename: defaultHistoryFilename}
}

// Find implements the ports.HistoryFileFinder interface.
func (f *EnvHistoryFileFinder) Find() (string, error) {
	homeDir, err := userHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}

	if f.EnvVar != "" {
		if envVal := os.Getenv(f.EnvVar); envVal != "" {
			if !filepath.IsAbs(envVal) {
				envVal = filepath.Join(homeDir, envVal)
			}
			return envVal, nil
		}
	}

	if f.Filename == "" {
		return "", fmt.Errorf("no history file configured")
	}
	return filepath.Join(homeDir, f.Filename), nil
}
