package history

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/svcshell/internal/core/ports"
)

// HistoryFileEnv overrides where the shell keeps its command history.
const HistoryFileEnv = "SVCSHELL_HISTFILE"

const defaultHistoryFilename = ".svcshell_history"

// userHomeDir is swapped in tests.
var userHomeDir = os.UserHomeDir

/*
HistoryFile is the resolved location of the shell's readline history.
Path is empty when no location could be determined, in which case history
is kept in memory only.
*/
type HistoryFile struct {
	Path             string
	sourceIdentifier string
}

// SourceIdentifier returns a user-friendly description of where history is kept.
func (h HistoryFile) SourceIdentifier() string {
	return h.sourceIdentifier
}

// ResolveHistoryFile picks the history file: an explicit override wins, then the finder.
// A finder error is not fatal; the shell simply runs without persistent history.
func ResolveHistoryFile(override string, finder ports.HistoryFileFinder) HistoryFile {
	if override != "" {
		return HistoryFile{
			Path:             override,
			sourceIdentifier: fmt.Sprintf("File: %s", toUserFriendlyPath(override)),
		}
	}

	path, err := finder.Find()
	if err != nil || path == "" {
		return HistoryFile{sourceIdentifier: "in-memory (history file not found or configured)"}
	}
	return HistoryFile{
		Path:             path,
		sourceIdentifier: fmt.Sprintf("File: %s", toUserFriendlyPath(path)),
	}
}

// toUserFriendlyPath converts an absolute path to a ~/-based path if it's under the user's home directory.
// If the home directory cannot be determined or the path is not under home, it returns the original path.
func toUserFriendlyPath(absPath string) string {
	homeDir, err := userHomeDir()
	if err != nil || homeDir == "" {
		return absPath
	}

	if absPath == homeDir {
		return "~"
	}
	if !strings.HasPrefix(absPath, homeDir+string(filepath.Separator)) {
		return absPath
	}

	relPath, err := filepath.Rel(homeDir, absPath)
	if err != nil {
		return absPath
	}
	return filepath.Join("~", relPath)
}
