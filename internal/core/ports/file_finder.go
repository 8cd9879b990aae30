package ports

// HistoryFileFinder defines the contract for locating the shell's command history file.
type HistoryFileFinder interface {
	Find() (string, error)
}
