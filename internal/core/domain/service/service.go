/*
Package service defines the core domain entity for a configurable service.
*/
package service

import (
	"fmt"
	"slices"
	"strings"
)

/*
Record represents a configurable service known to the shell: its name, the
ordered arguments it is started with and where its backup goes. This is a
core domain entity.
*/
type Record struct {
	Name          string
	Arguments     []string
	BackupEnabled bool
	BackupPath    string
}

// New creates a record with a private copy of args.
func New(name string, args []string, backupEnabled bool) Record {
	return Record{
		Name:          name,
		Arguments:     slices.Clone(args),
		BackupEnabled: backupEnabled,
	}
}

// SetBackupPath records where the service is backed up.
// Records without backup enabled never carry a path.
func (r *Record) SetBackupPath(path string) error {
	if !r.BackupEnabled {
		return fmt.Errorf("service '%s': %w", r.Name, ErrBackupDisabled)
	}
	r.BackupPath = path
	return nil
}

// ReplaceArguments swaps the whole argument list for a copy of args.
func (r *Record) ReplaceArguments(args []string) {
	if args == nil {
		args = []string{}
	}
	r.Arguments = slices.Clone(args)
}

// Clone returns a deep copy so callers never share the argument slice.
func (r Record) Clone() Record {
	c := r
	c.Arguments = slices.Clone(r.Arguments)
	return c
}

// Validate checks the invariants a record must hold before it enters a catalog.
func (r Record) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: service name cannot be empty", ErrInvalidDefinition)
	}
	if !r.BackupEnabled && r.BackupPath != "" {
		return fmt.Errorf("%w: service '%s' has a backup path but backup is disabled", ErrInvalidDefinition, r.Name)
	}
	return nil
}

// String renders the record as
// Service(name=n, arguments=[a, b], backupEnabled=true, backupPath=p).
// backupPath is only present once set.
func (r Record) String() string {
	var b strings.Builder
	b.WriteString("Service(name=")
	b.WriteString(r.Name)
	b.WriteString(", arguments=[")
	b.WriteString(strings.Join(r.Arguments, ", "))
	b.WriteString("], backupEnabled=")
	fmt.Fprintf(&b, "%t", r.BackupEnabled)
	if r.BackupPath != "" {
		b.WriteString(", backupPath=")
		b.WriteString(r.BackupPath)
	}
	b.WriteString(")")
	return b.String()
}
