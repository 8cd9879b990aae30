package service

import "errors"

// ErrNotFound indicates that no service with the requested name is in the catalog.
var ErrNotFound = errors.New("service not found")

// ErrEmptyCatalog indicates that an operation needs at least one service but the catalog is empty.
var ErrEmptyCatalog = errors.New("no services in catalog, run 'parse' first")

// ErrUserCancelled indicates that the user aborted an interactive prompt (e.g., by pressing Ctrl-C).
var ErrUserCancelled = errors.New("prompt cancelled by user")

// ErrBackupDisabled indicates an attempt to set a backup path on a service without backup enabled.
var ErrBackupDisabled = errors.New("backup is not enabled for this service")

// ErrInvalidDefinition indicates a service definition that violates a record invariant.
var ErrInvalidDefinition = errors.New("invalid service definition")
