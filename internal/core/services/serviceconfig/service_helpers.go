package serviceconfig

import (
	"fmt"
	"slices"

	"github.com/AntonioJCosta/svcshell/internal/core/domain/service"
)

func (s *configService) selectService() (service.Record, error) {
	names := slices.Collect(s.catalog.Names())
	if len(names) == 0 {
		return service.Record{}, service.ErrEmptyCatalog
	}

	name, err := s.prompter.SelectOne(SelectServiceMessage, names)
	if err != nil {
		s.logger.Debug("configure.select_failed", "error", err)
		return service.Record{}, fmt.Errorf("selecting service: %w", err)
	}

	record, err := s.catalog.Get(name)
	if err != nil {
		return service.Record{}, fmt.Errorf("resolving selected service: %w", err)
	}
	s.logger.Debug("configure.selected", "service", name, "backup_enabled", record.BackupEnabled)
	return record, nil
}

// selectBackupLocation prompts for a path only when the record has backup enabled.
func (s *configService) selectBackupLocation(record *service.Record) error {
	if !record.BackupEnabled {
		return nil
	}

	path, err := s.prompter.InputPath(BackupPathMessage)
	if err != nil {
		s.logger.Debug("configure.backup_path_failed", "service", record.Name, "error", err)
		return fmt.Errorf("collecting backup path for '%s': %w", record.Name, err)
	}
	if err := record.SetBackupPath(path); err != nil {
		return err
	}

	s.catalog.Put(*record)
	s.logger.Debug("configure.backup_path_set", "service", record.Name, "path", path)
	return nil
}

// configureArguments replaces the record's arguments with the subset the user keeps.
// Every argument starts selected, so confirming without changes is a no-op.
func (s *configService) configureArguments(record *service.Record) error {
	kept, err := s.prompter.SelectMany(KeepArgumentsMessage, record.Arguments, record.Arguments)
	if err != nil {
		s.logger.Debug("configure.arguments_failed", "service", record.Name, "error", err)
		return fmt.Errorf("selecting arguments for '%s': %w", record.Name, err)
	}

	before := len(record.Arguments)
	record.ReplaceArguments(kept)
	s.catalog.Put(*record)
	s.logger.Debug("configure.arguments_set", "service", record.Name, "kept", len(kept), "dropped", before-len(kept))
	return nil
}
