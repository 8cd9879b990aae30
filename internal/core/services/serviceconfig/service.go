package serviceconfig

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/AntonioJCosta/svcshell/internal/core/domain/service"
	"github.com/AntonioJCosta/svcshell/internal/core/ports"
)

// Prompt messages shown during configure.
const (
	SelectServiceMessage = "Select service to edit:"
	BackupPathMessage    = "Enter backup path"
	KeepArgumentsMessage = "Select which arguments to keep:"
	printRecordSeparator = ";"
)

type configService struct {
	catalog  ports.ServiceCatalog
	source   ports.ServiceDefinitionSource
	prompter ports.Prompter
	logger   *slog.Logger
}

// NewService creates a new service configuration service.
// It panics if catalog, source or prompter are nil. A nil logger discards.
func NewService(
	catalog ports.ServiceCatalog,
	source ports.ServiceDefinitionSource,
	prompter ports.Prompter,
	logger *slog.Logger,
) ports.ServiceConfigurationService {
	if catalog == nil {
		panic("catalog cannot be nil")
	}
	if source == nil {
		panic("source cannot be nil")
	}
	if prompter == nil {
		panic("prompter cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &configService{
		catalog:  catalog,
		source:   source,
		prompter: prompter,
		logger:   logger,
	}
}

// Parse implements the ports.ServiceConfigurationService interface.
func (s *configService) Parse() (int, error) {
	return s.ParseFrom(s.source)
}

// ParseFrom loads every record from source and puts it into the catalog, overwriting same-named entries.
// Nothing is put when the source fails to load or any record is invalid.
func (s *configService) ParseFrom(source ports.ServiceDefinitionSource) (int, error) {
	if source == nil {
		return 0, fmt.Errorf("definition source is not configured")
	}

	records, err := source.Load()
	if err != nil {
		return 0, fmt.Errorf("failed to load service definitions from %s: %w", source.Describe(), err)
	}

	for i, record := range records {
		if err := record.Validate(); err != nil {
			return 0, fmt.Errorf("record %d from %s: %w", i+1, source.Describe(), err)
		}
	}

	for _, record := range records {
		s.catalog.Put(record)
	}
	s.logger.Debug("services.parsed", "source", source.Describe(), "count", len(records), "catalog_size", s.catalog.Len())
	return len(records), nil
}

// Configure implements the ports.ServiceConfigurationService interface.
// The steps run in order: select a service, collect its backup path when backup is enabled,
// then choose which arguments to keep. Each step is committed to the catalog as soon as it completes.
func (s *configService) Configure() (service.Record, error) {
	record, err := s.selectService()
	if err != nil {
		return service.Record{}, err
	}

	if err := s.selectBackupLocation(&record); err != nil {
		return record, err
	}

	if err := s.configureArguments(&record); err != nil {
		return record, err
	}
	return record, nil
}

// Print implements the ports.ServiceConfigurationService interface.
func (s *configService) Print() string {
	parts := make([]string, 0, s.catalog.Len())
	for record := range s.catalog.All() {
		parts = append(parts, record.String())
	}
	return strings.Join(parts, printRecordSeparator)
}

// List implements the ports.ServiceConfigurationService interface.
func (s *configService) List() []service.Record {
	return slices.Collect(s.catalog.All())
}

// Clear implements the ports.ServiceConfigurationService interface.
func (s *configService) Clear() int {
	removed := s.catalog.Len()
	s.catalog.Clear()
	s.logger.Debug("services.cleared", "removed", removed)
	return removed
}
