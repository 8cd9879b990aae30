package yamlsource

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/AntonioJCosta/svcshell/internal/core/domain/service"
	"github.com/AntonioJCosta/svcshell/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// definition is the on-disk shape of a single service.
type definition struct {
	Name       string   `yaml:"name"`
	Arguments  []string `yaml:"arguments"`
	Backup     bool     `yaml:"backup"`
	BackupPath string   `yaml:"backup_path"`
}

// YAMLSource implements the ServiceDefinitionSource interface
// by reading service definitions from a YAML file or a directory of them.
type YAMLSource struct {
	path string
}

// NewYAMLSource creates a new YAMLSource.
// path is a YAML file holding a list of definitions, or a directory whose *.yaml and *.yml files
// each hold such a list.
func NewYAMLSource(path string) (ports.ServiceDefinitionSource, error) {
	if path == "" {
		return nil, fmt.Errorf("YAML definitions path cannot be empty")
	}
	return &YAMLSource{path: path}, nil
}

// Describe returns the configured file or directory path.
func (s *YAMLSource) Describe() string {
	return s.path
}

// Load reads every definition under the configured path.
// Files in a directory are read in lexical order, so a later file wins on duplicate names.
func (s *YAMLSource) Load() ([]service.Record, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to access service definitions %s: %w", s.path, err)
	}

	files := []string{s.path}
	if info.IsDir() {
		files, err = definitionFiles(s.path)
		if err != nil {
			return nil, err
		}
	}

	records := []service.Record{}
	for _, file := range files {
		loaded, err := loadFile(file)
		if err != nil {
			return nil, err
		}
		records = append(records, loaded...)
	}
	return records, nil
}

func definitionFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read service definitions directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".yaml", ".yml":
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	slices.Sort(files)
	return files, nil
}

func loadFile(path string) ([]service.Record, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read service definitions file %s: %w", path, err)
	}
	if len(content) == 0 {
		return []service.Record{}, nil
	}

	var defs []definition
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(&defs); err != nil {
		// A file with only comments or "---" decodes to EOF.
		if errors.Is(err, io.EOF) {
			return []service.Record{}, nil
		}
		return nil, fmt.Errorf("failed to unmarshal service definitions from %s: %w", path, err)
	}

	records := make([]service.Record, 0, len(defs))
	for i, def := range defs {
		record := service.New(def.Name, def.Arguments, def.Backup)
		if record.Arguments == nil {
			record.Arguments = []string{}
		}
		record.BackupPath = def.BackupPath
		if err := record.Validate(); err != nil {
			return nil, fmt.Errorf("%s: entry %d: %w", path, i+1, err)
		}
		records = append(records, record)
	}
	return records, nil
}
