package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/svcshell/internal/adapters/yamlsource"
	"github.com/AntonioJCosta/svcshell/internal/core/ports"
	"github.com/AntonioJCosta/svcshell/internal/handlers/ui"
)

// NewParseCommand creates the 'parse' subcommand.
func NewParseCommand(configService ports.ServiceConfigurationService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse service definitions.",
		Long: `Loads service definitions into the catalog, replacing entries with the same name.
Without --file the built-in demo definitions are used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParseCmd(cmd, args, configService)
		},
	}

	cmd.Flags().StringP("file", "f", "", "YAML file, or directory of YAML files, to read service definitions from.")

	return cmd
}

func runParseCmd(
	cmd *cobra.Command,
	_ []string,
	configService ports.ServiceConfigurationService,
) error {
	flags := parseParseCommandFlags(cmd)

	var (
		count int
		err   error
	)
	if flags.file == "" {
		count, err = configService.Parse()
	} else {
		var source ports.ServiceDefinitionSource
		source, err = yamlsource.NewYAMLSource(flags.file)
		if err != nil {
			return err
		}
		count, err = configService.ParseFrom(source)
	}
	if err != nil {
		return fmt.Errorf("could not parse service definitions: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessColor(fmt.Sprintf("Parsed %d service definition(s).", count)))
	return nil
}

type parseCommandFlags struct {
	file string
}

// parseParseCommandFlags reads the parse flags. Inside the shell nothing expands
// "~", so a leading "~/" is resolved against the home directory here.
func parseParseCommandFlags(cmd *cobra.Command) parseCommandFlags {
	file, _ := cmd.Flags().GetString("file")
	file = strings.TrimSpace(file)

	if rest, ok := strings.CutPrefix(file, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			file = filepath.Join(home, rest)
		}
	}
	return parseCommandFlags{file: file}
}
