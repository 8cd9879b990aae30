package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/svcshell/internal/core/ports"
	"github.com/AntonioJCosta/svcshell/internal/infra/logger"
)

const installGroupID = "install"

// RootDeps carries what the root command needs besides the configuration service.
type RootDeps struct {
	Logger            *logger.Logger
	HistoryFileFinder ports.HistoryFileFinder
}

func NewRootCommand(
	version string,
	configService ports.ServiceConfigurationService,
	deps RootDeps,
) *cobra.Command {
	if deps.Logger == nil {
		deps.Logger = logger.Discard()
	}

	rootCmd := &cobra.Command{
		Use:   "svcshell",
		Short: "svcshell is an interactive shell for editing service definitions.",
		Long: `svcshell keeps a catalog of service definitions in memory and lets you
parse, configure and print them. Run without a command to start the
interactive shell; the catalog lives as long as the shell does.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configService == nil {
				return fmt.Errorf("service configuration service not initialized for command %s", cmd.Name())
			}
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				deps.Logger.EnableDebug()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShellCmd(cmd, configService, deps)
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Write debug logs to stderr (or set SVCSHELL_DEBUG=1).")
	rootCmd.Flags().String("history-file", "", "File to keep shell history in (default $SVCSHELL_HISTFILE or ~/.svcshell_history).")

	addServiceCommands(rootCmd, configService)
	return rootCmd
}

// addServiceCommands registers the catalog commands on parent.
func addServiceCommands(parent *cobra.Command, configService ports.ServiceConfigurationService) {
	parent.AddGroup(&cobra.Group{ID: installGroupID, Title: "Install Commands:"})
	for _, cmd := range []*cobra.Command{
		NewParseCommand(configService),
		NewConfigureCommand(configService),
		NewPrintCommand(configService),
		NewListCommand(configService),
		NewClearCommand(configService),
	} {
		cmd.GroupID = installGroupID
		parent.AddCommand(cmd)
	}
}
