package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/svcshell/internal/core/ports"
)

// NewPrintCommand creates the 'print' subcommand.
func NewPrintCommand(configService ports.ServiceConfigurationService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print service definitions.",
		Long:  `Prints every service in the catalog on one line, separated by ';'.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), configService.Print())
			return nil
		},
	}
	return cmd
}
