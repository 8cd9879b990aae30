package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/svcshell/internal/core/ports"
	"github.com/AntonioJCosta/svcshell/internal/handlers/ui"
)

// NewClearCommand creates the 'clear' subcommand.
func NewClearCommand(configService ports.ServiceConfigurationService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all service definitions from the catalog.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			removed := configService.Clear()
			fmt.Fprintln(cmd.OutOrStdout(), ui.InfoColor(fmt.Sprintf("Removed %d service definition(s).", removed)))
			return nil
		},
	}
	return cmd
}
