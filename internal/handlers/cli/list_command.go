package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/svcshell/internal/core/ports"
	"github.com/AntonioJCosta/svcshell/internal/handlers/ui"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(configService ports.ServiceConfigurationService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List service definitions as a table.",
		Long:  `Displays every service in the catalog with its arguments and backup settings.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd, args, configService)
		},
	}
	return cmd
}

// runListCmd contains the core logic for the 'list' command.
func runListCmd(
	cmd *cobra.Command,
	_ []string,
	configService ports.ServiceConfigurationService,
) error {
	out := cmd.OutOrStdout()
	records := configService.List()

	if len(records) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No services in the catalog. Run 'parse' to load service definitions."))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Services (%d):", len(records))))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Service", "Arguments", "Backup", "Backup Path"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	for _, r := range records {
		table.Append([]string{
			r.Name,
			strings.Join(r.Arguments, "\n"),
			strconv.FormatBool(r.BackupEnabled),
			r.BackupPath,
		})
	}
	table.Render()
	return nil
}
