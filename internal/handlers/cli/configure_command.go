package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/svcshell/internal/core/domain/service"
	"github.com/AntonioJCosta/svcshell/internal/core/ports"
	"github.com/AntonioJCosta/svcshell/internal/handlers/ui"
)

// NewConfigureCommand creates the 'configure' subcommand.
func NewConfigureCommand(configService ports.ServiceConfigurationService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Configure service definitions.",
		Long: `Interactively pick a service, enter its backup path if it has backup enabled,
and choose which of its arguments to keep.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigureCmd(cmd, args, configService)
		},
	}
	return cmd
}

func runConfigureCmd(
	cmd *cobra.Command,
	_ []string,
	configService ports.ServiceConfigurationService,
) error {
	out := cmd.OutOrStdout()

	record, err := configService.Configure()
	if errors.Is(err, service.ErrUserCancelled) {
		fmt.Fprintln(out, ui.InfoColor("Configuration cancelled."))
		if record.Name != "" {
			// Steps finished before the cancellation were kept.
			fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("Changes already applied to %s were kept.", record.Name)))
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not configure service: %w", err)
	}

	fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("Updated %s.", ui.ServiceNameColor(record.Name))))
	fmt.Fprintf(out, "  arguments: %s\n", ui.ArgumentColor("["+strings.Join(record.Arguments, ", ")+"]"))
	if record.BackupPath != "" {
		fmt.Fprintf(out, "  backup path: %s\n", ui.BackupPathColor(record.BackupPath))
	}
	return nil
}
