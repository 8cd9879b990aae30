package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/svcshell/internal/core/ports"
	"github.com/AntonioJCosta/svcshell/internal/handlers/shell"
	"github.com/AntonioJCosta/svcshell/internal/handlers/ui"
	"github.com/AntonioJCosta/svcshell/internal/repositories/history"
)

// runShellCmd starts the interactive shell. Every line runs against the same configuration service.
func runShellCmd(
	cmd *cobra.Command,
	configService ports.ServiceConfigurationService,
	deps RootDeps,
) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	override, _ := cmd.Flags().GetString("history-file")
	histFile := resolveHistory(override, deps.HistoryFileFinder)

	sh, err := shell.New(newShellConfig(configService, deps, histFile.Path, out, errOut))
	if err != nil {
		return fmt.Errorf("could not start shell: %w", err)
	}

	fmt.Fprintln(out, ui.HeaderColor("svcshell interactive shell"))
	fmt.Fprintln(out, ui.InfoColor("Type 'help' for available commands, 'exit' or Ctrl-D to leave."))
	fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("(History: %s)", histFile.SourceIdentifier())))

	return sh.Run()
}

func resolveHistory(override string, finder ports.HistoryFileFinder) history.HistoryFile {
	if finder == nil {
		finder = history.NewDefaultHistoryFileFinder()
	}
	return history.ResolveHistoryFile(override, finder)
}

// newShellConfig wires the shell to a command set that is rebuilt for every line,
// so flag values never leak from one command into the next.
func newShellConfig(
	configService ports.ServiceConfigurationService,
	deps RootDeps,
	historyPath string,
	out, errOut io.Writer,
) shell.Config {
	var names []string
	for _, c := range newShellCommandSet(configService).Commands() {
		names = append(names, c.Name())
	}

	return shell.Config{
		Prompt:      ui.PromptColor(shell.DefaultPrompt),
		HistoryFile: historyPath,
		Commands:    names,
		Out:         out,
		Err:         errOut,
		Logger:      deps.Logger.Logger,
		Dispatch: func(args []string) error {
			set := newShellCommandSet(configService)
			set.SetArgs(args)
			set.SetOut(out)
			set.SetErr(errOut)
			return set.Execute()
		},
	}
}

// newShellCommandSet builds the commands available inside the shell.
func newShellCommandSet(configService ports.ServiceConfigurationService) *cobra.Command {
	set := &cobra.Command{
		Use:           "svcshell",
		Short:         "Available commands.",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	addServiceCommands(set, configService)
	set.InitDefaultHelpCmd()
	return set
}
