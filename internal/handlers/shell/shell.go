/*
Package shell runs the interactive read-eval-print loop that keeps the
process, and with it the in-memory catalog, alive between commands.
*/
package shell

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mattn/go-shellwords"

	"github.com/AntonioJCosta/svcshell/internal/handlers/ui"
)

// DefaultPrompt is printed at the start of each input line.
const DefaultPrompt = "svcshell> "

// exitCommands leave the loop without going through Dispatch.
var exitCommands = []string{"exit", "quit"}

// LineReader reads one line of user input at a time.
// It returns readline.ErrInterrupt on Ctrl-C and io.EOF on Ctrl-D.
type LineReader interface {
	Readline() (string, error)
	Close() error
}

// Config holds the configuration for a Shell.
type Config struct {
	// Prompt defaults to DefaultPrompt.
	Prompt string

	// HistoryFile persists input history across sessions. Empty keeps history in memory.
	HistoryFile string

	// Commands are offered for tab completion at the start of a line.
	Commands []string

	// Dispatch executes one tokenized command line. A returned error is printed and the loop continues.
	Dispatch func(args []string) error

	Out    io.Writer
	Err    io.Writer
	Logger *slog.Logger
}

// Shell is an interactive command loop.
type Shell struct {
	cfg    Config
	reader LineReader
}

// New creates a Shell reading from the terminal through readline.
func New(cfg Config) (*Shell, error) {
	cfg = withDefaults(cfg)

	items := make([]readline.PrefixCompleterInterface, 0, len(cfg.Commands)+len(exitCommands))
	for _, name := range slices.Concat(cfg.Commands, exitCommands) {
		items = append(items, readline.PcItem(name))
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		AutoComplete:    readline.NewPrefixCompleter(items...),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdout:          cfg.Out,
		Stderr:          cfg.Err,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing line editor: %w", err)
	}
	return NewWithReader(cfg, rl), nil
}

// NewWithReader creates a Shell reading from r, for scripted input.
func NewWithReader(cfg Config, r LineReader) *Shell {
	return &Shell{cfg: withDefaults(cfg), reader: r}
}

// Run reads and dispatches lines until exit, quit or end of input. It closes the reader on return.
func (s *Shell) Run() error {
	defer s.reader.Close()

	for {
		line, err := s.reader.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			// Ctrl-C discards the current line, like a regular shell.
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		args, err := shellwords.Parse(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(s.cfg.Err, ui.ErrorColor(fmt.Sprintf("Error: could not parse input: %v", err)))
			continue
		}
		if len(args) == 0 {
			continue
		}
		if slices.Contains(exitCommands, args[0]) {
			return nil
		}

		s.cfg.Logger.Debug("shell.dispatch", "command", args[0], "args", len(args)-1)
		if err := s.cfg.Dispatch(args); err != nil {
			fmt.Fprintln(s.cfg.Err, ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
		}
	}
}

func withDefaults(cfg Config) Config {
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultPrompt
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Err == nil {
		cfg.Err = os.Stderr
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Dispatch == nil {
		cfg.Dispatch = func(args []string) error {
			return fmt.Errorf("unknown command %q", args[0])
		}
	}
	return cfg
}
