package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/AntonioJCosta/svcshell/internal/adapters/demosource"
	"github.com/AntonioJCosta/svcshell/internal/core/domain/service"
	"github.com/AntonioJCosta/svcshell/internal/core/ports"
	"github.com/AntonioJCosta/svcshell/internal/core/services/serviceconfig"
	"github.com/AntonioJCosta/svcshell/internal/core/testutil"
	"github.com/AntonioJCosta/svcshell/internal/infra/logger"
	"github.com/AntonioJCosta/svcshell/internal/repositories/catalog"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func newTestService(p ports.Prompter) ports.ServiceConfigurationService {
	if p == nil {
		p = &testutil.MockPrompter{}
	}
	return serviceconfig.NewService(catalog.NewMemoryCatalog(), demosource.NewDemoSource(), p, nil)
}

// execute runs args against cmd and returns stdout.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseCommand(t *testing.T) {
	svc := newTestService(nil)

	out, err := execute(t, NewParseCommand(svc))
	if err != nil {
		t.Fatalf("parse error = %v", err)
	}
	if !strings.Contains(out, "Parsed 2 service definition(s).") {
		t.Errorf("parse output = %q", out)
	}
	if got := len(svc.List()); got != 2 {
		t.Errorf("catalog size after parse = %d, want 2", got)
	}
}

func TestParseCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "services.yaml")
	content := "- name: billing\n  arguments: [profile=prod]\n  backup: true\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write definitions: %v", err)
	}
	svc := newTestService(nil)

	out, err := execute(t, NewParseCommand(svc), "--file", path)
	if err != nil {
		t.Fatalf("parse --file error = %v", err)
	}
	if !strings.Contains(out, "Parsed 1 service definition(s).") {
		t.Errorf("parse output = %q", out)
	}
	if got := svc.Print(); got != "Service(name=billing, arguments=[profile=prod], backupEnabled=true)" {
		t.Errorf("Print() after parse --file = %q", got)
	}
}

func TestParseCommand_MissingFile(t *testing.T) {
	svc := newTestService(nil)

	_, err := execute(t, NewParseCommand(svc), "-f", filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "could not parse service definitions") {
		t.Errorf("parse of missing file error = %v", err)
	}
	if len(svc.List()) != 0 {
		t.Errorf("failed parse changed the catalog")
	}
}

func TestPrintCommand(t *testing.T) {
	tests := []struct {
		name  string
		parse bool
		want  string
	}{
		{name: "empty catalog prints an empty line", parse: false, want: "\n"},
		{
			name:  "parsed catalog",
			parse: true,
			want: "Service(name=service_a, arguments=[logging.level=DEBUG, profile=int], backupEnabled=true);" +
				"Service(name=service_b, arguments=[logging.level=TRACE, profile=int], backupEnabled=false)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(nil)
			if tt.parse {
				if _, err := svc.Parse(); err != nil {
					t.Fatalf("Parse() error = %v", err)
				}
			}
			out, err := execute(t, NewPrintCommand(svc))
			if err != nil {
				t.Fatalf("print error = %v", err)
			}
			if out != tt.want {
				t.Errorf("print output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestConfigureCommand(t *testing.T) {
	tests := []struct {
		name       string
		parse      bool
		prompter   *testutil.MockPrompter
		wantErrIs  error
		wantOutput []string
	}{
		{
			name:      "empty catalog is reported",
			parse:     false,
			prompter:  &testutil.MockPrompter{},
			wantErrIs: service.ErrEmptyCatalog,
		},
		{
			name:  "successful edit is summarised",
			parse: true,
			prompter: &testutil.MockPrompter{
				SelectOneFunc: func(string, []string) (string, error) { return "service_a", nil },
				InputPathFunc: func(string) (string, error) { return "/tmp/backup", nil },
				SelectManyFunc: func(string, []string, []string) ([]string, error) {
					return []string{"profile=int"}, nil
				},
			},
			wantOutput: []string{"Updated service_a.", "arguments: [profile=int]", "backup path: /tmp/backup"},
		},
		{
			name:  "cancellation is not an error",
			parse: true,
			prompter: &testutil.MockPrompter{
				SelectOneFunc: func(string, []string) (string, error) { return "service_a", nil },
				InputPathFunc: func(string) (string, error) { return "/tmp/backup", nil },
				SelectManyFunc: func(string, []string, []string) ([]string, error) {
					return nil, service.ErrUserCancelled
				},
			},
			wantOutput: []string{"Configuration cancelled.", "Changes already applied to service_a were kept."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(tt.prompter)
			if tt.parse {
				if _, err := svc.Parse(); err != nil {
					t.Fatalf("Parse() error = %v", err)
				}
			}

			out, err := execute(t, NewConfigureCommand(svc))
			if tt.wantErrIs != nil {
				if !errors.Is(err, tt.wantErrIs) {
					t.Errorf("configure error = %v, want %v", err, tt.wantErrIs)
				}
				return
			}
			if err != nil {
				t.Fatalf("configure unexpected error = %v", err)
			}
			for _, want := range tt.wantOutput {
				if !strings.Contains(out, want) {
					t.Errorf("configure output %q does not contain %q", out, want)
				}
			}
		})
	}
}

func TestListCommand(t *testing.T) {
	svc := newTestService(nil)

	out, err := execute(t, NewListCommand(svc))
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	if !strings.Contains(out, "No services in the catalog") {
		t.Errorf("list output on empty catalog = %q", out)
	}

	if _, err := svc.Parse(); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	out, err = execute(t, NewListCommand(svc))
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	for _, want := range []string{"Services (2):", "SERVICE", "service_a", "service_b", "logging.level=TRACE"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output %q does not contain %q", out, want)
		}
	}
}

func TestClearCommand(t *testing.T) {
	svc := newTestService(nil)
	if _, err := svc.Parse(); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	out, err := execute(t, NewClearCommand(svc))
	if err != nil {
		t.Fatalf("clear error = %v", err)
	}
	if !strings.Contains(out, "Removed 2 service definition(s).") {
		t.Errorf("clear output = %q", out)
	}
	if svc.Print() != "" {
		t.Errorf("catalog not empty after clear")
	}
}

func TestRootCommand_RegistersInstallCommands(t *testing.T) {
	root := NewRootCommand("test", newTestService(nil), RootDeps{Logger: logger.Discard()})

	var names []string
	for _, c := range root.Commands() {
		if c.GroupID == installGroupID {
			names = append(names, c.Name())
		}
	}
	slices.Sort(names)
	want := []string{"clear", "configure", "list", "parse", "print"}
	if !slices.Equal(names, want) {
		t.Errorf("install commands = %v, want %v", names, want)
	}
}

func TestRootCommand_NilService(t *testing.T) {
	root := NewRootCommand("test", nil, RootDeps{})

	_, err := execute(t, root, "print")
	if err == nil || !strings.Contains(err.Error(), "not initialized") {
		t.Errorf("expected initialization error, got %v", err)
	}
}

func TestRootCommand_DebugFlag(t *testing.T) {
	log := logger.Discard()
	root := NewRootCommand("test", newTestService(nil), RootDeps{Logger: log})

	if _, err := execute(t, root, "--debug", "print"); err != nil {
		t.Fatalf("print --debug error = %v", err)
	}
	if !log.DebugEnabled() {
		t.Error("--debug did not enable debug logging")
	}
}

// The catalog must survive between lines of the same shell session.
func TestShellDispatch_KeepsStateBetweenLines(t *testing.T) {
	svc := newTestService(&testutil.MockPrompter{
		SelectOneFunc: func(string, []string) (string, error) { return "service_b", nil },
		SelectManyFunc: func(string, []string, []string) ([]string, error) {
			return []string{"profile=int"}, nil
		},
	})
	var out, errOut bytes.Buffer
	cfg := newShellConfig(svc, RootDeps{Logger: logger.Discard()}, "", &out, &errOut)

	for _, line := range [][]string{{"parse"}, {"configure"}, {"print"}} {
		if err := cfg.Dispatch(line); err != nil {
			t.Fatalf("dispatch %v error = %v", line, err)
		}
	}

	want := "Service(name=service_b, arguments=[profile=int], backupEnabled=false)"
	if !strings.Contains(out.String(), want) {
		t.Errorf("shell output %q does not contain %q", out.String(), want)
	}
}

func TestShellDispatch_FlagsDoNotLeak(t *testing.T) {
	svc := newTestService(nil)
	var out, errOut bytes.Buffer
	cfg := newShellConfig(svc, RootDeps{Logger: logger.Discard()}, "", &out, &errOut)

	if err := cfg.Dispatch([]string{"parse", "--file", filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Fatal("expected error for missing definitions file")
	}
	// A fresh command set means this parse uses the demo source again.
	if err := cfg.Dispatch([]string{"parse"}); err != nil {
		t.Fatalf("parse after failed --file error = %v", err)
	}
	if len(svc.List()) != 2 {
		t.Errorf("catalog size = %d, want 2", len(svc.List()))
	}
}

func TestShellDispatch_UnknownCommand(t *testing.T) {
	var out, errOut bytes.Buffer
	cfg := newShellConfig(newTestService(nil), RootDeps{Logger: logger.Discard()}, "", &out, &errOut)

	if err := cfg.Dispatch([]string{"bogus"}); err == nil {
		t.Error("expected error for unknown command")
	}
}

func TestShellConfig_CompletesCommandNames(t *testing.T) {
	cfg := newShellConfig(newTestService(nil), RootDeps{Logger: logger.Discard()}, "", &bytes.Buffer{}, &bytes.Buffer{})

	for _, want := range []string{"parse", "configure", "print", "list", "clear", "help"} {
		if !slices.Contains(cfg.Commands, want) {
			t.Errorf("completion candidates %v missing %q", cfg.Commands, want)
		}
	}
}

func TestParseParseCommandFlags(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name string
		file string
		want string
	}{
		{name: "no file", file: "", want: ""},
		{name: "absolute path kept", file: "/etc/services.yaml", want: "/etc/services.yaml"},
		{name: "home prefix expanded", file: "~/defs/services.yaml", want: filepath.Join(home, "defs", "services.yaml")},
		{name: "surrounding space trimmed", file: "  defs.yaml ", want: "defs.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewParseCommand(newTestService(nil))
			if err := cmd.Flags().Set("file", tt.file); err != nil {
				t.Fatalf("Failed to set flag: %v", err)
			}
			if got := parseParseCommandFlags(cmd); got.file != tt.want {
				t.Errorf("parseParseCommandFlags() file = %q, want %q", got.file, tt.want)
			}
		})
	}
}
