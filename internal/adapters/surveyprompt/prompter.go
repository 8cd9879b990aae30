/*
Package surveyprompt implements the shell's interactive widgets on top of
survey, rendering them on the terminal.
*/
package surveyprompt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/AntonioJCosta/svcshell/internal/core/domain/service"
	"github.com/AntonioJCosta/svcshell/internal/core/ports"
)

// maxPathSuggestions caps how many completions tab shows for a partial path.
const maxPathSuggestions = 20

// askFunc matches survey.AskOne.
type askFunc func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error

// SurveyPrompter implements the ports.Prompter interface.
type SurveyPrompter struct {
	in  terminal.FileReader
	out terminal.FileWriter
	err io.Writer
	ask askFunc
}

// NewSurveyPrompter creates a prompter bound to the process's standard streams.
func NewSurveyPrompter() ports.Prompter {
	return NewSurveyPrompterWithStdio(os.Stdin, os.Stdout, os.Stderr)
}

// NewSurveyPrompterWithStdio creates a prompter bound to the given terminal streams.
func NewSurveyPrompterWithStdio(in terminal.FileReader, out terminal.FileWriter, errOut io.Writer) ports.Prompter {
	return &SurveyPrompter{in: in, out: out, err: errOut, ask: survey.AskOne}
}

// SelectOne implements the ports.Prompter interface.
func (p *SurveyPrompter) SelectOne(message string, options []string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("nothing to select for %q", message)
	}

	var answer string
	prompt := &survey.Select{
		Message: message,
		Options: options,
	}
	if err := p.ask(prompt, &answer, p.stdio()); err != nil {
		return "", translateError(err)
	}
	return answer, nil
}

// SelectMany implements the ports.Prompter interface.
// The answer keeps the order of options, not the order the user toggled them in.
func (p *SurveyPrompter) SelectMany(message string, options []string, defaults []string) ([]string, error) {
	if len(options) == 0 {
		return []string{}, nil
	}

	answer := []string{}
	prompt := &survey.MultiSelect{
		Message: message,
		Options: options,
		Default: defaults,
	}
	if err := p.ask(prompt, &answer, p.stdio()); err != nil {
		return nil, translateError(err)
	}
	return answer, nil
}

// InputPath implements the ports.Prompter interface. Tab completes against the filesystem.
// The answer is returned as typed.
func (p *SurveyPrompter) InputPath(message string) (string, error) {
	var answer string
	prompt := &survey.Input{
		Message: message,
		Suggest: suggestPaths,
	}
	if err := p.ask(prompt, &answer, p.stdio(), survey.WithValidator(survey.Required)); err != nil {
		return "", translateError(err)
	}
	return answer, nil
}

func (p *SurveyPrompter) stdio() survey.AskOpt {
	return survey.WithStdio(p.in, p.out, p.err)
}

// translateError maps survey's interrupt to the domain cancellation error.
func translateError(err error) error {
	if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", service.ErrUserCancelled, err)
	}
	return fmt.Errorf("prompt failed: %w", err)
}

// suggestPaths lists filesystem entries starting with toComplete. Directories get a trailing separator.
func suggestPaths(toComplete string) []string {
	matches, err := filepath.Glob(toComplete + "*")
	if err != nil {
		return nil
	}

	suggestions := make([]string, 0, min(len(matches), maxPathSuggestions))
	for _, match := range matches {
		if len(suggestions) == maxPathSuggestions {
			break
		}
		if info, err := os.Stat(match); err == nil && info.IsDir() {
			match += string(filepath.Separator)
		}
		suggestions = append(suggestions, match)
	}
	return suggestions
}
