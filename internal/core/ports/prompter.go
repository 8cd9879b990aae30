package ports

/*
Prompter defines the interactive widgets the shell needs. Every method blocks
until the user confirms or cancels; a cancellation is reported as an error
wrapping service.ErrUserCancelled.
*/
type Prompter interface {
	// SelectOne presents options and returns the single one chosen.
	SelectOne(message string, options []string) (string, error)

	// SelectMany presents options with defaults pre-selected and returns the chosen subset.
	SelectMany(message string, options []string, defaults []string) ([]string, error)

	// InputPath asks for a filesystem path and returns it exactly as entered.
	InputPath(message string) (string, error)
}
