package navkbd

import "errors"

var (
	ErrCancelled = errors.New("operation cancelled by user")
)

// PromptResult is the outcome of a confirmed keyboard prompt.
type PromptResult struct {
	Text string
	// Mode is the keyboard mode code at confirmation, so callers can
	// reopen the keyboard where the user left it.
	Mode int
}
