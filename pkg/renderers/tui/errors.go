package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNotChanged is returned when the user stops retrying before the
	// password was changed.
	ErrNotChanged = errors.New("tui: password not changed")
)
