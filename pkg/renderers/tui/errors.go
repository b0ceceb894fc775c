package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C) or declined
	// the final confirmation.
	ErrAborted = errors.New("tui: aborted")
	// ErrIncomplete is returned by prompt validators when a masked answer
	// does not fill its pattern.
	ErrIncomplete = errors.New("tui: value does not fill the mask")
	// ErrRequired is returned by prompt validators for blank required inputs.
	ErrRequired = errors.New("tui: value is required")
)
