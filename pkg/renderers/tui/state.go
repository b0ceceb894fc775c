package tui

import "strings"

// State tracks collected values and server-provided errors keyed by input
// name. Checkout inputs are flat, so names are used as-is.
type State struct {
	values map[string]any
	errors map[string][]string
}

// NewState seeds the state with errors from a previous submission.
func NewState(errs map[string][]string) *State {
	return &State{
		values: make(map[string]any),
		errors: cloneErrors(errs),
	}
}

// Values returns the current value map (mutable).
func (s *State) Values() map[string]any {
	if s == nil {
		return nil
	}
	return s.values
}

// ErrorsFor returns the errors attached to name.
func (s *State) ErrorsFor(name string) []string {
	if s == nil || len(s.errors) == 0 {
		return nil
	}
	return s.errors[name]
}

// SetValue records the value collected for name.
func (s *State) SetValue(name string, value any) {
	if s == nil {
		return
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	s.values[name] = value
}

func cloneErrors(src map[string][]string) map[string][]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string][]string, len(src))
	for key, messages := range src {
		out[key] = append([]string(nil), messages...)
	}
	return out
}
