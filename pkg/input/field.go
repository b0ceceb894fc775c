package input

import "strings"

// Field is the control an Input renders. Owners holding it through a Ref can
// read it, move focus to it, or write to it; writes go through the owning
// input's mask like any other edit.
type Field struct {
	id    string
	name  string
	owner *Input
}

// ID is the control id used in markup.
func (f *Field) ID() string {
	if f == nil {
		return ""
	}
	return f.id
}

// Name is the form name of the control.
func (f *Field) Name() string {
	if f == nil {
		return ""
	}
	return f.name
}

// Value returns the current display value.
func (f *Field) Value() string {
	if f == nil || f.owner == nil {
		return ""
	}
	return f.owner.Display()
}

// SetValue behaves like a user edit.
func (f *Field) SetValue(raw string) {
	if f == nil || f.owner == nil {
		return
	}
	f.owner.Change(raw)
}

// Focus marks the control as focused; renderers emit it as autofocus.
func (f *Field) Focus() {
	if f == nil || f.owner == nil {
		return
	}
	f.owner.setFocused(true)
}

// Blur drops focus.
func (f *Field) Blur() {
	if f == nil || f.owner == nil {
		return
	}
	f.owner.setFocused(false)
}

// Focused reports whether Focus was called more recently than Blur.
func (f *Field) Focused() bool {
	if f == nil || f.owner == nil {
		return false
	}
	return f.owner.focusedState()
}

func controlID(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	return "sf-" + trimmed
}
