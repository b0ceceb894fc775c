package input

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/goliatone/go-storefront/pkg/mask"
)

// Input is a masked text input. All methods are safe for concurrent use; the
// display and unmasked values are always read and written as one pair.
type Input struct {
	cfg   Config
	mask  *mask.Mask
	field *Field

	// handle is the input's own reference to its field, merged with the
	// caller supplied one.
	handle FieldRef

	callback func(string)
	trigger  int

	mu      sync.Mutex
	value   mask.Value
	err     *FieldError
	focused bool
}

// New builds an input from cfg, assigns its field to ref (which may be nil)
// and seeds the value from cfg.InitialValue.
func New(cfg Config, ref Ref) (*Input, error) {
	return build(cfg, nil, 0, ref)
}

// NewWithCallback builds the callback variant. The seed counts as an update,
// so an initial value of TriggerLength runes fires the callback right away.
func NewWithCallback(cfg CallbackConfig, ref Ref) (*Input, error) {
	if cfg.Callback == nil {
		return nil, fmt.Errorf("input: callback is required for %q", cfg.Name)
	}
	if cfg.TriggerLength < 0 {
		return nil, fmt.Errorf("input: trigger length for %q must not be negative", cfg.Name)
	}
	return build(cfg.Config, cfg.Callback, cfg.TriggerLength, ref)
}

// MustNew mirrors New but panics on error.
func MustNew(cfg Config, ref Ref) *Input {
	in, err := New(cfg, ref)
	if err != nil {
		panic(err)
	}
	return in
}

func build(cfg Config, callback func(string), trigger int, ref Ref) (*Input, error) {
	cfg = normalizeConfig(cfg)

	compiled, err := mask.Compile(cfg.Mask)
	if err != nil {
		return nil, fmt.Errorf("input: compile mask for %q: %w", cfg.Name, err)
	}

	in := &Input{
		cfg:      cfg,
		mask:     compiled,
		callback: callback,
		trigger:  trigger,
		err:      cfg.Error,
	}
	in.field = &Field{id: controlID(cfg.Name), name: cfg.Name, owner: in}

	MergeRefs(&in.handle, ref).SetField(in.field)

	in.Change(cfg.InitialValue)
	return in, nil
}

// Change handles an edit event: raw is re-masked and both values are replaced
// together. The callback, when configured, runs after the update is visible.
func (in *Input) Change(raw string) mask.Value {
	next := in.mask.Apply(raw)

	in.mu.Lock()
	in.value = next
	in.mu.Unlock()

	in.notify(next)
	return next
}

func (in *Input) notify(v mask.Value) {
	if in.callback == nil {
		return
	}
	if utf8.RuneCountInString(v.Unmasked) == in.trigger {
		in.callback(v.Unmasked)
	}
}

// Value returns the current pair.
func (in *Input) Value() mask.Value {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.value
}

// Display returns the masked value.
func (in *Input) Display() string {
	return in.Value().Display
}

// Unmasked returns the value with the mask scaffolding removed.
func (in *Input) Unmasked() string {
	return in.Value().Unmasked
}

// Name returns the configured field name.
func (in *Input) Name() string {
	return in.cfg.Name
}

// Config returns a copy of the normalized configuration.
func (in *Input) Config() Config {
	return normalizeConfig(in.cfg)
}

// Mask exposes the compiled mask.
func (in *Input) Mask() *mask.Mask {
	return in.mask
}

// Field returns the underlying control, as seen through the input's own
// handle.
func (in *Input) Field() *Field {
	return in.handle.Current()
}

// Complete reports whether every placeholder of the mask is filled.
func (in *Input) Complete() bool {
	return in.mask.Complete(in.Value())
}

// SetError attaches or clears (nil) the validation error.
func (in *Input) SetError(err *FieldError) {
	var copied *FieldError
	if err != nil {
		e := *err
		copied = &e
	}
	in.mu.Lock()
	in.err = copied
	in.mu.Unlock()
}

// Error returns the attached error when it has a message.
func (in *Input) Error() *FieldError {
	in.mu.Lock()
	defer in.mu.Unlock()
	if !in.err.Present() {
		return nil
	}
	e := *in.err
	return &e
}

// Invalid reports whether an error is attached.
func (in *Input) Invalid() bool {
	return in.Error() != nil
}

// ErrorMessage returns the attached message untouched, or "".
func (in *Input) ErrorMessage() string {
	if err := in.Error(); err != nil {
		return err.Message
	}
	return ""
}

// ShowOptionalHint reports whether the optional hint is visible: only for
// optional inputs whose display value is empty.
func (in *Input) ShowOptionalHint() bool {
	return in.cfg.Optional && in.Value().Empty()
}

func (in *Input) setFocused(focused bool) {
	in.mu.Lock()
	in.focused = focused
	in.mu.Unlock()
}

func (in *Input) focusedState() bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.focused
}
