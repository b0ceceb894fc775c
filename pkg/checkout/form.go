package checkout

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/goliatone/go-storefront/pkg/input"
	"github.com/goliatone/go-storefront/pkg/render"
	"github.com/goliatone/go-storefront/pkg/validation"
)

// NoticeConfirmed is shown after a submission passes validation.
const NoticeConfirmed = "Uhu! Pedido confirmado. Agora é só aguardar que logo o café chegará até você."

// FormID is the id attribute of the rendered checkout form.
const FormID = "checkout"

// Option configures a Form.
type Option func(*config)

type config struct {
	directory Directory
	validator *validation.Validator
	values    map[string]string
	action    string
	refs      map[string]input.Ref
}

// WithDirectory replaces the bundled postal directory.
func WithDirectory(directory Directory) Option {
	return func(cfg *config) {
		if directory != nil {
			cfg.directory = directory
		}
	}
}

// WithValidator replaces the bundled checkout validator.
func WithValidator(validator *validation.Validator) Option {
	return func(cfg *config) {
		if validator != nil {
			cfg.validator = validator
		}
	}
}

// WithValues seeds inputs with raw values. A complete CEP seed triggers the
// directory lookup before the other seeds apply.
func WithValues(values map[string]string) Option {
	return func(cfg *config) {
		if cfg.values == nil {
			cfg.values = make(map[string]string, len(values))
		}
		for key, value := range values {
			cfg.values[key] = value
		}
	}
}

// WithAction sets the form action URL.
func WithAction(action string) Option {
	return func(cfg *config) {
		cfg.action = strings.TrimSpace(action)
	}
}

// WithRef hands the underlying field of the named input to ref.
func WithRef(name string, ref input.Ref) Option {
	return func(cfg *config) {
		if ref == nil {
			return
		}
		if cfg.refs == nil {
			cfg.refs = make(map[string]input.Ref)
		}
		cfg.refs[name] = ref
	}
}

// Result is the outcome of a submission.
type Result struct {
	Valid bool
	// Values holds the unmasked value of every input.
	Values map[string]string
	// Errors holds validation messages keyed by input name.
	Errors map[string][]string
	// FormErrors holds messages that belong to no single input.
	FormErrors []string
}

// Form owns the checkout inputs. Inputs synchronise themselves; the form
// lock only guards form-level state and is never held while an input changes.
type Form struct {
	inputs    []*input.Input
	byName    map[string]*input.Input
	directory Directory
	validator *validation.Validator
	action    string

	mu         sync.Mutex
	prefilled  map[string]bool
	formErrors []string
	notice     string
}

// New builds the checkout form.
func New(options ...Option) (*Form, error) {
	cfg := config{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.directory == nil {
		cfg.directory = DefaultDirectory()
	}
	if cfg.validator == nil {
		validator, err := validation.Default()
		if err != nil {
			return nil, fmt.Errorf("checkout: %w", err)
		}
		cfg.validator = validator
	}

	f := &Form{
		byName:    make(map[string]*input.Input),
		directory: cfg.directory,
		validator: cfg.validator,
		action:    cfg.action,
		prefilled: make(map[string]bool),
	}

	configs := fieldConfigs()
	for _, name := range FieldNames() {
		if name == FieldCEP {
			continue
		}
		fieldCfg := configs[name]
		fieldCfg.InitialValue = cfg.values[name]
		in, err := input.New(fieldCfg, cfg.refs[name])
		if err != nil {
			return nil, fmt.Errorf("checkout: %w", err)
		}
		f.byName[name] = in
	}

	// The CEP input is built last so its seed can prefill the others.
	cepCfg := configs[FieldCEP]
	cep, err := input.NewWithCallback(input.CallbackConfig{
		Config:        cepCfg,
		Callback:      f.lookup,
		TriggerLength: CEPLength,
	}, cfg.refs[FieldCEP])
	if err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}
	f.byName[FieldCEP] = cep
	if raw, ok := cfg.values[FieldCEP]; ok {
		cep.Change(raw)
		f.applyExcept(cfg.values, FieldCEP)
	}

	for _, name := range FieldNames() {
		f.inputs = append(f.inputs, f.byName[name])
	}
	return f, nil
}

// Inputs returns the inputs in render order.
func (f *Form) Inputs() []*input.Input {
	return append([]*input.Input(nil), f.inputs...)
}

// Input returns the named input.
func (f *Form) Input(name string) (*input.Input, bool) {
	in, ok := f.byName[name]
	return in, ok
}

// Values returns the unmasked value of every input.
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.byName))
	for name, in := range f.byName {
		out[name] = in.Unmasked()
	}
	return out
}

// Apply feeds raw values through the inputs. The CEP goes first so a lookup
// can prefill the address; blank submissions then leave prefilled inputs
// alone. Names without an input are ignored.
func (f *Form) Apply(values map[string]string) {
	if raw, ok := values[FieldCEP]; ok {
		f.byName[FieldCEP].Change(raw)
	}
	f.applyExcept(values, FieldCEP)
}

func (f *Form) applyExcept(values map[string]string, skip string) {
	for _, name := range FieldNames() {
		if name == skip {
			continue
		}
		raw, ok := values[name]
		if !ok {
			continue
		}
		in := f.byName[name]
		if strings.TrimSpace(raw) == "" && f.isPrefilled(name) && in.Display() != "" {
			continue
		}
		in.Change(raw)
		f.setPrefilled(name, false)
	}
}

// Submit applies values, validates the result and attaches the messages to
// the inputs. Validation failures are reported in Result, not as an error.
func (f *Form) Submit(ctx context.Context, values map[string]string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	f.Apply(values)

	current := f.Values()
	payload := make(map[string]any, len(current))
	for name, value := range current {
		payload[name] = value
	}

	outcome := f.validator.Validate(ctx, payload)
	mapping := render.MapErrorPayload(FieldNames(), outcome.Errors())

	fieldErrors := mapping.FieldErrors()
	for name, in := range f.byName {
		in.SetError(fieldErrors[name])
	}

	notice := ""
	if outcome.Valid {
		notice = NoticeConfirmed
	}

	f.mu.Lock()
	f.formErrors = mapping.Form
	f.notice = notice
	f.mu.Unlock()

	return Result{
		Valid:      outcome.Valid,
		Values:     current,
		Errors:     mapping.Fields,
		FormErrors: mapping.Form,
	}, nil
}

// Render describes the form for a renderer.
func (f *Form) Render() *render.Form {
	f.mu.Lock()
	formErrors := append([]string(nil), f.formErrors...)
	notice := f.notice
	f.mu.Unlock()

	return &render.Form{
		ID:     FormID,
		Action: f.action,
		Method: "post",
		Inputs: f.Inputs(),
		Errors: formErrors,
		Notice: notice,
	}
}

// lookup runs whenever the CEP reaches full length.
func (f *Form) lookup(cep string) {
	addr, ok := f.directory.Lookup(cep)
	if !ok {
		return
	}
	prefill := []struct {
		name  string
		value string
	}{
		{FieldStreet, addr.Street},
		{FieldDistrict, addr.District},
		{FieldCity, addr.City},
		{FieldUF, addr.UF},
	}
	for _, item := range prefill {
		if item.value == "" {
			continue
		}
		in, ok := f.byName[item.name]
		if !ok {
			continue
		}
		in.Change(item.value)
		f.setPrefilled(item.name, true)
	}
}

func (f *Form) isPrefilled(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.prefilled[name]
}

func (f *Form) setPrefilled(name string, value bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if value {
		f.prefilled[name] = true
		return
	}
	delete(f.prefilled, name)
}
