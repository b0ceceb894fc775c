package validation

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

// RequiredMessage is used when a required property has no
// x-required-message.
const RequiredMessage = "Campo obrigatório"

// Option configures a Validator.
type Option func(*config)

type config struct {
	document []byte
	schema   string
}

// WithDocument replaces the bundled OpenAPI document.
func WithDocument(raw []byte) Option {
	return func(cfg *config) {
		if len(raw) > 0 {
			cfg.document = raw
		}
	}
}

// WithSchema selects the component schema used for validation.
func WithSchema(name string) Option {
	return func(cfg *config) {
		if name = strings.TrimSpace(name); name != "" {
			cfg.schema = name
		}
	}
}

// Validator checks flat submissions against one object schema. It is safe
// for concurrent use.
type Validator struct {
	schema *openapi3.Schema
	order  map[string]int
}

// New loads and validates the schema document.
func New(ctx context.Context, options ...Option) (*Validator, error) {
	cfg := config{
		document: DefaultDocument(),
		schema:   CheckoutSchema,
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	schema, err := loadSchema(ctx, cfg.document, cfg.schema)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	order := make(map[string]int, len(names))
	for idx, name := range schema.Required {
		order[name] = idx
	}
	for _, name := range names {
		if _, ok := order[name]; !ok {
			order[name] = len(order)
		}
	}

	return &Validator{schema: schema, order: order}, nil
}

var (
	defaultOnce      sync.Once
	defaultValidator *Validator
	defaultErr       error
)

// Default returns the shared validator for the bundled checkout schema.
func Default() (*Validator, error) {
	defaultOnce.Do(func() {
		defaultValidator, defaultErr = New(context.Background())
	})
	return defaultValidator, defaultErr
}

// Validate checks values. Blank strings count as missing so required fields
// report their required message rather than a length failure.
func (v *Validator) Validate(ctx context.Context, values map[string]any) Result {
	result := Result{Valid: true}
	if v == nil || v.schema == nil {
		result.Valid = false
		result.Issues = []Issue{{Message: "validation: validator not configured"}}
		return result
	}
	if err := ctx.Err(); err != nil {
		result.Valid = false
		result.Issues = []Issue{{Message: err.Error()}}
		return result
	}

	payload := make(map[string]any, len(values))
	for key, value := range values {
		if s, ok := value.(string); ok {
			if strings.TrimSpace(s) == "" {
				continue
			}
			value = strings.TrimSpace(s)
		}
		payload[key] = value
	}

	err := v.schema.VisitJSON(payload, openapi3.MultiErrors())
	if err == nil {
		return result
	}

	result.Valid = false
	for _, schemaErr := range flatten(err) {
		result.Issues = append(result.Issues, v.issueFrom(schemaErr))
	}
	sort.SliceStable(result.Issues, func(i, j int) bool {
		return v.rank(result.Issues[i].Field) < v.rank(result.Issues[j].Field)
	})
	return result
}

func (v *Validator) rank(field string) int {
	if field == "" {
		return -1
	}
	if idx, ok := v.order[field]; ok {
		return idx
	}
	return len(v.order)
}

func (v *Validator) issueFrom(err error) Issue {
	schemaErr, ok := err.(*openapi3.SchemaError)
	if !ok {
		return Issue{Message: strings.TrimSpace(err.Error())}
	}

	pointer := schemaErr.JSONPointer()
	issue := Issue{Path: pointerString(pointer)}
	if len(pointer) > 0 {
		if _, known := v.schema.Properties[pointer[0]]; known {
			issue.Field = pointer[0]
		}
	}

	switch {
	case schemaErr.SchemaField == "required" && issue.Field != "":
		property := v.schema.Properties[issue.Field].Value
		issue.Message = firstNonEmpty(
			extensionString(property, "x-required-message"),
			RequiredMessage,
		)
	case issue.Field != "":
		issue.Message = firstNonEmpty(
			extensionString(schemaErr.Schema, "x-error-message"),
			extensionString(v.schema.Properties[issue.Field].Value, "x-error-message"),
			schemaErr.Reason,
		)
	default:
		issue.Message = firstNonEmpty(schemaErr.Reason, fmt.Sprint(err))
	}
	return issue
}

// flatten unwraps nested MultiErrors into individual errors.
func flatten(err error) []error {
	if multi, ok := err.(openapi3.MultiError); ok {
		out := make([]error, 0, len(multi))
		for _, inner := range multi {
			out = append(out, flatten(inner)...)
		}
		return out
	}
	return []error{err}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
