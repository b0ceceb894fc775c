package validation

import (
	"context"
	"embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed schemas/checkout.yaml
var embeddedSchemas embed.FS

const (
	// CheckoutSchema names the request schema inside the bundled document.
	CheckoutSchema = "CheckoutRequest"

	checkoutDocument = "schemas/checkout.yaml"
)

// DefaultDocument returns the bundled checkout OpenAPI document.
func DefaultDocument() []byte {
	data, err := embeddedSchemas.ReadFile(checkoutDocument)
	if err != nil {
		return nil
	}
	return data
}

// loadSchema parses raw as an OpenAPI document, validates it and resolves the
// named component schema.
func loadSchema(ctx context.Context, raw []byte, name string) (*openapi3.Schema, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("validation: empty schema document")
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("validation: load document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validation: invalid document: %w", err)
	}

	if doc.Components == nil {
		return nil, fmt.Errorf("validation: document has no components")
	}
	ref, ok := doc.Components.Schemas[name]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("validation: schema %q not found", name)
	}
	return ref.Value, nil
}

func extensionString(schema *openapi3.Schema, key string) string {
	if schema == nil || len(schema.Extensions) == 0 {
		return ""
	}
	value, ok := schema.Extensions[key].(string)
	if !ok {
		return ""
	}
	return value
}
