package components

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-storefront/pkg/catalog"
	"github.com/goliatone/go-storefront/pkg/input"
)

const (
	templatePrefix = "templates/components/"
)

// NewDefaultRegistry constructs a registry pre-populated with the built-in
// components used by the vanilla renderer.
func NewDefaultRegistry() *Registry {
	registry := New()

	registry.MustRegister(NameMaskedInput, Descriptor{
		Renderer: maskedInputRenderer,
		Scripts: []Script{
			{Src: MaskRuntimeScript, Defer: true},
		},
	})
	registry.MustRegister(NameProductCard, Descriptor{
		Renderer: productCardRenderer,
	})

	return registry
}

func maskedInputRenderer(buf *bytes.Buffer, payload any, data ComponentData) error {
	view, err := coerceInputView(payload)
	if err != nil {
		return err
	}
	if view.OptionalHint != "" {
		if label := strings.TrimSpace(data.Labels["optional"]); label != "" {
			view.OptionalHint = label
		}
	}
	return renderTemplate(buf, templatePrefix+"masked_input.tmpl", view, data)
}

type cardView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	PriceCents  int64    `json:"priceCents"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	AddToCart   string   `json:"addToCart"`
}

func productCardRenderer(buf *bytes.Buffer, payload any, data ComponentData) error {
	product, err := coerceProduct(payload)
	if err != nil {
		return err
	}
	view := cardView{
		ID:          product.ID,
		Name:        product.Name,
		Description: SanitizeDescription(product.Description),
		Tags:        product.Tags,
		PriceCents:  product.PriceCents,
		ImageURL:    product.ImageURL,
		AddToCart:   data.Labels["addToCart"],
	}
	return renderTemplate(buf, templatePrefix+"product_card.tmpl", view, data)
}

func renderTemplate(buf *bytes.Buffer, templateName string, item any, data ComponentData) error {
	if data.Template == nil {
		return fmt.Errorf("components: template renderer not configured for %q", templateName)
	}
	payload := map[string]any{
		"item":   item,
		"config": data.Config,
	}
	rendered, err := data.Template.RenderTemplate(templateName, payload)
	if err != nil {
		return fmt.Errorf("components: render template %q: %w", templateName, err)
	}
	buf.WriteString(rendered)
	return nil
}

func coerceInputView(payload any) (input.View, error) {
	switch v := payload.(type) {
	case input.View:
		return v, nil
	case *input.View:
		if v == nil {
			return input.View{}, fmt.Errorf("components: nil input view")
		}
		return *v, nil
	case *input.Input:
		if v == nil {
			return input.View{}, fmt.Errorf("components: nil input")
		}
		return v.View(), nil
	default:
		return input.View{}, fmt.Errorf("components: unsupported input payload %T", payload)
	}
}

func coerceProduct(payload any) (catalog.Product, error) {
	switch v := payload.(type) {
	case catalog.Product:
		return v, nil
	case *catalog.Product:
		if v == nil {
			return catalog.Product{}, fmt.Errorf("components: nil product")
		}
		return *v, nil
	default:
		return catalog.Product{}, fmt.Errorf("components: unsupported product payload %T", payload)
	}
}

var (
	descriptionPolicyOnce sync.Once
	descriptionPolicy     *bluemonday.Policy
)

// SanitizeDescription keeps inline emphasis and line breaks from catalog copy
// and strips everything else.
func SanitizeDescription(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	descriptionPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("em", "strong", "b", "i", "br")
		descriptionPolicy = policy
	})
	return strings.TrimSpace(descriptionPolicy.Sanitize(trimmed))
}
