package vanilla

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/goliatone/go-storefront/pkg/catalog"
	"github.com/goliatone/go-storefront/pkg/input"
	"github.com/goliatone/go-storefront/pkg/render/template"
	"github.com/goliatone/go-storefront/pkg/renderers/vanilla/components"
)

// componentRenderer renders registry components for a single Render call and
// remembers which ones were used so their assets can be linked once.
type componentRenderer struct {
	templates template.TemplateRenderer
	registry  *components.Registry
	labels    map[string]string

	usedComponents map[string]struct{}
}

func newComponentRenderer(templates template.TemplateRenderer, registry *components.Registry, labels map[string]string) *componentRenderer {
	if registry == nil {
		registry = components.NewDefaultRegistry()
	}
	return &componentRenderer{
		templates:      templates,
		registry:       registry,
		labels:         cloneStringMap(labels),
		usedComponents: make(map[string]struct{}),
	}
}

func (r *componentRenderer) render(name string, payload any) (string, error) {
	var buf bytes.Buffer
	data := components.ComponentData{
		Template: r.templates,
		Labels:   r.labels,
	}
	if err := r.registry.Render(&buf, name, payload, data); err != nil {
		return "", err
	}
	r.usedComponents[name] = struct{}{}
	return buf.String(), nil
}

// renderInput renders a masked input. External messages apply only when the
// input carries no error of its own; either way the text is shown verbatim.
func (r *componentRenderer) renderInput(in *input.Input, external []string) (string, error) {
	if in == nil {
		return "", nil
	}
	view := in.View()
	if !view.Invalid {
		for _, message := range external {
			if message == "" {
				continue
			}
			view.Invalid = true
			view.ErrorMessage = message
			break
		}
	}
	markup, err := r.render(components.NameMaskedInput, view)
	if err != nil {
		return "", fmt.Errorf("render input %q: %w", view.Name, err)
	}
	return markup, nil
}

// renderCards renders one card per available product, in input order.
func (r *componentRenderer) renderCards(products []catalog.Product) ([]string, error) {
	available := catalog.Available(products)
	cards := make([]string, 0, len(available))
	for _, product := range available {
		markup, err := r.render(components.NameProductCard, product)
		if err != nil {
			return nil, fmt.Errorf("render product %q: %w", product.ID, err)
		}
		cards = append(cards, markup)
	}
	return cards, nil
}

func (r *componentRenderer) assets() (stylesheets []string, scripts []components.Script) {
	if r.registry == nil || len(r.usedComponents) == 0 {
		return nil, nil
	}
	names := make([]string, 0, len(r.usedComponents))
	for name := range r.usedComponents {
		names = append(names, name)
	}
	slices.Sort(names)
	return r.registry.Assets(names)
}
