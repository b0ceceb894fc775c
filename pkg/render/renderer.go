package render

import (
	"context"

	"github.com/goliatone/go-storefront/pkg/catalog"
	"github.com/goliatone/go-storefront/pkg/input"
)

// Renderer converts a Page into a byte representation (HTML, JSON, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, page Page, options RenderOptions) ([]byte, error)
}

// Page is everything a renderer needs for one storefront screen. Products are
// rendered as cards in the given order; Form is optional.
type Page struct {
	Name     string
	Title    string
	Heading  string
	Products []catalog.Product
	Form     *Form
}

// Form groups masked inputs submitted together.
type Form struct {
	ID          string
	Action      string
	Method      string
	Title       string
	SubmitLabel string
	Inputs      []*input.Input
	Hidden      map[string]string
	// Errors are form-level messages that belong to no single input.
	Errors []string
	// Notice is a non-error status line, e.g. after a successful submit.
	Notice string
}

// FieldNames returns the input names in render order.
func (f *Form) FieldNames() []string {
	if f == nil {
		return nil
	}
	names := make([]string, 0, len(f.Inputs))
	for _, in := range f.Inputs {
		if in == nil || in.Name() == "" {
			continue
		}
		names = append(names, in.Name())
	}
	return names
}
