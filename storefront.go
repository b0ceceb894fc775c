package storefront

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-storefront/pkg/catalog"
	"github.com/goliatone/go-storefront/pkg/checkout"
	"github.com/goliatone/go-storefront/pkg/render"
	"github.com/goliatone/go-storefront/pkg/renderers/vanilla"
)

// RenderOptions describes per-request overrides such as errors, theme and
// locale; alias exported via the root package for convenience.
type RenderOptions = render.RenderOptions

// Page aliases render.Page.
type Page = render.Page

const (
	// PageHome names the product list page.
	PageHome = "home"
	// PageCheckout names the checkout page.
	PageCheckout = "checkout"
	// DefaultRenderer is the renderer used when none is requested.
	DefaultRenderer = "vanilla"
)

// Option configures a Storefront.
type Option func(*Storefront)

// WithSource replaces the embedded catalog fixture.
func WithSource(src catalog.Source) Option {
	return func(s *Storefront) {
		if src != nil {
			s.source = src
		}
	}
}

// WithRegistry supplies the renderer registry. The default registry holds the
// vanilla HTML renderer.
func WithRegistry(registry *render.Registry) Option {
	return func(s *Storefront) {
		if registry != nil {
			s.registry = registry
		}
	}
}

// WithCheckoutOptions appends options applied to every checkout form.
func WithCheckoutOptions(options ...checkout.Option) Option {
	return func(s *Storefront) {
		s.checkout = append(s.checkout, options...)
	}
}

// Storefront ties the catalog, the checkout form and the renderers together.
type Storefront struct {
	source   catalog.Source
	registry *render.Registry
	checkout []checkout.Option
	list     *catalog.List
}

// New builds a storefront. The product list is loaded once here.
func New(options ...Option) (*Storefront, error) {
	s := &Storefront{}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	if s.source == nil {
		s.source = catalog.Static()
	}
	if s.registry == nil {
		registry, err := NewRenderRegistry()
		if err != nil {
			return nil, err
		}
		s.registry = registry
	}
	s.list = catalog.NewList(s.source)
	return s, nil
}

// NewRenderRegistry returns a registry holding the vanilla HTML renderer.
func NewRenderRegistry(options ...vanilla.Option) (*render.Registry, error) {
	renderer, err := vanilla.New(options...)
	if err != nil {
		return nil, fmt.Errorf("storefront: %w", err)
	}
	registry := render.NewRegistry()
	if err := registry.Register(renderer); err != nil {
		return nil, fmt.Errorf("storefront: %w", err)
	}
	return registry, nil
}

// Registry exposes the renderer registry so callers can add renderers.
func (s *Storefront) Registry() *render.Registry {
	return s.registry
}

// Source returns the catalog source the product list was loaded from.
func (s *Storefront) Source() catalog.Source {
	return s.source
}

// Products returns the available products in fixture order.
func (s *Storefront) Products() []catalog.Product {
	return s.list.Items()
}

// NewCheckout builds a checkout form with the storefront's checkout options
// followed by the given ones.
func (s *Storefront) NewCheckout(options ...checkout.Option) (*checkout.Form, error) {
	all := append(append([]checkout.Option(nil), s.checkout...), options...)
	return checkout.New(all...)
}

// HomePage describes the product list page.
func (s *Storefront) HomePage() Page {
	return Page{
		Name:     PageHome,
		Products: s.Products(),
	}
}

// CheckoutPage describes the checkout page for form.
func (s *Storefront) CheckoutPage(form *checkout.Form) Page {
	page := Page{Name: PageCheckout}
	if form != nil {
		page.Form = form.Render()
	}
	return page
}

// Render renders page with the named renderer and returns the body and its
// content type. An empty name selects DefaultRenderer.
func (s *Storefront) Render(ctx context.Context, rendererName string, page Page, options RenderOptions) ([]byte, string, error) {
	if ctx == nil {
		return nil, "", errors.New("storefront: context is required")
	}
	name := strings.TrimSpace(rendererName)
	if name == "" {
		name = DefaultRenderer
	}
	return s.registry.Render(ctx, name, page, options)
}

// RenderHome renders the product list with the named renderer.
func (s *Storefront) RenderHome(ctx context.Context, rendererName string, options RenderOptions) ([]byte, string, error) {
	return s.Render(ctx, rendererName, s.HomePage(), options)
}

// RenderCheckout renders form with the named renderer.
func (s *Storefront) RenderCheckout(ctx context.Context, rendererName string, form *checkout.Form, options RenderOptions) ([]byte, string, error) {
	return s.Render(ctx, rendererName, s.CheckoutPage(form), options)
}

// EmbeddedTemplates exposes the built-in vanilla renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// AssetsFS exposes the stylesheet and mask runtime served under /assets/.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(storefront.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return vanilla.AssetsFS()
}
