package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-storefront/pkg/render"
	rendertemplate "github.com/goliatone/go-storefront/pkg/render/template"
	"github.com/goliatone/go-storefront/pkg/render/template/gotemplate"
	"github.com/goliatone/go-storefront/pkg/renderers/vanilla/components"
)

// Option customises the vanilla renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	registry         *components.Registry
	inlineStyles     bool
	stylesheets      []string
	classes          ChromeClasses
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation. The
// renderer must provide a "money" filter for product cards.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithComponentRegistry replaces the default component registry.
func WithComponentRegistry(registry *components.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.registry = registry
		}
	}
}

// WithDefaultStyles toggles the inline copy of the bundled stylesheet.
func WithDefaultStyles(enabled bool) Option {
	return func(cfg *config) {
		cfg.inlineStyles = enabled
	}
}

// WithStylesheet links an additional stylesheet on every page.
func WithStylesheet(href string) Option {
	return func(cfg *config) {
		if href = strings.TrimSpace(href); href != "" {
			cfg.stylesheets = append(cfg.stylesheets, href)
		}
	}
}

// WithChromeClasses overrides chrome CSS classes.
func WithChromeClasses(classes ChromeClasses) Option {
	return func(cfg *config) {
		cfg.classes = classes
	}
}

// Renderer renders storefront pages as HTML.
type Renderer struct {
	templates   rendertemplate.TemplateRenderer
	registry    *components.Registry
	stylesheet  string
	stylesheets []string
	classes     map[string]string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS:   TemplatesFS(),
		inlineStyles: true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	registry := cfg.registry
	if registry == nil {
		registry = components.NewDefaultRegistry()
	}

	r := &Renderer{
		templates:   renderer,
		registry:    registry,
		stylesheets: append([]string(nil), cfg.stylesheets...),
		classes:     cfg.classes.resolve(),
	}
	if cfg.inlineStyles {
		r.stylesheet = defaultStylesheet()
	}
	return r, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces a full HTML document for page.
func (r *Renderer) Render(ctx context.Context, page render.Page, options render.RenderOptions) ([]byte, error) {
	if r == nil || r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parts := newComponentRenderer(r.templates, r.registry, chromeLabels(options))

	var body strings.Builder
	if len(page.Products) > 0 {
		list, err := r.renderProductList(parts, page, options)
		if err != nil {
			return nil, err
		}
		body.WriteString(list)
	}
	if page.Form != nil {
		form, err := r.renderForm(parts, page.Form, options)
		if err != nil {
			return nil, err
		}
		body.WriteString(form)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stylesheets, scripts := parts.assets()
	stylesheets = append(append([]string(nil), r.stylesheets...), stylesheets...)

	locale := strings.TrimSpace(options.Locale)
	if locale == "" {
		locale = "pt-BR"
	}

	result, err := r.templates.RenderTemplate("templates/page.tmpl", map[string]any{
		"page": map[string]any{
			"name":    page.Name,
			"title":   page.Title,
			"heading": page.Heading,
			"lang":    locale,
		},
		"body":        body.String(),
		"theme":       themeContext(options.Theme),
		"classes":     r.classes,
		"stylesheet":  r.stylesheet,
		"stylesheets": stylesheets,
		"scripts":     scripts,
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render page: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) renderProductList(parts *componentRenderer, page render.Page, options render.RenderOptions) (string, error) {
	cards, err := parts.renderCards(page.Products)
	if err != nil {
		return "", fmt.Errorf("vanilla renderer: %w", err)
	}
	result, err := r.templates.RenderTemplate("templates/product_list.tmpl", map[string]any{
		"heading": render.Chrome(options, render.KeyCatalogHeading, ""),
		"cards":   cards,
		"classes": r.classes,
	})
	if err != nil {
		return "", fmt.Errorf("vanilla renderer: render product list: %w", err)
	}
	return result, nil
}

func (r *Renderer) renderForm(parts *componentRenderer, form *render.Form, options render.RenderOptions) (string, error) {
	mapping := render.MapErrorPayload(form.FieldNames(), options.Errors)

	fields := make([]string, 0, len(form.Inputs))
	for _, in := range form.Inputs {
		if in == nil {
			continue
		}
		markup, err := parts.renderInput(in, mapping.Fields[in.Name()])
		if err != nil {
			return "", fmt.Errorf("vanilla renderer: %w", err)
		}
		fields = append(fields, markup)
	}

	hidden := make([]map[string]string, 0)
	for _, field := range render.SortedHiddenFields(render.MergeHiddenFields(form.Hidden, options.Hidden...)) {
		hidden = append(hidden, map[string]string{"name": field.Name, "value": field.Value})
	}

	method := strings.ToLower(strings.TrimSpace(form.Method))
	if method == "" {
		method = "post"
	}

	result, err := r.templates.RenderTemplate("templates/checkout_form.tmpl", map[string]any{
		"form": map[string]any{
			"id":          form.ID,
			"action":      form.Action,
			"method":      method,
			"title":       render.Chrome(options, render.KeyCheckoutTitle, form.Title),
			"submitLabel": render.Chrome(options, render.KeyCheckoutSubmit, form.SubmitLabel),
			"notice":      form.Notice,
			"errors":      render.MergeFormErrors(form.Errors, mapping.Form...),
			"hidden":      hidden,
			"fields":      fields,
		},
		"classes": r.classes,
	})
	if err != nil {
		return "", fmt.Errorf("vanilla renderer: render form: %w", err)
	}
	return result, nil
}

func chromeLabels(options render.RenderOptions) map[string]string {
	return map[string]string{
		"optional":  render.Chrome(options, render.KeyOptionalHint, ""),
		"addToCart": render.Chrome(options, render.KeyAddToCart, ""),
	}
}
