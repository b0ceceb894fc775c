package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/goliatone/go-storefront/pkg/catalog"
	"github.com/goliatone/go-storefront/pkg/input"
	"github.com/goliatone/go-storefront/pkg/render"
)

// ProductKey is the value key holding the chosen product id when a page
// carries both products and a form.
const ProductKey = "product"

// Renderer implements render.Renderer for terminal-driven sessions. Each
// input is prompted in order and every answer goes through Input.Change, so
// masks and CEP lookups behave as they do in the browser.
type Renderer struct {
	driver            PromptDriver
	outputFormat      OutputFormat
	submitTransformer SubmitTransformer
	theme             Theme
	confirm           bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	driver, err := newSurveyDriver()
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		driver:       driver,
		outputFormat: OutputFormatJSON,
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.driver == nil {
		r.driver, err = newSurveyDriver()
		if err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Render lists the page's available products and prompts for every form
// input. The result holds the unmasked answers; a page without a form yields
// the ids of the listed products.
func (r *Renderer) Render(ctx context.Context, page render.Page, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	if heading := firstNonEmpty(page.Heading, page.Title); heading != "" {
		if err := r.info(ctx, heading); err != nil {
			return nil, err
		}
	}

	mapping := render.MapErrorPayload(page.Form.FieldNames(), opts.Errors)
	state := NewState(mapping.Fields)

	products := catalog.Available(page.Products)
	if page.Form == nil {
		return r.renderCatalog(ctx, products, opts)
	}

	if len(products) > 0 {
		if err := r.promptProduct(ctx, products, state, opts); err != nil {
			return nil, err
		}
	}

	title := render.Chrome(opts, render.KeyCheckoutTitle, page.Form.Title)
	if err := r.info(ctx, title); err != nil {
		return nil, err
	}
	if page.Form.Notice != "" {
		if err := r.info(ctx, page.Form.Notice); err != nil {
			return nil, err
		}
	}
	for _, message := range render.MergeFormErrors(page.Form.Errors, mapping.Form...) {
		if err := r.errorLine(ctx, message); err != nil {
			return nil, err
		}
	}

	for _, in := range page.Form.Inputs {
		if in == nil {
			continue
		}
		if err := r.promptInput(ctx, in, state, opts); err != nil {
			return nil, err
		}
	}

	if r.confirm {
		ok, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: render.Chrome(opts, render.KeyCheckoutSubmit, page.Form.SubmitLabel) + "?",
			Default: true,
		})
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrAborted
		}
	}

	return r.finish(state.Values())
}

func (r *Renderer) renderCatalog(ctx context.Context, products []catalog.Product, opts render.RenderOptions) ([]byte, error) {
	if err := r.info(ctx, render.Chrome(opts, render.KeyCatalogHeading, "")); err != nil {
		return nil, err
	}
	ids := make([]any, 0, len(products))
	for _, product := range products {
		if err := r.info(ctx, productLine(product)); err != nil {
			return nil, err
		}
		ids = append(ids, product.ID)
	}
	return r.finish(map[string]any{"products": ids})
}

func (r *Renderer) promptProduct(ctx context.Context, products []catalog.Product, state *State, opts render.RenderOptions) error {
	options := make([]string, 0, len(products))
	for _, product := range products {
		options = append(options, productLine(product))
	}
	idx, err := r.driver.Select(ctx, SelectConfig{
		Message: r.theme.PromptPrefix + render.Chrome(opts, render.KeyCatalogHeading, ""),
		Options: options,
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(products) {
		return fmt.Errorf("tui: product selection %d out of range", idx)
	}
	state.SetValue(ProductKey, products[idx].ID)
	return nil
}

func (r *Renderer) promptInput(ctx context.Context, in *input.Input, state *State, opts render.RenderOptions) error {
	cfg := in.Config()
	label := firstNonEmpty(cfg.Label, cfg.Name)
	if cfg.Optional {
		label += " (" + render.Chrome(opts, render.KeyOptionalHint, "") + ")"
	}

	help := in.ErrorMessage()
	if help == "" {
		if messages := state.ErrorsFor(cfg.Name); len(messages) > 0 {
			help = messages[0]
		}
	}
	if help != "" {
		if err := r.errorLine(ctx, label+": "+help); err != nil {
			return err
		}
	}

	if field := in.Field(); field != nil {
		field.Focus()
		defer field.Blur()
	}

	answer, err := r.driver.Input(ctx, InputConfig{
		Message:   r.theme.PromptPrefix + label,
		Default:   in.Display(),
		Help:      help,
		Validator: AnswerValidator(in),
	})
	if err != nil {
		return err
	}

	in.Change(answer)
	state.SetValue(cfg.Name, in.Unmasked())
	return nil
}

// AnswerValidator rejects answers that leave a required input blank or do
// not fill the input's mask. Optional inputs may stay blank.
func AnswerValidator(in *input.Input) func(string) error {
	cfg := in.Config()
	m := in.Mask()
	return func(answer string) error {
		value := m.Apply(answer)
		if value.Empty() {
			if cfg.Required && !cfg.Optional {
				return ErrRequired
			}
			return nil
		}
		if !m.Complete(value) {
			return fmt.Errorf("%w %q", ErrIncomplete, m.Pattern())
		}
		return nil
	}
}

func (r *Renderer) finish(values map[string]any) ([]byte, error) {
	if r.submitTransformer != nil {
		var err error
		values, err = r.submitTransformer(values)
		if err != nil {
			return nil, fmt.Errorf("tui: submit transformer: %w", err)
		}
	}
	return r.serialize(values)
}

func (r *Renderer) info(ctx context.Context, msg string) error {
	if strings.TrimSpace(msg) == "" {
		return nil
	}
	return r.driver.Info(ctx, r.theme.InfoPrefix+msg)
}

func (r *Renderer) errorLine(ctx context.Context, msg string) error {
	return r.driver.Info(ctx, r.theme.ErrorPrefix+msg)
}

func (r *Renderer) serialize(values map[string]any) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return []byte(flattenForm(values)), nil
	case OutputFormatPrettyText:
		return []byte(prettyPrint(values)), nil
	default:
		return json.Marshal(values)
	}
}

func productLine(product catalog.Product) string {
	return fmt.Sprintf("%s (R$ %s)", product.Name, product.Price())
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func flattenForm(values map[string]any) string {
	flattened := url.Values{}
	for key, value := range values {
		switch v := value.(type) {
		case []any:
			for _, item := range v {
				flattened.Add(key+"[]", fmt.Sprint(item))
			}
		default:
			flattened.Set(key, fmt.Sprint(v))
		}
	}
	return flattened.Encode()
}

func prettyPrint(values map[string]any) string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		switch v := values[key].(type) {
		case []any:
			for idx, item := range v {
				fmt.Fprintf(&b, "%s[%d]=%v\n", key, idx, item)
			}
		default:
			fmt.Fprintf(&b, "%s=%v\n", key, v)
		}
	}
	return b.String()
}
