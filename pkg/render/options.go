package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the page.
type RenderOptions struct {
	// Errors surfaces validation feedback keyed by field name. Renderers show
	// the first message on the matching input unless the input already carries
	// its own error; unknown keys are rendered as form-level errors.
	Errors map[string][]string
	// Theme supplies resolved tokens and CSS variables from go-theme.
	Theme *theme.RendererConfig
	// Locale selects translations for renderer chrome ("Opcional", headings).
	Locale string
	// Translator resolves chrome strings; nil keeps the built-in pt-BR copy.
	Translator Translator
	// Hidden adds hidden inputs to the page form, merged over Form.Hidden.
	Hidden []HiddenField
}
