package render

import (
	"errors"
	"strings"
)

// ErrMissingTranslator is reported to the missing handler when no Translator
// is configured.
var ErrMissingTranslator = errors.New("render: translator not configured")

// Translator resolves a message key for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MapTranslator is a Translator backed by locale -> key -> message maps.
type MapTranslator map[string]map[string]string

// Translate implements Translator. Region subtags fall back to the base
// language ("en-US" -> "en").
func (m MapTranslator) Translate(locale, key string, _ ...any) (string, error) {
	for _, candidate := range localeChain(locale) {
		if msg, ok := m[candidate][key]; ok && strings.TrimSpace(msg) != "" {
			return msg, nil
		}
	}
	return "", errors.New("render: missing translation for " + key)
}

// Chrome strings rendered around components. The built-in copy is pt-BR.
const (
	KeyOptionalHint   = "input.optional"
	KeyCatalogHeading = "catalog.heading"
	KeyCheckoutTitle  = "checkout.title"
	KeyCheckoutSubmit = "checkout.submit"
	KeyAddToCart      = "product.addToCart"
)

var defaultChrome = map[string]string{
	KeyOptionalHint:   "Opcional",
	KeyCatalogHeading: "Nossos cafés",
	KeyCheckoutTitle:  "Complete seu pedido",
	KeyCheckoutSubmit: "Confirmar pedido",
	KeyAddToCart:      "Adicionar ao carrinho",
}

// Chrome resolves key through options, falling back to fallback and then to
// the built-in copy.
func Chrome(options RenderOptions, key, fallback string) string {
	if options.Translator != nil {
		if msg, err := options.Translator.Translate(options.Locale, key); err == nil && strings.TrimSpace(msg) != "" {
			return msg
		}
	}
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	if msg, ok := defaultChrome[key]; ok {
		return msg
	}
	return key
}

func localeChain(locale string) []string {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return nil
	}
	chain := []string{locale}
	if idx := strings.IndexAny(locale, "-_"); idx > 0 {
		chain = append(chain, locale[:idx])
	}
	return chain
}
