package main

import "github.com/goliatone/go-storefront/pkg/render"

// chromeTranslations covers the page chrome for locales other than the
// built-in pt-BR copy.
var chromeTranslations = render.MapTranslator{
	"en": {
		render.KeyOptionalHint:   "Optional",
		render.KeyCatalogHeading: "Our coffees",
		render.KeyCheckoutTitle:  "Complete your order",
		render.KeyCheckoutSubmit: "Place order",
		render.KeyAddToCart:      "Add to cart",
	},
}
