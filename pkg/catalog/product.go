package catalog

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Product is a catalog entry. Only Available products are displayed.
type Product struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description"`
	Tags        []string `json:"tags,omitempty" yaml:"tags"`
	PriceCents  int64    `json:"price_cents" yaml:"price_cents"`
	ImageURL    string   `json:"image_url,omitempty" yaml:"image_url"`
	Available   bool     `json:"available" yaml:"available"`
}

var pricePrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatPrice renders cents with the storefront locale's decimal separator,
// without a currency symbol ("9,90").
func FormatPrice(cents int64) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}
	out := pricePrinter.Sprintf("%d", cents/100) + "," + twoDigits(cents%100)
	if negative {
		return "-" + out
	}
	return out
}

// Price is FormatPrice applied to p.
func (p Product) Price() string {
	return FormatPrice(p.PriceCents)
}

// Available returns the available products in their original order.
func Available(products []Product) []Product {
	out := make([]Product, 0, len(products))
	for _, product := range products {
		if !product.Available {
			continue
		}
		out = append(out, cloneProduct(product))
	}
	return out
}

func cloneProduct(p Product) Product {
	if p.Tags != nil {
		p.Tags = append([]string{}, p.Tags...)
	}
	return p
}

func twoDigits(n int64) string {
	if n < 10 {
		return "0" + string(rune('0'+n))
	}
	return string(rune('0'+n/10)) + string(rune('0'+n%10))
}

func normalizeProduct(p Product) Product {
	p.ID = strings.TrimSpace(p.ID)
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	p.ImageURL = strings.TrimSpace(p.ImageURL)
	if len(p.Tags) > 0 {
		tags := make([]string, 0, len(p.Tags))
		for _, tag := range p.Tags {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
		p.Tags = tags
	}
	return p
}
