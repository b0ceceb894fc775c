package catalog

import (
	"strings"

	pkgcatalog "github.com/goliatone/go-storefront/pkg/catalog"
)

// Search filters the available products by a case-insensitive name or
// description match and an exact tag. Results keep fixture order.
func Search(products []pkgcatalog.Product, query, tag string, limit int, opts Options) []pkgcatalog.Product {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}

	q := strings.ToLower(strings.TrimSpace(query))
	tag = strings.ToLower(strings.TrimSpace(tag))

	out := make([]pkgcatalog.Product, 0, len(products))
	for _, product := range pkgcatalog.Available(products) {
		if q != "" && !matchesQuery(product, q) {
			continue
		}
		if tag != "" && !hasTag(product, tag) {
			continue
		}
		out = append(out, product)
		if len(out) == limit {
			break
		}
	}
	return out
}

func matchesQuery(product pkgcatalog.Product, q string) bool {
	return strings.Contains(strings.ToLower(product.Name), q) ||
		strings.Contains(strings.ToLower(product.Description), q)
}

func hasTag(product pkgcatalog.Product, tag string) bool {
	for _, candidate := range product.Tags {
		if strings.ToLower(strings.TrimSpace(candidate)) == tag {
			return true
		}
	}
	return false
}
