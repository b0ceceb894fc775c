package testsupport

import (
	"strconv"
	"testing"

	"github.com/goliatone/go-storefront/pkg/catalog"
	"github.com/goliatone/go-storefront/pkg/input"
)

// Products returns n products named "Café N" with ids "p1".."pn". Positions
// listed in unavailable (1-based) are marked unavailable.
func Products(n int, unavailable ...int) []catalog.Product {
	off := make(map[int]struct{}, len(unavailable))
	for _, pos := range unavailable {
		off[pos] = struct{}{}
	}
	out := make([]catalog.Product, 0, n)
	for i := 1; i <= n; i++ {
		_, hidden := off[i]
		out = append(out, catalog.Product{
			ID:          "p" + strconv.Itoa(i),
			Name:        "Café " + strconv.Itoa(i),
			Description: "Descrição " + strconv.Itoa(i),
			Tags:        []string{"tradicional"},
			PriceCents:  int64(900 + i),
			ImageURL:    "/static/coffees/p" + strconv.Itoa(i) + ".png",
			Available:   !hidden,
		})
	}
	return out
}

// MustInput builds an input or fails the test.
func MustInput(t *testing.T, cfg input.Config) *input.Input {
	t.Helper()
	in, err := input.New(cfg, nil)
	if err != nil {
		t.Fatalf("new input %q: %v", cfg.Name, err)
	}
	return in
}
