package storefront

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-storefront/pkg/catalog"
	"github.com/goliatone/go-storefront/pkg/checkout"
)

func TestRenderHome_ListsAvailableProductsInOrder(t *testing.T) {
	src := catalog.NewStaticSource([]catalog.Product{
		{ID: "a", Name: "Alpha", PriceCents: 100, Available: true},
		{ID: "b", Name: "Beta", PriceCents: 200, Available: false},
		{ID: "c", Name: "Gamma", PriceCents: 300, Available: true},
	})
	store, err := New(WithSource(src))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, contentType, err := store.RenderHome(context.Background(), "", RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(contentType, "text/html") {
		t.Fatalf("content type = %q", contentType)
	}

	html := string(out)
	first := strings.Index(html, `data-product-id="a"`)
	last := strings.Index(html, `data-product-id="c"`)
	if first < 0 || last < 0 || first > last {
		t.Fatalf("expected cards a then c in order")
	}
	if strings.Contains(html, `data-product-id="b"`) {
		t.Fatalf("unavailable product rendered")
	}
}

func TestProducts_LoadedOnce(t *testing.T) {
	calls := 0
	src := countingSource{products: []catalog.Product{{ID: "x", Available: true}}, calls: &calls}
	store, err := New(WithSource(src))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	store.Products()
	store.Products()
	if _, _, err := store.RenderHome(context.Background(), DefaultRenderer, RenderOptions{}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if calls != 1 {
		t.Fatalf("source read %d times, want 1", calls)
	}
}

type countingSource struct {
	products []catalog.Product
	calls    *int
}

func (s countingSource) Products() []catalog.Product {
	*s.calls++
	return s.products
}

func TestRenderCheckout_ShowsFormAndErrors(t *testing.T) {
	store, err := New(WithCheckoutOptions(checkout.WithAction("/pedido")))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	form, err := store.NewCheckout()
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if _, err := form.Submit(context.Background(), map[string]string{checkout.FieldCEP: "123"}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	out, _, err := store.RenderCheckout(context.Background(), "", form, RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	for _, want := range []string{`action="/pedido"`, `aria-invalid="true"`, `role="alert"`} {
		if !strings.Contains(html, want) {
			t.Fatalf("checkout page missing %q", want)
		}
	}
}

func TestRender_UnknownRenderer(t *testing.T) {
	store, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, _, err := store.RenderHome(context.Background(), "pdf", RenderOptions{}); err == nil {
		t.Fatalf("expected error for unknown renderer")
	}
}

func TestNewRenderRegistry_ListsVanilla(t *testing.T) {
	registry, err := NewRenderRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	if diff := cmp.Diff([]string{DefaultRenderer}, registry.List()); diff != "" {
		t.Fatalf("renderers mismatch (-want +got):\n%s", diff)
	}
}

func TestEmbeddedFilesystems(t *testing.T) {
	if _, err := fs.ReadFile(EmbeddedTemplates(), "templates/page.tmpl"); err != nil {
		t.Fatalf("page template: %v", err)
	}
	if _, err := fs.ReadFile(AssetsFS(), "storefront-mask.js"); err != nil {
		t.Fatalf("mask runtime: %v", err)
	}
}
