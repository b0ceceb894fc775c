package catalog

import (
	"embed"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/coffees.yaml
var dataFS embed.FS

const defaultFixturePath = "data/coffees.yaml"

var (
	defaultOnce     sync.Once
	defaultProducts []Product
	defaultErr      error
)

// Source provides the product collection. Implementations are synchronous and
// return the same records on every call.
type Source interface {
	Products() []Product
}

// StaticSource is a fixed, in-memory collection.
type StaticSource struct {
	products []Product
}

// NewStaticSource copies products into a Source.
func NewStaticSource(products []Product) *StaticSource {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		out = append(out, cloneProduct(p))
	}
	return &StaticSource{products: out}
}

// Products returns a copy of the collection in fixture order.
func (s *StaticSource) Products() []Product {
	if s == nil {
		return nil
	}
	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, cloneProduct(p))
	}
	return out
}

// Static returns the embedded coffee fixture. The fixture is compiled into
// the binary, so a decode failure is a build defect and panics.
func Static() *StaticSource {
	products, err := DefaultProducts()
	if err != nil {
		panic(err)
	}
	return NewStaticSource(products)
}

// DefaultProducts decodes the embedded fixture once and returns a copy.
func DefaultProducts() ([]Product, error) {
	defaultOnce.Do(func() {
		f, err := dataFS.Open(defaultFixturePath)
		if err != nil {
			defaultErr = err
			return
		}
		defer func() { _ = f.Close() }()

		products, err := LoadProducts(f)
		if err != nil {
			defaultErr = err
			return
		}
		defaultProducts = products
	})

	if defaultErr != nil {
		return nil, defaultErr
	}
	return NewStaticSource(defaultProducts).Products(), nil
}

type fixtureDocument struct {
	Products []Product `yaml:"products"`
}

// LoadProducts decodes a YAML fixture (`products:` list). Order is preserved;
// ids are trusted to be unique.
func LoadProducts(r io.Reader) ([]Product, error) {
	if r == nil {
		return nil, fmt.Errorf("catalog: missing reader")
	}

	var doc fixtureDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return []Product{}, nil
		}
		return nil, fmt.Errorf("catalog: decode fixture: %w", err)
	}

	products := make([]Product, 0, len(doc.Products))
	for idx, p := range doc.Products {
		p = normalizeProduct(p)
		if p.ID == "" {
			return nil, fmt.Errorf("catalog: product at index %d has no id", idx)
		}
		products = append(products, p)
	}
	return products, nil
}
