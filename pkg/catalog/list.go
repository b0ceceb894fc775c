package catalog

// List is the product listing view. It reads its Source exactly once, when
// it is built, and keeps that snapshot for its lifetime.
type List struct {
	products []Product
}

// NewList loads src. A nil source yields an empty list.
func NewList(src Source) *List {
	l := &List{}
	if src != nil {
		l.products = src.Products()
	}
	return l
}

// Items returns the products to display: available ones, in source order.
func (l *List) Items() []Product {
	if l == nil {
		return nil
	}
	return Available(l.products)
}

// All returns the loaded snapshot, including unavailable products.
func (l *List) All() []Product {
	if l == nil {
		return nil
	}
	return NewStaticSource(l.products).Products()
}
