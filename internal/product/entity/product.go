package entity

// Product is a catalog record owned by the store.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Category    string
	InStock     bool
}

// ProductFields carries the writable fields of a product.
// A nil pointer means "not provided".
type ProductFields struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	InStock     *bool
}

// Apply merges the provided fields into p. The id is never touched.
func (f ProductFields) Apply(p *Product) {
	if f.Name != nil {
		p.Name = *f.Name
	}
	if f.Description != nil {
		p.Description = *f.Description
	}
	if f.Price != nil {
		p.Price = *f.Price
	}
	if f.Category != nil {
		p.Category = *f.Category
	}
	if f.InStock != nil {
		p.InStock = *f.InStock
	}
}
