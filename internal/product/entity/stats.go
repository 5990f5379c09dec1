package entity

// CategoryStats aggregates the products sharing one category.
type CategoryStats struct {
	Category     string
	ProductCount int
	TotalValue   float64
	InStockCount int
}
