package store

import "github.com/shandysiswandi/goproduct/internal/product/entity"

// SeedProducts returns the starter catalog.
func SeedProducts() []entity.Product {
	return []entity.Product{
		{ID: "1", Name: "Laptop", Description: "High-performance laptop with 16GB RAM", Price: 1200, Category: "electronics", InStock: true},
		{ID: "2", Name: "Smartphone", Description: "Latest model with 128GB storage", Price: 800, Category: "electronics", InStock: true},
		{ID: "3", Name: "Coffee Maker", Description: "Programmable coffee maker with timer", Price: 50, Category: "kitchen", InStock: false},
		{ID: "4", Name: "Desk Chair", Description: "Ergonomic office chair", Price: 150, Category: "furniture", InStock: true},
		{ID: "5", Name: "Bluetooth Speaker", Description: "Portable speaker with clear audio", Price: 75, Category: "electronics", InStock: true},
		{ID: "6", Name: "Running Shoes", Description: "Lightweight running shoes with breathable material", Price: 120, Category: "footwear", InStock: false},
		{ID: "7", Name: "Backpack", Description: "Durable backpack with multiple compartments", Price: 80, Category: "accessories", InStock: true},
		{ID: "8", Name: "Wristwatch", Description: "Stylish wristwatch with leather strap", Price: 250, Category: "accessories", InStock: true},
		{ID: "9", Name: "Electric Kettle", Description: "Fast-boiling electric kettle with auto shut-off", Price: 60, Category: "appliances", InStock: true},
		{ID: "10", Name: "Tablet", Description: "10-inch tablet with high-resolution display", Price: 300, Category: "electronics", InStock: false},
		{ID: "11", Name: "Gaming Console", Description: "Next-gen gaming console with 4K support", Price: 500, Category: "electronics", InStock: true},
		{ID: "12", Name: "Office Desk", Description: "Spacious office desk with cable management", Price: 350, Category: "furniture", InStock: true},
	}
}
