package inbound

import (
	"net/http"

	"github.com/shandysiswandi/goproduct/internal/product/entity"
	"github.com/shandysiswandi/goproduct/internal/product/usecase"
)

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	InStock     bool    `json:"inStock"`
}

type CreateProductResponse struct {
	Product
}

func (CreateProductResponse) StatusCode() int {
	return http.StatusCreated
}

type Pagination struct {
	CurrentPage  int  `json:"currentPage"`
	ItemsPerPage int  `json:"itemsPerPage"`
	TotalItems   int  `json:"totalItems"`
	TotalPages   int  `json:"totalPages"`
	NextPage     *int `json:"nextPage"`
	PrevPage     *int `json:"prevPage"`
}

type ListProductResponse struct {
	Data       []Product  `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type CategoryStats struct {
	Category     string  `json:"category"`
	ProductCount int     `json:"productCount"`
	TotalValue   float64 `json:"totalValue"`
	InStockCount int     `json:"inStockCount"`
}

func toHTTPProduct(p entity.Product) Product {
	return Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		InStock:     p.InStock,
	}
}

func toHTTPCategoryStats(s entity.CategoryStats) CategoryStats {
	return CategoryStats{
		Category:     s.Category,
		ProductCount: s.ProductCount,
		TotalValue:   s.TotalValue,
		InStockCount: s.InStockCount,
	}
}

func toListResponse(result usecase.ListResult) ListProductResponse {
	data := make([]Product, 0, len(result.Data))
	for _, p := range result.Data {
		data = append(data, toHTTPProduct(p))
	}

	return ListProductResponse{
		Data: data,
		Pagination: Pagination{
			CurrentPage:  result.Pagination.CurrentPage,
			ItemsPerPage: result.Pagination.ItemsPerPage,
			TotalItems:   result.Pagination.TotalItems,
			TotalPages:   result.Pagination.TotalPages,
			NextPage:     result.Pagination.NextPage,
			PrevPage:     result.Pagination.PrevPage,
		},
	}
}
