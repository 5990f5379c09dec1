package inbound

import (
	"context"

	"github.com/shandysiswandi/goproduct/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goproduct/internal/product/entity"
	"github.com/shandysiswandi/goproduct/internal/product/usecase"
)

type uc interface {
	List(ctx context.Context, params usecase.ListParams) (usecase.ListResult, error)
	Stats(ctx context.Context) ([]entity.CategoryStats, error)
	Get(ctx context.Context, id string) (entity.Product, error)
	Create(ctx context.Context, payload map[string]any) (entity.Product, error)
	Update(ctx context.Context, id string, payload map[string]any) (entity.Product, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

// RegisterHTTPEndpoint mounts the product routes. Every route runs behind auth.
func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc, auth pkgrouter.Middleware) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/products", end.List, auth)    // ?category=&search=&page=&limit=
	r.GET("/products/:id", end.Get, auth) // "stats" resolves to the category summary
	r.POST("/products", end.Create, auth)
	r.PUT("/products/:id", end.Update, auth)
	r.DELETE("/products/:id", end.Delete, auth)
	r.DELETE("/products", end.Clear, auth)
}
