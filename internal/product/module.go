package product

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/goproduct/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/goproduct/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goproduct/internal/pkg/pkguid"
	"github.com/shandysiswandi/goproduct/internal/product/entity"
	"github.com/shandysiswandi/goproduct/internal/product/inbound"
	"github.com/shandysiswandi/goproduct/internal/product/store"
	"github.com/shandysiswandi/goproduct/internal/product/usecase"
)

type Dependency struct {
	Config pkgconfig.Config
	Router *pkgrouter.Router
	Auth   pkgrouter.KeyValidator
	ID     pkguid.StringID
}

func New(dep Dependency) (func(context.Context) error, error) {
	if dep.ID == nil {
		dep.ID = pkguid.NewUUID()
	}

	var seed []entity.Product
	if dep.Config.GetBool("modules.product.seed") {
		seed = store.SeedProducts()
	}

	storage := store.NewInMemoryStore(dep.ID, seed...)
	slog.Info("product store ready", "seeded", len(seed))

	uc := usecase.New(usecase.Dependency{
		Store: storage,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc, pkgrouter.MiddlewareAPIKey(dep.Auth))

	return nil, nil
}
