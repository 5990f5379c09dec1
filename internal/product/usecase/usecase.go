package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/goproduct/internal/pkg/pkgerror"
	"github.com/shandysiswandi/goproduct/internal/product/entity"
)

type Store interface {
	List(ctx context.Context) ([]entity.Product, error)
	Get(ctx context.Context, id string) (entity.Product, error)
	Create(ctx context.Context, fields entity.ProductFields) (entity.Product, error)
	Update(ctx context.Context, id string, fields entity.ProductFields) (entity.Product, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

type Dependency struct {
	Store Store
}

type Usecase struct {
	store Store
}

func New(dep Dependency) *Usecase {
	return &Usecase{store: dep.Store}
}

func (u *Usecase) List(ctx context.Context, params ListParams) (ListResult, error) {
	products, err := u.store.List(ctx)
	if err != nil {
		return ListResult{}, normalizeErr(err)
	}

	return Process(products, params), nil
}

func (u *Usecase) Stats(ctx context.Context) ([]entity.CategoryStats, error) {
	products, err := u.store.List(ctx)
	if err != nil {
		return nil, normalizeErr(err)
	}

	return Stats(products), nil
}

func (u *Usecase) Get(ctx context.Context, id string) (entity.Product, error) {
	product, err := u.store.Get(ctx, id)
	if err != nil {
		return entity.Product{}, normalizeErr(err)
	}

	return product, nil
}

func (u *Usecase) Create(ctx context.Context, payload map[string]any) (entity.Product, error) {
	if violations := Validate(payload); len(violations) > 0 {
		return entity.Product{}, validationError(violations)
	}

	product, err := u.store.Create(ctx, toFields(payload))
	if err != nil {
		return entity.Product{}, normalizeErr(err)
	}

	slog.InfoContext(ctx, "product created", "product_id", product.ID)

	return product, nil
}

// Update validates only the fields present in payload and merges them into
// the stored product. An empty payload leaves the product unchanged.
func (u *Usecase) Update(ctx context.Context, id string, payload map[string]any) (entity.Product, error) {
	if violations := ValidatePatch(payload); len(violations) > 0 {
		return entity.Product{}, validationError(violations)
	}

	product, err := u.store.Update(ctx, id, toFields(payload))
	if err != nil {
		return entity.Product{}, normalizeErr(err)
	}

	return product, nil
}

func (u *Usecase) Delete(ctx context.Context, id string) error {
	if err := u.store.Delete(ctx, id); err != nil {
		return normalizeErr(err)
	}

	slog.InfoContext(ctx, "product deleted", "product_id", id)

	return nil
}

func (u *Usecase) Clear(ctx context.Context) error {
	if err := u.store.Clear(ctx); err != nil {
		return normalizeErr(err)
	}

	slog.WarnContext(ctx, "all products deleted")

	return nil
}

func normalizeErr(err error) error {
	var perr *pkgerror.Error
	if errors.As(err, &perr) {
		return perr
	}
	if errors.Is(err, pkgerror.ErrNotFound) {
		return pkgerror.NewNotFound("Product")
	}
	return pkgerror.NewServer(err)
}
