package store

import (
	"context"
	"slices"
	"sync"

	"github.com/shandysiswandi/goproduct/internal/pkg/pkgerror"
	"github.com/shandysiswandi/goproduct/internal/pkg/pkguid"
	"github.com/shandysiswandi/goproduct/internal/product/entity"
)

// InMemoryStore keeps products in insertion order.
type InMemoryStore struct {
	mu       sync.RWMutex
	products []entity.Product
	id       pkguid.StringID
}

// NewInMemoryStore creates a store that assigns ids with id. Seed records are
// stored as given, ids included.
func NewInMemoryStore(id pkguid.StringID, seed ...entity.Product) *InMemoryStore {
	return &InMemoryStore{
		products: slices.Clone(seed),
		id:       id,
	}
}

func (s *InMemoryStore) List(ctx context.Context) ([]entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Product, len(s.products))
	copy(out, s.products)

	return out, nil
}

func (s *InMemoryStore) Get(ctx context.Context, id string) (entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return entity.Product{}, pkgerror.NewNotFound("Product")
	}

	return s.products[idx], nil
}

func (s *InMemoryStore) Create(ctx context.Context, fields entity.ProductFields) (entity.Product, error) {
	product := entity.Product{
		ID:      s.id.Generate(),
		InStock: true,
	}
	fields.Apply(&product)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append(s.products, product)

	return product, nil
}

func (s *InMemoryStore) Update(ctx context.Context, id string, fields entity.ProductFields) (entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return entity.Product{}, pkgerror.NewNotFound("Product")
	}

	fields.Apply(&s.products[idx])

	return s.products[idx], nil
}

func (s *InMemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return pkgerror.NewNotFound("Product")
	}

	s.products = slices.Delete(s.products, idx, idx+1)

	return nil
}

func (s *InMemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = nil

	return nil
}

// indexOf must be called with the lock held.
func (s *InMemoryStore) indexOf(id string) int {
	return slices.IndexFunc(s.products, func(p entity.Product) bool {
		return p.ID == id
	})
}
