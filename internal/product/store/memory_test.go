package store

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/shandysiswandi/goproduct/internal/pkg/pkgerror"
	"github.com/shandysiswandi/goproduct/internal/product/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seqID struct {
	n atomic.Int64
}

func (s *seqID) Generate() string {
	return "gen-" + strconv.FormatInt(s.n.Add(1), 10)
}

func ptr[T any](v T) *T { return &v }

func TestInMemoryStore_SeedIsKeptInOrder(t *testing.T) {
	t.Parallel()

	s := NewInMemoryStore(&seqID{}, SeedProducts()...)

	products, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 12)
	for i, p := range products {
		assert.Equal(t, strconv.Itoa(i+1), p.ID)
	}
}

func TestInMemoryStore_CreateAppliesDefaults(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewInMemoryStore(&seqID{})

	created, err := s.Create(ctx, entity.ProductFields{
		Name:     ptr("Lamp"),
		Price:    ptr(20.0),
		Category: ptr("home"),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.Product{
		ID:          "gen-1",
		Name:        "Lamp",
		Description: "",
		Price:       20,
		Category:    "home",
		InStock:     true,
	}, created)

	got, err := s.Get(ctx, "gen-1")
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestInMemoryStore_CreateAssignsUniqueIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewInMemoryStore(&seqID{})

	a, err := s.Create(ctx, entity.ProductFields{Name: ptr("a1")})
	require.NoError(t, err)
	b, err := s.Create(ctx, entity.ProductFields{Name: ptr("b1")})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)

	products, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{a.ID, b.ID}, []string{products[0].ID, products[1].ID})
}

func TestInMemoryStore_UpdateMergesFields(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewInMemoryStore(&seqID{}, SeedProducts()...)

	updated, err := s.Update(ctx, "3", entity.ProductFields{
		Price:   ptr(55.5),
		InStock: ptr(true),
	})
	require.NoError(t, err)

	assert.Equal(t, "3", updated.ID)
	assert.Equal(t, "Coffee Maker", updated.Name)
	assert.Equal(t, 55.5, updated.Price)
	assert.True(t, updated.InStock)

	products, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, products[2])
}

func TestInMemoryStore_DeletePreservesOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewInMemoryStore(&seqID{}, SeedProducts()[:4]...)

	require.NoError(t, s.Delete(ctx, "2"))

	products, err := s.List(ctx)
	require.NoError(t, err)

	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"1", "3", "4"}, ids)
}

func TestInMemoryStore_UnknownIDIsNotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewInMemoryStore(&seqID{}, SeedProducts()...)

	_, err := s.Get(ctx, "999")
	assertNotFound(t, err)

	_, err = s.Update(ctx, "999", entity.ProductFields{Name: ptr("xx")})
	assertNotFound(t, err)

	assertNotFound(t, s.Delete(ctx, "999"))

	products, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 12)
}

func TestInMemoryStore_Clear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewInMemoryStore(&seqID{}, SeedProducts()...)

	require.NoError(t, s.Clear(ctx))

	products, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	_, err = s.Get(ctx, "1")
	assertNotFound(t, err)
}

func TestInMemoryStore_ListReturnsCopy(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewInMemoryStore(&seqID{}, SeedProducts()...)

	products, err := s.List(ctx)
	require.NoError(t, err)
	products[0].Name = "mutated"

	got, err := s.Get(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Laptop", got.Name)
}

func TestInMemoryStore_ConcurrentCreates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewInMemoryStore(&seqID{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Create(ctx, entity.ProductFields{Name: ptr("item")})
			_, _ = s.List(ctx)
		}()
	}
	wg.Wait()

	products, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 50)

	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		seen[p.ID] = struct{}{}
	}
	assert.Len(t, seen, 50)
}

func assertNotFound(t *testing.T, err error) {
	t.Helper()

	require.Error(t, err)
	assert.True(t, errors.Is(err, pkgerror.ErrNotFound))

	var perr *pkgerror.Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "Product not found", perr.Msg())
}
