package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/ecoswap-market/internal/domain/entity"
	"github.com/yourusername/ecoswap-market/internal/infrastructure/storage"
	"go.uber.org/goleak"
)

func newCatalog(delay time.Duration) CatalogUseCase {
	repo := storage.NewMemoryCatalogRepository(storage.SeedCatalog()...)
	return NewCatalogUseCase(repo, storage.MoreListings(), delay, nil)
}

func TestCatalogFilter(t *testing.T) {
	ctx := context.Background()
	catalog := newCatalog(0)

	tests := []struct {
		category string
		want     []int
	}{
		{category: "", want: []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{category: "all", want: []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{category: "tools", want: []int{1, 4, 7}},
		{category: " Books ", want: []int{2, 8}},
		{category: "furniture", want: nil},
	}
	for _, tt := range tests {
		items, err := catalog.Filter(ctx, tt.category)
		require.NoError(t, err)

		var got []int
		for _, item := range items {
			got = append(got, item.ID)
		}
		assert.Equal(t, tt.want, got, "category %q", tt.category)
	}
}

func TestCatalogSearch(t *testing.T) {
	ctx := context.Background()
	catalog := newCatalog(0)

	_, err := catalog.Search(ctx, "  ")
	assert.ErrorIs(t, err, entity.ErrValidation)

	items, err := catalog.Search(ctx, "DRILL")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].ID)
}

func TestCatalogLoadMore(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx := context.Background()
	catalog := newCatalog(10 * time.Millisecond)

	revealed := make(chan []entity.CatalogItem, 1)
	require.Equal(t, LoadStarted, catalog.LoadMore(ctx, func(items []entity.CatalogItem) { revealed <- items }))
	// Yuklash davomida ikkinchi chaqiruv rad etiladi
	assert.Equal(t, LoadInProgress, catalog.LoadMore(ctx, nil))

	catalog.Wait()
	select {
	case items := <-revealed:
		assert.Len(t, items, 2)
	default:
		t.Fatal("done callback was not called")
	}

	all, err := catalog.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 10)

	item, err := catalog.ContactOwner(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, 9, item.ID)

	assert.Equal(t, LoadExhausted, catalog.LoadMore(ctx, nil), "nothing left to load")
}

func TestCatalogLoadMoreCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx, cancel := context.WithCancel(context.Background())
	catalog := newCatalog(time.Hour)

	called := false
	require.Equal(t, LoadStarted, catalog.LoadMore(ctx, func([]entity.CatalogItem) { called = true }))
	cancel()
	catalog.Wait()
	assert.False(t, called)

	all, err := catalog.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 8)

	// Bekor qilingandan keyin qayta urinish mumkin
	retryCtx, retryCancel := context.WithCancel(context.Background())
	assert.Equal(t, LoadStarted, catalog.LoadMore(retryCtx, nil))
	retryCancel()
	catalog.Wait()
}

func TestCatalogLoadMoreKeepsExistingIDs(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx := context.Background()

	// Fayldan yuklangan katalogda 9-ID band
	repo := storage.NewMemoryCatalogRepository(
		entity.CatalogItem{ID: 1, Title: "Rake", Category: entity.CategoryTools},
		entity.CatalogItem{ID: 9, Title: "Garden Hose", Category: entity.CategoryOther},
	)
	catalog := NewCatalogUseCase(repo, storage.MoreListings(), time.Millisecond, nil)

	var revealed []entity.CatalogItem
	require.Equal(t, LoadStarted, catalog.LoadMore(ctx, func(items []entity.CatalogItem) { revealed = items }))
	catalog.Wait()

	require.Len(t, revealed, 1)
	assert.Equal(t, 10, revealed[0].ID)

	item, err := catalog.ContactOwner(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, "Garden Hose", item.Title)

	all, err := catalog.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCatalogWithoutDeferredListings(t *testing.T) {
	repo := storage.NewMemoryCatalogRepository(entity.CatalogItem{ID: 9, Title: "Garden Hose"})
	catalog := NewCatalogUseCase(repo, nil, time.Millisecond, nil)

	assert.Equal(t, LoadExhausted, catalog.LoadMore(context.Background(), nil))
}

func TestCatalogContactOwnerUnknown(t *testing.T) {
	catalog := newCatalog(0)
	_, err := catalog.ContactOwner(context.Background(), 404)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}
