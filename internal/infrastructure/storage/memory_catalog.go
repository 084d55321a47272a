package storage

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/yourusername/ecoswap-market/internal/domain/entity"
	"github.com/yourusername/ecoswap-market/internal/domain/repository"
)

type memoryCatalogRepository struct {
	mu    sync.RWMutex
	items map[int]entity.CatalogItem // key: e'lon ID
}

// NewMemoryCatalogRepository in-memory katalog repository yaratish
func NewMemoryCatalogRepository(items ...entity.CatalogItem) repository.CatalogRepository {
	r := &memoryCatalogRepository{
		items: make(map[int]entity.CatalogItem, len(items)),
	}
	for _, item := range items {
		r.items[item.ID] = item
	}
	return r
}

// GetByID ID bo'yicha e'lonni olish
func (m *memoryCatalogRepository) GetByID(ctx context.Context, id int) (*entity.CatalogItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	item, exists := m.items[id]
	if !exists {
		return nil, fmt.Errorf("%w: catalog item %d", entity.ErrNotFound, id)
	}
	return &item, nil
}

// GetAll barcha e'lonlarni olish
func (m *memoryCatalogRepository) GetAll(ctx context.Context) ([]entity.CatalogItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]entity.CatalogItem, 0, len(m.items))
	for _, item := range m.items {
		items = append(items, item)
	}
	sortByID(items)

	return items, nil
}

// GetByCategory kategoriya bo'yicha e'lonlarni olish
func (m *memoryCatalogRepository) GetByCategory(ctx context.Context, category entity.Category) ([]entity.CatalogItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var results []entity.CatalogItem
	for _, item := range m.items {
		if item.Category == category {
			results = append(results, item)
		}
	}
	sortByID(results)

	return results, nil
}

// Search e'lon qidirish
func (m *memoryCatalogRepository) Search(ctx context.Context, query string) ([]entity.CatalogItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, nil
	}

	var results []entity.CatalogItem
	for _, item := range m.items {
		// Sarlavha, tavsif va kategoriyada qidirish
		if strings.Contains(strings.ToLower(item.Title), query) ||
			strings.Contains(strings.ToLower(item.Description), query) ||
			strings.Contains(strings.ToLower(string(item.Category)), query) {
			results = append(results, item)
		}
	}
	sortByID(results)

	return results, nil
}

// SaveMany ko'p e'lonlarni saqlash
func (m *memoryCatalogRepository) SaveMany(ctx context.Context, items []entity.CatalogItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, item := range items {
		m.items[item.ID] = item
	}
	return nil
}

// Replace butun katalogni yangilash
func (m *memoryCatalogRepository) Replace(ctx context.Context, items []entity.CatalogItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Eski e'lonlarni o'chirish
	m.items = make(map[int]entity.CatalogItem, len(items))
	for _, item := range items {
		m.items[item.ID] = item
	}
	return nil
}

func sortByID(items []entity.CatalogItem) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].ID < items[j].ID
	})
}
