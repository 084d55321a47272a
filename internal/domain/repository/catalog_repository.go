package repository

import (
	"context"

	"github.com/yourusername/ecoswap-market/internal/domain/entity"
)

// CatalogRepository e'lonlar katalogi bilan ishlash uchun interface
type CatalogRepository interface {
	// GetByID ID bo'yicha e'lonni olish
	GetByID(ctx context.Context, id int) (*entity.CatalogItem, error)

	// GetAll barcha e'lonlarni ID tartibida olish
	GetAll(ctx context.Context) ([]entity.CatalogItem, error)

	// GetByCategory kategoriya bo'yicha e'lonlarni olish
	GetByCategory(ctx context.Context, category entity.Category) ([]entity.CatalogItem, error)

	// Search sarlavha, tavsif va kategoriya bo'yicha qidirish
	Search(ctx context.Context, query string) ([]entity.CatalogItem, error)

	// SaveMany e'lonlarni qo'shish yoki yangilash
	SaveMany(ctx context.Context, items []entity.CatalogItem) error

	// Replace butun katalogni almashtirish
	Replace(ctx context.Context, items []entity.CatalogItem) error
}
