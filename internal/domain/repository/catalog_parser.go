package repository

import (
	"context"

	"github.com/yourusername/ecoswap-market/internal/domain/entity"
)

// CatalogParser katalog fayllarini parse qilish uchun interface
type CatalogParser interface {
	// ParseCatalog fayldan e'lonlarni o'qish
	ParseCatalog(ctx context.Context, filePath string) ([]entity.CatalogItem, error)

	// ParseCatalogFromBytes byte array dan parse qilish
	ParseCatalogFromBytes(ctx context.Context, data []byte, filename string) ([]entity.CatalogItem, error)
}
