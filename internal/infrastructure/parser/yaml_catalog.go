package parser

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/yourusername/ecoswap-market/internal/domain/entity"
	"github.com/yourusername/ecoswap-market/internal/domain/repository"
	"github.com/yourusername/ecoswap-market/internal/platform/logger"
	"gopkg.in/yaml.v3"
)

type yamlCatalogFile struct {
	Items []entity.CatalogItem `yaml:"items"`
}

type yamlParser struct {
	log *logger.Logger
}

// NewYAMLParser yangi YAML katalog parser yaratish
func NewYAMLParser(log *logger.Logger) repository.CatalogParser {
	if log == nil {
		log = logger.Nop()
	}
	return &yamlParser{log: log}
}

// ParseCatalog YAML fayldan e'lonlarni o'qish
func (y *yamlParser) ParseCatalog(ctx context.Context, filePath string) ([]entity.CatalogItem, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read yaml file: %w", err)
	}
	return y.ParseCatalogFromBytes(ctx, data, filePath)
}

// ParseCatalogFromBytes byte array dan parse qilish
func (y *yamlParser) ParseCatalogFromBytes(ctx context.Context, data []byte, filename string) ([]entity.CatalogItem, error) {
	var doc yamlCatalogFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filename, err)
	}

	items := make([]entity.CatalogItem, 0, len(doc.Items))
	seen := make(map[int]struct{}, len(doc.Items))
	for i, item := range doc.Items {
		item.Title = strings.TrimSpace(item.Title)
		if item.ID <= 0 || item.Title == "" {
			return nil, fmt.Errorf("%s: item %d needs a positive id and a title", filename, i+1)
		}
		if _, dup := seen[item.ID]; dup {
			return nil, fmt.Errorf("%s: duplicate id %d", filename, item.ID)
		}
		if category, ok := entity.ParseCategory(string(item.Category)); ok {
			item.Category = category
		} else {
			item.Category = detectCategory(item.Title)
		}
		applyDefaults(&item)

		seen[item.ID] = struct{}{}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("%s: no listings", filename)
	}

	y.log.Info("catalog parsed", "file", filename, "items", len(items))
	return items, nil
}
