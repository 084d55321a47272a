package parser

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yourusername/ecoswap-market/internal/domain/entity"
	"github.com/yourusername/ecoswap-market/internal/domain/repository"
	"github.com/yourusername/ecoswap-market/internal/platform/logger"
)

type fileParser struct {
	excel repository.CatalogParser
	yaml  repository.CatalogParser
}

// NewFileParser fayl kengaytmasiga qarab xlsx yoki yaml parserni tanlaydi
func NewFileParser(log *logger.Logger) repository.CatalogParser {
	return &fileParser{
		excel: NewExcelParser(log),
		yaml:  NewYAMLParser(log),
	}
}

func (p *fileParser) pick(filename string) (repository.CatalogParser, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return p.excel, nil
	case ".yaml", ".yml":
		return p.yaml, nil
	default:
		return nil, fmt.Errorf("unsupported catalog file %q (want .xlsx or .yaml)", filename)
	}
}

// ParseCatalog fayldan o'qish
func (p *fileParser) ParseCatalog(ctx context.Context, filePath string) ([]entity.CatalogItem, error) {
	parser, err := p.pick(filePath)
	if err != nil {
		return nil, err
	}
	return parser.ParseCatalog(ctx, filePath)
}

// ParseCatalogFromBytes byte array dan o'qish
func (p *fileParser) ParseCatalogFromBytes(ctx context.Context, data []byte, filename string) ([]entity.CatalogItem, error) {
	parser, err := p.pick(filename)
	if err != nil {
		return nil, err
	}
	return parser.ParseCatalogFromBytes(ctx, data, filename)
}
