package parser

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"github.com/yourusername/ecoswap-market/internal/domain/entity"
	"github.com/yourusername/ecoswap-market/internal/domain/repository"
	"github.com/yourusername/ecoswap-market/internal/platform/logger"
)

// Ustunlar tartibi: header bo'lmasa ham, eksportda ham shu tartib ishlatiladi
var catalogColumns = []string{"id", "title", "category", "description", "price", "location", "icon", "badge"}

const catalogSheet = "Catalog"

type excelParser struct {
	log *logger.Logger
}

// NewExcelParser yangi Excel katalog parser yaratish
func NewExcelParser(log *logger.Logger) repository.CatalogParser {
	if log == nil {
		log = logger.Nop()
	}
	return &excelParser{log: log}
}

// ParseCatalog Excel fayldan e'lonlarni o'qish
func (e *excelParser) ParseCatalog(ctx context.Context, filePath string) ([]entity.CatalogItem, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	return e.parseExcelFile(f)
}

// ParseCatalogFromBytes byte array dan parse qilish
func (e *excelParser) ParseCatalogFromBytes(ctx context.Context, data []byte, filename string) ([]entity.CatalogItem, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open excel from bytes: %w", err)
	}
	defer f.Close()

	return e.parseExcelFile(f)
}

// parseExcelFile birinchi sheetdagi jadvalni o'qish
func (e *excelParser) parseExcelFile(f *excelize.File) ([]entity.CatalogItem, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("excel file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("excel file is empty")
	}

	// Header qatori borligini tekshirish: birinchi katak raqam bo'lsa, header yo'q
	hasHeader := true
	startRow := 1
	if len(rows[0]) > 0 {
		if _, err := strconv.Atoi(strings.TrimSpace(rows[0][0])); err == nil {
			hasHeader = false
			startRow = 0
		}
	}

	var columnMap map[string]int
	if hasHeader {
		columnMap = mapColumns(rows[0])
	} else {
		columnMap = make(map[string]int, len(catalogColumns))
		for i, name := range catalogColumns {
			columnMap[name] = i
		}
	}
	e.log.Debug("catalog column mapping", "header", hasHeader, "columns", columnMap)

	if _, ok := columnMap["title"]; !ok {
		return nil, fmt.Errorf("excel file has no title column")
	}

	cell := func(row []string, name string) string {
		idx, ok := columnMap[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var items []entity.CatalogItem
	seen := make(map[int]struct{})

	for i := startRow; i < len(rows); i++ {
		row := rows[i]

		// Bo'sh qatorlarni skip qilish
		if len(row) == 0 || isEmptyRow(row) {
			continue
		}

		title := cell(row, "title")
		if title == "" {
			e.log.Warn("catalog row without title skipped", "row", i+1)
			continue
		}

		id := i + 1 // ID bo'lmasa jadvaldagi qator raqami
		if raw := cell(row, "id"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				e.log.Warn("catalog row with invalid id skipped", "row", i+1, "id", raw)
				continue
			}
			id = parsed
		}
		if _, dup := seen[id]; dup {
			e.log.Warn("duplicate catalog id skipped", "row", i+1, "id", id)
			continue
		}

		item := entity.CatalogItem{
			ID:          id,
			Title:       title,
			Description: cell(row, "description"),
			Price:       cell(row, "price"),
			Location:    cell(row, "location"),
			Icon:        cell(row, "icon"),
			Badge:       cell(row, "badge"),
		}

		// Kategoriya - Exceldan yoki sarlavhaga qarab aniqlaymiz
		if category, ok := entity.ParseCategory(cell(row, "category")); ok {
			item.Category = category
		} else {
			item.Category = detectCategory(title)
		}
		applyDefaults(&item)

		seen[id] = struct{}{}
		items = append(items, item)
	}

	e.log.Info("catalog parsed", "items", len(items))

	if len(items) == 0 {
		return nil, fmt.Errorf("no valid listings found in excel file (parsed %d rows)", len(rows)-startRow)
	}

	return items, nil
}

// ExportCatalog katalogni xlsx formatida yozish (ParseCatalog qayta o'qiy oladi)
func ExportCatalog(w io.Writer, items []entity.CatalogItem) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), catalogSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(catalogColumns))
	for i, name := range catalogColumns {
		header[i] = name
	}
	if err := f.SetSheetRow(catalogSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, item := range items {
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			item.ID, item.Title, string(item.Category), item.Description,
			item.Price, item.Location, item.Icon, item.Badge,
		}
		if err := f.SetSheetRow(catalogSheet, axis, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write xlsx: %w", err)
	}
	return nil
}

// isEmptyRow qator bo'sh yoki yo'qligini tekshirish
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// mapColumns header qatoridan column mapping yaratish
func mapColumns(header []string) map[string]int {
	columnMap := make(map[string]int)

	for i, col := range header {
		colName := strings.ToLower(strings.TrimSpace(col))

		switch {
		case colName == "id" || colName == "#":
			columnMap["id"] = i
		case contains(colName, "title", "name", "nom", "sarlavha"):
			columnMap["title"] = i
		case contains(colName, "category", "kategoriya", "type"):
			columnMap["category"] = i
		case contains(colName, "description", "tavsif", "details"):
			columnMap["description"] = i
		case contains(colName, "price", "narx", "terms"):
			columnMap["price"] = i
		case contains(colName, "location", "manzil", "city"):
			columnMap["location"] = i
		case contains(colName, "icon"):
			columnMap["icon"] = i
		case contains(colName, "badge", "belgi", "label"):
			columnMap["badge"] = i
		}
	}

	return columnMap
}

// contains tekshirish uchun helper
func contains(str string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(str, keyword) {
			return true
		}
	}
	return false
}

// detectCategory sarlavhadan kategoriyani aniqlash
func detectCategory(title string) entity.Category {
	t := strings.ToLower(title)

	switch {
	case contains(t, "drill", "hammer", "saw", "wrench", "tool", "rake", "shovel"):
		return entity.CategoryTools
	case contains(t, "book", "novel", "cookbook", "comic"):
		return entity.CategoryBooks
	case contains(t, "shirt", "jacket", "dress", "coat", "jeans", "shoes"):
		return entity.CategoryClothes
	case contains(t, "phone", "laptop", "galaxy", "iphone", "tablet", "camera", "tv"):
		return entity.CategoryElectronics
	default:
		return entity.CategoryOther
	}
}

var defaultIcons = map[entity.Category]string{
	entity.CategoryTools:       "fas fa-tools",
	entity.CategoryBooks:       "fas fa-book",
	entity.CategoryClothes:     "fas fa-tshirt",
	entity.CategoryElectronics: "fas fa-laptop",
	entity.CategoryOther:       "fas fa-box",
}

func applyDefaults(item *entity.CatalogItem) {
	if item.Price == "" {
		item.Price = "For Exchange"
	}
	if item.Icon == "" {
		item.Icon = defaultIcons[item.Category]
	}
}
