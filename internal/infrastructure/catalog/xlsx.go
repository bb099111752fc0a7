package catalog

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/skinlens/backend/internal/domain"
)

// Column names recognised in the header row of an XLSX catalog
const (
	colID          = "id"
	colBrand       = "brand"
	colName        = "name"
	colCategory    = "category"
	colSkinTypes   = "skin_types"
	colPrice       = "price"
	colIngredients = "ingredients"
	colSize        = "size"
	colDescription = "description"
	colUsage       = "usage"
)

// headerAliases accepts common spreadsheet spellings of the column names
var headerAliases = map[string]string{
	"skin types":   colSkinTypes,
	"skintypes":    colSkinTypes,
	"skin type":    colSkinTypes,
	"product id":   colID,
	"product":      colName,
	"product name": colName,
}

// LoadXLSX imports products from the first sheet of a workbook. The first
// row is a header naming the columns; blank rows are skipped.
func LoadXLSX(r io.Reader, source string) (*Store, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: open workbook: %v", domain.ErrInvalidCatalog, source, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %s: workbook has no sheets", domain.ErrInvalidCatalog, source)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %s: read rows: %v", domain.ErrInvalidCatalog, source, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: %s: no product rows", domain.ErrInvalidCatalog, source)
	}

	columns := mapColumns(rows[0])
	for _, required := range []string{colID, colCategory, colSkinTypes} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: %s: missing %q column", domain.ErrInvalidCatalog, source, required)
		}
	}

	products := make([]domain.Product, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}

		cell := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		price, err := parsePrice(cell(colPrice))
		if err != nil {
			// Row numbers are 1-based and the header is row 1
			return nil, fmt.Errorf("%w: %s: row %d: invalid price %q", domain.ErrInvalidCatalog, source, i+2, cell(colPrice))
		}

		products = append(products, domain.Product{
			ID:          cell(colID),
			Brand:       cell(colBrand),
			Name:        cell(colName),
			Category:    cell(colCategory),
			SkinTypes:   splitSkinTypes(cell(colSkinTypes)),
			Price:       price,
			Ingredients: cell(colIngredients),
			Size:        cell(colSize),
			Description: cell(colDescription),
			Usage:       cell(colUsage),
		})
	}

	return New(products, source)
}

// mapColumns maps normalized header names to column indexes
func mapColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for idx, raw := range header {
		name := strings.ToLower(strings.TrimSpace(raw))
		if alias, ok := headerAliases[name]; ok {
			name = alias
		}
		if _, seen := columns[name]; !seen && name != "" {
			columns[name] = idx
		}
	}
	return columns
}

// splitSkinTypes splits a cell like "oily, combination" or "dry;sensitive"
func splitSkinTypes(cell string) []string {
	fields := strings.FieldsFunc(cell, func(r rune) bool {
		return r == ',' || r == ';' || r == '|'
	})
	tags := make([]string, 0, len(fields))
	for _, field := range fields {
		if field = strings.TrimSpace(field); field != "" {
			tags = append(tags, field)
		}
	}
	return tags
}

// parsePrice accepts plain numbers and values with a leading currency
// symbol or thousands separators. An empty cell is a zero price.
func parsePrice(cell string) (float64, error) {
	cleaned := strings.TrimLeft(cell, "$€£¥ ")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return 0, nil
	}
	return strconv.ParseFloat(cleaned, 64)
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
