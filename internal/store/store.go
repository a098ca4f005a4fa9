package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/faizramdhannn/Bazzar-2026/config"
	"github.com/faizramdhannn/Bazzar-2026/internal/models"
	"github.com/faizramdhannn/Bazzar-2026/internal/sheets"
)

// Store adapts the spreadsheet values API to the catalog and order tables.
// Every read goes to the live sheet; no snapshot is held server-side.
type Store struct {
	api sheets.ValuesAPI
	cfg config.SheetsConfig
}

// NewStore creates a new table store
func NewStore(api sheets.ValuesAPI, cfg config.SheetsConfig) *Store {
	return &Store{api: api, cfg: cfg}
}

// ListItems reads the full item master, starting below the header row.
// Missing or unparseable price and quantity cells map to zero.
func (s *Store) ListItems(ctx context.Context) ([]models.MasterItem, error) {
	readRange := fmt.Sprintf("%s!A2:E", s.cfg.MasterSheet)
	rows, err := s.api.Get(ctx, s.cfg.SpreadsheetID, readRange)
	if err != nil {
		return nil, err
	}

	items := make([]models.MasterItem, 0, len(rows))
	for i, row := range rows {
		items = append(items, models.MasterItem{
			ID:       cell(row, 0),
			SKU:      cell(row, 1),
			Name:     cell(row, 2),
			Price:    parsePrice(cell(row, 3)),
			Quantity: parseQuantity(cell(row, 4)),
			RowIndex: i + 2,
		})
	}
	return items, nil
}

// FindBySKU returns the item matching sku case-insensitively, or nil.
func (s *Store) FindBySKU(ctx context.Context, sku string) (*models.MasterItem, error) {
	items, err := s.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if strings.EqualFold(items[i].SKU, sku) {
			return &items[i], nil
		}
	}
	return nil, nil
}

// LastOrderID scans the order sheet's identifier column and returns the last
// unique identifier, preserving first-seen order when deduplicating. Returns
// the empty string when the sheet holds no identifiers beyond the header.
func (s *Store) LastOrderID(ctx context.Context) (string, error) {
	readRange := fmt.Sprintf("%s!A:A", s.cfg.OrderSheet)
	rows, err := s.api.Get(ctx, s.cfg.SpreadsheetID, readRange)
	if err != nil {
		return "", err
	}

	if len(rows) <= 1 {
		return "", nil
	}

	seen := make(map[string]bool)
	var unique []string
	for _, row := range rows[1:] {
		id := cell(row, 0)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}

	if len(unique) == 0 {
		return "", nil
	}
	return unique[len(unique)-1], nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func parsePrice(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func parseQuantity(raw string) int {
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
