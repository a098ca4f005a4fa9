package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/faizramdhannn/Bazzar-2026/internal/models"
	"github.com/faizramdhannn/Bazzar-2026/internal/sheets"
	"github.com/faizramdhannn/Bazzar-2026/internal/util"
)

// AppendOrder writes one row per order line to the order sheet. Order-level
// fields (timestamp, status, customer, discount, total, note) are populated
// only on the first row of the batch; the table is one physical row per line
// item with the metadata carried by that order's first row.
func (s *Store) AppendOrder(ctx context.Context, order *models.Order) error {
	now := order.CreatedAt
	if now.IsZero() {
		now = time.Now()
	}
	stamp := now.UTC().Format(time.RFC3339)

	rows := make([][]interface{}, 0, len(order.Lines))
	for i, line := range order.Lines {
		first := i == 0
		rows = append(rows, []interface{}{
			order.OrderID,
			headerField(first, stamp),
			headerField(first, order.Status),
			headerField(first, order.CustomerName),
			line.SKU,
			line.Name,
			line.Price,
			line.Quantity,
			line.Price * float64(line.Quantity),
			headerField(first, order.Discount),
			headerField(first, order.Total),
			headerField(first, order.Note),
			stamp,
		})
	}

	writeRange := fmt.Sprintf("%s!A:M", s.cfg.OrderSheet)
	return s.api.Append(ctx, s.cfg.SpreadsheetID, writeRange, rows)
}

func headerField(first bool, v interface{}) interface{} {
	if first {
		return v
	}
	return ""
}

// StockChange reports one item's quantity after a reduction.
type StockChange struct {
	Item        models.MasterItem
	NewQuantity int
}

// ReduceStock re-reads the catalog, floors each reduced quantity at zero and
// writes all new quantities in a single batched update. Lines whose SKU is no
// longer in the catalog are skipped.
func (s *Store) ReduceStock(ctx context.Context, lines []models.OrderLine) ([]StockChange, error) {
	items, err := s.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	var updates []sheets.CellUpdate
	var changes []StockChange
	for _, line := range lines {
		item := findBySKU(items, line.SKU)
		if item == nil || item.RowIndex == 0 {
			continue
		}

		newQty := item.Quantity - line.Quantity
		if newQty < 0 {
			newQty = 0
		}

		updates = append(updates, sheets.CellUpdate{
			Range: fmt.Sprintf("%s!E%d", s.cfg.MasterSheet, item.RowIndex),
			Value: newQty,
		})
		changes = append(changes, StockChange{Item: *item, NewQuantity: newQty})
	}

	if len(updates) == 0 {
		return changes, nil
	}

	if err := s.api.BatchUpdate(ctx, s.cfg.SpreadsheetID, updates); err != nil {
		return nil, err
	}
	util.StockReductionsTotal.Inc()
	return changes, nil
}

func findBySKU(items []models.MasterItem, sku string) *models.MasterItem {
	for i := range items {
		if strings.EqualFold(items[i].SKU, sku) {
			return &items[i]
		}
	}
	return nil
}
