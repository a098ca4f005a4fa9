package service

import (
	"context"
	"strings"

	"github.com/faizramdhannn/Bazzar-2026/internal/models"
	"github.com/faizramdhannn/Bazzar-2026/internal/store"
	"github.com/faizramdhannn/Bazzar-2026/internal/util"
)

// StockValidator checks requested quantities against the live catalog.
type StockValidator struct {
	store *store.Store
}

// NewStockValidator creates a new stock validator
func NewStockValidator(store *store.Store) *StockValidator {
	return &StockValidator{store: store}
}

// Validate checks each line in input order against one catalog read and
// stops at the first violation. Each line is judged against the same
// snapshot; duplicate-SKU lines are not summed.
func (v *StockValidator) Validate(ctx context.Context, lines []models.OrderLine) error {
	ctx, span := util.StartSpan(ctx, "StockValidator.Validate")
	defer span.End()

	items, err := v.store.ListItems(ctx)
	if err != nil {
		return err
	}

	for _, line := range lines {
		item := matchSKU(items, line.SKU)
		if item == nil {
			return rejectf("SKU %s not found", line.SKU)
		}
		if item.Quantity < line.Quantity {
			return rejectf("insufficient stock for %s (remaining: %d)", item.Name, item.Quantity)
		}
	}
	return nil
}

func matchSKU(items []models.MasterItem, sku string) *models.MasterItem {
	for i := range items {
		if strings.EqualFold(items[i].SKU, sku) {
			return &items[i]
		}
	}
	return nil
}
