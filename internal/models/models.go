package models

import "time"

// MasterItem is one row of the item master table.
type MasterItem struct {
	ID       string  `json:"id"`
	SKU      string  `json:"item_sku"`
	Name     string  `json:"item_name"`
	Price    float64 `json:"item_price"`
	Quantity int     `json:"item_quantity"`
	// RowIndex is the 1-based sheet row the item was read from,
	// used to address the quantity cell on stock reduction.
	RowIndex int `json:"-"`
}

// OrderLine is one (sku, quantity) entry within an order.
type OrderLine struct {
	SKU      string  `json:"sku"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order is a submitted cart, written once and never mutated.
type Order struct {
	OrderID      string      `json:"orderId"`
	CustomerName string      `json:"customerName"`
	Lines        []OrderLine `json:"items"`
	SubTotal     float64     `json:"subTotal"`
	Discount     float64     `json:"discount"`
	Total        float64     `json:"total"`
	Note         string      `json:"note"`
	Status       string      `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// Order statuses
const (
	OrderStatusPaid   = "paid"
	OrderStatusUnpaid = "unpaid"
)
