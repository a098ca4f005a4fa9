package models

import "time"

// Event types
const (
	EventTypeOrderCommitted = "ORDER_COMMITTED"
	EventTypeStockDepleted  = "STOCK_DEPLETED"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderCommittedEvent published after an order is appended and stock reduced
type OrderCommittedEvent struct {
	BaseEvent
	OrderID      string      `json:"order_id"`
	CustomerName string      `json:"customer_name"`
	Status       string      `json:"status"`
	SubTotal     float64     `json:"sub_total"`
	Discount     float64     `json:"discount"`
	Total        float64     `json:"total"`
	Lines        []OrderLine `json:"lines"`
}

// StockDepletedEvent published when an order drives an item's quantity to zero
type StockDepletedEvent struct {
	BaseEvent
	SKU     string `json:"sku"`
	Name    string `json:"name"`
	OrderID string `json:"order_id"`
}
