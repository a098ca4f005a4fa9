package broker

import (
	"context"

	"github.com/faizramdhannn/Bazzar-2026/internal/models"
)

// EventPublisher publishes committed-order events for downstream consumers
// (dashboards, restock alerts). A nil publisher drops everything, so callers
// never need to branch on whether eventing is configured.
type EventPublisher struct {
	producer *Producer
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher(producer *Producer) *EventPublisher {
	return &EventPublisher{producer: producer}
}

// PublishOrderCommitted publishes an OrderCommitted event keyed by order ID
func (ep *EventPublisher) PublishOrderCommitted(ctx context.Context, event *models.OrderCommittedEvent) error {
	if ep == nil {
		return nil
	}
	return ep.producer.PublishEvent(ctx, event.OrderID, event)
}

// PublishStockDepleted publishes a StockDepleted event keyed by SKU
func (ep *EventPublisher) PublishStockDepleted(ctx context.Context, event *models.StockDepletedEvent) error {
	if ep == nil {
		return nil
	}
	return ep.producer.PublishEvent(ctx, event.SKU, event)
}
