package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/faizramdhannn/Bazzar-2026/internal/broker"
	"github.com/faizramdhannn/Bazzar-2026/internal/models"
	"github.com/faizramdhannn/Bazzar-2026/internal/store"
	"github.com/faizramdhannn/Bazzar-2026/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderService orchestrates order submission: input validation, stock
// validation, row append and stock reduction. The three backend steps are
// independent network calls with no transaction across them; a failure after
// the append leaves the order rows persisted.
type OrderService struct {
	store     *store.Store
	validator *StockValidator
	events    *broker.EventPublisher
	prefix    string
	idPattern *regexp.Regexp
	logger    *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(
	store *store.Store,
	validator *StockValidator,
	events *broker.EventPublisher,
	orderIDPrefix string,
) *OrderService {
	return &OrderService{
		store:     store,
		validator: validator,
		events:    events,
		prefix:    orderIDPrefix,
		idPattern: regexp.MustCompile(regexp.QuoteMeta(orderIDPrefix) + `-(\d+)`),
		logger:    util.GetLogger(),
	}
}

// SubmitOrderRequest is the POST /order payload.
type SubmitOrderRequest struct {
	OrderID      string             `json:"orderId"`
	CustomerName string             `json:"customerName"`
	Items        []models.OrderLine `json:"items"`
	SubTotal     float64            `json:"subTotal"`
	Discount     float64            `json:"discount"`
	Total        float64            `json:"total"`
	Note         string             `json:"note"`
	Status       string             `json:"status"`
}

// NextOrderID derives the next identifier from the last one stored: numeric
// suffix of the last unique identifier plus one, zero-padded to four digits.
// An empty order table yields the seed identifier; a last identifier that
// does not match the pattern counts as suffix zero.
func (s *OrderService) NextOrderID(ctx context.Context) (string, error) {
	ctx, span := util.StartSpan(ctx, "OrderService.NextOrderID")
	defer span.End()

	last, err := s.store.LastOrderID(ctx)
	if err != nil {
		return "", err
	}

	util.OrderIDsGeneratedTotal.Inc()

	if last == "" {
		return fmt.Sprintf("%s-0000", s.prefix), nil
	}

	num := 1
	if m := s.idPattern.FindStringSubmatch(last); m != nil {
		n, _ := strconv.Atoi(m[1])
		num = n + 1
	}
	return fmt.Sprintf("%s-%04d", s.prefix, num), nil
}

// SubmitOrder validates and commits one order.
func (s *OrderService) SubmitOrder(ctx context.Context, req *SubmitOrderRequest) error {
	ctx, span := util.StartSpan(ctx, "OrderService.SubmitOrder")
	defer span.End()

	if err := validateInput(req); err != nil {
		util.OrdersRejectedTotal.WithLabelValues("input").Inc()
		return err
	}

	if req.Status == "" {
		req.Status = models.OrderStatusUnpaid
	}

	if err := s.validator.Validate(ctx, req.Items); err != nil {
		if _, ok := err.(*Rejection); ok {
			util.OrdersRejectedTotal.WithLabelValues("stock").Inc()
			s.logger.Info("Order rejected",
				zap.String("order_id", req.OrderID),
				zap.String("reason", err.Error()))
		}
		return err
	}

	order := &models.Order{
		OrderID:      req.OrderID,
		CustomerName: req.CustomerName,
		Lines:        req.Items,
		SubTotal:     req.SubTotal,
		Discount:     req.Discount,
		Total:        req.Total,
		Note:         req.Note,
		Status:       req.Status,
		CreatedAt:    time.Now(),
	}

	if err := s.store.AppendOrder(ctx, order); err != nil {
		util.OrdersRejectedTotal.WithLabelValues("backend").Inc()
		return fmt.Errorf("failed to append order: %w", err)
	}

	changes, err := s.store.ReduceStock(ctx, order.Lines)
	if err != nil {
		// The order rows are already persisted at this point; there is no
		// compensating rollback, the failure just propagates.
		return fmt.Errorf("failed to reduce stock: %w", err)
	}

	util.OrdersCommittedTotal.Inc()
	s.logger.Info("Order committed",
		zap.String("order_id", order.OrderID),
		zap.String("customer", order.CustomerName),
		zap.Int("lines", len(order.Lines)),
		zap.Float64("total", order.Total))

	s.publishCommitted(ctx, order, changes)
	return nil
}

func validateInput(req *SubmitOrderRequest) error {
	var errs []string
	if req.OrderID == "" {
		errs = append(errs, "order ID is empty")
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		errs = append(errs, "customer name is empty")
	}
	if len(req.Items) == 0 {
		errs = append(errs, "item list is empty")
	}
	if len(errs) > 0 {
		return &Rejection{Message: strings.Join(errs, ", ")}
	}
	return nil
}

func (s *OrderService) publishCommitted(ctx context.Context, order *models.Order, changes []store.StockChange) {
	event := &models.OrderCommittedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeOrderCommitted,
			Timestamp: time.Now(),
		},
		OrderID:      order.OrderID,
		CustomerName: order.CustomerName,
		Status:       order.Status,
		SubTotal:     order.SubTotal,
		Discount:     order.Discount,
		Total:        order.Total,
		Lines:        order.Lines,
	}
	if err := s.events.PublishOrderCommitted(ctx, event); err != nil {
		s.logger.Error("Failed to publish OrderCommitted event", zap.Error(err))
	}

	for _, change := range changes {
		if change.NewQuantity > 0 {
			continue
		}
		util.StockDepletedTotal.Inc()
		depleted := &models.StockDepletedEvent{
			BaseEvent: models.BaseEvent{
				EventID:   uuid.New().String(),
				EventType: models.EventTypeStockDepleted,
				Timestamp: time.Now(),
			},
			SKU:     change.Item.SKU,
			Name:    change.Item.Name,
			OrderID: order.OrderID,
		}
		if err := s.events.PublishStockDepleted(ctx, depleted); err != nil {
			s.logger.Error("Failed to publish StockDepleted event", zap.Error(err))
		}
	}
}
