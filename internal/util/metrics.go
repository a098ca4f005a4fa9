package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCommittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_committed_total",
		Help: "Total number of orders written to the order sheet",
	})

	OrdersRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_rejected_total",
		Help: "Total number of rejected order submissions",
	}, []string{"reason"})

	StockReductionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stock_reductions_total",
		Help: "Total number of stock reduction batch updates",
	})

	StockDepletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stock_depleted_total",
		Help: "Total number of items driven to zero quantity by an order",
	})

	OrderIDsGeneratedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "order_ids_generated_total",
		Help: "Total number of order identifiers generated",
	})

	SheetRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sheet_request_duration_seconds",
		Help:    "Latency of spreadsheet API round trips",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
