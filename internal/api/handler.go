package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/faizramdhannn/Bazzar-2026/internal/service"
	"github.com/faizramdhannn/Bazzar-2026/internal/store"
	"github.com/faizramdhannn/Bazzar-2026/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler contains HTTP handlers
type Handler struct {
	store  *store.Store
	orders *service.OrderService
}

// NewHandler creates a new HTTP handler
func NewHandler(store *store.Store, orders *service.OrderService) *Handler {
	return &Handler{
		store:  store,
		orders: orders,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/master", h.getMaster)
	router.GET("/order", h.nextOrderID)
	router.POST("/order", h.submitOrder)
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck handles readiness check requests
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

// getMaster returns the full catalog, or one item when ?sku= is given
func (h *Handler) getMaster(c *gin.Context) {
	ctx := c.Request.Context()

	if sku := c.Query("sku"); sku != "" {
		item, err := h.store.FindBySKU(ctx, sku)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Failed to fetch item",
			})
			return
		}
		if item == nil {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Item not found",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "item": item})
		return
	}

	items, err := h.store.ListItems(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch items",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "items": items})
}

// nextOrderID returns the next order identifier
func (h *Handler) nextOrderID(c *gin.Context) {
	orderID, err := h.orders.NextOrderID(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to generate order ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "orderId": orderID})
}

// submitOrder commits a cart as an order
func (h *Handler) submitOrder(c *gin.Context) {
	var req service.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
		})
		return
	}

	if err := h.orders.SubmitOrder(c.Request.Context(), &req); err != nil {
		var rej *service.Rejection
		if errors.As(err, &rej) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": rej.Message,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to save order",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order saved",
	})
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
