package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/faizramdhannn/Bazzar-2026/config"
	"github.com/faizramdhannn/Bazzar-2026/internal/api"
	"github.com/faizramdhannn/Bazzar-2026/internal/broker"
	"github.com/faizramdhannn/Bazzar-2026/internal/service"
	"github.com/faizramdhannn/Bazzar-2026/internal/sheets"
	"github.com/faizramdhannn/Bazzar-2026/internal/store"
	"github.com/faizramdhannn/Bazzar-2026/internal/util"

	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()

	if err := util.InitLogger(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	logger := util.GetLogger()
	logger.Info("Starting bazzar POS server")

	tp, err := util.InitTracer("bazzar-pos", cfg.Observ.JaegerEndpoint)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down tracer: %v", err)
		}
	}()

	if cfg.Sheets.SpreadsheetID == "" {
		log.Fatal("GOOGLE_SPREADSHEET_ID must be set")
	}

	sheetsClient, err := sheets.NewClient(context.Background(), cfg.Sheets)
	if err != nil {
		log.Fatalf("Failed to create sheets client: %v", err)
	}
	log.Println("Sheets client initialized")

	var eventPublisher *broker.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		producer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.TopicOrder)
		defer producer.Close()
		eventPublisher = broker.NewEventPublisher(producer)
		log.Println("Kafka producer initialized")
	}

	tableStore := store.NewStore(sheetsClient, cfg.Sheets)
	stockValidator := service.NewStockValidator(tableStore)
	orderService := service.NewOrderService(tableStore, stockValidator, eventPublisher, cfg.Sheets.OrderIDPrefix)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	handler := api.NewHandler(tableStore, orderService)
	handler.SetupRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting HTTP server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
