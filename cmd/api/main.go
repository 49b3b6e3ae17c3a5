package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/kavehsh/shopping_system/internal/config"
	"github.com/kavehsh/shopping_system/internal/delivery/events"
	httpDelivery "github.com/kavehsh/shopping_system/internal/delivery/http"
	"github.com/kavehsh/shopping_system/internal/delivery/http/handler"
	"github.com/kavehsh/shopping_system/internal/pkg/logger"
	"github.com/kavehsh/shopping_system/internal/repository/memory"
	"github.com/kavehsh/shopping_system/internal/usecase/customer"
	"github.com/kavehsh/shopping_system/internal/usecase/dealer"
	"github.com/kavehsh/shopping_system/internal/usecase/product"
	"github.com/kavehsh/shopping_system/internal/usecase/purchase"

	_ "github.com/kavehsh/shopping_system/docs"
)

// @title Shopping System API
// @version 1.0
// @description In-memory shopping system managing customers, products, dealers and the purchases linking them.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

// @tag.name Customers
// @tag.description Customer management endpoints

// @tag.name Products
// @tag.description Product management endpoints

// @tag.name Dealers
// @tag.description Dealer management endpoints

// @tag.name Purchases
// @tag.description Purchase recording endpoints

// @tag.name Reports
// @tag.description Aggregation reports over purchase records

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(cfg.Env)
	appLogger.Info("Starting Shopping System API...")

	var publisher purchase.EventPublisher
	if cfg.NATS.URL != "" {
		appLogger.Info("Connecting to NATS...")
		natsPublisher, err := events.NewPublisher(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to create NATS publisher", err)
		}
		defer natsPublisher.Close()
		publisher = natsPublisher
	}

	store := memory.NewStore()

	customerService := customer.NewService(store, appLogger)
	productService := product.NewService(store, appLogger)
	dealerService := dealer.NewService(store, appLogger)
	purchaseService := purchase.NewService(store, publisher, cfg.NATS.Subject, appLogger)

	customerHandler := handler.NewCustomerHandler(customerService, appLogger)
	productHandler := handler.NewProductHandler(productService, appLogger)
	dealerHandler := handler.NewDealerHandler(dealerService, appLogger)
	purchaseHandler := handler.NewPurchaseHandler(purchaseService, appLogger)

	router := httpDelivery.NewRouter(customerHandler, productHandler, dealerHandler, purchaseHandler, cfg, appLogger)
	httpHandler := router.Setup()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      httpHandler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		appLogger.Infof("HTTP server listening on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("HTTP server failed", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", err)
	}

	appLogger.Info("Server stopped gracefully")
}
