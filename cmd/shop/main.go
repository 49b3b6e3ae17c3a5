package main

import (
	"context"
	"log"
	"os"

	"github.com/kavehsh/shopping_system/internal/config"
	"github.com/kavehsh/shopping_system/internal/delivery/cli"
	"github.com/kavehsh/shopping_system/internal/pkg/logger"
	"github.com/kavehsh/shopping_system/internal/repository/memory"
	"github.com/kavehsh/shopping_system/internal/usecase/customer"
	"github.com/kavehsh/shopping_system/internal/usecase/dealer"
	"github.com/kavehsh/shopping_system/internal/usecase/product"
	"github.com/kavehsh/shopping_system/internal/usecase/purchase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Keep service logs out of the interactive session
	appLogger := logger.New("test")

	store := memory.NewStore()

	customerService := customer.NewService(store, appLogger)
	productService := product.NewService(store, appLogger)
	dealerService := dealer.NewService(store, appLogger)
	purchaseService := purchase.NewService(store, nil, cfg.NATS.Subject, appLogger)

	menu := cli.New(customerService, productService, dealerService, purchaseService, os.Stdin, os.Stdout)
	if err := menu.Run(context.Background()); err != nil {
		log.Fatalf("Menu failed: %v", err)
	}
}
