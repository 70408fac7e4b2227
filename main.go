package main

import (
	"log"
	"os"

	"kasir/internal/cli"
	"kasir/internal/config"
	"kasir/internal/database"
	"kasir/internal/repositories"
	"kasir/internal/services"
	"kasir/pkg/images"
)

func main() {
	// --- Configuration ---
	cfg := config.Load()

	// --- Store ---
	// First contact: open the database file, create the schema and seed data
	// if needed, then verify the structure (destructive recovery on a
	// missing table).
	db, err := database.Setup(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Images folder is created on demand alongside the executable; it only
	// feeds the presentation layer.
	if err := images.EnsureDir(cfg.ImagesDir); err != nil {
		log.Printf("Warning: %v", err)
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	receiptRepo := repositories.NewGORMReceiptRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	productService := services.NewProductService(productRepo)
	checkoutService := services.NewCheckoutService(receiptRepo, productRepo)
	receiptService := services.NewReceiptService(receiptRepo)

	// --- Presentation ---
	root := cli.NewRootCmd(&cli.Deps{
		Auth:      authService,
		Products:  productService,
		Checkout:  checkoutService,
		Receipts:  receiptService,
		ImagesDir: cfg.ImagesDir,
	})
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
