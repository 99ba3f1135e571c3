package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	httpapi "debitit-backend/internal/api/http"
	"debitit-backend/internal/config"
	"debitit-backend/internal/logger"
	"debitit-backend/internal/repository/postgres"
	"debitit-backend/internal/security"
	"debitit-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Debitit Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	logger.Debug("Connecting to database...", "connection_string", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database))
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret)

	// Initialize Services
	postingSvc := service.NewPostingService(
		store.AtomicWriter,
		store.LedgerRepository,
		store.CreditorRepository,
		store.CustomerRepository,
		store.ProductRepository,
		store.PurchaseRepository,
		store.PurchaseReturnRepository,
		store.SaleRepository,
		store.SalesReturnRepository,
		store.AssetRepository,
		store.LiabilityRepository,
		store.ExpenseCategoryRepository,
	)
	ledgerSvc := service.NewLedgerService(store.LedgerRepository)
	creditorSvc := service.NewCreditorService(store.CreditorRepository)
	customerSvc := service.NewCustomerService(store.CustomerRepository)
	productSvc := service.NewProductService(store.ProductRepository)
	categorySvc := service.NewExpenseCategoryService(store.ExpenseCategoryRepository)
	statementSvc := service.NewStatementService(
		store.PurchaseRepository,
		store.PurchaseReturnRepository,
		store.SaleRepository,
		store.SalesReturnRepository,
		store.AssetRepository,
		store.LiabilityRepository,
		store.ExpenseRepository,
		store.DrawingRepository,
	)

	// Initialize Router
	router := httpapi.NewRouter(httpapi.RouterDeps{
		TokenManager: tokenManager,
		PostingSvc:   postingSvc,
		LedgerSvc:    ledgerSvc,
		CreditorSvc:  creditorSvc,
		CustomerSvc:  customerSvc,
		ProductSvc:   productSvc,
		CategorySvc:  categorySvc,
		StatementSvc: statementSvc,
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server failed", "error", err)
		log.Fatalf("HTTP server failed: %v", err)
	}
}
