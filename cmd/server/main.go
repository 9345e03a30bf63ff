package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	httpapi "shopbook-backend/internal/api/http"
	"shopbook-backend/internal/config"
	"shopbook-backend/internal/logger"
	"shopbook-backend/internal/repository/postgres"
	"shopbook-backend/internal/security"
	"shopbook-backend/internal/service"

	_ "github.com/lib/pq"
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
	logger.Info("Starting Shopbook Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
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
	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Minute,
	)
	authMiddleware := httpapi.NewAuthMiddleware(tokenManager)

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.SendGrid.APIKey,
		cfg.SendGrid.FromEmail,
		cfg.SendGrid.FromName,
	)

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager, emailSvc)
	userSvc := service.NewUserService(store.UserRepository)
	receiptSvc := service.NewReceiptService(store.ReceiptRepository)
	ledgerSvc := service.NewLedgerService(
		store.TransactionRepository,
		store.DueRecordRepository,
		store.BalanceRepository,
	)
	migrationSvc := service.NewMigrationService(db, store, cfg.Migration.Atomic)

	// Initialize HTTP handlers
	handlers := httpapi.Handlers{
		Auth:        httpapi.NewAuthHandler(authSvc),
		User:        httpapi.NewUserHandler(userSvc),
		Receipt:     httpapi.NewReceiptHandler(receiptSvc),
		Transaction: httpapi.NewTransactionHandler(ledgerSvc),
		DueRecord:   httpapi.NewDueRecordHandler(ledgerSvc),
		Balance:     httpapi.NewBalanceHandler(ledgerSvc),
		Migration:   httpapi.NewMigrationHandler(migrationSvc),
		Health:      httpapi.NewHealthHandler(db),
	}

	router := httpapi.NewRouter(handlers, authMiddleware)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
