package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"englex/internal/api"
	"englex/internal/config"
	"englex/internal/handler"
	"englex/internal/lookup"
	"englex/internal/repository/postgres"
	"englex/internal/service"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting EngLex Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully")

	// Connect to database with retries
	db, err := connectDatabase(cfg.DSN(), logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connection established")

	if err := runMigrations(db, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	ledgerRepo := postgres.NewLedgerRepo(db)
	cacheRepo := postgres.NewTranslationCacheRepo(db)

	// Remote lookups share one client; each gets its own breaker
	translator := lookup.NewMyMemoryTranslator(cfg.Lookup.TranslateURL, nil, logger)
	synonyms := lookup.NewDatamuseClient(cfg.Lookup.SynonymURL, nil, logger)
	factClient := lookup.NewFactClient(cfg.Lookup.RandomFactURL, cfg.Lookup.NumberFactURL, nil, logger)

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.BotPassword)
	wordService := service.NewWordService(cacheRepo, translator, synonyms, logger)
	quizService := service.NewQuizService(ledgerRepo, wordService, logger)
	factService := service.NewFactService(factClient, logger)
	historyService := service.NewHistoryService(ledgerRepo)
	statsService := service.NewStatsService(cacheRepo, logger)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	h := handler.NewHandler(bot, authService, quizService, factService, historyService, cfg.FactsCount, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go runCleanupJob(ctx, statsService, logger)

	var apiServer *http.Server
	if cfg.APIEnabled() {
		apiHandler := &api.Handler{
			Words:      wordService,
			Facts:      factService,
			FactsCount: cfg.FactsCount,
			Logger:     logger,
		}
		apiServer = &http.Server{
			Addr:              ":" + cfg.APIPort,
			Handler:           apiHandler.Router(),
			ReadHeaderTimeout: 10 * time.Second,
		}
		go func() {
			logger.Info("API server listening", zap.String("addr", apiServer.Addr))
			if err := apiServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("API server failed", zap.Error(err))
			}
		}()
	}

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping...")

	bot.Stop()
	cancel()

	if apiServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := apiServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("API server shutdown failed", zap.Error(err))
		}
	}

	logger.Info("Stopped gracefully")
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations applies pending migrations from ./migrations
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("No new migrations to apply")
	case err != nil:
		return fmt.Errorf("failed to run migrations: %w", err)
	default:
		logger.Info("Migrations applied successfully")
	}

	return nil
}

// runCleanupJob purges stale cached translations at startup and every 24 hours
func runCleanupJob(ctx context.Context, statsService *service.StatsService, logger *zap.Logger) {
	if err := statsService.CleanupOldData(); err != nil {
		logger.Error("Failed to run initial cleanup", zap.Error(err))
	}

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Cleanup job stopped")
			return
		case <-ticker.C:
			logger.Info("Running scheduled cleanup")
			if err := statsService.CleanupOldData(); err != nil {
				logger.Error("Failed to run scheduled cleanup", zap.Error(err))
			}
		}
	}
}
