package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/sirupsen/logrus"

	"github.com/brinepantry/inventory/internal/adapter/auth"
	"github.com/brinepantry/inventory/internal/adapter/cache"
	httpadapter "github.com/brinepantry/inventory/internal/adapter/http"
	"github.com/brinepantry/inventory/internal/adapter/persistence"
	"github.com/brinepantry/inventory/internal/config"
	"github.com/brinepantry/inventory/internal/logger"
	"github.com/brinepantry/inventory/internal/ports"
	"github.com/brinepantry/inventory/internal/usecase"
)

// Version and build information
var (
	Version   = "development"
	BuildTime = "unknown"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not load .env file: %v\n", err)
	}

	version := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *version {
		fmt.Printf("BrinePantry Inventory Service\n")
		fmt.Printf("Version: %s\n", Version)
		fmt.Printf("Build Time: %s\n", BuildTime)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging)
	log.WithFields(logrus.Fields{
		"version":     Version,
		"environment": cfg.Server.Environment,
	}).Info("starting BrinePantry inventory service")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := initDatabase(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize database")
	}
	defer db.Close()

	stockRepo := persistence.NewPostgresStockRepository(db)
	adminRepo := persistence.NewPostgresAdminRepository(db)

	stockCache, redisClient := initStockCache(ctx, cfg, log)
	if redisClient != nil {
		defer redisClient.Close()
	}

	tokenService := auth.NewJWTService(cfg.Security.JWTSecret, cfg.Security.JWTExpiration)
	passwordService := auth.NewBcryptPasswordService(cfg.Security.BcryptCost)

	ledger := usecase.NewStockLedgerUseCase(stockRepo, stockCache, log)
	authUseCase := usecase.NewAuthUseCase(adminRepo, passwordService, tokenService, log)

	authMiddleware := httpadapter.NewAuthMiddleware(tokenService)

	server := httpadapter.NewServer(httpadapter.ServerConfig{
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}, ledger, authUseCase, authMiddleware, log)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	log.Info("server started successfully")

	<-sigChan
	log.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("error during server shutdown")
	}

	log.Info("server stopped")
}

// initDatabase initializes the database connection
func initDatabase(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxConnections)
	db.SetMaxIdleConns(cfg.Database.MaxConnections / 2)
	db.SetConnMaxLifetime(cfg.Database.MaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// initStockCache connects to Redis when enabled. The cache is advisory, so a
// missing Redis only degrades reads to the database.
func initStockCache(ctx context.Context, cfg *config.Config, log *logrus.Logger) (ports.StockCache, *redis.Client) {
	if !cfg.Redis.Enabled {
		log.Info("stock cache disabled")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.WithError(err).Warn("redis unavailable, running without stock cache")
		client.Close()
		return nil, nil
	}

	return cache.NewRedisStockCache(client, cfg.Redis.CacheTTL), client
}
