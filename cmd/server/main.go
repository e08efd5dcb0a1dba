package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"food_order/internal/cache"
	"food_order/internal/config"
	"food_order/internal/logger"
	"food_order/internal/service"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading, relying on environment variables")
	}
	slog.SetDefault(logger.New(os.Getenv("APP_ENV"), os.Stdout))

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "food-order",
		Short:         "Food ordering backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Migrate the schema and start the HTTP server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create the database tables",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runMigrate(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Insert the demo menu into an empty products table",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runSeed(cmd.Context())
			},
		},
	)
	return root
}

func runMigrate(ctx context.Context) error {
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		return fail("Failed to load DB config", err)
	}
	dbPool, err := config.ConnectDB(ctx, dbCfg)
	if err != nil {
		return fail("Failed to connect to database", err)
	}
	defer dbPool.Close()

	if err := config.AutoMigrate(ctx, dbPool); err != nil {
		return fail("Failed to auto-migrate database", err)
	}
	slog.Info("Database schema is up to date")
	return nil
}

func runSeed(ctx context.Context) error {
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		return fail("Failed to load DB config", err)
	}
	dbPool, err := config.ConnectDB(ctx, dbCfg)
	if err != nil {
		return fail("Failed to connect to database", err)
	}
	defer dbPool.Close()

	if err := config.AutoMigrate(ctx, dbPool); err != nil {
		return fail("Failed to auto-migrate database", err)
	}
	inserted, err := config.SeedProducts(ctx, dbPool)
	if err != nil {
		return fail("Failed to seed products", err)
	}
	slog.Info("Seed finished", "products_inserted", inserted)
	return nil
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fail("Failed to load config", err)
	}

	// Ensure uploads directory exists
	if err := os.MkdirAll(cfg.UploadsDir, os.ModePerm); err != nil {
		return fail("Failed to create uploads directory", err)
	}
	slog.Info("Uploads will be stored in", "dir", cfg.UploadsDir)

	dbPool, err := config.ConnectDB(ctx, cfg.DB)
	if err != nil {
		return fail("Failed to connect to database", err)
	}
	defer dbPool.Close()

	if err := config.AutoMigrate(ctx, dbPool); err != nil {
		return fail("Failed to auto-migrate database", err)
	}

	var productCache service.ProductCache
	if cfg.RedisAddr != "" {
		rdb, err := cache.Connect(ctx, cfg.RedisAddr)
		if err != nil {
			slog.Warn("Redis unavailable, product cache disabled", "addr", cfg.RedisAddr, "error", err)
		} else {
			defer rdb.Close()
			productCache = cache.NewProductCache(rdb, cfg.ProductCacheTTL)
			slog.Info("Product cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.ProductCacheTTL)
		}
	}

	router := newRouter(cfg, dbPool, productCache)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		slog.Info("Server starting", "port", cfg.ServerPort, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fail("Server forced to shutdown", err)
	}

	slog.Info("Server exiting")
	return nil
}

func fail(msg string, err error) error {
	slog.Error(msg, "error", err)
	return fmt.Errorf("%s: %w", msg, err)
}
