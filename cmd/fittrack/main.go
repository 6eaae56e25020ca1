package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/joho/godotenv/autoload"
	"github.com/terraincognita07/fittrack/internal/api"
	"github.com/terraincognita07/fittrack/internal/kv"
)

func main() {
	port := getEnv("PORT", "8080")

	store, storeLabel, err := openStore()
	if err != nil {
		log.Fatalf("substrate init failed: %v", err)
	}

	handler := api.NewHandler(store)

	app := fiber.New(fiber.Config{
		AppName:               "Fittrack",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Fittrack listening on http://0.0.0.0:%s (store: %s)", port, storeLabel)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

// openStore picks the substrate: redis when REDIS_URL is set, the
// sqlite file otherwise.
func openStore() (kv.Store, string, error) {
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		store, err := kv.NewRedisStore(ctx, redisURL)
		if err != nil {
			return nil, "", err
		}
		return store, "redis", nil
	}

	dbPath := getEnv("DB_PATH", filepath.Join("data", "fittrack.db"))
	database, err := kv.OpenSQLite(dbPath)
	if err != nil {
		return nil, "", err
	}
	return kv.NewSQLiteStore(database), "sqlite " + dbPath, nil
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
