package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/farmatech/farmatech-client/internal/config"
	"github.com/farmatech/farmatech-client/internal/gateway"
	api "github.com/farmatech/farmatech-client/internal/http"
	"github.com/farmatech/farmatech-client/internal/http/handlers"
	rl "github.com/farmatech/farmatech-client/internal/http/rate_limiter"
	"github.com/farmatech/farmatech-client/internal/notify"
	"github.com/farmatech/farmatech-client/internal/session"
)

// @title FarmaTech Client API
// @version 1.0
// @description Pharmacy stock, sales and analytics screens backed by the FarmaTech backend.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Could not load configuration: %v", err)
	}

	ctx := context.Background()

	var rdb *redis.Client
	if cfg.TokenStore == "redis" || cfg.SMTPServer != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("Could not connect to Redis: %v", err)
		}
		defer rdb.Close()
	}

	var store session.Store
	switch cfg.TokenStore {
	case "redis":
		store = session.NewRedisStore(rdb, ctx)
	default:
		store = session.NewFileStore(cfg.TokenFile)
	}

	client := gateway.New(cfg.BackendURL, store)
	handlers.SetGateway(client)
	handlers.SetAlertWindows(cfg.AlertWindowDays, cfg.ExpiryWindowDays)
	api.SetSessionStore(store)

	if cfg.SMTPServer != "" {
		notifier := notify.New(rdb, ctx, notify.SMTPConfig{
			From:     cfg.AlertFrom,
			To:       cfg.AlertTo,
			Server:   cfg.SMTPServer,
			Port:     cfg.SMTPPort,
			User:     cfg.SMTPUser,
			Password: cfg.SMTPPassword,
		})
		handlers.SetNotifier(notifier)
		go notifier.StartDailySummary(24 * time.Hour)
	}

	go rl.StartVisitorCleanupLoop()

	r := api.NewRouter()
	log.Printf("✅ FarmaTech client running on %s (backend %s)", cfg.ListenAddr, cfg.BackendURL)
	if err := http.ListenAndServe(cfg.ListenAddr, r); err != nil {
		log.Fatal(err)
	}
}
