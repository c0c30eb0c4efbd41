package main

import (
	"context"
	"os"
	"time"

	account "carmarket-bff/internal/accountService"
	auction "carmarket-bff/internal/auctionService"
	catalog "carmarket-bff/internal/catalogService"
	"carmarket-bff/internal/config"
	"carmarket-bff/internal/forms"
	"carmarket-bff/internal/marketapi"
	"carmarket-bff/internal/server"
	"carmarket-bff/internal/session"
	"carmarket-bff/internal/uploads"
	handler "carmarket-bff/services/market/handler"
	"carmarket-bff/utils"

	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		utils.Fatal("Failed to load configuration", map[string]any{"error": err.Error()})
	}
	utils.ConfigureLogger(cfg.LogLevel)

	store, err := newSessionStore(cfg)
	if err != nil {
		utils.Fatal("Failed to open session store", map[string]any{"error": err.Error(), "store": cfg.Session.Store})
	}
	sessions := session.NewManager(store, cfg.Session.TTL)
	cookie := session.Cookie{Name: cfg.Session.CookieName, TTL: cfg.Session.TTL, Secure: cfg.Session.Secure}

	api := marketapi.NewHTTPClient(cfg.Upstream.BaseURL, cfg.Upstream.AssetBaseURL, cfg.Upstream.Timeout)
	validator := forms.NewValidator()

	accountSvc := account.NewService(api, sessions, validator)
	auctionSvc := auction.NewService(api, cfg.CountdownTick)
	previews := uploads.NewPreviews(
		uploads.WithMaxPerOwner(cfg.Previews.MaxPerSession),
		uploads.WithPreviewTTL(cfg.Previews.TTL),
	)
	catalogSvc := catalog.NewService(api, validator, previews, cfg.UploadMaxBytes)
	sessions.OnEnd(catalogSvc.EndSession)

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go sessions.RunSweeper(sweepCtx, cfg.Session.SweepInterval)

	marketHandler := handler.NewMarketHandler(accountSvc, auctionSvc, catalogSvc, cookie, api)
	router := server.SetupRouter(marketHandler, sessions, cookie)

	utils.Info("Starting car marketplace gateway", map[string]any{
		"addr":     cfg.ServerAddr,
		"upstream": cfg.Upstream.BaseURL,
		"store":    cfg.Session.Store,
	})
	if err := router.Run(cfg.ServerAddr); err != nil {
		utils.Fatal("Failed to start server", map[string]any{"error": err.Error()})
	}
}

// newSessionStore returns the configured session store; redis is pinged before use
func newSessionStore(cfg config.Config) (session.Store, error) {
	if cfg.Session.Store != "redis" {
		return session.NewMemoryStore(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return session.NewRedisStore(client, cfg.Redis.KeyPrefix), nil
}
