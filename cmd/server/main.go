package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"melmagia/internal/admin"
	"melmagia/internal/catalog"
	"melmagia/internal/config"
	"melmagia/internal/courier"
	"melmagia/internal/infrastructure/logger"
	"melmagia/internal/infrastructure/mysql"
	"melmagia/internal/pricing"
	"melmagia/internal/recommend"
	"melmagia/internal/remote"
	"melmagia/internal/server"
	"melmagia/internal/session"
	"melmagia/internal/store"
	"melmagia/internal/storefront"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	// DB is optional: without it the app runs in local-only demo mode.
	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}

	var mirror store.Mirror
	if db != nil {
		defer db.Close()
		mirror = remote.NewMySQLMirror(db)
		zapLogger.Info("remote store connected")
	} else {
		zapLogger.Info("remote store not configured, running in demo mode")
	}

	st := store.New(
		catalog.SeedProducts(),
		catalog.SeedOrders(),
		pricing.NewPromoTable(catalog.SeedPromoCodes()),
		cfg.Shop.DeliveryFee,
		mirror,
		zapLogger,
	)

	hydrateCtx, cancelHydrate := context.WithTimeout(context.Background(), 10*time.Second)
	st.Hydrate(hydrateCtx)
	cancelHydrate()

	ai := recommend.NewClient(cfg.AI.APIKey, cfg.AI.Model, cfg.AI.BaseURL, zapLogger)
	sess := session.New(cfg.Shop.AdminPassword)

	storefrontCtrl := storefront.NewController(st, ai, zapLogger)
	adminCtrl := admin.NewController(st, sess, ai, zapLogger)
	courierCtrl := courier.NewController(st, zapLogger)

	router := server.NewRouter(storefrontCtrl, adminCtrl, courierCtrl, sess, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
