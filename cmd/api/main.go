package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/recipevault/backend/config"
	"github.com/recipevault/backend/internal/database"
	"github.com/recipevault/backend/internal/logger"
	"github.com/recipevault/backend/internal/server"
	"github.com/recipevault/backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zlog, err := logger.Init(cfg.Log.Level)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer zlog.Sync()

	db, err := database.Open(cfg.Database)
	if err != nil {
		zlog.Fatal("opening database", zap.Error(err))
	}
	fts, err := database.Migrate(db)
	if err != nil {
		zlog.Fatal("migrating schema", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		zlog.Fatal("connecting to redis", zap.Error(err))
	}
	cache := service.NewCache(redisClient)

	recipes := service.NewRecipeService(db, fts, cache)
	tags := service.NewTagService(db, cache)
	suggestions := service.NewSuggestionService(db)

	srv := server.New(cfg, db, recipes, tags, suggestions)

	errChan := make(chan error, 1)
	go func() {
		zlog.Info("server listening", zap.String("addr", cfg.Server.Addr()))
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			zlog.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		zlog.Info("received signal", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		zlog.Fatal("server shutdown error", zap.Error(err))
	}
	zlog.Info("server stopped")
}
