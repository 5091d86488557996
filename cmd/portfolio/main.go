package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"portfolio/internal/config"
	"portfolio/internal/content"
	applog "portfolio/internal/log"
	"portfolio/internal/repos"
	"portfolio/internal/server"
	"portfolio/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run owns every resource so its deferred cleanups finish before main exits.
func run() error {
	cfg := config.Load()

	logger, err := applog.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		if logger, err = applog.New(cfg.LogLevel, ""); err != nil {
			return err
		}
	}
	applog.Set(logger)
	defer func() { _ = logger.Sync() }()

	if cfg.TraceStdout {
		shutdown, err := telemetry.Setup("portfolio", os.Stdout)
		if err != nil {
			return err
		}
		defer func() { _ = shutdown(context.Background()) }()
	}

	site, err := content.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()
	go prune(ctx, store, cfg.StateTTL)

	app, _, err := server.New(cfg, site, store)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		logger.Info("server.shutdown")
		_ = app.ShutdownWithTimeout(5 * time.Second)
	}()

	logger.Info("server.start", zap.String("port", cfg.Port), zap.String("state_backend", cfg.StateBackend))
	return app.Listen(":" + cfg.Port)
}

func openStore(ctx context.Context, cfg config.Config) (repos.StateStore, func(), error) {
	if cfg.StateBackend == "redis" {
		rs, err := repos.NewRedisStateStore(ctx, cfg.RedisURL, cfg.StateTTL)
		if err != nil {
			return nil, nil, err
		}
		return rs, func() { _ = rs.Close() }, nil
	}
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		return nil, nil, err
	}
	return repos.NewStateRepo(db, cfg.StateTTL), func() { _ = db.Close() }, nil
}

// prune drops expired scopes every half TTL until ctx ends.
func prune(ctx context.Context, store repos.StateStore, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	t := time.NewTicker(ttl / 2)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			n, err := store.Prune(ctx, now.Add(-ttl))
			if err != nil {
				applog.L().Warn("scope.prune.fail", zap.Error(err))
				continue
			}
			if n > 0 {
				applog.L().Info("scope.prune", zap.Int64("removed", n))
			}
		}
	}
}
