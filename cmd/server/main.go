package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/playperu/minicourse/internal/config"
	"github.com/playperu/minicourse/internal/content"
	"github.com/playperu/minicourse/internal/database"
	"github.com/playperu/minicourse/internal/handler/health"
	"github.com/playperu/minicourse/internal/migrations"
	"github.com/playperu/minicourse/internal/progress"
	"github.com/playperu/minicourse/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- SQLite ---
	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("connecting to sqlite: %w", err)
	}
	defer db.Close()

	applied, err := migrations.Run(ctx, db)
	if err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	logger.Info("connected to sqlite", "path", cfg.DBPath, "migrations_applied", applied)

	checks := map[string]health.Checker{"sqlite": health.DB(db)}
	var persister progress.Persister = progress.NewSQLitePersister(db)

	// --- Redis (optional progress backend) ---
	if cfg.RedisURL != "" {
		rdb, err := openRedis(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer rdb.Close()
		logger.Info("connected to redis, storing progress there")

		checks["redis"] = health.Redis(rdb)
		persister = progress.NewRedisPersister(rdb)
	}

	// --- Course ---
	store := progress.Open(ctx, persister, logger)
	provider, err := content.New(content.Delays{
		Video:   cfg.VideoDelay,
		Quiz:    cfg.QuizDelay,
		Article: cfg.ArticleDelay,
	})
	if err != nil {
		return fmt.Errorf("loading course content: %w", err)
	}
	snap := store.Snapshot()
	logger.Info("progress loaded", "current_step", snap.CurrentStep, "completed", snap.CompletedSteps)

	// --- HTTP Server ---
	srv := server.New(cfg.HTTPAddr, logger, server.App{
		Progress:    store,
		Content:     provider,
		CORSOrigins: cfg.CORSOrigins,
		SPADir:      cfg.SPADir,
		Mount: func(r chi.Router) {
			r.Mount("/healthz", health.NewHandler(logger, checks).Routes())
		},
	})

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}

func openRedis(ctx context.Context, rawURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	return rdb, nil
}
