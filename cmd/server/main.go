package main

import (
	"context"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/oggyb/barchat/internal/app"
	"github.com/oggyb/barchat/internal/cache"
	"github.com/oggyb/barchat/internal/config"
	"github.com/oggyb/barchat/internal/db"
	"github.com/oggyb/barchat/internal/docstore"
	"github.com/oggyb/barchat/internal/logger"
	"github.com/oggyb/barchat/internal/metrics"
	"github.com/oggyb/barchat/internal/server"
	"github.com/oggyb/barchat/internal/service/admin"
	"github.com/oggyb/barchat/internal/service/chat"
	"github.com/oggyb/barchat/internal/service/drinks"
	"github.com/oggyb/barchat/internal/service/flirt"
	"github.com/oggyb/barchat/internal/service/radar"
	"github.com/oggyb/barchat/internal/service/raffle"
	"github.com/oggyb/barchat/internal/service/voting"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.New()

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L() // slog.Logger pointer

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init DB
	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		return 1
	}

	// Redis is only needed by the redis change feed and limiter backend.
	var redisCache *cache.RedisCache
	if cfg.Store.ChangeFeed == "redis" || cfg.RateLimit.Backend == "redis" {
		redisCache = cache.NewRedisCache(cfg)
		if err := redisCache.Ping(ctx); err != nil {
			log.Error("failed to connect to redis", "err", err)
			return 1
		}
		defer redisCache.Close()
	}

	var notifier docstore.Notifier
	switch cfg.Store.ChangeFeed {
	case "redis":
		notifier = docstore.NewRedisNotifier(redisCache)
	case "local", "":
		notifier = docstore.NewLocalNotifier()
	default:
		log.Error("unknown change feed", "feed", cfg.Store.ChangeFeed)
		return 1
	}
	store := docstore.NewGormStore(database, notifier, log.With("component", "docstore"))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	appCtx, err := app.New(cfg, app.Deps{
		Store:      store,
		RedisCache: redisCache,
		Metrics:    metrics.New(reg),
		Logger:     log,
		Rand:       rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64())),
	})
	if err != nil {
		log.Error("failed to init app", "err", err)
		return 1
	}
	defer appCtx.Close()

	if cfg.App.ENV == "development" {
		if _, err := db.SeedDemoData(database, rand.New(rand.NewPCG(1, 1)), time.Now().UTC()); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	registrars := []server.Registrar{
		chat.NewRegistrar(appCtx),
		radar.NewRegistrar(appCtx),
		flirt.NewRegistrar(appCtx),
		drinks.NewRegistrar(appCtx),
		voting.NewRegistrar(appCtx),
		raffle.NewRegistrar(appCtx),
		admin.NewRegistrar(appCtx),
	}

	checks := map[string]server.Check{
		"db": func(ctx context.Context) error {
			sqlDB, err := database.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if redisCache != nil {
		checks["redis"] = redisCache.Ping
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.StartGRPCServer(gctx, appCtx, registrars...)
	})
	g.Go(func() error {
		return server.StartHTTPServer(gctx, cfg.HTTP.Addr, server.NewHTTPRouter(reg, checks), log)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", "err", err)
		return 1
	}
	log.Info("shutdown complete")
	return 0
}
