package app

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/oggyb/barchat/internal/auth"
	"github.com/oggyb/barchat/internal/cache"
	"github.com/oggyb/barchat/internal/config"
	"github.com/oggyb/barchat/internal/docstore"
	svcErr "github.com/oggyb/barchat/internal/errors"
	"github.com/oggyb/barchat/internal/metrics"
	"github.com/oggyb/barchat/internal/presence"
	"github.com/oggyb/barchat/internal/ratelimit"
	"github.com/oggyb/barchat/internal/realtime"
	"github.com/oggyb/barchat/internal/repository"
)

// AppContext holds shared dependencies (store, Redis, limiters, presence,
// logger, etc.). One is built at startup and handed to every service; tests
// build their own.
type AppContext struct {
	Config     *config.Config
	Store      docstore.Store
	RedisCache *cache.RedisCache
	Repos      *repository.Repositories
	Limiters   *ratelimit.Set
	Presence   *presence.Registry
	Admin      *auth.Admin
	Metrics    *metrics.Metrics
	Logger     *slog.Logger
	Now        func() time.Time
	Rand       *LockedRand
}

// Deps are the pieces New cannot derive from config.
type Deps struct {
	Store      docstore.Store
	RedisCache *cache.RedisCache
	Metrics    *metrics.Metrics
	Logger     *slog.Logger
	Now        func() time.Time
	Rand       *rand.Rand
}

// New creates a new AppContext. RedisCache may be nil when neither the
// change feed nor the limiters use Redis.
func New(cfg *config.Config, deps Deps) (*AppContext, error) {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Now == nil {
		deps.Now = func() time.Time { return time.Now().UTC() }
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.Discard()
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	limiters, err := ratelimit.NewSet(cfg.RateLimit.Rules, cfg.RateLimit.Backend, deps.RedisCache, deps.Now)
	if err != nil {
		return nil, err
	}

	return &AppContext{
		Config:     cfg,
		Store:      deps.Store,
		RedisCache: deps.RedisCache,
		Repos:      repository.New(deps.Store, deps.RedisCache),
		Limiters:   limiters,
		Presence: presence.NewRegistry(deps.Store, presence.Options{
			Window:            cfg.Presence.Window,
			HeartbeatInterval: cfg.Presence.HeartbeatInterval,
			Now:               deps.Now,
			Logger:            deps.Logger.With("component", "presence"),
		}),
		Admin:   auth.NewAdmin(cfg.Admin.PassphraseHash, cfg.Admin.JWTSecret, cfg.Admin.TokenTTL, deps.Now),
		Metrics: deps.Metrics,
		Logger:  deps.Logger,
		Now:     deps.Now,
		Rand:    &LockedRand{r: deps.Rand},
	}, nil
}

// Allow consumes one action from the named limiter for key. A full window
// comes back as ErrRateLimited and is counted.
func (a *AppContext) Allow(ctx context.Context, limiter, key string) error {
	ok, err := a.Limiters.Get(limiter).Allow(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		a.Metrics.RateLimited.WithLabelValues(limiter).Inc()
		return svcErr.RateLimited(limiter)
	}
	return nil
}

// RealtimeOptions are the subscription settings every live view uses.
func (a *AppContext) RealtimeOptions() realtime.Options {
	return realtime.Options{
		MaxRetries: a.Config.Realtime.MaxRetries,
		BaseDelay:  a.Config.Realtime.BaseDelay,
		Disabled:   a.Config.Realtime.Disabled,
		Logger:     a.Logger.With("component", "realtime"),
		OnRetry:    a.Metrics.OnRetry,
	}
}

// Close stops background work owned by the context.
func (a *AppContext) Close() {
	a.Presence.StopAll()
}

// LockedRand is a *rand.Rand safe for concurrent use.
type LockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *LockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}
