package testutil

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/barchat/internal/app"
	"github.com/oggyb/barchat/internal/config"
	"github.com/oggyb/barchat/internal/logger"
	"github.com/oggyb/barchat/internal/metrics"
)

// Night is the fixed start of every test clock.
var Night = time.Date(2026, 6, 12, 22, 0, 0, 0, time.UTC)

// TestConfig is the stock config with fast subscription retries.
func TestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.RateLimit.Backend = "memory"
	cfg.RateLimit.Rules = config.DefaultRateRules()
	cfg.Presence.Window = 15 * time.Second
	cfg.Presence.HeartbeatInterval = 5 * time.Second
	cfg.Realtime.MaxRetries = 3
	cfg.Realtime.BaseDelay = 10 * time.Millisecond
	cfg.Scores = config.Weights{
		TableMessage: 1.0, TableLike: 0.5, TableVote: 0.3,
		UserMessage: 1.0, UserLike: 1.0, UserVote: 0.5,
	}
	cfg.Admin.JWTSecret = "test-secret"
	cfg.Admin.TokenTTL = time.Hour
	return cfg
}

// App is an AppContext over a private store, a settable clock and a
// seeded random source. Metrics go to a private registry.
type App struct {
	*app.AppContext
	Clock    *Clock
	Registry *prometheus.Registry
}

// NewApp builds an App. mutate, when given, edits the config first.
func NewApp(t *testing.T, mutate ...func(*config.Config)) *App {
	t.Helper()

	cfg := TestConfig()
	for _, m := range mutate {
		m(cfg)
	}

	clock := NewClock(Night)
	reg := prometheus.NewRegistry()
	appCtx, err := app.New(cfg, app.Deps{
		Store:   NewStore(t).WithClock(clock.Now),
		Metrics: metrics.New(reg),
		Logger:  logger.Discard(),
		Now:     clock.Now,
		Rand:    rand.New(rand.NewPCG(1, 2)),
	})
	require.NoError(t, err)
	t.Cleanup(appCtx.Close)

	return &App{AppContext: appCtx, Clock: clock, Registry: reg}
}
