package ratelimit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/barchat/internal/config"
	"github.com/oggyb/barchat/internal/ratelimit"
	"github.com/oggyb/barchat/internal/testutil"
)

// exerciseWindow runs the shared sliding-window contract against l.
func exerciseWindow(t *testing.T, l ratelimit.Limiter, clock *testutil.Clock) {
	t.Helper()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		ok, err := l.Allow(ctx, "Alice_5")
		require.NoError(t, err)
		require.True(t, ok)
	}
	left, err := l.Remaining(ctx, "Alice_5")
	require.NoError(t, err)
	assert.Equal(t, 15, left)

	for i := 0; i < 15; i++ {
		clock.Advance(time.Second)
		ok, err := l.Allow(ctx, "Alice_5")
		require.NoError(t, err)
		require.True(t, ok, "call %d", i+6)
	}

	ok, err := l.Allow(ctx, "Alice_5")
	require.NoError(t, err)
	assert.False(t, ok, "21st call must be rejected")

	// other keys are independent
	ok, err = l.Allow(ctx, "Bob_3")
	require.NoError(t, err)
	assert.True(t, ok)

	clock.Advance(time.Minute)
	ok, err = l.Allow(ctx, "Alice_5")
	require.NoError(t, err)
	assert.True(t, ok, "window elapsed")

	left, err = l.Remaining(ctx, "Alice_5")
	require.NoError(t, err)
	assert.Equal(t, 19, left)
}

func TestWindow_SlidingContract(t *testing.T) {
	clock := testutil.NewClock(time.Date(2026, 5, 1, 22, 0, 0, 0, time.UTC))
	exerciseWindow(t, ratelimit.NewWindow(20, time.Minute, clock.Now), clock)
}

func TestRedis_SlidingContract(t *testing.T) {
	rc, _ := testutil.NewRedis(t)
	clock := testutil.NewClock(time.Date(2026, 5, 1, 22, 0, 0, 0, time.UTC))
	exerciseWindow(t, ratelimit.NewRedis(rc, "messages", 20, time.Minute, clock.Now), clock)
}

func TestWindow_OldHitsSlideOut(t *testing.T) {
	ctx := context.Background()
	clock := testutil.NewClock(time.Date(2026, 5, 1, 22, 0, 0, 0, time.UTC))
	l := ratelimit.NewWindow(2, time.Minute, clock.Now)

	ok, _ := l.Allow(ctx, "k")
	assert.True(t, ok)
	clock.Advance(30 * time.Second)
	ok, _ = l.Allow(ctx, "k")
	assert.True(t, ok)
	ok, _ = l.Allow(ctx, "k")
	assert.False(t, ok)

	// first hit is now exactly one window old
	clock.Advance(30 * time.Second)
	ok, _ = l.Allow(ctx, "k")
	assert.True(t, ok)

	l.Reset("")
	left, _ := l.Remaining(ctx, "k")
	assert.Equal(t, 2, left)
}

func TestSet(t *testing.T) {
	ctx := context.Background()
	set, err := ratelimit.NewSet(config.DefaultRateRules(), "memory", nil, nil)
	require.NoError(t, err)

	left, err := set.Get(config.LimiterVotes).Remaining(ctx, "Alice_5")
	require.NoError(t, err)
	assert.Equal(t, 5, left)

	ok, err := set.Get("unknown").Allow(ctx, "Alice_5")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = ratelimit.NewSet(config.DefaultRateRules(), "redis", nil, nil)
	assert.Error(t, err)
	_, err = ratelimit.NewSet(config.DefaultRateRules(), "carrier-pigeon", nil, nil)
	assert.Error(t, err)
}
