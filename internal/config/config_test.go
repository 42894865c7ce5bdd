package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew_Defaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, 3, cfg.Realtime.MaxRetries)
	assert.Equal(t, time.Second, cfg.Realtime.BaseDelay)
	assert.False(t, cfg.Realtime.Disabled)
	assert.Equal(t, 15*time.Second, cfg.Presence.Window)
	assert.Equal(t, 5*time.Second, cfg.Presence.HeartbeatInterval)
	assert.Equal(t, RateRule{Max: 20, Window: time.Minute}, cfg.RateLimit.Rules[LimiterMessages])
	assert.Equal(t, RateRule{Max: 50, Window: time.Minute}, cfg.RateLimit.Rules[LimiterActions])
	assert.Equal(t, RateRule{Max: 5, Window: time.Hour}, cfg.RateLimit.Rules[LimiterVotes])
	assert.Equal(t, 0.3, cfg.Scores.TableVote)
	assert.Equal(t, 0.5, cfg.Scores.UserVote)
}

func TestNew_EnvOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("PRESENCE_WINDOW", "30s")
	t.Setenv("SUBSCRIPTION_BASE_DELAY", "250")
	t.Setenv("SCORE_TABLE_LIKE", "0.75")
	t.Setenv("RATE_LIKES_MAX", "3")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := New()

	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, 30*time.Second, cfg.Presence.Window)
	assert.Equal(t, 250*time.Millisecond, cfg.Realtime.BaseDelay)
	assert.Equal(t, 0.75, cfg.Scores.TableLike)
	assert.Equal(t, 3, cfg.RateLimit.Rules[LimiterLikes].Max)
	assert.Equal(t, 0, cfg.Redis.DB)
}

func TestNew_RealtimeOverrides(t *testing.T) {
	t.Setenv("SUBSCRIPTION_MAX_RETRIES", "0")
	t.Setenv("REALTIME_DISABLED", "true")

	cfg := New()

	assert.Equal(t, 0, cfg.Realtime.MaxRetries)
	assert.True(t, cfg.Realtime.Disabled)
}

func TestIsTruthy(t *testing.T) {
	for _, v := range []string{"1", "true", " YES ", "on"} {
		assert.True(t, isTruthy(v), v)
	}
	for _, v := range []string{"", "0", "off", "nope"} {
		assert.False(t, isTruthy(v), v)
	}
}
