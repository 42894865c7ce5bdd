// Package ratelimit throttles actions per identity with sliding windows.
package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oggyb/barchat/internal/cache"
	"github.com/oggyb/barchat/internal/config"
)

// Limiter is a sliding-window counter keyed by identity.
type Limiter interface {
	// Allow records an action for key and reports whether it fits the window.
	// Rejected calls are not recorded.
	Allow(ctx context.Context, key string) (bool, error)
	// Remaining reports how many more actions key may take now, without
	// consuming any.
	Remaining(ctx context.Context, key string) (int, error)
}

// Window is an in-memory sliding-window limiter.
type Window struct {
	mu     sync.Mutex
	max    int
	window time.Duration
	now    func() time.Time
	hits   map[string][]time.Time
}

// NewWindow allows max actions per key within any window-long span.
// A nil clock means time.Now.
func NewWindow(max int, window time.Duration, now func() time.Time) *Window {
	if now == nil {
		now = time.Now
	}
	return &Window{max: max, window: window, now: now, hits: make(map[string][]time.Time)}
}

func (w *Window) Allow(_ context.Context, key string) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now()
	hits := w.evict(key, now)
	if len(hits) >= w.max {
		return false, nil
	}
	w.hits[key] = append(hits, now)
	return true, nil
}

func (w *Window) Remaining(_ context.Context, key string) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return max(0, w.max-len(w.evict(key, w.now()))), nil
}

// Reset forgets key, or everything when key is empty.
func (w *Window) Reset(key string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if key == "" {
		w.hits = make(map[string][]time.Time)
		return
	}
	delete(w.hits, key)
}

// evict drops hits older than the window and returns what is left.
func (w *Window) evict(key string, now time.Time) []time.Time {
	hits := w.hits[key]
	i := 0
	for i < len(hits) && now.Sub(hits[i]) >= w.window {
		i++
	}
	hits = hits[i:]
	if len(hits) == 0 {
		delete(w.hits, key)
		return nil
	}
	w.hits[key] = hits
	return hits
}

// Redis is a sliding-window limiter shared by every process using the same
// Redis. Each key is a sorted set of hit timestamps.
type Redis struct {
	cache  *cache.RedisCache
	name   string
	max    int
	window time.Duration
	now    func() time.Time
}

func NewRedis(c *cache.RedisCache, name string, max int, window time.Duration, now func() time.Time) *Redis {
	if now == nil {
		now = time.Now
	}
	return &Redis{cache: c, name: name, max: max, window: window, now: now}
}

func (r *Redis) Allow(ctx context.Context, key string) (bool, error) {
	now := r.now()
	member := fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString())
	ok, err := r.cache.SlidingWindowAllow(ctx, r.cache.KeyForRateWindow(r.name, key), now, r.window, r.max, member)
	if err != nil {
		return false, fmt.Errorf("rate limit %s: %w", r.name, err)
	}
	return ok, nil
}

func (r *Redis) Remaining(ctx context.Context, key string) (int, error) {
	n, err := r.cache.SlidingWindowCount(ctx, r.cache.KeyForRateWindow(r.name, key), r.now(), r.window)
	if err != nil {
		return 0, fmt.Errorf("rate limit %s: %w", r.name, err)
	}
	return max(0, r.max-int(n)), nil
}

// Set holds the named limiters of one application instance.
type Set struct {
	limiters map[string]Limiter
}

// NewSet builds one limiter per rule. backend is "memory" or "redis";
// redis needs a non-nil cache.
func NewSet(rules map[string]config.RateRule, backend string, c *cache.RedisCache, now func() time.Time) (*Set, error) {
	s := &Set{limiters: make(map[string]Limiter, len(rules))}
	for name, rule := range rules {
		switch backend {
		case "memory", "":
			s.limiters[name] = NewWindow(rule.Max, rule.Window, now)
		case "redis":
			if c == nil {
				return nil, fmt.Errorf("rate limit backend redis needs a redis cache")
			}
			s.limiters[name] = NewRedis(c, name, rule.Max, rule.Window, now)
		default:
			return nil, fmt.Errorf("unknown rate limit backend %q", backend)
		}
	}
	return s, nil
}

// Get returns the named limiter. Unknown names get a limiter that allows
// everything, so a missing rule never blocks patrons.
func (s *Set) Get(name string) Limiter {
	if l, ok := s.limiters[name]; ok {
		return l
	}
	return unlimited{}
}

type unlimited struct{}

func (unlimited) Allow(context.Context, string) (bool, error)    { return true, nil }
func (unlimited) Remaining(context.Context, string) (int, error) { return int(^uint(0) >> 1), nil }
