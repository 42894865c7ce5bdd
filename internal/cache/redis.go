package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oggyb/barchat/internal/config"
)

type RedisCache struct {
	Client *redis.Client
}

// NewRedisCache initializes Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	return &RedisCache{Client: redis.NewClient(opts)}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.Client.Close()
}

func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return c.Client.Set(ctx, key, value, ttl).Err()
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	return c.Client.Get(ctx, key).Result()
}

func (c *RedisCache) Del(ctx context.Context, keys ...string) error {
	return c.Client.Del(ctx, keys...).Err()
}

// KeyForLikeCount generates Redis key for a patron's received-likes count.
func (c *RedisCache) KeyForLikeCount(name string) string {
	return fmt.Sprintf("likes:count:%s", name)
}

// GetLikeCount returns the cached count and whether it was present.
func (c *RedisCache) GetLikeCount(ctx context.Context, name string) (int64, bool, error) {
	key := c.KeyForLikeCount(name)
	val, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil // cache miss
	} else if err != nil {
		return 0, false, err
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, nil
	}
	// refresh TTL on access
	_ = c.Client.Expire(ctx, key, time.Hour).Err()
	return n, true, nil
}

func (c *RedisCache) SetLikeCount(ctx context.Context, name string, count int64) error {
	// Always refresh TTL when updating
	return c.Client.Set(ctx, c.KeyForLikeCount(name), count, time.Hour).Err()
}

// IncrLikeCount bumps a cached count only if it is already cached, so a
// cold key is never mistaken for a full count.
func (c *RedisCache) IncrLikeCount(ctx context.Context, name string) error {
	key := c.KeyForLikeCount(name)
	n, err := c.Client.Exists(ctx, key).Result()
	if err != nil || n == 0 {
		return err
	}
	if err := c.Client.Incr(ctx, key).Err(); err != nil {
		return err
	}
	return c.Client.Expire(ctx, key, time.Hour).Err()
}

// KeyForChanges is the pub/sub channel carrying change notices for a collection.
func (c *RedisCache) KeyForChanges(collection string) string {
	return "docstore:changes:" + collection
}

func (c *RedisCache) PublishChange(ctx context.Context, collection string) error {
	return c.Client.Publish(ctx, c.KeyForChanges(collection), "changed").Err()
}

func (c *RedisCache) SubscribeChanges(ctx context.Context, collection string) *redis.PubSub {
	return c.Client.Subscribe(ctx, c.KeyForChanges(collection))
}

// KeyForRateWindow generates the sorted-set key backing one limiter key.
func (c *RedisCache) KeyForRateWindow(limiter, key string) string {
	return fmt.Sprintf("ratelimit:%s:%s", limiter, key)
}

// slidingWindow evicts entries at or before now-window, then records member
// at score now if fewer than max entries remain. Returns 1 when recorded.
var slidingWindow = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local max = tonumber(ARGV[3])
redis.call('ZREMRANGEBYSCORE', key, '-inf', now - window)
local count = redis.call('ZCARD', key)
if count < max then
  redis.call('ZADD', key, now, ARGV[4])
  redis.call('PEXPIRE', key, window)
  return 1
end
return 0
`)

// SlidingWindowAllow runs the sliding window script atomically.
func (c *RedisCache) SlidingWindowAllow(ctx context.Context, key string, now time.Time, window time.Duration, max int, member string) (bool, error) {
	res, err := slidingWindow.Run(ctx, c.Client, []string{key},
		now.UnixMilli(), window.Milliseconds(), max, member).Int()
	if err != nil {
		return false, err
	}
	return res == 1, nil
}

// SlidingWindowCount counts entries newer than now-window without recording.
func (c *RedisCache) SlidingWindowCount(ctx context.Context, key string, now time.Time, window time.Duration) (int64, error) {
	lower := "(" + strconv.FormatInt(now.Add(-window).UnixMilli(), 10)
	return c.Client.ZCount(ctx, key, lower, "+inf").Result()
}
