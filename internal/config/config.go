package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// RateRule is the capacity of one named sliding-window limiter.
type RateRule struct {
	Max    int
	Window time.Duration
}

// Weights are the per-record contributions used by the activity aggregators.
type Weights struct {
	TableMessage float64
	TableLike    float64
	TableVote    float64
	UserMessage  float64
	UserLike     float64
	UserVote     float64
}

type Config struct {
	App struct {
		ENV string
	}

	Log struct {
		Level     string
		Format    string
		Component string
		Source    bool
	}

	DB struct {
		Driver     string
		DSN        string
		Host       string
		Port       string
		User       string
		Password   string
		Name       string
		SQLitePath string
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	GRPC struct {
		Host string
		Port string
	}

	HTTP struct {
		Addr string
	}

	Store struct {
		// ChangeFeed selects how collection changes reach subscribers: "local" or "redis".
		ChangeFeed string
	}

	Realtime struct {
		// MaxRetries of 0 disables retries.
		MaxRetries int
		BaseDelay  time.Duration
		// Disabled serves empty live views without touching the store.
		Disabled bool
	}

	Presence struct {
		Window            time.Duration
		HeartbeatInterval time.Duration
	}

	RateLimit struct {
		// Backend is "memory" or "redis".
		Backend string
		Rules   map[string]RateRule
	}

	Scores Weights

	Admin struct {
		PassphraseHash string
		JWTSecret      string
		TokenTTL       time.Duration
	}
}

func New() *Config {
	// .env is optional; real env vars win
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.App.ENV = getEnvDefault("APP_ENV", "development")

	// Logger
	cfg.Log.Level = getEnvDefault("LOG_LEVEL", "info")
	cfg.Log.Format = getEnvDefault("LOG_FORMAT", "text")
	cfg.Log.Component = getEnvDefault("LOG_COMPONENT", "barchat")
	cfg.Log.Source = isTruthy(os.Getenv("LOG_SOURCE"))

	// Database
	cfg.DB.Driver = strings.ToLower(getEnvDefault("DB_DRIVER", "mysql"))
	cfg.DB.SQLitePath = getEnvDefault("SQLITE_PATH", "barchat.db")
	cfg.DB.DSN = os.Getenv("MYSQL_DSN")
	if cfg.DB.DSN == "" {
		cfg.DB.Host = getEnvDefault("DB_HOST", "localhost")
		cfg.DB.Port = getEnvDefault("DB_PORT", "3306")
		cfg.DB.User = getEnvDefault("DB_USER", "root")
		cfg.DB.Password = getEnvDefault("DB_PASSWORD", "root")
		cfg.DB.Name = getEnvDefault("DB_NAME", "barchat")

		cfg.DB.DSN = fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
			cfg.DB.User, cfg.DB.Password, cfg.DB.Host, cfg.DB.Port, cfg.DB.Name,
		)
	}

	// Redis
	cfg.Redis.Addr = getEnvDefault("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnvDefault("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvInt("REDIS_DB", 0)

	// gRPC
	cfg.GRPC.Host = getEnvDefault("GRPC_HOST", "127.0.0.1")
	cfg.GRPC.Port = getEnvDefault("GRPC_PORT", "50051")

	// Ops HTTP (health + metrics)
	cfg.HTTP.Addr = getEnvDefault("HTTP_ADDR", ":8080")

	cfg.Store.ChangeFeed = strings.ToLower(getEnvDefault("CHANGE_FEED", "local"))

	cfg.Realtime.MaxRetries = getEnvInt("SUBSCRIPTION_MAX_RETRIES", 3)
	cfg.Realtime.BaseDelay = getEnvDuration("SUBSCRIPTION_BASE_DELAY", time.Second)
	cfg.Realtime.Disabled = isTruthy(os.Getenv("REALTIME_DISABLED"))

	cfg.Presence.Window = getEnvDuration("PRESENCE_WINDOW", 15*time.Second)
	cfg.Presence.HeartbeatInterval = getEnvDuration("HEARTBEAT_INTERVAL", 5*time.Second)

	cfg.RateLimit.Backend = strings.ToLower(getEnvDefault("RATE_LIMIT_BACKEND", "memory"))
	cfg.RateLimit.Rules = DefaultRateRules()

	cfg.Scores = Weights{
		TableMessage: getEnvFloat("SCORE_TABLE_MESSAGE", 1.0),
		TableLike:    getEnvFloat("SCORE_TABLE_LIKE", 0.5),
		TableVote:    getEnvFloat("SCORE_TABLE_VOTE", 0.3),
		UserMessage:  getEnvFloat("SCORE_USER_MESSAGE", 1.0),
		UserLike:     getEnvFloat("SCORE_USER_LIKE", 1.0),
		UserVote:     getEnvFloat("SCORE_USER_VOTE", 0.5),
	}

	cfg.Admin.PassphraseHash = getEnvDefault("ADMIN_PASSPHRASE_HASH", "")
	cfg.Admin.JWTSecret = getEnvDefault("ADMIN_JWT_SECRET", "")
	cfg.Admin.TokenTTL = getEnvDuration("ADMIN_TOKEN_TTL", 12*time.Hour)

	return cfg
}

// Limiter names shared by services and config.
const (
	LimiterMessages = "messages"
	LimiterActions  = "actions"
	LimiterLikes    = "likes"
	LimiterVotes    = "votes"
)

// DefaultRateRules returns the stock limiter table.
func DefaultRateRules() map[string]RateRule {
	return map[string]RateRule{
		LimiterMessages: {Max: getEnvInt("RATE_MESSAGES_MAX", 20), Window: time.Minute},
		LimiterActions:  {Max: getEnvInt("RATE_ACTIONS_MAX", 50), Window: time.Minute},
		LimiterLikes:    {Max: getEnvInt("RATE_LIKES_MAX", 10), Window: time.Minute},
		LimiterVotes:    {Max: getEnvInt("RATE_VOTES_MAX", 5), Window: time.Hour},
	}
}

func getEnvDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("config: invalid int, using default", "key", k, "value", v, "default", def)
		return def
	}
	return n
}

func getEnvFloat(k string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("config: invalid float, using default", "key", k, "value", v, "default", def)
		return def
	}
	return f
}

// getEnvDuration accepts Go durations ("15s") or bare milliseconds ("1500").
func getEnvDuration(k string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
		return time.Duration(ms) * time.Millisecond
	}
	slog.Warn("config: invalid duration, using default", "key", k, "value", v, "default", def)
	return def
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	}
	return false
}
