package cache

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the hash holding token -> lemma fields.
const DefaultRedisKey = "mixtoken:lemmas"

// RedisConfig configures a Redis cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Key      string
	Timeout  time.Duration
}

// Redis is a lemma cache stored in a Redis hash so that several processes
// can share it. Errors are logged and treated as cache misses.
type Redis struct {
	client  *redis.Client
	key     string
	timeout time.Duration
	logger  *slog.Logger
}

// NewRedis connects to Redis and checks the connection.
func NewRedis(cfg RedisConfig, logger *slog.Logger) (*Redis, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.Key == "" {
		cfg.Key = DefaultRedisKey
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = time.Second
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return &Redis{
		client:  client,
		key:     cfg.Key,
		timeout: cfg.Timeout,
		logger:  logger,
	}, nil
}

func (r *Redis) Get(token string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	lemma, err := r.client.HGet(ctx, r.key, token).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Error("redis lemma lookup failed", "token", token, "error", err)
		}
		return "", false
	}
	return lemma, true
}

// Set stores lemma for token unless the hash already has the token.
func (r *Redis) Set(token, lemma string) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.client.HSetNX(ctx, r.key, token, lemma).Err(); err != nil {
		r.logger.Error("redis lemma store failed", "token", token, "error", err)
	}
}

// Len returns the number of cached entries.
func (r *Redis) Len(ctx context.Context) (int64, error) {
	return r.client.HLen(ctx, r.key).Result()
}

// Close closes the client.
func (r *Redis) Close() error {
	return r.client.Close()
}
