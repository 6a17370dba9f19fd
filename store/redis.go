package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig configures the Redis-backed stage store.
type RedisConfig struct {
	Addr     string // e.g. localhost:6379
	Password string
	DB       int
	// TTL applies to every entry written; zero means no expiry.
	TTL time.Duration
}

// RedisStore persists stage payloads in Redis under blog:{stage}:{topic}.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStoreFromEnv creates a RedisStore using environment variables
// REDIS_ADDR, REDIS_PASS, REDIS_DB (optional), REDIS_TTL_SECONDS (optional).
func NewRedisStoreFromEnv() (*RedisStore, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	pass := os.Getenv("REDIS_PASS")

	db := 0
	if d := os.Getenv("REDIS_DB"); d != "" {
		if v, err := strconv.Atoi(d); err == nil {
			db = v
		}
	}

	var ttl time.Duration
	if t := os.Getenv("REDIS_TTL_SECONDS"); t != "" {
		if secs, err := strconv.Atoi(t); err == nil && secs > 0 {
			ttl = time.Duration(secs) * time.Second
		}
	}

	return NewRedisStore(RedisConfig{Addr: addr, Password: pass, DB: db, TTL: ttl})
}

// NewRedisStore creates a RedisStore and verifies connectivity.
func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	return &RedisStore{client: client, ttl: cfg.TTL}, nil
}

// Close closes the underlying Redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) key(topic, stage string) string {
	// The topic is used verbatim; Redis keys are binary-safe.
	return "blog:" + stage + ":" + topic
}

func (s *RedisStore) Get(ctx context.Context, topic, stage string) ([]byte, error) {
	b, err := s.client.Get(ctx, s.key(topic, stage)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s/%s: %w", stage, topic, err)
	}
	return b, nil
}

func (s *RedisStore) Put(ctx context.Context, topic, stage string, payload []byte) error {
	if err := s.client.Set(ctx, s.key(topic, stage), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s/%s: %w", stage, topic, err)
	}
	return nil
}
