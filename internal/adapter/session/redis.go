package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/flight-assistant/flight-offer-assistant/internal/domain"
)

const keyPrefix = "session:"

// RedisConfig holds the Redis connection settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// RedisStore keeps sessions in Redis as JSON with a TTL, so several
// instances can serve the same conversation.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects and pings Redis.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}

	return &RedisStore{client: client, ttl: cfg.TTL}, nil
}

// Save replaces the session's previous search and resets its TTL.
func (s *RedisStore) Save(ctx context.Context, session domain.SearchSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", session.ID, err)
	}
	return s.client.Set(ctx, keyPrefix+session.ID, data, s.ttl).Err()
}

// Load returns the stored search or domain.ErrSessionNotFound.
func (s *RedisStore) Load(ctx context.Context, sessionID string) (domain.SearchSession, error) {
	data, err := s.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.SearchSession{}, domain.ErrSessionNotFound
	}
	if err != nil {
		return domain.SearchSession{}, fmt.Errorf("load session %s: %w", sessionID, err)
	}

	var session domain.SearchSession
	if err := json.Unmarshal(data, &session); err != nil {
		return domain.SearchSession{}, fmt.Errorf("decode session %s: %w", sessionID, err)
	}
	return session, nil
}

// Close closes the Redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ domain.SearchSessionStore = (*RedisStore)(nil)
