// Package redis implements session persistence and distributed locking on Redis.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nsfeld/salescoach/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// Store implements ports.SessionStore using Redis. Sessions are stored as
// JSON values; a ZSET index keyed by expiry keeps List cheap and lets
// expired entries fall out lazily.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
	now    func() time.Time
}

// Option configures the store.
type Option func(*Store)

// WithTTL sets an expiration for sessions. Zero means no expiration.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) { s.ttl = ttl }
}

// WithPrefix overrides the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) { s.prefix = prefix }
}

// WithClock overrides the time source used for the expiry index.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates a Redis store with its own client.
func New(address, password string, db int, opts ...Option) *Store {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "salescoach:session:",
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) key(sessionKey string) string { return s.prefix + sessionKey }

func (s *Store) indexKey() string { return s.prefix + "index" }

// Save persists the session as JSON and updates the expiry index.
func (s *Store) Save(ctx context.Context, key string, session *domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	// Score is the expiry time so List can prune lazily; infinite when no TTL.
	score := float64(1<<62 - 1)
	if s.ttl > 0 {
		score = float64(s.now().Add(s.ttl).Unix())
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.key(key), data, s.ttl)
	pipe.ZAdd(ctx, s.indexKey(), backend.Z{Score: score, Member: key})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Load retrieves and unmarshals the session.
func (s *Store) Load(ctx context.Context, key string) (*domain.Session, error) {
	val, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}
	var session domain.Session
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// Delete removes the session and its index entry.
func (s *Store) Delete(ctx context.Context, key string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, s.key(key))
	pipe.ZRem(ctx, s.indexKey(), key)
	_, err := pipe.Exec(ctx)
	return err
}

// List returns active session keys, pruning expired index entries first.
func (s *Store) List(ctx context.Context) ([]string, error) {
	now := float64(s.now().Unix())
	if err := s.client.ZRemRangeByScore(ctx, s.indexKey(), "-inf", fmt.Sprintf("%f", now)).Err(); err != nil {
		return nil, fmt.Errorf("failed to prune expired sessions: %w", err)
	}
	keys, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return keys, nil
}

// Close closes the underlying client.
func (s *Store) Close() error { return s.client.Close() }
