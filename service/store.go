package service

import (
	"context"
	"errors"
	"sync"

	"github.com/redis/go-redis/v9"
)

// ErrKeyNotFound is returned by a SettingsStore when the requested key does
// not exist. The calculator treats a missing rules key as "no discounts
// configured" rather than a failure.
var ErrKeyNotFound = errors.New("service: settings key not found")

// SettingsStore reads serialized settings values by key. Implementations do
// the only I/O in this module; the engine itself never touches a store.
type SettingsStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

// RedisStore backs SettingsStore with a Redis key-value namespace.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an already-configured Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

// MemoryStore is a map-backed SettingsStore for tests and single-process
// setups.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

// Set stores a copy of value under key.
func (s *MemoryStore) Set(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = append([]byte(nil), value...)
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return val, nil
}
