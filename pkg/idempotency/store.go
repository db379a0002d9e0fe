// Package idempotency provides duplicate-suppression for mutating API
// requests. A request carrying an idempotency key claims the key before
// processing; duplicates either get the cached response or a conflict while
// the original is still in flight.
package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// State of an idempotency key.
type State int

const (
	// StateNew means the caller claimed the key and owns processing.
	StateNew State = iota
	// StateProcessing means another request holds the key and has not
	// finished.
	StateProcessing
	// StateCompleted means a response is cached for replay.
	StateCompleted
)

// Result is the cached response for a completed key.
type Result struct {
	StatusCode  int    `json:"status_code"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// Store tracks idempotency keys across their lifecycle.
type Store interface {
	// Begin claims the key. StateNew means the caller owns processing;
	// StateCompleted returns the cached result for replay.
	Begin(ctx context.Context, key string) (State, *Result, error)

	// Complete caches the response for replay and releases the processing
	// claim.
	Complete(ctx context.Context, key string, res Result) error

	// Release drops the claim without caching, so a retry can reprocess.
	Release(ctx context.Context, key string) error
}

const (
	keyPrefix       = "idem:"
	processingValue = "processing"
)

// RedisStore implements Store over Redis. The processing claim is a SETNX
// with a short TTL so a crashed node cannot block retries forever.
type RedisStore struct {
	client        *redis.Client
	processingTTL time.Duration
	resultTTL     time.Duration
}

// NewRedisStore creates a Redis-backed store.
func NewRedisStore(client *redis.Client, processingTTL, resultTTL time.Duration) *RedisStore {
	if processingTTL <= 0 {
		processingTTL = 60 * time.Second
	}
	if resultTTL <= 0 {
		resultTTL = 24 * time.Hour
	}
	return &RedisStore{
		client:        client,
		processingTTL: processingTTL,
		resultTTL:     resultTTL,
	}
}

func (s *RedisStore) Begin(ctx context.Context, key string) (State, *Result, error) {
	k := keyPrefix + key

	claimed, err := s.client.SetNX(ctx, k, processingValue, s.processingTTL).Result()
	if err != nil {
		return 0, nil, fmt.Errorf("failed to claim idempotency key: %w", err)
	}
	if claimed {
		return StateNew, nil, nil
	}

	val, err := s.client.Get(ctx, k).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// Claim expired between SetNX and Get; treat as in flight and
			// let the client retry.
			return StateProcessing, nil, nil
		}
		return 0, nil, fmt.Errorf("failed to read idempotency key: %w", err)
	}
	if val == processingValue {
		return StateProcessing, nil, nil
	}

	var res Result
	if err := json.Unmarshal([]byte(val), &res); err != nil {
		return 0, nil, fmt.Errorf("corrupt cached result for idempotency key: %w", err)
	}
	return StateCompleted, &res, nil
}

func (s *RedisStore) Complete(ctx context.Context, key string, res Result) error {
	body, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("failed to marshal cached result: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+key, body, s.resultTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache idempotency result: %w", err)
	}
	return nil
}

func (s *RedisStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to release idempotency key: %w", err)
	}
	return nil
}

// MemoryStore is an in-process Store for tests and single-node development.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
}

type memoryEntry struct {
	result *Result // nil while processing
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]*memoryEntry)}
}

func (s *MemoryStore) Begin(_ context.Context, key string) (State, *Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		s.entries[key] = &memoryEntry{}
		return StateNew, nil, nil
	}
	if entry.result == nil {
		return StateProcessing, nil, nil
	}
	return StateCompleted, entry.result, nil
}

func (s *MemoryStore) Complete(_ context.Context, key string, res Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = &memoryEntry{result: &res}
	return nil
}

func (s *MemoryStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}
