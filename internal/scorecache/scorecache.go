// Package scorecache keeps the learner score under a single Redis key, for
// setups where several clients share one score.
package scorecache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/devroad/devroad/internal/logger"
)

// DefaultKey is used when Options.Key is empty.
const DefaultKey = "devroad:score"

type Options struct {
	Addr        string
	Key         string
	DialTimeout time.Duration
}

// Store implements session.ScoreStore on Redis. Writes are last-write-wins.
type Store struct {
	log *logger.Logger
	rdb *goredis.Client
	key string
}

// New connects to the Redis server at opts.Addr and pings it.
func New(ctx context.Context, opts Options, log *logger.Logger) (*Store, error) {
	addr := strings.TrimSpace(opts.Addr)
	if addr == "" {
		return nil, fmt.Errorf("missing redis address")
	}
	timeout := opts.DialTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: timeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewFromClient(rdb, opts.Key, log), nil
}

// NewFromClient wraps an existing client.
func NewFromClient(rdb *goredis.Client, key string, log *logger.Logger) *Store {
	if key == "" {
		key = DefaultKey
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Store{
		log: log.With("service", "RedisScoreStore", "key", key),
		rdb: rdb,
		key: key,
	}
}

// GetScore returns the stored score, or 0 when the key is absent.
func (s *Store) GetScore(ctx context.Context) (int, error) {
	raw, err := s.rdb.Get(ctx, s.key).Result()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis get %s: %w", s.key, err)
	}
	score, err := strconv.Atoi(raw)
	if err != nil {
		s.log.Warn("non-numeric score in redis", "value", raw)
		return 0, fmt.Errorf("parse score %q: %w", raw, err)
	}
	return score, nil
}

// SetScore overwrites the stored score.
func (s *Store) SetScore(ctx context.Context, score int) error {
	if err := s.rdb.Set(ctx, s.key, score, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.key, err)
	}
	return nil
}

// Reset deletes the key.
func (s *Store) Reset(ctx context.Context) error {
	if err := s.rdb.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", s.key, err)
	}
	return nil
}

func (s *Store) Close() error {
	if s == nil || s.rdb == nil {
		return nil
	}
	return s.rdb.Close()
}
