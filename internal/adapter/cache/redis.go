package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"resume-renderer/internal/usecase"
)

const redisPrefix = "resume:artifact:"

// RedisStore shares artifacts between server replicas. Each artifact is one
// hash; the whole hash expires after ttl.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ usecase.ArtifactStore = (*RedisStore)(nil)

// NewRedisStore connects using a redis:// URL.
func NewRedisStore(url string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &RedisStore{client: redis.NewClient(opts), ttl: ttl}, nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) Get(ctx context.Context, key string) (*usecase.Artifact, bool, error) {
	// HGETALL returns an empty map for a missing key, not redis.Nil
	vals, err := s.client.HGetAll(ctx, redisPrefix+key).Result()
	if err != nil {
		return nil, false, err
	}
	if len(vals) == 0 {
		return nil, false, nil
	}
	pages, err := strconv.Atoi(vals["pages"])
	if err != nil {
		return nil, false, fmt.Errorf("artifact %s: bad page count: %w", key, err)
	}
	return &usecase.Artifact{
		Key:      key,
		Filename: vals["filename"],
		Pages:    pages,
		PageSize: vals["page_size"],
		HTML:     []byte(vals["html"]),
		PDF:      []byte(vals["pdf"]),
	}, true, nil
}

func (s *RedisStore) Put(ctx context.Context, key string, a *usecase.Artifact) error {
	k := redisPrefix + key
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, k)
	pipe.HSet(ctx, k, map[string]any{
		"filename":  a.Filename,
		"pages":     a.Pages,
		"page_size": a.PageSize,
		"html":      a.HTML,
		"pdf":       a.PDF,
	})
	if s.ttl > 0 {
		pipe.Expire(ctx, k, s.ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}
