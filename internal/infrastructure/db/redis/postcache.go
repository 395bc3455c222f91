package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/portfolio-site/blog-api/internal/core/domain"
)

const publicPostsKey = "posts:public"

// PostCache caches the public post listing in Redis with a bounded TTL.
// Mutating operations invalidate the key; readers fall through to the
// repository on a miss.
type PostCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPostCache creates a PostCache wrapping the given Redis client.
func NewPostCache(client *redis.Client, ttl time.Duration) *PostCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &PostCache{client: client, ttl: ttl}
}

func (c *PostCache) GetPublic(ctx context.Context) ([]domain.Post, bool, error) {
	raw, err := c.client.Get(ctx, publicPostsKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var posts []domain.Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		// A corrupt entry behaves like a miss.
		return nil, false, nil
	}
	return posts, true, nil
}

func (c *PostCache) SetPublic(ctx context.Context, posts []domain.Post) error {
	raw, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}
	return c.client.Set(ctx, publicPostsKey, raw, c.ttl).Err()
}

func (c *PostCache) InvalidatePublic(ctx context.Context) error {
	return c.client.Del(ctx, publicPostsKey).Err()
}
