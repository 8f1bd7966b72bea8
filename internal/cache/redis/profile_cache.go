package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/DruxAMB/based-list/internal/features/profile/models"
	rplatform "github.com/DruxAMB/based-list/internal/platform/redis"
)

// ProfileCache provides Redis-based read caching for profile documents.
// A cache miss or failure always degrades to a store read.
type ProfileCache struct {
	client *rplatform.Client
	ttl    time.Duration
}

func NewProfileCache(client *rplatform.Client, ttl time.Duration) *ProfileCache {
	return &ProfileCache{client: client, ttl: ttl}
}

func (c *ProfileCache) key(userID string) string {
	return fmt.Sprintf("profile:%s", userID)
}

// Get returns the cached profile for an identity, or an error when missing.
func (c *ProfileCache) Get(ctx context.Context, userID string) (*models.Profile, error) {
	v, err := c.client.Get(ctx, c.key(userID)).Bytes()
	if err != nil {
		return nil, err
	}
	var p models.Profile
	if err := json.Unmarshal(v, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Set stores the profile with TTL.
func (c *ProfileCache) Set(ctx context.Context, userID string, p *models.Profile) error {
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(userID), b, c.ttl).Err()
}

// Invalidate removes the cached profile for an identity.
func (c *ProfileCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}
