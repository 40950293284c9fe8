package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/feedbackhub/feedback-portal/internal/core/domain"
)

const (
	roleCacheKey = "portal:roles"
	roleCacheTTL = 10 * time.Minute
)

// RoleCache caches the backend's registration role list in Redis. Any cache
// failure reads as a miss so the caller falls through to the backend.
type RoleCache struct {
	client *redis.Client
}

// NewRoleCache creates a RoleCache wrapping the given Redis client.
func NewRoleCache(client *redis.Client) *RoleCache {
	return &RoleCache{client: client}
}

func (c *RoleCache) Get(ctx context.Context) ([]domain.Role, bool) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	raw, err := c.client.Get(ctx, roleCacheKey).Bytes()
	if err != nil {
		return nil, false
	}

	var roles []domain.Role
	if err := json.Unmarshal(raw, &roles); err != nil {
		return nil, false
	}
	return roles, true
}

func (c *RoleCache) Set(ctx context.Context, roles []domain.Role) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	raw, err := json.Marshal(roles)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, roleCacheKey, raw, roleCacheTTL).Err()
}
