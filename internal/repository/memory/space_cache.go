package memory

import (
	"time"

	"devzen-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// SpaceCache is a read-through cache of each user's space list. Mutating
// services invalidate the owning user's entry instead of refetching the world,
// so a push-notification refresh and a local mutation refresh cannot serve each
// other stale data for longer than one read.
type SpaceCache struct {
	cache *cache.Cache
}

func NewSpaceCache() *SpaceCache {
	// Default expiration 5 minutes, purge every 10.
	return &SpaceCache{
		cache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

func (c *SpaceCache) Get(userId uuid.UUID) ([]*entity.Space, bool) {
	if x, found := c.cache.Get(userId.String()); found {
		return x.([]*entity.Space), true
	}
	return nil, false
}

func (c *SpaceCache) Set(userId uuid.UUID, spaces []*entity.Space) {
	c.cache.Set(userId.String(), spaces, cache.DefaultExpiration)
}

func (c *SpaceCache) Invalidate(userId uuid.UUID) {
	c.cache.Delete(userId.String())
}
