package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const defaultDedupTTL = time.Hour

type claimResult int

const (
	claimNew claimResult = iota
	claimInFlight
	claimDone
)

// deliveryCache remembers recently handled X-GitHub-Delivery ids.
// An id is in flight from claim until complete or release.
// A nil cache accepts everything.
type deliveryCache struct {
	mu  sync.Mutex
	ids *expirable.LRU[string, bool] // value: delivered
}

func newDeliveryCache(size int, ttl time.Duration) *deliveryCache {
	if size <= 0 {
		return nil
	}
	if ttl <= 0 {
		ttl = defaultDedupTTL
	}
	return &deliveryCache{
		ids: expirable.NewLRU[string, bool](size, nil, ttl),
	}
}

// claim reserves id. Anything but claimNew means it is already held.
func (c *deliveryCache) claim(id string) claimResult {
	if c == nil || id == "" {
		return claimNew
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if delivered, ok := c.ids.Get(id); ok {
		if delivered {
			return claimDone
		}
		return claimInFlight
	}
	c.ids.Add(id, false)
	return claimNew
}

// complete marks id as delivered.
func (c *deliveryCache) complete(id string) {
	if c == nil || id == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ids.Add(id, true)
}

// release forgets id so a redelivery is attempted again.
func (c *deliveryCache) release(id string) {
	if c == nil || id == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ids.Remove(id)
}
