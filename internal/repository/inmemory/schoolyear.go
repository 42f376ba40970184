package inmemory

import (
	"sync"
	"time"

	yeardomain "volunteer-tracker-go/internal/domain/schoolyear"
)

// SchoolYearCache is a single-slot TTL cache for the active school year.
type SchoolYearCache struct {
	mu   sync.RWMutex
	item *schoolYearItem
	now  func() time.Time
}

type schoolYearItem struct {
	value     yeardomain.SchoolYear
	expiresAt time.Time
}

func NewSchoolYearCache() *SchoolYearCache {
	return NewSchoolYearCacheWithClock(time.Now)
}

func NewSchoolYearCacheWithClock(now func() time.Time) *SchoolYearCache {
	return &SchoolYearCache{now: now}
}

func (c *SchoolYearCache) Get() (*yeardomain.SchoolYear, bool) {
	now := c.now()

	c.mu.RLock()
	item := c.item
	c.mu.RUnlock()
	if item == nil {
		return nil, false
	}

	if !item.expiresAt.After(now) {
		c.mu.Lock()
		if c.item == item {
			c.item = nil
		}
		c.mu.Unlock()
		return nil, false
	}

	value := item.value
	return &value, true
}

func (c *SchoolYearCache) Set(year *yeardomain.SchoolYear, ttl time.Duration) {
	if year == nil || ttl <= 0 {
		c.Clear()
		return
	}

	c.mu.Lock()
	c.item = &schoolYearItem{
		value:     *year,
		expiresAt: c.now().Add(ttl),
	}
	c.mu.Unlock()
}

func (c *SchoolYearCache) Clear() {
	c.mu.Lock()
	c.item = nil
	c.mu.Unlock()
}
