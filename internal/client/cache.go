package client

import (
	"context"
	"sync"
	"time"

	"estudiapro_client/internal/config"
	"estudiapro_client/pkg/monitoring"

	"golang.org/x/sync/singleflight"
)

// CacheKind names one cached catalog list.
type CacheKind string

const (
	CacheSubjects  CacheKind = "subjects"
	CacheResources CacheKind = "resources"
	CacheExams     CacheKind = "exams"
	CacheTutors    CacheKind = "tutors"
	CacheForums    CacheKind = "forums"
)

type cacheSlot struct {
	data      any
	fetchedAt time.Time
}

// CatalogCache keeps one slot per kind with its own TTL. Misses for the same
// kind are coalesced so concurrent callers share a single upstream fetch.
type CatalogCache struct {
	mu    sync.Mutex
	slots map[CacheKind]cacheSlot
	ttls  map[CacheKind]time.Duration
	group singleflight.Group
	now   func() time.Time
}

func NewCatalogCache(cfg *config.CacheConfig) *CatalogCache {
	return &CatalogCache{
		slots: make(map[CacheKind]cacheSlot),
		ttls: map[CacheKind]time.Duration{
			CacheSubjects:  cfg.SubjectsTTL,
			CacheResources: cfg.ResourcesTTL,
			CacheExams:     cfg.ExamsTTL,
			CacheTutors:    cfg.TutorsTTL,
			CacheForums:    cfg.ForumsTTL,
		},
		now: time.Now,
	}
}

// Get returns the cached value for kind when it is still fresh, otherwise
// runs fetch and stores the result. forceRefresh skips the freshness check
// but still coalesces with an in-flight fetch for the same kind.
func (c *CatalogCache) Get(ctx context.Context, kind CacheKind, forceRefresh bool, fetch func(ctx context.Context) (any, error)) (any, error) {
	if !forceRefresh {
		if data, ok := c.fresh(kind); ok {
			monitoring.CacheHits.WithLabelValues(string(kind)).Inc()
			return data, nil
		}
	}
	monitoring.CacheMisses.WithLabelValues(string(kind)).Inc()

	data, err, _ := c.group.Do(string(kind), func() (any, error) {
		data, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.slots[kind] = cacheSlot{data: data, fetchedAt: c.now()}
		c.mu.Unlock()
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (c *CatalogCache) fresh(kind CacheKind) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	slot, ok := c.slots[kind]
	if !ok {
		return nil, false
	}
	ttl := c.ttls[kind]
	if ttl <= 0 || c.now().Sub(slot.fetchedAt) >= ttl {
		return nil, false
	}
	return slot.data, true
}

func (c *CatalogCache) Invalidate(kind CacheKind) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.slots, kind)
}

func (c *CatalogCache) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.slots = make(map[CacheKind]cacheSlot)
}
