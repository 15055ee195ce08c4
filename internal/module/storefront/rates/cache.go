package rates

import (
	"sync"
	"time"
)

type Snapshot struct {
	Rates     map[string]float64
	FetchedAt time.Time
}

// SnapshotCache holds the last successful rate refresh. It is owned by the
// use case and keeps its own clock so staleness is testable. Refreshes may
// race; last writer wins, which is fine for idempotent rate data.
type SnapshotCache struct {
	mu       sync.RWMutex
	ttl      time.Duration
	now      func() time.Time
	snapshot *Snapshot
}

func NewSnapshotCache(ttl time.Duration, now func() time.Time) *SnapshotCache {
	if now == nil {
		now = time.Now
	}

	return &SnapshotCache{
		ttl: ttl,
		now: now,
	}
}

// Get returns the cached snapshot when it is still fresh.
func (c *SnapshotCache) Get() (Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.snapshot == nil {
		return Snapshot{}, false
	}
	if c.now().Sub(c.snapshot.FetchedAt) >= c.ttl {
		return Snapshot{}, false
	}

	return *c.snapshot, true
}

func (c *SnapshotCache) Put(rates map[string]float64) Snapshot {
	snapshot := Snapshot{
		Rates:     rates,
		FetchedAt: c.now(),
	}

	c.mu.Lock()
	c.snapshot = &snapshot
	c.mu.Unlock()

	return snapshot
}
