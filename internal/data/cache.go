package data

import (
	"sync"

	"github.com/Clete2/zfs-space-visualizer/internal/zfs"
)

// SnapshotCache holds snapshot listings keyed by dataset name. It is
// written concurrently by the prefetcher and read from the UI loop.
type SnapshotCache struct {
	mu      sync.Mutex
	entries map[string][]zfs.Snapshot
}

func NewSnapshotCache() *SnapshotCache {
	return &SnapshotCache{entries: make(map[string][]zfs.Snapshot)}
}

// Get returns a copy of the cached listing for the dataset. An empty
// listing reports a miss, so datasets whose prefetch found nothing are
// re-queried on demand.
func (c *SnapshotCache) Get(dataset string) ([]zfs.Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[dataset]
	if !ok || len(entry) == 0 {
		return nil, false
	}
	out := make([]zfs.Snapshot, len(entry))
	copy(out, entry)
	return out, true
}

// Put stores a copy of the listing, replacing any previous entry.
func (c *SnapshotCache) Put(dataset string, snapshots []zfs.Snapshot) {
	entry := make([]zfs.Snapshot, len(snapshots))
	copy(entry, snapshots)
	c.mu.Lock()
	c.entries[dataset] = entry
	c.mu.Unlock()
}

// Invalidate drops the dataset's entry.
func (c *SnapshotCache) Invalidate(dataset string) {
	c.mu.Lock()
	delete(c.entries, dataset)
	c.mu.Unlock()
}

// Len reports how many datasets currently have entries.
func (c *SnapshotCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
