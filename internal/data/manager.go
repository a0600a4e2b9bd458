package data

import (
	"context"

	"github.com/Clete2/zfs-space-visualizer/internal/logging/events"
	"github.com/Clete2/zfs-space-visualizer/internal/zfs"
)

// Fetcher is the slice of the zfs client the data layer needs; tests
// substitute fakes.
type Fetcher interface {
	ListPools(ctx context.Context) ([]zfs.Pool, error)
	ListDatasets(ctx context.Context, pool string) ([]zfs.Dataset, error)
	ListSnapshots(ctx context.Context, dataset string) ([]zfs.Snapshot, error)
	DestroySnapshot(ctx context.Context, name string) error
}

// Manager owns the loaded pool, dataset and snapshot listings and the
// snapshot cache behind them. All methods run on the caller's goroutine;
// only the prefetcher touches the cache concurrently.
type Manager struct {
	fetcher  Fetcher
	cache    *SnapshotCache
	prefetch *Prefetcher

	Pools     []zfs.Pool
	Datasets  []zfs.Dataset
	Snapshots []zfs.Snapshot
}

func NewManager(fetcher Fetcher, workers int) *Manager {
	cache := NewSnapshotCache()
	return &Manager{
		fetcher:  fetcher,
		cache:    cache,
		prefetch: NewPrefetcher(fetcher, cache, workers),
	}
}

// LoadPools fetches the pool listing and kicks off the background
// snapshot prefetch across all of them.
func (m *Manager) LoadPools(ctx context.Context) error {
	pools, err := m.fetcher.ListPools(ctx)
	if err != nil {
		events.Data.FetchError("pools", "", err)
		return err
	}
	m.Pools = pools
	m.prefetch.Start(ctx, pools)
	return nil
}

// LoadDatasets fetches the dataset listing for the pool.
func (m *Manager) LoadDatasets(ctx context.Context, pool string) error {
	datasets, err := m.fetcher.ListDatasets(ctx, pool)
	if err != nil {
		events.Data.FetchError("datasets", pool, err)
		return err
	}
	m.Datasets = datasets
	return nil
}

// LoadSnapshots serves the dataset's snapshots from the cache when
// present, falling back to a foreground fetch on a miss.
func (m *Manager) LoadSnapshots(ctx context.Context, dataset string) error {
	if cached, ok := m.cache.Get(dataset); ok {
		events.Data.CacheHit(dataset, len(cached))
		m.Snapshots = cached
		return nil
	}
	events.Data.CacheMiss(dataset)
	snapshots, err := m.fetcher.ListSnapshots(ctx, dataset)
	if err != nil {
		events.Data.FetchError("snapshots", dataset, err)
		return err
	}
	m.cache.Put(dataset, snapshots)
	m.Snapshots = snapshots
	return nil
}

// ReloadSnapshots bypasses the cache, refetches the dataset's snapshots
// and stores the fresh listing.
func (m *Manager) ReloadSnapshots(ctx context.Context, dataset string) error {
	m.cache.Invalidate(dataset)
	snapshots, err := m.fetcher.ListSnapshots(ctx, dataset)
	if err != nil {
		events.Data.FetchError("snapshots", dataset, err)
		return err
	}
	m.cache.Put(dataset, snapshots)
	m.Snapshots = snapshots
	return nil
}

// DeleteSnapshot destroys the named snapshot.
func (m *Manager) DeleteSnapshot(ctx context.Context, name string) error {
	return m.fetcher.DestroySnapshot(ctx, name)
}

// PrefetchProgress reports completed and total dataset fetches.
func (m *Manager) PrefetchProgress() (completed, total int) {
	return m.prefetch.Progress()
}

// PrefetchDone reports whether the background prefetch has finished.
func (m *Manager) PrefetchDone() bool {
	return m.prefetch.Done()
}
