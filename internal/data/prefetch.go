package data

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/Clete2/zfs-space-visualizer/internal/logging/events"
	"github.com/Clete2/zfs-space-visualizer/internal/zfs"
)

// Prefetcher warms the snapshot cache for every dataset in every pool,
// with a bounded number of concurrent zfs invocations. Individual fetch
// failures are logged and skipped; the affected dataset is simply loaded
// on demand later.
type Prefetcher struct {
	fetcher Fetcher
	cache   *SnapshotCache
	workers int

	total     atomic.Int64
	completed atomic.Int64
	done      atomic.Bool
}

func NewPrefetcher(fetcher Fetcher, cache *SnapshotCache, workers int) *Prefetcher {
	if workers < 1 {
		workers = 1
	}
	return &Prefetcher{fetcher: fetcher, cache: cache, workers: workers}
}

// Start launches the prefetch in the background and returns immediately.
func (p *Prefetcher) Start(ctx context.Context, pools []zfs.Pool) {
	go p.run(ctx, pools)
}

func (p *Prefetcher) run(ctx context.Context, pools []zfs.Pool) {
	// A pool reload restarts the prefetch; counters restart with it so
	// completed can never outrun total.
	p.done.Store(false)
	p.completed.Store(0)
	p.total.Store(0)

	var datasets []string
	for _, pool := range pools {
		listed, err := p.fetcher.ListDatasets(ctx, pool.Name)
		if err != nil {
			events.Data.FetchError("datasets", pool.Name, err)
			continue
		}
		for _, d := range listed {
			datasets = append(datasets, d.Name)
		}
	}
	p.total.Store(int64(len(datasets)))
	events.Data.PrefetchStart(len(datasets), p.workers)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for _, name := range datasets {
		name := name
		g.Go(func() error {
			defer p.completed.Add(1)
			snapshots, err := p.fetcher.ListSnapshots(ctx, name)
			if err != nil {
				events.Data.PrefetchError(name, err)
				return nil
			}
			p.cache.Put(name, snapshots)
			return nil
		})
	}
	g.Wait()
	p.done.Store(true)
	events.Data.PrefetchDone(int(p.completed.Load()))
}

// Progress reports how many dataset fetches have finished out of the
// total, counting failed fetches as finished.
func (p *Prefetcher) Progress() (completed, total int) {
	return int(p.completed.Load()), int(p.total.Load())
}

// Done reports whether the prefetch has finished all datasets.
func (p *Prefetcher) Done() bool {
	return p.done.Load()
}
