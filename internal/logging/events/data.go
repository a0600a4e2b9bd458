package events

import "github.com/Clete2/zfs-space-visualizer/internal/logging"

type DataTracer struct{}

var Data = DataTracer{}

func (DataTracer) PrefetchStart(datasets, workers int) {
	logging.Trace("data.prefetch.start", map[string]interface{}{
		"datasets": datasets,
		"workers":  workers,
	})
}

func (DataTracer) PrefetchError(dataset string, err error) {
	if err == nil {
		return
	}
	logging.Trace("data.prefetch.error", map[string]interface{}{
		"dataset": dataset,
		"error":   err.Error(),
	})
}

func (DataTracer) PrefetchDone(completed int) {
	logging.Trace("data.prefetch.done", map[string]interface{}{"completed": completed})
}

func (DataTracer) FetchError(kind, target string, err error) {
	if err == nil {
		return
	}
	logging.Trace("data.fetch.error", map[string]interface{}{
		"kind":   kind,
		"target": target,
		"error":  err.Error(),
	})
}

func (DataTracer) CacheHit(dataset string, snapshots int) {
	logging.Trace("data.cache.hit", map[string]interface{}{
		"dataset":   dataset,
		"snapshots": snapshots,
	})
}

func (DataTracer) CacheMiss(dataset string) {
	logging.Trace("data.cache.miss", map[string]interface{}{"dataset": dataset})
}
