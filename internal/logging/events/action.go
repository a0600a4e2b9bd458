package events

import "github.com/Clete2/zfs-space-visualizer/internal/logging"

type ActionTracer struct{}

var Action = ActionTracer{}

func (ActionTracer) DeleteRequested(snapshot string) {
	logging.Trace("action.delete.requested", map[string]interface{}{"snapshot": snapshot})
}

func (ActionTracer) DeleteConfirmed(snapshot string) {
	logging.Trace("action.delete.confirmed", map[string]interface{}{"snapshot": snapshot})
}

func (ActionTracer) DeleteExpired(snapshot string) {
	logging.Trace("action.delete.expired", map[string]interface{}{"snapshot": snapshot})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}
