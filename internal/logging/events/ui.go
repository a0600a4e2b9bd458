package events

import "github.com/Clete2/zfs-space-visualizer/internal/logging"

type UITracer struct{}

var UI = UITracer{}

func (UITracer) ViewChange(from, to string) {
	logging.Trace("ui.view", map[string]interface{}{"from": from, "to": to})
}

func (UITracer) Cursor(view string, index int) {
	logging.Trace("ui.cursor", map[string]interface{}{"view": view, "cursor": index})
}

func (UITracer) SortToggle(view, order string) {
	logging.Trace("ui.sort", map[string]interface{}{"view": view, "order": order})
}

func (UITracer) ThemeChange(name string) {
	logging.Trace("ui.theme", map[string]interface{}{"theme": name})
}
