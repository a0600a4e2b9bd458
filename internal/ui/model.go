package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Clete2/zfs-space-visualizer/internal/data"
	"github.com/Clete2/zfs-space-visualizer/internal/sorting"
	"github.com/Clete2/zfs-space-visualizer/internal/theme"
	uistate "github.com/Clete2/zfs-space-visualizer/internal/ui/state"
)

const (
	pageSize             = 10
	barWidth             = 20
	minNameWidth         = 20
	deleteConfirmTimeout = 3 * time.Second
	tickInterval         = 100 * time.Millisecond
)

// view is the closed set of screens the model can show.
type view interface {
	viewName() string
}

type poolList struct{}

type datasetView struct {
	Pool string
}

type snapshotDetail struct {
	Pool    string
	Dataset string
}

type helpView struct{}

func (poolList) viewName() string         { return "pools" }
func (v datasetView) viewName() string    { return "datasets:" + v.Pool }
func (v snapshotDetail) viewName() string { return "snapshots:" + v.Dataset }
func (helpView) viewName() string         { return "help" }

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the pool/dataset/snapshot
// dashboard.
type Model struct {
	manager  *data.Manager
	themes   *theme.Manager
	keys     keyMap
	readOnly bool

	view     view
	previous view

	poolCursor     uistate.Cursor
	datasetCursor  uistate.Cursor
	snapshotCursor uistate.Cursor

	datasetOrder  sorting.DatasetOrder
	snapshotOrder sorting.SnapshotOrder

	pendingDelete   string
	pendingDeleteAt time.Time
	errMsg          string

	spin   spinner.Model
	width  int
	height int

	// now is swapped out by tests driving the delete timeout.
	now func() time.Time

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI on the pool list.
func NewModel(manager *data.Manager, themes *theme.Manager, readOnly bool) *Model {
	m := &Model{
		manager:  manager,
		themes:   themes,
		keys:     defaultKeyMap(),
		readOnly: readOnly,
		view:     poolList{},
		now:      time.Now,
	}
	s := spinner.New()
	s.Spinner = spinner.Dot
	if loading := themes.Styles().Loading; loading != nil {
		s.Style = *loading
	}
	m.spin = s
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, tick())
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tickMsg{}):           m.handleTickMsg,
		reflect.TypeOf(spinner.TickMsg{}):   m.handleSpinnerTickMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size := msg.(tea.WindowSizeMsg)
	m.width = size.Width
	m.height = size.Height
	return nil
}

func (m *Model) handleTickMsg(tea.Msg) tea.Cmd {
	m.expirePendingDelete()
	return tick()
}

func (m *Model) handleSpinnerTickMsg(msg tea.Msg) tea.Cmd {
	if m.manager.PrefetchDone() {
		return nil
	}
	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg.(spinner.TickMsg))
	return cmd
}

// cursorFor returns the cursor backing the current view. Pool, dataset
// and snapshot positions are tracked separately so going back restores
// the previous selection.
func (m *Model) cursorFor(v view) *uistate.Cursor {
	switch v.(type) {
	case datasetView:
		return &m.datasetCursor
	case snapshotDetail:
		return &m.snapshotCursor
	default:
		return &m.poolCursor
	}
}

func (m *Model) listLen(v view) int {
	switch v.(type) {
	case datasetView:
		return len(m.manager.Datasets)
	case snapshotDetail:
		return len(m.manager.Snapshots)
	case helpView:
		return len(theme.Variants)
	default:
		return len(m.manager.Pools)
	}
}
