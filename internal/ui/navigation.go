package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Clete2/zfs-space-visualizer/internal/logging/events"
	"github.com/Clete2/zfs-space-visualizer/internal/sorting"
	"github.com/Clete2/zfs-space-visualizer/internal/zfs"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg := msg.(tea.KeyMsg)

	if key.Matches(keyMsg, m.keys.Quit) {
		return tea.Quit
	}

	// Any key dismisses an error before doing anything else.
	if m.errMsg != "" {
		m.errMsg = ""
		return nil
	}

	if _, ok := m.view.(helpView); ok {
		return m.handleHelpKey(keyMsg)
	}

	// A pending delete is only confirmed by another press of the delete
	// key; every other key disarms it.
	if m.pendingDelete != "" && !key.Matches(keyMsg, m.keys.Delete) {
		m.pendingDelete = ""
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.moveSelection(-1)
	case key.Matches(keyMsg, m.keys.Down):
		m.moveSelection(1)
	case key.Matches(keyMsg, m.keys.PageUp):
		m.cursorFor(m.view).PageUp(pageSize, m.listLen(m.view))
	case key.Matches(keyMsg, m.keys.PageDown):
		m.cursorFor(m.view).PageDown(pageSize, m.listLen(m.view))
	case key.Matches(keyMsg, m.keys.Enter):
		m.goForward()
	case key.Matches(keyMsg, m.keys.Back):
		return m.goBack()
	case key.Matches(keyMsg, m.keys.Sort):
		m.toggleSort()
	case key.Matches(keyMsg, m.keys.Delete):
		m.handleDeleteKey()
	case key.Matches(keyMsg, m.keys.Refresh):
		m.refresh()
	case key.Matches(keyMsg, m.keys.Help):
		m.previous = m.view
		m.view = helpView{}
		m.themes.SyncSelection()
		events.UI.ViewChange(m.previous.viewName(), "help")
	}
	return nil
}

func (m *Model) handleHelpKey(keyMsg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.themes.Previous()
	case key.Matches(keyMsg, m.keys.Down):
		m.themes.Next()
	case key.Matches(keyMsg, m.keys.Enter):
		m.themes.Select()
		events.UI.ThemeChange(m.themes.Current.String())
	case key.Matches(keyMsg, m.keys.Back), key.Matches(keyMsg, m.keys.Help):
		m.view = m.previous
		m.previous = nil
		if m.view == nil {
			m.view = poolList{}
		}
		events.UI.ViewChange("help", m.view.viewName())
	}
	return nil
}

func (m *Model) moveSelection(delta int) {
	cursor := m.cursorFor(m.view)
	if cursor.Move(delta, m.listLen(m.view)) {
		events.UI.Cursor(m.view.viewName(), cursor.Index)
	}
}

// goForward descends one level: pool list to its datasets, dataset to
// its snapshots. A failed fetch surfaces as an error and stays put.
func (m *Model) goForward() {
	switch v := m.view.(type) {
	case poolList:
		if len(m.manager.Pools) == 0 {
			return
		}
		pool := m.manager.Pools[m.poolCursor.Index]
		if err := m.manager.LoadDatasets(context.Background(), pool.Name); err != nil {
			m.errMsg = "Failed to load datasets: " + err.Error()
			return
		}
		sorting.Datasets(m.manager.Datasets, m.datasetOrder)
		m.datasetCursor.Reset()
		m.view = datasetView{Pool: pool.Name}
		events.UI.ViewChange("pools", m.view.viewName())
	case datasetView:
		if len(m.manager.Datasets) == 0 {
			return
		}
		dataset := m.manager.Datasets[m.datasetCursor.Index]
		if err := m.manager.LoadSnapshots(context.Background(), dataset.Name); err != nil {
			m.errMsg = "Failed to load snapshots: " + err.Error()
			return
		}
		sorting.Snapshots(m.manager.Snapshots, m.snapshotOrder)
		m.snapshotCursor.Reset()
		m.view = snapshotDetail{Pool: v.Pool, Dataset: dataset.Name}
		events.UI.ViewChange(v.viewName(), m.view.viewName())
	}
}

// goBack ascends one level; backing out of the pool list quits.
func (m *Model) goBack() tea.Cmd {
	switch v := m.view.(type) {
	case snapshotDetail:
		m.view = datasetView{Pool: v.Pool}
		events.UI.ViewChange(v.viewName(), m.view.viewName())
	case datasetView:
		m.view = poolList{}
		events.UI.ViewChange(v.viewName(), "pools")
	case poolList:
		return tea.Quit
	}
	return nil
}

// toggleSort advances the active view's sort order, re-sorts the
// listing once and returns the selection to the top; rendering never
// sorts.
func (m *Model) toggleSort() {
	switch m.view.(type) {
	case datasetView:
		m.datasetOrder = m.datasetOrder.Next()
		sorting.Datasets(m.manager.Datasets, m.datasetOrder)
		m.datasetCursor.Reset()
		events.UI.SortToggle(m.view.viewName(), m.datasetOrder.String())
	case snapshotDetail:
		m.snapshotOrder = m.snapshotOrder.Next()
		sorting.Snapshots(m.manager.Snapshots, m.snapshotOrder)
		m.snapshotCursor.Reset()
		events.UI.SortToggle(m.view.viewName(), m.snapshotOrder.String())
	}
}

// handleDeleteKey arms deletion on the first press and confirms it on
// the second, as long as the confirmation window has not expired.
func (m *Model) handleDeleteKey() {
	v, ok := m.view.(snapshotDetail)
	if !ok || len(m.manager.Snapshots) == 0 {
		return
	}
	if m.readOnly {
		m.errMsg = "Read-only mode: snapshot deletion is disabled."
		return
	}
	snapshot := m.manager.Snapshots[m.snapshotCursor.Index]

	if m.pendingDelete == snapshot.Name {
		m.pendingDelete = ""
		events.Action.DeleteConfirmed(snapshot.Name)
		if err := m.manager.DeleteSnapshot(context.Background(), snapshot.Name); err != nil {
			events.Action.Error(err)
			m.errMsg = zfs.FriendlyDeleteError(err)
		}
		// Refresh the listing either way: a "does not exist" failure
		// means it is already gone.
		if err := m.manager.ReloadSnapshots(context.Background(), v.Dataset); err == nil {
			sorting.Snapshots(m.manager.Snapshots, m.snapshotOrder)
		}
		m.snapshotCursor.Clamp(len(m.manager.Snapshots))
		return
	}

	m.pendingDelete = snapshot.Name
	m.pendingDeleteAt = m.now()
	events.Action.DeleteRequested(snapshot.Name)
}

func (m *Model) expirePendingDelete() {
	if m.pendingDelete == "" {
		return
	}
	if m.now().Sub(m.pendingDeleteAt) >= deleteConfirmTimeout {
		events.Action.DeleteExpired(m.pendingDelete)
		m.pendingDelete = ""
	}
}

// refresh refetches the active listing, bypassing the snapshot cache.
func (m *Model) refresh() {
	switch v := m.view.(type) {
	case poolList:
		if err := m.manager.LoadPools(context.Background()); err != nil {
			m.errMsg = "Failed to reload pools: " + err.Error()
			return
		}
		m.poolCursor.Clamp(len(m.manager.Pools))
	case datasetView:
		if err := m.manager.LoadDatasets(context.Background(), v.Pool); err != nil {
			m.errMsg = "Failed to reload datasets: " + err.Error()
			return
		}
		sorting.Datasets(m.manager.Datasets, m.datasetOrder)
		m.datasetCursor.Reset()
	case snapshotDetail:
		if err := m.manager.ReloadSnapshots(context.Background(), v.Dataset); err != nil {
			m.errMsg = "Failed to reload snapshots: " + err.Error()
			return
		}
		sorting.Snapshots(m.manager.Snapshots, m.snapshotOrder)
		m.snapshotCursor.Reset()
	}
}
