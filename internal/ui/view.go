package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/Clete2/zfs-space-visualizer/internal/theme"
	"github.com/Clete2/zfs-space-visualizer/internal/zfs"
)

type styledLine struct {
	text  string
	style *lipgloss.Style
}

// View implements tea.Model.
func (m *Model) View() string {
	styles := m.themes.Styles()

	var lines []styledLine
	switch v := m.view.(type) {
	case helpView:
		lines = m.viewHelp(styles)
	case datasetView:
		lines = m.viewDatasets(styles, v)
	case snapshotDetail:
		lines = m.viewSnapshots(styles, v)
	default:
		lines = m.viewPools(styles)
	}

	lines = limitHeight(lines, m.height-statusBarRows, m.width)
	lines = append(lines, m.statusBar(styles)...)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

const statusBarRows = 3

func (m *Model) viewPools(styles *theme.Styles) []styledLine {
	lines := []styledLine{
		{text: "ZFS Pools", style: styles.Title},
		{},
	}
	if len(m.manager.Pools) == 0 {
		return append(lines, styledLine{text: "(no pools found)", style: styles.Info})
	}

	nameW := minNameWidth
	for _, p := range m.manager.Pools {
		if len(p.Name) > nameW {
			nameW = len(p.Name)
		}
	}

	cursor := &m.poolCursor
	cursor.EnsureVisible(len(m.manager.Pools), m.visibleRows())
	for i, p := range m.manager.Pools[cursor.Offset:] {
		idx := cursor.Offset + i
		if i >= m.visibleRows() {
			break
		}
		capacity := p.UsableSize
		if capacity == 0 {
			capacity = p.Size
		}
		row := fmt.Sprintf("%-*s [%s] %s [%s]",
			nameW, p.Name,
			usageBar(p.Allocated, capacity),
			zfs.UsageLabel(p.Allocated, capacity),
			p.Health,
		)
		lines = append(lines, m.itemLine(styles, row, idx == cursor.Index))
	}
	return lines
}

func (m *Model) viewDatasets(styles *theme.Styles, v datasetView) []styledLine {
	title := fmt.Sprintf("Datasets in Pool: %s (Sort: %s)", v.Pool, m.datasetOrder)
	lines := []styledLine{
		{text: title, style: styles.Title},
		{},
	}
	datasets := m.manager.Datasets
	if len(datasets) == 0 {
		return append(lines, styledLine{text: "(no datasets)", style: styles.Info})
	}

	nameW := minNameWidth
	var maxTotal uint64
	for _, d := range datasets {
		if n := len(datasetLabel(v.Pool, d.Name)); n > nameW {
			nameW = n
		}
		if t := d.Referenced + d.SnapshotUsed; t > maxTotal {
			maxTotal = t
		}
	}

	cursor := &m.datasetCursor
	cursor.EnsureVisible(len(datasets), m.visibleRows())
	for i, d := range datasets[cursor.Offset:] {
		idx := cursor.Offset + i
		if i >= m.visibleRows() {
			break
		}
		total := d.Referenced + d.SnapshotUsed
		row := fmt.Sprintf("%-*s R:[%s] %-7s S:[%s] %-7s T: %s",
			nameW, datasetLabel(v.Pool, d.Name),
			usageBar(d.Referenced, maxTotal),
			zfs.FormatBytes(d.Referenced),
			usageBar(d.SnapshotUsed, maxTotal),
			zfs.FormatBytes(d.SnapshotUsed),
			zfs.FormatBytes(total),
		)
		lines = append(lines, m.itemLine(styles, row, idx == cursor.Index))
	}
	return lines
}

func (m *Model) viewSnapshots(styles *theme.Styles, v snapshotDetail) []styledLine {
	title := fmt.Sprintf("Snapshots: %s (Sort: %s)", v.Dataset, m.snapshotOrder)
	lines := []styledLine{
		{text: title, style: styles.Title},
		{},
	}
	snapshots := m.manager.Snapshots
	if len(snapshots) == 0 {
		return append(lines, styledLine{text: "(no snapshots)", style: styles.Info})
	}

	nameW := minNameWidth
	var maxSize uint64
	for _, s := range snapshots {
		if n := len(s.ShortName()); n > nameW {
			nameW = n
		}
		if s.Used > maxSize {
			maxSize = s.Used
		}
		if s.Referenced > maxSize {
			maxSize = s.Referenced
		}
	}

	cursor := &m.snapshotCursor
	cursor.EnsureVisible(len(snapshots), m.visibleRows())
	for i, s := range snapshots[cursor.Offset:] {
		idx := cursor.Offset + i
		if i >= m.visibleRows() {
			break
		}
		row := fmt.Sprintf("%-*s U:[%s] %-7s R:[%s] %-7s %s",
			nameW, s.ShortName(),
			usageBar(s.Used, maxSize),
			zfs.FormatBytes(s.Used),
			usageBar(s.Referenced, maxSize),
			zfs.FormatBytes(s.Referenced),
			s.Creation,
		)
		lines = append(lines, m.itemLine(styles, row, idx == cursor.Index))
	}
	return lines
}

func (m *Model) viewHelp(styles *theme.Styles) []styledLine {
	lines := []styledLine{
		{text: "Help", style: styles.Title},
		{},
		{text: "↑/k, ↓/j     move selection", style: styles.Info},
		{text: "pgup/pgdn    move a page at a time", style: styles.Info},
		{text: "enter        open pool or dataset", style: styles.Info},
		{text: "esc          go back (quits from the pool list)", style: styles.Info},
		{text: "s            cycle sort order", style: styles.Info},
		{text: "d            delete snapshot (press twice within 3s)", style: styles.Info},
		{text: "r            refresh current listing", style: styles.Info},
		{text: "?            toggle this help", style: styles.Info},
		{text: "q            quit", style: styles.Info},
		{},
		{text: "Theme", style: styles.Title},
	}
	for i, v := range theme.Variants {
		marker := "  "
		if v == m.themes.Current {
			marker = "* "
		}
		lines = append(lines, m.itemLine(styles, marker+v.String(), i == m.themes.SelectedIndex))
	}
	return lines
}

// statusBar renders the bottom rows: position and prefetch progress,
// then a line for the pending delete warning or error, then key hints.
func (m *Model) statusBar(styles *theme.Styles) []styledLine {
	index := m.cursorFor(m.view).Index
	if _, ok := m.view.(helpView); ok {
		index = m.themes.SelectedIndex
	}
	total := m.listLen(m.view)
	position := "(0/0)"
	if total > 0 {
		position = fmt.Sprintf("(%d/%d)", index+1, total)
	}

	status := position
	if !m.manager.PrefetchDone() {
		completed, totalSets := m.manager.PrefetchProgress()
		status = fmt.Sprintf("%s  %sLoading snapshots for dataset %d of %d",
			position, m.spin.View(), completed, totalSets)
	}

	var alert styledLine
	switch {
	case m.errMsg != "":
		alert = styledLine{text: "Error: " + m.errMsg, style: styles.Error}
	case m.pendingDelete != "":
		alert = styledLine{
			text:  fmt.Sprintf("Press d again to delete %q", m.pendingDelete),
			style: styles.Warning,
		}
	}

	return []styledLine{
		{text: status, style: styles.Info},
		alert,
		{text: "↑/↓ move  enter open  esc back  s sort  d delete  r refresh  ? help  q quit", style: styles.Footer},
	}
}

func (m *Model) itemLine(styles *theme.Styles, text string, selected bool) styledLine {
	if selected {
		return styledLine{text: "> " + text, style: styles.SelectedItem}
	}
	return styledLine{text: "  " + text, style: styles.Item}
}

// visibleRows returns how many list rows fit between the title block
// and the status bar.
func (m *Model) visibleRows() int {
	if m.height <= 0 {
		return pageSize
	}
	remain := m.height - 2 - statusBarRows
	if remain < 1 {
		return 1
	}
	return remain
}

// datasetLabel strips the pool prefix from a dataset name; the pool's
// root dataset gets a placeholder.
func datasetLabel(pool, name string) string {
	if name == pool {
		return "(root dataset)"
	}
	return strings.TrimPrefix(name, pool+"/")
}

// usageBar renders a fixed-width gauge of used against capacity.
func usageBar(used, capacity uint64) string {
	filled := 0
	if capacity > 0 {
		filled = int(float64(used) / float64(capacity) * barWidth)
	}
	if filled > barWidth {
		filled = barWidth
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		result[i] = styledLine{text: truncateText(line.text, width), style: line.style}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	if lipgloss.Width(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
