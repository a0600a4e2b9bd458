package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Clete2/zfs-space-visualizer/internal/zfs"
)

func TestPoolViewShowsUsageLabelAndBar(t *testing.T) {
	m := newTestModel(t, newTestFetcher())
	out := m.View()

	if !strings.Contains(out, "ZFS Pools") {
		t.Fatalf("expected title, got:\n%s", out)
	}
	if !strings.Contains(out, "3.0T / 10.0T (30%)") {
		t.Fatalf("expected usage label, got:\n%s", out)
	}
	// 30% of a 20-cell bar is 6 filled cells.
	bar := strings.Repeat("█", 6) + strings.Repeat("░", 14)
	if !strings.Contains(out, bar) {
		t.Fatalf("expected 30%% bar %q, got:\n%s", bar, out)
	}
	if !strings.Contains(out, "[ONLINE]") {
		t.Fatalf("expected health marker, got:\n%s", out)
	}
}

func TestDatasetViewLabelsRootDataset(t *testing.T) {
	m := newTestModel(t, newTestFetcher())
	press(m, keyType(tea.KeyEnter))
	out := m.View()

	if !strings.Contains(out, "Datasets in Pool: tank (Sort: Total Size ↓)") {
		t.Fatalf("expected dataset title with sort, got:\n%s", out)
	}
	if !strings.Contains(out, "(root dataset)") {
		t.Fatalf("expected root dataset placeholder, got:\n%s", out)
	}
	if strings.Contains(out, "tank/home") {
		t.Fatalf("expected pool prefix stripped from dataset names, got:\n%s", out)
	}
	if !strings.Contains(out, "home") {
		t.Fatalf("expected stripped dataset name, got:\n%s", out)
	}
}

func TestSnapshotViewShowsShortNamesAndPosition(t *testing.T) {
	m := newTestModel(t, newTestFetcher())
	press(m, keyType(tea.KeyEnter))
	press(m, keyType(tea.KeyEnter))
	out := m.View()

	if !strings.Contains(out, "Snapshots: tank/home (Sort: Used ↓)") {
		t.Fatalf("expected snapshot title, got:\n%s", out)
	}
	if !strings.Contains(out, "new") || !strings.Contains(out, "old") {
		t.Fatalf("expected snapshot short names, got:\n%s", out)
	}
	if !strings.Contains(out, "(1/2)") {
		t.Fatalf("expected position indicator, got:\n%s", out)
	}
}

func TestPendingDeleteWarningShown(t *testing.T) {
	m := newTestModel(t, newTestFetcher())
	press(m, keyType(tea.KeyEnter))
	press(m, keyType(tea.KeyEnter))
	press(m, keyRune('d'))
	out := m.View()

	if !strings.Contains(out, "Press d again to delete") {
		t.Fatalf("expected delete confirmation warning, got:\n%s", out)
	}
}

func TestHelpViewPositionTracksThemeSelection(t *testing.T) {
	fetcher := newTestFetcher()
	fetcher.pools = append(fetcher.pools,
		zfs.Pool{Name: "backup", Health: "ONLINE"},
		zfs.Pool{Name: "scratch", Health: "ONLINE"},
	)
	m := newTestModel(t, fetcher)
	press(m, keyRune('j'))
	press(m, keyRune('j'))
	press(m, keyRune('?'))
	out := m.View()

	if !strings.Contains(out, "(1/2)") {
		t.Fatalf("expected theme picker position, got:\n%s", out)
	}
	press(m, keyRune('j'))
	out = m.View()
	if !strings.Contains(out, "(2/2)") {
		t.Fatalf("expected position to follow theme selection, got:\n%s", out)
	}
}

func TestErrorLineShown(t *testing.T) {
	m := newTestModel(t, newTestFetcher())
	m.errMsg = "Snapshot no longer exists."
	out := m.View()

	if !strings.Contains(out, "Error: Snapshot no longer exists.") {
		t.Fatalf("expected error line, got:\n%s", out)
	}
}

func TestViewTruncatesToWindowWidth(t *testing.T) {
	m := newTestModel(t, newTestFetcher())
	m.Update(tea.WindowSizeMsg{Width: 30, Height: 20})
	out := m.View()

	for _, line := range strings.Split(out, "\n") {
		if n := visibleWidth(line); n > 30 {
			t.Fatalf("line wider than window (%d cells): %q", n, line)
		}
	}
}

func visibleWidth(line string) int {
	// Strip the simplest CSI sequences styles may emit under test.
	for {
		start := strings.Index(line, "\x1b[")
		if start < 0 {
			break
		}
		end := strings.IndexByte(line[start:], 'm')
		if end < 0 {
			break
		}
		line = line[:start] + line[start+end+1:]
	}
	width := 0
	for range line {
		width++
	}
	return width
}
