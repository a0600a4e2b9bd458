package sorting

import (
	"sort"

	"github.com/Clete2/zfs-space-visualizer/internal/zfs"
)

// DatasetOrder cycles through the dataset sort modes in the order the
// toggle key walks them.
type DatasetOrder int

const (
	DatasetTotalDesc DatasetOrder = iota
	DatasetTotalAsc
	DatasetRefDesc
	DatasetRefAsc
	DatasetSnapDesc
	DatasetSnapAsc
	DatasetNameDesc
	DatasetNameAsc
)

func (o DatasetOrder) Next() DatasetOrder {
	if o == DatasetNameAsc {
		return DatasetTotalDesc
	}
	return o + 1
}

func (o DatasetOrder) String() string {
	switch o {
	case DatasetTotalDesc:
		return "Total Size ↓"
	case DatasetTotalAsc:
		return "Total Size ↑"
	case DatasetRefDesc:
		return "Referenced ↓"
	case DatasetRefAsc:
		return "Referenced ↑"
	case DatasetSnapDesc:
		return "Snapshot Used ↓"
	case DatasetSnapAsc:
		return "Snapshot Used ↑"
	case DatasetNameDesc:
		return "Name ↓"
	case DatasetNameAsc:
		return "Name ↑"
	default:
		return "Total Size ↓"
	}
}

// Total is the dataset footprint used by the total-size orders:
// live data plus the space held by its snapshots.
func Total(d zfs.Dataset) uint64 {
	return d.Referenced + d.SnapshotUsed
}

// Datasets sorts the slice in place according to the order. Ties fall
// back to name so the listing is stable across refreshes.
func Datasets(datasets []zfs.Dataset, order DatasetOrder) {
	sort.Slice(datasets, func(i, j int) bool {
		a, b := datasets[i], datasets[j]
		switch order {
		case DatasetTotalDesc:
			if Total(a) != Total(b) {
				return Total(a) > Total(b)
			}
		case DatasetTotalAsc:
			if Total(a) != Total(b) {
				return Total(a) < Total(b)
			}
		case DatasetRefDesc:
			if a.Referenced != b.Referenced {
				return a.Referenced > b.Referenced
			}
		case DatasetRefAsc:
			if a.Referenced != b.Referenced {
				return a.Referenced < b.Referenced
			}
		case DatasetSnapDesc:
			if a.SnapshotUsed != b.SnapshotUsed {
				return a.SnapshotUsed > b.SnapshotUsed
			}
		case DatasetSnapAsc:
			if a.SnapshotUsed != b.SnapshotUsed {
				return a.SnapshotUsed < b.SnapshotUsed
			}
		case DatasetNameDesc:
			return a.Name > b.Name
		}
		return a.Name < b.Name
	})
}

// SnapshotOrder cycles through the snapshot sort modes.
type SnapshotOrder int

const (
	SnapshotUsedDesc SnapshotOrder = iota
	SnapshotUsedAsc
	SnapshotRefDesc
	SnapshotRefAsc
	SnapshotNameDesc
	SnapshotNameAsc
)

func (o SnapshotOrder) Next() SnapshotOrder {
	if o == SnapshotNameAsc {
		return SnapshotUsedDesc
	}
	return o + 1
}

func (o SnapshotOrder) String() string {
	switch o {
	case SnapshotUsedDesc:
		return "Used ↓"
	case SnapshotUsedAsc:
		return "Used ↑"
	case SnapshotRefDesc:
		return "Referenced ↓"
	case SnapshotRefAsc:
		return "Referenced ↑"
	case SnapshotNameDesc:
		return "Name ↓"
	case SnapshotNameAsc:
		return "Name ↑"
	default:
		return "Used ↓"
	}
}

// Snapshots sorts the slice in place according to the order, with name
// as tiebreak.
func Snapshots(snapshots []zfs.Snapshot, order SnapshotOrder) {
	sort.Slice(snapshots, func(i, j int) bool {
		a, b := snapshots[i], snapshots[j]
		switch order {
		case SnapshotUsedDesc:
			if a.Used != b.Used {
				return a.Used > b.Used
			}
		case SnapshotUsedAsc:
			if a.Used != b.Used {
				return a.Used < b.Used
			}
		case SnapshotRefDesc:
			if a.Referenced != b.Referenced {
				return a.Referenced > b.Referenced
			}
		case SnapshotRefAsc:
			if a.Referenced != b.Referenced {
				return a.Referenced < b.Referenced
			}
		case SnapshotNameDesc:
			return a.Name > b.Name
		}
		return a.Name < b.Name
	})
}
