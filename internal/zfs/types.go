package zfs

import "strings"

// Pool is a point-in-time capture of one `zpool list` row. Pools are
// replaced wholesale on reload, never mutated in place.
type Pool struct {
	Name      string
	Size      uint64
	Allocated uint64
	Free      uint64
	Health    string
	// UsableSize is used+avail reported by `zfs list` for the root dataset,
	// which accounts for redundancy. Falls back to Size when the secondary
	// query fails.
	UsableSize uint64
}

// Dataset describes one filesystem or volume within a pool. Used and
// Referenced are sourced independently by zfs and need not sum exactly
// with SnapshotUsed.
type Dataset struct {
	Name         string
	Used         uint64
	Available    uint64
	Referenced   uint64
	SnapshotUsed uint64
}

// Snapshot describes one snapshot of a dataset. Used is the space
// reclaimable by destroying it; Referenced is the total data visible
// through it. Creation is the display string zfs prints and is never
// parsed further.
type Snapshot struct {
	Name       string
	Used       uint64
	Referenced uint64
	Creation   string
}

// ShortName returns the snapshot label after the '@' separator.
func (s Snapshot) ShortName() string {
	if i := strings.LastIndexByte(s.Name, '@'); i >= 0 {
		return s.Name[i+1:]
	}
	return s.Name
}
