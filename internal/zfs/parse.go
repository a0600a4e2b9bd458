package zfs

import (
	"strconv"
	"strings"
)

// Parsing of the tab-separated output of `zpool list -H -p` and
// `zfs list -H -p`. Malformed lines are skipped rather than failing the
// batch, and numeric fields that do not parse default to zero so a single
// corrupt field cannot block an otherwise valid listing.

// ParsePoolLine converts one `zpool list -H -p` row into a Pool. The
// second return value is false for blank or truncated lines. Field order:
// name, size, alloc, free, ckpoint, expandsz, frag, cap, dedup, health.
func ParsePoolLine(line string) (Pool, bool) {
	if strings.TrimSpace(line) == "" {
		return Pool{}, false
	}
	fields := strings.Split(line, "\t")
	if len(fields) < 7 {
		return Pool{}, false
	}
	p := Pool{
		Name:      fields[0],
		Size:      parseSize(fields[1]),
		Allocated: parseSize(fields[2]),
		Free:      parseSize(fields[3]),
	}
	if len(fields) > 9 {
		p.Health = fields[9]
	}
	p.UsableSize = p.Size
	return p, true
}

// ParseDatasetLine converts one row of
// `zfs list -H -p -o name,used,avail,refer,usedbysnapshots`.
func ParseDatasetLine(line string) (Dataset, bool) {
	if strings.TrimSpace(line) == "" {
		return Dataset{}, false
	}
	fields := strings.Split(line, "\t")
	if len(fields) < 5 {
		return Dataset{}, false
	}
	return Dataset{
		Name:         fields[0],
		Used:         parseSize(fields[1]),
		Available:    parseSize(fields[2]),
		Referenced:   parseSize(fields[3]),
		SnapshotUsed: parseSize(fields[4]),
	}, true
}

// ParseSnapshotLine converts one row of
// `zfs list -H -p -t snap -o name,used,refer,creation`.
func ParseSnapshotLine(line string) (Snapshot, bool) {
	if strings.TrimSpace(line) == "" {
		return Snapshot{}, false
	}
	fields := strings.Split(line, "\t")
	if len(fields) < 4 {
		return Snapshot{}, false
	}
	return Snapshot{
		Name:       fields[0],
		Used:       parseSize(fields[1]),
		Referenced: parseSize(fields[2]),
		Creation:   fields[3],
	}, true
}

func parseSize(s string) uint64 {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
