package zfs

import "fmt"

var byteUnits = [...]string{"B", "K", "M", "G", "T", "P"}

// FormatBytes renders a byte count with 1024-based units, matching the
// zfs convention of one decimal place above bytes.
func FormatBytes(n uint64) string {
	size := float64(n)
	unit := 0
	for size >= 1024 && unit < len(byteUnits)-1 {
		size /= 1024
		unit++
	}
	if unit == 0 {
		return fmt.Sprintf("%.0f%s", size, byteUnits[unit])
	}
	return fmt.Sprintf("%.1f%s", size, byteUnits[unit])
}

// UsageLabel summarises allocation against capacity, e.g. "3.0T / 10.0T (30%)".
func UsageLabel(allocated, size uint64) string {
	return fmt.Sprintf("%s / %s (%.0f%%)", FormatBytes(allocated), FormatBytes(size), UsagePercent(allocated, size))
}

// UsagePercent returns allocation as a percentage of capacity, 0 for an
// empty or unreported capacity.
func UsagePercent(allocated, size uint64) float64 {
	if size == 0 {
		return 0
	}
	return float64(allocated) / float64(size) * 100
}
