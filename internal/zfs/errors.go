package zfs

import (
	"fmt"
	"strings"
)

// FriendlyDeleteError maps a DestroySnapshot failure onto user-facing
// text, keyed off the diagnostics zfs prints on stderr.
func FriendlyDeleteError(err error) string {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "permission denied"):
		return "Permission denied. Try running with elevated privileges (sudo)."
	case strings.Contains(msg, "dataset does not exist"):
		return "Snapshot no longer exists."
	case strings.Contains(msg, "dataset is busy"):
		return "Snapshot is currently in use and cannot be deleted."
	default:
		return fmt.Sprintf("Failed to delete snapshot: %v", err)
	}
}
