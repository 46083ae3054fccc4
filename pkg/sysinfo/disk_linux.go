// +build linux

package sysinfo

import "golang.org/x/sys/unix"

// DiskUsage reports total and used bytes for the filesystem containing
// path. Used space is measured against the blocks available to
// unprivileged users, matching what df reports. Returns zeros when the
// path cannot be statted.
func DiskUsage(path string) (total, used uint64) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return 0, 0
	}

	frsize := uint64(stat.Frsize)
	total = stat.Blocks * frsize
	free := stat.Bavail * frsize
	if free > total {
		return total, 0
	}
	return total, total - free
}
