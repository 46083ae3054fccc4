// +build !linux

package sysinfo

// DiskUsage reports total and used bytes for the filesystem containing
// path. Only implemented on Linux; other platforms report zeros so the
// heartbeat stays functional on development machines.
func DiskUsage(path string) (total, used uint64) {
	return 0, 0
}
