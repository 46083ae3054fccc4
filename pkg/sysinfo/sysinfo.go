package sysinfo

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	procMeminfoPath = "/proc/meminfo"
	procStatPath    = "/proc/stat"
	procUptimePath  = "/proc/uptime"

	// cpuSampleInterval is how long CPUPercent waits between the two
	// /proc/stat samples it diffs.
	cpuSampleInterval = 100 * time.Millisecond
)

// Memory returns total and used physical memory in bytes. Used memory is
// derived from MemAvailable rather than MemFree so page cache the kernel
// can reclaim does not count against the node. Returns zeros when
// /proc/meminfo cannot be read.
func Memory() (total, used uint64) {
	data, err := os.ReadFile(procMeminfoPath)
	if err != nil {
		return 0, 0
	}
	return parseMeminfo(string(data))
}

func parseMeminfo(content string) (total, used uint64) {
	var totalKB, availableKB uint64
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "MemTotal:") {
			totalKB = parseMeminfoValue(strings.TrimPrefix(line, "MemTotal:"))
		} else if strings.HasPrefix(line, "MemAvailable:") {
			availableKB = parseMeminfoValue(strings.TrimPrefix(line, "MemAvailable:"))
		}
	}

	total = totalKB * 1024
	available := availableKB * 1024
	if available > total {
		return total, 0
	}
	return total, total - available
}

// parseMeminfoValue extracts the number from a meminfo value like
// "  16384256 kB".
func parseMeminfoValue(s string) uint64 {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0
	}
	v, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// CPUPercent reports node-wide CPU utilization by diffing two /proc/stat
// samples taken cpuSampleInterval apart. It blocks for that interval, so
// callers run it off the hot path. Returns 0 when /proc/stat is missing
// or the counters did not advance.
func CPUPercent() float64 {
	idle1, total1, ok := readCPUSample()
	if !ok {
		return 0
	}
	time.Sleep(cpuSampleInterval)
	idle2, total2, ok := readCPUSample()
	if !ok {
		return 0
	}
	return cpuPercentBetween(idle1, total1, idle2, total2)
}

func readCPUSample() (idle, total uint64, ok bool) {
	data, err := os.ReadFile(procStatPath)
	if err != nil {
		return 0, 0, false
	}
	return parseCPUSample(string(data))
}

// parseCPUSample reads the aggregate "cpu" line, the first line of
// /proc/stat. Total is the sum of every jiffy column; idle is the fourth.
func parseCPUSample(content string) (idle, total uint64, ok bool) {
	line, _, _ := strings.Cut(content, "\n")
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, false
	}

	vals := make([]uint64, 0, len(fields)-1)
	for _, f := range fields[1:] {
		v, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			continue
		}
		vals = append(vals, v)
	}
	if len(vals) < 4 {
		return 0, 0, false
	}

	for _, v := range vals {
		total += v
	}
	return vals[3], total, true
}

// cpuPercentBetween converts two jiffy samples into a 0-100 utilization
// figure. Deltas saturate at zero so a counter reset reads as idle
// instead of wrapping.
func cpuPercentBetween(idle1, total1, idle2, total2 uint64) float64 {
	var idleDelta, totalDelta float64
	if idle2 > idle1 {
		idleDelta = float64(idle2 - idle1)
	}
	if total2 > total1 {
		totalDelta = float64(total2 - total1)
	}
	if totalDelta == 0 {
		return 0
	}
	return ((totalDelta - idleDelta) / totalDelta) * 100.0
}

// Uptime returns seconds since boot, truncated to whole seconds. Returns
// 0 when /proc/uptime cannot be read.
func Uptime() uint64 {
	data, err := os.ReadFile(procUptimePath)
	if err != nil {
		return 0
	}
	return parseUptime(string(data))
}

func parseUptime(content string) uint64 {
	fields := strings.Fields(content)
	if len(fields) == 0 {
		return 0
	}
	f, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || f < 0 {
		return 0
	}
	return uint64(f)
}
