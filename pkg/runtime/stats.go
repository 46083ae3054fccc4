package runtime

import (
	"time"

	"github.com/docker/docker/api/types/container"

	"github.com/nexus-panel/wings/pkg/types"
)

// CalculateCPUPercent derives an instantaneous CPU percentage from the
// deltas between a raw sample and its predecessor. Returns 0 when either
// delta is non-positive, which covers one-shot samples with no predecessor.
func CalculateCPUPercent(raw *container.StatsResponse) float64 {
	cpuDelta := float64(raw.CPUStats.CPUUsage.TotalUsage) - float64(raw.PreCPUStats.CPUUsage.TotalUsage)
	systemDelta := float64(raw.CPUStats.SystemUsage) - float64(raw.PreCPUStats.SystemUsage)

	if systemDelta > 0 && cpuDelta > 0 {
		numCPUs := float64(len(raw.CPUStats.CPUUsage.PercpuUsage))
		if numCPUs == 0 {
			numCPUs = 1
		}
		return (cpuDelta / systemDelta) * numCPUs * 100.0
	}
	return 0
}

// normalizeStats flattens a raw Docker stats document into the sample shape
// shared by both transports. Network counters are summed across interfaces;
// disk usage is filled in by callers that know the volume path.
func normalizeStats(raw *container.StatsResponse) *types.ResourceStats {
	var rx, tx uint64
	for _, net := range raw.Networks {
		rx += net.RxBytes
		tx += net.TxBytes
	}

	return &types.ResourceStats{
		CPUPercent:     CalculateCPUPercent(raw),
		MemoryBytes:    raw.MemoryStats.Usage,
		MemoryLimit:    raw.MemoryStats.Limit,
		NetworkRxBytes: rx,
		NetworkTxBytes: tx,
		DiskBytes:      0,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	}
}
