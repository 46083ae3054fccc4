// Package sysinfo probes the host for the node-level figures the Panel
// wants in every heartbeat: memory, disk, CPU utilization, and uptime.
//
// All probes are best-effort. A missing or unreadable /proc file yields
// zeros rather than an error, so a heartbeat never fails because the
// host looks unusual; the Panel treats zeroed figures as unknown.
//
// Core Components:
//
//   - Memory: parses /proc/meminfo. Used memory is computed from
//     MemAvailable so reclaimable page cache is not reported as pressure.
//
//   - DiskUsage: statfs on the data directory. Linux only; other
//     platforms compile but report zeros.
//
//   - CPUPercent: diffs two /proc/stat samples 100ms apart. Blocking,
//     so it belongs in the heartbeat goroutine, not a request handler.
//
//   - Uptime: first field of /proc/uptime, whole seconds.
//
// Usage:
//
//	total, used := sysinfo.Memory()
//	dTotal, dUsed := sysinfo.DiskUsage(cfg.Storage.DataDir)
//	cpu := sysinfo.CPUPercent()
//
// Integration Points:
//
//   - pkg/heartbeat: gathers all four figures each beat and mirrors
//     them into the node gauges.
//   - pkg/api: the system info endpoint reports Uptime.
package sysinfo
