// Package heartbeat pushes node telemetry to the Panel every 30 seconds
// so the Panel can reconcile its view of this node without polling.
//
// Architecture:
//
//	┌────────────────────────────────────────────────────┐
//	│                    Heartbeat                       │
//	│                                                    │
//	│  sysinfo probes ──┐                                │
//	│  (mem/disk/cpu)   ├──▶ payload ──▶ POST /api/v1/   │
//	│  runtime listing ─┘      │         nodes/heartbeat │
//	│  (uuid + state)          ▼                         │
//	│                    node gauges                     │
//	└────────────────────────────────────────────────────┘
//
// Each beat gathers host memory, disk usage of the data directory, a
// 100ms CPU sample, and the raw state of every managed container, then
// POSTs the lot with the node's bearer credential. A failed delivery is
// logged and dropped; state converges on the next beat. The same figures
// are mirrored into the wings_node_* Prometheus gauges, so the heartbeat
// doubles as the node-level metrics sampler.
//
// The first beat fires immediately on Start. Stop signals the goroutine
// and blocks until the in-flight beat, if any, has finished.
//
// Integration Points:
//
//   - pkg/sysinfo: host probes.
//   - pkg/runtime: ListManaged supplies per-container states.
//   - cmd/wings: starts the task after the registry loads and stops it
//     first during shutdown.
package heartbeat
