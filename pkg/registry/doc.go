// Package registry maintains the authoritative in-memory record of every
// server this node manages, mirrored to per-server sidecar files so the
// daemon can recover its state after a restart.
//
// Architecture:
//
//	┌─────────────────────────────────────────────────────┐
//	│                      Registry                       │
//	│                                                     │
//	│   ┌───────────────┐        ┌─────────────────────┐  │
//	│   │  in-memory    │ Store  │  sidecar writer     │  │
//	│   │  map[uuid] ───┼───────▶│  <data>/<uuid>/     │  │
//	│   │  *ServerSpec  │        │  .nexus-config.json │  │
//	│   └───────┬───────┘        └──────────┬──────────┘  │
//	│           │ Get / UUIDs               │ Load        │
//	│           ▼                           ▼             │
//	│   lifecycle manager            startup recovery     │
//	└─────────────────────────────────────────────────────┘
//
// Core Components:
//
//   - Registry: mutex-guarded map keyed by server UUID. Store and Get
//     operate on deep copies, so callers can mutate the specs they hold
//     without racing the registry or each other.
//
//   - Sidecar files: every Store pretty-prints the spec to
//     <data_dir>/<uuid>/.nexus-config.json. Writes are best-effort; a
//     failed write is logged but never fails the operation, because the
//     in-memory map remains correct for the life of the process.
//
//   - Load: scans the data directory on startup and restores every
//     readable sidecar. Unparseable files and directories without a
//     sidecar are skipped silently so one corrupt server cannot block
//     the rest of the node from recovering.
//
// Usage:
//
//	reg := registry.New("/var/lib/nexus-wings/data")
//	restored := reg.Load()
//
//	reg.Store(spec)
//	if spec, ok := reg.Get(uuid); ok {
//	    // spec is a private copy
//	}
//	reg.Remove(uuid)
//
// Integration Points:
//
//   - pkg/manager: stores specs on create and resource updates, reads
//     them back to resurrect containers that disappeared out from under
//     the daemon.
//   - cmd/wings: calls Load before the API comes up so lifecycle
//     operations see the pre-restart world.
package registry
