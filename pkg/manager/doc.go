// Package manager is the lifecycle engine of the daemon: the single
// owner of every server mutation, whichever transport the request came
// in on. It serializes operations per server, resurrects containers
// whose runtime state was lost, and turns completed transitions into
// events for the Panel.
//
// Architecture:
//
//	 HTTP API ──┐                           ┌──▶ runtime (Docker)
//	            ├──▶ ┌──────────────────┐   │
//	 gRPC API ──┘    │     Manager      ├───┼──▶ registry (specs)
//	                 │                  │   │
//	                 │  per-UUID locks  │   ├──▶ console store
//	                 │  ┌────┐ ┌────┐   │   │
//	                 │  │u-1 │ │u-2 │…  │   ├──▶ event bus
//	                 │  └────┘ └────┘   │   │
//	                 └──────────────────┘   └──▶ install pipeline
//
// Core Components:
//
//   - Lock table: one lazily created mutex per server UUID. Create,
//     delete, power, and resource updates for the same server queue
//     behind each other; different servers proceed in parallel. Reads
//     (Status, SendCommand) skip the lock entirely.
//
//   - Resurrection: a start against a missing container recreates it
//     from the registered spec before starting, so a crashed daemon or
//     a manually removed container heals on the next power action.
//
//   - Background power: stop, restart, and kill run on their own
//     goroutine because a graceful stop can take its full 30 second
//     window. The caller gets an immediate acknowledgement; the state
//     transition is reported by event once the runtime finishes, or not
//     at all on failure, in which case the next heartbeat carries the
//     truth.
//
//   - Install handoff: creates and reinstalls hand the stored spec to
//     the install pipeline on a separate goroutine; the synchronous
//     Install entry point exists for callers that want the script
//     output inline.
//
// Usage:
//
//	mgr := manager.New(rt, reg, consoles, bus, inst, cfg.Storage.DataDir)
//
//	id, err := mgr.Create(ctx, spec, script, image)
//	err = mgr.PowerAction(ctx, uuid, types.PowerActionStart)
//	state, stats, err := mgr.Status(ctx, uuid)
//	err = mgr.Delete(ctx, uuid, true)
//
// Integration Points:
//
//   - pkg/api: both the HTTP router and the gRPC service delegate every
//     server operation here.
//   - pkg/runtime: the Docker adapter behind the Runtime interface.
//   - pkg/installer: runs install scripts handed off by Create,
//     Reinstall, and Install.
//   - pkg/metrics: the collector polls ListServers for the per-state
//     gauges.
package manager
