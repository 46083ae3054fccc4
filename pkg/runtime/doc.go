/*
Package runtime wraps the Docker Engine API with the container operations the
wings daemon needs: image pulls, workload container lifecycle, one-shot
install runs, stats sampling, log streaming, and the shared bridge network.

All operations address containers by server UUID through the canonical
nexus-<uuid> name. Errors are classified before they leave the package: a
missing container surfaces as a NotFound error, anything else as a runtime
error, so transports can map them without inspecting Docker internals.

# Architecture

	┌─────────────────── DOCKER RUNTIME ─────────────────────┐
	│                                                         │
	│  ┌──────────────────────────────────────────────┐      │
	│  │              Docker Client                   │      │
	│  │  - Socket: /var/run/docker.sock              │      │
	│  │  - API version negotiation                   │      │
	│  └──────────────────┬───────────────────────────┘      │
	│                     │                                   │
	│  ┌──────────────────▼───────────────────────────┐      │
	│  │          Workload Containers                 │      │
	│  │  - Name: nexus-<uuid>, TTY, stdin open       │      │
	│  │  - Bind: <volume_path>:/server               │      │
	│  │  - Limits: memory bytes, NanoCPUs            │      │
	│  │  - Labels: nexus.managed, nexus.server_uuid  │      │
	│  └──────────────────┬───────────────────────────┘      │
	│                     │                                   │
	│  ┌──────────────────▼───────────────────────────┐      │
	│  │          Install Containers                  │      │
	│  │  - Name: nexus-install-<uuid>, no TTY        │      │
	│  │  - Runs sh -c <script>, then removed         │      │
	│  └──────────────────┬───────────────────────────┘      │
	│                     │                                   │
	│  ┌──────────────────▼───────────────────────────┐      │
	│  │        Telemetry and Networking              │      │
	│  │  - Stats: one-shot sample or live stream     │      │
	│  │  - Logs: tail or follow, TTY-aware demux     │      │
	│  │  - Bridge network nexus0, auto-join          │      │
	│  └──────────────────────────────────────────────┘      │
	│                                                         │
	└─────────────────────────────────────────────────────────┘

# Core Components

Docker: the adapter struct. One instance per daemon, shared by the lifecycle
manager, installer, WS sessions, and heartbeat.

StatsStream / LogStream: pull-based iterators over the daemon's streaming
endpoints. Close unblocks a pending Next, which is how WS session teardown
cancels its tasks.

Stats normalizer (stats.go): pure translation from Docker's raw stats
document to the ResourceStats sample shared by both transports, including
the delta-based CPU percentage.

# Usage

	docker, err := runtime.NewDocker(cfg.Docker.Socket)
	if err != nil {
		return err
	}
	defer docker.Close()

	id, err := docker.CreateServer(ctx, spec)
	...
	stream, err := docker.FollowLogs(ctx, spec.UUID)
	for {
		line, ok := stream.Next()
		if !ok {
			break
		}
		buffer.Push(line)
	}

# Integration Points

  - pkg/manager: every lifecycle operation delegates here
  - pkg/installer: RunInstall + RemoveInstallContainer
  - pkg/api: WS sessions consume StreamStats and FollowLogs
  - pkg/heartbeat: ListManaged for the per-server state report
  - cmd/wings: EnsureNetwork and AttachManagedContainers at startup
*/
package runtime
