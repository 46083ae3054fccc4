package manager

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/nexus-panel/wings/pkg/console"
	"github.com/nexus-panel/wings/pkg/events"
	"github.com/nexus-panel/wings/pkg/log"
	"github.com/nexus-panel/wings/pkg/metrics"
	"github.com/nexus-panel/wings/pkg/registry"
	"github.com/nexus-panel/wings/pkg/types"
)

const (
	// stopTimeoutSec is the graceful stop window before the runtime kills
	stopTimeoutSec = 30

	// backgroundTimeout bounds a backgrounded stop/restart/kill, which can
	// legitimately take the full graceful window twice over on restart
	backgroundTimeout = 2 * time.Minute

	// maxWalkDepth caps the disk usage walk under a server volume
	maxWalkDepth = 64
)

// Runtime is the slice of the container runtime the manager drives.
type Runtime interface {
	CreateServer(ctx context.Context, spec *types.ServerSpec) (string, error)
	StartServer(ctx context.Context, uuid string) error
	StopServer(ctx context.Context, uuid string, timeoutSec int) error
	RestartServer(ctx context.Context, uuid string) error
	KillServer(ctx context.Context, uuid string) error
	DeleteServer(ctx context.Context, uuid string, removeVolumes bool) error
	UpdateResources(ctx context.Context, uuid string, memoryBytes, nanoCPUs int64) error
	ContainerState(ctx context.Context, uuid string) (string, error)
	SendCommand(ctx context.Context, uuid, command string) error
	Stats(ctx context.Context, uuid string) (*types.ResourceStats, error)
	ListManaged(ctx context.Context) ([]types.ServerInfo, error)
}

// InstallRunner runs the install pipeline for a server.
type InstallRunner interface {
	Run(ctx context.Context, spec *types.ServerSpec, script, image string) ([]string, error)
}

// Manager is the lifecycle engine. It owns the spec registry, the event
// bus, the console store, and the per-server lock table; every mutating
// server operation flows through it regardless of which transport carried
// the request.
type Manager struct {
	runtime   Runtime
	registry  *registry.Registry
	console   *console.Store
	bus       *events.Bus
	installer InstallRunner
	dataDir   string
	logger    zerolog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a lifecycle manager.
func New(rt Runtime, reg *registry.Registry, store *console.Store, bus *events.Bus, inst InstallRunner, dataDir string) *Manager {
	return &Manager{
		runtime:   rt,
		registry:  reg,
		console:   store,
		bus:       bus,
		installer: inst,
		dataDir:   dataDir,
		logger:    log.WithComponent("manager"),
		locks:     make(map[string]*sync.Mutex),
	}
}

// lock returns the mutex serializing lifecycle operations for uuid,
// creating it on first use. Successive operations reuse the same mutex so
// concurrent arrivals queue instead of racing.
func (m *Manager) lock(uuid string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.locks[uuid]
	if !ok {
		l = &sync.Mutex{}
		m.locks[uuid] = l
	}
	return l
}

func (m *Manager) dropLock(uuid string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, uuid)
}

// volumePath is the canonical on-node location of a server's data. Specs
// are rewritten to it on every ingestion, whatever the Panel sent.
func (m *Manager) volumePath(uuid string) string {
	return filepath.Join(m.dataDir, uuid)
}

// Create provisions a new server: data directory, registry entry,
// container. When both install script and image are given, the install
// pipeline runs on its own goroutine; Create returns the container id
// without waiting for it.
func (m *Manager) Create(ctx context.Context, spec *types.ServerSpec, installScript, installImage string) (string, error) {
	serverDir := m.volumePath(spec.UUID)
	if err := os.MkdirAll(serverDir, 0o755); err != nil {
		return "", types.IOError(err)
	}
	spec.VolumePath = serverDir

	m.registry.Store(spec)

	m.logger.Info().
		Str("server_uuid", spec.UUID).
		Str("image", spec.DockerImage).
		Msg("Creating server")

	containerID, err := m.runtime.CreateServer(ctx, spec)
	if err != nil {
		return "", err
	}

	if installScript != "" && installImage != "" {
		go m.runInstall(spec.Clone(), installScript, installImage)
	}

	return containerID, nil
}

// runInstall drives the install pipeline on its own goroutine. The
// pipeline is not cancellable once started; it reports through events and
// the Panel callback.
func (m *Manager) runInstall(spec *types.ServerSpec, script, image string) {
	if _, err := m.installer.Run(context.Background(), spec, script, image); err != nil {
		m.logger.Error().Err(err).Str("server_uuid", spec.UUID).Msg("Install pipeline failed")
	}
}

// Delete removes the server's container, console scrollback, registry
// entry, and lock table entry. With removeVolumes the container's
// anonymous volumes go too; the data directory itself is left for the
// Panel to reap.
func (m *Manager) Delete(ctx context.Context, uuid string, removeVolumes bool) error {
	l := m.lock(uuid)
	l.Lock()
	defer l.Unlock()

	m.logger.Info().Str("server_uuid", uuid).Msg("Deleting server")

	if err := m.runtime.DeleteServer(ctx, uuid, removeVolumes); err != nil {
		return err
	}

	m.console.Remove(uuid)
	m.registry.Remove(uuid)
	m.dropLock(uuid)
	return nil
}

// Reinstall stores the new spec and runs the install pipeline in the
// background. It does not touch the running container.
func (m *Manager) Reinstall(ctx context.Context, spec *types.ServerSpec, installScript, installImage string) error {
	spec.VolumePath = m.volumePath(spec.UUID)
	if err := os.MkdirAll(spec.VolumePath, 0o755); err != nil {
		return types.IOError(err)
	}

	m.registry.Store(spec)
	m.logger.Info().Str("server_uuid", spec.UUID).Msg("Reinstalling server")

	go m.runInstall(spec.Clone(), installScript, installImage)
	return nil
}

// Install runs the install pipeline synchronously and returns its output.
// The spec's volume path is forced to the node-local layout; the registry
// is not touched.
func (m *Manager) Install(ctx context.Context, spec *types.ServerSpec, installScript, installImage string) ([]string, error) {
	spec.VolumePath = m.volumePath(spec.UUID)
	if err := os.MkdirAll(spec.VolumePath, 0o755); err != nil {
		return nil, types.IOError(err)
	}
	return m.installer.Run(ctx, spec, installScript, installImage)
}

// PlaceholderSpec synthesizes a minimal spec for installs against servers
// the registry does not know.
func (m *Manager) PlaceholderSpec(uuid string) *types.ServerSpec {
	return &types.ServerSpec{
		UUID:        uuid,
		Environment: map[string]string{},
		VolumePath:  m.volumePath(uuid),
	}
}

// Spec returns the registered spec for uuid, if any.
func (m *Manager) Spec(uuid string) (*types.ServerSpec, bool) {
	return m.registry.Get(uuid)
}

// PowerAction applies a lifecycle transition. Start is synchronous and
// resurrects a missing container from the registry first. Stop, restart,
// and kill are spawned in the background so a 30 second graceful stop
// never holds up the caller; their outcome travels by StateChanged event,
// or is dropped on failure and reconciled by the next heartbeat.
func (m *Manager) PowerAction(ctx context.Context, uuid string, action types.PowerAction) error {
	l := m.lock(uuid)
	l.Lock()
	defer l.Unlock()

	m.logger.Info().
		Str("server_uuid", uuid).
		Str("action", string(action)).
		Msg("Power action")
	metrics.PowerActionsTotal.WithLabelValues(string(action)).Inc()

	if action == types.PowerActionStart {
		if _, err := m.runtime.ContainerState(ctx, uuid); err != nil {
			m.logger.Info().Str("server_uuid", uuid).Msg("Container missing, recreating from stored config")
			spec, ok := m.registry.Get(uuid)
			if !ok {
				return types.NotFoundf("Server config not found in registry, cannot recreate container")
			}
			if _, err := m.runtime.CreateServer(ctx, spec); err != nil {
				return err
			}
		}
	}

	prev := m.currentState(ctx, uuid)

	if action == types.PowerActionStart {
		if err := m.runtime.StartServer(ctx, uuid); err != nil {
			return err
		}
		next := m.currentState(ctx, uuid)
		m.bus.EmitStateChanged(uuid, types.StateFromContainer(prev), types.StateFromContainer(next))
		return nil
	}

	go m.backgroundPower(uuid, action, prev)
	return nil
}

// backgroundPower runs a stop/restart/kill to completion off the request
// path. It does not hold the server lock: a queued Start may overtake it,
// which the Panel tolerates because events are hints, not a total order.
func (m *Manager) backgroundPower(uuid string, action types.PowerAction, prevRaw string) {
	ctx, cancel := context.WithTimeout(context.Background(), backgroundTimeout)
	defer cancel()

	var err error
	switch action {
	case types.PowerActionStop:
		err = m.runtime.StopServer(ctx, uuid, stopTimeoutSec)
	case types.PowerActionRestart:
		err = m.runtime.RestartServer(ctx, uuid)
	case types.PowerActionKill:
		err = m.runtime.KillServer(ctx, uuid)
	}
	if err != nil {
		m.logger.Error().
			Err(err).
			Str("server_uuid", uuid).
			Str("action", string(action)).
			Msg("Background power action failed")
		return
	}

	next := m.currentState(ctx, uuid)
	m.bus.EmitStateChanged(uuid, types.StateFromContainer(prevRaw), types.StateFromContainer(next))
}

func (m *Manager) currentState(ctx context.Context, uuid string) string {
	state, err := m.runtime.ContainerState(ctx, uuid)
	if err != nil {
		return "unknown"
	}
	return state
}

// SendCommand executes a shell command inside the server container. It is
// additive rather than a state transition, so it skips the server lock.
func (m *Manager) SendCommand(ctx context.Context, uuid, command string) error {
	return m.runtime.SendCommand(ctx, uuid, command)
}

// SyncConfig is an idempotent registry write; the container is untouched.
func (m *Manager) SyncConfig(spec *types.ServerSpec) {
	spec.VolumePath = m.volumePath(spec.UUID)
	m.registry.Store(spec)
	m.logger.Info().Str("server_uuid", spec.UUID).Msg("Server config synced")
}

// UpdateResources applies new limits to the running container and records
// them in the spec. Inputs are in the Panel's units: memory and disk in
// MiB, cpu in hundredths of a core. The disk limit is advisory; it is
// stored but not enforced here.
func (m *Manager) UpdateResources(ctx context.Context, uuid string, memoryMB, cpuUnits, diskMB uint64) error {
	l := m.lock(uuid)
	l.Lock()
	defer l.Unlock()

	m.logger.Info().
		Str("server_uuid", uuid).
		Uint64("memory_mb", memoryMB).
		Uint64("cpu_units", cpuUnits).
		Uint64("disk_mb", diskMB).
		Msg("Updating resources")

	memoryBytes := memoryMB * 1024 * 1024
	nanoCPUs := cpuUnits * 10_000_000

	if err := m.runtime.UpdateResources(ctx, uuid, int64(memoryBytes), int64(nanoCPUs)); err != nil {
		return err
	}

	if spec, ok := m.registry.Get(uuid); ok {
		spec.MemoryLimit = memoryBytes
		spec.CPULimit = nanoCPUs
		spec.DiskLimit = diskMB * 1024 * 1024
		m.registry.Store(spec)
	}
	return nil
}

// Status reports the server's normalized state, plus a one-shot resource
// sample with disk usage when it is running. Read-only: no lock.
func (m *Manager) Status(ctx context.Context, uuid string) (types.ServerState, *types.ResourceStats, error) {
	raw, err := m.runtime.ContainerState(ctx, uuid)
	if err != nil {
		return types.ServerStateUnknown, nil, err
	}

	var stats *types.ResourceStats
	if raw == "running" {
		if sample, err := m.runtime.Stats(ctx, uuid); err == nil {
			sample.DiskBytes = m.diskUsage(uuid)
			stats = sample
		}
	}
	return types.StateFromContainer(raw), stats, nil
}

// ListServers reports every managed container. Used by the heartbeat's
// sibling consumers: the metrics collector and system info.
func (m *Manager) ListServers(ctx context.Context) ([]types.ServerInfo, error) {
	return m.runtime.ListManaged(ctx)
}

// diskUsage sums regular file sizes under the server's data directory.
// The walk depth is capped so pathological trees cannot stall a status
// poll; symlinks are not followed.
func (m *Manager) diskUsage(uuid string) uint64 {
	root := filepath.Join(m.dataDir, uuid)

	var total uint64
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if walkDepth(root, path) >= maxWalkDepth {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if info, err := d.Info(); err == nil {
			total += uint64(info.Size())
		}
		return nil
	})
	return total
}

func walkDepth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
