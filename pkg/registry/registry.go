package registry

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/nexus-panel/wings/pkg/log"
	"github.com/nexus-panel/wings/pkg/types"
)

// SidecarName is the spec file written into each server's data directory.
const SidecarName = ".nexus-config.json"

// Registry is the dual-layer spec store: an in-memory map that is
// authoritative for the current run, plus a JSON sidecar per server that
// survives daemon restarts and enables container recreation without Panel
// participation.
type Registry struct {
	dataDir string
	logger  zerolog.Logger

	mu    sync.RWMutex
	specs map[string]*types.ServerSpec
}

// New creates an empty registry rooted at the daemon data directory.
func New(dataDir string) *Registry {
	return &Registry{
		dataDir: dataDir,
		logger:  log.WithComponent("registry"),
		specs:   make(map[string]*types.ServerSpec),
	}
}

func (r *Registry) sidecarPath(uuid string) string {
	return filepath.Join(r.dataDir, uuid, SidecarName)
}

// Load walks the data directory and restores every parseable sidecar.
// Unreadable or invalid sidecars are skipped. Returns the number of specs
// restored.
func (r *Registry) Load() int {
	entries, err := os.ReadDir(r.dataDir)
	if err != nil {
		if !os.IsNotExist(err) {
			r.logger.Warn().Err(err).Str("dir", r.dataDir).Msg("Failed to read data directory")
		}
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(r.dataDir, entry.Name(), SidecarName))
		if err != nil {
			continue
		}

		var spec types.ServerSpec
		if err := json.Unmarshal(data, &spec); err != nil || spec.UUID == "" {
			r.logger.Debug().Str("dir", entry.Name()).Msg("Skipping invalid sidecar")
			continue
		}

		r.specs[spec.UUID] = &spec
		count++
	}
	return count
}

// Store replaces the in-memory spec and rewrites its sidecar. A sidecar
// write failure is logged but not fatal: memory stays authoritative for the
// current run.
func (r *Registry) Store(spec *types.ServerSpec) {
	clone := spec.Clone()

	r.mu.Lock()
	r.specs[clone.UUID] = clone
	r.mu.Unlock()

	if err := r.writeSidecar(clone); err != nil {
		r.logger.Error().
			Err(err).
			Str("server_uuid", clone.UUID).
			Msg("Failed to persist server spec")
	}
}

func (r *Registry) writeSidecar(spec *types.ServerSpec) error {
	dir := filepath.Join(r.dataDir, spec.UUID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, SidecarName), data, 0o644)
}

// Get returns a copy of the stored spec for the UUID.
func (r *Registry) Get(uuid string) (*types.ServerSpec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	spec, ok := r.specs[uuid]
	if !ok {
		return nil, false
	}
	return spec.Clone(), true
}

// Remove drops the in-memory spec and deletes its sidecar.
func (r *Registry) Remove(uuid string) {
	r.mu.Lock()
	delete(r.specs, uuid)
	r.mu.Unlock()

	if err := os.Remove(r.sidecarPath(uuid)); err != nil && !os.IsNotExist(err) {
		r.logger.Warn().
			Err(err).
			Str("server_uuid", uuid).
			Msg("Failed to delete spec sidecar")
	}
}

// UUIDs returns the UUIDs of every stored spec.
func (r *Registry) UUIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.specs))
	for uuid := range r.specs {
		out = append(out, uuid)
	}
	return out
}

// Count returns the number of stored specs.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.specs)
}
