package manager

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-panel/wings/pkg/console"
	"github.com/nexus-panel/wings/pkg/events"
	"github.com/nexus-panel/wings/pkg/registry"
	"github.com/nexus-panel/wings/pkg/types"
)

type fakeRuntime struct {
	mu sync.Mutex

	states map[string]string

	created        []*types.ServerSpec
	deleted        []string
	deletedVolumes bool
	commands       []string
	updatedMem     int64
	updatedCPU     int64

	createErr error
	startErr  error
	stopErr   error
	statsErr  error

	stats *types.ResourceStats

	// hooks run outside the mutex before the call takes effect
	startHook func(uuid string)
	stopHook  func(uuid string)

	stopCalled chan string
}

func newFakeRuntime() *fakeRuntime {
	return &fakeRuntime{
		states:     make(map[string]string),
		stopCalled: make(chan string, 4),
	}
}

func (f *fakeRuntime) setState(uuid, state string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.states[uuid] = state
}

func (f *fakeRuntime) createdSpecs() []*types.ServerSpec {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*types.ServerSpec, len(f.created))
	copy(out, f.created)
	return out
}

func (f *fakeRuntime) CreateServer(ctx context.Context, spec *types.ServerSpec) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, spec.Clone())
	f.states[spec.UUID] = "created"
	return "ctr-" + spec.UUID, nil
}

func (f *fakeRuntime) StartServer(ctx context.Context, uuid string) error {
	if f.startHook != nil {
		f.startHook(uuid)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.startErr != nil {
		return f.startErr
	}
	f.states[uuid] = "running"
	return nil
}

func (f *fakeRuntime) StopServer(ctx context.Context, uuid string, timeoutSec int) error {
	if f.stopHook != nil {
		f.stopHook(uuid)
	}
	f.mu.Lock()
	err := f.stopErr
	if err == nil {
		f.states[uuid] = "exited"
	}
	f.mu.Unlock()

	select {
	case f.stopCalled <- uuid:
	default:
	}
	return err
}

func (f *fakeRuntime) RestartServer(ctx context.Context, uuid string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.states[uuid] = "running"
	return nil
}

func (f *fakeRuntime) KillServer(ctx context.Context, uuid string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.states[uuid] = "exited"
	return nil
}

func (f *fakeRuntime) DeleteServer(ctx context.Context, uuid string, removeVolumes bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, uuid)
	f.deletedVolumes = removeVolumes
	delete(f.states, uuid)
	return nil
}

func (f *fakeRuntime) UpdateResources(ctx context.Context, uuid string, memoryBytes, nanoCPUs int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updatedMem = memoryBytes
	f.updatedCPU = nanoCPUs
	return nil
}

func (f *fakeRuntime) ContainerState(ctx context.Context, uuid string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	state, ok := f.states[uuid]
	if !ok {
		return "", types.NotFoundf("Server not found: %s", uuid)
	}
	return state, nil
}

func (f *fakeRuntime) SendCommand(ctx context.Context, uuid, command string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commands = append(f.commands, uuid+":"+command)
	return nil
}

func (f *fakeRuntime) Stats(ctx context.Context, uuid string) (*types.ResourceStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	if f.stats == nil {
		return &types.ResourceStats{}, nil
	}
	clone := *f.stats
	return &clone, nil
}

func (f *fakeRuntime) ListManaged(ctx context.Context) ([]types.ServerInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]types.ServerInfo, 0, len(f.states))
	for uuid, raw := range f.states {
		out = append(out, types.ServerInfo{UUID: uuid, State: types.StateFromContainer(raw), RawState: raw})
	}
	return out, nil
}

type installRun struct {
	spec   *types.ServerSpec
	script string
	image  string
}

type fakeInstaller struct {
	mu   sync.Mutex
	runs []installRun
	ran  chan struct{}
}

func newFakeInstaller() *fakeInstaller {
	return &fakeInstaller{ran: make(chan struct{}, 4)}
}

func (f *fakeInstaller) Run(ctx context.Context, spec *types.ServerSpec, script, image string) ([]string, error) {
	f.mu.Lock()
	f.runs = append(f.runs, installRun{spec: spec.Clone(), script: script, image: image})
	f.mu.Unlock()

	select {
	case f.ran <- struct{}{}:
	default:
	}
	return []string{"done"}, nil
}

func (f *fakeInstaller) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.runs)
}

func (f *fakeInstaller) last() installRun {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.runs[len(f.runs)-1]
}

type fixture struct {
	mgr     *Manager
	rt      *fakeRuntime
	inst    *fakeInstaller
	bus     *events.Bus
	console *console.Store
	reg     *registry.Registry
	dataDir string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dataDir := t.TempDir()
	rt := newFakeRuntime()
	inst := newFakeInstaller()
	reg := registry.New(dataDir)
	store := console.NewStore()
	bus := events.NewBus()
	return &fixture{
		mgr:     New(rt, reg, store, bus, inst, dataDir),
		rt:      rt,
		inst:    inst,
		bus:     bus,
		console: store,
		reg:     reg,
		dataDir: dataDir,
	}
}

func testSpec(uuid string) *types.ServerSpec {
	return &types.ServerSpec{
		UUID:           uuid,
		DockerImage:    "alpine:3",
		StartupCommand: "./run.sh",
		Environment:    map[string]string{"MODE": "test"},
		MemoryLimit:    512 * 1024 * 1024,
		CPULimit:       1_000_000_000,
		DiskLimit:      1024 * 1024 * 1024,
		VolumePath:     "/somewhere/the/panel/invented",
	}
}

func waitEvent(t *testing.T, bus *events.Bus) *types.Event {
	t.Helper()
	select {
	case ev := <-bus.Events():
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func TestCreateRewritesVolumePathAndStores(t *testing.T) {
	fx := newFixture(t)
	spec := testSpec("aaaa-1111")

	id, err := fx.mgr.Create(context.Background(), spec, "", "")
	require.NoError(t, err)
	assert.Equal(t, "ctr-aaaa-1111", id)

	want := filepath.Join(fx.dataDir, "aaaa-1111")
	stored, ok := fx.reg.Get("aaaa-1111")
	require.True(t, ok)
	assert.Equal(t, want, stored.VolumePath)

	info, err := os.Stat(want)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	created := fx.rt.createdSpecs()
	require.Len(t, created, 1)
	assert.Equal(t, want, created[0].VolumePath)

	assert.Equal(t, 0, fx.inst.count())
}

func TestCreateRunsInstallInBackground(t *testing.T) {
	fx := newFixture(t)
	spec := testSpec("bbbb-2222")

	_, err := fx.mgr.Create(context.Background(), spec, "echo hello", "installer:1")
	require.NoError(t, err)

	select {
	case <-fx.inst.ran:
	case <-time.After(2 * time.Second):
		t.Fatal("install pipeline never ran")
	}

	run := fx.inst.last()
	assert.Equal(t, "bbbb-2222", run.spec.UUID)
	assert.Equal(t, filepath.Join(fx.dataDir, "bbbb-2222"), run.spec.VolumePath)
	assert.Equal(t, "echo hello", run.script)
	assert.Equal(t, "installer:1", run.image)
}

func TestCreateSkipsInstallWithoutImage(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.mgr.Create(context.Background(), testSpec("cccc-3333"), "echo hello", "")
	require.NoError(t, err)
	assert.Equal(t, 0, fx.inst.count())
}

func TestCreateStoresSpecEvenWhenContainerFails(t *testing.T) {
	fx := newFixture(t)
	fx.rt.createErr = errors.New("image missing")

	_, err := fx.mgr.Create(context.Background(), testSpec("dddd-4444"), "", "")
	require.Error(t, err)

	// The spec survives the runtime failure so a later start can retry
	// the container creation from the registry.
	_, ok := fx.reg.Get("dddd-4444")
	assert.True(t, ok)
}

func TestStartResurrectsMissingContainer(t *testing.T) {
	fx := newFixture(t)
	spec := testSpec("eeee-5555")
	spec.VolumePath = filepath.Join(fx.dataDir, spec.UUID)
	fx.reg.Store(spec)

	err := fx.mgr.PowerAction(context.Background(), "eeee-5555", types.PowerActionStart)
	require.NoError(t, err)

	created := fx.rt.createdSpecs()
	require.Len(t, created, 1)
	assert.Equal(t, "eeee-5555", created[0].UUID)

	ev := waitEvent(t, fx.bus)
	assert.Equal(t, types.EventStateChanged, ev.Type)
	assert.Equal(t, "eeee-5555", ev.UUID)
	assert.Equal(t, types.ServerStateStarting, ev.PreviousState)
	assert.Equal(t, types.ServerStateRunning, ev.NewState)
}

func TestStartWithoutStoredSpecFails(t *testing.T) {
	fx := newFixture(t)

	err := fx.mgr.PowerAction(context.Background(), "ffff-6666", types.PowerActionStart)
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.KindNotFound))
	assert.Contains(t, err.Error(), "Server config not found in registry, cannot recreate container")
	assert.Equal(t, 0, fx.bus.Pending())
}

func TestStopReturnsBeforeRuntimeFinishes(t *testing.T) {
	fx := newFixture(t)
	fx.rt.setState("u1", "running")

	release := make(chan struct{})
	fx.rt.stopHook = func(string) { <-release }

	err := fx.mgr.PowerAction(context.Background(), "u1", types.PowerActionStop)
	require.NoError(t, err)
	assert.Equal(t, 0, fx.bus.Pending())

	close(release)

	ev := waitEvent(t, fx.bus)
	assert.Equal(t, types.EventStateChanged, ev.Type)
	assert.Equal(t, "u1", ev.UUID)
	assert.Equal(t, types.ServerStateRunning, ev.PreviousState)
	assert.Equal(t, types.ServerStateOffline, ev.NewState)
}

func TestBackgroundStopFailureEmitsNothing(t *testing.T) {
	fx := newFixture(t)
	fx.rt.setState("u2", "running")
	fx.rt.stopErr = errors.New("daemon unreachable")

	err := fx.mgr.PowerAction(context.Background(), "u2", types.PowerActionStop)
	require.NoError(t, err)

	select {
	case <-fx.rt.stopCalled:
	case <-time.After(2 * time.Second):
		t.Fatal("runtime stop never invoked")
	}

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, fx.bus.Pending())
}

func TestKillEmitsStateChange(t *testing.T) {
	fx := newFixture(t)
	fx.rt.setState("u3", "running")

	err := fx.mgr.PowerAction(context.Background(), "u3", types.PowerActionKill)
	require.NoError(t, err)

	ev := waitEvent(t, fx.bus)
	assert.Equal(t, types.ServerStateRunning, ev.PreviousState)
	assert.Equal(t, types.ServerStateOffline, ev.NewState)
}

func TestPowerActionsSerializePerServer(t *testing.T) {
	fx := newFixture(t)
	fx.rt.setState("u4", "exited")

	entered := make(chan string, 2)
	release := make(chan struct{})
	fx.rt.startHook = func(uuid string) {
		entered <- uuid
		<-release
	}

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- fx.mgr.PowerAction(context.Background(), "u4", types.PowerActionStart)
	}()

	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("first start never reached the runtime")
	}

	secondDone := make(chan error, 1)
	go func() {
		secondDone <- fx.mgr.PowerAction(context.Background(), "u4", types.PowerActionStart)
	}()

	select {
	case <-entered:
		t.Fatal("second start ran while the first held the server lock")
	case <-time.After(100 * time.Millisecond):
	}

	close(release)
	require.NoError(t, <-firstDone)
	require.NoError(t, <-secondDone)
}

func TestDeleteCleansUpConsoleRegistryAndLock(t *testing.T) {
	fx := newFixture(t)
	spec := testSpec("gggg-7777")

	_, err := fx.mgr.Create(context.Background(), spec, "", "")
	require.NoError(t, err)
	fx.console.Get("gggg-7777").Push("some scrollback")

	err = fx.mgr.Delete(context.Background(), "gggg-7777", true)
	require.NoError(t, err)

	assert.Equal(t, []string{"gggg-7777"}, fx.rt.deleted)
	assert.True(t, fx.rt.deletedVolumes)

	_, ok := fx.reg.Get("gggg-7777")
	assert.False(t, ok)

	assert.Equal(t, 0, fx.console.Get("gggg-7777").Len())

	fx.mgr.mu.Lock()
	_, held := fx.mgr.locks["gggg-7777"]
	fx.mgr.mu.Unlock()
	assert.False(t, held)
}

func TestReinstallStoresSpecAndRunsInstall(t *testing.T) {
	fx := newFixture(t)
	spec := testSpec("hhhh-8888")

	err := fx.mgr.Reinstall(context.Background(), spec, "apt-get install", "installer:2")
	require.NoError(t, err)

	want := filepath.Join(fx.dataDir, "hhhh-8888")
	stored, ok := fx.reg.Get("hhhh-8888")
	require.True(t, ok)
	assert.Equal(t, want, stored.VolumePath)

	info, err := os.Stat(want)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	select {
	case <-fx.inst.ran:
	case <-time.After(2 * time.Second):
		t.Fatal("install pipeline never ran")
	}
	assert.Equal(t, "apt-get install", fx.inst.last().script)
}

func TestInstallRewritesVolumePathAndRunsInline(t *testing.T) {
	fx := newFixture(t)
	spec := testSpec("kkkk-5555")

	output, err := fx.mgr.Install(context.Background(), spec, "echo install", "installer:1")
	require.NoError(t, err)
	assert.Equal(t, []string{"done"}, output)

	want := filepath.Join(fx.dataDir, "kkkk-5555")
	assert.Equal(t, want, fx.inst.last().spec.VolumePath)

	info, err := os.Stat(want)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Inline installs do not register the server.
	_, ok := fx.reg.Get("kkkk-5555")
	assert.False(t, ok)
}

func TestSyncConfigRewritesVolumePathWithoutTouchingDisk(t *testing.T) {
	fx := newFixture(t)
	spec := testSpec("iiii-9999")

	fx.mgr.SyncConfig(spec)

	stored, ok := fx.reg.Get("iiii-9999")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(fx.dataDir, "iiii-9999"), stored.VolumePath)
	assert.Equal(t, 0, len(fx.rt.createdSpecs()))
}

func TestUpdateResourcesConvertsPanelUnits(t *testing.T) {
	fx := newFixture(t)
	spec := testSpec("jjjj-0000")
	fx.reg.Store(spec)
	fx.rt.setState("jjjj-0000", "running")

	err := fx.mgr.UpdateResources(context.Background(), "jjjj-0000", 2048, 150, 10240)
	require.NoError(t, err)

	assert.Equal(t, int64(2048*1024*1024), fx.rt.updatedMem)
	assert.Equal(t, int64(1_500_000_000), fx.rt.updatedCPU)

	stored, ok := fx.reg.Get("jjjj-0000")
	require.True(t, ok)
	assert.Equal(t, uint64(2048*1024*1024), stored.MemoryLimit)
	assert.Equal(t, uint64(1_500_000_000), stored.CPULimit)
	assert.Equal(t, uint64(10240*1024*1024), stored.DiskLimit)
}

func TestStatusRunningIncludesStatsAndDisk(t *testing.T) {
	fx := newFixture(t)
	fx.rt.setState("kkkk-aaaa", "running")
	fx.rt.stats = &types.ResourceStats{CPUPercent: 12.5, MemoryBytes: 64 * 1024 * 1024}

	dir := filepath.Join(fx.dataDir, "kkkk-aaaa")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "world"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "server.jar"), make([]byte, 2048), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "world", "level.dat"), make([]byte, 512), 0o644))

	state, stats, err := fx.mgr.Status(context.Background(), "kkkk-aaaa")
	require.NoError(t, err)
	assert.Equal(t, types.ServerStateRunning, state)
	require.NotNil(t, stats)
	assert.Equal(t, 12.5, stats.CPUPercent)
	assert.Equal(t, uint64(2560), stats.DiskBytes)
}

func TestStatusOfflineSkipsStats(t *testing.T) {
	fx := newFixture(t)
	fx.rt.setState("llll-bbbb", "exited")

	state, stats, err := fx.mgr.Status(context.Background(), "llll-bbbb")
	require.NoError(t, err)
	assert.Equal(t, types.ServerStateOffline, state)
	assert.Nil(t, stats)
}

func TestStatusStatsFailureDegradesToStateOnly(t *testing.T) {
	fx := newFixture(t)
	fx.rt.setState("mmmm-cccc", "running")
	fx.rt.statsErr = errors.New("stats stream broken")

	state, stats, err := fx.mgr.Status(context.Background(), "mmmm-cccc")
	require.NoError(t, err)
	assert.Equal(t, types.ServerStateRunning, state)
	assert.Nil(t, stats)
}

func TestStatusUnknownServer(t *testing.T) {
	fx := newFixture(t)

	_, _, err := fx.mgr.Status(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.KindNotFound))
}

func TestSendCommandDelegates(t *testing.T) {
	fx := newFixture(t)
	fx.rt.setState("nnnn-dddd", "running")

	err := fx.mgr.SendCommand(context.Background(), "nnnn-dddd", "say hi")
	require.NoError(t, err)
	assert.Equal(t, []string{"nnnn-dddd:say hi"}, fx.rt.commands)
}

func TestDiskUsageCountsRegularFilesOnly(t *testing.T) {
	fx := newFixture(t)

	dir := filepath.Join(fx.dataDir, "oooo-eeee")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	target := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(target, make([]byte, 100), 0o644))
	require.NoError(t, os.Symlink(target, filepath.Join(dir, "data-link")))

	assert.Equal(t, uint64(100), fx.mgr.diskUsage("oooo-eeee"))
}

func TestDiskUsageMissingDirectory(t *testing.T) {
	fx := newFixture(t)
	assert.Equal(t, uint64(0), fx.mgr.diskUsage("never-created"))
}
