package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nexus-panel/wings/pkg/config"
	"github.com/nexus-panel/wings/pkg/console"
	"github.com/nexus-panel/wings/pkg/events"
	"github.com/nexus-panel/wings/pkg/manager"
	"github.com/nexus-panel/wings/pkg/registry"
	"github.com/nexus-panel/wings/pkg/runtime"
	"github.com/nexus-panel/wings/pkg/types"
)

const (
	testTokenID = "node_1"
	testToken   = "supersecret"
	testBearer  = "Bearer node_1.supersecret"
)

// fakeRuntime implements manager.Runtime so transport tests drive a real
// manager without a Docker daemon.
type fakeRuntime struct {
	mu sync.Mutex

	states         map[string]string
	created        []*types.ServerSpec
	deleted        []string
	removedVolumes bool
	commands       []string
	updatedMem     int64
	updatedCPU     int64

	stats    *types.ResourceStats
	statsErr error

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

func (f *fakeRuntime) commandsSnapshot() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.commands))
	copy(out, f.commands)
	return out
}

func (f *fakeRuntime) CreateServer(ctx context.Context, spec *types.ServerSpec) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, spec.Clone())
	f.states[spec.UUID] = "created"
	return "ctr-" + spec.UUID, nil
}

func (f *fakeRuntime) StartServer(ctx context.Context, uuid string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.states[uuid] = "running"
	return nil
}

func (f *fakeRuntime) StopServer(ctx context.Context, uuid string, timeoutSec int) error {
	f.mu.Lock()
	f.states[uuid] = "exited"
	f.mu.Unlock()

	select {
	case f.stopCalled <- uuid:
	default:
	}
	return nil
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
	f.removedVolumes = removeVolumes
	delete(f.states, uuid)
	return nil
}

func (f *fakeRuntime) UpdateResources(ctx context.Context, uuid string, memoryBytes, nanoCPUs int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.states[uuid]; !ok {
		return types.NotFoundf("Server not found: %s", uuid)
	}
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

// fakeNodeRuntime implements the Runtime slice the transports use
// directly. Its stream constructors fail, which downgrades websocket
// sessions to scrollback replay and command forwarding.
type fakeNodeRuntime struct {
	version    string
	versionErr error
}

func (f *fakeNodeRuntime) Version(ctx context.Context) (string, error) {
	if f.versionErr != nil {
		return "", f.versionErr
	}
	return f.version, nil
}

func (f *fakeNodeRuntime) FollowLogs(ctx context.Context, uuid string) (*runtime.LogStream, error) {
	return nil, types.NotFoundf("Server not found: %s", uuid)
}

func (f *fakeNodeRuntime) StreamStats(ctx context.Context, uuid string) (*runtime.StatsStream, error) {
	return nil, types.NotFoundf("Server not found: %s", uuid)
}

type fakeInstaller struct {
	mu     sync.Mutex
	runs   int
	spec   *types.ServerSpec
	script string
	image  string
}

func (f *fakeInstaller) Run(ctx context.Context, spec *types.ServerSpec, script, image string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runs++
	f.spec = spec.Clone()
	f.script = script
	f.image = image
	return []string{"install ok"}, nil
}

func (f *fakeInstaller) lastSpec() *types.ServerSpec {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.spec
}

func (f *fakeInstaller) runCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.runs
}

type fixture struct {
	cfg     config.Config
	rt      *fakeRuntime
	node    *fakeNodeRuntime
	inst    *fakeInstaller
	mgr     *manager.Manager
	store   *console.Store
	bus     *events.Bus
	dataDir string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dataDir := t.TempDir()
	cfg := config.Default()
	cfg.Panel.URL = "http://panel.test"
	cfg.Panel.TokenID = testTokenID
	cfg.Panel.Token = testToken
	cfg.Storage.DataDir = dataDir

	rt := newFakeRuntime()
	inst := &fakeInstaller{}
	store := console.NewStore()
	bus := events.NewBus()
	mgr := manager.New(rt, registry.New(dataDir), store, bus, inst, dataDir)

	return &fixture{
		cfg:     cfg,
		rt:      rt,
		node:    &fakeNodeRuntime{version: "28.1.0"},
		inst:    inst,
		mgr:     mgr,
		store:   store,
		bus:     bus,
		dataDir: dataDir,
	}
}

func (f *fixture) httpServer() *HTTPServer {
	return NewHTTPServer(&f.cfg, f.mgr, f.node, f.store, "0.3.0")
}

func (f *fixture) grpcServer() *GRPCServer {
	return NewGRPCServer(&f.cfg, f.mgr, f.node, f.bus, "0.3.0")
}

// doJSON performs an authenticated request with an optional JSON body and
// returns the recorded response.
func doJSON(t *testing.T, h http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", testBearer)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}
