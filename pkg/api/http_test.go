package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-panel/wings/pkg/types"
)

func TestAuthRejectsMissingAndBadCredentials(t *testing.T) {
	f := newFixture(t)
	h := f.httpServer().Handler()

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Token node_1.supersecret"},
		{"wrong token", "Bearer node_1.guess"},
		{"wrong id", "Bearer node_2.supersecret"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/system", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			var body map[string]string
			decodeBody(t, rec, &body)
			assert.Equal(t, "Authentication failed", body["error"])
		})
	}
}

func TestAuthAcceptsBareToken(t *testing.T) {
	f := newFixture(t)
	h := f.httpServer().Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/system", nil)
	req.Header.Set("Authorization", "Bearer "+testToken)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthAndMetricsAreAnonymous(t *testing.T) {
	f := newFixture(t)
	h := f.httpServer().Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "ok", body["status"])

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSystemInfoReportsVersions(t *testing.T) {
	f := newFixture(t)
	h := f.httpServer().Handler()

	rec := doJSON(t, h, http.MethodGet, "/api/system", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	decodeBody(t, rec, &body)
	assert.Equal(t, "0.3.0", body["version"])
	assert.Equal(t, "28.1.0", body["docker_version"])
	assert.Contains(t, body, "uptime_seconds")
}

func TestSystemInfoPropagatesRuntimeFailure(t *testing.T) {
	f := newFixture(t)
	f.node.versionErr = types.Runtimef(nil, "Docker unreachable")
	h := f.httpServer().Handler()

	rec := doJSON(t, h, http.MethodGet, "/api/system", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCreateServerProvisionsAndStartsInstall(t *testing.T) {
	f := newFixture(t)
	h := f.httpServer().Handler()

	rec := doJSON(t, h, http.MethodPost, "/api/servers", map[string]interface{}{
		"server": map[string]interface{}{
			"uuid":        "11111111-2222-3333-4444-555555555555",
			"dockerImage": "alpine:3",
			"memoryLimit": 512 * 1024 * 1024,
		},
		"installScript":      "echo install",
		"installDockerImage": "alpine:3",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "ctr-11111111-2222-3333-4444-555555555555", body["container_id"])
	assert.Equal(t, "11111111-2222-3333-4444-555555555555", body["uuid"])

	created := f.rt.createdSpecs()
	require.Len(t, created, 1)
	assert.Equal(t, filepath.Join(f.dataDir, body["uuid"]), created[0].VolumePath)

	require.Eventually(t, func() bool { return f.inst.runCount() == 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, "echo install", f.inst.script)
}

func TestCreateServerRequiresSpec(t *testing.T) {
	f := newFixture(t)
	h := f.httpServer().Handler()

	rec := doJSON(t, h, http.MethodPost, "/api/servers", map[string]interface{}{
		"installScript": "echo install",
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "Missing server config", body["error"])
}

func TestMalformedBodyIsBadRequest(t *testing.T) {
	f := newFixture(t)
	h := f.httpServer().Handler()

	req := httptest.NewRequest(http.MethodPost, "/api/servers", strings.NewReader("{"))
	req.Header.Set("Authorization", testBearer)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	decodeBody(t, rec, &body)
	assert.True(t, strings.HasPrefix(body["error"], "Invalid request body:"), body["error"])
}

func TestDeleteServerPassesRemoveVolumes(t *testing.T) {
	f := newFixture(t)
	f.rt.setState("u-del", "exited")
	h := f.httpServer().Handler()

	rec := doJSON(t, h, http.MethodDelete, "/api/servers/u-del?remove_volumes=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, []string{"u-del"}, f.rt.deleted)
	assert.True(t, f.rt.removedVolumes)
}

func TestPowerActionStart(t *testing.T) {
	f := newFixture(t)
	f.rt.setState("u-1", "created")
	h := f.httpServer().Handler()

	rec := doJSON(t, h, http.MethodPost, "/api/servers/u-1/power", map[string]string{"action": "start"})
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	decodeBody(t, rec, &body)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "start", body["action"])

	state, err := f.rt.ContainerState(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, "running", state)
}

func TestPowerActionStopAcknowledgesBeforeRuntime(t *testing.T) {
	f := newFixture(t)
	f.rt.setState("u-1", "running")
	h := f.httpServer().Handler()

	rec := doJSON(t, h, http.MethodPost, "/api/servers/u-1/power", map[string]string{"action": "stop"})
	require.Equal(t, http.StatusOK, rec.Code)

	select {
	case uuid := <-f.rt.stopCalled:
		assert.Equal(t, "u-1", uuid)
	case <-time.After(time.Second):
		t.Fatal("runtime stop was never called")
	}
}

func TestPowerActionUnknown(t *testing.T) {
	f := newFixture(t)
	h := f.httpServer().Handler()

	rec := doJSON(t, h, http.MethodPost, "/api/servers/u-1/power", map[string]string{"action": "explode"})
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "Unknown power action: explode", body["error"])
}

func TestSendCommandForwardsToRuntime(t *testing.T) {
	f := newFixture(t)
	f.rt.setState("u-1", "running")
	h := f.httpServer().Handler()

	rec := doJSON(t, h, http.MethodPost, "/api/servers/u-1/command", map[string]string{"command": "say hi"})
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, []string{"u-1:say hi"}, f.rt.commandsSnapshot())
}

func TestUpdateResourcesAcceptsBothShapes(t *testing.T) {
	cases := []struct {
		name   string
		method string
		body   map[string]interface{}
	}{
		{"patch camelCase", http.MethodPatch, map[string]interface{}{
			"memoryLimit": 1024, "cpuLimit": 200, "diskLimit": 2048,
		}},
		{"put snake_case", http.MethodPut, map[string]interface{}{
			"memory_limit": 1024, "cpu_limit": 200, "disk_limit": 2048,
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.rt.setState("u-1", "running")
			h := f.httpServer().Handler()

			rec := doJSON(t, h, tc.method, "/api/servers/u-1/resources", tc.body)
			require.Equal(t, http.StatusOK, rec.Code)

			assert.Equal(t, int64(1024*1024*1024), f.rt.updatedMem)
			assert.Equal(t, int64(2_000_000_000), f.rt.updatedCPU)
		})
	}
}

func TestUpdateResourcesFillsMissingFromStoredSpec(t *testing.T) {
	f := newFixture(t)
	f.rt.setState("u-1", "running")
	f.mgr.SyncConfig(&types.ServerSpec{
		UUID:        "u-1",
		MemoryLimit: 256 * 1024 * 1024,
		CPULimit:    1_500_000_000,
		DiskLimit:   4096 * 1024 * 1024,
	})
	h := f.httpServer().Handler()

	rec := doJSON(t, h, http.MethodPatch, "/api/servers/u-1/resources", map[string]interface{}{
		"memoryLimit": 2048,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, int64(2048*1024*1024), f.rt.updatedMem)
	assert.Equal(t, int64(1_500_000_000), f.rt.updatedCPU)
}

func TestUpdateResourcesUnknownServerWithPartialBody(t *testing.T) {
	f := newFixture(t)
	h := f.httpServer().Handler()

	rec := doJSON(t, h, http.MethodPatch, "/api/servers/u-missing/resources", map[string]interface{}{})
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "Missing resource limits", body["error"])
}

func TestServerStatusNormalizesState(t *testing.T) {
	f := newFixture(t)
	f.rt.setState("u-1", "exited")
	h := f.httpServer().Handler()

	rec := doJSON(t, h, http.MethodGet, "/api/servers/u-1/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		UUID      string               `json:"uuid"`
		State     string               `json:"state"`
		Resources *types.ResourceStats `json:"resources"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, "u-1", body.UUID)
	assert.Equal(t, "Offline", body.State)
	assert.Nil(t, body.Resources)
}

func TestServerStatusRunningIncludesStats(t *testing.T) {
	f := newFixture(t)
	f.rt.setState("u-1", "running")
	f.rt.stats = &types.ResourceStats{CPUPercent: 42.5, MemoryBytes: 1024}
	require.NoError(t, os.MkdirAll(filepath.Join(f.dataDir, "u-1"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(f.dataDir, "u-1", "world.dat"), []byte("12345"), 0o644))
	h := f.httpServer().Handler()

	rec := doJSON(t, h, http.MethodGet, "/api/servers/u-1/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		State     string               `json:"state"`
		Resources *types.ResourceStats `json:"resources"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, "Running", body.State)
	require.NotNil(t, body.Resources)
	assert.Equal(t, 42.5, body.Resources.CPUPercent)
	assert.Equal(t, uint64(5), body.Resources.DiskBytes)
}

func TestServerStatusUnknownServer(t *testing.T) {
	f := newFixture(t)
	h := f.httpServer().Handler()

	rec := doJSON(t, h, http.MethodGet, "/api/servers/u-missing/status", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInstallRunsSynchronouslyAndReturnsOutput(t *testing.T) {
	f := newFixture(t)
	h := f.httpServer().Handler()

	rec := doJSON(t, h, http.MethodPost, "/api/servers/u-new/install", map[string]string{
		"script":        "echo hi",
		"install_image": "alpine:3",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool     `json:"success"`
		Output  []string `json:"output"`
	}
	decodeBody(t, rec, &body)
	assert.True(t, body.Success)
	assert.Equal(t, []string{"install ok"}, body.Output)

	// No spec in the body: a placeholder with the node-local volume path
	// goes to the pipeline.
	spec := f.inst.lastSpec()
	require.NotNil(t, spec)
	assert.Equal(t, "u-new", spec.UUID)
	assert.Equal(t, filepath.Join(f.dataDir, "u-new"), spec.VolumePath)
}

func TestInstallPathUUIDOverridesBodySpec(t *testing.T) {
	f := newFixture(t)
	h := f.httpServer().Handler()

	rec := doJSON(t, h, http.MethodPost, "/api/servers/u-path/install", map[string]interface{}{
		"installScript":      "echo hi",
		"installDockerImage": "alpine:3",
		"server":             map[string]string{"uuid": "u-body", "docker_image": "alpine:3"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "u-path", f.inst.lastSpec().UUID)
}

func TestInstallValidatesScriptAndImage(t *testing.T) {
	f := newFixture(t)
	h := f.httpServer().Handler()

	rec := doJSON(t, h, http.MethodPost, "/api/servers/u-1/install", map[string]string{
		"install_image": "alpine:3",
	})
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "Missing install script", body["error"])

	rec = doJSON(t, h, http.MethodPost, "/api/servers/u-1/install", map[string]string{
		"script": "echo hi",
	})
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	decodeBody(t, rec, &body)
	assert.Equal(t, "Missing install image", body["error"])
}

func TestReinstallUsesStoredSpecWhenBodyOmitsIt(t *testing.T) {
	f := newFixture(t)
	f.mgr.SyncConfig(&types.ServerSpec{UUID: "u-1", DockerImage: "alpine:3"})
	h := f.httpServer().Handler()

	rec := doJSON(t, h, http.MethodPost, "/api/servers/u-1/reinstall", map[string]string{
		"install_script":       "echo hi",
		"install_docker_image": "alpine:3",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	require.Eventually(t, func() bool { return f.inst.runCount() == 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, "u-1", f.inst.lastSpec().UUID)
}

func TestReinstallUnknownServerWithoutBodySpec(t *testing.T) {
	f := newFixture(t)
	h := f.httpServer().Handler()

	rec := doJSON(t, h, http.MethodPost, "/api/servers/u-missing/reinstall", map[string]string{
		"install_script":       "echo hi",
		"install_docker_image": "alpine:3",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "Server not found: u-missing", body["error"])
}
