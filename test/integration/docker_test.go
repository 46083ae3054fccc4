package integration

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/nexus-panel/wings/pkg/runtime"
	"github.com/nexus-panel/wings/pkg/types"
)

// TestDockerServerLifecycle tests the basic server workflow:
// create container → start → console command → logs → stats → stop → delete
func TestDockerServerLifecycle(t *testing.T) {
	// Skip if Docker is not available
	rt, err := runtime.NewDocker("")
	if err != nil {
		t.Skipf("Docker not available: %v", err)
	}
	defer rt.Close()

	ctx := context.Background()
	if err := rt.Ping(ctx); err != nil {
		t.Skipf("Docker not responding: %v", err)
	}

	if err := rt.EnsureNetwork(ctx); err != nil {
		t.Fatalf("Failed to ensure network: %v", err)
	}

	serverUUID := uuid.New().String()
	spec := &types.ServerSpec{
		UUID:        serverUUID,
		DockerImage: "busybox:latest",
		// An interactive shell stays alive under a TTY and echoes console
		// input back into the log stream.
		StartupCommand: "sh",
		Environment:    map[string]string{"TEST": "integration"},
		MemoryLimit:    64 * 1024 * 1024,
		CPULimit:       1_000_000_000,
		VolumePath:     t.TempDir(),
	}

	t.Log("Step 1: Creating server container...")
	containerID, err := rt.CreateServer(ctx, spec)
	if err != nil {
		t.Fatalf("Failed to create server: %v", err)
	}
	t.Logf("✓ Container created: %s", containerID)

	// Ensure cleanup
	defer func() {
		t.Log("Cleanup: Deleting server container...")
		if err := rt.DeleteServer(ctx, serverUUID, true); err != nil {
			t.Logf("Warning: Failed to delete server: %v", err)
		}
	}()

	t.Log("Step 2: Starting server...")
	if err := rt.StartServer(ctx, serverUUID); err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}
	t.Log("✓ Server started")

	// Wait a moment for the container to fully start
	time.Sleep(2 * time.Second)

	t.Log("Step 3: Checking container state...")
	state, err := rt.ContainerState(ctx, serverUUID)
	if err != nil {
		t.Fatalf("Failed to get container state: %v", err)
	}
	if state != "running" {
		t.Errorf("Expected container to be running, got: %s", state)
	}
	t.Logf("✓ Container state: %s", state)

	t.Log("Step 4: Sending console command...")
	if err := rt.SendCommand(ctx, serverUUID, "echo wings-integration"); err != nil {
		t.Fatalf("Failed to send command: %v", err)
	}
	time.Sleep(time.Second)

	lines, err := rt.Logs(ctx, serverUUID, 50)
	if err != nil {
		t.Fatalf("Failed to read logs: %v", err)
	}
	found := false
	for _, line := range lines {
		if strings.Contains(line, "wings-integration") {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Console output missing command echo, got %d lines: %v", len(lines), lines)
	}
	t.Log("✓ Console round-trip verified")

	t.Log("Step 5: Sampling resource stats...")
	stats, err := rt.Stats(ctx, serverUUID)
	if err != nil {
		t.Fatalf("Failed to read stats: %v", err)
	}
	if stats.MemoryLimit == 0 {
		t.Error("Expected a non-zero memory limit in stats")
	}
	t.Logf("✓ Stats sampled: %.1f%% CPU, %d bytes memory", stats.CPUPercent, stats.MemoryBytes)

	t.Log("Step 6: Stopping server...")
	if err := rt.StopServer(ctx, serverUUID, 5); err != nil {
		t.Fatalf("Failed to stop server: %v", err)
	}
	state, err = rt.ContainerState(ctx, serverUUID)
	if err != nil {
		t.Fatalf("Failed to get container state after stop: %v", err)
	}
	if state == "running" {
		t.Error("Container still running after stop")
	}
	t.Logf("✓ Server stopped (state: %s)", state)

	t.Log("Step 7: Verifying managed-container listing...")
	servers, err := rt.ListManaged(ctx)
	if err != nil {
		t.Fatalf("Failed to list managed containers: %v", err)
	}
	found = false
	for _, s := range servers {
		if s.UUID == serverUUID {
			found = true
			break
		}
	}
	if !found {
		t.Error("Server missing from managed-container listing")
	}
	t.Log("✓ Server visible in listing")
}

// TestDockerInstallJob runs a one-shot install script and verifies its
// output capture, exit code, and the files it leaves in the volume.
func TestDockerInstallJob(t *testing.T) {
	rt, err := runtime.NewDocker("")
	if err != nil {
		t.Skipf("Docker not available: %v", err)
	}
	defer rt.Close()

	ctx := context.Background()
	if err := rt.Ping(ctx); err != nil {
		t.Skipf("Docker not responding: %v", err)
	}

	serverUUID := uuid.New().String()
	volume := t.TempDir()

	defer func() {
		if err := rt.RemoveInstallContainer(ctx, serverUUID); err != nil {
			t.Logf("Warning: Failed to remove install container: %v", err)
		}
	}()

	t.Log("Step 1: Running install script...")
	lines, exitCode, err := rt.RunInstall(ctx, runtime.InstallJob{
		UUID:       serverUUID,
		Image:      "busybox:latest",
		Script:     "echo installing && echo done > /server/install.log",
		VolumePath: volume,
	})
	if err != nil {
		t.Fatalf("Install run failed: %v", err)
	}
	if exitCode != 0 {
		t.Fatalf("Expected exit code 0, got %d (output: %v)", exitCode, lines)
	}
	t.Logf("✓ Install finished with exit code %d", exitCode)

	t.Log("Step 2: Checking captured output...")
	found := false
	for _, line := range lines {
		if strings.Contains(line, "installing") {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("Install output missing script echo: %v", lines)
	}
	t.Log("✓ Output captured")

	t.Log("Step 3: Checking files written to the volume...")
	data, err := os.ReadFile(filepath.Join(volume, "install.log"))
	if err != nil {
		t.Fatalf("Install artifact missing: %v", err)
	}
	if strings.TrimSpace(string(data)) != "done" {
		t.Errorf("Unexpected artifact content: %q", data)
	}
	t.Log("✓ Volume artifact verified")
}
