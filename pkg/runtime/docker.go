package runtime

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/containerd/errdefs"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"
	"github.com/docker/go-connections/nat"
	"github.com/rs/zerolog"

	"github.com/nexus-panel/wings/pkg/log"
	"github.com/nexus-panel/wings/pkg/types"
)

const (
	// DefaultSocketPath is the default Docker daemon socket
	DefaultSocketPath = "/var/run/docker.sock"

	// NetworkName is the bridge network all managed containers join
	NetworkName = "nexus0"

	// LabelManaged marks containers owned by this daemon
	LabelManaged = "nexus.managed"

	// LabelServerUUID carries the owning server's UUID
	LabelServerUUID = "nexus.server_uuid"

	namePrefix        = "nexus-"
	installNamePrefix = "nexus-install-"
	serverWorkdir     = "/server"

	// maxLogLine bounds a single decoded log line
	maxLogLine = 1024 * 1024
)

// Docker implements the runtime operations against the Docker Engine API.
type Docker struct {
	cli    *client.Client
	logger zerolog.Logger
}

// NewDocker connects to the Docker daemon at the given socket path.
func NewDocker(socketPath string) (*Docker, error) {
	if socketPath == "" {
		socketPath = DefaultSocketPath
	}

	host := socketPath
	if !strings.Contains(host, "://") {
		host = "unix://" + host
	}

	cli, err := client.NewClientWithOpts(
		client.WithHost(host),
		client.WithAPIVersionNegotiation(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Docker: %w", err)
	}

	return &Docker{
		cli:    cli,
		logger: log.WithComponent("runtime"),
	}, nil
}

// Close closes the Docker client connection.
func (d *Docker) Close() error {
	if d.cli != nil {
		return d.cli.Close()
	}
	return nil
}

// Ping verifies the Docker daemon is reachable.
func (d *Docker) Ping(ctx context.Context) error {
	if _, err := d.cli.Ping(ctx); err != nil {
		return types.Runtimef(err, "failed to ping Docker daemon: %v", err)
	}
	return nil
}

// ContainerName returns the canonical container name for a server UUID.
func ContainerName(uuid string) string {
	return namePrefix + uuid
}

// InstallContainerName returns the name of the one-shot install container
// for a server UUID.
func InstallContainerName(uuid string) string {
	return installNamePrefix + uuid
}

// wrapErr classifies a Docker API error, mapping a missing container to the
// NotFound kind the Panel understands.
func wrapErr(err error, uuid, format string, args ...interface{}) error {
	if errdefs.IsNotFound(err) {
		return types.NotFoundf("Server not found: %s", uuid)
	}
	return types.Runtimef(err, format, args...)
}

// PullImage pulls an image and drains the progress stream to completion.
func (d *Docker) PullImage(ctx context.Context, ref string) error {
	d.logger.Info().Str("image", ref).Msg("Pulling image")

	resp, err := d.cli.ImagePull(ctx, ref, image.PullOptions{})
	if err != nil {
		return types.Runtimef(err, "failed to pull image %s: %v", ref, err)
	}
	defer resp.Close()

	if _, err := io.Copy(io.Discard, resp); err != nil {
		return types.Runtimef(err, "failed to read pull stream for %s: %v", ref, err)
	}
	return nil
}

// CreateServer pulls the workload image and creates the server container.
// It returns the container ID; the container is not started.
func (d *Docker) CreateServer(ctx context.Context, spec *types.ServerSpec) (string, error) {
	if err := d.PullImage(ctx, spec.DockerImage); err != nil {
		return "", err
	}

	exposed := nat.PortSet{}
	bindings := nat.PortMap{}
	for _, pm := range spec.PortMappings {
		port := nat.Port(fmt.Sprintf("%d/tcp", pm.ContainerPort))
		exposed[port] = struct{}{}
		bindings[port] = []nat.PortBinding{{
			HostIP:   "0.0.0.0",
			HostPort: strconv.Itoa(int(pm.HostPort)),
		}}
	}

	env := make([]string, 0, len(spec.Environment))
	for k, v := range spec.Environment {
		env = append(env, k+"="+v)
	}

	containerCfg := &container.Config{
		Image:        spec.DockerImage,
		Cmd:          strings.Fields(spec.StartupCommand),
		Env:          env,
		ExposedPorts: exposed,
		OpenStdin:    true,
		AttachStdin:  true,
		AttachStdout: true,
		AttachStderr: true,
		Tty:          true,
		WorkingDir:   serverWorkdir,
		Labels: map[string]string{
			LabelManaged:    "true",
			LabelServerUUID: spec.UUID,
		},
	}

	hostCfg := &container.HostConfig{
		Binds:        []string{spec.VolumePath + ":" + serverWorkdir},
		PortBindings: bindings,
		Resources: container.Resources{
			Memory:   int64(spec.MemoryLimit),
			NanoCPUs: int64(spec.CPULimit),
		},
	}

	resp, err := d.cli.ContainerCreate(ctx, containerCfg, hostCfg, nil, nil, ContainerName(spec.UUID))
	if err != nil {
		return "", types.Runtimef(err, "failed to create container: %v", err)
	}

	d.logger.Info().
		Str("server_uuid", spec.UUID).
		Str("container_id", resp.ID).
		Msg("Container created")
	return resp.ID, nil
}

// StartServer starts the server container.
func (d *Docker) StartServer(ctx context.Context, uuid string) error {
	if err := d.cli.ContainerStart(ctx, ContainerName(uuid), container.StartOptions{}); err != nil {
		return wrapErr(err, uuid, "failed to start container: %v", err)
	}
	return nil
}

// StopServer stops the server container gracefully, waiting up to
// timeoutSec before the daemon kills it.
func (d *Docker) StopServer(ctx context.Context, uuid string, timeoutSec int) error {
	opts := container.StopOptions{Timeout: &timeoutSec}
	if err := d.cli.ContainerStop(ctx, ContainerName(uuid), opts); err != nil {
		return wrapErr(err, uuid, "failed to stop container: %v", err)
	}
	return nil
}

// KillServer kills the server container immediately.
func (d *Docker) KillServer(ctx context.Context, uuid string) error {
	// Empty signal lets the daemon default to SIGKILL
	if err := d.cli.ContainerKill(ctx, ContainerName(uuid), ""); err != nil {
		return wrapErr(err, uuid, "failed to kill container: %v", err)
	}
	return nil
}

// RestartServer restarts the server container with the daemon's default
// stop timeout.
func (d *Docker) RestartServer(ctx context.Context, uuid string) error {
	if err := d.cli.ContainerRestart(ctx, ContainerName(uuid), container.StopOptions{}); err != nil {
		return wrapErr(err, uuid, "failed to restart container: %v", err)
	}
	return nil
}

// DeleteServer force-removes the server container after a best-effort stop.
// removeVolumes also removes anonymous volumes owned by the container.
func (d *Docker) DeleteServer(ctx context.Context, uuid string, removeVolumes bool) error {
	name := ContainerName(uuid)

	stopTimeout := 10
	_ = d.cli.ContainerStop(ctx, name, container.StopOptions{Timeout: &stopTimeout})

	err := d.cli.ContainerRemove(ctx, name, container.RemoveOptions{
		Force:         true,
		RemoveVolumes: removeVolumes,
	})
	if err != nil {
		return wrapErr(err, uuid, "failed to remove container: %v", err)
	}
	return nil
}

// UpdateResources applies new memory and CPU limits to the running
// container.
func (d *Docker) UpdateResources(ctx context.Context, uuid string, memoryBytes, nanoCPUs int64) error {
	update := container.UpdateConfig{
		Resources: container.Resources{
			Memory:   memoryBytes,
			NanoCPUs: nanoCPUs,
		},
	}
	if _, err := d.cli.ContainerUpdate(ctx, ContainerName(uuid), update); err != nil {
		return wrapErr(err, uuid, "failed to update container resources: %v", err)
	}
	return nil
}

// ContainerState returns the raw Docker state string for the server
// container, or NotFound when no container matches the canonical name.
func (d *Docker) ContainerState(ctx context.Context, uuid string) (string, error) {
	name := ContainerName(uuid)

	containers, err := d.cli.ContainerList(ctx, container.ListOptions{
		All:     true,
		Filters: filters.NewArgs(filters.Arg("name", name)),
	})
	if err != nil {
		return "", types.Runtimef(err, "failed to list containers: %v", err)
	}
	if len(containers) == 0 {
		return "", types.NotFoundf("Server not found: %s", uuid)
	}

	state := containers[0].State
	if state == "" {
		state = "unknown"
	}
	return state, nil
}

// SendCommand executes a shell command inside the server container.
// Fire-and-forget: output is discarded.
func (d *Docker) SendCommand(ctx context.Context, uuid, command string) error {
	name := ContainerName(uuid)

	exec, err := d.cli.ContainerExecCreate(ctx, name, container.ExecOptions{
		Cmd: []string{"/bin/sh", "-c", command},
	})
	if err != nil {
		return wrapErr(err, uuid, "failed to create exec: %v", err)
	}

	if err := d.cli.ContainerExecStart(ctx, exec.ID, container.ExecStartOptions{Detach: true}); err != nil {
		return wrapErr(err, uuid, "failed to start exec: %v", err)
	}
	return nil
}

// Stats returns a single normalized resource sample for the server
// container without waiting for a second cgroup read.
func (d *Docker) Stats(ctx context.Context, uuid string) (*types.ResourceStats, error) {
	resp, err := d.cli.ContainerStatsOneShot(ctx, ContainerName(uuid))
	if err != nil {
		return nil, wrapErr(err, uuid, "failed to read container stats: %v", err)
	}
	defer resp.Body.Close()

	var raw container.StatsResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, types.Runtimef(err, "failed to decode container stats: %v", err)
	}
	return normalizeStats(&raw), nil
}

// StatsStream yields successive normalized resource samples for a running
// container. Close stops the underlying Docker stream.
type StatsStream struct {
	body io.ReadCloser
	dec  *json.Decoder
}

// Next blocks until the daemon emits the next sample.
func (s *StatsStream) Next() (*types.ResourceStats, error) {
	var raw container.StatsResponse
	if err := s.dec.Decode(&raw); err != nil {
		return nil, err
	}
	return normalizeStats(&raw), nil
}

// Close terminates the stream; a blocked Next returns an error.
func (s *StatsStream) Close() error {
	return s.body.Close()
}

// StreamStats opens a live stats stream for the server container. The
// daemon emits roughly one sample per second until the stream is closed.
func (d *Docker) StreamStats(ctx context.Context, uuid string) (*StatsStream, error) {
	resp, err := d.cli.ContainerStats(ctx, ContainerName(uuid), true)
	if err != nil {
		return nil, wrapErr(err, uuid, "failed to open stats stream: %v", err)
	}
	return &StatsStream{body: resp.Body, dec: json.NewDecoder(resp.Body)}, nil
}

// LogStream yields container log output line by line. Close unblocks a
// pending Next.
type LogStream struct {
	body    io.ReadCloser
	scanner *bufio.Scanner
}

// Next returns the next log line, or false when the stream ends.
func (s *LogStream) Next() (string, bool) {
	if s.scanner.Scan() {
		return s.scanner.Text(), true
	}
	return "", false
}

// Close terminates the stream.
func (s *LogStream) Close() error {
	return s.body.Close()
}

// newLogStream wraps a raw Docker log body in a line scanner, demultiplexing
// stdout/stderr frames when the container has no TTY.
func newLogStream(body io.ReadCloser, tty bool) *LogStream {
	var r io.Reader = body
	if !tty {
		pr, pw := io.Pipe()
		go func() {
			_, err := stdcopy.StdCopy(pw, pw, body)
			pw.CloseWithError(err)
		}()
		r = pr
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLogLine)
	return &LogStream{body: body, scanner: scanner}
}

// hasTTY reports whether the named container allocates a TTY, which decides
// whether its log stream is raw or multiplexed.
func (d *Docker) hasTTY(ctx context.Context, name string) (bool, error) {
	info, err := d.cli.ContainerInspect(ctx, name)
	if err != nil {
		return false, err
	}
	return info.Config != nil && info.Config.Tty, nil
}

// Logs returns up to tail recent log lines from the server container.
func (d *Docker) Logs(ctx context.Context, uuid string, tail int) ([]string, error) {
	name := ContainerName(uuid)

	tty, err := d.hasTTY(ctx, name)
	if err != nil {
		return nil, wrapErr(err, uuid, "failed to inspect container: %v", err)
	}

	body, err := d.cli.ContainerLogs(ctx, name, container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Tail:       strconv.Itoa(tail),
	})
	if err != nil {
		return nil, wrapErr(err, uuid, "failed to read container logs: %v", err)
	}

	stream := newLogStream(body, tty)
	defer stream.Close()

	var lines []string
	for {
		line, ok := stream.Next()
		if !ok {
			break
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// FollowLogs opens a live log stream for the server container, starting
// from the current end of the log.
func (d *Docker) FollowLogs(ctx context.Context, uuid string) (*LogStream, error) {
	name := ContainerName(uuid)

	tty, err := d.hasTTY(ctx, name)
	if err != nil {
		return nil, wrapErr(err, uuid, "failed to inspect container: %v", err)
	}

	body, err := d.cli.ContainerLogs(ctx, name, container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Follow:     true,
		Tail:       "0",
	})
	if err != nil {
		return nil, wrapErr(err, uuid, "failed to follow container logs: %v", err)
	}
	return newLogStream(body, tty), nil
}

// InstallJob describes a one-shot provisioning container run.
type InstallJob struct {
	UUID       string
	Image      string
	Script     string
	VolumePath string
}

// RunInstall executes the job's script in a disposable container, following
// its output until the script exits. It returns the captured log lines and
// the script's exit code; removal of the container is left to the caller.
func (d *Docker) RunInstall(ctx context.Context, job InstallJob) ([]string, int64, error) {
	name := InstallContainerName(job.UUID)

	// Clear any leftover container from a previous run
	_ = d.cli.ContainerRemove(ctx, name, container.RemoveOptions{Force: true})

	containerCfg := &container.Config{
		Image:        job.Image,
		Cmd:          []string{"/bin/sh", "-c", job.Script},
		WorkingDir:   serverWorkdir,
		AttachStdout: true,
		AttachStderr: true,
	}
	hostCfg := &container.HostConfig{
		Binds: []string{job.VolumePath + ":" + serverWorkdir},
	}

	_, err := d.cli.ContainerCreate(ctx, containerCfg, hostCfg, nil, nil, name)
	if err != nil {
		if !errdefs.IsNotFound(err) {
			return nil, 0, types.Runtimef(err, "failed to create install container: %v", err)
		}
		// Image missing locally; pull and retry once
		if err := d.PullImage(ctx, job.Image); err != nil {
			return nil, 0, err
		}
		if _, err = d.cli.ContainerCreate(ctx, containerCfg, hostCfg, nil, nil, name); err != nil {
			return nil, 0, types.Runtimef(err, "failed to create install container after pull: %v", err)
		}
	}

	if err := d.cli.ContainerStart(ctx, name, container.StartOptions{}); err != nil {
		return nil, 0, types.Runtimef(err, "failed to start install container: %v", err)
	}

	// Install containers have no TTY, so the log stream is multiplexed.
	// Following until EOF also synchronizes with container exit.
	var lines []string
	body, err := d.cli.ContainerLogs(ctx, name, container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Follow:     true,
	})
	if err != nil {
		d.logger.Warn().Err(err).Str("container", name).Msg("Failed to follow install logs")
	} else {
		stream := newLogStream(body, false)
		for {
			line, ok := stream.Next()
			if !ok {
				break
			}
			lines = append(lines, line)
		}
		stream.Close()
	}

	waitCh, errCh := d.cli.ContainerWait(ctx, name, container.WaitConditionNotRunning)
	select {
	case res := <-waitCh:
		return lines, res.StatusCode, nil
	case err := <-errCh:
		return lines, 0, types.Runtimef(err, "failed to wait for install container: %v", err)
	case <-ctx.Done():
		return lines, 0, types.Runtimef(ctx.Err(), "install interrupted: %v", ctx.Err())
	}
}

// RemoveInstallContainer force-removes the one-shot install container.
// A missing container is not an error.
func (d *Docker) RemoveInstallContainer(ctx context.Context, uuid string) error {
	err := d.cli.ContainerRemove(ctx, InstallContainerName(uuid), container.RemoveOptions{Force: true})
	if err != nil && !errdefs.IsNotFound(err) {
		return types.Runtimef(err, "failed to remove install container: %v", err)
	}
	return nil
}

// Version returns the Docker daemon version string.
func (d *Docker) Version(ctx context.Context) (string, error) {
	ver, err := d.cli.ServerVersion(ctx)
	if err != nil {
		return "", types.Runtimef(err, "failed to read Docker version: %v", err)
	}
	if ver.Version == "" {
		return "unknown", nil
	}
	return ver.Version, nil
}

// EnsureNetwork creates the shared bridge network if it does not already
// exist. Idempotent.
func (d *Docker) EnsureNetwork(ctx context.Context) error {
	_, err := d.cli.NetworkInspect(ctx, NetworkName, network.InspectOptions{})
	if err == nil {
		d.logger.Debug().Str("network", NetworkName).Msg("Docker network already exists")
		return nil
	}
	if !errdefs.IsNotFound(err) {
		return types.Runtimef(err, "failed to inspect network %s: %v", NetworkName, err)
	}

	d.logger.Info().Str("network", NetworkName).Msg("Creating Docker network")
	if _, err := d.cli.NetworkCreate(ctx, NetworkName, network.CreateOptions{Driver: "bridge"}); err != nil {
		return types.Runtimef(err, "failed to create network %s: %v", NetworkName, err)
	}
	return nil
}

// AttachManagedContainers joins every nexus-prefixed container that is not
// already on the shared bridge network. Per-container failures are logged
// and skipped.
func (d *Docker) AttachManagedContainers(ctx context.Context) error {
	containers, err := d.cli.ContainerList(ctx, container.ListOptions{
		All:     true,
		Filters: filters.NewArgs(filters.Arg("name", namePrefix)),
	})
	if err != nil {
		return types.Runtimef(err, "failed to list containers: %v", err)
	}

	for _, c := range containers {
		if c.NetworkSettings != nil {
			if _, ok := c.NetworkSettings.Networks[NetworkName]; ok {
				continue
			}
		}

		d.logger.Info().
			Str("container_id", c.ID).
			Str("network", NetworkName).
			Msg("Attaching container to network")
		if err := d.cli.NetworkConnect(ctx, NetworkName, c.ID, nil); err != nil {
			d.logger.Warn().
				Err(err).
				Str("container_id", c.ID).
				Msg("Failed to attach container to network")
		}
	}
	return nil
}

// ListManaged returns every container carrying the managed label, with its
// state normalized. Containers missing the UUID label are skipped.
func (d *Docker) ListManaged(ctx context.Context) ([]types.ServerInfo, error) {
	containers, err := d.cli.ContainerList(ctx, container.ListOptions{
		All:     true,
		Filters: filters.NewArgs(filters.Arg("label", LabelManaged+"=true")),
	})
	if err != nil {
		return nil, types.Runtimef(err, "failed to list containers: %v", err)
	}

	servers := make([]types.ServerInfo, 0, len(containers))
	for _, c := range containers {
		uuid, ok := c.Labels[LabelServerUUID]
		if !ok {
			continue
		}
		raw := c.State
		if raw == "" {
			raw = "unknown"
		}
		servers = append(servers, types.ServerInfo{
			UUID:     uuid,
			State:    types.StateFromContainer(c.State),
			RawState: raw,
		})
	}
	return servers, nil
}
