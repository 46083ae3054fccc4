package installer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/nexus-panel/wings/pkg/config"
	"github.com/nexus-panel/wings/pkg/events"
	"github.com/nexus-panel/wings/pkg/log"
	"github.com/nexus-panel/wings/pkg/metrics"
	"github.com/nexus-panel/wings/pkg/runtime"
	"github.com/nexus-panel/wings/pkg/types"
)

// tailLines caps how much install output is shipped to the Panel on
// failure.
const tailLines = 50

const callbackTimeout = 10 * time.Second

// Runtime is the slice of the container runtime the pipeline needs.
type Runtime interface {
	RunInstall(ctx context.Context, job runtime.InstallJob) ([]string, int64, error)
	RemoveInstallContainer(ctx context.Context, uuid string) error
}

// Installer runs one-shot provisioning containers against a server's
// volume and reports the outcome to the Panel.
type Installer struct {
	runtime    Runtime
	bus        *events.Bus
	panelURL   string
	credential string
	client     *http.Client
	logger     zerolog.Logger
}

// New creates an installer reporting to the Panel named in cfg.
func New(cfg *config.Config, rt Runtime, bus *events.Bus) *Installer {
	return &Installer{
		runtime:    rt,
		bus:        bus,
		panelURL:   strings.TrimRight(cfg.Panel.URL, "/"),
		credential: cfg.Panel.Credential(),
		client:     &http.Client{Timeout: callbackTimeout},
		logger:     log.WithComponent("installer"),
	}
}

// Run executes script in a one-shot container of image and returns the
// captured output lines. The install-status callback and the install
// event always fire before Run returns. Blocking; callers wanting
// fire-and-forget run it on their own goroutine.
func (i *Installer) Run(ctx context.Context, spec *types.ServerSpec, script, image string) ([]string, error) {
	i.logger.Info().
		Str("server_uuid", spec.UUID).
		Str("image", image).
		Msg("Starting install run")

	lines, exitCode, err := i.runtime.RunInstall(ctx, runtime.InstallJob{
		UUID:       spec.UUID,
		Image:      image,
		Script:     script,
		VolumePath: spec.VolumePath,
	})
	if err != nil {
		// Container-level failure: there was no script exit, so no
		// install-status callback fires. The container, if created at
		// all, is swept by the next run's leftover cleanup.
		metrics.InstallRunsTotal.WithLabelValues("failed").Inc()
		i.bus.EmitInstallFailed(spec.UUID, err.Error())
		i.logger.Error().Err(err).Str("server_uuid", spec.UUID).Msg("Install failed")
		return nil, err
	}

	if exitCode != 0 {
		i.notify(spec.UUID, "failed", tail(lines, tailLines))
		i.removeContainer(spec.UUID)

		runErr := types.IOError(fmt.Errorf("Install script exited with code %d", exitCode))
		metrics.InstallRunsTotal.WithLabelValues("failed").Inc()
		i.bus.EmitInstallFailed(spec.UUID, runErr.Error())
		i.logger.Error().
			Str("server_uuid", spec.UUID).
			Int64("exit_code", exitCode).
			Msg("Install script failed")
		return nil, runErr
	}

	i.notify(spec.UUID, "success", "")
	i.removeContainer(spec.UUID)

	metrics.InstallRunsTotal.WithLabelValues("success").Inc()
	i.bus.EmitInstallComplete(spec.UUID)
	i.logger.Info().
		Str("server_uuid", spec.UUID).
		Int("lines", len(lines)).
		Msg("Install completed")
	return lines, nil
}

// callbackBody is the install-status payload the Panel expects.
type callbackBody struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// notify POSTs the install outcome to the Panel. Best-effort: a failing
// POST is logged and does not alter the install result.
func (i *Installer) notify(uuid, status, message string) {
	ctx, cancel := context.WithTimeout(context.Background(), callbackTimeout)
	defer cancel()

	body, err := json.Marshal(callbackBody{Status: status, Message: message})
	if err != nil {
		return
	}

	url := fmt.Sprintf("%s/api/v1/servers/%s/install-status", i.panelURL, uuid)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		i.logger.Warn().Err(err).Str("server_uuid", uuid).Msg("Failed to build install-status request")
		return
	}
	req.Header.Set("Authorization", "Bearer "+i.credential)
	req.Header.Set("Content-Type", "application/json")

	resp, err := i.client.Do(req)
	if err != nil {
		i.logger.Warn().Err(err).Str("server_uuid", uuid).Msg("Failed to notify Panel of install status")
		return
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
}

func (i *Installer) removeContainer(uuid string) {
	ctx, cancel := context.WithTimeout(context.Background(), callbackTimeout)
	defer cancel()

	if err := i.runtime.RemoveInstallContainer(ctx, uuid); err != nil {
		i.logger.Warn().Err(err).Str("server_uuid", uuid).Msg("Failed to remove install container")
	}
}

// tail joins the last n lines with newlines.
func tail(lines []string, n int) string {
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
