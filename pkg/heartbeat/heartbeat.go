package heartbeat

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
	"github.com/nexus-panel/wings/pkg/log"
	"github.com/nexus-panel/wings/pkg/metrics"
	"github.com/nexus-panel/wings/pkg/sysinfo"
	"github.com/nexus-panel/wings/pkg/types"
)

const (
	interval       = 30 * time.Second
	requestTimeout = 10 * time.Second
)

// ServerLister is the slice of the runtime adapter the heartbeat needs.
type ServerLister interface {
	ListManaged(ctx context.Context) ([]types.ServerInfo, error)
}

// payload is the body POSTed to the Panel each beat. Field names are
// camelCase because that is what the Panel's node intake expects.
type payload struct {
	Version     string        `json:"version"`
	TotalMemory uint64        `json:"totalMemory"`
	UsedMemory  uint64        `json:"usedMemory"`
	TotalDisk   uint64        `json:"totalDisk"`
	UsedDisk    uint64        `json:"usedDisk"`
	CPUPercent  float64       `json:"cpuPercent"`
	Servers     []serverEntry `json:"servers"`
}

// serverEntry reports one managed container with the runtime's own state
// string, not the normalized form.
type serverEntry struct {
	UUID  string `json:"uuid"`
	State string `json:"state"`
}

// Heartbeat periodically pushes node telemetry to the Panel.
type Heartbeat struct {
	panelURL   string
	credential string
	dataDir    string
	version    string
	servers    ServerLister
	client     *http.Client
	logger     zerolog.Logger
	stopCh     chan struct{}
	doneCh     chan struct{}
}

// New creates a heartbeat task. Call Start to begin beating.
func New(cfg *config.Config, version string, servers ServerLister) *Heartbeat {
	return &Heartbeat{
		panelURL:   strings.TrimRight(cfg.Panel.URL, "/"),
		credential: cfg.Panel.Credential(),
		dataDir:    cfg.Storage.DataDir,
		version:    version,
		servers:    servers,
		client:     &http.Client{Timeout: requestTimeout},
		logger:     log.WithComponent("heartbeat"),
		stopCh:     make(chan struct{}),
		doneCh:     make(chan struct{}),
	}
}

// Start launches the heartbeat goroutine. The first beat is sent
// immediately so the Panel learns about the node without waiting a full
// interval.
func (h *Heartbeat) Start() {
	go func() {
		defer close(h.doneCh)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		h.beat()
		for {
			select {
			case <-ticker.C:
				h.beat()
			case <-h.stopCh:
				h.logger.Info().Msg("Heartbeat task shutting down")
				return
			}
		}
	}()
}

// Stop signals the heartbeat goroutine and waits for it to exit.
func (h *Heartbeat) Stop() {
	close(h.stopCh)
	<-h.doneCh
}

func (h *Heartbeat) beat() {
	if err := h.send(); err != nil {
		metrics.HeartbeatsTotal.WithLabelValues("failed").Inc()
		h.logger.Warn().Err(err).Msg("Heartbeat failed")
		return
	}
	metrics.HeartbeatsTotal.WithLabelValues("success").Inc()
	h.logger.Debug().Msg("Heartbeat sent successfully")
}

func (h *Heartbeat) send() error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	body, err := json.Marshal(h.gather(ctx))
	if err != nil {
		return fmt.Errorf("failed to encode heartbeat payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.panelURL+"/api/v1/nodes/heartbeat", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build heartbeat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+h.credential)
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send heartbeat: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("panel rejected heartbeat: status %d", resp.StatusCode)
	}
	return nil
}

// gather assembles the payload and mirrors the node figures into the
// Prometheus gauges. CPU sampling blocks for its 100ms window, which is
// fine on this goroutine.
func (h *Heartbeat) gather(ctx context.Context) payload {
	memTotal, memUsed := sysinfo.Memory()
	diskTotal, diskUsed := sysinfo.DiskUsage(h.dataDir)
	cpu := sysinfo.CPUPercent()

	metrics.NodeCPUPercent.Set(cpu)
	metrics.NodeMemoryUsedBytes.Set(float64(memUsed))
	metrics.NodeDiskUsedBytes.Set(float64(diskUsed))

	entries := []serverEntry{}
	servers, err := h.servers.ListManaged(ctx)
	if err != nil {
		h.logger.Warn().Err(err).Msg("Failed to list containers for heartbeat")
	} else {
		for _, s := range servers {
			entries = append(entries, serverEntry{UUID: s.UUID, State: s.RawState})
		}
	}

	return payload{
		Version:     h.version,
		TotalMemory: memTotal,
		UsedMemory:  memUsed,
		TotalDisk:   diskTotal,
		UsedDisk:    diskUsed,
		CPUPercent:  cpu,
		Servers:     entries,
	}
}
