package metrics

import (
	"context"
	"time"

	"github.com/nexus-panel/wings/pkg/types"
)

// ServerLister is the slice of the manager the collector needs.
type ServerLister interface {
	ListServers(ctx context.Context) ([]types.ServerInfo, error)
}

// Collector periodically samples server states into Prometheus gauges
type Collector struct {
	servers ServerLister
	stopCh  chan struct{}
}

// NewCollector creates a new metrics collector
func NewCollector(servers ServerLister) *Collector {
	return &Collector{
		servers: servers,
		stopCh:  make(chan struct{}),
	}
}

// Start begins collecting metrics
func (c *Collector) Start() {
	ticker := time.NewTicker(15 * time.Second)
	go func() {
		// Collect immediately on start
		c.collect()

		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.stopCh:
				ticker.Stop()
				return
			}
		}
	}()
}

// Stop stops the collector
func (c *Collector) Stop() {
	close(c.stopCh)
}

func (c *Collector) collect() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	servers, err := c.servers.ListServers(ctx)
	if err != nil {
		return
	}

	counts := make(map[types.ServerState]int)
	for _, srv := range servers {
		counts[srv.State]++
	}

	// Write every state so gauges for emptied states drop back to zero
	for _, state := range []types.ServerState{
		types.ServerStateOffline,
		types.ServerStateStarting,
		types.ServerStateRunning,
		types.ServerStateUnknown,
	} {
		ServersTotal.WithLabelValues(string(state)).Set(float64(counts[state]))
	}
}
