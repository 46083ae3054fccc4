package types

import (
	"encoding/json"
)

// ServerSpec is the declarative description of a managed server: which image
// to run, how to start it, its resource limits, exposed ports, and where its
// data volume lives on the node. Specs are sent by the Panel, held in the
// registry, and persisted as a JSON sidecar inside the server's data
// directory so a deleted container can be recreated later.
type ServerSpec struct {
	UUID           string            `json:"uuid"`
	DockerImage    string            `json:"docker_image"`
	StartupCommand string            `json:"startup_command"`
	Environment    map[string]string `json:"environment"`
	MemoryLimit    uint64            `json:"memory_limit"` // bytes
	CPULimit       uint64            `json:"cpu_limit"`    // NanoCPUs (1e9 = one core)
	DiskLimit      uint64            `json:"disk_limit"`   // bytes, advisory only
	PortMappings   []PortMapping     `json:"port_mappings"`
	VolumePath     string            `json:"volume_path"`
}

// Clone returns a deep copy of the spec, safe to mutate independently.
func (s *ServerSpec) Clone() *ServerSpec {
	clone := *s
	if s.Environment != nil {
		clone.Environment = make(map[string]string, len(s.Environment))
		for k, v := range s.Environment {
			clone.Environment[k] = v
		}
	}
	if s.PortMappings != nil {
		clone.PortMappings = make([]PortMapping, len(s.PortMappings))
		copy(clone.PortMappings, s.PortMappings)
	}
	return &clone
}

// PortMapping exposes one TCP container port on the host.
type PortMapping struct {
	HostPort      uint16 `json:"host_port"`
	ContainerPort uint16 `json:"container_port"`
}

// UnmarshalJSON accepts both the canonical snake_case field names used in
// sidecar files and the camelCase names the Panel sends over the wire.
func (s *ServerSpec) UnmarshalJSON(data []byte) error {
	type serverSpec ServerSpec
	aux := struct {
		*serverSpec
		DockerImage    *string       `json:"dockerImage"`
		StartupCommand *string       `json:"startupCommand"`
		MemoryLimit    *uint64       `json:"memoryLimit"`
		CPULimit       *uint64       `json:"cpuLimit"`
		DiskLimit      *uint64       `json:"diskLimit"`
		PortMappings   []PortMapping `json:"portMappings"`
		VolumePath     *string       `json:"volumePath"`
	}{serverSpec: (*serverSpec)(s)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if aux.DockerImage != nil {
		s.DockerImage = *aux.DockerImage
	}
	if aux.StartupCommand != nil {
		s.StartupCommand = *aux.StartupCommand
	}
	if aux.MemoryLimit != nil {
		s.MemoryLimit = *aux.MemoryLimit
	}
	if aux.CPULimit != nil {
		s.CPULimit = *aux.CPULimit
	}
	if aux.DiskLimit != nil {
		s.DiskLimit = *aux.DiskLimit
	}
	if aux.PortMappings != nil {
		s.PortMappings = aux.PortMappings
	}
	if aux.VolumePath != nil {
		s.VolumePath = *aux.VolumePath
	}
	return nil
}

// UnmarshalJSON accepts both snake_case and camelCase port field names.
func (p *PortMapping) UnmarshalJSON(data []byte) error {
	type portMapping PortMapping
	aux := struct {
		*portMapping
		HostPort      *uint16 `json:"hostPort"`
		ContainerPort *uint16 `json:"containerPort"`
	}{portMapping: (*portMapping)(p)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if aux.HostPort != nil {
		p.HostPort = *aux.HostPort
	}
	if aux.ContainerPort != nil {
		p.ContainerPort = *aux.ContainerPort
	}
	return nil
}

// ServerState is the normalized lifecycle state reported to the Panel
type ServerState string

const (
	ServerStateOffline  ServerState = "Offline"
	ServerStateStarting ServerState = "Starting"
	ServerStateRunning  ServerState = "Running"
	ServerStateUnknown  ServerState = "Unknown"
)

// StateFromContainer maps a raw Docker container state string to the
// normalized ServerState. The mapping is total: unrecognized states
// become ServerStateUnknown.
func StateFromContainer(raw string) ServerState {
	switch raw {
	case "running":
		return ServerStateRunning
	case "created", "restarting":
		return ServerStateStarting
	case "paused", "exited", "dead", "removing":
		return ServerStateOffline
	default:
		return ServerStateUnknown
	}
}

// PowerAction is a lifecycle transition requested by the Panel
type PowerAction string

const (
	PowerActionStart   PowerAction = "start"
	PowerActionStop    PowerAction = "stop"
	PowerActionRestart PowerAction = "restart"
	PowerActionKill    PowerAction = "kill"
)

// ParsePowerAction validates a raw action string from a request body.
func ParsePowerAction(raw string) (PowerAction, error) {
	switch PowerAction(raw) {
	case PowerActionStart, PowerActionStop, PowerActionRestart, PowerActionKill:
		return PowerAction(raw), nil
	default:
		return "", Configf("Unknown power action: %s", raw)
	}
}

// ResourceStats is a point-in-time resource sample for a server container.
// CPUPercent may exceed 100 on multi-core hosts. DiskBytes is filled in by
// the caller from a volume walk; the raw stats API does not provide it.
type ResourceStats struct {
	CPUPercent     float64 `json:"cpu_percent"`
	MemoryBytes    uint64  `json:"memory_bytes"`
	MemoryLimit    uint64  `json:"memory_limit"`
	NetworkRxBytes uint64  `json:"network_rx_bytes"`
	NetworkTxBytes uint64  `json:"network_tx_bytes"`
	DiskBytes      uint64  `json:"disk_bytes"`
	Timestamp      string  `json:"timestamp"` // RFC 3339 UTC
}

// ServerInfo pairs a server UUID with its state as seen by a runtime
// listing. State is the normalized form used by metrics; RawState is the
// runtime's own state string, which heartbeats forward untouched.
type ServerInfo struct {
	UUID     string      `json:"uuid"`
	State    ServerState `json:"state"`
	RawState string      `json:"-"`
}

// EventType discriminates lifecycle events on the bus
type EventType string

const (
	EventStateChanged    EventType = "state.changed"
	EventInstallComplete EventType = "install.complete"
	EventInstallFailed   EventType = "install.failed"
)

// Event is a lifecycle notification destined for the Panel. Exactly one of
// the optional fields is meaningful depending on Type.
type Event struct {
	Type          EventType
	UUID          string
	PreviousState ServerState // state.changed only
	NewState      ServerState // state.changed only
	ErrorMessage  string      // install.failed only
	TimestampMs   int64
}
