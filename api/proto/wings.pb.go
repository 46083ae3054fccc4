// Package proto contains the protobuf bindings for the wings daemon gRPC
// API. The schema of record is wings.proto; these bindings are maintained
// by hand in the legacy protoc-gen-go style, so field numbers and type
// registrations here must stay in sync with the schema.
package proto

import (
	proto "github.com/golang/protobuf/proto"
)

// ServerState is the normalized lifecycle state of a managed server.
type ServerState int32

const (
	ServerState_STATE_UNKNOWN  ServerState = 0
	ServerState_STATE_OFFLINE  ServerState = 1
	ServerState_STATE_STARTING ServerState = 2
	ServerState_STATE_RUNNING  ServerState = 3
)

var ServerState_name = map[int32]string{
	0: "STATE_UNKNOWN",
	1: "STATE_OFFLINE",
	2: "STATE_STARTING",
	3: "STATE_RUNNING",
}

var ServerState_value = map[string]int32{
	"STATE_UNKNOWN":  0,
	"STATE_OFFLINE":  1,
	"STATE_STARTING": 2,
	"STATE_RUNNING":  3,
}

func (x ServerState) String() string {
	return proto.EnumName(ServerState_name, int32(x))
}

// PowerAction is a lifecycle transition requested by the Panel.
type PowerAction int32

const (
	PowerAction_POWER_START   PowerAction = 0
	PowerAction_POWER_STOP    PowerAction = 1
	PowerAction_POWER_RESTART PowerAction = 2
	PowerAction_POWER_KILL    PowerAction = 3
)

var PowerAction_name = map[int32]string{
	0: "POWER_START",
	1: "POWER_STOP",
	2: "POWER_RESTART",
	3: "POWER_KILL",
}

var PowerAction_value = map[string]int32{
	"POWER_START":   0,
	"POWER_STOP":    1,
	"POWER_RESTART": 2,
	"POWER_KILL":    3,
}

func (x PowerAction) String() string {
	return proto.EnumName(PowerAction_name, int32(x))
}

// ServerConfig describes a managed server. Memory and disk limits are in
// MiB; CpuLimit is in hundredths of a core (100 = one core).
type ServerConfig struct {
	Uuid                 string            `protobuf:"bytes,1,opt,name=uuid,proto3" json:"uuid,omitempty"`
	DockerImage          string            `protobuf:"bytes,2,opt,name=docker_image,json=dockerImage,proto3" json:"docker_image,omitempty"`
	StartupCommand       string            `protobuf:"bytes,3,opt,name=startup_command,json=startupCommand,proto3" json:"startup_command,omitempty"`
	Environment          map[string]string `protobuf:"bytes,4,rep,name=environment,proto3" json:"environment,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
	MemoryLimitMb        uint64            `protobuf:"varint,5,opt,name=memory_limit_mb,json=memoryLimitMb,proto3" json:"memory_limit_mb,omitempty"`
	CpuLimit             uint32            `protobuf:"varint,6,opt,name=cpu_limit,json=cpuLimit,proto3" json:"cpu_limit,omitempty"`
	DiskLimitMb          uint64            `protobuf:"varint,7,opt,name=disk_limit_mb,json=diskLimitMb,proto3" json:"disk_limit_mb,omitempty"`
	PortMappings         []*PortMapping    `protobuf:"bytes,8,rep,name=port_mappings,json=portMappings,proto3" json:"port_mappings,omitempty"`
	VolumePath           string            `protobuf:"bytes,9,opt,name=volume_path,json=volumePath,proto3" json:"volume_path,omitempty"`
	XXX_NoUnkeyedLiteral struct{}          `json:"-"`
	XXX_unrecognized     []byte            `json:"-"`
	XXX_sizecache        int32             `json:"-"`
}

func (m *ServerConfig) Reset()         { *m = ServerConfig{} }
func (m *ServerConfig) String() string { return proto.CompactTextString(m) }
func (*ServerConfig) ProtoMessage()    {}

func (m *ServerConfig) GetUuid() string {
	if m != nil {
		return m.Uuid
	}
	return ""
}

func (m *ServerConfig) GetDockerImage() string {
	if m != nil {
		return m.DockerImage
	}
	return ""
}

func (m *ServerConfig) GetStartupCommand() string {
	if m != nil {
		return m.StartupCommand
	}
	return ""
}

func (m *ServerConfig) GetEnvironment() map[string]string {
	if m != nil {
		return m.Environment
	}
	return nil
}

func (m *ServerConfig) GetMemoryLimitMb() uint64 {
	if m != nil {
		return m.MemoryLimitMb
	}
	return 0
}

func (m *ServerConfig) GetCpuLimit() uint32 {
	if m != nil {
		return m.CpuLimit
	}
	return 0
}

func (m *ServerConfig) GetDiskLimitMb() uint64 {
	if m != nil {
		return m.DiskLimitMb
	}
	return 0
}

func (m *ServerConfig) GetPortMappings() []*PortMapping {
	if m != nil {
		return m.PortMappings
	}
	return nil
}

func (m *ServerConfig) GetVolumePath() string {
	if m != nil {
		return m.VolumePath
	}
	return ""
}

type PortMapping struct {
	HostPort             uint32   `protobuf:"varint,1,opt,name=host_port,json=hostPort,proto3" json:"host_port,omitempty"`
	ContainerPort        uint32   `protobuf:"varint,2,opt,name=container_port,json=containerPort,proto3" json:"container_port,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *PortMapping) Reset()         { *m = PortMapping{} }
func (m *PortMapping) String() string { return proto.CompactTextString(m) }
func (*PortMapping) ProtoMessage()    {}

func (m *PortMapping) GetHostPort() uint32 {
	if m != nil {
		return m.HostPort
	}
	return 0
}

func (m *PortMapping) GetContainerPort() uint32 {
	if m != nil {
		return m.ContainerPort
	}
	return 0
}

type CreateServerRequest struct {
	Server               *ServerConfig `protobuf:"bytes,1,opt,name=server,proto3" json:"server,omitempty"`
	InstallScript        string        `protobuf:"bytes,2,opt,name=install_script,json=installScript,proto3" json:"install_script,omitempty"`
	InstallDockerImage   string        `protobuf:"bytes,3,opt,name=install_docker_image,json=installDockerImage,proto3" json:"install_docker_image,omitempty"`
	XXX_NoUnkeyedLiteral struct{}      `json:"-"`
	XXX_unrecognized     []byte        `json:"-"`
	XXX_sizecache        int32         `json:"-"`
}

func (m *CreateServerRequest) Reset()         { *m = CreateServerRequest{} }
func (m *CreateServerRequest) String() string { return proto.CompactTextString(m) }
func (*CreateServerRequest) ProtoMessage()    {}

func (m *CreateServerRequest) GetServer() *ServerConfig {
	if m != nil {
		return m.Server
	}
	return nil
}

func (m *CreateServerRequest) GetInstallScript() string {
	if m != nil {
		return m.InstallScript
	}
	return ""
}

func (m *CreateServerRequest) GetInstallDockerImage() string {
	if m != nil {
		return m.InstallDockerImage
	}
	return ""
}

type CreateServerResponse struct {
	ContainerId          string   `protobuf:"bytes,1,opt,name=container_id,json=containerId,proto3" json:"container_id,omitempty"`
	Uuid                 string   `protobuf:"bytes,2,opt,name=uuid,proto3" json:"uuid,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *CreateServerResponse) Reset()         { *m = CreateServerResponse{} }
func (m *CreateServerResponse) String() string { return proto.CompactTextString(m) }
func (*CreateServerResponse) ProtoMessage()    {}

func (m *CreateServerResponse) GetContainerId() string {
	if m != nil {
		return m.ContainerId
	}
	return ""
}

func (m *CreateServerResponse) GetUuid() string {
	if m != nil {
		return m.Uuid
	}
	return ""
}

type DeleteServerRequest struct {
	Uuid                 string   `protobuf:"bytes,1,opt,name=uuid,proto3" json:"uuid,omitempty"`
	RemoveVolumes        bool     `protobuf:"varint,2,opt,name=remove_volumes,json=removeVolumes,proto3" json:"remove_volumes,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *DeleteServerRequest) Reset()         { *m = DeleteServerRequest{} }
func (m *DeleteServerRequest) String() string { return proto.CompactTextString(m) }
func (*DeleteServerRequest) ProtoMessage()    {}

func (m *DeleteServerRequest) GetUuid() string {
	if m != nil {
		return m.Uuid
	}
	return ""
}

func (m *DeleteServerRequest) GetRemoveVolumes() bool {
	if m != nil {
		return m.RemoveVolumes
	}
	return false
}

type DeleteServerResponse struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *DeleteServerResponse) Reset()         { *m = DeleteServerResponse{} }
func (m *DeleteServerResponse) String() string { return proto.CompactTextString(m) }
func (*DeleteServerResponse) ProtoMessage()    {}

type ReinstallServerRequest struct {
	Server               *ServerConfig `protobuf:"bytes,1,opt,name=server,proto3" json:"server,omitempty"`
	InstallScript        string        `protobuf:"bytes,2,opt,name=install_script,json=installScript,proto3" json:"install_script,omitempty"`
	InstallDockerImage   string        `protobuf:"bytes,3,opt,name=install_docker_image,json=installDockerImage,proto3" json:"install_docker_image,omitempty"`
	XXX_NoUnkeyedLiteral struct{}      `json:"-"`
	XXX_unrecognized     []byte        `json:"-"`
	XXX_sizecache        int32         `json:"-"`
}

func (m *ReinstallServerRequest) Reset()         { *m = ReinstallServerRequest{} }
func (m *ReinstallServerRequest) String() string { return proto.CompactTextString(m) }
func (*ReinstallServerRequest) ProtoMessage()    {}

func (m *ReinstallServerRequest) GetServer() *ServerConfig {
	if m != nil {
		return m.Server
	}
	return nil
}

func (m *ReinstallServerRequest) GetInstallScript() string {
	if m != nil {
		return m.InstallScript
	}
	return ""
}

func (m *ReinstallServerRequest) GetInstallDockerImage() string {
	if m != nil {
		return m.InstallDockerImage
	}
	return ""
}

type ReinstallServerResponse struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *ReinstallServerResponse) Reset()         { *m = ReinstallServerResponse{} }
func (m *ReinstallServerResponse) String() string { return proto.CompactTextString(m) }
func (*ReinstallServerResponse) ProtoMessage()    {}

type PowerActionRequest struct {
	Uuid                 string      `protobuf:"bytes,1,opt,name=uuid,proto3" json:"uuid,omitempty"`
	Action               PowerAction `protobuf:"varint,2,opt,name=action,proto3,enum=nexus.wings.PowerAction" json:"action,omitempty"`
	XXX_NoUnkeyedLiteral struct{}    `json:"-"`
	XXX_unrecognized     []byte      `json:"-"`
	XXX_sizecache        int32       `json:"-"`
}

func (m *PowerActionRequest) Reset()         { *m = PowerActionRequest{} }
func (m *PowerActionRequest) String() string { return proto.CompactTextString(m) }
func (*PowerActionRequest) ProtoMessage()    {}

func (m *PowerActionRequest) GetUuid() string {
	if m != nil {
		return m.Uuid
	}
	return ""
}

func (m *PowerActionRequest) GetAction() PowerAction {
	if m != nil {
		return m.Action
	}
	return PowerAction_POWER_START
}

type PowerActionResponse struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *PowerActionResponse) Reset()         { *m = PowerActionResponse{} }
func (m *PowerActionResponse) String() string { return proto.CompactTextString(m) }
func (*PowerActionResponse) ProtoMessage()    {}

type CommandRequest struct {
	Uuid                 string   `protobuf:"bytes,1,opt,name=uuid,proto3" json:"uuid,omitempty"`
	Command              string   `protobuf:"bytes,2,opt,name=command,proto3" json:"command,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *CommandRequest) Reset()         { *m = CommandRequest{} }
func (m *CommandRequest) String() string { return proto.CompactTextString(m) }
func (*CommandRequest) ProtoMessage()    {}

func (m *CommandRequest) GetUuid() string {
	if m != nil {
		return m.Uuid
	}
	return ""
}

func (m *CommandRequest) GetCommand() string {
	if m != nil {
		return m.Command
	}
	return ""
}

type CommandResponse struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *CommandResponse) Reset()         { *m = CommandResponse{} }
func (m *CommandResponse) String() string { return proto.CompactTextString(m) }
func (*CommandResponse) ProtoMessage()    {}

type SyncConfigRequest struct {
	Server               *ServerConfig `protobuf:"bytes,1,opt,name=server,proto3" json:"server,omitempty"`
	XXX_NoUnkeyedLiteral struct{}      `json:"-"`
	XXX_unrecognized     []byte        `json:"-"`
	XXX_sizecache        int32         `json:"-"`
}

func (m *SyncConfigRequest) Reset()         { *m = SyncConfigRequest{} }
func (m *SyncConfigRequest) String() string { return proto.CompactTextString(m) }
func (*SyncConfigRequest) ProtoMessage()    {}

func (m *SyncConfigRequest) GetServer() *ServerConfig {
	if m != nil {
		return m.Server
	}
	return nil
}

type SyncConfigResponse struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *SyncConfigResponse) Reset()         { *m = SyncConfigResponse{} }
func (m *SyncConfigResponse) String() string { return proto.CompactTextString(m) }
func (*SyncConfigResponse) ProtoMessage()    {}

type ServerStatusRequest struct {
	Uuid                 string   `protobuf:"bytes,1,opt,name=uuid,proto3" json:"uuid,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *ServerStatusRequest) Reset()         { *m = ServerStatusRequest{} }
func (m *ServerStatusRequest) String() string { return proto.CompactTextString(m) }
func (*ServerStatusRequest) ProtoMessage()    {}

func (m *ServerStatusRequest) GetUuid() string {
	if m != nil {
		return m.Uuid
	}
	return ""
}

type ServerStatusResponse struct {
	Uuid                 string         `protobuf:"bytes,1,opt,name=uuid,proto3" json:"uuid,omitempty"`
	State                ServerState    `protobuf:"varint,2,opt,name=state,proto3,enum=nexus.wings.ServerState" json:"state,omitempty"`
	Resources            *ResourceStats `protobuf:"bytes,3,opt,name=resources,proto3" json:"resources,omitempty"`
	XXX_NoUnkeyedLiteral struct{}       `json:"-"`
	XXX_unrecognized     []byte         `json:"-"`
	XXX_sizecache        int32          `json:"-"`
}

func (m *ServerStatusResponse) Reset()         { *m = ServerStatusResponse{} }
func (m *ServerStatusResponse) String() string { return proto.CompactTextString(m) }
func (*ServerStatusResponse) ProtoMessage()    {}

func (m *ServerStatusResponse) GetUuid() string {
	if m != nil {
		return m.Uuid
	}
	return ""
}

func (m *ServerStatusResponse) GetState() ServerState {
	if m != nil {
		return m.State
	}
	return ServerState_STATE_UNKNOWN
}

func (m *ServerStatusResponse) GetResources() *ResourceStats {
	if m != nil {
		return m.Resources
	}
	return nil
}

type SystemInfoRequest struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *SystemInfoRequest) Reset()         { *m = SystemInfoRequest{} }
func (m *SystemInfoRequest) String() string { return proto.CompactTextString(m) }
func (*SystemInfoRequest) ProtoMessage()    {}

type SystemInfoResponse struct {
	Version              string   `protobuf:"bytes,1,opt,name=version,proto3" json:"version,omitempty"`
	DockerVersion        string   `protobuf:"bytes,2,opt,name=docker_version,json=dockerVersion,proto3" json:"docker_version,omitempty"`
	TotalMemory          uint64   `protobuf:"varint,3,opt,name=total_memory,json=totalMemory,proto3" json:"total_memory,omitempty"`
	UsedMemory           uint64   `protobuf:"varint,4,opt,name=used_memory,json=usedMemory,proto3" json:"used_memory,omitempty"`
	TotalDisk            uint64   `protobuf:"varint,5,opt,name=total_disk,json=totalDisk,proto3" json:"total_disk,omitempty"`
	UsedDisk             uint64   `protobuf:"varint,6,opt,name=used_disk,json=usedDisk,proto3" json:"used_disk,omitempty"`
	CpuPercent           float64  `protobuf:"fixed64,7,opt,name=cpu_percent,json=cpuPercent,proto3" json:"cpu_percent,omitempty"`
	ServerCount          uint32   `protobuf:"varint,8,opt,name=server_count,json=serverCount,proto3" json:"server_count,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *SystemInfoResponse) Reset()         { *m = SystemInfoResponse{} }
func (m *SystemInfoResponse) String() string { return proto.CompactTextString(m) }
func (*SystemInfoResponse) ProtoMessage()    {}

func (m *SystemInfoResponse) GetVersion() string {
	if m != nil {
		return m.Version
	}
	return ""
}

func (m *SystemInfoResponse) GetDockerVersion() string {
	if m != nil {
		return m.DockerVersion
	}
	return ""
}

func (m *SystemInfoResponse) GetTotalMemory() uint64 {
	if m != nil {
		return m.TotalMemory
	}
	return 0
}

func (m *SystemInfoResponse) GetUsedMemory() uint64 {
	if m != nil {
		return m.UsedMemory
	}
	return 0
}

func (m *SystemInfoResponse) GetTotalDisk() uint64 {
	if m != nil {
		return m.TotalDisk
	}
	return 0
}

func (m *SystemInfoResponse) GetUsedDisk() uint64 {
	if m != nil {
		return m.UsedDisk
	}
	return 0
}

func (m *SystemInfoResponse) GetCpuPercent() float64 {
	if m != nil {
		return m.CpuPercent
	}
	return 0
}

func (m *SystemInfoResponse) GetServerCount() uint32 {
	if m != nil {
		return m.ServerCount
	}
	return 0
}

type UpdateResourcesRequest struct {
	Uuid                 string   `protobuf:"bytes,1,opt,name=uuid,proto3" json:"uuid,omitempty"`
	MemoryLimitMb        uint64   `protobuf:"varint,2,opt,name=memory_limit_mb,json=memoryLimitMb,proto3" json:"memory_limit_mb,omitempty"`
	CpuLimit             uint32   `protobuf:"varint,3,opt,name=cpu_limit,json=cpuLimit,proto3" json:"cpu_limit,omitempty"`
	DiskLimitMb          uint64   `protobuf:"varint,4,opt,name=disk_limit_mb,json=diskLimitMb,proto3" json:"disk_limit_mb,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *UpdateResourcesRequest) Reset()         { *m = UpdateResourcesRequest{} }
func (m *UpdateResourcesRequest) String() string { return proto.CompactTextString(m) }
func (*UpdateResourcesRequest) ProtoMessage()    {}

func (m *UpdateResourcesRequest) GetUuid() string {
	if m != nil {
		return m.Uuid
	}
	return ""
}

func (m *UpdateResourcesRequest) GetMemoryLimitMb() uint64 {
	if m != nil {
		return m.MemoryLimitMb
	}
	return 0
}

func (m *UpdateResourcesRequest) GetCpuLimit() uint32 {
	if m != nil {
		return m.CpuLimit
	}
	return 0
}

func (m *UpdateResourcesRequest) GetDiskLimitMb() uint64 {
	if m != nil {
		return m.DiskLimitMb
	}
	return 0
}

type UpdateResourcesResponse struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *UpdateResourcesResponse) Reset()         { *m = UpdateResourcesResponse{} }
func (m *UpdateResourcesResponse) String() string { return proto.CompactTextString(m) }
func (*UpdateResourcesResponse) ProtoMessage()    {}

// ResourceStats is a point-in-time resource sample for one server.
type ResourceStats struct {
	Uuid                 string   `protobuf:"bytes,1,opt,name=uuid,proto3" json:"uuid,omitempty"`
	CpuPercent           float64  `protobuf:"fixed64,2,opt,name=cpu_percent,json=cpuPercent,proto3" json:"cpu_percent,omitempty"`
	MemoryBytes          uint64   `protobuf:"varint,3,opt,name=memory_bytes,json=memoryBytes,proto3" json:"memory_bytes,omitempty"`
	MemoryLimit          uint64   `protobuf:"varint,4,opt,name=memory_limit,json=memoryLimit,proto3" json:"memory_limit,omitempty"`
	NetworkRxBytes       uint64   `protobuf:"varint,5,opt,name=network_rx_bytes,json=networkRxBytes,proto3" json:"network_rx_bytes,omitempty"`
	NetworkTxBytes       uint64   `protobuf:"varint,6,opt,name=network_tx_bytes,json=networkTxBytes,proto3" json:"network_tx_bytes,omitempty"`
	DiskBytes            uint64   `protobuf:"varint,7,opt,name=disk_bytes,json=diskBytes,proto3" json:"disk_bytes,omitempty"`
	TimestampMs          int64    `protobuf:"varint,8,opt,name=timestamp_ms,json=timestampMs,proto3" json:"timestamp_ms,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *ResourceStats) Reset()         { *m = ResourceStats{} }
func (m *ResourceStats) String() string { return proto.CompactTextString(m) }
func (*ResourceStats) ProtoMessage()    {}

func (m *ResourceStats) GetUuid() string {
	if m != nil {
		return m.Uuid
	}
	return ""
}

func (m *ResourceStats) GetCpuPercent() float64 {
	if m != nil {
		return m.CpuPercent
	}
	return 0
}

func (m *ResourceStats) GetMemoryBytes() uint64 {
	if m != nil {
		return m.MemoryBytes
	}
	return 0
}

func (m *ResourceStats) GetMemoryLimit() uint64 {
	if m != nil {
		return m.MemoryLimit
	}
	return 0
}

func (m *ResourceStats) GetNetworkRxBytes() uint64 {
	if m != nil {
		return m.NetworkRxBytes
	}
	return 0
}

func (m *ResourceStats) GetNetworkTxBytes() uint64 {
	if m != nil {
		return m.NetworkTxBytes
	}
	return 0
}

func (m *ResourceStats) GetDiskBytes() uint64 {
	if m != nil {
		return m.DiskBytes
	}
	return 0
}

func (m *ResourceStats) GetTimestampMs() int64 {
	if m != nil {
		return m.TimestampMs
	}
	return 0
}

type ServerStateChanged struct {
	Uuid                 string      `protobuf:"bytes,1,opt,name=uuid,proto3" json:"uuid,omitempty"`
	PreviousState        ServerState `protobuf:"varint,2,opt,name=previous_state,json=previousState,proto3,enum=nexus.wings.ServerState" json:"previous_state,omitempty"`
	NewState             ServerState `protobuf:"varint,3,opt,name=new_state,json=newState,proto3,enum=nexus.wings.ServerState" json:"new_state,omitempty"`
	TimestampMs          int64       `protobuf:"varint,4,opt,name=timestamp_ms,json=timestampMs,proto3" json:"timestamp_ms,omitempty"`
	XXX_NoUnkeyedLiteral struct{}    `json:"-"`
	XXX_unrecognized     []byte      `json:"-"`
	XXX_sizecache        int32       `json:"-"`
}

func (m *ServerStateChanged) Reset()         { *m = ServerStateChanged{} }
func (m *ServerStateChanged) String() string { return proto.CompactTextString(m) }
func (*ServerStateChanged) ProtoMessage()    {}

func (m *ServerStateChanged) GetUuid() string {
	if m != nil {
		return m.Uuid
	}
	return ""
}

func (m *ServerStateChanged) GetPreviousState() ServerState {
	if m != nil {
		return m.PreviousState
	}
	return ServerState_STATE_UNKNOWN
}

func (m *ServerStateChanged) GetNewState() ServerState {
	if m != nil {
		return m.NewState
	}
	return ServerState_STATE_UNKNOWN
}

func (m *ServerStateChanged) GetTimestampMs() int64 {
	if m != nil {
		return m.TimestampMs
	}
	return 0
}

type ServerInstallComplete struct {
	Uuid                 string   `protobuf:"bytes,1,opt,name=uuid,proto3" json:"uuid,omitempty"`
	TimestampMs          int64    `protobuf:"varint,2,opt,name=timestamp_ms,json=timestampMs,proto3" json:"timestamp_ms,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *ServerInstallComplete) Reset()         { *m = ServerInstallComplete{} }
func (m *ServerInstallComplete) String() string { return proto.CompactTextString(m) }
func (*ServerInstallComplete) ProtoMessage()    {}

func (m *ServerInstallComplete) GetUuid() string {
	if m != nil {
		return m.Uuid
	}
	return ""
}

func (m *ServerInstallComplete) GetTimestampMs() int64 {
	if m != nil {
		return m.TimestampMs
	}
	return 0
}

type ServerInstallFailed struct {
	Uuid                 string   `protobuf:"bytes,1,opt,name=uuid,proto3" json:"uuid,omitempty"`
	ErrorMessage         string   `protobuf:"bytes,2,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	TimestampMs          int64    `protobuf:"varint,3,opt,name=timestamp_ms,json=timestampMs,proto3" json:"timestamp_ms,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *ServerInstallFailed) Reset()         { *m = ServerInstallFailed{} }
func (m *ServerInstallFailed) String() string { return proto.CompactTextString(m) }
func (*ServerInstallFailed) ProtoMessage()    {}

func (m *ServerInstallFailed) GetUuid() string {
	if m != nil {
		return m.Uuid
	}
	return ""
}

func (m *ServerInstallFailed) GetErrorMessage() string {
	if m != nil {
		return m.ErrorMessage
	}
	return ""
}

func (m *ServerInstallFailed) GetTimestampMs() int64 {
	if m != nil {
		return m.TimestampMs
	}
	return 0
}

// Keepalive is interleaved into EventStream so the Panel can tell a quiet
// daemon from a dead connection.
type Keepalive struct {
	TimestampMs          int64    `protobuf:"varint,1,opt,name=timestamp_ms,json=timestampMs,proto3" json:"timestamp_ms,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *Keepalive) Reset()         { *m = Keepalive{} }
func (m *Keepalive) String() string { return proto.CompactTextString(m) }
func (*Keepalive) ProtoMessage()    {}

func (m *Keepalive) GetTimestampMs() int64 {
	if m != nil {
		return m.TimestampMs
	}
	return 0
}

type WingsEvent struct {
	// Types that are valid to be assigned to Event:
	//	*WingsEvent_StateChanged
	//	*WingsEvent_InstallComplete
	//	*WingsEvent_InstallFailed
	//	*WingsEvent_Keepalive
	Event                isWingsEvent_Event `protobuf_oneof:"event"`
	XXX_NoUnkeyedLiteral struct{}           `json:"-"`
	XXX_unrecognized     []byte             `json:"-"`
	XXX_sizecache        int32              `json:"-"`
}

func (m *WingsEvent) Reset()         { *m = WingsEvent{} }
func (m *WingsEvent) String() string { return proto.CompactTextString(m) }
func (*WingsEvent) ProtoMessage()    {}

type isWingsEvent_Event interface {
	isWingsEvent_Event()
}

type WingsEvent_StateChanged struct {
	StateChanged *ServerStateChanged `protobuf:"bytes,1,opt,name=state_changed,json=stateChanged,proto3,oneof"`
}

type WingsEvent_InstallComplete struct {
	InstallComplete *ServerInstallComplete `protobuf:"bytes,2,opt,name=install_complete,json=installComplete,proto3,oneof"`
}

type WingsEvent_InstallFailed struct {
	InstallFailed *ServerInstallFailed `protobuf:"bytes,3,opt,name=install_failed,json=installFailed,proto3,oneof"`
}

type WingsEvent_Keepalive struct {
	Keepalive *Keepalive `protobuf:"bytes,4,opt,name=keepalive,proto3,oneof"`
}

func (*WingsEvent_StateChanged) isWingsEvent_Event() {}

func (*WingsEvent_InstallComplete) isWingsEvent_Event() {}

func (*WingsEvent_InstallFailed) isWingsEvent_Event() {}

func (*WingsEvent_Keepalive) isWingsEvent_Event() {}

func (m *WingsEvent) GetEvent() isWingsEvent_Event {
	if m != nil {
		return m.Event
	}
	return nil
}

func (m *WingsEvent) GetStateChanged() *ServerStateChanged {
	if x, ok := m.GetEvent().(*WingsEvent_StateChanged); ok {
		return x.StateChanged
	}
	return nil
}

func (m *WingsEvent) GetInstallComplete() *ServerInstallComplete {
	if x, ok := m.GetEvent().(*WingsEvent_InstallComplete); ok {
		return x.InstallComplete
	}
	return nil
}

func (m *WingsEvent) GetInstallFailed() *ServerInstallFailed {
	if x, ok := m.GetEvent().(*WingsEvent_InstallFailed); ok {
		return x.InstallFailed
	}
	return nil
}

func (m *WingsEvent) GetKeepalive() *Keepalive {
	if x, ok := m.GetEvent().(*WingsEvent_Keepalive); ok {
		return x.Keepalive
	}
	return nil
}

// XXX_OneofWrappers is for the internal use of the proto package.
func (*WingsEvent) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*WingsEvent_StateChanged)(nil),
		(*WingsEvent_InstallComplete)(nil),
		(*WingsEvent_InstallFailed)(nil),
		(*WingsEvent_Keepalive)(nil),
	}
}

// PanelCommand is the Panel-to-daemon direction of EventStream. Nothing
// is dispatched on it yet; CommandType is an extension point.
type PanelCommand struct {
	CommandType          string   `protobuf:"bytes,1,opt,name=command_type,json=commandType,proto3" json:"command_type,omitempty"`
	Payload              []byte   `protobuf:"bytes,2,opt,name=payload,proto3" json:"payload,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *PanelCommand) Reset()         { *m = PanelCommand{} }
func (m *PanelCommand) String() string { return proto.CompactTextString(m) }
func (*PanelCommand) ProtoMessage()    {}

func (m *PanelCommand) GetCommandType() string {
	if m != nil {
		return m.CommandType
	}
	return ""
}

func (m *PanelCommand) GetPayload() []byte {
	if m != nil {
		return m.Payload
	}
	return nil
}

func init() {
	proto.RegisterEnum("nexus.wings.ServerState", ServerState_name, ServerState_value)
	proto.RegisterEnum("nexus.wings.PowerAction", PowerAction_name, PowerAction_value)
	proto.RegisterType((*ServerConfig)(nil), "nexus.wings.ServerConfig")
	proto.RegisterMapType((map[string]string)(nil), "nexus.wings.ServerConfig.EnvironmentEntry")
	proto.RegisterType((*PortMapping)(nil), "nexus.wings.PortMapping")
	proto.RegisterType((*CreateServerRequest)(nil), "nexus.wings.CreateServerRequest")
	proto.RegisterType((*CreateServerResponse)(nil), "nexus.wings.CreateServerResponse")
	proto.RegisterType((*DeleteServerRequest)(nil), "nexus.wings.DeleteServerRequest")
	proto.RegisterType((*DeleteServerResponse)(nil), "nexus.wings.DeleteServerResponse")
	proto.RegisterType((*ReinstallServerRequest)(nil), "nexus.wings.ReinstallServerRequest")
	proto.RegisterType((*ReinstallServerResponse)(nil), "nexus.wings.ReinstallServerResponse")
	proto.RegisterType((*PowerActionRequest)(nil), "nexus.wings.PowerActionRequest")
	proto.RegisterType((*PowerActionResponse)(nil), "nexus.wings.PowerActionResponse")
	proto.RegisterType((*CommandRequest)(nil), "nexus.wings.CommandRequest")
	proto.RegisterType((*CommandResponse)(nil), "nexus.wings.CommandResponse")
	proto.RegisterType((*SyncConfigRequest)(nil), "nexus.wings.SyncConfigRequest")
	proto.RegisterType((*SyncConfigResponse)(nil), "nexus.wings.SyncConfigResponse")
	proto.RegisterType((*ServerStatusRequest)(nil), "nexus.wings.ServerStatusRequest")
	proto.RegisterType((*ServerStatusResponse)(nil), "nexus.wings.ServerStatusResponse")
	proto.RegisterType((*SystemInfoRequest)(nil), "nexus.wings.SystemInfoRequest")
	proto.RegisterType((*SystemInfoResponse)(nil), "nexus.wings.SystemInfoResponse")
	proto.RegisterType((*UpdateResourcesRequest)(nil), "nexus.wings.UpdateResourcesRequest")
	proto.RegisterType((*UpdateResourcesResponse)(nil), "nexus.wings.UpdateResourcesResponse")
	proto.RegisterType((*ResourceStats)(nil), "nexus.wings.ResourceStats")
	proto.RegisterType((*ServerStateChanged)(nil), "nexus.wings.ServerStateChanged")
	proto.RegisterType((*ServerInstallComplete)(nil), "nexus.wings.ServerInstallComplete")
	proto.RegisterType((*ServerInstallFailed)(nil), "nexus.wings.ServerInstallFailed")
	proto.RegisterType((*Keepalive)(nil), "nexus.wings.Keepalive")
	proto.RegisterType((*WingsEvent)(nil), "nexus.wings.WingsEvent")
	proto.RegisterType((*PanelCommand)(nil), "nexus.wings.PanelCommand")
}
