package api

import (
	"context"
	"net"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/nexus-panel/wings/api/proto"
	"github.com/nexus-panel/wings/pkg/config"
	"github.com/nexus-panel/wings/pkg/events"
	"github.com/nexus-panel/wings/pkg/log"
	"github.com/nexus-panel/wings/pkg/manager"
	"github.com/nexus-panel/wings/pkg/sysinfo"
	"github.com/nexus-panel/wings/pkg/types"
)

// keepaliveInterval paces liveness frames on an idle event stream.
const keepaliveInterval = 30 * time.Second

// GRPCServer exposes the daemon to the Panel over gRPC. It mirrors the
// REST surface operation for operation; deployments pick whichever
// transport their Panel speaks.
type GRPCServer struct {
	proto.UnimplementedWingsServiceServer

	cfg     *config.Config
	manager *manager.Manager
	runtime Runtime
	bus     *events.Bus
	version string
	grpc    *grpc.Server
	logger  zerolog.Logger
}

// NewGRPCServer wires the gRPC surface over the manager. The bus is
// drained by EventStream, so exactly one daemon-side consumer exists.
func NewGRPCServer(cfg *config.Config, mgr *manager.Manager, rt Runtime, bus *events.Bus, version string) *GRPCServer {
	s := &GRPCServer{
		cfg:     cfg,
		manager: mgr,
		runtime: rt,
		bus:     bus,
		version: version,
		logger:  log.WithComponent("grpc"),
	}

	s.grpc = grpc.NewServer(
		grpc.UnaryInterceptor(UnaryAuthInterceptor(cfg.Panel)),
		grpc.StreamInterceptor(StreamAuthInterceptor(cfg.Panel)),
	)
	proto.RegisterWingsServiceServer(s.grpc, s)
	return s
}

// Start listens on the configured gRPC address and serves until Stop is
// called.
func (s *GRPCServer) Start() error {
	lis, err := net.Listen("tcp", s.cfg.GRPCAddr())
	if err != nil {
		return err
	}
	s.logger.Info().Str("addr", s.cfg.GRPCAddr()).Msg("gRPC API listening")
	return s.grpc.Serve(lis)
}

// Stop drains in-flight RPCs and stops the server.
func (s *GRPCServer) Stop() {
	s.grpc.GracefulStop()
}

// rpcError converts a domain error into a gRPC status, preserving the
// message the Panel shows to operators.
func rpcError(err error) error {
	e := types.AsError(err)
	return status.Error(e.GRPCCode(), e.Message)
}

func (s *GRPCServer) CreateServer(ctx context.Context, req *proto.CreateServerRequest) (*proto.CreateServerResponse, error) {
	spec := specFromProto(req.GetServer())
	if spec == nil || spec.UUID == "" {
		return nil, rpcError(types.Configf("Missing server config"))
	}

	containerID, err := s.manager.Create(ctx, spec, req.GetInstallScript(), req.GetInstallDockerImage())
	if err != nil {
		return nil, rpcError(err)
	}
	return &proto.CreateServerResponse{ContainerId: containerID, Uuid: spec.UUID}, nil
}

func (s *GRPCServer) DeleteServer(ctx context.Context, req *proto.DeleteServerRequest) (*proto.DeleteServerResponse, error) {
	if err := s.manager.Delete(ctx, req.GetUuid(), req.GetRemoveVolumes()); err != nil {
		return nil, rpcError(err)
	}
	return &proto.DeleteServerResponse{}, nil
}

func (s *GRPCServer) ReinstallServer(ctx context.Context, req *proto.ReinstallServerRequest) (*proto.ReinstallServerResponse, error) {
	spec := specFromProto(req.GetServer())
	if spec == nil || spec.UUID == "" {
		return nil, rpcError(types.Configf("Missing server config"))
	}

	if err := s.manager.Reinstall(ctx, spec, req.GetInstallScript(), req.GetInstallDockerImage()); err != nil {
		return nil, rpcError(err)
	}
	return &proto.ReinstallServerResponse{}, nil
}

func (s *GRPCServer) SendPowerAction(ctx context.Context, req *proto.PowerActionRequest) (*proto.PowerActionResponse, error) {
	action, err := powerActionFromProto(req.GetAction())
	if err != nil {
		return nil, rpcError(err)
	}

	if err := s.manager.PowerAction(ctx, req.GetUuid(), action); err != nil {
		return nil, rpcError(err)
	}
	return &proto.PowerActionResponse{}, nil
}

func (s *GRPCServer) SendCommand(ctx context.Context, req *proto.CommandRequest) (*proto.CommandResponse, error) {
	if err := s.manager.SendCommand(ctx, req.GetUuid(), req.GetCommand()); err != nil {
		return nil, rpcError(err)
	}
	return &proto.CommandResponse{}, nil
}

func (s *GRPCServer) SyncServerConfig(ctx context.Context, req *proto.SyncConfigRequest) (*proto.SyncConfigResponse, error) {
	spec := specFromProto(req.GetServer())
	if spec == nil || spec.UUID == "" {
		return nil, rpcError(types.Configf("Missing server config"))
	}

	s.manager.SyncConfig(spec)
	return &proto.SyncConfigResponse{}, nil
}

func (s *GRPCServer) GetServerStatus(ctx context.Context, req *proto.ServerStatusRequest) (*proto.ServerStatusResponse, error) {
	state, stats, err := s.manager.Status(ctx, req.GetUuid())
	if err != nil {
		return nil, rpcError(err)
	}

	return &proto.ServerStatusResponse{
		Uuid:      req.GetUuid(),
		State:     stateToProto(state),
		Resources: statsToProto(req.GetUuid(), stats),
	}, nil
}

func (s *GRPCServer) GetSystemInfo(ctx context.Context, _ *proto.SystemInfoRequest) (*proto.SystemInfoResponse, error) {
	dockerVersion, err := s.runtime.Version(ctx)
	if err != nil {
		// The Panel treats system info as best-effort; report a degraded
		// runtime instead of failing the whole call.
		dockerVersion = "unknown"
	}

	servers, err := s.manager.ListServers(ctx)
	if err != nil {
		return nil, rpcError(err)
	}

	totalMem, usedMem := sysinfo.Memory()
	totalDisk, usedDisk := sysinfo.DiskUsage(s.cfg.Storage.DataDir)

	return &proto.SystemInfoResponse{
		Version:       s.version,
		DockerVersion: dockerVersion,
		TotalMemory:   totalMem,
		UsedMemory:    usedMem,
		TotalDisk:     totalDisk,
		UsedDisk:      usedDisk,
		CpuPercent:    sysinfo.CPUPercent(),
		ServerCount:   uint32(len(servers)),
	}, nil
}

func (s *GRPCServer) UpdateResources(ctx context.Context, req *proto.UpdateResourcesRequest) (*proto.UpdateResourcesResponse, error) {
	err := s.manager.UpdateResources(ctx, req.GetUuid(), req.GetMemoryLimitMb(), uint64(req.GetCpuLimit()), req.GetDiskLimitMb())
	if err != nil {
		return nil, rpcError(err)
	}
	return &proto.UpdateResourcesResponse{}, nil
}

// EventStream pushes lifecycle events to the Panel as they happen,
// interleaved with keepalives so an idle connection stays verifiably
// open. The inbound half is drained and discarded: the Panel issues
// commands through the unary RPCs, but reading it notices disconnects
// without waiting for a failed Send.
func (s *GRPCServer) EventStream(stream proto.WingsService_EventStreamServer) error {
	ctx, cancel := context.WithCancel(stream.Context())
	defer cancel()

	s.logger.Info().Msg("Event stream opened")
	defer s.logger.Info().Msg("Event stream closed")

	go func() {
		defer cancel()
		for {
			if _, err := stream.Recv(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(keepaliveInterval)
	defer ticker.Stop()

	for {
		select {
		case event := <-s.bus.Events():
			msg := eventToProto(event)
			if msg == nil {
				continue
			}
			if err := stream.Send(msg); err != nil {
				return err
			}
		case <-ticker.C:
			keepalive := &proto.WingsEvent{Event: &proto.WingsEvent_Keepalive{
				Keepalive: &proto.Keepalive{TimestampMs: time.Now().UnixMilli()},
			}}
			if err := stream.Send(keepalive); err != nil {
				return err
			}
		case <-ctx.Done():
			return nil
		}
	}
}

// specFromProto maps a wire ServerConfig onto the internal spec. The wire
// form carries memory and disk in MiB and CPU in hundredths of a core;
// the spec stores bytes and NanoCPUs.
func specFromProto(pb *proto.ServerConfig) *types.ServerSpec {
	if pb == nil {
		return nil
	}

	spec := &types.ServerSpec{
		UUID:           pb.GetUuid(),
		DockerImage:    pb.GetDockerImage(),
		StartupCommand: pb.GetStartupCommand(),
		Environment:    pb.GetEnvironment(),
		MemoryLimit:    pb.GetMemoryLimitMb() * 1024 * 1024,
		CPULimit:       uint64(pb.GetCpuLimit()) * 10_000_000,
		DiskLimit:      pb.GetDiskLimitMb() * 1024 * 1024,
		VolumePath:     pb.GetVolumePath(),
	}
	for _, pm := range pb.GetPortMappings() {
		spec.PortMappings = append(spec.PortMappings, types.PortMapping{
			HostPort:      uint16(pm.GetHostPort()),
			ContainerPort: uint16(pm.GetContainerPort()),
		})
	}
	return spec
}

func stateToProto(state types.ServerState) proto.ServerState {
	switch state {
	case types.ServerStateOffline:
		return proto.ServerState_STATE_OFFLINE
	case types.ServerStateStarting:
		return proto.ServerState_STATE_STARTING
	case types.ServerStateRunning:
		return proto.ServerState_STATE_RUNNING
	default:
		return proto.ServerState_STATE_UNKNOWN
	}
}

// statsToProto converts a resource sample, tolerating the nil a stopped
// server produces.
func statsToProto(uuid string, stats *types.ResourceStats) *proto.ResourceStats {
	if stats == nil {
		return nil
	}

	ts := time.Now().UnixMilli()
	if t, err := time.Parse(time.RFC3339Nano, stats.Timestamp); err == nil {
		ts = t.UnixMilli()
	}

	return &proto.ResourceStats{
		Uuid:           uuid,
		CpuPercent:     stats.CPUPercent,
		MemoryBytes:    stats.MemoryBytes,
		MemoryLimit:    stats.MemoryLimit,
		NetworkRxBytes: stats.NetworkRxBytes,
		NetworkTxBytes: stats.NetworkTxBytes,
		DiskBytes:      stats.DiskBytes,
		TimestampMs:    ts,
	}
}

func powerActionFromProto(action proto.PowerAction) (types.PowerAction, error) {
	switch action {
	case proto.PowerAction_POWER_START:
		return types.PowerActionStart, nil
	case proto.PowerAction_POWER_STOP:
		return types.PowerActionStop, nil
	case proto.PowerAction_POWER_RESTART:
		return types.PowerActionRestart, nil
	case proto.PowerAction_POWER_KILL:
		return types.PowerActionKill, nil
	default:
		return "", types.Configf("Unknown power action: %d", action)
	}
}

// eventToProto maps a bus event to its wire form. Unknown event types
// map to nil and are skipped by the stream.
func eventToProto(event *types.Event) *proto.WingsEvent {
	switch event.Type {
	case types.EventStateChanged:
		return &proto.WingsEvent{Event: &proto.WingsEvent_StateChanged{
			StateChanged: &proto.ServerStateChanged{
				Uuid:          event.UUID,
				PreviousState: stateToProto(event.PreviousState),
				NewState:      stateToProto(event.NewState),
				TimestampMs:   event.TimestampMs,
			},
		}}
	case types.EventInstallComplete:
		return &proto.WingsEvent{Event: &proto.WingsEvent_InstallComplete{
			InstallComplete: &proto.ServerInstallComplete{
				Uuid:        event.UUID,
				TimestampMs: event.TimestampMs,
			},
		}}
	case types.EventInstallFailed:
		return &proto.WingsEvent{Event: &proto.WingsEvent_InstallFailed{
			InstallFailed: &proto.ServerInstallFailed{
				Uuid:         event.UUID,
				ErrorMessage: event.ErrorMessage,
				TimestampMs:  event.TimestampMs,
			},
		}}
	default:
		return nil
	}
}
