// gRPC client and server bindings for WingsService. Hand-maintained
// alongside wings.pb.go; the schema of record is wings.proto.
package proto

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// WingsServiceClient is the client API for WingsService service.
type WingsServiceClient interface {
	CreateServer(ctx context.Context, in *CreateServerRequest, opts ...grpc.CallOption) (*CreateServerResponse, error)
	DeleteServer(ctx context.Context, in *DeleteServerRequest, opts ...grpc.CallOption) (*DeleteServerResponse, error)
	ReinstallServer(ctx context.Context, in *ReinstallServerRequest, opts ...grpc.CallOption) (*ReinstallServerResponse, error)
	SendPowerAction(ctx context.Context, in *PowerActionRequest, opts ...grpc.CallOption) (*PowerActionResponse, error)
	SendCommand(ctx context.Context, in *CommandRequest, opts ...grpc.CallOption) (*CommandResponse, error)
	SyncServerConfig(ctx context.Context, in *SyncConfigRequest, opts ...grpc.CallOption) (*SyncConfigResponse, error)
	GetServerStatus(ctx context.Context, in *ServerStatusRequest, opts ...grpc.CallOption) (*ServerStatusResponse, error)
	GetSystemInfo(ctx context.Context, in *SystemInfoRequest, opts ...grpc.CallOption) (*SystemInfoResponse, error)
	UpdateResources(ctx context.Context, in *UpdateResourcesRequest, opts ...grpc.CallOption) (*UpdateResourcesResponse, error)
	EventStream(ctx context.Context, opts ...grpc.CallOption) (WingsService_EventStreamClient, error)
}

type wingsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewWingsServiceClient(cc grpc.ClientConnInterface) WingsServiceClient {
	return &wingsServiceClient{cc}
}

func (c *wingsServiceClient) CreateServer(ctx context.Context, in *CreateServerRequest, opts ...grpc.CallOption) (*CreateServerResponse, error) {
	out := new(CreateServerResponse)
	err := c.cc.Invoke(ctx, "/nexus.wings.WingsService/CreateServer", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *wingsServiceClient) DeleteServer(ctx context.Context, in *DeleteServerRequest, opts ...grpc.CallOption) (*DeleteServerResponse, error) {
	out := new(DeleteServerResponse)
	err := c.cc.Invoke(ctx, "/nexus.wings.WingsService/DeleteServer", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *wingsServiceClient) ReinstallServer(ctx context.Context, in *ReinstallServerRequest, opts ...grpc.CallOption) (*ReinstallServerResponse, error) {
	out := new(ReinstallServerResponse)
	err := c.cc.Invoke(ctx, "/nexus.wings.WingsService/ReinstallServer", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *wingsServiceClient) SendPowerAction(ctx context.Context, in *PowerActionRequest, opts ...grpc.CallOption) (*PowerActionResponse, error) {
	out := new(PowerActionResponse)
	err := c.cc.Invoke(ctx, "/nexus.wings.WingsService/SendPowerAction", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *wingsServiceClient) SendCommand(ctx context.Context, in *CommandRequest, opts ...grpc.CallOption) (*CommandResponse, error) {
	out := new(CommandResponse)
	err := c.cc.Invoke(ctx, "/nexus.wings.WingsService/SendCommand", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *wingsServiceClient) SyncServerConfig(ctx context.Context, in *SyncConfigRequest, opts ...grpc.CallOption) (*SyncConfigResponse, error) {
	out := new(SyncConfigResponse)
	err := c.cc.Invoke(ctx, "/nexus.wings.WingsService/SyncServerConfig", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *wingsServiceClient) GetServerStatus(ctx context.Context, in *ServerStatusRequest, opts ...grpc.CallOption) (*ServerStatusResponse, error) {
	out := new(ServerStatusResponse)
	err := c.cc.Invoke(ctx, "/nexus.wings.WingsService/GetServerStatus", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *wingsServiceClient) GetSystemInfo(ctx context.Context, in *SystemInfoRequest, opts ...grpc.CallOption) (*SystemInfoResponse, error) {
	out := new(SystemInfoResponse)
	err := c.cc.Invoke(ctx, "/nexus.wings.WingsService/GetSystemInfo", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *wingsServiceClient) UpdateResources(ctx context.Context, in *UpdateResourcesRequest, opts ...grpc.CallOption) (*UpdateResourcesResponse, error) {
	out := new(UpdateResourcesResponse)
	err := c.cc.Invoke(ctx, "/nexus.wings.WingsService/UpdateResources", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *wingsServiceClient) EventStream(ctx context.Context, opts ...grpc.CallOption) (WingsService_EventStreamClient, error) {
	stream, err := c.cc.NewStream(ctx, &_WingsService_serviceDesc.Streams[0], "/nexus.wings.WingsService/EventStream", opts...)
	if err != nil {
		return nil, err
	}
	x := &wingsServiceEventStreamClient{stream}
	return x, nil
}

type WingsService_EventStreamClient interface {
	Send(*PanelCommand) error
	Recv() (*WingsEvent, error)
	grpc.ClientStream
}

type wingsServiceEventStreamClient struct {
	grpc.ClientStream
}

func (x *wingsServiceEventStreamClient) Send(m *PanelCommand) error {
	return x.ClientStream.SendMsg(m)
}

func (x *wingsServiceEventStreamClient) Recv() (*WingsEvent, error) {
	m := new(WingsEvent)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// WingsServiceServer is the server API for WingsService service.
type WingsServiceServer interface {
	CreateServer(context.Context, *CreateServerRequest) (*CreateServerResponse, error)
	DeleteServer(context.Context, *DeleteServerRequest) (*DeleteServerResponse, error)
	ReinstallServer(context.Context, *ReinstallServerRequest) (*ReinstallServerResponse, error)
	SendPowerAction(context.Context, *PowerActionRequest) (*PowerActionResponse, error)
	SendCommand(context.Context, *CommandRequest) (*CommandResponse, error)
	SyncServerConfig(context.Context, *SyncConfigRequest) (*SyncConfigResponse, error)
	GetServerStatus(context.Context, *ServerStatusRequest) (*ServerStatusResponse, error)
	GetSystemInfo(context.Context, *SystemInfoRequest) (*SystemInfoResponse, error)
	UpdateResources(context.Context, *UpdateResourcesRequest) (*UpdateResourcesResponse, error)
	EventStream(WingsService_EventStreamServer) error
}

// UnimplementedWingsServiceServer can be embedded to have forward compatible implementations.
type UnimplementedWingsServiceServer struct {
}

func (*UnimplementedWingsServiceServer) CreateServer(ctx context.Context, req *CreateServerRequest) (*CreateServerResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateServer not implemented")
}
func (*UnimplementedWingsServiceServer) DeleteServer(ctx context.Context, req *DeleteServerRequest) (*DeleteServerResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteServer not implemented")
}
func (*UnimplementedWingsServiceServer) ReinstallServer(ctx context.Context, req *ReinstallServerRequest) (*ReinstallServerResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReinstallServer not implemented")
}
func (*UnimplementedWingsServiceServer) SendPowerAction(ctx context.Context, req *PowerActionRequest) (*PowerActionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SendPowerAction not implemented")
}
func (*UnimplementedWingsServiceServer) SendCommand(ctx context.Context, req *CommandRequest) (*CommandResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SendCommand not implemented")
}
func (*UnimplementedWingsServiceServer) SyncServerConfig(ctx context.Context, req *SyncConfigRequest) (*SyncConfigResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SyncServerConfig not implemented")
}
func (*UnimplementedWingsServiceServer) GetServerStatus(ctx context.Context, req *ServerStatusRequest) (*ServerStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetServerStatus not implemented")
}
func (*UnimplementedWingsServiceServer) GetSystemInfo(ctx context.Context, req *SystemInfoRequest) (*SystemInfoResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSystemInfo not implemented")
}
func (*UnimplementedWingsServiceServer) UpdateResources(ctx context.Context, req *UpdateResourcesRequest) (*UpdateResourcesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateResources not implemented")
}
func (*UnimplementedWingsServiceServer) EventStream(srv WingsService_EventStreamServer) error {
	return status.Errorf(codes.Unimplemented, "method EventStream not implemented")
}

func RegisterWingsServiceServer(s *grpc.Server, srv WingsServiceServer) {
	s.RegisterService(&_WingsService_serviceDesc, srv)
}

func _WingsService_CreateServer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateServerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WingsServiceServer).CreateServer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/nexus.wings.WingsService/CreateServer",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WingsServiceServer).CreateServer(ctx, req.(*CreateServerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WingsService_DeleteServer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteServerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WingsServiceServer).DeleteServer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/nexus.wings.WingsService/DeleteServer",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WingsServiceServer).DeleteServer(ctx, req.(*DeleteServerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WingsService_ReinstallServer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReinstallServerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WingsServiceServer).ReinstallServer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/nexus.wings.WingsService/ReinstallServer",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WingsServiceServer).ReinstallServer(ctx, req.(*ReinstallServerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WingsService_SendPowerAction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PowerActionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WingsServiceServer).SendPowerAction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/nexus.wings.WingsService/SendPowerAction",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WingsServiceServer).SendPowerAction(ctx, req.(*PowerActionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WingsService_SendCommand_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CommandRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WingsServiceServer).SendCommand(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/nexus.wings.WingsService/SendCommand",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WingsServiceServer).SendCommand(ctx, req.(*CommandRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WingsService_SyncServerConfig_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SyncConfigRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WingsServiceServer).SyncServerConfig(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/nexus.wings.WingsService/SyncServerConfig",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WingsServiceServer).SyncServerConfig(ctx, req.(*SyncConfigRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WingsService_GetServerStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ServerStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WingsServiceServer).GetServerStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/nexus.wings.WingsService/GetServerStatus",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WingsServiceServer).GetServerStatus(ctx, req.(*ServerStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WingsService_GetSystemInfo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SystemInfoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WingsServiceServer).GetSystemInfo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/nexus.wings.WingsService/GetSystemInfo",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WingsServiceServer).GetSystemInfo(ctx, req.(*SystemInfoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WingsService_UpdateResources_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateResourcesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WingsServiceServer).UpdateResources(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/nexus.wings.WingsService/UpdateResources",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(WingsServiceServer).UpdateResources(ctx, req.(*UpdateResourcesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _WingsService_EventStream_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(WingsServiceServer).EventStream(&wingsServiceEventStreamServer{stream})
}

type WingsService_EventStreamServer interface {
	Send(*WingsEvent) error
	Recv() (*PanelCommand, error)
	grpc.ServerStream
}

type wingsServiceEventStreamServer struct {
	grpc.ServerStream
}

func (x *wingsServiceEventStreamServer) Send(m *WingsEvent) error {
	return x.ServerStream.SendMsg(m)
}

func (x *wingsServiceEventStreamServer) Recv() (*PanelCommand, error) {
	m := new(PanelCommand)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

var _WingsService_serviceDesc = grpc.ServiceDesc{
	ServiceName: "nexus.wings.WingsService",
	HandlerType: (*WingsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateServer",
			Handler:    _WingsService_CreateServer_Handler,
		},
		{
			MethodName: "DeleteServer",
			Handler:    _WingsService_DeleteServer_Handler,
		},
		{
			MethodName: "ReinstallServer",
			Handler:    _WingsService_ReinstallServer_Handler,
		},
		{
			MethodName: "SendPowerAction",
			Handler:    _WingsService_SendPowerAction_Handler,
		},
		{
			MethodName: "SendCommand",
			Handler:    _WingsService_SendCommand_Handler,
		},
		{
			MethodName: "SyncServerConfig",
			Handler:    _WingsService_SyncServerConfig_Handler,
		},
		{
			MethodName: "GetServerStatus",
			Handler:    _WingsService_GetServerStatus_Handler,
		},
		{
			MethodName: "GetSystemInfo",
			Handler:    _WingsService_GetSystemInfo_Handler,
		},
		{
			MethodName: "UpdateResources",
			Handler:    _WingsService_UpdateResources_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "EventStream",
			Handler:       _WingsService_EventStream_Handler,
			ServerStreams: true,
			ClientStreams: true,
		},
	},
	Metadata: "wings.proto",
}
