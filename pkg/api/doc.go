// Package api is the Panel-facing surface of the daemon: a REST API and
// a gRPC service carrying the same operations, plus the live console
// websocket. Both transports are thin adapters over the manager; neither
// holds state of its own.
//
// Architecture:
//
//	 Panel ──HTTP──▶ ┌─────────────┐
//	                 │ HTTPServer  │──▶ handlers ──┐
//	 Panel ──WS────▶ │ gorilla/mux │               │
//	                 └─────────────┘               ├──▶ manager
//	                 ┌─────────────┐               │
//	 Panel ──gRPC──▶ │ GRPCServer  │──▶ methods ───┘
//	                 │ interceptors│
//	                 └─────────────┘──◀── event bus (EventStream)
//
// Core Components:
//
//   - HTTPServer: gorilla/mux router on the configured API port. Server
//     operations and file operations live under /api behind bearer
//     auth; /api/health and /metrics are anonymous; the websocket
//     endpoint authenticates a query token itself because browsers
//     cannot set headers on a websocket dial.
//
//   - GRPCServer: the generated WingsService bound to the manager, one
//     port above the HTTP listener. Auth is enforced by unary and
//     stream interceptors over the same credential the REST side
//     accepts. EventStream drains the daemon's event bus to the Panel
//     and sends a keepalive frame every 30 seconds.
//
//   - Websocket console: scrollback replay on connect, then live
//     console lines and a resource sample every 2 seconds; inbound
//     frames are forwarded to the server's stdin.
//
//   - Error mapping: handlers return domain errors from pkg/types;
//     writeError and rpcError translate them to the documented HTTP
//     status and gRPC code pairs so both transports agree.
//
// Usage:
//
//	httpSrv := api.NewHTTPServer(cfg, mgr, rt, consoles, version)
//	grpcSrv := api.NewGRPCServer(cfg, mgr, rt, bus, version)
//
//	go func() { _ = httpSrv.Start() }()
//	go func() { _ = grpcSrv.Start() }()
//
//	grpcSrv.Stop()
//	_ = httpSrv.Shutdown(ctx)
//
// Integration Points:
//
//   - pkg/manager: every server mutation and status read goes through
//     it; the transports never touch the runtime for lifecycle work.
//   - pkg/files: path validation and the file operations behind the
//     /files routes.
//   - pkg/events: the bus consumed by EventStream.
//   - pkg/console: scrollback buffers replayed to new websocket
//     sessions.
//   - api/proto: the generated wire types and service stubs.
package api
