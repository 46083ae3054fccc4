/*
Package types defines the core data structures used throughout Wings.

This package contains the fundamental types that represent the daemon's
domain model: server specifications, lifecycle states, power actions,
resource samples, lifecycle events, and the error taxonomy shared by the
HTTP and gRPC transports. These types are used by all other packages and
carry no dependencies on them.

# Architecture

The types package is the foundation of the Wings data model. It defines:

  - ServerSpec: the declarative description of a managed server
  - PortMapping: TCP port exposure for a server
  - ServerState: normalized lifecycle state (Offline/Starting/Running/...)
  - PowerAction: Panel-requested transitions (start/stop/restart/kill)
  - ResourceStats: point-in-time CPU/memory/network/disk sample
  - Event: lifecycle notifications destined for the Panel
  - Error/ErrorKind: the daemon-wide error taxonomy

All types are designed to be:
  - Serializable (JSON for sidecars and the HTTP API)
  - Tolerant of Panel wire conventions (camelCase aliases on decode)
  - Self-documenting (clear field names and units in comments)

# Wire Compatibility

The Panel sends camelCase field names (dockerImage, memoryLimit,
portMappings) while sidecar files on disk use canonical snake_case. The
custom UnmarshalJSON implementations accept both; MarshalJSON always emits
snake_case. Resource fields keep fixed units: memory and disk limits are
bytes, CPU limits are NanoCPUs (1e9 = one full core).

# Error Taxonomy

Every error surfaced to the Panel is an *Error carrying an ErrorKind. The
kind determines the HTTP status and gRPC code:

	Kind             HTTP  gRPC
	Runtime          500   Internal
	IO               500   Internal
	PathTraversal    403   InvalidArgument
	NotFound         404   NotFound
	PayloadTooLarge  413   OutOfRange
	Config           500   InvalidArgument
	Auth             401   Unauthenticated

Use the constructor helpers (NotFoundf, Configf, PathTraversal, ...) rather
than building Error values by hand, and AsError at transport boundaries to
classify errors that escaped from third-party code.

# Usage

Decoding a spec from a Panel request:

	var spec types.ServerSpec
	if err := json.Unmarshal(body, &spec); err != nil {
		return types.Configf("invalid server config: %v", err)
	}

Mapping a raw container state:

	state := types.StateFromContainer("running") // types.ServerStateRunning

# Integration Points

This package is imported by:
  - pkg/runtime: ServerSpec drives container creation
  - pkg/registry: specs are persisted and reloaded
  - pkg/manager: states, events, and power actions
  - pkg/api: error mapping on both transports
*/
package types
