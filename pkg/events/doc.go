/*
Package events implements the lifecycle event bus.

The bus is a single bounded channel (capacity 1000) carrying three kinds of
notification to the Panel: state changes from power actions, install
completions, and install failures. Producers use try-send semantics and
never block; on overflow the event is dropped with a warning. The sole
consumer is the gRPC EventStream handler, which drains the channel into its
outbound stream for as long as a Panel is connected.

# Delivery Semantics

Events are hints, not a journal:

  - No redelivery across stream disconnects. Events emitted while no Panel
    is connected sit in the buffer until it fills, then get dropped.
  - Per-UUID ordering holds for events emitted by a single task; events
    for different servers may interleave arbitrarily.
  - The Panel reconciles authoritative state via the 30s heartbeat and
    on-demand status polls.

# Usage

	bus := events.NewBus()
	bus.EmitStateChanged(uuid, types.ServerStateOffline, types.ServerStateRunning)

	for event := range bus.Events() {
		// forward to the Panel
	}
*/
package events
