package events

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/nexus-panel/wings/pkg/log"
	"github.com/nexus-panel/wings/pkg/metrics"
	"github.com/nexus-panel/wings/pkg/types"
)

// Capacity bounds the number of undelivered events held by the bus
const Capacity = 1000

// Bus carries lifecycle events from the manager to the Panel. Producers
// never block: when the buffer is full the event is dropped and a warning
// logged. The Panel is expected to reconcile missed events through the
// heartbeat and status polls, so the bus is a hint channel, not a journal.
type Bus struct {
	ch     chan *types.Event
	logger zerolog.Logger
}

// NewBus creates an event bus with the default capacity.
func NewBus() *Bus {
	return &Bus{
		ch:     make(chan *types.Event, Capacity),
		logger: log.WithComponent("events"),
	}
}

// Emit publishes an event without blocking. A zero timestamp is filled in
// with the current time.
func (b *Bus) Emit(event *types.Event) {
	if event.TimestampMs == 0 {
		event.TimestampMs = time.Now().UnixMilli()
	}

	select {
	case b.ch <- event:
		metrics.EventsEmittedTotal.Inc()
	default:
		metrics.EventsDroppedTotal.Inc()
		b.logger.Warn().
			Str("type", string(event.Type)).
			Str("uuid", event.UUID).
			Msg("Event buffer full, dropping event")
	}
}

// EmitStateChanged publishes a state transition for a server.
func (b *Bus) EmitStateChanged(uuid string, previous, current types.ServerState) {
	b.Emit(&types.Event{
		Type:          types.EventStateChanged,
		UUID:          uuid,
		PreviousState: previous,
		NewState:      current,
	})
}

// EmitInstallComplete publishes a successful install run.
func (b *Bus) EmitInstallComplete(uuid string) {
	b.Emit(&types.Event{
		Type: types.EventInstallComplete,
		UUID: uuid,
	})
}

// EmitInstallFailed publishes a failed install run with its error message.
func (b *Bus) EmitInstallFailed(uuid, message string) {
	b.Emit(&types.Event{
		Type:         types.EventInstallFailed,
		UUID:         uuid,
		ErrorMessage: message,
	})
}

// Events returns the receive side of the bus. There is a single logical
// consumer: the gRPC event stream drains this channel into its outbound
// stream. Events taken off the channel are gone; there is no redelivery
// across stream reconnects.
func (b *Bus) Events() <-chan *types.Event {
	return b.ch
}

// Pending reports the number of undelivered events.
func (b *Bus) Pending() int {
	return len(b.ch)
}
