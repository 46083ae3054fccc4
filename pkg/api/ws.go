package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/nexus-panel/wings/pkg/console"
	"github.com/nexus-panel/wings/pkg/metrics"
	"github.com/nexus-panel/wings/pkg/types"
)

// statsInterval paces resource frames pushed to a console session.
const statsInterval = 2 * time.Second

// upgrader accepts any origin: the daemon is reached through the Panel,
// which fronts browser sessions itself.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// wsMessage is the envelope for every frame pushed to a session.
type wsMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// wsCommand is the only inbound frame: a line for the server's stdin.
type wsCommand struct {
	Command string `json:"command"`
}

// handleWebsocket serves the live console for one server: scrollback
// replay on connect, then console output and resource stats pushed as
// they arrive, with inbound frames forwarded to the container's stdin.
//
// Authentication uses a "token" query parameter because browsers cannot
// set headers on websocket dials; it accepts the same credential forms
// as the Authorization header.
func (s *HTTPServer) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	uuid := mux.Vars(r)["uuid"]

	if !validCredential(r.URL.Query().Get("token"), s.cfg.Panel) {
		writeError(w, types.AuthFailed())
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already answered the request.
		s.logger.Warn().Err(err).Str("uuid", uuid).Msg("Websocket upgrade failed")
		return
	}
	defer conn.Close()

	metrics.WebsocketSessions.Inc()
	defer metrics.WebsocketSessions.Dec()
	s.logger.Info().Str("uuid", uuid).Msg("Websocket session opened")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Replay scrollback before any concurrent writer exists; the
	// forwarder owns the write half from then on.
	buffer := s.console.Get(uuid)
	for _, line := range buffer.Lines() {
		if err := conn.WriteJSON(wsMessage{Type: "console", Data: line}); err != nil {
			return
		}
	}

	outbound := make(chan wsMessage, 64)
	send := func(msg wsMessage) bool {
		select {
		case outbound <- msg:
			return true
		case <-ctx.Done():
			return false
		}
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case msg := <-outbound:
				if err := conn.WriteJSON(msg); err != nil {
					cancel()
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	go s.streamStats(ctx, uuid, send)
	go s.followLogs(ctx, uuid, buffer, send)

	// Read loop: runtime errors are swallowed so a stopped server does
	// not kill the session.
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			break
		}
		var cmd wsCommand
		if err := json.Unmarshal(payload, &cmd); err != nil || cmd.Command == "" {
			continue
		}
		if err := s.manager.SendCommand(ctx, uuid, cmd.Command); err != nil {
			s.logger.Debug().Err(err).Str("uuid", uuid).Msg("Console command rejected")
		}
	}

	cancel()
	<-done
	s.logger.Info().Str("uuid", uuid).Msg("Websocket session closed")
}

// streamStats forwards resource samples to the session. The container
// emits roughly one sample a second; only one per statsInterval is sent
// so the source stream stays drained.
func (s *HTTPServer) streamStats(ctx context.Context, uuid string, send func(wsMessage) bool) {
	stream, err := s.runtime.StreamStats(ctx, uuid)
	if err != nil {
		s.logger.Debug().Err(err).Str("uuid", uuid).Msg("Stats stream unavailable")
		return
	}
	defer stream.Close()

	var last time.Time
	for {
		stats, err := stream.Next()
		if err != nil {
			return
		}
		if time.Since(last) < statsInterval {
			continue
		}
		last = time.Now()
		if !send(wsMessage{Type: "stats", Data: stats}) {
			return
		}
	}
}

// followLogs copies new console output into the scrollback buffer and to
// the session. The stream ends when the container stops or the session
// closes.
func (s *HTTPServer) followLogs(ctx context.Context, uuid string, buffer *console.Buffer, send func(wsMessage) bool) {
	stream, err := s.runtime.FollowLogs(ctx, uuid)
	if err != nil {
		s.logger.Debug().Err(err).Str("uuid", uuid).Msg("Log stream unavailable")
		return
	}
	defer stream.Close()

	for {
		line, ok := stream.Next()
		if !ok {
			return
		}
		buffer.Push(line)
		if !send(wsMessage{Type: "console", Data: line}) {
			return
		}
	}
}
