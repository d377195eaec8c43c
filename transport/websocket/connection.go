package websocket

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// connection - one client socket. It is the Notifier of the sessions it owns.
type connection struct {
	logger *slog.Logger
	conn   *websocket.Conn
	config Config

	send      chan Message
	closed    chan struct{}
	closeOnce sync.Once

	duel DuelSession
	grid GridSession
}

func newConnection(logger *slog.Logger, conn *websocket.Conn, config Config) *connection {
	return &connection{
		logger: logger,
		conn:   conn,
		config: config,
		send:   make(chan Message, config.SendBuffer),
		closed: make(chan struct{}),
	}
}

// Notify - queues an event for the client; dropped once the socket is closed.
func (that *connection) Notify(event string, payload any) {
	that.sendMessage(event, payload)
}

func (that *connection) sendMessage(action string, payload any) {
	log := that.logger.With("method", "sendMessage")

	body, err := json.Marshal(payload)
	if err != nil {
		log.Error("failed to marshal payload", "action", action, "error", err)
		return
	}

	select {
	case that.send <- Message{Action: action, Payload: body}:
	case <-that.closed:
	}
}

func (that *connection) sendError(action string, err error) {
	that.sendMessage(actionError, ErrorPayload{Action: action, Error: userError(err).Error()})
}

func (that *connection) close() {
	that.closeOnce.Do(func() {
		close(that.closed)
	})
}

// readPump - reads client messages until the socket fails or ctx is done.
func (that *connection) readPump(ctx context.Context, dispatch func(ctx context.Context, msg *Message)) {
	log := that.logger.With("method", "readPump")

	that.conn.SetReadLimit(maxMessageSize)
	_ = that.conn.SetReadDeadline(time.Now().Add(that.config.ReadTimeout))
	that.conn.SetPongHandler(func(string) error {
		return that.conn.SetReadDeadline(time.Now().Add(that.config.ReadTimeout))
	})

	for ctx.Err() == nil {
		var msg Message
		if err := that.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("unexpected close", "error", err)
			}

			return
		}

		dispatch(ctx, &msg)
	}
}

// writePump - the only writer of the socket: queued messages and pings.
// Closing the socket on exit unblocks readPump.
func (that *connection) writePump() {
	log := that.logger.With("method", "writePump")

	ticker := time.NewTicker(that.config.PingInterval)
	defer func() {
		ticker.Stop()
		that.close()
		_ = that.conn.Close()
	}()

	for {
		select {
		case msg := <-that.send:
			_ = that.conn.SetWriteDeadline(time.Now().Add(that.config.WriteTimeout))
			if err := that.conn.WriteJSON(msg); err != nil {
				log.Debug("failed to write message", "error", err)
				return
			}

		case <-ticker.C:
			_ = that.conn.SetWriteDeadline(time.Now().Add(that.config.WriteTimeout))
			if err := that.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-that.closed:
			_ = that.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(that.config.WriteTimeout))
			return
		}
	}
}
