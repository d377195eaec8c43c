package websocket

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/duel-arcade/internal/tictactoe"
	"github.com/rocketscienceinc/duel-arcade/internal/usecase"
)

const maxMessageSize = 4096

// DuelSession - the falling-piece game of one connection.
type DuelSession interface {
	CreateRoom(ctx context.Context, name string) (usecase.RoomView, error)
	JoinRoom(ctx context.Context, roomID, name string) (usecase.RoomView, error)
	Start(ctx context.Context) error
	StartSolo(name string) error
	Key(key string) error
	Forfeit(ctx context.Context) error
	View() usecase.RoomView
	Close()
}

// GridSession - the grid game of one connection.
type GridSession interface {
	Join(ctx context.Context, roomID, name string) error
	Suit(ctx context.Context, choice string) error
	Move(ctx context.Context, cell int) error
	Reset(ctx context.Context) error
	State() tictactoe.State
	Close()
}

// Sessions - builds the game sessions of one connection.
type Sessions struct {
	NewDuel func(ctx context.Context, notifier usecase.Notifier) DuelSession
	NewGrid func(ctx context.Context, notifier usecase.Notifier) GridSession
}

type Config struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PingInterval time.Duration
	SendBuffer   int
}

type Server struct {
	ctx      context.Context
	logger   *slog.Logger
	config   Config
	sessions Sessions
	upgrader websocket.Upgrader

	handlers map[string]func(ctx context.Context, conn *connection, msg *Message) error
}

// New - sessions of every connection stop when ctx is done.
func New(ctx context.Context, logger *slog.Logger, config Config, sessions Sessions) *Server {
	server := &Server{
		ctx:      ctx,
		logger:   logger.With("component", "websocket"),
		config:   config,
		sessions: sessions,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},

		handlers: make(map[string]func(context.Context, *connection, *Message) error),
	}

	server.handlers[actionRoomCreate] = server.handleRoomCreate
	server.handlers[actionRoomJoin] = server.handleRoomJoin
	server.handlers[actionDuelStart] = server.handleDuelStart
	server.handlers[actionDuelKey] = server.handleDuelKey
	server.handlers[actionDuelForfeit] = server.handleDuelForfeit
	server.handlers[actionSoloStart] = server.handleSoloStart
	server.handlers[actionGridJoin] = server.handleGridJoin
	server.handlers[actionGridSuit] = server.handleGridSuit
	server.handlers[actionGridMove] = server.handleGridMove
	server.handlers[actionGridReset] = server.handleGridReset

	return server
}

// ServeHTTP - upgrades the request and serves the socket until it closes.
func (that *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	ws, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Warn("failed to upgrade connection", "error", err)
		return
	}

	ctx, cancel := context.WithCancel(that.ctx)
	defer cancel()

	conn := newConnection(that.logger, ws, that.config)
	conn.duel = that.sessions.NewDuel(ctx, conn)
	conn.grid = that.sessions.NewGrid(ctx, conn)

	done := make(chan struct{})
	go func() {
		defer close(done)
		conn.writePump()
	}()

	log.Debug("WebSocket connection established", "remote", req.RemoteAddr)

	conn.readPump(ctx, that.dispatch(conn))

	conn.duel.Close()
	conn.grid.Close()
	conn.close()
	<-done

	log.Debug("WebSocket connection closed", "remote", req.RemoteAddr)
}

func (that *Server) dispatch(conn *connection) func(ctx context.Context, msg *Message) {
	log := that.logger.With("method", "dispatch")

	return func(ctx context.Context, msg *Message) {
		handler, ok := that.handlers[msg.Action]
		if !ok {
			log.Debug("unknown action", "action", msg.Action)
			conn.sendError(msg.Action, errUnknownAction)
			return
		}

		err := handler(ctx, conn, msg)
		switch {
		case err == nil:
		case isIllegalMove(err):
			log.Debug("move rejected", "action", msg.Action, "error", err)
		default:
			if userError(err) == errInternal {
				log.Error("error processing message", "action", msg.Action, "error", err)
			}
			conn.sendError(msg.Action, err)
		}
	}
}
