package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 5 * time.Second

// Routes - what the router serves. Archive may be nil, the archive routes
// are not mounted then.
type Routes struct {
	Scores    ScoreReader
	Archive   ArchiveReader
	Grid      GridReader
	Websocket http.Handler
	Backends  []Pinger
}

func NewRouter(routes Routes) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)

	h := newHandlers(routes.Scores, routes.Archive, routes.Grid)

	router.Method(http.MethodGet, "/ping", NewPingHandler(routes.Backends...))

	router.Route("/scores", func(r chi.Router) {
		r.Get("/rooms/{roomID}", h.GetMatch)
		r.Get("/players/{name}", h.GetSolo)
	})

	router.Get("/grid/rooms/{roomID}", h.GetGridRoom)

	if routes.Archive != nil {
		router.Get("/archive/matches", h.ListMatches)
	}

	router.Handle("/ws", routes.Websocket)

	return router
}

// Start - serves handler until ctx is done.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)

	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}

		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server stopped: %w", err)
		}

		return nil
	}
}
