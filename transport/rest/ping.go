package rest

import (
	"context"
	"net/http"
	"time"
)

const pingTimeout = 2 * time.Second

// Pinger - a backend the server cannot work without.
type Pinger interface {
	Ping(ctx context.Context) error
}

type pingHandler struct {
	backends []Pinger
}

// NewPingHandler - answers pong while every backend responds.
func NewPingHandler(backends ...Pinger) http.Handler {
	return &pingHandler{backends: backends}
}

func (that *pingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	for _, backend := range that.backends {
		if err := backend.Ping(ctx); err != nil {
			http.Error(w, "backend unavailable", http.StatusServiceUnavailable)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}
