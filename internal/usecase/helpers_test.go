package usecase

import (
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	waitTimeout = 5 * time.Second
	waitTick    = 5 * time.Millisecond
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

type recordedEvent struct {
	name    string
	payload any
}

// recorder - Notifier that keeps every event.
type recorder struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (that *recorder) Notify(event string, payload any) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.events = append(that.events, recordedEvent{name: event, payload: payload})
}

func (that *recorder) count(event string) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	count := 0
	for _, recorded := range that.events {
		if recorded.name == event {
			count++
		}
	}

	return count
}

func (that *recorder) last(event string) any {
	that.mu.Lock()
	defer that.mu.Unlock()

	for i := len(that.events) - 1; i >= 0; i-- {
		if that.events[i].name == event {
			return that.events[i].payload
		}
	}

	return nil
}

func waitFor(t *testing.T, condition func() bool, msg string) {
	t.Helper()

	require.Eventually(t, condition, waitTimeout, waitTick, msg)
}
