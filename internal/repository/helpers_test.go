package repository

import (
	"strconv"
	"testing"
	"time"

	"github.com/rocketscienceinc/duel-arcade/internal/realtime"
	"github.com/rocketscienceinc/duel-arcade/testing/suite"
)

const waitTimeout = 5 * time.Second

var storePrefix int

// newRedisStore - a realtime store with its own key space in the suite container.
func newRedisStore(st *suite.Suite) realtime.Store {
	storePrefix++
	return realtime.NewRedisStore(st.Logger, st.Storage, "repo"+strconv.Itoa(storePrefix))
}

func receive[T any](t *testing.T, values <-chan T) T {
	t.Helper()

	select {
	case value, ok := <-values:
		if !ok {
			t.Fatal("watch channel closed")
		}
		return value
	case <-time.After(waitTimeout):
		t.Fatal("timed out waiting for value")
	}

	var zero T
	return zero
}
