package realtime

import (
	"strconv"
	"testing"

	"github.com/rocketscienceinc/duel-arcade/testing/suite"
)

func TestRedisStore(t *testing.T) {
	ctx, st := suite.New(t)

	prefix := 0
	testStore(t, ctx, func(t *testing.T) Store {
		t.Helper()

		// every subtest gets its own key space inside the shared container
		prefix++
		return NewRedisStore(st.Logger, st.Storage, "rt"+strconv.Itoa(prefix))
	})
}
