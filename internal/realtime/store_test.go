package realtime

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waitTimeout = 5 * time.Second

func TestMemoryStore(t *testing.T) {
	testStore(t, context.Background(), func(t *testing.T) Store {
		t.Helper()
		return NewMemoryStore()
	})
}

// testStore - behaviour every Store implementation shares.
func testStore(t *testing.T, ctx context.Context, newStore func(t *testing.T) Store) {
	t.Helper()

	t.Run("Set replaces the subtree", func(t *testing.T) {
		store := newStore(t)

		// Given: a grid room with a suit sub-map
		require.NoError(t, store.Set(ctx, "games/r1", map[string]any{
			"turn": "X",
			"suit": map[string]string{"Ani": "batu"},
		}))

		// When: the room is set again without suit
		require.NoError(t, store.Set(ctx, "games/r1", map[string]any{"turn": "O"}))

		// Then: the old children are gone
		snapshot, err := store.Get(ctx, "games/r1")
		require.NoError(t, err)
		assert.JSONEq(t, `{"turn":"O"}`, string(snapshot.Value))
	})

	t.Run("Update keeps siblings", func(t *testing.T) {
		store := newStore(t)

		require.NoError(t, store.Set(ctx, "tetris/rooms/r1/players/p1", map[string]any{
			"name": "Ani", "score": 0, "status": "waiting", "joinedAt": 1,
		}))

		// When: only score and status are updated
		require.NoError(t, store.Update(ctx, "tetris/rooms/r1/players/p1", map[string]any{
			"score": 40, "status": "playing",
		}))

		// Then: name and joinedAt survive
		snapshot, err := store.Get(ctx, "tetris/rooms/r1/players/p1")
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Ani","score":40,"status":"playing","joinedAt":1}`, string(snapshot.Value))
	})

	t.Run("Writing below a leaf replaces the leaf", func(t *testing.T) {
		store := newStore(t)

		require.NoError(t, store.Set(ctx, "games/r1", "legacy"))
		require.NoError(t, store.Set(ctx, "games/r1/turn", "X"))

		snapshot, err := store.Get(ctx, "games/r1")
		require.NoError(t, err)
		assert.JSONEq(t, `{"turn":"X"}`, string(snapshot.Value))
	})

	t.Run("Set nil deletes and Get reports missing", func(t *testing.T) {
		store := newStore(t)

		require.NoError(t, store.Set(ctx, "games/r1/suit/Ani", "batu"))
		require.NoError(t, store.Set(ctx, "games/r1/suit", nil))

		snapshot, err := store.Get(ctx, "games/r1/suit")
		require.NoError(t, err)
		assert.False(t, snapshot.Exists())
		assert.Equal(t, "suit", snapshot.Key())
	})

	t.Run("SetIfAbsent writes once", func(t *testing.T) {
		store := newStore(t)

		// When: two summaries race for the same room
		written, err := store.SetIfAbsent(ctx, "tetris/scores/rooms/r1", map[string]any{"winner": "Ani wins!"})
		require.NoError(t, err)
		require.True(t, written)

		written, err = store.SetIfAbsent(ctx, "tetris/scores/rooms/r1", map[string]any{"winner": "Draw"})
		require.NoError(t, err)

		// Then: only the first one is stored
		assert.False(t, written)

		snapshot, err := store.Get(ctx, "tetris/scores/rooms/r1")
		require.NoError(t, err)
		assert.JSONEq(t, `{"winner":"Ani wins!"}`, string(snapshot.Value))
	})

	t.Run("Push keys sort in insertion order", func(t *testing.T) {
		store := newStore(t)

		first, err := store.Push(ctx, "tetris/rooms/r1/players", map[string]any{"name": "Ani"})
		require.NoError(t, err)
		second, err := store.Push(ctx, "tetris/rooms/r1/players", map[string]any{"name": "Budi"})
		require.NoError(t, err)

		assert.Less(t, first, second)

		var players map[string]struct {
			Name string `json:"name"`
		}
		snapshot, err := store.Get(ctx, "tetris/rooms/r1/players")
		require.NoError(t, err)
		require.NoError(t, snapshot.Decode(&players))
		assert.Equal(t, "Ani", players[first].Name)
		assert.Equal(t, "Budi", players[second].Name)
	})

	t.Run("Watch delivers the current value and related writes", func(t *testing.T) {
		store := newStore(t)

		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		require.NoError(t, store.Set(ctx, "games/r1/turn", "X"))

		// Given: a watcher on the whole room
		snapshots, err := store.Watch(watchCtx, "games/r1")
		require.NoError(t, err)

		// Then: the current value arrives first
		assert.JSONEq(t, `{"turn":"X"}`, string(receive(t, snapshots).Value))

		// When: an unrelated room and then a child path are written
		require.NoError(t, store.Set(ctx, "games/r10/turn", "O"))
		require.NoError(t, store.Set(ctx, "games/r1/board", []string{"X"}))

		// Then: the watcher sees the whole room, not a delta
		assert.JSONEq(t, `{"turn":"X","board":["X"]}`, string(receive(t, snapshots).Value))

		// When: the watch context is cancelled
		cancel()

		// Then: the channel is closed
		assert.Eventually(t, func() bool {
			select {
			case _, ok := <-snapshots:
				return !ok
			default:
				return false
			}
		}, waitTimeout, 10*time.Millisecond)
	})
}

func receive(t *testing.T, snapshots <-chan Snapshot) Snapshot {
	t.Helper()

	select {
	case snapshot, ok := <-snapshots:
		require.True(t, ok, "watch channel closed")
		return snapshot
	case <-time.After(waitTimeout):
		t.Fatal("timed out waiting for snapshot")
		return Snapshot{}
	}
}
