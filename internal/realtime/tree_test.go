package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten(t *testing.T) {
	t.Run("Objects and arrays become leaf paths", func(t *testing.T) {
		// Given: a grid room document
		value := map[string]any{
			"board": []string{"X", "", "O"},
			"turn":  "X",
			"scores": map[string]int{
				"X": 1,
			},
		}

		// When: flattening it under games/r1
		leaves, err := flatten("games/r1", value)

		// Then: every scalar has its own path
		require.NoError(t, err)
		assert.Equal(t, map[string][]byte{
			"games/r1/board/0":  []byte(`"X"`),
			"games/r1/board/1":  []byte(`""`),
			"games/r1/board/2":  []byte(`"O"`),
			"games/r1/turn":     []byte(`"X"`),
			"games/r1/scores/X": []byte(`1`),
		}, leaves)
	})

	t.Run("Empty containers and nil store nothing", func(t *testing.T) {
		// Given: an empty suit map
		leaves, err := flatten("games/r1/suit", map[string]string{})

		// Then: no leaves are produced
		require.NoError(t, err)
		assert.Empty(t, leaves)

		leaves, err = flatten("games/r1/suit", nil)
		require.NoError(t, err)
		assert.Empty(t, leaves)
	})

	t.Run("Rejects keys containing a separator", func(t *testing.T) {
		// When: a map key contains a slash
		_, err := flatten("games/r1/suit", map[string]string{"a/b": "batu"})

		// Then: ErrInvalidKey is returned
		assert.ErrorIs(t, err, ErrInvalidKey)
	})
}

func TestAssemble(t *testing.T) {
	t.Run("Rebuilds nested objects and arrays", func(t *testing.T) {
		// Given: flattened grid room leaves
		leaves := map[string][]byte{
			"games/r1/board/0":  []byte(`"X"`),
			"games/r1/board/1":  []byte(`""`),
			"games/r1/board/2":  []byte(`"O"`),
			"games/r1/turn":     []byte(`"O"`),
			"games/r1/scores/X": []byte(`2`),
		}

		// When: assembling the room
		value, err := assemble("games/r1", leaves)

		// Then: the original document comes back
		require.NoError(t, err)
		assert.JSONEq(t, `{"board":["X","","O"],"turn":"O","scores":{"X":2}}`, string(value))
	})

	t.Run("Returns the leaf itself when root is a leaf", func(t *testing.T) {
		value, err := assemble("games/r1/turn", map[string][]byte{"games/r1/turn": []byte(`"X"`)})

		require.NoError(t, err)
		assert.JSONEq(t, `"X"`, string(value))
	})

	t.Run("Keeps objects with sparse numeric keys", func(t *testing.T) {
		value, err := assemble("a", map[string][]byte{"a/0": []byte(`1`), "a/2": []byte(`3`)})

		require.NoError(t, err)
		assert.JSONEq(t, `{"0":1,"2":3}`, string(value))
	})

	t.Run("Returns nil for nothing", func(t *testing.T) {
		value, err := assemble("a", nil)

		require.NoError(t, err)
		assert.Nil(t, value)
	})
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "tetris/rooms/r1/players", Join("tetris/rooms", "/r1/", "", "players"))
	assert.Equal(t, []string{"a/b", "a"}, ancestors("a/b/c"))
	assert.Empty(t, ancestors("a"))

	assert.True(t, related("games/r1", "games/r1/board/3"))
	assert.True(t, related("games/r1/board", "games/r1"))
	assert.True(t, related("", "games"))
	assert.False(t, related("games/r1", "games/r10"))

	require.NoError(t, ValidKey("Budi"))
	assert.ErrorIs(t, ValidKey(""), ErrInvalidKey)
	assert.ErrorIs(t, ValidKey("a.b"), ErrInvalidKey)
}
