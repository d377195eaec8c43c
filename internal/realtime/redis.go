package realtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

const maxTxAttempts = 8

var (
	ErrTooManyConflicts = errors.New("too many concurrent writes")

	errPathExists = errors.New("path exists")
)

// indexReader is satisfied by both *redis.Client and *redis.Tx.
type indexReader interface {
	ZRangeByLex(ctx context.Context, key string, opt *redis.ZRangeBy) *redis.StringSliceCmd
	ZScore(ctx context.Context, key, member string) *redis.FloatCmd
}

// RedisStore - Store backed by redis.
//
// Leaf values live in one hash keyed by path. A sorted set with equal scores
// indexes the same paths so a subtree is a single lexicographic range. Every
// write publishes the written paths on a channel; watchers re-read their own
// path when a related path changes.
type RedisStore struct {
	logger *slog.Logger
	client *redis.Client

	valuesKey string
	indexKey  string
	channel   string
}

func NewRedisStore(logger *slog.Logger, client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{
		logger: logger.With("component", "realtime"),
		client: client,

		valuesKey: prefix + ":values",
		indexKey:  prefix + ":index",
		channel:   prefix + ":changes",
	}
}

func (that *RedisStore) Get(ctx context.Context, path string) (Snapshot, error) {
	path = normalize(path)

	paths, err := that.subtree(ctx, that.client, path)
	if err != nil {
		return Snapshot{}, err
	}

	if len(paths) == 0 {
		return Snapshot{Path: path}, nil
	}

	values, err := that.client.HMGet(ctx, that.valuesKey, paths...).Result()
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read values at %q: %w", path, err)
	}

	leaves := make(map[string][]byte, len(paths))
	for i, value := range values {
		if raw, ok := value.(string); ok {
			leaves[paths[i]] = []byte(raw)
		}
	}

	value, err := assemble(path, leaves)
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{Path: path, Value: value}, nil
}

func (that *RedisStore) Set(ctx context.Context, path string, value any) error {
	mutations, err := plan(path, map[string]any{"": value})
	if err != nil {
		return err
	}

	return that.apply(ctx, mutations, nil)
}

func (that *RedisStore) SetIfAbsent(ctx context.Context, path string, value any) (bool, error) {
	mutations, err := plan(path, map[string]any{"": value})
	if err != nil {
		return false, err
	}

	target := normalize(path)

	err = that.apply(ctx, mutations, func(tx *redis.Tx) error {
		paths, err := that.subtree(ctx, tx, target)
		if err != nil {
			return err
		}

		if len(paths) > 0 {
			return errPathExists
		}

		return nil
	})
	if errors.Is(err, errPathExists) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return true, nil
}

func (that *RedisStore) Update(ctx context.Context, path string, fields map[string]any) error {
	mutations, err := plan(path, fields)
	if err != nil {
		return err
	}

	return that.apply(ctx, mutations, nil)
}

func (that *RedisStore) Push(ctx context.Context, path string, value any) (string, error) {
	key := NewPushKey()

	if err := that.Set(ctx, Join(path, key), value); err != nil {
		return "", err
	}

	return key, nil
}

func (that *RedisStore) Watch(ctx context.Context, path string) (<-chan Snapshot, error) {
	log := that.logger.With("method", "Watch", "path", path)
	path = normalize(path)

	pubsub := that.client.Subscribe(ctx, that.channel)

	// wait for the subscription before the first read so no write is missed
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", that.channel, err)
	}

	initial, err := that.Get(ctx, path)
	if err != nil {
		_ = pubsub.Close()
		return nil, err
	}

	box := newMailbox()
	box.offer(initial)

	go func() {
		defer close(box.ch)
		defer func() {
			if err := pubsub.Close(); err != nil {
				log.Error("failed to close subscription", "error", err)
			}
		}()

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case message, ok := <-messages:
				if !ok {
					return
				}

				if !related(path, message.Payload) {
					continue
				}

				snapshot, err := that.Get(ctx, path)
				if err != nil {
					if ctx.Err() == nil {
						log.Error("failed to read snapshot", "error", err)
					}
					continue
				}

				box.offer(snapshot)
			}
		}
	}()

	return box.ch, nil
}

// apply - replaces every mutated subtree in one optimistic transaction.
// A non-nil guard runs first inside the transaction and aborts it on error.
func (that *RedisStore) apply(ctx context.Context, mutations []mutation, guard func(tx *redis.Tx) error) error {
	txf := func(tx *redis.Tx) error {
		if guard != nil {
			if err := guard(tx); err != nil {
				return err
			}
		}

		stale := make([]string, 0)

		for _, m := range mutations {
			paths, err := that.subtree(ctx, tx, m.path)
			if err != nil {
				return err
			}

			stale = append(stale, paths...)
			stale = append(stale, ancestors(m.path)...)
		}

		_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if len(stale) > 0 {
				members := make([]any, len(stale))
				for i, path := range stale {
					members[i] = path
				}

				pipe.HDel(ctx, that.valuesKey, stale...)
				pipe.ZRem(ctx, that.indexKey, members...)
			}

			for _, m := range mutations {
				if len(m.leaves) == 0 {
					continue
				}

				values := make(map[string]any, len(m.leaves))
				index := make([]redis.Z, 0, len(m.leaves))

				for path, leaf := range m.leaves {
					values[path] = string(leaf)
					index = append(index, redis.Z{Score: 0, Member: path})
				}

				pipe.HSet(ctx, that.valuesKey, values)
				pipe.ZAdd(ctx, that.indexKey, index...)
			}

			for _, m := range mutations {
				pipe.Publish(ctx, that.channel, m.path)
			}

			return nil
		})

		return err
	}

	for range maxTxAttempts {
		err := that.client.Watch(ctx, txf, that.indexKey)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}

		if err != nil {
			return fmt.Errorf("failed to write: %w", err)
		}

		return nil
	}

	return ErrTooManyConflicts
}

// subtree - indexed paths equal to path or below it.
func (that *RedisStore) subtree(ctx context.Context, client indexReader, path string) ([]string, error) {
	byLex := &redis.ZRangeBy{Min: "-", Max: "+"}
	if path != "" {
		byLex = &redis.ZRangeBy{Min: "[" + path + separator, Max: "(" + path + separator + "\xff"}
	}

	paths, err := client.ZRangeByLex(ctx, that.indexKey, byLex).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read index at %q: %w", path, err)
	}

	if path == "" {
		return paths, nil
	}

	err = client.ZScore(ctx, that.indexKey, path).Err()
	if errors.Is(err, redis.Nil) {
		return paths, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read index at %q: %w", path, err)
	}

	return append(paths, path), nil
}
