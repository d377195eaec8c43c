package realtime

import (
	"context"
	"sync"
)

// MemoryStore - process local Store, used by tests and single-node setups.
type MemoryStore struct {
	mu       sync.Mutex
	leaves   map[string][]byte
	watchers map[*memoryWatcher]struct{}
}

type memoryWatcher struct {
	path string
	box  *mailbox
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		leaves:   make(map[string][]byte),
		watchers: make(map[*memoryWatcher]struct{}),
	}
}

func (that *MemoryStore) Get(_ context.Context, path string) (Snapshot, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.snapshot(normalize(path))
}

func (that *MemoryStore) Set(ctx context.Context, path string, value any) error {
	mutations, err := plan(path, map[string]any{"": value})
	if err != nil {
		return err
	}

	return that.apply(ctx, mutations)
}

func (that *MemoryStore) SetIfAbsent(_ context.Context, path string, value any) (bool, error) {
	mutations, err := plan(path, map[string]any{"": value})
	if err != nil {
		return false, err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	existing, err := that.snapshot(normalize(path))
	if err != nil {
		return false, err
	}

	if existing.Exists() {
		return false, nil
	}

	if err = that.applyLocked(mutations); err != nil {
		return false, err
	}

	return true, nil
}

func (that *MemoryStore) Update(ctx context.Context, path string, fields map[string]any) error {
	mutations, err := plan(path, fields)
	if err != nil {
		return err
	}

	return that.apply(ctx, mutations)
}

func (that *MemoryStore) Push(ctx context.Context, path string, value any) (string, error) {
	key := NewPushKey()

	if err := that.Set(ctx, Join(path, key), value); err != nil {
		return "", err
	}

	return key, nil
}

func (that *MemoryStore) Watch(ctx context.Context, path string) (<-chan Snapshot, error) {
	watcher := &memoryWatcher{path: normalize(path), box: newMailbox()}

	that.mu.Lock()
	snapshot, err := that.snapshot(watcher.path)
	if err != nil {
		that.mu.Unlock()
		return nil, err
	}

	watcher.box.offer(snapshot)
	that.watchers[watcher] = struct{}{}
	that.mu.Unlock()

	go func() {
		<-ctx.Done()

		that.mu.Lock()
		delete(that.watchers, watcher)
		close(watcher.box.ch)
		that.mu.Unlock()
	}()

	return watcher.box.ch, nil
}

// apply - writes and notifies under one lock so watchers observe writes in order.
func (that *MemoryStore) apply(_ context.Context, mutations []mutation) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.applyLocked(mutations)
}

func (that *MemoryStore) applyLocked(mutations []mutation) error {
	for _, m := range mutations {
		for path := range that.leaves {
			if contains(m.path, path) {
				delete(that.leaves, path)
			}
		}

		for _, ancestor := range ancestors(m.path) {
			delete(that.leaves, ancestor)
		}

		for path, leaf := range m.leaves {
			that.leaves[path] = leaf
		}
	}

	for watcher := range that.watchers {
		for _, m := range mutations {
			if !related(watcher.path, m.path) {
				continue
			}

			snapshot, err := that.snapshot(watcher.path)
			if err != nil {
				return err
			}

			watcher.box.offer(snapshot)

			break
		}
	}

	return nil
}

func (that *MemoryStore) snapshot(path string) (Snapshot, error) {
	leaves := make(map[string][]byte)
	for leafPath, leaf := range that.leaves {
		if contains(path, leafPath) {
			leaves[leafPath] = leaf
		}
	}

	value, err := assemble(path, leaves)
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{Path: path, Value: value}, nil
}
