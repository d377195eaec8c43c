// Package realtime implements a hierarchical key-path store with whole-value
// subscriptions. Values are JSON documents addressed by slash separated paths.
// Writing a path replaces its subtree; watchers of any related path receive the
// complete current value at their own path, never a delta.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

type Store interface {
	// Get - reads the whole value at path.
	Get(ctx context.Context, path string) (Snapshot, error)
	// Set - replaces the value at path. A nil value deletes it.
	Set(ctx context.Context, path string, value any) error
	// SetIfAbsent - sets the value at path only when nothing is stored there.
	// Reports whether the value was written.
	SetIfAbsent(ctx context.Context, path string, value any) (bool, error)
	// Update - sets each field relative to path, leaving siblings untouched.
	Update(ctx context.Context, path string, fields map[string]any) error
	// Push - stores value under a new time ordered child key of path.
	Push(ctx context.Context, path string, value any) (string, error)
	// Watch - delivers the value at path now and after every related write,
	// until ctx is done. Slow readers only see the latest value.
	Watch(ctx context.Context, path string) (<-chan Snapshot, error)
}

type Snapshot struct {
	Path  string
	Value json.RawMessage
}

func (that Snapshot) Key() string {
	return lastSegment(that.Path)
}

func (that Snapshot) Exists() bool {
	return len(that.Value) > 0
}

// Decode - unmarshals the value into v. A missing value leaves v untouched.
func (that Snapshot) Decode(v any) error {
	if !that.Exists() {
		return nil
	}

	if err := json.Unmarshal(that.Value, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", that.Path, err)
	}

	return nil
}

// NewPushKey - generates a child key; keys sort in creation order.
func NewPushKey() string {
	return uuid.Must(uuid.NewV7()).String()
}

// mailbox keeps only the most recent undelivered snapshot.
type mailbox struct {
	ch chan Snapshot
}

func newMailbox() *mailbox {
	return &mailbox{ch: make(chan Snapshot, 1)}
}

// offer must not be called concurrently for the same mailbox.
func (that *mailbox) offer(snapshot Snapshot) {
	for {
		select {
		case that.ch <- snapshot:
			return
		default:
		}

		select {
		case <-that.ch:
		default:
		}
	}
}
