package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/duel-arcade/internal/realtime"
)

// watch - decodes every snapshot at path until ctx is done. Snapshots that
// fail to decode are logged and skipped.
func watch[T any](
	ctx context.Context,
	logger *slog.Logger,
	store realtime.Store,
	path string,
	decode func(realtime.Snapshot) (T, error),
) (<-chan T, error) {
	snapshots, err := store.Watch(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}

	values := make(chan T)

	go func() {
		defer close(values)

		for snapshot := range snapshots {
			value, err := decode(snapshot)
			if err != nil {
				logger.Error("failed to decode snapshot", "path", snapshot.Path, "error", err)
				continue
			}

			select {
			case values <- value:
			case <-ctx.Done():
				return
			}
		}
	}()

	return values, nil
}
