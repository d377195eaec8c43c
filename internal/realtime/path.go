package realtime

import (
	"errors"
	"fmt"
	"strings"
)

const separator = "/"

var ErrInvalidKey = errors.New("invalid key")

// Join - builds a store path from segments, ignoring empty ones.
func Join(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		if s := normalize(segment); s != "" {
			parts = append(parts, s)
		}
	}

	return strings.Join(parts, separator)
}

// ValidKey - reports whether key can be used as a single path segment.
func ValidKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	}

	if strings.ContainsAny(key, "/.#$[]") {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	return nil
}

func normalize(path string) string {
	segments := strings.Split(path, separator)

	parts := segments[:0]
	for _, segment := range segments {
		if segment != "" {
			parts = append(parts, segment)
		}
	}

	return strings.Join(parts, separator)
}

// contains - reports whether child is parent itself or lies below it.
func contains(parent, child string) bool {
	if parent == "" {
		return true
	}

	return child == parent || strings.HasPrefix(child, parent+separator)
}

// related - two paths are related when a write to one changes the value of the other.
func related(a, b string) bool {
	return contains(a, b) || contains(b, a)
}

// ancestors - strict ancestors of path, root excluded.
func ancestors(path string) []string {
	var result []string

	for i := strings.LastIndex(path, separator); i > 0; i = strings.LastIndex(path[:i], separator) {
		result = append(result, path[:i])
	}

	return result
}

func lastSegment(path string) string {
	if i := strings.LastIndex(path, separator); i >= 0 {
		return path[i+1:]
	}

	return path
}
