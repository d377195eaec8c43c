package realtime

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// mutation replaces the whole subtree at path with leaves.
// An empty leaves map deletes the subtree.
type mutation struct {
	path   string
	leaves map[string][]byte
}

// flatten - turns an arbitrary JSON-encodable value into leaf paths.
// Objects become children, arrays become index-keyed children, nulls and empty
// containers produce nothing.
func flatten(path string, value any) (map[string][]byte, error) {
	leaves := make(map[string][]byte)
	if value == nil {
		return leaves, nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal value: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var tree any
	if err = decoder.Decode(&tree); err != nil {
		return nil, fmt.Errorf("failed to decode value: %w", err)
	}

	if err = walk(path, tree, leaves); err != nil {
		return nil, err
	}

	return leaves, nil
}

func walk(path string, node any, leaves map[string][]byte) error {
	switch typed := node.(type) {
	case nil:
		return nil
	case map[string]any:
		for key, child := range typed {
			if err := ValidKey(key); err != nil {
				return err
			}

			if err := walk(path+separator+key, child, leaves); err != nil {
				return err
			}
		}
	case []any:
		for i, child := range typed {
			if err := walk(path+separator+strconv.Itoa(i), child, leaves); err != nil {
				return err
			}
		}
	default:
		raw, err := json.Marshal(typed)
		if err != nil {
			return fmt.Errorf("failed to marshal leaf %s: %w", path, err)
		}

		leaves[path] = raw
	}

	return nil
}

// assemble - rebuilds the JSON value stored at root from its leaves.
// Returns nil when nothing is stored.
func assemble(root string, leaves map[string][]byte) (json.RawMessage, error) {
	if len(leaves) == 0 {
		return nil, nil
	}

	if leaf, ok := leaves[root]; ok {
		return leaf, nil
	}

	tree := make(map[string]any)

	for path, leaf := range leaves {
		relative := path
		if root != "" {
			relative = strings.TrimPrefix(path, root+separator)
		}

		segments := strings.Split(relative, separator)
		node := tree

		for _, segment := range segments[:len(segments)-1] {
			child, ok := node[segment].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[segment] = child
			}

			node = child
		}

		node[segments[len(segments)-1]] = json.RawMessage(leaf)
	}

	raw, err := json.Marshal(arrayify(tree))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tree at %q: %w", root, err)
	}

	return raw, nil
}

// arrayify - converts objects whose keys are exactly 0..n-1 back into arrays.
func arrayify(node any) any {
	object, ok := node.(map[string]any)
	if !ok {
		return node
	}

	for key, child := range object {
		object[key] = arrayify(child)
	}

	keys := make([]int, 0, len(object))
	for key := range object {
		index, err := strconv.Atoi(key)
		if err != nil || index < 0 || strconv.Itoa(index) != key {
			return object
		}

		keys = append(keys, index)
	}

	sort.Ints(keys)
	for i, index := range keys {
		if i != index {
			return object
		}
	}

	array := make([]any, len(keys))
	for _, index := range keys {
		array[index] = object[strconv.Itoa(index)]
	}

	return array
}

// plan - converts a set of writes relative to base into mutations.
func plan(base string, writes map[string]any) ([]mutation, error) {
	base = normalize(base)

	paths := make([]string, 0, len(writes))
	for path := range writes {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	mutations := make([]mutation, 0, len(writes))
	for _, relative := range paths {
		path := Join(base, relative)
		if path == "" {
			return nil, fmt.Errorf("%w: cannot write the root", ErrInvalidKey)
		}

		leaves, err := flatten(path, writes[relative])
		if err != nil {
			return nil, fmt.Errorf("failed to flatten %s: %w", path, err)
		}

		mutations = append(mutations, mutation{path: path, leaves: leaves})
	}

	return mutations, nil
}
