package validator

import (
	"strconv"
	"strings"
)

// Field paths are dot separated. At every level an exact key wins over a
// split, so a key containing dots can still be addressed. Numeric segments
// index into lists.

func lookupPath(data map[string]any, path string) (any, bool) {
	if data == nil {
		return nil, false
	}
	if v, ok := data[path]; ok {
		return v, true
	}
	for i := 0; i < len(path); i++ {
		if path[i] != '.' {
			continue
		}
		child, ok := data[path[:i]]
		if !ok {
			continue
		}
		if v, ok := lookupIn(child, path[i+1:]); ok {
			return v, true
		}
	}
	return nil, false
}

func lookupIn(node any, path string) (any, bool) {
	switch n := node.(type) {
	case map[string]any:
		return lookupPath(n, path)
	case []any:
		head, rest, nested := strings.Cut(path, ".")
		idx, err := strconv.Atoi(head)
		if err != nil || idx < 0 || idx >= len(n) {
			return nil, false
		}
		if !nested {
			return n[idx], true
		}
		return lookupIn(n[idx], rest)
	}
	return nil, false
}

// setPath stores value at path, creating intermediate maps where a segment is
// absent or nil. It reports false and leaves data untouched when an existing
// scalar or a list without the indexed element is in the way.
func setPath(data map[string]any, path string, value any) bool {
	if data == nil {
		return false
	}
	if _, ok := data[path]; ok || !strings.Contains(path, ".") {
		data[path] = value
		return true
	}

	for i := 0; i < len(path); i++ {
		if path[i] != '.' {
			continue
		}
		if child, ok := data[path[:i]]; ok && setIn(child, path[i+1:], value) {
			return true
		}
	}

	head, rest, _ := strings.Cut(path, ".")
	if existing, ok := data[head]; ok && existing != nil {
		return false
	}
	child := map[string]any{}
	if !setPath(child, rest, value) {
		return false
	}
	data[head] = child
	return true
}

func setIn(node any, path string, value any) bool {
	switch n := node.(type) {
	case map[string]any:
		return setPath(n, path, value)
	case []any:
		head, rest, nested := strings.Cut(path, ".")
		idx, err := strconv.Atoi(head)
		if err != nil || idx < 0 || idx >= len(n) {
			return false
		}
		if !nested {
			n[idx] = value
			return true
		}
		if n[idx] == nil {
			child := map[string]any{}
			if !setPath(child, rest, value) {
				return false
			}
			n[idx] = child
			return true
		}
		return setIn(n[idx], rest, value)
	}
	return false
}

// deletePath removes the key at path. List elements are set to nil rather
// than removed so sibling indexes stay stable.
func deletePath(data map[string]any, path string) {
	if data == nil {
		return
	}
	if _, ok := data[path]; ok {
		delete(data, path)
		return
	}
	for i := 0; i < len(path); i++ {
		if path[i] != '.' {
			continue
		}
		if child, ok := data[path[:i]]; ok && deleteIn(child, path[i+1:]) {
			return
		}
	}
}

func deleteIn(node any, path string) bool {
	switch n := node.(type) {
	case map[string]any:
		if _, ok := lookupPath(n, path); !ok {
			return false
		}
		deletePath(n, path)
		return true
	case []any:
		head, rest, nested := strings.Cut(path, ".")
		idx, err := strconv.Atoi(head)
		if err != nil || idx < 0 || idx >= len(n) {
			return false
		}
		if !nested {
			n[idx] = nil
			return true
		}
		return deleteIn(n[idx], rest)
	}
	return false
}
