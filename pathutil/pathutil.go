// Package pathutil resolves and mutates nested structures using dot and
// bracket notation, such as "a.b[2].c".
//
// Get reads through maps, slices, arrays, and struct fields. Set writes
// into maps and slices, creating intermediate containers as needed: a
// following bracket accessor creates a sequence, anything else creates a
// mapping, and sequences grow with nil filler up to the written index.
package pathutil

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/norman-ai/utils"
)

// accessorPattern splits "a.b[2].c" into ["a", "b", "[2]", "c"].
var accessorPattern = regexp.MustCompile(`[^.\[\]]+|\[\d+\]`)

// Get retrieves a nested value. Map entries, struct fields (exported), and
// sequence elements are all addressable. An empty path returns parent
// unchanged.
//
// Example:
//
//	v, err := pathutil.Get(doc, "families[0].members[2].name")
func Get(parent any, path string) (any, error) {
	current := parent
	for _, accessor := range accessorPattern.FindAllString(path, -1) {
		child, err := getChild(current, accessor)
		if err != nil {
			return nil, err
		}
		current = child
	}
	return current, nil
}

// Set assigns a nested value, creating intermediate containers along the
// path. The parent must be a map[string]any or a []any; Set returns the
// parent, regrown if writing extended a top-level sequence.
//
// Example:
//
//	doc, err := pathutil.Set(doc, "families[1].name", "ringtail")
func Set(parent any, path string, value any) (any, error) {
	switch parent.(type) {
	case map[string]any, []any:
	default:
		return nil, utils.NewUnsupportedError("pathutil.Set", utils.ErrUnsupportedValue).
			WithContext(map[string]any{"parent_type": fmt.Sprintf("%T", parent)})
	}

	accessors := accessorPattern.FindAllString(path, -1)
	if len(accessors) == 0 {
		return nil, utils.NewValidationError("pathutil.Set", utils.ErrMalformedPath).
			WithContext(map[string]any{"path": path})
	}

	return setRecursive(parent, accessors, value)
}

func getChild(parent any, accessor string) (any, error) {
	rv := reflect.ValueOf(parent)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		index, err := parseIndex("pathutil.Get", accessor)
		if err != nil {
			return nil, err
		}
		if index >= rv.Len() {
			return nil, utils.NewNotFoundError("pathutil.Get", utils.ErrOutOfRange).
				WithContext(map[string]any{"index": index, "length": rv.Len()})
		}
		return rv.Index(index).Interface(), nil

	case reflect.Struct:
		field := rv.FieldByName(accessor)
		if field.IsValid() && field.CanInterface() {
			return field.Interface(), nil
		}
		return nil, utils.NewNotFoundError("pathutil.Get", utils.ErrNotFound).
			WithContext(map[string]any{"accessor": accessor})

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		entry := rv.MapIndex(reflect.ValueOf(accessor))
		if entry.IsValid() {
			return entry.Interface(), nil
		}
		return nil, utils.NewNotFoundError("pathutil.Get", utils.ErrNotFound).
			WithContext(map[string]any{"accessor": accessor})
	}

	return nil, utils.NewUnsupportedError("pathutil.Get", utils.ErrUnsupportedValue).
		WithContext(map[string]any{"accessor": accessor, "parent_type": fmt.Sprintf("%T", parent)})
}

func setRecursive(current any, accessors []string, value any) (any, error) {
	accessor := accessors[0]
	last := len(accessors) == 1

	switch node := current.(type) {
	case []any:
		index, err := parseIndex("pathutil.Set", accessor)
		if err != nil {
			return nil, err
		}
		node = growSequence(node, index+1)
		if last {
			node[index] = value
			return node, nil
		}
		child := node[index]
		if child == nil {
			child = fillerFor(accessors[1])
		}
		child, err = setRecursive(child, accessors[1:], value)
		if err != nil {
			return nil, err
		}
		node[index] = child
		return node, nil

	case map[string]any:
		if last {
			node[accessor] = value
			return node, nil
		}
		child, ok := node[accessor]
		if !ok || child == nil {
			child = fillerFor(accessors[1])
		}
		child, err := setRecursive(child, accessors[1:], value)
		if err != nil {
			return nil, err
		}
		node[accessor] = child
		return node, nil

	default:
		return nil, utils.NewUnsupportedError("pathutil.Set", utils.ErrUnsupportedValue).
			WithContext(map[string]any{"accessor": accessor, "parent_type": fmt.Sprintf("%T", current)})
	}
}

// fillerFor infers the intermediate container a path segment needs from the
// accessor that follows it.
func fillerFor(next string) any {
	if strings.HasPrefix(next, "[") && strings.HasSuffix(next, "]") {
		return []any{}
	}
	return map[string]any{}
}

// growSequence pads s with nil elements until it holds at least n slots.
func growSequence(s []any, n int) []any {
	for len(s) < n {
		s = append(s, nil)
	}
	return s
}

func parseIndex(op, accessor string) (int, error) {
	if len(accessor) < 3 || accessor[0] != '[' || accessor[len(accessor)-1] != ']' {
		return 0, utils.NewValidationError(op, utils.ErrMalformedPath).
			WithContext(map[string]any{"accessor": accessor})
	}
	index, err := strconv.Atoi(accessor[1 : len(accessor)-1])
	if err != nil {
		return 0, utils.NewValidationError(op, utils.ErrMalformedPath).
			WithContext(map[string]any{"accessor": accessor})
	}
	return index, nil
}
