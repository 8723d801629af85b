package normalize

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// shapeKind tags the classification of one value.
type shapeKind int

const (
	// shapeOpaque is the fallback: the value is assumed to already be a
	// JSON-safe scalar and passes through unchanged.
	shapeOpaque shapeKind = iota
	shapeRedacted
	shapeEnum
	shapeMapping
	shapeSequence
	shapeRecord
	shapeTimestamp
)

// shape is the tagged result of classification. Only the field matching
// kind is populated; mapping and sequence children are still raw values.
type shape struct {
	kind    shapeKind
	mapping map[string]any
	seq     []any
	scalar  any
	ts      time.Time
}

// classifier probes one capability or kind. Rules run in strict priority
// order and the first match wins.
type classifier func(v any, elem reflect.Value) (shape, bool)

// Capability interfaces are probed before the reflective kind rules: a Go
// struct always has fields, so the record catch-all would otherwise shadow
// every capability a struct type implements. time.Time precedes the record
// rule for the same reason.
var classifiers = []classifier{
	classifyRedacted,
	classifyEnum,
	classifyMapping,
	classifySequence,
	classifyModelDump,
	classifyToMap,
	classifyTimestamp,
	classifyItems,
	classifyRecord,
}

var timeType = reflect.TypeOf(time.Time{})

// classify matches v against the shape rules. It never fails: values no
// rule recognizes degrade to shapeOpaque.
func classify(v any) shape {
	if v == nil {
		return shape{kind: shapeOpaque}
	}

	// Kind rules see through pointers so a *Record classifies like the
	// record itself; capability rules receive the original value so
	// pointer-receiver methods still satisfy their interfaces.
	elem := reflect.ValueOf(v)
	for elem.Kind() == reflect.Pointer && !elem.IsNil() {
		elem = elem.Elem()
	}

	for _, rule := range classifiers {
		if s, ok := rule(v, elem); ok {
			return s
		}
	}
	return shape{kind: shapeOpaque, scalar: v}
}

func classifyRedacted(v any, _ reflect.Value) (shape, bool) {
	if _, ok := v.(Sensitive); ok {
		return shape{kind: shapeRedacted}, true
	}
	return shape{}, false
}

func classifyEnum(v any, _ reflect.Value) (shape, bool) {
	if e, ok := v.(Enum); ok {
		return shape{kind: shapeEnum, scalar: e.EnumValue()}, true
	}
	return shape{}, false
}

func classifyMapping(v any, elem reflect.Value) (shape, bool) {
	if m, ok := v.(map[string]any); ok {
		out := make(map[string]any, len(m))
		for k, val := range m {
			if strings.HasPrefix(k, "_") {
				continue
			}
			out[k] = val
		}
		return shape{kind: shapeMapping, mapping: out}, true
	}

	if elem.Kind() != reflect.Map {
		return shape{}, false
	}
	out := make(map[string]any, elem.Len())
	iter := elem.MapRange()
	for iter.Next() {
		key := mapKey(iter.Key())
		if strings.HasPrefix(key, "_") {
			continue
		}
		out[key] = iter.Value().Interface()
	}
	return shape{kind: shapeMapping, mapping: out}, true
}

func classifySequence(_ any, elem reflect.Value) (shape, bool) {
	if elem.Kind() != reflect.Slice && elem.Kind() != reflect.Array {
		return shape{}, false
	}
	out := make([]any, elem.Len())
	for i := range out {
		out[i] = elem.Index(i).Interface()
	}
	return shape{kind: shapeSequence, seq: out}, true
}

func classifyModelDump(v any, _ reflect.Value) (shape, bool) {
	if d, ok := v.(ModelDumper); ok {
		return shape{kind: shapeRecord, mapping: d.ModelDump()}, true
	}
	return shape{}, false
}

func classifyToMap(v any, _ reflect.Value) (shape, bool) {
	if m, ok := v.(Mapper); ok {
		return shape{kind: shapeRecord, mapping: m.ToMap()}, true
	}
	return shape{}, false
}

func classifyTimestamp(_ any, elem reflect.Value) (shape, bool) {
	if elem.Kind() != reflect.Struct || elem.Type() != timeType {
		return shape{}, false
	}
	return shape{kind: shapeTimestamp, ts: elem.Interface().(time.Time)}, true
}

func classifyItems(v any, _ reflect.Value) (shape, bool) {
	l, ok := v.(ItemLister)
	if !ok {
		return shape{}, false
	}
	items := l.Items()
	out := make(map[string]any, len(items))
	for _, item := range items {
		if strings.HasPrefix(item.Key, "_") {
			continue
		}
		out[item.Key] = item.Value
	}
	return shape{kind: shapeRecord, mapping: out}, true
}

// classifyRecord builds a mapping from a struct's exported fields.
// Unexported fields are the private-naming convention in Go and are
// excluded, as are fields tagged json:"-" and names from tags that begin
// with an underscore.
func classifyRecord(_ any, elem reflect.Value) (shape, bool) {
	if elem.Kind() != reflect.Struct {
		return shape{}, false
	}
	t := elem.Type()
	out := make(map[string]any, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("json"); ok {
			base, _, _ := strings.Cut(tag, ",")
			if base == "-" {
				continue
			}
			if base != "" {
				name = base
			}
		}
		if strings.HasPrefix(name, "_") {
			continue
		}
		out[name] = elem.Field(i).Interface()
	}
	return shape{kind: shapeRecord, mapping: out}, true
}

func mapKey(key reflect.Value) string {
	if key.Kind() == reflect.String {
		return key.String()
	}
	return fmt.Sprint(key.Interface())
}
