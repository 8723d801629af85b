package normalize

import "reflect"

// ident is a per-call identity token. Tokens are meaningful only for the
// lifetime of the tracker that issued them and are never reused across
// calls.
type ident int

// refKey keys pointer-like values by their referent. Slices additionally
// carry their length so two distinct views over one backing array stay
// distinct.
type refKey struct {
	kind reflect.Kind
	ptr  uintptr
	len  int
}

// tracker assigns identity tokens based on reference identity, not
// structural equality: the same live reference always yields the same
// token, and two distinct references never share one.
//
// Go value kinds (numbers, strings, bools, structs, arrays) have no
// reference identity. Comparable values intern structurally, which is
// unobservable in the output tree, and non-comparable values receive a
// fresh token on every encounter. Cycles and sharing can only travel
// through pointer-like kinds, which are keyed by address.
type tracker struct {
	next   ident
	refs   map[refKey]ident
	values map[any]ident
}

func newTracker() *tracker {
	return &tracker{
		refs:   make(map[refKey]ident),
		values: make(map[any]ident),
	}
}

// identify returns the identity token for v, allocating one on first
// encounter.
func (t *tracker) identify(v any) ident {
	if v == nil {
		return t.internValue(nil)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return t.internRef(refKey{kind: rv.Kind(), ptr: rv.Pointer()})
	case reflect.Slice:
		return t.internRef(refKey{kind: reflect.Slice, ptr: rv.Pointer(), len: rv.Len()})
	default:
		if rv.Comparable() {
			return t.internValue(v)
		}
		return t.fresh()
	}
}

func (t *tracker) internRef(key refKey) ident {
	if id, ok := t.refs[key]; ok {
		return id
	}
	id := t.fresh()
	t.refs[key] = id
	return id
}

func (t *tracker) internValue(v any) ident {
	if id, ok := t.values[v]; ok {
		return id
	}
	id := t.fresh()
	t.values[v] = id
	return id
}

func (t *tracker) fresh() ident {
	id := t.next
	t.next++
	return id
}
