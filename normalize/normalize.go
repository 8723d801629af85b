package normalize

import (
	"github.com/norman-ai/utils/timeutil"
)

// entry is one registry slot: the shallow-normalized node plus the identity
// of every child slot, recorded during discovery and resolved during the
// rewrite pass.
type entry struct {
	node    any
	mapKids map[string]ident
	seqKids []ident

	// leaf stops traversal even when node happens to be a container, e.g.
	// an enum whose underlying value is a map. Leaves are emitted as-is.
	leaf bool
}

// workItem pairs a raw value with its identity while it waits on the
// traversal stack.
type workItem struct {
	value any
	id    ident
}

// Normalize converts an arbitrary, possibly cyclic, possibly shared value
// graph into an equivalent JSON-safe tree of map[string]any, []any, and
// scalars, ready for any standard encoder.
//
// Two occurrences of one reference in the input yield one normalized node
// referenced from both positions in the output; cycles therefore terminate
// and reproduce as ordinary self-references rather than infinite
// expansions. The input graph is never mutated.
//
// Normalize never fails. Values no shape rule recognizes pass through
// unchanged; if such a leaf is not actually encodable, the downstream
// encoder reports it.
//
// All bookkeeping is local to the call, so concurrent calls on independent
// inputs need no coordination. Callers must keep the input graph stable for
// the duration of the call.
func Normalize(root any) any {
	t := newTracker()
	registry := make(map[ident]*entry)
	visited := make(map[ident]bool)

	rootID := t.identify(root)

	// Discovery: shallow-normalize every distinct identity reachable from
	// the root into the registry, recording each child slot's identity.
	// Each identity contributes exactly one unit of work, which bounds the
	// walk on cyclic graphs.
	stack := []workItem{{root, rootID}}
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[item.id] {
			continue
		}
		visited[item.id] = true

		e := shallow(item.value)
		registry[item.id] = e
		if e.leaf {
			continue
		}

		switch node := e.node.(type) {
		case map[string]any:
			e.mapKids = make(map[string]ident, len(node))
			for key, child := range node {
				id := t.identify(child)
				e.mapKids[key] = id
				stack = append(stack, workItem{child, id})
			}
		case []any:
			e.seqKids = make([]ident, len(node))
			for i, child := range node {
				id := t.identify(child)
				e.seqKids[i] = id
				stack = append(stack, workItem{child, id})
			}
		}
	}

	// Rewrite: replace every still-raw child slot with the registry entry
	// recorded for it. Discovery fully populated the registry, so every
	// lookup succeeds; a node whose child is itself ends up pointing at its
	// own normalized form.
	clear(visited)
	ids := []ident{rootID}
	for len(ids) > 0 {
		id := ids[len(ids)-1]
		ids = ids[:len(ids)-1]
		if visited[id] {
			continue
		}
		visited[id] = true

		e := registry[id]
		if e.leaf {
			continue
		}

		switch node := e.node.(type) {
		case map[string]any:
			for key, kid := range e.mapKids {
				node[key] = registry[kid].node
				ids = append(ids, kid)
			}
		case []any:
			for i, kid := range e.seqKids {
				node[i] = registry[kid].node
				ids = append(ids, kid)
			}
		}
	}

	return registry[rootID].node
}

// shallow normalizes a single value into its JSON-safe representation.
// Children of mappings and sequences remain raw; the rewrite pass replaces
// them.
func shallow(v any) *entry {
	s := classify(v)
	switch s.kind {
	case shapeRedacted:
		return &entry{node: Redacted, leaf: true}
	case shapeEnum:
		return &entry{node: s.scalar, leaf: true}
	case shapeMapping, shapeRecord:
		return &entry{node: s.mapping}
	case shapeSequence:
		return &entry{node: s.seq}
	case shapeTimestamp:
		return &entry{node: timeutil.Format(s.ts, timeutil.LayoutISO8601), leaf: true}
	default:
		return &entry{node: s.scalar, leaf: true}
	}
}
