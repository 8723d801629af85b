// Package maputil provides merging helpers for string-keyed maps.
package maputil

// mergePair holds one dst/src node pair awaiting a merge visit.
type mergePair struct {
	dst map[string]any
	src map[string]any
}

// DeepMerge merges src into dst and returns dst. Keys absent from dst are
// copied from src; when both sides hold string-keyed maps the merge
// descends; on any other conflict the dst value wins. A nil src is a no-op.
//
// The walk is iterative, so deeply nested inputs cannot exhaust the stack.
// dst is mutated in place; src is read-only.
//
// Example:
//
//	base := map[string]any{"server": map[string]any{"port": 8080}}
//	defaults := map[string]any{"server": map[string]any{"port": 80, "host": "::"}}
//	merged := maputil.DeepMerge(base, defaults)
//	// server.port stays 8080, server.host becomes "::"
func DeepMerge(dst, src map[string]any) map[string]any {
	queue := []mergePair{{dst, src}}

	for len(queue) > 0 {
		pair := queue[0]
		queue = queue[1:]

		if pair.src == nil {
			continue
		}

		for key, srcValue := range pair.src {
			dstValue, exists := pair.dst[key]
			if !exists {
				pair.dst[key] = srcValue
				continue
			}
			dstChild, dstIsMap := dstValue.(map[string]any)
			srcChild, srcIsMap := srcValue.(map[string]any)
			if dstIsMap && srcIsMap {
				queue = append(queue, mergePair{dstChild, srcChild})
			}
		}
	}

	return dst
}
