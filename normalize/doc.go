// Package normalize converts arbitrary in-memory value graphs into
// JSON-safe trees of maps, ordered sequences, and scalars.
//
// The input may be cyclic and may reach the same object through multiple
// paths. Normalization terminates on any finite graph and preserves
// reference sharing: two paths reaching one underlying object produce one
// normalized node referenced from both positions, never two copies.
//
// # Shape Rules
//
// Each value is matched against an ordered rule list; the first match wins:
//
//  1. Implements Sensitive: replaced by the Redacted placeholder
//  2. Implements Enum: replaced by its underlying scalar
//  3. String-keyed mapping: shallow copy, keys starting with "_" dropped
//  4. Slice or array: shallow ordered copy
//  5. Implements ModelDumper: its mapping, as returned
//  6. Implements Mapper: its mapping, as returned
//  7. time.Time: ISO-8601 string with explicit offset
//  8. Implements ItemLister: mapping from its pairs, "_" keys dropped
//  9. Struct: mapping of exported fields (json tags honored)
// 10. Anything else: passed through unchanged
//
// Unrecognized shapes are not an error; encoding failures, if any, surface
// at the downstream encoder.
//
// # Identity
//
// Sharing and cycles are resolved by reference identity, never by
// structural equality. Pointer-like values (pointers, maps, slices,
// channels, functions) are keyed by address for the duration of one call.
// Go value kinds carry no reference identity and cannot form cycles, so
// equal scalars may share a normalized node; this is unobservable in the
// output.
//
// # Usage
//
//	tree := normalize.Normalize(anything)
//	data, err := json.Marshal(tree)
//
// The output is encoder-agnostic: encoding/json, yaml.v3, or any encoder
// that understands map[string]any, []any, and scalars will accept it.
// Cyclic inputs produce cyclic outputs, so encode trees from cyclic graphs
// only with encoders prepared for that.
//
// # Concurrency
//
// A call is synchronous and owns all of its bookkeeping; concurrent calls
// on independent inputs are safe without locking. The input graph is
// treated as read-only but must not be mutated elsewhere during the call.
package normalize
