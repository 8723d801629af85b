// Package utils is the root of the Norman utility library for Go.
//
// The library collects the small, dependency-light building blocks shared by
// Norman services: object-graph normalization for JSON encoding, timestamp
// formatting, dot-path access into nested structures, secure random
// generation, file type sniffing, HTTP body buffering, stream processing,
// map merging, and database-friendly UUID handling.
//
// # Packages
//
//   - normalize: converts arbitrary, possibly cyclic object graphs into
//     JSON-safe trees while preserving reference sharing
//   - jsonutil: normalize-then-encode helpers for encoding/json
//   - timeutil: deterministic UTC and ISO-8601 timestamp formatting
//   - pathutil: dot + bracket navigation into nested maps and sequences
//   - maputil: iterative deep merging of string-keyed maps
//   - securerand: ChaCha20-backed byte stream and unbiased integer generator
//   - fileutil: binary signature sniffing and buffer size detection
//   - httputil: request body buffering and replay helpers
//   - streamutil: chunked reader processing and stream chaining
//   - uuidutil: index-optimized sequential UUIDs and conversions
//
// # Errors
//
// This root package defines the structured Error type shared by the
// subpackages, categorized by Kind and carrying the failing operation:
//
//	v, err := pathutil.Get(doc, "items[3].name")
//	if errors.Is(err, utils.ErrNotFound) {
//	    // missing key or attribute
//	}
//
// Packages that cannot fail (normalize, maputil) return no errors at all;
// see their package documentation for the degradation rules.
package utils
