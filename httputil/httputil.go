// Package httputil provides thin body-buffering helpers for HTTP handlers
// and middleware that need to inspect a request body without consuming it.
package httputil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// ReadBody drains the request body and installs a replayable copy in its
// place, so downstream handlers can read it again. It returns the buffered
// bytes. A nil body yields an empty slice.
//
// Example middleware:
//
//	body, err := httputil.ReadBody(r)
//	if err != nil {
//	    http.Error(w, "bad request", http.StatusBadRequest)
//	    return
//	}
//	audit(httputil.ParseJSONBody(body))
//	next.ServeHTTP(w, r) // handlers still see the full body
func ReadBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return []byte{}, nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("httputil: read body: %w", err)
	}
	if err := r.Body.Close(); err != nil {
		return nil, fmt.Errorf("httputil: close body: %w", err)
	}

	r.Body = ReplayBody(body)
	return body, nil
}

// ReplayBody wraps previously buffered bytes as a fresh request body.
func ReplayBody(body []byte) io.ReadCloser {
	return io.NopCloser(bytes.NewReader(body))
}

// FlattenHeaders converts an http.Header into a flat name-to-value map,
// keeping the first value of each header.
func FlattenHeaders(h http.Header) map[string]string {
	headers := make(map[string]string, len(h))
	for name, values := range h {
		if len(values) > 0 {
			headers[name] = values[0]
		}
	}
	return headers
}

// ParseJSONBody decodes buffered body bytes as a JSON object. It is
// fail-safe: empty or malformed bodies yield an empty map rather than an
// error, so logging and auditing paths never break request handling.
func ParseJSONBody(body []byte) map[string]any {
	if len(body) == 0 {
		return map[string]any{}
	}

	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return map[string]any{}
	}
	if parsed == nil {
		return map[string]any{}
	}
	return parsed
}
