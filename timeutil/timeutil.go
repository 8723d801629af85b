// Package timeutil provides deterministic, locale-independent timestamp
// formatting shared across the Norman platform.
package timeutil

import (
	"fmt"
	"time"
)

// Built-in layouts. Both render microsecond precision with zero padding so
// output width is fixed.
const (
	// LayoutUTC is the default timestamp layout.
	// Example: 1970-01-01 00:00:00.000000
	LayoutUTC = "2006-01-02 15:04:05.000000"

	// LayoutISO8601 is the ISO-8601-compliant layout including an explicit
	// timezone offset.
	// Example: 1970-01-01T00:00:00.000000+0000
	LayoutISO8601 = "2006-01-02T15:04:05.000000-0700"
)

// Format converts t into a formatted timestamp string. An empty layout
// selects LayoutUTC.
//
// Example:
//
//	s := timeutil.Format(time.Unix(0, 0).UTC(), timeutil.LayoutISO8601)
//	// "1970-01-01T00:00:00.000000+0000"
func Format(t time.Time, layout string) string {
	if layout == "" {
		layout = LayoutUTC
	}
	return t.Format(layout)
}

// Parse converts a formatted timestamp string back into a time.Time.
// An empty layout selects LayoutUTC.
func Parse(s, layout string) (time.Time, error) {
	if layout == "" {
		layout = LayoutUTC
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("timeutil: parse %q: %w", s, err)
	}
	return t, nil
}
