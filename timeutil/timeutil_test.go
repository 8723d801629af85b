package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_ISO8601(t *testing.T) {
	epoch := time.Unix(0, 0).UTC()
	assert.Equal(t, "1970-01-01T00:00:00.000000+0000", Format(epoch, LayoutISO8601))

	offset := time.FixedZone("IST", 2*60*60)
	stamp := time.Date(2024, 6, 15, 13, 30, 45, 123456000, offset)
	assert.Equal(t, "2024-06-15T13:30:45.123456+0200", Format(stamp, LayoutISO8601))
}

func TestFormat_DefaultLayout(t *testing.T) {
	epoch := time.Unix(0, 0).UTC()
	assert.Equal(t, "1970-01-01 00:00:00.000000", Format(epoch, ""))
	assert.Equal(t, Format(epoch, LayoutUTC), Format(epoch, ""))
}

func TestFormat_MicrosecondPadding(t *testing.T) {
	stamp := time.Date(2024, 1, 1, 0, 0, 0, 1000, time.UTC)
	assert.Equal(t, "2024-01-01 00:00:00.000001", Format(stamp, LayoutUTC))
}

func TestParse_RoundTrip(t *testing.T) {
	original := time.Date(2024, 6, 15, 13, 30, 45, 123456000, time.UTC)

	for _, layout := range []string{LayoutUTC, LayoutISO8601, ""} {
		parsed, err := Parse(Format(original, layout), layout)
		require.NoError(t, err)
		assert.True(t, parsed.Equal(original), "layout %q", layout)
	}
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse("not a timestamp", LayoutISO8601)
	assert.Error(t, err)
}
