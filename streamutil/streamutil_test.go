package streamutil

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, chunks <-chan Chunk) ([]byte, error) {
	t.Helper()
	var out []byte
	for chunk := range chunks {
		if chunk.Err != nil {
			return out, chunk.Err
		}
		out = append(out, chunk.Data...)
	}
	return out, nil
}

func TestChain(t *testing.T) {
	r := Chain(strings.NewReader("ab"), strings.NewReader("cd"), strings.NewReader("ef"))
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "abcdef", string(data))
}

func TestProcess_YieldProcessed(t *testing.T) {
	upper := func(b []byte) []byte { return bytes.ToUpper(b) }

	chunks := Process(context.Background(), strings.NewReader("stream me"), upper, 4, true)
	data, err := collect(t, chunks)
	require.NoError(t, err)
	assert.Equal(t, "STREAM ME", string(data))
}

func TestProcess_YieldRaw(t *testing.T) {
	hasher := sha256.New()
	tap := func(b []byte) []byte {
		hasher.Write(b)
		return nil
	}

	payload := strings.Repeat("x", 1000)
	chunks := Process(context.Background(), strings.NewReader(payload), tap, 64, false)
	data, err := collect(t, chunks)
	require.NoError(t, err)

	assert.Equal(t, payload, string(data), "raw chunks pass through")
	assert.Equal(t, sha256.Sum256([]byte(payload)), [32]byte(hasher.Sum(nil)),
		"processor still observed every chunk")
}

func TestProcess_ReadError(t *testing.T) {
	boom := errors.New("disk on fire")
	r := io.MultiReader(strings.NewReader("ok"), &failingReader{err: boom})

	chunks := Process(context.Background(), r, func(b []byte) []byte { return b }, 2, true)
	data, err := collect(t, chunks)

	assert.Equal(t, "ok", string(data))
	assert.ErrorIs(t, err, boom)
}

func TestProcess_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	chunks := Process(ctx, strings.NewReader(strings.Repeat("y", 1<<20)), func(b []byte) []byte { return b }, 1, true)

	<-chunks
	cancel()

	// The producer goroutine must wind down and close the channel.
	for range chunks {
	}
}

type failingReader struct {
	err error
}

func (f *failingReader) Read([]byte) (int, error) {
	return 0, f.err
}
