// Package streamutil provides helpers for working with streaming byte
// sources: chaining multiple streams into one and applying per-chunk
// transformations while reading.
package streamutil

import (
	"context"
	"fmt"
	"io"
)

// Processor transforms one chunk. Typical processors hash, compress,
// encrypt, or transcode as data streams through.
type Processor func(chunk []byte) []byte

// Chunk is one unit of processed stream output. Err is non-nil only on the
// final chunk, when the underlying read failed.
type Chunk struct {
	Data []byte
	Err  error
}

// Chain concatenates multiple byte streams into a single reader, yielding
// each stream's content in order.
func Chain(streams ...io.Reader) io.Reader {
	return io.MultiReader(streams...)
}

// Process reads r in chunks of chunkSize bytes, applies processor to each
// chunk, and delivers results on the returned channel. When yieldProcessed
// is false, the processor still runs (for its side effects, such as
// hashing) but the raw chunk is delivered instead.
//
// The channel closes when the stream is exhausted, a read fails, or ctx is
// canceled. Reading stops at the first empty read.
//
// Example:
//
//	hasher := sha256.New()
//	chunks := streamutil.Process(ctx, file, func(b []byte) []byte {
//	    hasher.Write(b)
//	    return b
//	}, 64*1024, false)
//	for chunk := range chunks {
//	    if chunk.Err != nil {
//	        return chunk.Err
//	    }
//	    // forward chunk.Data
//	}
func Process(ctx context.Context, r io.Reader, processor Processor, chunkSize int, yieldProcessed bool) <-chan Chunk {
	out := make(chan Chunk)

	go func() {
		defer close(out)

		for {
			buf := make([]byte, chunkSize)
			n, err := r.Read(buf)

			if n > 0 {
				chunk := buf[:n]
				processed := processor(chunk)
				if yieldProcessed {
					chunk = processed
				}
				select {
				case out <- Chunk{Data: chunk}:
				case <-ctx.Done():
					return
				}
			}

			if err == io.EOF || (err == nil && n == 0) {
				return
			}
			if err != nil {
				select {
				case out <- Chunk{Err: fmt.Errorf("streamutil: read: %w", err)}:
				case <-ctx.Done():
				}
				return
			}
		}
	}()

	return out
}
