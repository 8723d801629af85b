// Package securerand provides cryptographically secure random generation:
// a ChaCha20-backed byte stream and an unbiased integer generator built on
// rejection sampling.
//
// The byte stream keeps one cipher state across calls, so successive reads
// continue the keystream instead of reseeding. One process-wide stream is
// available through Shared; components that want an isolated or injected
// entropy source construct their own and pass it explicitly.
package securerand

import (
	"crypto/rand"
	"fmt"
	"sync"

	"golang.org/x/crypto/chacha20"
)

// Source yields cryptographically secure random bytes.
type Source interface {
	// Next returns the next n bytes from the source.
	Next(n int) []byte
}

// ByteStream is a forward-secure random byte generator. It seeds a ChaCha20
// cipher once from crypto/rand and then reads the keystream, which is
// cheaper than hitting the kernel entropy pool per call.
//
// ByteStream is safe for concurrent use.
type ByteStream struct {
	mu     sync.Mutex
	cipher *chacha20.Cipher
}

// NewByteStream creates a ByteStream seeded with a fresh random key and
// nonce. It fails only if the platform entropy source does.
func NewByteStream() (*ByteStream, error) {
	key := make([]byte, chacha20.KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("securerand: seed key: %w", err)
	}
	nonce := make([]byte, chacha20.NonceSizeX)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("securerand: seed nonce: %w", err)
	}

	cipher, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return nil, fmt.Errorf("securerand: init cipher: %w", err)
	}
	return &ByteStream{cipher: cipher}, nil
}

// Next returns the next n keystream bytes.
func (s *ByteStream) Next(n int) []byte {
	out := make([]byte, n)
	s.mu.Lock()
	s.cipher.XORKeyStream(out, out)
	s.mu.Unlock()
	return out
}

var (
	sharedOnce   sync.Once
	sharedStream *ByteStream
	sharedErr    error
)

// Shared returns the process-wide ByteStream, creating it on first use.
// Every caller receives the same instance, so the cipher state advances
// globally and output never repeats across callers.
func Shared() (*ByteStream, error) {
	sharedOnce.Do(func() {
		sharedStream, sharedErr = NewByteStream()
	})
	return sharedStream, sharedErr
}
