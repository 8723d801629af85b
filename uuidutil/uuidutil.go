// Package uuidutil generates and converts index-optimized UUIDs.
//
// Version-1 UUIDs place their timestamp low bits first, which scatters
// inserts across a B-tree index. Reordering the bytes timestamp-first
// produces IDs that grow in natural chronological order, improving
// insertion locality in databases that store UUIDs in binary columns.
package uuidutil

import (
	"fmt"
	"math/big"

	"github.com/google/uuid"

	"github.com/norman-ai/utils"
)

// ByteLength is the binary width of an optimized unique ID.
const ByteLength = 16

// NewOptimized generates a fresh sequential, index-optimized unique ID in
// 16-byte binary form.
func NewOptimized() ([]byte, error) {
	id, err := uuid.NewUUID()
	if err != nil {
		return nil, fmt.Errorf("uuidutil: new v1 uuid: %w", err)
	}
	return Optimize(id), nil
}

// Optimize reorders a version-1 UUID so its timestamp leads.
//
// Original layout:
//
//	time_low | time_mid | time_hi_version | clock_seq | node
//
// Reordered layout:
//
//	bytes[6:8] + bytes[4:6] + bytes[0:4] + bytes[8:16]
func Optimize(id uuid.UUID) []byte {
	reordered := make([]byte, 0, ByteLength)
	reordered = append(reordered, id[6:8]...)
	reordered = append(reordered, id[4:6]...)
	reordered = append(reordered, id[0:4]...)
	reordered = append(reordered, id[8:16]...)
	return reordered
}

// BytesToInt converts a 16-byte unique ID into its big-endian integer form.
func BytesToInt(idBytes []byte) *big.Int {
	return new(big.Int).SetBytes(idBytes)
}

// IntToBytes converts an integer unique ID back into 16 big-endian bytes.
// The integer must be non-negative and fit in 128 bits.
func IntToBytes(idInt *big.Int) ([]byte, error) {
	if idInt.Sign() < 0 || idInt.BitLen() > ByteLength*8 {
		return nil, utils.NewValidationError("uuidutil.IntToBytes", utils.ErrUnsupportedValue).
			WithContext(map[string]any{"bit_length": idInt.BitLen()})
	}
	return idInt.FillBytes(make([]byte, ByteLength)), nil
}

// BytesToString converts a 16-byte unique ID into its decimal string form,
// for JSON payloads and logs that cannot carry raw bytes.
func BytesToString(idBytes []byte) string {
	return BytesToInt(idBytes).String()
}

// StringToBytes converts a decimal string produced by BytesToString back
// into 16-byte form.
func StringToBytes(idStr string) ([]byte, error) {
	idInt, ok := new(big.Int).SetString(idStr, 10)
	if !ok {
		return nil, utils.NewValidationError("uuidutil.StringToBytes", utils.ErrUnsupportedValue).
			WithContext(map[string]any{"value": idStr})
	}
	return IntToBytes(idInt)
}
