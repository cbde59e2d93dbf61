package core

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed returns a random non-zero seed for the obstacle stream.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	seed := int64(binary.LittleEndian.Uint64(b[:]))
	if seed == 0 {
		seed = 1
	}
	return seed, nil
}
