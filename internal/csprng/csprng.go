// Package csprng provides the random byte sources used across the
// rank-metric cryptosystem: a process-wide CSPRNG for production use and a
// deterministic, keyed source for reproducible tests.
package csprng

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"

	"github.com/zeebo/blake3"

	"github.com/flpborba/rankpke/rankerr"
)

// PRNG is the common interface every sampler in gf2m/linalg draws
// randomness from. Read draws len(p) bytes into p; Reset rewinds a
// keyed source back to its initial state, which SystemPRNG implements as a
// no-op since its output is never meant to repeat.
type PRNG interface {
	io.Reader
	Reset()
}

// KeyedPRNG is a deterministic PRNG seeded from a fixed key, built on
// BLAKE3's extendable output: two KeyedPRNG values constructed from the
// same key produce byte-for-byte identical streams, which is what makes
// randomized test vectors reproducible.
type KeyedPRNG struct {
	key []byte
	out *blake3.OutputReader
}

// NewKeyedPRNG returns a KeyedPRNG seeded with key.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("csprng.NewKeyedPRNG: key must be non-empty: %w", rankerr.ErrParameter)
	}

	h, err := blake3.NewKeyed(deriveKey(key))
	if err != nil {
		return nil, fmt.Errorf("csprng.NewKeyedPRNG: %w", err)
	}

	out := h.Digest()
	return &KeyedPRNG{key: key, out: out}, nil
}

// deriveKey stretches or truncates key to the 32 bytes blake3.NewKeyed
// requires, via one BLAKE3 hash of the caller-supplied key material.
func deriveKey(key []byte) []byte {
	sum := blake3.Sum256(key)
	return sum[:]
}

// Read draws len(p) bytes from the keyed output function, continuing the
// stream from wherever the previous Read left off.
func (k *KeyedPRNG) Read(p []byte) (int, error) {
	return k.out.Read(p)
}

// Reset rewinds the output stream to its start, so a subsequent Read
// reproduces bytes already consumed.
func (k *KeyedPRNG) Reset() {
	k.out.Seek(0, io.SeekStart)
}

// SystemPRNG draws from the operating system's CSPRNG via crypto/rand. It
// is safe for concurrent use; Reset is a no-op, since crypto/rand never
// needs or supports rewinding.
type SystemPRNG struct{}

var (
	systemOnce sync.Once
	system     *SystemPRNG
)

// NewSystemPRNG returns the process-wide SystemPRNG, lazily constructed on
// first use.
func NewSystemPRNG() *SystemPRNG {
	systemOnce.Do(func() {
		system = &SystemPRNG{}
	})
	return system
}

// Read draws len(p) bytes from crypto/rand.Reader.
func (*SystemPRNG) Read(p []byte) (int, error) {
	return io.ReadFull(rand.Reader, p)
}

// Reset is a no-op: crypto/rand.Reader draws fresh entropy from the OS on
// every call and never needs to be rewound.
func (*SystemPRNG) Reset() {}
