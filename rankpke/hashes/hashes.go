// Package hashes wires the hash and XOF oracles the cipher transform
// treats as external collaborators: a small interface per capability,
// and concrete instances backed by golang.org/x/crypto/sha3.
package hashes

import (
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/flpborba/rankpke/rankerr"
)

// Hash is a collision-resistant hash function of fixed digest size.
type Hash interface {
	Sum(data []byte) []byte
	Size() int
}

// XOF is an extendable-output function producing deterministic output of
// caller-chosen length.
type XOF interface {
	Read(data []byte, length int) []byte
}

// SHA3Hash wraps the SHA3-256/384/512 instance matching a security level.
type SHA3Hash struct {
	level int
	size  int
}

// NewSHA3Hash returns the SHA3 hash instance for level (128, 192 or 256).
// It fails with rankerr.ErrParameter for any other level.
func NewSHA3Hash(level int) (*SHA3Hash, error) {
	switch level {
	case 128:
		return &SHA3Hash{level: level, size: 32}, nil
	case 192:
		return &SHA3Hash{level: level, size: 48}, nil
	case 256:
		return &SHA3Hash{level: level, size: 64}, nil
	default:
		return nil, fmt.Errorf("hashes.NewSHA3Hash: unsupported level %d: %w", level, rankerr.ErrParameter)
	}
}

// Size returns the digest size in bytes.
func (h *SHA3Hash) Size() int { return h.size }

// Sum returns the digest of data.
func (h *SHA3Hash) Sum(data []byte) []byte {
	switch h.level {
	case 128:
		sum := sha3.Sum256(data)
		return sum[:]
	case 192:
		sum := sha3.Sum384(data)
		return sum[:]
	default:
		sum := sha3.Sum512(data)
		return sum[:]
	}
}

// ShakeXOF wraps the SHAKE128/256 instance matching a security level.
type ShakeXOF struct {
	level int
}

// NewShakeXOF returns the SHAKE instance for level (128, 192 or 256):
// 128 maps to SHAKE128, 192 and 256 both map to SHAKE256. It fails with
// rankerr.ErrParameter for any other level.
func NewShakeXOF(level int) (*ShakeXOF, error) {
	switch level {
	case 128, 192, 256:
		return &ShakeXOF{level: level}, nil
	default:
		return nil, fmt.Errorf("hashes.NewShakeXOF: unsupported level %d: %w", level, rankerr.ErrParameter)
	}
}

// Read produces exactly length bytes of SHAKE output over data.
func (x *ShakeXOF) Read(data []byte, length int) []byte {
	var shake sha3.ShakeHash
	if x.level == 128 {
		shake = sha3.NewShake128()
	} else {
		shake = sha3.NewShake256()
	}

	shake.Write(data)
	out := make([]byte, length)
	shake.Read(out)
	return out
}
