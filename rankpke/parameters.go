// Package rankpke implements the IND-CCA-secure rank-metric public-key
// encryption scheme: parameter/key management, ASN.1/PEM serialization,
// and the hybrid encrypt/decrypt transform built over a gabidulin.Code
// trapdoor (spec components E and F).
package rankpke

import (
	"fmt"

	"github.com/google/go-cmp/cmp"

	"github.com/flpborba/rankpke/rankerr"
)

// SecurityLevel names one of the scheme's recognized parameter sets.
type SecurityLevel int

// Recognized security levels, naming their target classical security in bits.
const (
	Level128 SecurityLevel = 128
	Level192 SecurityLevel = 192
	Level256 SecurityLevel = 256
)

// ParametersLiteral is the user-facing request for a parameter set: just a
// security level. The literal is the compact, JSON/user-friendly handle
// and Parameters is the validated, immutable expansion consumed by the
// rest of the package.
type ParametersLiteral struct {
	Level SecurityLevel
}

// Parameters is the validated, immutable (m,n,k,lambda) tuple: either the
// expansion of a ParametersLiteral for a recognized security level, or the
// parameters declared by an imported key, whose Level is zero unless they
// match a recognized set.
type Parameters struct {
	level               SecurityLevel
	m, n, k, subspaceDim int
}

// NewParameters resolves lit into its full (m,n,k,lambda) parameters. It
// fails with rankerr.ErrParameter for any level other than Level128,
// Level192 or Level256.
func NewParameters(lit ParametersLiteral) (Parameters, error) {
	switch lit.Level {
	case Level128:
		return Parameters{level: Level128, m: 64, n: 58, k: 28, subspaceDim: 3}, nil
	case Level192:
		return Parameters{level: Level192, m: 96, n: 62, k: 32, subspaceDim: 3}, nil
	case Level256:
		return Parameters{level: Level256, m: 128, n: 64, k: 28, subspaceDim: 3}, nil
	default:
		return Parameters{}, fmt.Errorf("rankpke.NewParameters: unrecognized security level %d: %w", lit.Level, rankerr.ErrParameter)
	}
}

// Level returns the security level the parameters were resolved from.
func (p Parameters) Level() SecurityLevel { return p.level }

// M returns the extension degree m of the ambient field F_{2^m}.
func (p Parameters) M() int { return p.m }

// N returns the Gabidulin code length n.
func (p Parameters) N() int { return p.n }

// K returns the Gabidulin code dimension k.
func (p Parameters) K() int { return p.k }

// SubspaceDim returns lambda, the column scrambler's subspace dimension.
func (p Parameters) SubspaceDim() int { return p.subspaceDim }

// DecodingRadius returns t = floor((n-k)/(2*lambda)), the rank weight of
// error this scheme's encryption injects and its decoder corrects.
func (p Parameters) DecodingRadius() int {
	return (p.n - p.k) / (2 * p.subspaceDim)
}

// CiphertextSize returns floor(m*n/8), the fixed ciphertext length in bytes.
func (p Parameters) CiphertextSize() int {
	return (p.m * p.n) / 8
}

// PlaintextSize returns floor(m*k/8) - hashSize, the fixed plaintext
// length in bytes for a hash oracle of the given digest size.
func (p Parameters) PlaintextSize(hashSize int) int {
	return (p.m*p.k)/8 - hashSize
}

// Equal reports whether p and other hold the same parameters.
func (p Parameters) Equal(other Parameters) bool {
	return cmp.Equal(p, other, cmp.AllowUnexported(Parameters{}))
}
