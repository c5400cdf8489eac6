package rankpke

import (
	"fmt"

	"github.com/flpborba/rankpke/gabidulin"
	"github.com/flpborba/rankpke/gf2m"
	"github.com/flpborba/rankpke/gf2m/linalg"
	"github.com/flpborba/rankpke/internal/csprng"
	"github.com/flpborba/rankpke/rankerr"
)

// maxKeygenRestarts bounds the number of times generation restarts on a
// degenerate draw (T1 singular) before giving up; each restart is an
// independent uniform draw so the expected number of attempts is small
// and constant in the parameters.
const maxKeygenRestarts = 1000

// SecretKey is SK = (C, S, P, lambda): a Gabidulin code, a row scrambler
// and a column scrambler, opaque in memory and serializable via
// ExportDER/ExportPEM.
type SecretKey struct {
	params Parameters
	field  *gf2m.Field
	code   *gabidulin.Code
	s      gf2m.Matrix // k x k, invertible
	p      gf2m.Matrix // n x n, invertible, subspace-constrained
	pInv   gf2m.Matrix
}

// PublicKey is PK = (G_pub, lambda), storing only the right block R of
// G_pub's systematic form [I_k | R].
type PublicKey struct {
	params Parameters
	right  gf2m.Matrix // k x (n-k)
}

// GenerateKey samples a Gabidulin code, a row scrambler S and a subspace
// column scrambler P, rescales S so that the derived public key is
// already in systematic form, and restarts the whole draw if the first k
// columns of S*G(C)*P^-1 turn out singular.
func GenerateKey(prng csprng.PRNG, lit ParametersLiteral) (*SecretKey, error) {
	params, err := NewParameters(lit)
	if err != nil {
		return nil, fmt.Errorf("rankpke.GenerateKey: %w", err)
	}

	field, err := gf2m.ForDegree(params.m)
	if err != nil {
		return nil, fmt.Errorf("rankpke.GenerateKey: %w", err)
	}

	pointSampler := linalg.NewRankVectorSampler(prng, field)
	rowSampler := linalg.NewUniformInvertibleSampler(prng, field)
	colSampler := linalg.NewSubspaceInvertibleSampler(prng, field)

	for attempt := 0; attempt < maxKeygenRestarts; attempt++ {
		points, err := pointSampler.Sample(params.n, params.n)
		if err != nil {
			return nil, fmt.Errorf("rankpke.GenerateKey: %w", err)
		}

		code, err := gabidulin.NewCode(field, params.k, points)
		if err != nil {
			continue
		}

		s, err := rowSampler.Sample(params.k)
		if err != nil {
			return nil, fmt.Errorf("rankpke.GenerateKey: %w", err)
		}

		p, err := colSampler.Sample(params.subspaceDim, params.n)
		if err != nil {
			return nil, fmt.Errorf("rankpke.GenerateKey: %w", err)
		}

		pInv, err := field.Inverse(p)
		if err != nil {
			return nil, fmt.Errorf("rankpke.GenerateKey: %w", err)
		}

		t := field.MatMul(s, field.MatMul(code.GeneratorMatrix(), pInv))
		t1 := field.Submatrix(t, 0, params.k, 0, params.k)

		if field.MatRank(t1) != params.k {
			continue // T1 singular: restart the whole draw
		}

		sOldInv, err := field.Inverse(s)
		if err != nil {
			return nil, fmt.Errorf("rankpke.GenerateKey: %w", err)
		}
		sNew := field.MatMul(sOldInv, t1)

		return &SecretKey{params: params, field: field, code: code, s: sNew, p: p, pInv: pInv}, nil
	}

	return nil, fmt.Errorf("rankpke.GenerateKey: no valid key found after %d attempts: %w", maxKeygenRestarts, rankerr.ErrParameter)
}

// Parameters returns the key's parameter set.
func (sk *SecretKey) Parameters() Parameters { return sk.params }

// PublicKey derives PK = (S^-1 * G(C) * P^-1, lambda), reduced to
// systematic form [I_k | R]; only R is retained.
func (sk *SecretKey) PublicKey() (*PublicKey, error) {
	sInv, err := sk.field.Inverse(sk.s)
	if err != nil {
		return nil, fmt.Errorf("rankpke.SecretKey.PublicKey: %w", err)
	}

	gPub := sk.field.MatMul(sInv, sk.field.MatMul(sk.code.GeneratorMatrix(), sk.pInv))
	right := sk.field.Submatrix(gPub, 0, sk.params.k, sk.params.k, sk.params.n)

	return &PublicKey{params: sk.params, right: right}, nil
}

// Equal reports whether sk and other hold the same key material.
func (sk *SecretKey) Equal(other *SecretKey) bool {
	if other == nil {
		return false
	}
	if !sk.params.Equal(other.params) {
		return false
	}
	return sk.field.VecEqual(sk.code.EvaluationPoints(), other.code.EvaluationPoints()) &&
		sk.field.MatEqual(sk.s, other.s) &&
		sk.field.MatEqual(sk.p, other.p)
}

// Parameters returns the key's parameter set.
func (pk *PublicKey) Parameters() Parameters { return pk.params }

// Equal reports whether pk and other hold the same key material.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	if other == nil {
		return false
	}
	if !pk.params.Equal(other.params) {
		return false
	}
	field, err := gf2m.ForDegree(pk.params.m)
	if err != nil {
		return false
	}
	return field.MatEqual(pk.right, other.right)
}

// generatorMatrix reconstructs the full k x n public generator matrix
// [I_k | R] from the stored right block.
func (pk *PublicKey) generatorMatrix(field *gf2m.Field) gf2m.Matrix {
	g := make(gf2m.Matrix, pk.params.k)
	for i := range g {
		row := make(gf2m.Vector, pk.params.n)
		row[i] = gf2m.One
		copy(row[pk.params.k:], pk.right[i])
		g[i] = row
	}
	return g
}
