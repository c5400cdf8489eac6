// Package gabidulin implements Gabidulin codes over F_{2^m}: construction
// from evaluation points, encoding, unencoding, and the rank-metric
// Welch-Berlekamp decoder that is this scheme's trapdoor (spec component D).
package gabidulin

import (
	"fmt"

	"github.com/flpborba/rankpke/gf2m"
	"github.com/flpborba/rankpke/rankerr"
)

// Code is the [n,k] Gabidulin code over a fixed field, defined by n
// F_2-linearly independent evaluation points.
type Code struct {
	field  *gf2m.Field
	k      int
	points gf2m.Vector // length n
	gen    gf2m.Matrix // k x n, precomputed generator matrix
	genK   gf2m.Matrix // first k columns of gen, inverted once at construction
	genKInv gf2m.Matrix
}

// NewCode builds the code from its evaluation points. points must be
// F_2-linearly independent; otherwise NewCode fails with rankerr.ErrParameter.
func NewCode(field *gf2m.Field, k int, points gf2m.Vector) (*Code, error) {
	n := len(points)
	if k <= 0 || k > n {
		return nil, fmt.Errorf("gabidulin.NewCode: k=%d invalid for n=%d: %w", k, n, rankerr.ErrParameter)
	}
	if field.Rank(points) != n {
		return nil, fmt.Errorf("gabidulin.NewCode: evaluation points are not F_2-linearly independent: %w", rankerr.ErrParameter)
	}

	gen := make(gf2m.Matrix, k)
	for i := 0; i < k; i++ {
		row := make(gf2m.Vector, n)
		for j, g := range points {
			row[j] = field.Frobenius(g, i)
		}
		gen[i] = row
	}

	genK := field.Submatrix(gen, 0, k, 0, k)
	genKInv, err := field.Inverse(genK)
	if err != nil {
		return nil, fmt.Errorf("gabidulin.NewCode: first k columns of the generator matrix are singular: %w", rankerr.ErrParameter)
	}

	return &Code{field: field, k: k, points: append(gf2m.Vector(nil), points...), gen: gen, genK: genK, genKInv: genKInv}, nil
}

// Field returns the code's field.
func (c *Code) Field() *gf2m.Field { return c.field }

// N returns the code's length.
func (c *Code) N() int { return len(c.points) }

// K returns the code's dimension.
func (c *Code) K() int { return c.k }

// EvaluationPoints returns the code's defining points, g_1..g_n.
func (c *Code) EvaluationPoints() gf2m.Vector { return append(gf2m.Vector(nil), c.points...) }

// GeneratorMatrix returns G, where G[i][j] = g_j^(2^i).
func (c *Code) GeneratorMatrix() gf2m.Matrix { return c.gen }

// DecodingRadius returns t = floor((n-k)/(2*subspaceDim)) for the given
// column-scrambler subspace dimension, the maximum rank weight of error
// this code can correct when errors are confined to that subspace.
func (c *Code) DecodingRadius(subspaceDim int) int {
	return (c.N() - c.k) / (2 * subspaceDim)
}

// Encode returns msg*G for a length-k message vector.
func (c *Code) Encode(msg gf2m.Vector) (gf2m.Vector, error) {
	if len(msg) != c.k {
		return nil, fmt.Errorf("gabidulin.Code.Encode: message has length %d, want %d: %w", len(msg), c.k, rankerr.ErrParameter)
	}
	return c.field.VecMatMul(msg, c.gen), nil
}

// Unencode solves msg*G = word for msg, using the (precomputed invertible)
// first k columns of G.
func (c *Code) Unencode(word gf2m.Vector) (gf2m.Vector, error) {
	if len(word) != c.N() {
		return nil, fmt.Errorf("gabidulin.Code.Unencode: word has length %d, want %d: %w", len(word), c.N(), rankerr.ErrParameter)
	}
	head := gf2m.Vector(word[:c.k])
	return c.field.VecMatMul(head, c.genKInv), nil
}
