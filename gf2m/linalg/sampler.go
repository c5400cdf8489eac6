// Package linalg builds the rank-metric sampler layer on top of gf2m: the
// uniform invertible, subspace-invertible and rank-r vector samplers used
// by key generation and encryption (spec component C).
package linalg

import (
	"fmt"

	"github.com/flpborba/rankpke/gf2m"
	"github.com/flpborba/rankpke/internal/csprng"
	"github.com/flpborba/rankpke/rankerr"
)

const maxResamples = 10000

// randomElement draws a uniform element of f from prng.
func randomElement(prng csprng.PRNG, f *gf2m.Field) (gf2m.Element, error) {
	buf := make([]byte, f.ByteWidth())
	if _, err := prng.Read(buf); err != nil {
		return gf2m.Zero, fmt.Errorf("linalg.randomElement: %w", err)
	}
	return f.DecodeElement(buf)
}

// randomMatrix draws a uniform rows x cols matrix over f from prng, with no
// rank constraint.
func randomMatrix(prng csprng.PRNG, f *gf2m.Field, rows, cols int) (gf2m.Matrix, error) {
	m := make(gf2m.Matrix, rows)
	for i := range m {
		row := make(gf2m.Vector, cols)
		for j := range row {
			e, err := randomElement(prng, f)
			if err != nil {
				return nil, err
			}
			row[j] = e
		}
		m[i] = row
	}
	return m, nil
}

// UniformInvertibleSampler draws matrices uniformly from GL_n(F_{2^m}): a
// uniform n x n matrix, resampled (not merely nudged) on each rank
// deficiency, which keeps the output's distribution uniform over the
// invertible matrices rather than biased toward the first candidate found.
//
// Constructed from a PRNG and a context (here, the field) and exposing
// one Sample-shaped method.
type UniformInvertibleSampler struct {
	field *gf2m.Field
	prng  csprng.PRNG
}

// NewUniformInvertibleSampler returns a sampler drawing elements of field
// using randomness from prng.
func NewUniformInvertibleSampler(prng csprng.PRNG, field *gf2m.Field) *UniformInvertibleSampler {
	return &UniformInvertibleSampler{field: field, prng: prng}
}

// Sample draws a uniform n x n invertible matrix over the sampler's field.
func (s *UniformInvertibleSampler) Sample(n int) (gf2m.Matrix, error) {
	if n <= 0 {
		return nil, fmt.Errorf("linalg.UniformInvertibleSampler.Sample: n=%d must be positive: %w", n, rankerr.ErrParameter)
	}

	for attempt := 0; attempt < maxResamples; attempt++ {
		m, err := randomMatrix(s.prng, s.field, n, n)
		if err != nil {
			return nil, fmt.Errorf("linalg.UniformInvertibleSampler.Sample: %w", err)
		}
		if s.field.MatRank(m) == n {
			return m, nil
		}
	}

	return nil, fmt.Errorf("linalg.UniformInvertibleSampler.Sample: no invertible matrix found after %d attempts: %w", maxResamples, rankerr.ErrParameter)
}

// SubspaceInvertibleSampler draws invertible n x n matrices whose entries
// all lie in a single random lambda-dimensional F_2-subspace of the
// ambient field: the "column scrambler" distribution used as the trapdoor.
type SubspaceInvertibleSampler struct {
	field *gf2m.Field
	prng  csprng.PRNG
}

// NewSubspaceInvertibleSampler returns a sampler over field using prng.
func NewSubspaceInvertibleSampler(prng csprng.PRNG, field *gf2m.Field) *SubspaceInvertibleSampler {
	return &SubspaceInvertibleSampler{field: field, prng: prng}
}

// Sample draws a uniform (subspace, matrix) pair and returns the lifted,
// invertible n x n matrix: first a random injection iota: F_2^lambda ->
// F_{2^m} (a lambda-dimensional subspace basis), then a uniform invertible
// n x n matrix over the small field F_{2^lambda}, lifted entrywise through
// iota and resampled in full until the lift is invertible over F_{2^m}.
//
// Fails with rankerr.ErrParameter if lambda > m.
func (s *SubspaceInvertibleSampler) Sample(lambda, n int) (gf2m.Matrix, error) {
	if lambda > s.field.Degree() || lambda <= 0 {
		return nil, fmt.Errorf("linalg.SubspaceInvertibleSampler.Sample: lambda=%d invalid for m=%d: %w", lambda, s.field.Degree(), rankerr.ErrParameter)
	}

	small, err := gf2m.ForDegree(lambda)
	if err != nil {
		return nil, fmt.Errorf("linalg.SubspaceInvertibleSampler.Sample: %w", err)
	}

	smallSampler := NewUniformInvertibleSampler(s.prng, small)
	rankSampler := NewRankVectorSampler(s.prng, s.field)

	for attempt := 0; attempt < maxResamples; attempt++ {
		basisVec, err := rankSampler.Sample(lambda, lambda)
		if err != nil {
			return nil, fmt.Errorf("linalg.SubspaceInvertibleSampler.Sample: %w", err)
		}
		basis := []gf2m.Element(basisVec)

		sub, err := smallSampler.Sample(n)
		if err != nil {
			return nil, fmt.Errorf("linalg.SubspaceInvertibleSampler.Sample: %w", err)
		}

		lifted := make(gf2m.Matrix, n)
		for i := range lifted {
			row := make(gf2m.Vector, n)
			for j := range row {
				row[j] = lift(s.field, small, basis, sub[i][j])
			}
			lifted[i] = row
		}

		if s.field.MatRank(lifted) == n {
			return lifted, nil
		}
	}

	return nil, fmt.Errorf("linalg.SubspaceInvertibleSampler.Sample: no invertible lift found after %d attempts: %w", maxResamples, rankerr.ErrParameter)
}

// lift maps a small-field element through the injection defined by basis
// (basis[i] is the image of the i-th standard basis vector of F_2^lambda),
// by XOR-ing together the basis images selected by e's bits.
func lift(field, small *gf2m.Field, basis []gf2m.Element, e gf2m.Element) gf2m.Element {
	bits := small.Bits(e)
	var out gf2m.Element
	for i, b := range bits {
		if !small.IsZero(b) {
			out = field.Add(out, basis[i])
		}
	}
	return out
}

// RankVectorSampler draws length-n vectors over F_{2^m} of exact F_2-rank
// r, the fresh-error distribution used both by key generation's evaluation
// points (rank n) and by encryption's error vector (rank t).
type RankVectorSampler struct {
	field *gf2m.Field
	prng  csprng.PRNG
}

// NewRankVectorSampler returns a sampler over field using prng.
func NewRankVectorSampler(prng csprng.PRNG, field *gf2m.Field) *RankVectorSampler {
	return &RankVectorSampler{field: field, prng: prng}
}

// Sample draws a uniform length-n vector of rank exactly r, by sampling a
// full column-rank m x r matrix A and a full row-rank r x n matrix B over
// F_2 and reading off the columns of A*B (rank r by construction) as
// elements of F_{2^m}.
//
// Fails with rankerr.ErrParameter if r > min(m,n).
func (s *RankVectorSampler) Sample(n, r int) (gf2m.Vector, error) {
	m := s.field.Degree()
	if r > n || r > m || r < 0 {
		return nil, fmt.Errorf("linalg.RankVectorSampler.Sample: r=%d invalid for m=%d, n=%d: %w", r, m, n, rankerr.ErrParameter)
	}
	if r == 0 {
		return make(gf2m.Vector, n), nil
	}

	f2, err := gf2m.ForDegree(1)
	if err != nil {
		return nil, fmt.Errorf("linalg.RankVectorSampler.Sample: %w", err)
	}

	a, err := fullRankRect(s.prng, f2, m, r)
	if err != nil {
		return nil, fmt.Errorf("linalg.RankVectorSampler.Sample: %w", err)
	}
	b, err := fullRankRect(s.prng, f2, r, n)
	if err != nil {
		return nil, fmt.Errorf("linalg.RankVectorSampler.Sample: %w", err)
	}

	prod := f2.MatMul(a, b) // m x n over F_2, rank r

	cols := make(gf2m.Vector, n)
	for j := 0; j < n; j++ {
		col := make(gf2m.Vector, m)
		for i := 0; i < m; i++ {
			col[i] = prod[i][j]
		}
		cols[j] = s.field.FromBits(col)
	}

	return cols, nil
}

// fullRankRect draws a uniform rows x cols matrix over f2 with full rank
// min(rows,cols), resampling whenever the draw falls short.
func fullRankRect(prng csprng.PRNG, f2 *gf2m.Field, rows, cols int) (gf2m.Matrix, error) {
	want := rows
	if cols < want {
		want = cols
	}

	for attempt := 0; attempt < maxResamples; attempt++ {
		m, err := randomMatrix(prng, f2, rows, cols)
		if err != nil {
			return nil, err
		}
		if f2.MatRank(m) == want {
			return m, nil
		}
	}

	return nil, fmt.Errorf("linalg.fullRankRect: no full-rank %dx%d matrix found after %d attempts: %w", rows, cols, maxResamples, rankerr.ErrParameter)
}
