package linalg

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flpborba/rankpke/gf2m"
	"github.com/flpborba/rankpke/internal/csprng"
)

func testPRNG(t *testing.T, seed byte) csprng.PRNG {
	t.Helper()
	key := make([]byte, 32)
	for i := range key {
		key[i] = seed + byte(i)
	}
	p, err := csprng.NewKeyedPRNG(key)
	require.NoError(t, err)
	return p
}

func TestUniformInvertibleSamplerProducesInvertible(t *testing.T) {
	f, err := gf2m.ForDegree(16)
	require.NoError(t, err)

	s := NewUniformInvertibleSampler(testPRNG(t, 1), f)
	m, err := s.Sample(5)
	require.NoError(t, err)
	require.Equal(t, 5, f.MatRank(m))

	_, err = f.Inverse(m)
	require.NoError(t, err)
}

func TestSubspaceInvertibleSamplerRank(t *testing.T) {
	f, err := gf2m.ForDegree(4)
	require.NoError(t, err)

	s := NewSubspaceInvertibleSampler(testPRNG(t, 2), f)
	m, err := s.Sample(2, 3)
	require.NoError(t, err)
	require.Equal(t, 3, f.MatRank(m))

	for _, row := range m {
		for _, e := range row {
			require.LessOrEqual(t, f.Rank(gf2m.Vector{e}), 2)
		}
	}
}

func TestSubspaceInvertibleSamplerRejectsOversizedLambda(t *testing.T) {
	f, err := gf2m.ForDegree(4)
	require.NoError(t, err)

	s := NewSubspaceInvertibleSampler(testPRNG(t, 3), f)
	_, err = s.Sample(8, 3)
	require.Error(t, err)
}

func TestRankVectorSamplerExactRank(t *testing.T) {
	f, err := gf2m.ForDegree(16)
	require.NoError(t, err)

	s := NewRankVectorSampler(testPRNG(t, 4), f)
	v, err := s.Sample(10, 4)
	require.NoError(t, err)
	require.Equal(t, 4, f.Rank(v))
}

func TestRankVectorSamplerRejectsOversizedRank(t *testing.T) {
	f, err := gf2m.ForDegree(8)
	require.NoError(t, err)

	s := NewRankVectorSampler(testPRNG(t, 5), f)
	_, err = s.Sample(4, 9)
	require.Error(t, err)
}
