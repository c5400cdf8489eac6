package gf2m

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInverseRoundTrip(t *testing.T) {
	f, err := ForDegree(16)
	require.NoError(t, err)

	m := Matrix{
		{f.FromUint64(1), f.FromUint64(2), f.FromUint64(3)},
		{f.FromUint64(4), f.FromUint64(5), f.FromUint64(7)},
		{f.FromUint64(0xAB), f.FromUint64(9), f.FromUint64(0x10)},
	}

	inv, err := f.Inverse(m)
	require.NoError(t, err)

	prod := f.MatMul(m, inv)
	require.True(t, f.MatEqual(f.Identity(3), prod))
}

func TestInverseRejectsSingular(t *testing.T) {
	f, err := ForDegree(8)
	require.NoError(t, err)

	m := Matrix{
		{Zero, Zero},
		{Zero, Zero},
	}

	_, err = f.Inverse(m)
	require.Error(t, err)
}

func TestMatRank(t *testing.T) {
	f, err := ForDegree(8)
	require.NoError(t, err)

	m := Matrix{
		{One, Zero, One},
		{Zero, One, One},
		{One, One, Zero}, // row3 = row1+row2
	}

	require.Equal(t, 2, f.MatRank(m))
}

func TestRankOfVector(t *testing.T) {
	f, err := ForDegree(8)
	require.NoError(t, err)

	// e1, e2 and e1+e2 span a 2-dimensional F_2-subspace.
	e1 := f.FromUint64(1)
	e2 := f.FromUint64(2)
	v := Vector{e1, e2, f.Add(e1, e2)}

	require.Equal(t, 2, f.Rank(v))
}

func TestTransposeInvolution(t *testing.T) {
	f, err := ForDegree(8)
	require.NoError(t, err)

	m := Matrix{
		{One, Zero},
		{Zero, One},
		{One, One},
	}

	require.True(t, f.MatEqual(m, f.Transpose(f.Transpose(m))))
}
