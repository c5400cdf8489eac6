package rankpke

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flpborba/rankpke/rankpke/hashes"
)

func TestNewParametersTable(t *testing.T) {
	cases := []struct {
		lit                   ParametersLiteral
		m, n, k, lambda, ct, pt int
	}{
		{ParametersLiteral{Level128}, 64, 58, 28, 3, 464, 192},
		{ParametersLiteral{Level192}, 96, 62, 32, 3, 744, 336},
		{ParametersLiteral{Level256}, 128, 64, 28, 3, 1024, 384},
	}

	for _, c := range cases {
		p, err := NewParameters(c.lit)
		require.NoError(t, err)
		require.Equal(t, c.m, p.M())
		require.Equal(t, c.n, p.N())
		require.Equal(t, c.k, p.K())
		require.Equal(t, c.lambda, p.SubspaceDim())
		require.Equal(t, c.ct, p.CiphertextSize())

		h, err := hashes.NewSHA3Hash(int(c.lit.Level))
		require.NoError(t, err)
		require.Equal(t, c.pt, p.PlaintextSize(h.Size()))
	}
}

func TestNewParametersRejectsUnknownLevel(t *testing.T) {
	_, err := NewParameters(ParametersLiteral{SecurityLevel(1)})
	require.Error(t, err)
}

func TestParametersEqual(t *testing.T) {
	a, err := NewParameters(ParametersLiteral{Level128})
	require.NoError(t, err)
	b, err := NewParameters(ParametersLiteral{Level128})
	require.NoError(t, err)

	require.True(t, a.Equal(b))
}

func TestDecodingRadius(t *testing.T) {
	p, err := NewParameters(ParametersLiteral{Level128})
	require.NoError(t, err)
	require.Equal(t, 5, p.DecodingRadius())
}
