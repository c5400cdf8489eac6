package gabidulin

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flpborba/rankpke/gf2m"
	"github.com/flpborba/rankpke/gf2m/linalg"
	"github.com/flpborba/rankpke/internal/csprng"
)

func testPoints(t *testing.T, field *gf2m.Field, n int) gf2m.Vector {
	t.Helper()
	prng, err := csprng.NewKeyedPRNG([]byte("gabidulin-code-test-vector-seed!"))
	require.NoError(t, err)

	sampler := linalg.NewRankVectorSampler(prng, field)
	points, err := sampler.Sample(n, n)
	require.NoError(t, err)
	return points
}

func TestGeneratorMatrixShape(t *testing.T) {
	field, err := gf2m.ForDegree(8)
	require.NoError(t, err)

	points := testPoints(t, field, 5)
	code, err := NewCode(field, 3, points)
	require.NoError(t, err)

	g := code.GeneratorMatrix()
	require.Equal(t, 3, g.Rows())
	require.Equal(t, 5, g.Cols())

	for i := 0; i < 3; i++ {
		for j := 0; j < 5; j++ {
			require.True(t, field.Equal(g[i][j], field.Frobenius(points[j], i)))
		}
	}
}

func TestEncodeUnencodeRoundTrip(t *testing.T) {
	field, err := gf2m.ForDegree(8)
	require.NoError(t, err)

	points := testPoints(t, field, 5)
	code, err := NewCode(field, 3, points)
	require.NoError(t, err)

	msg := gf2m.Vector{field.FromUint64(1), field.FromUint64(0x42), field.FromUint64(0xAB)}

	codeword, err := code.Encode(msg)
	require.NoError(t, err)
	require.Len(t, codeword, 5)

	recovered, err := code.Unencode(codeword)
	require.NoError(t, err)
	require.True(t, field.VecEqual(msg, recovered))
}

func TestNewCodeRejectsDependentPoints(t *testing.T) {
	field, err := gf2m.ForDegree(8)
	require.NoError(t, err)

	one := field.FromUint64(1)
	points := gf2m.Vector{one, one, field.FromUint64(2)}

	_, err = NewCode(field, 2, points)
	require.Error(t, err)
}
