package gf2m

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeElementVector(t *testing.T) {
	f, err := ForDegree(12)
	require.NoError(t, err)

	e := f.FromUint64(0x142)
	require.Equal(t, []byte{0x01, 0x42}, f.EncodeElement(e))

	back, err := f.DecodeElement([]byte{0x01, 0x42})
	require.NoError(t, err)
	require.True(t, f.Equal(e, back))
}

func TestEncodeF2(t *testing.T) {
	f, err := ForDegree(1)
	require.NoError(t, err)

	require.Equal(t, []byte{0x00}, f.EncodeElement(Zero))
	require.Equal(t, []byte{0x01}, f.EncodeElement(One))
}

func TestMulAgreesWithGeneric(t *testing.T) {
	for _, m := range []int{8, 16, 32, 64, 96, 128} {
		f, err := ForDegree(m)
		require.NoError(t, err)

		a := f.FromUint64(0x9E3779B97F4A7C15)
		b := f.FromUint64(0xC2B2AE3D27D4EB4F)

		want := f.mulGeneric(a, b)
		got := f.Mul(a, b)
		require.True(t, f.Equal(want, got), "mismatch for m=%d", m)
	}
}

func TestInvRoundTrip(t *testing.T) {
	f, err := ForDegree(64)
	require.NoError(t, err)

	a := f.FromUint64(0xDEADBEEFCAFEBABE)
	inv, err := f.Inv(a)
	require.NoError(t, err)

	require.True(t, f.Equal(One, f.Mul(a, inv)))
}

func TestInvZero(t *testing.T) {
	f, err := ForDegree(8)
	require.NoError(t, err)

	_, err = f.Inv(Zero)
	require.Error(t, err)
}

func TestFrobeniusIsRepeatedSquare(t *testing.T) {
	f, err := ForDegree(32)
	require.NoError(t, err)

	a := f.FromUint64(0x1234ABCD)
	require.True(t, f.Equal(f.Square(f.Square(a)), f.Frobenius(a, 2)))
}

func TestForDegreeRejectsUnsupported(t *testing.T) {
	_, err := ForDegree(13)
	require.Error(t, err)
}

func TestDecodeVectorRejectsWrongLength(t *testing.T) {
	f, err := ForDegree(16)
	require.NoError(t, err)

	_, err = f.DecodeVector(make([]byte, 5), 3)
	require.Error(t, err)
}
