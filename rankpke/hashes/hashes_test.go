package hashes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSHA3DigestSizes(t *testing.T) {
	cases := []struct {
		level int
		size  int
	}{
		{128, 32},
		{192, 48},
		{256, 64},
	}

	for _, c := range cases {
		h, err := NewSHA3Hash(c.level)
		require.NoError(t, err)
		require.Equal(t, c.size, h.Size())
		require.Len(t, h.Sum(nil), c.size)
	}
}

func TestSHA3RejectsUnsupportedLevel(t *testing.T) {
	_, err := NewSHA3Hash(64)
	require.Error(t, err)
}

func TestShakeLength(t *testing.T) {
	x128, err := NewShakeXOF(128)
	require.NoError(t, err)
	require.Len(t, x128.Read(nil, 28), 28)

	x256, err := NewShakeXOF(256)
	require.NoError(t, err)
	require.Len(t, x256.Read(nil, 256), 256)
}

func TestShakeRejectsUnsupportedLevel(t *testing.T) {
	_, err := NewShakeXOF(300)
	require.Error(t, err)
}
