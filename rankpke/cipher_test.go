package rankpke

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flpborba/rankpke/internal/csprng"
)

func TestEncDecRoundTripAllLevels(t *testing.T) {
	for _, level := range []SecurityLevel{Level128, Level192, Level256} {
		keyPRNG, err := csprng.NewKeyedPRNG([]byte("cipher-roundtrip-keygen-seed"))
		require.NoError(t, err)

		sk, err := GenerateKey(keyPRNG, ParametersLiteral{level})
		require.NoError(t, err)
		pk, err := sk.PublicKey()
		require.NoError(t, err)

		ci, err := NewCipher(level)
		require.NoError(t, err)

		encPRNG, err := csprng.NewKeyedPRNG([]byte("cipher-roundtrip-enc-seed"))
		require.NoError(t, err)

		ptLen := sk.Parameters().PlaintextSize(hashSizeForLevel(t, level))
		pt := fillBytes(ptLen, 0xA5)

		ct, err := ci.Enc(encPRNG, pk, pt)
		require.NoError(t, err)
		require.Equal(t, sk.Parameters().CiphertextSize(), len(ct))

		recovered, err := ci.Dec(sk, ct)
		require.NoError(t, err)
		require.Equal(t, pt, recovered)
	}
}

func TestEncProducesDifferentCiphertextsEachCall(t *testing.T) {
	keyPRNG, err := csprng.NewKeyedPRNG([]byte("cipher-freshness-keygen-seed"))
	require.NoError(t, err)
	sk, err := GenerateKey(keyPRNG, ParametersLiteral{Level128})
	require.NoError(t, err)
	pk, err := sk.PublicKey()
	require.NoError(t, err)

	ci, err := NewCipher(Level128)
	require.NoError(t, err)

	pt := fillBytes(sk.Parameters().PlaintextSize(hashSizeForLevel(t, Level128)), 0x11)

	encPRNG1, err := csprng.NewKeyedPRNG([]byte("seed-a"))
	require.NoError(t, err)
	encPRNG2, err := csprng.NewKeyedPRNG([]byte("seed-b"))
	require.NoError(t, err)

	ct1, err := ci.Enc(encPRNG1, pk, pt)
	require.NoError(t, err)
	ct2, err := ci.Enc(encPRNG2, pk, pt)
	require.NoError(t, err)

	require.NotEqual(t, ct1, ct2)
}

func TestDecRejectsTamperedCiphertext(t *testing.T) {
	keyPRNG, err := csprng.NewKeyedPRNG([]byte("cipher-tamper-keygen-seed"))
	require.NoError(t, err)
	sk, err := GenerateKey(keyPRNG, ParametersLiteral{Level128})
	require.NoError(t, err)
	pk, err := sk.PublicKey()
	require.NoError(t, err)

	ci, err := NewCipher(Level128)
	require.NoError(t, err)

	pt := fillBytes(sk.Parameters().PlaintextSize(hashSizeForLevel(t, Level128)), 0x77)

	encPRNG, err := csprng.NewKeyedPRNG([]byte("cipher-tamper-enc-seed"))
	require.NoError(t, err)

	ct, err := ci.Enc(encPRNG, pk, pt)
	require.NoError(t, err)

	ct[0] ^= 0xFF

	_, err = ci.Dec(sk, ct)
	require.Error(t, err)
}

func TestDecRejectsWrongLengthCiphertext(t *testing.T) {
	keyPRNG, err := csprng.NewKeyedPRNG([]byte("cipher-wronglen-keygen-seed"))
	require.NoError(t, err)
	sk, err := GenerateKey(keyPRNG, ParametersLiteral{Level128})
	require.NoError(t, err)

	ci, err := NewCipher(Level128)
	require.NoError(t, err)

	_, err = ci.Dec(sk, make([]byte, 3))
	require.Error(t, err)
}

func hashSizeForLevel(t *testing.T, level SecurityLevel) int {
	t.Helper()
	ci, err := NewCipher(level)
	require.NoError(t, err)
	return ci.hash.Size()
}

func fillBytes(n int, b byte) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b ^ byte(i)
	}
	return out
}
