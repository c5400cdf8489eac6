package rankpke

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flpborba/rankpke/internal/csprng"
)

func TestSecretKeyDERRoundTrip(t *testing.T) {
	prng, err := csprng.NewKeyedPRNG([]byte("secret-der-round-trip-seed"))
	require.NoError(t, err)

	sk, err := GenerateKey(prng, ParametersLiteral{Level128})
	require.NoError(t, err)

	der, err := sk.ExportDER()
	require.NoError(t, err)

	back, err := ImportSecretDER(der)
	require.NoError(t, err)

	require.True(t, sk.Equal(back))
}

func TestSecretKeyPEMRoundTrip(t *testing.T) {
	prng, err := csprng.NewKeyedPRNG([]byte("secret-pem-round-trip-seed"))
	require.NoError(t, err)

	sk, err := GenerateKey(prng, ParametersLiteral{Level128})
	require.NoError(t, err)

	pemBytes, err := sk.ExportPEM()
	require.NoError(t, err)

	back, err := ImportSecretPEM(pemBytes)
	require.NoError(t, err)

	require.True(t, sk.Equal(back))
}

func TestPublicKeyDERRoundTrip(t *testing.T) {
	prng, err := csprng.NewKeyedPRNG([]byte("public-der-round-trip-seed"))
	require.NoError(t, err)

	sk, err := GenerateKey(prng, ParametersLiteral{Level128})
	require.NoError(t, err)
	pk, err := sk.PublicKey()
	require.NoError(t, err)

	der, err := pk.ExportDER()
	require.NoError(t, err)

	back, err := ImportPublicDER(der)
	require.NoError(t, err)

	require.True(t, pk.Equal(back))
}

func TestImportSecretPEMRejectsWrongMarker(t *testing.T) {
	_, err := ImportSecretPEM([]byte("-----BEGIN PUBLIC KEY-----\nAA==\n-----END PUBLIC KEY-----\n"))
	require.Error(t, err)
}

func TestImportSecretDERRejectsTruncatedInput(t *testing.T) {
	prng, err := csprng.NewKeyedPRNG([]byte("truncate-seed"))
	require.NoError(t, err)

	sk, err := GenerateKey(prng, ParametersLiteral{Level128})
	require.NoError(t, err)

	der, err := sk.ExportDER()
	require.NoError(t, err)

	_, err = ImportSecretDER(der[:len(der)-10])
	require.Error(t, err)
}
