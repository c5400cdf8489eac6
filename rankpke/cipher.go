package rankpke

import (
	"crypto/subtle"
	"fmt"

	"github.com/flpborba/rankpke/gf2m"
	"github.com/flpborba/rankpke/gf2m/linalg"
	"github.com/flpborba/rankpke/internal/csprng"
	"github.com/flpborba/rankpke/rankerr"
	"github.com/flpborba/rankpke/rankpke/hashes"
)

// Cipher is a stateless functor bound to a hash and an XOF oracle,
// implementing the SBBCM hybrid transform over any key pair of matching
// parameters. Cipher values hold no mutable state and are safe for
// concurrent use across goroutines.
type Cipher struct {
	hash hashes.Hash
	xof  hashes.XOF
}

// NewCipher returns the Cipher for level, wired to the standard SHA3/SHAKE
// oracle pair for that security level.
func NewCipher(level SecurityLevel) (*Cipher, error) {
	h, err := hashes.NewSHA3Hash(int(level))
	if err != nil {
		return nil, fmt.Errorf("rankpke.NewCipher: %w", err)
	}
	x, err := hashes.NewShakeXOF(int(level))
	if err != nil {
		return nil, fmt.Errorf("rankpke.NewCipher: %w", err)
	}
	return &Cipher{hash: h, xof: x}, nil
}

// NewCipherWithOracles returns a Cipher over caller-supplied hash and XOF
// implementations, for callers who need an oracle other than the standard
// SHA3/SHAKE pair; Hash and XOF are specified only via their interfaces.
func NewCipherWithOracles(h hashes.Hash, x hashes.XOF) *Cipher {
	return &Cipher{hash: h, xof: x}
}

// Enc encrypts pt under pk. len(pt) must equal
// pk.Parameters().PlaintextSize(cipher's hash size).
func (ci *Cipher) Enc(prng csprng.PRNG, pk *PublicKey, pt []byte) ([]byte, error) {
	params := pk.params
	field, err := gf2m.ForDegree(params.m)
	if err != nil {
		return nil, fmt.Errorf("rankpke.Cipher.Enc: %w", err)
	}

	wantLen := params.PlaintextSize(ci.hash.Size())
	if len(pt) != wantLen {
		return nil, fmt.Errorf("rankpke.Cipher.Enc: plaintext has length %d, want %d: %w", len(pt), wantLen, rankerr.ErrParameter)
	}

	t := params.DecodingRadius()

	errSampler := linalg.NewRankVectorSampler(prng, field)
	e, err := errSampler.Sample(params.n, t)
	if err != nil {
		return nil, fmt.Errorf("rankpke.Cipher.Enc: %w", err)
	}
	eBytes := field.EncodeVector(e)

	h := ci.hash.Sum(concat(eBytes, pt))

	ptPrime := concat(pt, h)
	mask := ci.xof.Read(eBytes, len(ptPrime))
	muBytes := xorBytes(ptPrime, mask)

	mu, err := field.DecodeVector(muBytes, params.k)
	if err != nil {
		return nil, fmt.Errorf("rankpke.Cipher.Enc: %w", err)
	}

	gPub := pk.generatorMatrix(field)
	c := field.VecMatMul(mu, gPub)

	ctBytes := xorBytes(field.EncodeVector(c), eBytes)

	return ctBytes, nil
}

// Dec decrypts ct under sk. Decryption rejects when EITHER the
// verifier-hash check or the rank check fails, rather than only when both
// fail. Both checks are computed and compared in constant time before
// being combined, and every internal failure -- decoder failure, rank
// mismatch, hash mismatch -- surfaces as the single rankerr.ErrDecoding
// to avoid an oracle.
func (ci *Cipher) Dec(sk *SecretKey, ct []byte) ([]byte, error) {
	params := sk.params
	field := sk.field

	if len(ct) != params.CiphertextSize() {
		return nil, fmt.Errorf("rankpke.Cipher.Dec: ciphertext has length %d, want %d: %w", len(ct), params.CiphertextSize(), rankerr.ErrParameter)
	}

	y, err := field.DecodeVector(ct, params.n)
	if err != nil {
		return nil, fmt.Errorf("rankpke.Cipher.Dec: %w", rankerr.ErrDecoding)
	}

	received := field.VecMatMul(y, sk.p)

	cPrime, err := sk.code.DecodeToCode(received)
	if err != nil {
		return nil, fmt.Errorf("rankpke.Cipher.Dec: %w", rankerr.ErrDecoding)
	}

	eVec := field.VecAdd(y, field.VecMatMul(cPrime, sk.pInv))
	eBytes := field.EncodeVector(eVec)

	unencoded, err := sk.code.Unencode(cPrime)
	if err != nil {
		return nil, fmt.Errorf("rankpke.Cipher.Dec: %w", rankerr.ErrDecoding)
	}
	mu := field.VecMatMul(unencoded, sk.s)
	muBytes := field.EncodeVector(mu)

	mask := ci.xof.Read(eBytes, len(muBytes))
	ptPrime := xorBytes(muBytes, mask)

	hSize := ci.hash.Size()
	if len(ptPrime) < hSize {
		return nil, fmt.Errorf("rankpke.Cipher.Dec: %w", rankerr.ErrDecoding)
	}
	pt := ptPrime[:len(ptPrime)-hSize]
	h := ptPrime[len(ptPrime)-hSize:]

	wantHash := ci.hash.Sum(concat(eBytes, pt))
	hashOK := subtle.ConstantTimeCompare(h, wantHash) == 1

	gotRank := field.Rank(eVec)
	wantRank := params.DecodingRadius()
	rankOK := subtle.ConstantTimeCompare([]byte{byte(gotRank)}, []byte{byte(wantRank)}) == 1

	if !hashOK || !rankOK {
		return nil, fmt.Errorf("rankpke.Cipher.Dec: %w", rankerr.ErrDecoding)
	}

	return pt, nil
}

func concat(a, b []byte) []byte {
	out := make([]byte, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

func xorBytes(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}
