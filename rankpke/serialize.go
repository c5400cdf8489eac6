package rankpke

import (
	"encoding/asn1"
	"encoding/pem"
	"fmt"

	"github.com/flpborba/rankpke/gabidulin"
	"github.com/flpborba/rankpke/gf2m"
	"github.com/flpborba/rankpke/rankerr"
)

const (
	privateKeyPEMType = "PRIVATE KEY"
	publicKeyPEMType  = "PUBLIC KEY"
)

// asn1Parameters is the wire form of the Parameters SEQUENCE.
type asn1Parameters struct {
	ExtDegree   int
	CodeLength  int
	CodeDim     int
	SubspaceDim int
}

// asn1PrivateKey is the wire form of the PrivateKey SEQUENCE.
type asn1PrivateKey struct {
	EvaluationPoints []byte
	RowScrambler     []byte
	ColumnScrambler  []byte
	Parameters       asn1Parameters
}

// asn1PublicKey is the wire form of the PublicKey SEQUENCE.
type asn1PublicKey struct {
	RightBlock asn1.BitString
	Parameters asn1Parameters
}

func toWireParams(p Parameters) asn1Parameters {
	return asn1Parameters{ExtDegree: p.m, CodeLength: p.n, CodeDim: p.k, SubspaceDim: p.subspaceDim}
}

// fromWireParams rebuilds a Parameters from its wire form, accepting any
// (m,n,k,lambda) with 0 < k <= n <= m and lambda > 0, not only the three
// named security levels — an imported key need not have been generated by
// this package's GenerateKey. 2*lambda <= n-k is not checked. The level is
// zero unless the tuple matches one of the three named sets.
func fromWireParams(w asn1Parameters) (Parameters, error) {
	if w.ExtDegree <= 0 || w.CodeDim <= 0 || w.CodeLength < w.CodeDim || w.CodeLength > w.ExtDegree || w.SubspaceDim <= 0 {
		return Parameters{}, fmt.Errorf("rankpke.fromWireParams: inconsistent parameters (m=%d,n=%d,k=%d,lambda=%d): %w",
			w.ExtDegree, w.CodeLength, w.CodeDim, w.SubspaceDim, rankerr.ErrSerialization)
	}

	level := SecurityLevel(0)
	switch {
	case w.ExtDegree == 64 && w.CodeLength == 58 && w.CodeDim == 28 && w.SubspaceDim == 3:
		level = Level128
	case w.ExtDegree == 96 && w.CodeLength == 62 && w.CodeDim == 32 && w.SubspaceDim == 3:
		level = Level192
	case w.ExtDegree == 128 && w.CodeLength == 64 && w.CodeDim == 28 && w.SubspaceDim == 3:
		level = Level256
	}

	return Parameters{level: level, m: w.ExtDegree, n: w.CodeLength, k: w.CodeDim, subspaceDim: w.SubspaceDim}, nil
}

// ExportDER encodes sk as ASN.1 DER, per the PrivateKey SEQUENCE above.
func (sk *SecretKey) ExportDER() ([]byte, error) {
	wire := asn1PrivateKey{
		EvaluationPoints: sk.field.EncodeVector(sk.code.EvaluationPoints()),
		RowScrambler:     sk.field.EncodeMatrix(sk.s),
		ColumnScrambler:  sk.field.EncodeMatrix(sk.p),
		Parameters:       toWireParams(sk.params),
	}

	der, err := asn1.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("rankpke.SecretKey.ExportDER: %w", err)
	}
	return der, nil
}

// ExportPEM encodes sk as PEM-armored DER under the "PRIVATE KEY" marker.
func (sk *SecretKey) ExportPEM() ([]byte, error) {
	der, err := sk.ExportDER()
	if err != nil {
		return nil, err
	}
	return pem.EncodeToMemory(&pem.Block{Type: privateKeyPEMType, Bytes: der}), nil
}

// ImportSecretDER decodes a SecretKey from ASN.1 DER. It validates every
// octet string's length against the declared (m,n,k) before attempting to
// decode any of them, rejecting mismatches as rankerr.ErrSerialization
// rather than truncating or panicking.
func ImportSecretDER(data []byte) (*SecretKey, error) {
	var wire asn1PrivateKey
	rest, err := asn1.Unmarshal(data, &wire)
	if err != nil {
		return nil, fmt.Errorf("rankpke.ImportSecretDER: %w", rankerr.ErrSerialization)
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("rankpke.ImportSecretDER: trailing data after SEQUENCE: %w", rankerr.ErrSerialization)
	}

	params, err := fromWireParams(wire.Parameters)
	if err != nil {
		return nil, fmt.Errorf("rankpke.ImportSecretDER: %w", err)
	}

	field, err := gf2m.ForDegree(params.m)
	if err != nil {
		return nil, fmt.Errorf("rankpke.ImportSecretDER: %w", err)
	}

	width := field.ByteWidth()
	if len(wire.EvaluationPoints) != params.n*width ||
		len(wire.RowScrambler) != params.k*params.k*width ||
		len(wire.ColumnScrambler) != params.n*params.n*width {
		return nil, fmt.Errorf("rankpke.ImportSecretDER: octet string length inconsistent with declared parameters: %w", rankerr.ErrSerialization)
	}

	points, err := field.DecodeVector(wire.EvaluationPoints, params.n)
	if err != nil {
		return nil, fmt.Errorf("rankpke.ImportSecretDER: %w", rankerr.ErrSerialization)
	}
	s, err := field.DecodeMatrix(wire.RowScrambler, params.k, params.k)
	if err != nil {
		return nil, fmt.Errorf("rankpke.ImportSecretDER: %w", rankerr.ErrSerialization)
	}
	p, err := field.DecodeMatrix(wire.ColumnScrambler, params.n, params.n)
	if err != nil {
		return nil, fmt.Errorf("rankpke.ImportSecretDER: %w", rankerr.ErrSerialization)
	}

	code, err := gabidulin.NewCode(field, params.k, points)
	if err != nil {
		return nil, fmt.Errorf("rankpke.ImportSecretDER: %w", rankerr.ErrSerialization)
	}

	pInv, err := field.Inverse(p)
	if err != nil {
		return nil, fmt.Errorf("rankpke.ImportSecretDER: column scrambler is singular: %w", rankerr.ErrSerialization)
	}

	return &SecretKey{params: params, field: field, code: code, s: s, p: p, pInv: pInv}, nil
}

// ImportSecretPEM decodes a SecretKey from PEM-armored DER, rejecting any
// marker other than "PRIVATE KEY".
func ImportSecretPEM(data []byte) (*SecretKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("rankpke.ImportSecretPEM: no PEM block found: %w", rankerr.ErrSerialization)
	}
	if block.Type != privateKeyPEMType {
		return nil, fmt.Errorf("rankpke.ImportSecretPEM: unexpected PEM marker %q: %w", block.Type, rankerr.ErrSerialization)
	}
	return ImportSecretDER(block.Bytes)
}

// ExportDER encodes pk as ASN.1 DER, per the PublicKey SEQUENCE above.
func (pk *PublicKey) ExportDER() ([]byte, error) {
	field, err := gf2m.ForDegree(pk.params.m)
	if err != nil {
		return nil, fmt.Errorf("rankpke.PublicKey.ExportDER: %w", err)
	}

	bytes := field.EncodeMatrix(pk.right)
	wire := asn1PublicKey{
		RightBlock: asn1.BitString{Bytes: bytes, BitLength: len(bytes) * 8},
		Parameters: toWireParams(pk.params),
	}

	der, err := asn1.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("rankpke.PublicKey.ExportDER: %w", err)
	}
	return der, nil
}

// ExportPEM encodes pk as PEM-armored DER under the "PUBLIC KEY" marker.
func (pk *PublicKey) ExportPEM() ([]byte, error) {
	der, err := pk.ExportDER()
	if err != nil {
		return nil, err
	}
	return pem.EncodeToMemory(&pem.Block{Type: publicKeyPEMType, Bytes: der}), nil
}

// ImportPublicDER decodes a PublicKey from ASN.1 DER, with the same
// length-validation resilience as ImportSecretDER.
func ImportPublicDER(data []byte) (*PublicKey, error) {
	var wire asn1PublicKey
	rest, err := asn1.Unmarshal(data, &wire)
	if err != nil {
		return nil, fmt.Errorf("rankpke.ImportPublicDER: %w", rankerr.ErrSerialization)
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("rankpke.ImportPublicDER: trailing data after SEQUENCE: %w", rankerr.ErrSerialization)
	}

	params, err := fromWireParams(wire.Parameters)
	if err != nil {
		return nil, fmt.Errorf("rankpke.ImportPublicDER: %w", err)
	}

	field, err := gf2m.ForDegree(params.m)
	if err != nil {
		return nil, fmt.Errorf("rankpke.ImportPublicDER: %w", err)
	}

	width := field.ByteWidth()
	rightCols := params.n - params.k
	if wire.RightBlock.BitLength != params.k*rightCols*width*8 || len(wire.RightBlock.Bytes) != params.k*rightCols*width {
		return nil, fmt.Errorf("rankpke.ImportPublicDER: right-block length inconsistent with declared parameters: %w", rankerr.ErrSerialization)
	}

	right, err := field.DecodeMatrix(wire.RightBlock.Bytes, params.k, rightCols)
	if err != nil {
		return nil, fmt.Errorf("rankpke.ImportPublicDER: %w", rankerr.ErrSerialization)
	}

	return &PublicKey{params: params, right: right}, nil
}

// ImportPublicPEM decodes a PublicKey from PEM-armored DER, rejecting any
// marker other than "PUBLIC KEY".
func ImportPublicPEM(data []byte) (*PublicKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("rankpke.ImportPublicPEM: no PEM block found: %w", rankerr.ErrSerialization)
	}
	if block.Type != publicKeyPEMType {
		return nil, fmt.Errorf("rankpke.ImportPublicPEM: unexpected PEM marker %q: %w", block.Type, rankerr.ErrSerialization)
	}
	return ImportPublicDER(block.Bytes)
}
