// Package rankerr defines the sentinel error kinds shared by every layer of
// the rank-metric cryptosystem, so callers can branch on failure class with
// errors.Is regardless of which package raised it.
package rankerr

import "errors"

var (
	// ErrParameter reports an unsupported security level or an internally
	// inconsistent parameter combination (field degree, code length/dimension,
	// subspace dimension, rank).
	ErrParameter = errors.New("rankpke: invalid parameter")

	// ErrEncoding reports an attempt to encode a value outside the codec's
	// domain, e.g. a field element not in characteristic two.
	ErrEncoding = errors.New("rankpke: encoding error")

	// ErrDecoding reports a malformed byte string, an uncorrectable received
	// word, or a failed ciphertext integrity check.
	ErrDecoding = errors.New("rankpke: decoding error")

	// ErrSerialization reports a malformed DER/PEM structure, a marker
	// mismatch, or a length inconsistent with the declared parameters.
	ErrSerialization = errors.New("rankpke: serialization error")
)
